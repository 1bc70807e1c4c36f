package web

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"marketpanel/internal"
	"marketpanel/internal/insights"
	"marketpanel/internal/pipeline"
)

// loadRecords materializes the current snapshot, pre-filtered by the
// optional name query. A fetch failure is reported and degrades to an
// empty set; the panel must render a "no data" state, never crash.
func (s *Server) loadRecords(ctx context.Context, query string) []internal.CanonicalRecord {
	snapshot, err := s.cache.Fetch(ctx)
	if err != nil {
		fmt.Printf("feed fetch failed: %v\n", err)
		snapshot = internal.RawFeed{}
	}
	records := pipeline.Materialize(snapshot, s.markers)
	return insights.FilterByName(records, query)
}

func sortedDrops(records []internal.CanonicalRecord) []internal.DropRecord {
	drops := pipeline.ComputeDrops(records)
	sort.SliceStable(drops, func(i, j int) bool { return drops[i].DiscountPct > drops[j].DiscountPct })
	return drops
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleRecords(c *gin.Context) {
	records := s.loadRecords(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"count": len(records), "records": records})
}

func (s *Server) handleSummary(c *gin.Context) {
	records := s.loadRecords(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"summary":   insights.Summarize(records),
		"histogram": insights.PriceHistogram(records, s.cfg.HistogramBins),
	})
}

func (s *Server) handleDrops(c *gin.Context) {
	records := s.loadRecords(c.Request.Context(), c.Query("q"))
	drops := sortedDrops(records)
	c.JSON(http.StatusOK, gin.H{"count": len(drops), "drops": drops})
}

func (s *Server) handleOpportunities(c *gin.Context) {
	records := s.loadRecords(c.Request.Context(), c.Query("q"))
	opportunities := insights.Opportunities(records, s.cfg.OpportunityFactor)
	c.JSON(http.StatusOK, gin.H{"count": len(opportunities), "opportunities": opportunities})
}

func (s *Server) handleSimilar(c *gin.Context) {
	base := c.Query("base")
	if base == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "base is required"})
		return
	}

	records := s.loadRecords(c.Request.Context(), c.Query("q"))
	matches := s.ranker.Rank(base, insights.UniqueNames(records), s.cfg.SimilarLimit)

	matched := map[string]struct{}{base: {}}
	for _, m := range matches {
		matched[m.Name] = struct{}{}
	}
	comparison := make([]internal.CanonicalRecord, 0)
	for _, rec := range records {
		if _, ok := matched[rec.ProductName]; ok {
			comparison = append(comparison, rec)
		}
	}
	sort.SliceStable(comparison, func(i, j int) bool { return comparison[i].Price < comparison[j].Price })

	c.JSON(http.StatusOK, gin.H{"base": base, "matches": matches, "records": comparison})
}

func (s *Server) handleRefresh(c *gin.Context) {
	s.cache.Invalidate()
	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}

type dashboardView struct {
	Query         string
	Summary       insights.PriceSummary
	Histogram     []insights.HistogramBin
	Drops         []internal.DropRecord
	Opportunities []internal.CanonicalRecord
	Names         []string
	HasData       bool
}

func (s *Server) handleDashboard(c *gin.Context) {
	query := c.Query("q")
	records := s.loadRecords(c.Request.Context(), query)

	view := dashboardView{
		Query:         query,
		Summary:       insights.Summarize(records),
		Histogram:     insights.PriceHistogram(records, s.cfg.HistogramBins),
		Drops:         sortedDrops(records),
		Opportunities: insights.Opportunities(records, s.cfg.OpportunityFactor),
		Names:         insights.UniqueNames(records),
		HasData:       len(records) > 0,
	}
	c.HTML(http.StatusOK, "dashboard.html", view)
}
