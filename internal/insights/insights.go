// Package insights computes the caller-side aggregates shown on the
// dashboard: price summary, distribution, below-market opportunities.
// Zero prices mark unparseable cells and are excluded everywhere here.
package insights

import (
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"marketpanel/internal"
)

type PriceSummary struct {
	Listings int     `json:"listings"`
	Priced   int     `json:"priced"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	StdDev   float64 `json:"stdDev"`
}

type HistogramBin struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

// FilterByName keeps records whose product name contains the query,
// case-insensitively. An empty query keeps everything.
func FilterByName(records []internal.CanonicalRecord, query string) []internal.CanonicalRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}
	out := make([]internal.CanonicalRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.ProductName), query) {
			out = append(out, rec)
		}
	}
	return out
}

func Summarize(records []internal.CanonicalRecord) PriceSummary {
	summary := PriceSummary{Listings: len(records)}
	prices := validPrices(records)
	summary.Priced = len(prices)
	if len(prices) == 0 {
		return summary
	}

	summary.Mean, _ = stats.Mean(prices)
	summary.Median, _ = stats.Median(prices)
	summary.Min, _ = stats.Min(prices)
	summary.Max, _ = stats.Max(prices)
	summary.StdDev, _ = stats.StandardDeviation(prices)
	return summary
}

// PriceHistogram buckets valid prices into count equal-width bins.
func PriceHistogram(records []internal.CanonicalRecord, bins int) []HistogramBin {
	prices := validPrices(records)
	if len(prices) == 0 || bins <= 0 {
		return nil
	}
	sort.Float64s(prices)

	low, high := prices[0], prices[len(prices)-1]
	if low == high {
		return []HistogramBin{{From: low, To: high, Count: len(prices)}}
	}

	dividers := make([]float64, bins+1)
	floats.Span(dividers, low, high)
	// Nudge the top divider so the max price falls inside the last bin.
	dividers[bins] = math.Nextafter(high, math.Inf(1))
	counts := stat.Histogram(nil, dividers, prices, nil)

	out := make([]HistogramBin, 0, bins)
	for i, c := range counts {
		out = append(out, HistogramBin{From: dividers[i], To: dividers[i+1], Count: int(c)})
	}
	return out
}

// Opportunities returns records priced below factor times the mean of
// the filtered set, cheapest first. Factor 0.85 mirrors the "15%
// below market" rule from the dashboard.
func Opportunities(records []internal.CanonicalRecord, factor float64) []internal.CanonicalRecord {
	summary := Summarize(records)
	if summary.Priced == 0 || factor <= 0 {
		return nil
	}
	ceiling := summary.Mean * factor

	out := make([]internal.CanonicalRecord, 0)
	for _, rec := range records {
		if rec.Price > 0 && rec.Price < ceiling {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}

// UniqueNames returns distinct product names in first-seen order, the
// candidate set for similarity ranking.
func UniqueNames(records []internal.CanonicalRecord) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.ProductName == "" {
			continue
		}
		if _, ok := seen[rec.ProductName]; ok {
			continue
		}
		seen[rec.ProductName] = struct{}{}
		out = append(out, rec.ProductName)
	}
	return out
}

func validPrices(records []internal.CanonicalRecord) []float64 {
	out := make([]float64, 0, len(records))
	for _, rec := range records {
		if rec.Price > 0 {
			out = append(out, rec.Price)
		}
	}
	return out
}
