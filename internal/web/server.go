package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"marketpanel/internal/config"
	"marketpanel/internal/feed"
	"marketpanel/internal/pipeline"
	"marketpanel/internal/similar"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server is the dashboard process: it owns the feed cache and exposes
// the panel plus a small JSON API. Everything is recomputed from the
// current snapshot on each request; the cache is the only shared state.
type Server struct {
	cfg     config.Config
	markers pipeline.Markers
	cache   *feed.Cache
	ranker  similar.Ranker
	router  *gin.Engine
}

func NewServer(cfg config.Config, connector feed.Connector, ranker similar.Ranker) *Server {
	s := &Server{
		cfg:     cfg,
		markers: markersFromConfig(cfg),
		cache:   feed.NewCache(connector, time.Duration(cfg.CacheTTLSec)*time.Second),
		ranker:  ranker,
	}

	funcs := template.FuncMap{
		"brl": func(v float64) string { return fmt.Sprintf("R$ %.2f", v) },
		"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	}
	tmpl := template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))

	router := gin.Default()
	router.SetHTMLTemplate(tmpl)

	router.GET("/", s.handleDashboard)
	router.GET("/healthz", s.handleHealth)
	router.GET("/export.xlsx", s.handleExport)

	api := router.Group("/api")
	api.GET("/records", s.handleRecords)
	api.GET("/summary", s.handleSummary)
	api.GET("/drops", s.handleDrops)
	api.GET("/opportunities", s.handleOpportunities)
	api.GET("/similar", s.handleSimilar)
	api.POST("/refresh", s.handleRefresh)

	s.router = router
	return s
}

func markersFromConfig(cfg config.Config) pipeline.Markers {
	return pipeline.Markers{
		Price:       cfg.PriceMarkers,
		ProductName: cfg.NameMarkers,
		SalesCount:  cfg.SalesMarkers,
		LinkURL:     cfg.LinkMarkers,
		Timestamp:   cfg.TimestampMarkers,
	}
}

// Run serves until the context is cancelled, then drains in-flight
// requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: ":" + s.cfg.Port, Handler: s.router}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) Handler() http.Handler {
	return s.router
}
