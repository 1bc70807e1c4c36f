package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"marketpanel/internal/config"
	"marketpanel/internal/feed"
	"marketpanel/internal/feed/sheets"
	"marketpanel/internal/similar"
	"marketpanel/internal/web"
)

func main() {
	cfg, err := config.Load()
	must(err)

	connector, err := makeConnector(cfg)
	must(err)

	server := web.NewServer(cfg, connector, similar.NewTokenRanker(cfg.SimilarThreshold))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("marketpanel listening on :%s source=%s ttl=%ds\n", cfg.Port, cfg.FeedSource, cfg.CacheTTLSec)
	must(server.Run(ctx))
}

func makeConnector(cfg config.Config) (feed.Connector, error) {
	switch cfg.FeedSource {
	case "csv":
		if err := cfg.Require("FEED_URL", cfg.FeedURL); err != nil {
			return nil, err
		}
		return feed.NewCSVConnector(cfg), nil
	case "html":
		if err := cfg.Require("FEED_URL", cfg.FeedURL); err != nil {
			return nil, err
		}
		return feed.NewHTMLConnector(cfg), nil
	case "xlsx":
		if err := cfg.Require("FEED_FILE", cfg.FeedFile); err != nil {
			return nil, err
		}
		return feed.NewXLSXConnector(cfg), nil
	case "sheets":
		return sheets.NewConnector(cfg)
	default:
		return nil, fmt.Errorf("unsupported feed source: %s", cfg.FeedSource)
	}
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
