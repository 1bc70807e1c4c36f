package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	FeedSource    string
	FeedURL       string
	FeedFile      string
	FeedTimeoutMs int
	CacheTTLSec   int

	SimilarThreshold  float64
	SimilarLimit      int
	OpportunityFactor float64
	HistogramBins     int

	PriceMarkers     []string
	NameMarkers      []string
	SalesMarkers     []string
	LinkMarkers      []string
	TimestampMarkers []string

	SheetsClientID     string
	SheetsClientSecret string
	SheetsRedirectURI  string
	SheetsRefreshToken string
	SheetsSpreadsheet  string
	SheetsRange        string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port: getEnv("PORT", "8080"),

		FeedSource:    strings.ToLower(getEnv("FEED_SOURCE", "csv")),
		FeedURL:       getEnv("FEED_URL", ""),
		FeedFile:      getEnv("FEED_FILE", ""),
		FeedTimeoutMs: getEnvInt("FEED_TIMEOUT_MS", 30000),
		CacheTTLSec:   getEnvInt("CACHE_TTL_SEC", 30),

		SimilarThreshold:  getEnvFloat("SIMILAR_THRESHOLD", 0.5),
		SimilarLimit:      getEnvInt("SIMILAR_LIMIT", 15),
		OpportunityFactor: getEnvFloat("OPPORTUNITY_FACTOR", 0.85),
		HistogramBins:     getEnvInt("HISTOGRAM_BINS", 20),

		PriceMarkers:     getEnvList("MARKERS_PRICE", "PREÇ,PRICE,(R$)"),
		NameMarkers:      getEnvList("MARKERS_NAME", "PRODUT,NOME,TITULO"),
		SalesMarkers:     getEnvList("MARKERS_SALES", "VENDA,SOLD,REVIEW"),
		LinkMarkers:      getEnvList("MARKERS_LINK", "LINK,URL"),
		TimestampMarkers: getEnvList("MARKERS_TIMESTAMP", "DATA,DATE,TIME"),

		SheetsClientID:     getEnv("SHEETS_CLIENT_ID", ""),
		SheetsClientSecret: getEnv("SHEETS_CLIENT_SECRET", ""),
		SheetsRedirectURI:  getEnv("SHEETS_REDIRECT_URI", "https://developers.google.com/oauthplayground"),
		SheetsRefreshToken: getEnv("SHEETS_REFRESH_TOKEN", ""),
		SheetsSpreadsheet:  getEnv("SHEETS_SPREADSHEET_ID", ""),
		SheetsRange:        getEnv("SHEETS_RANGE", "A:Z"),
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key, fallback string) []string {
	value := getEnv(key, fallback)
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
