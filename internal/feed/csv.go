package feed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	"marketpanel/internal"
	"marketpanel/internal/config"
)

// CSVConnector pulls the published CSV export of the sheet over HTTP.
type CSVConnector struct {
	url        string
	httpClient *http.Client
}

func NewCSVConnector(cfg config.Config) *CSVConnector {
	return &CSVConnector{
		url:        cfg.FeedURL,
		httpClient: &http.Client{Timeout: time.Duration(cfg.FeedTimeoutMs) * time.Millisecond},
	}
}

func (c *CSVConnector) Fetch(ctx context.Context) (internal.RawFeed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return internal.RawFeed{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return internal.RawFeed{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return internal.RawFeed{}, fmt.Errorf("feed fetch status %d from %s", resp.StatusCode, c.url)
	}

	return ParseCSV(resp.Body)
}

// ParseCSV reads delimited text into a RawFeed. Malformed rows are
// skipped, they never abort the snapshot: a bad quote costs its own
// record, a row with more cells than the header is dropped, a short
// row is kept (missing cells read as empty downstream).
func ParseCSV(r io.Reader) (internal.RawFeed, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows := make([][]string, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if _, ok := err.(*csv.ParseError); ok {
				continue
			}
			return internal.RawFeed{}, err
		}
		if len(rows) > 0 && len(record) > len(rows[0]) {
			continue
		}
		rows = append(rows, record)
	}

	return tableToFeed(rows), nil
}
