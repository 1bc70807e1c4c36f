package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"marketpanel/internal"
	"marketpanel/internal/config"
)

// HTMLConnector reads the sheet's published-HTML variant: the same
// data rendered as a <table>. Google publishes both formats from one
// sheet, so supporting both keeps the source URL interchangeable.
type HTMLConnector struct {
	url        string
	httpClient *http.Client
}

func NewHTMLConnector(cfg config.Config) *HTMLConnector {
	return &HTMLConnector{
		url:        cfg.FeedURL,
		httpClient: &http.Client{Timeout: time.Duration(cfg.FeedTimeoutMs) * time.Millisecond},
	}
}

func (c *HTMLConnector) Fetch(ctx context.Context) (internal.RawFeed, error) {
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

	return ParseHTMLTable(resp.Body)
}

// ParseHTMLTable extracts the first table with a header row and at
// least one data row. Published sheets wrap the data in exactly one
// such table; decorative single-row tables are skipped.
func ParseHTMLTable(r io.Reader) (internal.RawFeed, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return internal.RawFeed{}, err
	}

	var feed internal.RawFeed
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() < 2 {
			return true
		}

		cells := make([][]string, 0, rows.Length())
		rows.Each(func(_ int, row *goquery.Selection) {
			line := []string{}
			row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				line = append(line, strings.TrimSpace(cell.Text()))
			})
			if len(line) > 0 {
				cells = append(cells, line)
			}
		})

		candidate := tableToFeed(cells)
		if candidate.Empty() {
			return true
		}
		feed = candidate
		return false
	})

	return feed, nil
}
