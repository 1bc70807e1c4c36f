package feed

import (
	"context"
	"strings"

	"marketpanel/internal"
)

// Connector fetches one raw snapshot of the published feed. The core
// pipeline never calls a connector directly; it receives whatever
// snapshot the caller hands it, so re-running it is always safe.
type Connector interface {
	Fetch(ctx context.Context) (internal.RawFeed, error)
}

// tableToFeed splits a row-oriented table into header and data rows,
// dropping rows that are entirely blank.
func tableToFeed(rows [][]string) internal.RawFeed {
	if len(rows) == 0 {
		return internal.RawFeed{}
	}

	feed := internal.RawFeed{Columns: rows[0]}
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		feed.Rows = append(feed.Rows, row)
	}
	return feed
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
