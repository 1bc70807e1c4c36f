package pipeline

import (
	"strings"
	"time"

	"marketpanel/internal"
)

// Day-first layouts tried in order; the sheets mix Brazilian d/m/y
// dates with ISO exports.
var timestampLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
}

// Materialize turns one raw feed snapshot into canonical records. If
// classification finds no price or no product name column the feed is
// unusable and the result is empty; that is a defined state, not an
// error. Row order is preserved and the function is pure, so repeated
// calls over the same snapshot give identical output.
func Materialize(feed internal.RawFeed, markers Markers) []internal.CanonicalRecord {
	cols := ClassifyColumns(feed.Columns, markers)
	if !cols.HasRequired() {
		return nil
	}

	out := make([]internal.CanonicalRecord, 0, len(feed.Rows))
	for pos, row := range feed.Rows {
		cell := func(idx int) string {
			if idx >= 0 && idx < len(row) {
				return row[idx]
			}
			return ""
		}

		rec := internal.CanonicalRecord{
			ProductName: cell(cols.ProductName),
			Price:       ParsePrice(cell(cols.Price)),
			LinkURL:     internal.NoLink,
			Position:    pos,
		}
		if cols.SalesCount >= 0 {
			rec.SalesCount = ParseSales(cell(cols.SalesCount))
		}
		if cols.LinkURL >= 0 {
			if link := strings.TrimSpace(cell(cols.LinkURL)); link != "" {
				rec.LinkURL = link
			}
		}
		if cols.Timestamp >= 0 {
			rec.Timestamp = parseTimestamp(cell(cols.Timestamp))
		}

		out = append(out, rec)
	}
	return out
}

// parseTimestamp parses a single date cell. An unparseable value only
// costs that row its timestamp (it falls back to feed position), never
// the whole feed.
func parseTimestamp(raw string) *time.Time {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			return &parsed
		}
	}
	return nil
}
