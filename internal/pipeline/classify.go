package pipeline

import (
	"strings"

	"marketpanel/internal"
)

// Markers holds the substring probes used to recognize each canonical
// field in a feed's raw column labels. The published sheets rename
// their columns freely, so recognition is data, not schema.
type Markers struct {
	Price       []string
	ProductName []string
	SalesCount  []string
	LinkURL     []string
	Timestamp   []string
}

func DefaultMarkers() Markers {
	return Markers{
		Price:       []string{"PREÇ", "PRICE", "(R$)"},
		ProductName: []string{"PRODUT", "NOME", "TITULO"},
		SalesCount:  []string{"VENDA", "SOLD", "REVIEW"},
		LinkURL:     []string{"LINK", "URL"},
		Timestamp:   []string{"DATA", "DATE", "TIME"},
	}
}

// ColumnMap holds the classified column index per canonical field,
// -1 when no column matched.
type ColumnMap struct {
	Price       int
	ProductName int
	SalesCount  int
	LinkURL     int
	Timestamp   int
}

// HasRequired reports whether the feed is usable at all. Without a
// price and a product name there is nothing to materialize.
func (m ColumnMap) HasRequired() bool {
	return m.Price >= 0 && m.ProductName >= 0
}

func (m ColumnMap) Index(kind internal.FieldKind) int {
	switch kind {
	case internal.FieldPrice:
		return m.Price
	case internal.FieldProductName:
		return m.ProductName
	case internal.FieldSalesCount:
		return m.SalesCount
	case internal.FieldLinkURL:
		return m.LinkURL
	case internal.FieldTimestamp:
		return m.Timestamp
	}
	return -1
}

// ClassifyColumns maps raw column labels onto canonical fields. Labels
// are compared uppercased and trimmed; the first matching column wins
// and a column is claimed by at most one field. Fields claim in a
// fixed order so the result is deterministic for any label set.
func ClassifyColumns(columns []string, markers Markers) ColumnMap {
	labels := make([]string, len(columns))
	for i, c := range columns {
		labels[i] = strings.ToUpper(strings.TrimSpace(c))
	}

	claimed := make([]bool, len(labels))
	find := func(probes []string) int {
		for i, label := range labels {
			if claimed[i] {
				continue
			}
			for _, probe := range probes {
				if probe != "" && strings.Contains(label, strings.ToUpper(probe)) {
					claimed[i] = true
					return i
				}
			}
		}
		return -1
	}

	return ColumnMap{
		Price:       find(markers.Price),
		ProductName: find(markers.ProductName),
		SalesCount:  find(markers.SalesCount),
		LinkURL:     find(markers.LinkURL),
		Timestamp:   find(markers.Timestamp),
	}
}
