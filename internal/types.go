package internal

import "time"

type FieldKind string

const (
	FieldPrice       FieldKind = "price"
	FieldProductName FieldKind = "product_name"
	FieldSalesCount  FieldKind = "sales_count"
	FieldLinkURL     FieldKind = "link_url"
	FieldTimestamp   FieldKind = "timestamp"
)

// NoLink is the sentinel stored when a feed carries no link column.
const NoLink = "#"

// RawFeed is one snapshot of the published sheet. Columns keeps the
// original column order; Rows are positional cells, so duplicate or
// garbled labels stay representable.
type RawFeed struct {
	Columns []string
	Rows    [][]string
}

func (f RawFeed) Empty() bool {
	return len(f.Columns) == 0 || len(f.Rows) == 0
}

// CanonicalRecord is one materialized feed row. Price 0 means the cell
// was missing or unparseable, never a real free listing.
type CanonicalRecord struct {
	ProductName string     `json:"productName"`
	Price       float64    `json:"price"`
	SalesCount  int        `json:"salesCount"`
	LinkURL     string     `json:"linkUrl"`
	Timestamp   *time.Time `json:"timestamp"`
	Position    int        `json:"position"`
}

// SortKey orders observations of one product chronologically. Rows
// without a usable timestamp fall back to their feed position, which
// keeps the ordering total and deterministic.
func (r CanonicalRecord) SortKey() int64 {
	if r.Timestamp != nil {
		return r.Timestamp.UnixNano()
	}
	return int64(r.Position)
}

// DropRecord is a detected price decrease between two consecutive
// observations of the same product. Derived per request, never stored.
type DropRecord struct {
	ProductName    string     `json:"productName"`
	PriceCurrent   float64    `json:"priceCurrent"`
	PricePrevious  float64    `json:"pricePrevious"`
	DiscountAmount float64    `json:"discountAmount"`
	DiscountPct    float64    `json:"discountPct"`
	Timestamp      *time.Time `json:"timestamp"`
	LinkURL        string     `json:"linkUrl"`
}

type RankedMatch struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}
