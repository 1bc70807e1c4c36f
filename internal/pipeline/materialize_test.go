package pipeline

import (
	"reflect"
	"testing"

	"marketpanel/internal"
)

func sampleFeed() internal.RawFeed {
	return internal.RawFeed{
		Columns: []string{"Produto", "Preço (R$)", "Vendas", "Link", "Data"},
		Rows: [][]string{
			{"Vaso Azul", "R$ 50,00", "1,2 mil", "https://loja.test/vaso-azul", "2024-01-01"},
			{"Vaso Azul", "R$ 40,00", "1,3 mil", "https://loja.test/vaso-azul", "2024-01-05"},
			{"Suporte Fone", "garbage", "", "", "quando?"},
		},
	}
}

func TestMaterialize(t *testing.T) {
	records := Materialize(sampleFeed(), DefaultMarkers())
	if len(records) != 3 {
		t.Fatalf("len=%d", len(records))
	}

	first := records[0]
	if first.ProductName != "Vaso Azul" {
		t.Fatalf("name=%q", first.ProductName)
	}
	if first.Price != 50 {
		t.Fatalf("price=%v", first.Price)
	}
	if first.SalesCount != 1200 {
		t.Fatalf("sales=%d", first.SalesCount)
	}
	if first.LinkURL != "https://loja.test/vaso-azul" {
		t.Fatalf("link=%q", first.LinkURL)
	}
	if first.Timestamp == nil || first.Timestamp.Format("2006-01-02") != "2024-01-01" {
		t.Fatalf("timestamp=%v", first.Timestamp)
	}

	// Garbled row degrades to sentinels but stays in the set.
	last := records[2]
	if last.Price != 0 || last.SalesCount != 0 {
		t.Fatalf("price=%v sales=%d", last.Price, last.SalesCount)
	}
	if last.LinkURL != internal.NoLink {
		t.Fatalf("link=%q", last.LinkURL)
	}
	if last.Timestamp != nil {
		t.Fatalf("timestamp=%v", last.Timestamp)
	}
	if last.SortKey() != 2 {
		t.Fatalf("sortKey=%d", last.SortKey())
	}
}

func TestMaterializeMissingRequiredColumns(t *testing.T) {
	feed := internal.RawFeed{
		Columns: []string{"Produto", "Vendas"},
		Rows:    [][]string{{"Vaso Azul", "10"}},
	}
	if records := Materialize(feed, DefaultMarkers()); len(records) != 0 {
		t.Fatalf("len=%d", len(records))
	}

	feed = internal.RawFeed{
		Columns: []string{"Preço", "Vendas"},
		Rows:    [][]string{{"R$ 10,00", "10"}},
	}
	if records := Materialize(feed, DefaultMarkers()); len(records) != 0 {
		t.Fatalf("len=%d", len(records))
	}
}

func TestMaterializeOptionalDefaults(t *testing.T) {
	feed := internal.RawFeed{
		Columns: []string{"Produto", "Preço"},
		Rows:    [][]string{{"Vaso Azul", "R$ 10,00"}, {"Vaso Azul", "R$ 12,00"}},
	}
	records := Materialize(feed, DefaultMarkers())
	if len(records) != 2 {
		t.Fatalf("len=%d", len(records))
	}
	for i, rec := range records {
		if rec.SalesCount != 0 {
			t.Fatalf("sales=%d", rec.SalesCount)
		}
		if rec.LinkURL != internal.NoLink {
			t.Fatalf("link=%q", rec.LinkURL)
		}
		if rec.Timestamp != nil {
			t.Fatalf("timestamp=%v", rec.Timestamp)
		}
		if rec.Position != i || rec.SortKey() != int64(i) {
			t.Fatalf("position=%d sortKey=%d", rec.Position, rec.SortKey())
		}
	}
}

func TestMaterializeDayFirstDates(t *testing.T) {
	feed := internal.RawFeed{
		Columns: []string{"Produto", "Preço", "Data"},
		Rows:    [][]string{{"Vaso Azul", "R$ 10,00", "05/01/2024"}},
	}
	records := Materialize(feed, DefaultMarkers())
	if records[0].Timestamp == nil {
		t.Fatal("timestamp is nil")
	}
	if got := records[0].Timestamp.Format("2006-01-02"); got != "2024-01-05" {
		t.Fatalf("got %s", got)
	}
}

func TestMaterializeShortRows(t *testing.T) {
	feed := internal.RawFeed{
		Columns: []string{"Produto", "Preço", "Vendas"},
		Rows:    [][]string{{"Vaso Azul"}},
	}
	records := Materialize(feed, DefaultMarkers())
	if len(records) != 1 {
		t.Fatalf("len=%d", len(records))
	}
	if records[0].Price != 0 || records[0].SalesCount != 0 {
		t.Fatalf("price=%v sales=%d", records[0].Price, records[0].SalesCount)
	}
}

func TestMaterializeIdempotent(t *testing.T) {
	feed := sampleFeed()
	a := Materialize(feed, DefaultMarkers())
	b := Materialize(feed, DefaultMarkers())
	if !reflect.DeepEqual(a, b) {
		t.Fatal("repeated materialization differs")
	}
}
