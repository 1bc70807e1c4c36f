package pipeline

import "testing"

func TestClassifyColumns(t *testing.T) {
	cols := ClassifyColumns([]string{" produto ", "Preço (R$)", "Vendas", "Link", "Data"}, DefaultMarkers())

	if cols.ProductName != 0 {
		t.Fatalf("product=%d", cols.ProductName)
	}
	if cols.Price != 1 {
		t.Fatalf("price=%d", cols.Price)
	}
	if cols.SalesCount != 2 {
		t.Fatalf("sales=%d", cols.SalesCount)
	}
	if cols.LinkURL != 3 {
		t.Fatalf("link=%d", cols.LinkURL)
	}
	if cols.Timestamp != 4 {
		t.Fatalf("timestamp=%d", cols.Timestamp)
	}
	if !cols.HasRequired() {
		t.Fatal("required fields missing")
	}
}

func TestClassifyColumnsFirstMatchWins(t *testing.T) {
	cols := ClassifyColumns([]string{"PRICE USD", "PREÇO BRL", "Nome"}, DefaultMarkers())
	if cols.Price != 0 {
		t.Fatalf("price=%d", cols.Price)
	}
}

func TestClassifyColumnsMarkerVariants(t *testing.T) {
	cases := []struct {
		name   string
		column string
		check  func(ColumnMap) int
	}{
		{name: "review as sales", column: "Reviews", check: func(m ColumnMap) int { return m.SalesCount }},
		{name: "sold as sales", column: "Units Sold", check: func(m ColumnMap) int { return m.SalesCount }},
		{name: "url as link", column: "URL da página", check: func(m ColumnMap) int { return m.LinkURL }},
		{name: "date as timestamp", column: "Scrape Date", check: func(m ColumnMap) int { return m.Timestamp }},
		{name: "titulo as name", column: "Titulo do anuncio", check: func(m ColumnMap) int { return m.ProductName }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cols := ClassifyColumns([]string{tc.column}, DefaultMarkers())
			if tc.check(cols) != 0 {
				t.Fatalf("column %q not classified", tc.column)
			}
		})
	}
}

func TestClassifyColumnsClaimsEachColumnOnce(t *testing.T) {
	// "DATA DE VENDA" qualifies for both sales and timestamp; sales
	// claims first, timestamp must not reuse the same column.
	cols := ClassifyColumns([]string{"Produto", "Preço", "Data de venda"}, DefaultMarkers())
	if cols.SalesCount != 2 {
		t.Fatalf("sales=%d", cols.SalesCount)
	}
	if cols.Timestamp != -1 {
		t.Fatalf("timestamp=%d", cols.Timestamp)
	}
}

func TestClassifyColumnsMissingRequired(t *testing.T) {
	cols := ClassifyColumns([]string{"Coluna A", "Coluna B"}, DefaultMarkers())
	if cols.HasRequired() {
		t.Fatal("expected required fields to be missing")
	}
	if cols.Price != -1 || cols.ProductName != -1 {
		t.Fatalf("price=%d product=%d", cols.Price, cols.ProductName)
	}
}
