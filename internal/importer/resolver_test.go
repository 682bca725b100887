package importer

import "testing"

func row(pairs ...string) RawRow {
	headers := make([]string, 0, len(pairs)/2)
	cells := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		headers = append(headers, pairs[i])
		cells = append(cells, pairs[i+1])
	}
	return NewRawRow(headers, cells)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		row        RawRow
		candidates []string
		want       string
		wantOK     bool
	}{
		{
			name:       "exact key match",
			row:        row("sku", "ABC-1"),
			candidates: []string{"sku"},
			want:       "ABC-1",
			wantOK:     true,
		},
		{
			name:       "case insensitive match",
			row:        row("SKU", "ABC-1"),
			candidates: []string{"sku"},
			want:       "ABC-1",
			wantOK:     true,
		},
		{
			name:       "whitespace trimmed match",
			row:        row("  Sku  ", "ABC-1"),
			candidates: []string{"sku"},
			want:       "ABC-1",
			wantOK:     true,
		},
		{
			name:       "normalized underscore vs space",
			row:        row("unit_price", "9.99"),
			candidates: []string{"unit price"},
			want:       "9.99",
			wantOK:     true,
		},
		{
			name:       "normalized camel case",
			row:        row("UnitPrice", "9.99"),
			candidates: []string{"unit price"},
			want:       "9.99",
			wantOK:     true,
		},
		{
			name:       "substring header contains candidate",
			row:        row("Product SKU Code", "ABC-1"),
			candidates: []string{"sku"},
			want:       "ABC-1",
			wantOK:     true,
		},
		{
			name:       "substring candidate contains header",
			row:        row("Qty", "3"),
			candidates: []string{"qty sold"},
			want:       "3",
			wantOK:     true,
		},
		{
			name:       "empty value skipped for next candidate",
			row:        row("sku", "", "product code", "P-9"),
			candidates: []string{"sku", "product code"},
			want:       "P-9",
			wantOK:     true,
		},
		{
			name:       "no match",
			row:        row("foo", "1", "bar", "2"),
			candidates: []string{"sku", "product code"},
			want:       "",
			wantOK:     false,
		},
		{
			name:       "first candidate beats earlier column",
			row:        row("Product Code", "P-9", "sku", "ABC-1"),
			candidates: []string{"sku", "product code"},
			want:       "ABC-1",
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.row, tt.candidates)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Resolve() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	// Two headers both fuzzy-match the candidate; the earlier column must
	// win every time regardless of map iteration order.
	r := row("Item SKU", "A", "Product SKU", "B")
	for i := 0; i < 50; i++ {
		got, ok := Resolve(r, []string{"sku"})
		if !ok || got != "A" {
			t.Fatalf("iteration %d: Resolve() = (%q, %v), want (%q, true)", i, got, ok, "A")
		}
	}
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Unit Price", "unitprice"},
		{"unit_price", "unitprice"},
		{"UnitPrice", "unitprice"},
		{"  SKU # ", "sku"},
		{"---", ""},
		{"Qty (units)", "qtyunits"},
	}
	for _, tt := range tests {
		if got := normalizeHeader(tt.in); got != tt.want {
			t.Errorf("normalizeHeader(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
