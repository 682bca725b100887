package importer

import "testing"

func TestParseProductRow(t *testing.T) {
	r := NewRawRow(
		[]string{"Product Name", "SKU", "Category", "Selling Price", "Cost Price", "Current Stock", "Reorder Point", "Supplier"},
		[]string{"Widget", "W-1", "Gadgets", "19.99", "7.50", "42", "5", "Acme Co"},
	)
	rec, err := ParseProductRow(r)
	if err != nil {
		t.Fatalf("ParseProductRow() error = %v", err)
	}

	if rec.Name != "Widget" {
		t.Errorf("Name = %q, want %q", rec.Name, "Widget")
	}
	if rec.SKU != "W-1" {
		t.Errorf("SKU = %q, want %q", rec.SKU, "W-1")
	}
	if rec.Category != "Gadgets" {
		t.Errorf("Category = %q, want %q", rec.Category, "Gadgets")
	}
	if rec.SellingPrice != "19.99" {
		t.Errorf("SellingPrice = %q, want %q", rec.SellingPrice, "19.99")
	}
	if rec.CostPrice != "7.50" {
		t.Errorf("CostPrice = %q, want %q", rec.CostPrice, "7.50")
	}
	if rec.CurrentStock != 42 {
		t.Errorf("CurrentStock = %d, want 42", rec.CurrentStock)
	}
	if rec.ReorderPoint != 5 {
		t.Errorf("ReorderPoint = %d, want 5", rec.ReorderPoint)
	}
	if rec.SupplierName != "Acme Co" {
		t.Errorf("SupplierName = %q, want %q", rec.SupplierName, "Acme Co")
	}
}

func TestParseProductRow_Defaults(t *testing.T) {
	r := NewRawRow([]string{"Product Name", "SKU"}, []string{"Widget", "W-1"})
	rec, err := ParseProductRow(r)
	if err != nil {
		t.Fatalf("ParseProductRow() error = %v", err)
	}

	if rec.Category != Defaults.Category {
		t.Errorf("Category = %q, want default %q", rec.Category, Defaults.Category)
	}
	if rec.SellingPrice != "0.00" || rec.CostPrice != "0.00" {
		t.Errorf("prices = (%q, %q), want (0.00, 0.00)", rec.SellingPrice, rec.CostPrice)
	}
	if rec.CurrentStock != Defaults.CurrentStock {
		t.Errorf("CurrentStock = %d, want default %d", rec.CurrentStock, Defaults.CurrentStock)
	}
	if rec.ReorderPoint != Defaults.ReorderPoint {
		t.Errorf("ReorderPoint = %d, want default %d", rec.ReorderPoint, Defaults.ReorderPoint)
	}
	if rec.LeadTime != Defaults.LeadTime {
		t.Errorf("LeadTime = %d, want default %d", rec.LeadTime, Defaults.LeadTime)
	}
	if rec.SupplierName != Defaults.SupplierName {
		t.Errorf("SupplierName = %q, want default %q", rec.SupplierName, Defaults.SupplierName)
	}
	if rec.Location != Defaults.Location {
		t.Errorf("Location = %q, want default %q", rec.Location, Defaults.Location)
	}
	if rec.SupplierContact != "" || rec.Notes != "" {
		t.Errorf("SupplierContact/Notes = (%q, %q), want empty", rec.SupplierContact, rec.Notes)
	}
}

func TestParseProductRow_EmptyStockDefaultsToZero(t *testing.T) {
	r := NewRawRow([]string{"Product Name", "SKU", "Current Stock"}, []string{"Widget", "W-1", ""})
	rec, err := ParseProductRow(r)
	if err != nil {
		t.Fatalf("ParseProductRow() error = %v", err)
	}
	if rec.CurrentStock != 0 {
		t.Errorf("CurrentStock = %d, want 0", rec.CurrentStock)
	}
}

func TestParseProductRow_LenientNumerics(t *testing.T) {
	// Unparseable numbers fall back to defaults instead of failing the
	// row; missing inventory data is recoverable, missing sale amounts
	// are not.
	r := NewRawRow(
		[]string{"Product Name", "SKU", "Current Stock", "Reorder Point", "Cost Price"},
		[]string{"Widget", "W-1", "plenty", "soon", "cheap"},
	)
	rec, err := ParseProductRow(r)
	if err != nil {
		t.Fatalf("ParseProductRow() error = %v", err)
	}
	if rec.CurrentStock != Defaults.CurrentStock {
		t.Errorf("CurrentStock = %d, want default %d", rec.CurrentStock, Defaults.CurrentStock)
	}
	if rec.ReorderPoint != Defaults.ReorderPoint {
		t.Errorf("ReorderPoint = %d, want default %d", rec.ReorderPoint, Defaults.ReorderPoint)
	}
	if rec.CostPrice != "0.00" {
		t.Errorf("CostPrice = %q, want %q", rec.CostPrice, "0.00")
	}
}

func TestParseProductRow_Errors(t *testing.T) {
	tests := []struct {
		name    string
		row     RawRow
		wantErr string
	}{
		{
			name:    "missing name",
			row:     NewRawRow([]string{"Current Stock"}, []string{"5"}),
			wantErr: "Product name is required",
		},
		{
			name:    "missing sku",
			row:     NewRawRow([]string{"Product Name", "Current Stock"}, []string{"Widget", "5"}),
			wantErr: "SKU is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProductRow(tt.row)
			if err == nil {
				t.Fatal("ParseProductRow() error = nil, want error")
			}
			if err.Error() != tt.wantErr {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}
