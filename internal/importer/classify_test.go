package importer

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    ImportType
	}{
		{
			name:    "sales headers",
			headers: []string{"SKU", "Quantity", "Unit Price", "Sale Date"},
			want:    TypeSales,
		},
		{
			name:    "product headers",
			headers: []string{"Product Name", "SKU", "Current Stock"},
			want:    TypeProducts,
		},
		{
			name:    "mixed headers",
			headers: []string{"SKU", "Quantity", "Sale Date", "Current Stock", "Supplier"},
			want:    TypeMixed,
		},
		{
			name:    "unrecognizable headers",
			headers: []string{"Foo", "Bar", "Baz"},
			want:    TypeUndetermined,
		},
		{
			name:    "empty header set",
			headers: nil,
			want:    TypeUndetermined,
		},
		{
			name:    "signal inside longer header",
			headers: []string{"Order Date (UTC)", "SKU"},
			want:    TypeSales,
		},
		{
			name:    "units sold variant",
			headers: []string{"Units Sold", "Item"},
			want:    TypeSales,
		},
		{
			name:    "reorder point counts as product signal",
			headers: []string{"Reorder Point", "Item Code"},
			want:    TypeProducts,
		},
		{
			name:    "mixed case and padding",
			headers: []string{"  PRODUCT NAME  ", " supplier "},
			want:    TypeProducts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.headers); got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.headers, got, tt.want)
			}
		})
	}
}
