package importer

import (
	"fmt"
	"strings"
	"time"
)

// ImportType describes what kind of records a CSV file contains, decided
// from its header row alone.
type ImportType string

const (
	TypeSales        ImportType = "sales"
	TypeProducts     ImportType = "products"
	TypeMixed        ImportType = "mixed"
	TypeUndetermined ImportType = "undetermined"
)

// RawRow is one CSV data line keyed by the file's original header text.
// Header order is preserved so that fuzzy field resolution is
// deterministic: two calls with the same row always scan headers in the
// same sequence.
type RawRow struct {
	headers []string
	values  map[string]string
}

// NewRawRow pairs a header row with one line of cell values. Extra cells
// beyond the header count are dropped; missing cells read as empty.
func NewRawRow(headers, cells []string) RawRow {
	values := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(cells) {
			values[h] = cells[i]
		} else {
			values[h] = ""
		}
	}
	return RawRow{headers: headers, values: values}
}

// Get returns the cell under the exact header text.
func (r RawRow) Get(header string) (string, bool) {
	v, ok := r.values[header]
	return v, ok
}

// Headers returns the row's header texts in file order.
func (r RawRow) Headers() []string {
	return r.headers
}

// Date is a calendar date without a time component. It marshals as
// YYYY-MM-DD so parsed dates round-trip through JSON unchanged.
type Date struct {
	time.Time
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = Date{t}
	return nil
}

// SalesRecord is one sale event in canonical form. Money fields are
// decimal strings with exactly two fractional digits.
//
// Profit is set equal to TotalRevenue at parse time. It is a placeholder:
// the inventory layer recomputes it from the authoritative cost price
// after the import lands, so the parse-time value is never user-facing.
type SalesRecord struct {
	SKU          string `json:"sku"`
	ProductName  string `json:"productName"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unitPrice"`
	TotalRevenue string `json:"totalRevenue"`
	TotalCost    string `json:"totalCost"`
	Profit       string `json:"profit"`
	SaleDate     Date   `json:"saleDate"`
	Marketplace  string `json:"marketplace"`
	Notes        string `json:"notes"`
}

// ProductRecord is one product/inventory row in canonical form.
type ProductRecord struct {
	Name            string `json:"name"`
	SKU             string `json:"sku"`
	Category        string `json:"category"`
	SellingPrice    string `json:"sellingPrice"`
	CostPrice       string `json:"costPrice"`
	CurrentStock    int    `json:"currentStock"`
	ReorderPoint    int    `json:"reorderPoint"`
	LeadTime        int    `json:"leadTime"`
	SupplierName    string `json:"supplierName"`
	SupplierContact string `json:"supplierContact"`
	Location        string `json:"location"`
	Notes           string `json:"notes"`
}

// ParseResult is the outcome of one ParseCSV call. Records appear in file
// order; Errors holds one human-readable string per failure, each tagged
// with the originating spreadsheet row number.
type ParseResult struct {
	Type         ImportType      `json:"type"`
	SalesData    []SalesRecord   `json:"salesData"`
	ProductsData []ProductRecord `json:"productsData"`
	Errors       []string        `json:"errors"`
}
