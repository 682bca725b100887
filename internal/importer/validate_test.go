package importer

import (
	"strings"
	"testing"
)

func validSalesRecord() SalesRecord {
	rec, err := ParseSalesRow(salesRow("ABC-1", "3", "9.99", "2024-01-15"), 2)
	if err != nil {
		panic(err)
	}
	return rec
}

func TestValidateSales_CleanRecordsPass(t *testing.T) {
	errs := ValidateSales([]SalesRecord{validSalesRecord(), validSalesRecord()})
	if len(errs) != 0 {
		t.Errorf("ValidateSales() = %v, want no errors", errs)
	}
}

func TestValidateSales_ReportsWithoutFixing(t *testing.T) {
	rec := validSalesRecord()
	rec.SKU = ""
	rec.Quantity = 0
	rec.UnitPrice = "-5.00"
	records := []SalesRecord{rec}

	errs := ValidateSales(records)

	if len(errs) != 3 {
		t.Fatalf("ValidateSales() = %v, want 3 errors", errs)
	}
	// The pass must only report; a hand-edited record is never mutated
	// or re-defaulted.
	if records[0].SKU != "" || records[0].Quantity != 0 || records[0].UnitPrice != "-5.00" {
		t.Errorf("record was mutated: %+v", records[0])
	}
	for _, e := range errs {
		if !strings.HasPrefix(e, "Record 1:") {
			t.Errorf("error %q not tagged with record position", e)
		}
	}
}

func TestValidateProducts(t *testing.T) {
	good := ProductRecord{
		Name: "Widget", SKU: "W-1",
		SellingPrice: "19.99", CostPrice: "7.50",
		CurrentStock: 4, ReorderPoint: 10,
	}
	if errs := ValidateProducts([]ProductRecord{good}); len(errs) != 0 {
		t.Errorf("ValidateProducts(good) = %v, want no errors", errs)
	}

	bad := good
	bad.Name = ""
	bad.CurrentStock = -1
	bad.CostPrice = "n/a"

	errs := ValidateProducts([]ProductRecord{good, bad})
	if len(errs) != 3 {
		t.Fatalf("ValidateProducts() = %v, want 3 errors", errs)
	}
	for _, e := range errs {
		if !strings.HasPrefix(e, "Record 2:") {
			t.Errorf("error %q should be tagged Record 2", e)
		}
	}
}
