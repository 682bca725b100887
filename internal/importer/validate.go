package importer

// validate.go is a second, independent pass over already-parsed records.
// The upload flow lets a user hand-edit parsed rows in a preview before
// committing; re-validating the edited set must not silently re-apply
// defaults that would mask a correction, so this pass only reports and
// never coerces or fills anything in.

import "fmt"

// ValidateSales re-checks required fields and business constraints on
// canonical sales records. It returns one message per violation, each
// tagged with the record's 1-based position.
func ValidateSales(records []SalesRecord) []string {
	var errs []string
	for i, rec := range records {
		tag := fmt.Sprintf("Record %d", i+1)
		if rec.SKU == "" {
			errs = append(errs, tag+": SKU is required")
		}
		if rec.Quantity <= 0 {
			errs = append(errs, tag+": quantity must be greater than zero")
		}
		if d, ok := parseDecimal(rec.UnitPrice); !ok {
			errs = append(errs, tag+": unit price is not a valid amount")
		} else if d.IsNegative() {
			errs = append(errs, tag+": unit price cannot be negative")
		}
		if d, ok := parseDecimal(rec.TotalCost); !ok {
			errs = append(errs, tag+": total cost is not a valid amount")
		} else if d.IsNegative() {
			errs = append(errs, tag+": total cost cannot be negative")
		}
		if rec.SaleDate.IsZero() {
			errs = append(errs, tag+": sale date is required")
		}
	}
	return errs
}

// ValidateProducts re-checks required fields and non-negativity on
// canonical product records.
func ValidateProducts(records []ProductRecord) []string {
	var errs []string
	for i, rec := range records {
		tag := fmt.Sprintf("Record %d", i+1)
		if rec.Name == "" {
			errs = append(errs, tag+": product name is required")
		}
		if rec.SKU == "" {
			errs = append(errs, tag+": SKU is required")
		}
		for _, f := range []struct {
			label string
			value string
		}{
			{"selling price", rec.SellingPrice},
			{"cost price", rec.CostPrice},
		} {
			if d, ok := parseDecimal(f.value); !ok {
				errs = append(errs, fmt.Sprintf("%s: %s is not a valid amount", tag, f.label))
			} else if d.IsNegative() {
				errs = append(errs, fmt.Sprintf("%s: %s cannot be negative", tag, f.label))
			}
		}
		if rec.CurrentStock < 0 {
			errs = append(errs, tag+": current stock cannot be negative")
		}
		if rec.ReorderPoint < 0 {
			errs = append(errs, tag+": reorder point cannot be negative")
		}
	}
	return errs
}
