package importer

// products.go parses one raw row into a canonical product record. Unlike
// sales parsing, numeric fields here are lenient: a stock count or cost
// that fails to parse falls back to its default instead of rejecting the
// row, because missing inventory data is recoverable (zero-fill) while a
// sale with an unknown amount is not.

import "errors"

// ParseProductRow converts a raw CSV row into a ProductRecord. Only name
// and SKU are required; every other field has a documented default.
func ParseProductRow(row RawRow) (ProductRecord, error) {
	name, ok := Resolve(row, productNameCandidates)
	if !ok {
		return ProductRecord{}, errors.New("Product name is required")
	}

	sku, ok := Resolve(row, skuCandidates)
	if !ok {
		return ProductRecord{}, errors.New("SKU is required")
	}

	return ProductRecord{
		Name:            name,
		SKU:             sku,
		Category:        resolveOr(row, categoryCandidates, Defaults.Category),
		SellingPrice:    resolveMoney(row, sellingPriceCandidates),
		CostPrice:       resolveMoney(row, costPriceCandidates),
		CurrentStock:    resolveInt(row, currentStockCandidates, Defaults.CurrentStock),
		ReorderPoint:    resolveInt(row, reorderPointCandidates, Defaults.ReorderPoint),
		LeadTime:        resolveInt(row, leadTimeCandidates, Defaults.LeadTime),
		SupplierName:    resolveOr(row, supplierNameCandidates, Defaults.SupplierName),
		SupplierContact: resolveOr(row, supplierContactCandidates, ""),
		Location:        resolveOr(row, locationCandidates, Defaults.Location),
		Notes:           resolveOr(row, notesCandidates, ""),
	}, nil
}

// resolveMoney resolves and parses a money field, falling back to "0.00"
// when the field is missing or not numeric.
func resolveMoney(row RawRow, candidates []string) string {
	if s, ok := Resolve(row, candidates); ok {
		if d, ok := parseDecimal(s); ok {
			return moneyString(d)
		}
	}
	return "0.00"
}

// resolveInt resolves and parses an integer field, falling back to the
// given default when the field is missing or not numeric.
func resolveInt(row RawRow, candidates []string, fallback int) int {
	if s, ok := Resolve(row, candidates); ok {
		if n, ok := parseIntTruncate(s); ok {
			return n
		}
	}
	return fallback
}
