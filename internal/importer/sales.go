package importer

// sales.go parses one raw row into a canonical sales record. Sales
// parsing is strict on purpose: a sale with an unknown quantity, price,
// or date is meaningless, so those failures reject the row rather than
// default-fill. The product parser is deliberately more forgiving; see
// products.go.

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseSalesRow converts a raw CSV row into a SalesRecord. rowNumber is
// the spreadsheet line number the user would see, used only for the
// traceability note on the record.
//
// SKU, sale date, quantity, and unit price are required; quantity and
// price must parse as numbers and the date as a real calendar date.
// Everything else falls back to documented defaults.
func ParseSalesRow(row RawRow, rowNumber int) (SalesRecord, error) {
	sku, ok := Resolve(row, skuCandidates)
	if !ok {
		return SalesRecord{}, errors.New("SKU is required for sales records")
	}

	dateStr, ok := Resolve(row, saleDateCandidates)
	if !ok {
		return SalesRecord{}, errors.New("Date is required for sales records")
	}

	qtyStr, ok := Resolve(row, quantityCandidates)
	if !ok {
		return SalesRecord{}, errors.New("Valid quantity is required for sales records")
	}
	quantity, ok := parseIntTruncate(qtyStr)
	if !ok {
		return SalesRecord{}, errors.New("Valid quantity is required for sales records")
	}

	priceStr, ok := Resolve(row, unitPriceCandidates)
	if !ok {
		return SalesRecord{}, errors.New("Valid price is required for sales records")
	}
	unitPrice, ok := parseDecimal(priceStr)
	if !ok {
		return SalesRecord{}, errors.New("Valid price is required for sales records")
	}

	saleDate, ok := parseDate(dateStr)
	if !ok {
		return SalesRecord{}, errors.New("Invalid date format")
	}

	totalRevenue := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	totalCost := Defaults.TotalCost
	if costStr, ok := Resolve(row, totalCostCandidates); ok {
		if cost, ok := parseDecimal(costStr); ok {
			totalCost = moneyString(cost)
		}
	}

	return SalesRecord{
		SKU:          sku,
		ProductName:  resolveOr(row, productNameCandidates, sku),
		Category:     resolveOr(row, categoryCandidates, Defaults.Category),
		Quantity:     quantity,
		UnitPrice:    moneyString(unitPrice),
		TotalRevenue: moneyString(totalRevenue),
		TotalCost:    totalCost,
		// Placeholder until the inventory layer supplies a cost price.
		Profit:      moneyString(totalRevenue),
		SaleDate:    DateOf(saleDate),
		Marketplace: resolveOr(row, marketplaceCandidates, Defaults.Marketplace),
		Notes:       resolveOr(row, notesCandidates, fmt.Sprintf("Imported from CSV row %d", rowNumber)),
	}, nil
}
