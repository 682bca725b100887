package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"sellerpulse/internal/importer"
)

// insertSales writes sales rows inside an open transaction.
//
// The parser emits profit equal to revenue because a CSV row does not
// know the product's cost price. When the SKU matches a stored product,
// total cost and profit are recomputed here from the authoritative
// cost price before insert.
func insertSales(ctx context.Context, tx pgx.Tx, importID uuid.UUID, sales []importer.SalesRecord, costs map[string]string) (int, error) {
	count := 0
	for _, sale := range sales {
		totalCost := sale.TotalCost
		profit := sale.Profit

		if cost, ok := costs[sale.SKU]; ok {
			recomputedCost, recomputedProfit, err := reconcileProfit(sale, cost)
			if err != nil {
				return count, fmt.Errorf("reconcile profit for %s: %w", sale.SKU, err)
			}
			totalCost = recomputedCost
			profit = recomputedProfit
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO sales (
				import_id, sku, product_name, category, quantity,
				unit_price, total_revenue, total_cost, profit,
				sale_date, marketplace, notes
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`, importID, sale.SKU, sale.ProductName, sale.Category, sale.Quantity,
			pgNumeric(sale.UnitPrice), pgNumeric(sale.TotalRevenue),
			pgNumeric(totalCost), pgNumeric(profit),
			pgDate(sale.SaleDate), sale.Marketplace, pgText(sale.Notes))
		if err != nil {
			return count, fmt.Errorf("insert sale %s: %w", sale.SKU, err)
		}

		if err := decrementStock(ctx, tx, sale.SKU, sale.Quantity); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// reconcileProfit computes total cost and profit for a sale from the
// stored per-unit cost price.
func reconcileProfit(sale importer.SalesRecord, costPrice string) (totalCost, profit string, err error) {
	unitCost, err := decimal.NewFromString(costPrice)
	if err != nil {
		return "", "", fmt.Errorf("parse cost price %q: %w", costPrice, err)
	}
	revenue, err := decimal.NewFromString(sale.TotalRevenue)
	if err != nil {
		return "", "", fmt.Errorf("parse revenue %q: %w", sale.TotalRevenue, err)
	}

	cost := unitCost.Mul(decimal.NewFromInt(int64(sale.Quantity)))
	return cost.StringFixed(2), revenue.Sub(cost).StringFixed(2), nil
}
