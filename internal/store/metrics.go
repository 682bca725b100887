package store

import (
	"context"
	"fmt"
)

// MetricsSummary holds the dashboard KPI figures. Money values are
// fixed two-decimal strings matching the import payloads.
type MetricsSummary struct {
	TotalRevenue string       `json:"totalRevenue"`
	TotalProfit  string       `json:"totalProfit"`
	UnitsSold    int          `json:"unitsSold"`
	SaleCount    int          `json:"saleCount"`
	ProductCount int          `json:"productCount"`
	LowStock     int          `json:"lowStockCount"`
	TopProducts  []TopProduct `json:"topProducts"`
}

// TopProduct is one entry in the revenue leaderboard.
type TopProduct struct {
	SKU         string `json:"sku"`
	ProductName string `json:"productName"`
	Revenue     string `json:"revenue"`
	UnitsSold   int    `json:"unitsSold"`
}

// MetricsSummary aggregates KPIs across all recorded sales and products.
func (s *Store) MetricsSummary(ctx context.Context) (*MetricsSummary, error) {
	summary := &MetricsSummary{}

	if err := s.pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(total_revenue), 0)::text,
			COALESCE(SUM(profit), 0)::text,
			COALESCE(SUM(quantity), 0),
			COUNT(*)
		FROM sales
	`).Scan(&summary.TotalRevenue, &summary.TotalProfit,
		&summary.UnitsSold, &summary.SaleCount); err != nil {
		return nil, fmt.Errorf("aggregate sales: %w", err)
	}

	if err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (
				WHERE current_stock <= CASE WHEN reorder_point > 0 THEN reorder_point ELSE $1 END
			)
		FROM products
	`, s.lowStockThreshold).Scan(&summary.ProductCount, &summary.LowStock); err != nil {
		return nil, fmt.Errorf("aggregate products: %w", err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT sku, MAX(product_name), SUM(total_revenue)::text, SUM(quantity)
		FROM sales
		GROUP BY sku
		ORDER BY SUM(total_revenue) DESC
		LIMIT 5
	`)
	if err != nil {
		return nil, fmt.Errorf("query top products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tp TopProduct
		if err := rows.Scan(&tp.SKU, &tp.ProductName, &tp.Revenue, &tp.UnitsSold); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		summary.TopProducts = append(summary.TopProducts, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top products: %w", err)
	}

	return summary, nil
}
