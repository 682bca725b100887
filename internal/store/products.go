package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"sellerpulse/internal/importer"
)

// Product is a stored product row.
type Product struct {
	ID              uuid.UUID `json:"id"`
	SKU             string    `json:"sku"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	SellingPrice    string    `json:"sellingPrice"`
	CostPrice       string    `json:"costPrice"`
	CurrentStock    int       `json:"currentStock"`
	ReorderPoint    int       `json:"reorderPoint"`
	LeadTime        int       `json:"leadTime"`
	SupplierName    string    `json:"supplierName"`
	SupplierContact string    `json:"supplierContact,omitempty"`
	Location        string    `json:"location"`
	Notes           string    `json:"notes,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// upsertProducts inserts or updates products by SKU inside an open
// transaction. An existing row keeps its identity; imported fields
// overwrite the stored ones.
func upsertProducts(ctx context.Context, tx pgx.Tx, products []importer.ProductRecord) (int, error) {
	count := 0
	for _, p := range products {
		_, err := tx.Exec(ctx, `
			INSERT INTO products (
				sku, name, category, selling_price, cost_price,
				current_stock, reorder_point, lead_time_days,
				supplier_name, supplier_contact, location, notes
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (sku) DO UPDATE SET
				name = EXCLUDED.name,
				category = EXCLUDED.category,
				selling_price = EXCLUDED.selling_price,
				cost_price = EXCLUDED.cost_price,
				current_stock = EXCLUDED.current_stock,
				reorder_point = EXCLUDED.reorder_point,
				lead_time_days = EXCLUDED.lead_time_days,
				supplier_name = EXCLUDED.supplier_name,
				supplier_contact = EXCLUDED.supplier_contact,
				location = EXCLUDED.location,
				notes = EXCLUDED.notes,
				updated_at = NOW()
		`, p.SKU, p.Name, p.Category,
			pgNumeric(p.SellingPrice), pgNumeric(p.CostPrice),
			p.CurrentStock, p.ReorderPoint, p.LeadTime,
			p.SupplierName, pgText(p.SupplierContact), p.Location, pgText(p.Notes))
		if err != nil {
			return count, fmt.Errorf("upsert product %s: %w", p.SKU, err)
		}
		count++
	}
	return count, nil
}

// LowStockProducts returns products at or below their reorder point.
// Products without a positive reorder point fall back to the configured
// threshold.
func (s *Store) LowStockProducts(ctx context.Context) ([]Product, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, sku, name, category,
			selling_price::text, cost_price::text,
			current_stock, reorder_point, lead_time_days,
			supplier_name, COALESCE(supplier_contact, ''), location,
			COALESCE(notes, ''), updated_at
		FROM products
		WHERE current_stock <= CASE WHEN reorder_point > 0 THEN reorder_point ELSE $1 END
		ORDER BY current_stock ASC, sku ASC
	`, s.lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Category,
			&p.SellingPrice, &p.CostPrice,
			&p.CurrentStock, &p.ReorderPoint, &p.LeadTime,
			&p.SupplierName, &p.SupplierContact, &p.Location,
			&p.Notes, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

// costPrices returns the stored cost price per SKU for the given SKUs.
// Unknown SKUs are simply absent from the result.
func costPrices(ctx context.Context, tx pgx.Tx, skus []string) (map[string]string, error) {
	if len(skus) == 0 {
		return map[string]string{}, nil
	}

	rows, err := tx.Query(ctx, `
		SELECT sku, cost_price::text
		FROM products
		WHERE sku = ANY($1)
	`, skus)
	if err != nil {
		return nil, fmt.Errorf("query cost prices: %w", err)
	}
	defer rows.Close()

	prices := make(map[string]string, len(skus))
	for rows.Next() {
		var sku, cost string
		if err := rows.Scan(&sku, &cost); err != nil {
			return nil, fmt.Errorf("scan cost price: %w", err)
		}
		prices[sku] = cost
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cost prices: %w", err)
	}

	return prices, nil
}

// decrementStock reduces current stock for each sold SKU, clamped at
// zero. SKUs without a product row are ignored.
func decrementStock(ctx context.Context, tx pgx.Tx, sku string, quantity int) error {
	_, err := tx.Exec(ctx, `
		UPDATE products
		SET current_stock = GREATEST(current_stock - $2, 0),
			updated_at = NOW()
		WHERE sku = $1
	`, sku, quantity)
	if err != nil {
		return fmt.Errorf("decrement stock for %s: %w", sku, err)
	}
	return nil
}
