package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"sellerpulse/internal/importer"
)

// ImportRecord is one row of import history.
type ImportRecord struct {
	ID          uuid.UUID           `json:"id"`
	FileName    string              `json:"fileName"`
	ImportType  importer.ImportType `json:"importType"`
	SalesRows   int                 `json:"salesRows"`
	ProductRows int                 `json:"productRows"`
	ErrorCount  int                 `json:"errorCount"`
	Errors      []string            `json:"errors"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// insertImport records an import inside an open transaction and returns
// its generated ID.
func insertImport(ctx context.Context, tx pgx.Tx, fileName string, result importer.ParseResult) (uuid.UUID, error) {
	id := uuid.New()

	// nil slice would encode as SQL NULL against the NOT NULL column
	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO imports (id, file_name, import_type, sales_rows, product_rows, error_count, errors)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, fileName, string(result.Type),
		len(result.SalesData), len(result.ProductsData),
		len(errs), errs)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert import: %w", err)
	}

	return id, nil
}

// ListImports returns import history, newest first.
func (s *Store) ListImports(ctx context.Context, limit int) ([]ImportRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, file_name, import_type, sales_rows, product_rows, error_count, errors, created_at
		FROM imports
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list imports: %w", err)
	}
	defer rows.Close()

	records := make([]ImportRecord, 0, limit)
	for rows.Next() {
		var rec ImportRecord
		if err := rows.Scan(&rec.ID, &rec.FileName, &rec.ImportType,
			&rec.SalesRows, &rec.ProductRows, &rec.ErrorCount,
			&rec.Errors, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan import: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate imports: %w", err)
	}

	return records, nil
}
