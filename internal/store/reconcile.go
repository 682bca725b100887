package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sellerpulse/internal/importer"
	"sellerpulse/internal/logging"
)

// ImportSummary reports what a committed import changed.
type ImportSummary struct {
	ImportID      uuid.UUID           `json:"importId"`
	ImportType    importer.ImportType `json:"importType"`
	SalesInserted int                 `json:"salesInserted"`
	ProductsSaved int                 `json:"productsSaved"`
	ErrorCount    int                 `json:"errorCount"`
	GoalsAchieved int                 `json:"goalsAchieved"`
}

// ReconcileImport commits a parse result in a single transaction:
// products are upserted first so sales in the same file can reconcile
// profit against their cost prices, stock is decremented per sold SKU,
// the import is recorded, and goal progress is refreshed.
//
// Either everything lands or nothing does.
func (s *Store) ReconcileImport(ctx context.Context, fileName string, result importer.ParseResult) (*ImportSummary, error) {
	if result.Type == importer.TypeUndetermined {
		return nil, fmt.Errorf("cannot commit an undetermined import")
	}

	logger := logging.WithFields(ctx, "file_name", fileName, "import_type", result.Type)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import tx: %w", err)
	}
	defer tx.Rollback(ctx)

	importID, err := insertImport(ctx, tx, fileName, result)
	if err != nil {
		return nil, err
	}

	productsSaved, err := upsertProducts(ctx, tx, result.ProductsData)
	if err != nil {
		return nil, err
	}

	skus := make([]string, 0, len(result.SalesData))
	for _, sale := range result.SalesData {
		skus = append(skus, sale.SKU)
	}
	costs, err := costPrices(ctx, tx, skus)
	if err != nil {
		return nil, err
	}

	salesInserted, err := insertSales(ctx, tx, importID, result.SalesData, costs)
	if err != nil {
		return nil, err
	}

	goalsAchieved, err := refreshGoalProgress(ctx, tx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit import tx: %w", err)
	}

	logger.Info("import committed",
		"import_id", importID,
		"sales_inserted", salesInserted,
		"products_saved", productsSaved,
		"goals_achieved", goalsAchieved,
	)

	return &ImportSummary{
		ImportID:      importID,
		ImportType:    result.Type,
		SalesInserted: salesInserted,
		ProductsSaved: productsSaved,
		ErrorCount:    len(result.Errors),
		GoalsAchieved: goalsAchieved,
	}, nil
}
