// Package importer turns loosely-structured CSV spreadsheets into typed
// sales and product records.
//
// This package is the heart of the bulk import feature, containing all
// parsing logic independent of any transport or storage layer. It can be
// used by web handlers, CLI tools, or tests without modification.
//
// # Pipeline
//
// The entry point is [ParseCSV], which runs the full pipeline on raw CSV
// text:
//
//  1. Tokenize the text with header-row-as-keys semantics.
//  2. Classify the file as sales, products, or mixed from its header set.
//  3. Parse each row with the appropriate parser(s), resolving messy
//     human-written headers to canonical fields along the way.
//  4. Collect successes into typed slices and failures into a per-row
//     error list. A bad row never aborts the batch.
//
// # Field Resolution
//
// Users rarely name their columns the way we would. [Resolve] maps a
// priority-ordered list of acceptable header spellings to whatever the
// spreadsheet actually contains, using a cascade of matching strategies
// from exact match down to substring containment. Fuzzy matching is
// confined to this one boundary; everything past it is strongly typed.
//
// # Error Handling
//
// ParseCSV never returns a Go error. Empty input and an unrecognizable
// header set produce a single fatal entry in [ParseResult.Errors]; row
// failures produce one "Row N: ..." entry each. This lets upload UIs
// always render a preview-and-errors screen instead of a failure page.
//
// A second, report-only pass ([ValidateSales], [ValidateProducts]) exists
// for re-checking records a user has hand-edited in a preview; unlike the
// parsers it never coerces or fills defaults.
package importer
