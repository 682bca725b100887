package importer

// parser.go is the batch orchestrator: raw CSV text in, ParseResult out.

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// Fatal whole-batch errors. These are the only entries that can appear
// alone in ParseResult.Errors with both data slices empty.
const (
	errEmptyFile = "CSV file is empty or has no valid data rows"

	errUndetermined = "Unable to determine CSV type. Include sales columns " +
		"(quantity, unit price, sale date) or product columns " +
		"(product name, current stock, supplier), or download a template."
)

// ParseCSV tokenizes raw CSV text, classifies it from its header row, and
// parses every data row with the appropriate parser(s). It never returns
// a Go error: empty input and an unrecognizable header set become a
// single fatal entry in the result's error list, and each bad data row
// becomes one "Row N: ..." entry without stopping the batch.
//
// For a mixed file both parsers run on every row independently; a row may
// legitimately yield both a sales record and a product record, and a
// failure on one side does not block the other.
//
// Row numbers in error messages are spreadsheet line numbers: data row
// index + 2, accounting for the header line and 1-based display.
func ParseCSV(text string) ParseResult {
	result := ParseResult{
		Type:         TypeUndetermined,
		SalesData:    []SalesRecord{},
		ProductsData: []ProductRecord{},
		Errors:       []string{},
	}

	headers, rows := tokenize(text)
	if len(rows) == 0 {
		result.Errors = append(result.Errors, errEmptyFile)
		return result
	}

	result.Type = Classify(headers)
	if result.Type == TypeUndetermined {
		result.Errors = append(result.Errors, errUndetermined)
		return result
	}

	for i, row := range rows {
		rowNumber := i + 2

		if result.Type == TypeSales || result.Type == TypeMixed {
			rec, err := ParseSalesRow(row, rowNumber)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", rowNumber, err))
			} else {
				result.SalesData = append(result.SalesData, rec)
			}
		}

		if result.Type == TypeProducts || result.Type == TypeMixed {
			rec, err := ParseProductRow(row)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", rowNumber, err))
			} else {
				result.ProductsData = append(result.ProductsData, rec)
			}
		}
	}

	return result
}

// tokenize splits CSV text into a cleaned header row and one RawRow per
// non-empty data line. Rows with a different cell count than the header
// are tolerated; the reader is lenient and RawRow pads or drops cells.
func tokenize(text string) ([]string, []RawRow) {
	text = strings.TrimPrefix(text, "\uFEFF") // Excel UTF-8 BOM

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	headerRecord, err := reader.Read()
	if err != nil {
		return nil, nil
	}

	headers := make([]string, len(headerRecord))
	for i, h := range headerRecord {
		headers[i] = cleanCell(h)
	}

	var rows []RawRow
	for {
		record, err := reader.Read()
		if err != nil {
			// io.EOF ends the scan. With lazy quotes and free field
			// counts the reader has no other failure mode, so stray
			// quotes stay in the batch and row numbers keep matching
			// the user's spreadsheet lines.
			break
		}

		cells := make([]string, len(record))
		empty := true
		for i, c := range record {
			cells[i] = cleanCell(c)
			if cells[i] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, NewRawRow(headers, cells))
	}

	return headers, rows
}
