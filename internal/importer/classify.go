package importer

// classify.go decides what kind of records a file contains by looking at
// its header row only. The signal words are deliberately loose: a header
// like "Sale Date (UTC)" still counts as a sales signal by substring.

import "strings"

var (
	salesSignals   = []string{"units sold", "quantity", "sale date", "date"}
	productSignals = []string{"product name", "current stock", "supplier", "reorder"}
)

// Classify inspects a header row and reports whether the file carries
// sales data, product data, or both. Headers are compared lower-cased and
// trimmed. A file matching neither signal set is TypeUndetermined, which
// callers must treat as fatal: there is no point reporting per-row errors
// against a schema we cannot recognize.
func Classify(headers []string) ImportType {
	lowered := make([]string, 0, len(headers))
	for _, h := range headers {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(h)))
	}

	hasSales := containsAnySignal(lowered, salesSignals)
	hasProducts := containsAnySignal(lowered, productSignals)

	switch {
	case hasSales && hasProducts:
		return TypeMixed
	case hasSales:
		return TypeSales
	case hasProducts:
		return TypeProducts
	default:
		return TypeUndetermined
	}
}

func containsAnySignal(headers, signals []string) bool {
	for _, h := range headers {
		for _, sig := range signals {
			if strings.Contains(h, sig) {
				return true
			}
		}
	}
	return false
}
