package importer

// resolver.go maps canonical field names to whatever header text a user's
// spreadsheet actually carries. All fuzzy matching in the importer lives
// here; the parsers only ever see resolved string values.

import (
	"strings"
	"unicode"
)

// Resolve finds the value for one canonical field in a raw row, given the
// acceptable header spellings for that field in priority order.
//
// For each candidate spelling, four strategies run in sequence, each
// scanning the row's headers in file order and short-circuiting on the
// first non-empty value:
//
//  1. Exact key match (headers that are already canonical).
//  2. Case-insensitive, whitespace-trimmed match.
//  3. Normalized match: strip every non-alphanumeric rune and lowercase,
//     so "Unit Price", "unit_price", and "UnitPrice" all collide.
//  4. Bidirectional substring containment on the normalized forms, so
//     "SKU" finds "Product SKU Code" and vice versa.
//
// Empty cells never satisfy a match; resolution moves on to the next
// header, strategy, or candidate. The cascade order is the tie-break
// policy: the first strategy to produce a usable value wins, not the
// closest match by some score, which keeps results deterministic.
func Resolve(row RawRow, candidates []string) (string, bool) {
	for _, cand := range candidates {
		if v, ok := row.Get(cand); ok && v != "" {
			return v, true
		}

		want := strings.ToLower(strings.TrimSpace(cand))
		for _, h := range row.headers {
			if strings.ToLower(strings.TrimSpace(h)) == want {
				if v := row.values[h]; v != "" {
					return v, true
				}
			}
		}

		norm := normalizeHeader(cand)
		if norm == "" {
			continue
		}
		for _, h := range row.headers {
			if normalizeHeader(h) == norm {
				if v := row.values[h]; v != "" {
					return v, true
				}
			}
		}

		for _, h := range row.headers {
			nh := normalizeHeader(h)
			if nh == "" {
				continue
			}
			if strings.Contains(nh, norm) || strings.Contains(norm, nh) {
				if v := row.values[h]; v != "" {
					return v, true
				}
			}
		}
	}
	return "", false
}

// resolveOr returns the resolved value or a fallback when no candidate
// matches.
func resolveOr(row RawRow, candidates []string, fallback string) string {
	if v, ok := Resolve(row, candidates); ok {
		return v
	}
	return fallback
}

// normalizeHeader reduces a header to lowercase alphanumerics only.
func normalizeHeader(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
