package store

// convert.go maps parsed record fields to pgtype values for inserts.
//
// Parser output carries money as fixed two-decimal strings, so the
// converters here are narrow: they only bridge to pgtype and never
// re-clean user input.

import (
	"github.com/jackc/pgx/v5/pgtype"

	"sellerpulse/internal/importer"
)

// pgText converts a string to pgtype.Text, NULL when empty.
func pgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// pgNumeric converts a decimal string to pgtype.Numeric.
// Invalid input becomes a NULL value; callers pass parser output,
// which is already normalized, so this only fails on programmer error.
func pgNumeric(s string) pgtype.Numeric {
	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		return pgtype.Numeric{Valid: false}
	}
	return n
}

// pgDate converts an importer.Date to pgtype.Date.
func pgDate(d importer.Date) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{Valid: false}
	}
	return pgtype.Date{Time: d.Time, Valid: true}
}
