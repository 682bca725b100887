package importer

// convert.go handles the messy reality of user-exported CSV cells:
// currency symbols and thousands separators in numbers, accounting-style
// negatives, Excel formula prefixes (="value"), and a handful of
// reasonable date spellings. Anything fancier than that is out of scope;
// callers get a clean parse-or-fail answer.

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts are the accepted date formats, ISO first since that is what
// the CSV templates emit.
var dateLayouts = []string{
	"2006-01-02", "2006/01/02", "2006.01.02",
	"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006",
	"Jan 2, 2006", "2 Jan 2006",
	"20060102",
}

// cleanCell removes common CSV artifacts from a cell value: surrounding
// whitespace, the Excel formula prefix (="..."), and stray quotes.
func cleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// parseDate parses a calendar date, trying each accepted layout in order.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseDecimal parses a money or quantity cell. It strips currency
// symbols and thousands separators and understands the accounting
// convention of parentheses for negative amounts.
func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if negative {
		s = "-" + s
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// parseIntTruncate parses an integer cell, truncating any fractional
// part. "3.7" parses as 3; "3.7 units" does not parse.
func parseIntTruncate(s string) (int, bool) {
	d, ok := parseDecimal(s)
	if !ok {
		return 0, false
	}
	return int(d.IntPart()), true
}

// moneyString formats a decimal as a string with exactly two fractional
// digits, the canonical form for all money fields.
func moneyString(d decimal.Decimal) string {
	return d.StringFixed(2)
}
