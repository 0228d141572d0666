// Package normalize contains the field-level parsers applied to canonical
// record values: publication dates to ISO-8601, language codes to BCP-47
// shape, currency codes to ISO-4217 shape, and price amounts to decimals.
//
// Every parser degrades unparseable input to its empty value; none of them
// return errors. The upstream sources routinely carry "nan" sentinel strings
// from earlier tabular processing, which are treated as absent.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// YYYY, YYYY-MM or YYYY-MM-DD
	isoDateRe = regexp.MustCompile(`^\d{4}(-\d{2}){0,2}$`)
	bcp47Re   = regexp.MustCompile(`^[A-Za-z]{2,3}(-[A-Za-z0-9]{2,8})*$`)
	ccyRe     = regexp.MustCompile(`^[A-Z]{3}$`)
)

// IsBlank reports whether a raw field value carries no information: empty,
// whitespace-only, or the "nan" sentinel inherited from tabular exports.
func IsBlank(s string) bool {
	t := strings.TrimSpace(s)
	return t == "" || strings.EqualFold(t, "nan")
}

// Clean trims a raw field value and maps blanks and "nan" sentinels to "".
func Clean(s string) string {
	if IsBlank(s) {
		return ""
	}
	return strings.TrimSpace(s)
}

// DateISO normalizes a partial or full date string to zero-padded ISO-8601:
//
//	"2001"       -> "2001-01-01"
//	"2001-7"     -> "2001-07-01"
//	"2001-07-15" -> "2001-07-15"
//
// Day-level input is checked against the real calendar; anything invalid
// yields "".
func DateISO(s string) string {
	s = Clean(s)
	if s == "" || !isoDateRe.MatchString(s) {
		return ""
	}

	parts := strings.Split(s, "-")
	switch len(parts) {
	case 1:
		y, err := strconv.Atoi(parts[0])
		if err != nil {
			return ""
		}
		return fmt.Sprintf("%04d-01-01", y)
	case 2:
		y, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return ""
		}
		return fmt.Sprintf("%04d-%02d-01", y, m)
	case 3:
		y, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		d, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return ""
		}
		// Reject dates that do not exist on the calendar. time.Date
		// normalizes overflow (Feb 30 -> Mar 2), so round-trip the parts.
		dt := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
		if dt.Year() != y || dt.Month() != time.Month(m) || dt.Day() != d {
			return ""
		}
		return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
	}
	return ""
}

// LangBCP47 returns the trimmed language code if it has BCP-47 shape
// (e.g. "es", "en-US", "pt-BR"), otherwise "".
func LangBCP47(s string) string {
	s = Clean(s)
	if s == "" || !bcp47Re.MatchString(s) {
		return ""
	}
	return s
}

// CurrencyISO4217 upper-cases the trimmed code and returns it if it is
// exactly three letters (e.g. "EUR", "USD"), otherwise "".
func CurrencyISO4217(s string) string {
	s = strings.ToUpper(Clean(s))
	if s == "" || !ccyRe.MatchString(s) {
		return ""
	}
	return s
}

// Price parses a price amount into a decimal, accepting comma as a decimal
// separator fallback. Returns nil for blank or non-numeric input.
func Price(s string) *decimal.Decimal {
	s = Clean(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		d, err = decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
		if err != nil {
			return nil
		}
	}
	return &d
}
