// Package isbn validates and normalizes International Standard Book Numbers.
//
// It covers both the 10- and 13-character forms, converts ISBN-10 values to
// their 978-prefixed ISBN-13 equivalent, and selects the best available
// identifier from a pair of raw candidates. All functions are pure; malformed
// input yields an empty result, never an error.
package isbn

import "regexp"

var nonISBNChars = regexp.MustCompile(`[^0-9Xx]`)

// Normalize strips everything except digits and the letter X from a raw
// identifier and upper-cases the result. Returns "" for empty input.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	cleaned := nonISBNChars.ReplaceAllString(raw, "")
	// Only X can be lowercase after stripping
	out := []byte(cleaned)
	for i, c := range out {
		if c == 'x' {
			out[i] = 'X'
		}
	}
	return string(out)
}

// IsValidISBN10 reports whether s normalizes to a checksum-valid ISBN-10.
// The first 9 characters must be digits weighted 1..9; the check character
// is a digit or X (worth 10) and must equal the weighted sum modulo 11.
func IsValidISBN10(s string) bool {
	n := Normalize(s)
	if len(n) != 10 {
		return false
	}
	total := 0
	for i := 0; i < 9; i++ {
		c := n[i]
		if c < '0' || c > '9' {
			return false
		}
		total += (i + 1) * int(c-'0')
	}
	var checkVal int
	switch c := n[9]; {
	case c == 'X':
		checkVal = 10
	case c >= '0' && c <= '9':
		checkVal = int(c - '0')
	default:
		return false
	}
	return total%11 == checkVal
}

// IsValidISBN13 reports whether s normalizes to a checksum-valid ISBN-13.
// Weights alternate 1 and 3 per digit; the sum must be divisible by 10.
func IsValidISBN13(s string) bool {
	n := Normalize(s)
	if len(n) != 13 {
		return false
	}
	total := 0
	for i := 0; i < 13; i++ {
		c := n[i]
		if c < '0' || c > '9' {
			return false
		}
		w := 1
		if i%2 == 1 {
			w = 3
		}
		total += w * int(c-'0')
	}
	return total%10 == 0
}

// ISBN10To13 converts an ISBN-10 to its ISBN-13 form by prepending the 978
// prefix and recomputing the check digit. Returns "" if the input does not
// normalize to exactly 10 characters.
func ISBN10To13(isbn10 string) string {
	n := Normalize(isbn10)
	if len(n) != 10 {
		return ""
	}
	core := "978" + n[:9]
	total := 0
	for i := 0; i < len(core); i++ {
		w := 1
		if i%2 == 1 {
			w = 3
		}
		total += w * int(core[i]-'0')
	}
	check := (10 - total%10) % 10
	return core + string(byte('0'+check))
}

// PickBest chooses the best identifier pair from two raw candidates.
// A valid ISBN-13 is trusted over conversion from ISBN-10 even when both are
// present; the ISBN-10 side passes through untouched in that case. When only
// the ISBN-10 validates, both normalized forms are derived from it. Returns
// ("", "") when neither candidate validates.
func PickBest(isbn13Raw, isbn10Raw string) (isbn13, isbn10 string) {
	if IsValidISBN13(isbn13Raw) {
		return Normalize(isbn13Raw), isbn10Raw
	}
	if IsValidISBN10(isbn10Raw) {
		return ISBN10To13(isbn10Raw), Normalize(isbn10Raw)
	}
	return "", ""
}
