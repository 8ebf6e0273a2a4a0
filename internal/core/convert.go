package core

// convert.go provides the field parsers that turn raw sheet cells into typed values.
//
// The sheet is edited by hand in Swedish and English spreadsheet locales, so
// cells arrive in several shapes:
//   - Comma or period as decimal separator ("-2,5" and "-2.5")
//   - Unicode minus (U+2212) pasted from web pages
//   - Degree markers ("°C", "C") left in temperature cells
//   - Yes/no answers in either language ("nej", "no", "false", "0")
//
// None of these functions return errors. Unparseable input degrades to a
// nil value or a default, and the assembler decides what that means.

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericRegex validates that a string is a plain decimal number after cleanup.
// Matches integers, decimals, and scientific notation. Digit runs may be
// grouped with single underscores between digits, as in "1_000".
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(_\d+)*(\.(\d+(_\d+)*)?)?|\.\d+(_\d+)*)([eE][+-]?\d+(_\d+)*)?$`)

// numberCleaner maps unicode minus and the decimal comma to ASCII and drops
// degree markers, including a bare C.
var numberCleaner = strings.NewReplacer(
	"\u2212", "-",
	"\u00b0", "",
	"C", "",
	"c", "",
	",", ".",
)

// inactiveTokens are the only values that mark a product as inactive.
var inactiveTokens = map[string]bool{
	"no":    true,
	"nej":   true,
	"false": true,
	"0":     true,
}

// ParseNumber converts a cell to a Number.
// Returns nil for empty input, input that is not a number after cleanup,
// and values outside the float64 range.
func ParseNumber(s string) *Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	s = strings.TrimSpace(numberCleaner.Replace(s))
	if !numericRegex.MatchString(s) {
		return nil
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
	if err != nil || math.IsInf(f, 0) {
		return nil
	}

	n := Number(f)
	return &n
}

// ParseBool converts an active flag to a bool.
// Everything except an explicit negative, including blank and garbage, is true.
func ParseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return !inactiveTokens[s]
}

// NormalizeHeader produces the lookup key for a header cell:
// BOM and surrounding whitespace removed, lower-cased.
func NormalizeHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.ToLower(strings.TrimSpace(s))
}

// MakeHeaderIndex creates a HeaderIndex from a CSV header row.
// When two headers normalize to the same key the later column wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[NormalizeHeader(h)] = i
	}
	return idx
}

// optionalText returns a pointer to the trimmed value, or nil if it is blank.
func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
