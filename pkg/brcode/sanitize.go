package brcode

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	maxNameLength        = 25
	maxCityLength        = 15
	maxDescriptionLength = 25
	maxTxIDLength        = 25
)

// SanitizeName keeps ASCII letters, digits and spaces, upper-cases and trims the result
// and truncates it to 25 characters.
func SanitizeName(s string) string {
	s = strings.TrimSpace(strings.ToUpper(keep(s, isAlnumSpace)))
	return truncate(s, maxNameLength)
}

// SanitizeCity keeps ASCII letters only, or letters, digits and spaces when lenient is set.
// The result is upper-cased, trimmed and truncated to 15 characters.
func SanitizeCity(s string, lenient bool) string {
	allowed := isLetter
	if lenient {
		allowed = isAlnumSpace
	}

	s = strings.TrimSpace(strings.ToUpper(keep(s, allowed)))

	return truncate(s, maxCityLength)
}

// SanitizeDescription keeps ASCII letters, digits and spaces and truncates to 25 characters.
// Case is preserved.
func SanitizeDescription(s string) string {
	return truncate(strings.TrimSpace(keep(s, isAlnumSpace)), maxDescriptionLength)
}

// SanitizeTxID truncates the transaction id to 25 characters and falls back to DefaultTxID.
func SanitizeTxID(s string) string {
	if s == "" {
		return DefaultTxID
	}

	return truncate(s, maxTxIDLength)
}

// FormatAmount renders the amount with two decimals and a dot separator.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func keep(s string, allowed func(r rune) bool) string {
	return strings.Map(func(r rune) rune {
		if allowed(r) {
			return r
		}

		return -1
	}, s)
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	i := 0

	for pos := range s {
		if i == n {
			return s[:pos]
		}

		i++
	}

	return s
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isAlnumSpace(r rune) bool {
	return isLetter(r) || (r >= '0' && r <= '9') || r == ' '
}
