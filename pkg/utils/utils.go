package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var ibanPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{11,30}$`)

// NormalizeIban strips every whitespace rune and uppercases the rest.
func NormalizeIban(iban string) string {
	var b strings.Builder
	b.Grow(len(iban))
	for _, r := range iban {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// ValidIban checks the shape of a normalized IBAN: country code, check digits, 11-30 alphanumerics.
func ValidIban(iban string) bool {
	return ibanPattern.MatchString(iban)
}

func IsBlank(str string) bool {
	return strings.TrimSpace(str) == ""
}
