package datapath

import (
	"strings"
	"unicode/utf8"
)

// MaskType names a value format with a masking rule.
type MaskType string

const (
	MaskEmail MaskType = "email" // alice@example.com -> a***@example.com
	MaskCard  MaskType = "card"  // 4111111111111111 -> ************1111
	MaskPhone MaskType = "phone" // (555) 123-4567 -> ***-***-4567
	MaskName  MaskType = "name"  // John Smith -> J*** S****
)

// Masker hides part of a string value.
type Masker interface {
	Mask(value string) string
}

// MaskerFunc adapts a function to Masker.
type MaskerFunc func(string) string

// Mask calls f.
func (f MaskerFunc) Mask(value string) string { return f(value) }

// maskers holds the built-in maskers by type.
var maskers = map[MaskType]Masker{
	MaskEmail: MaskerFunc(maskEmail),
	MaskCard:  MaskerFunc(maskCard),
	MaskPhone: MaskerFunc(maskPhone),
	MaskName:  MaskerFunc(maskName),
}

// MaskerFor returns the built-in masker for mt.
func MaskerFor(mt MaskType) (Masker, bool) {
	m, ok := maskers[mt]
	return m, ok
}

// maskEmail keeps the first character of the local part and the domain.
func maskEmail(value string) string {
	at := strings.LastIndex(value, "@")
	if at < 1 {
		return stars(value)
	}
	_, size := utf8.DecodeRuneInString(value)
	return value[:size] + "***" + value[at:]
}

// maskCard keeps the last four digits.
func maskCard(value string) string {
	digits := digitsOf(value)
	if len(digits) < 4 {
		return stars(value)
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// maskPhone keeps the last four digits in a dashed layout.
func maskPhone(value string) string {
	digits := digitsOf(value)
	if len(digits) < 4 {
		return stars(value)
	}
	last4 := digits[len(digits)-4:]
	if len(digits) >= 10 {
		return "***-***-" + last4
	}
	return "***-" + last4
}

// maskName keeps the first letter of every word.
func maskName(value string) string {
	words := strings.Fields(value)
	for i, w := range words {
		r := []rune(w)
		words[i] = string(r[0]) + strings.Repeat("*", len(r)-1)
	}
	return strings.Join(words, " ")
}

// digitsOf keeps the ASCII digits of s.
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stars replaces every rune of value with an asterisk.
func stars(value string) string {
	return strings.Repeat("*", utf8.RuneCountInString(value))
}
