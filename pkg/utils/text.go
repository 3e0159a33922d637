package utils

import (
	"strconv"
	"strings"
)

// Normalize reduces text to bare lowercase ASCII letters and digits. Every
// other rune, including whitespace, is dropped so that punctuation, casing and
// spacing never block a keyword match. The function is total and idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatThousands renders a non-negative amount with comma grouping, e.g.
// 12000 -> "12,000". Fractional kobo are dropped; listing prices are whole
// naira in the sheet.
func FormatThousands(amount float64) string {
	n := int64(amount)
	if n < 0 {
		n = 0
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// CapitalizeFirst upper-cases the first ASCII letter of s, leaving the rest
// untouched. Used for display of lowercased area names.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
