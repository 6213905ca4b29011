// Unexported decimal conversion for Bulgarian number-to-text conversion.
package numwords

import (
	"strconv"
	"strings"
)

const growDecimal = 160 // estimated bytes for a decimal conversion

// decimal converts a decimal number string to Bulgarian text.
//
// Parsing is entirely string-based: the value is never routed through a
// binary float, so "1500.50" splits into exactly 1500 and 50 with no
// representation artifacts. Returns "" for input that is not a plain
// decimal number.
func decimal(s string, g Gender) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return ""
	}

	wholeStr, fracStr, found := strings.Cut(s, ".")
	if !found {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return ""
		}
		return cardinal(v, g)
	}

	// Trailing fractional zeros carry no spoken value: "3.50" reads as
	// "3.5", and "3.0" degrades to a plain cardinal.
	fracStr = strings.TrimRight(fracStr, "0")

	var whole int64
	if wholeStr != "" {
		var err error
		whole, err = strconv.ParseInt(wholeStr, 10, 64)
		if err != nil {
			return ""
		}
	}

	if fracStr == "" {
		return cardinal(whole, g)
	}
	if !allDigits(fracStr) {
		return ""
	}

	fracVal, err := strconv.ParseInt(fracStr, 10, 64)
	if err != nil {
		return ""
	}

	var b strings.Builder
	b.Grow(growDecimal)

	// The whole part is always neuter ("цяло" is neuter), the fractional
	// value always feminine (agreeing with десети/стотни/хилядни).
	if whole == 0 {
		b.WriteString(wordZero)
	} else {
		b.WriteString(cardinal(whole, Neuter))
	}
	b.WriteByte(' ')
	b.WriteString(wordWhole)
	b.WriteByte(' ')
	b.WriteString(wordConj)
	b.WriteByte(' ')
	b.WriteString(cardinal(fracVal, Feminine))

	if places := len(fracStr); places < len(denominations) {
		d := denominations[places]
		b.WriteByte(' ')
		if fracVal == 1 {
			b.WriteString(d.singular)
		} else {
			b.WriteString(d.plural)
		}
	}

	return b.String()
}

// allDigits reports whether s consists entirely of ASCII digit characters.
// An empty string returns false.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
