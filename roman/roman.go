// Package roman parses Roman numerals.
package roman

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty is returned for empty input.
var ErrEmpty = errors.New("roman: empty numeral")

var values = map[byte]int64{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// Parse converts a Roman numeral to its integer value. Subtractive pairs
// are handled by scanning right to left: a symbol smaller than the one to
// its right subtracts instead of adds, so "IV" is 4 and "MCMXIV" is 1914.
//
// Matching is case-insensitive. Parse rejects any non-Roman character and
// anything that does not evaluate to a positive value.
func Parse(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, ErrEmpty
	}

	var total, prev int64
	for i := len(s) - 1; i >= 0; i-- {
		v, ok := values[s[i]]
		if !ok {
			return 0, fmt.Errorf("roman: invalid symbol %q in %q", s[i], s)
		}
		if v < prev {
			total -= v
		} else {
			total += v
		}
		prev = v
	}

	if total <= 0 {
		return 0, fmt.Errorf("roman: %q evaluates to %d", s, total)
	}
	return total, nil
}

// Valid reports whether s parses as a Roman numeral.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
