// Unexported cardinal conversion for Bulgarian number-to-text conversion.
package numwords

import (
	"math"
	"strconv"
	"strings"
)

const growCardinal = 96 // estimated bytes for a full cardinal conversion

// cardinal converts an int64 to Bulgarian cardinal text.
// Values beyond the scale-word tables are read digit by digit.
func cardinal(n int64, g Gender) string {
	if n == 0 {
		return wordZero
	}
	if n < 0 {
		// MinInt64 has no positive counterpart; read its digits directly.
		if n == math.MinInt64 {
			return wordMinus + " " + digitByDigit(strconv.FormatInt(n, 10)[1:])
		}
		return wordMinus + " " + cardinal(-n, g)
	}
	if n > maxTable {
		return digitByDigit(strconv.FormatInt(n, 10))
	}

	parts := make([]string, 0, 4)

	billions := n / 1_000_000_000
	n %= 1_000_000_000
	switch {
	case billions == 1:
		parts = append(parts, billionOne)
	case billions == 2:
		parts = append(parts, billionTwo)
	case billions > 2:
		parts = append(parts, cardinalUnder1000(billions, Masculine)+" "+billionPlural)
	}

	millions := n / 1_000_000
	n %= 1_000_000
	switch {
	case millions == 1:
		parts = append(parts, millionOne)
	case millions == 2:
		parts = append(parts, millionTwo)
	case millions > 2:
		parts = append(parts, cardinalUnder1000(millions, Masculine)+" "+millionPlural)
	}

	// Хиляди is grammatically feminine, so the multiplier is always rendered
	// in the feminine form regardless of the requested gender.
	thousands := n / 1000
	n %= 1000
	switch {
	case thousands == 1:
		parts = append(parts, thousandOne)
	case thousands == 2:
		parts = append(parts, thousandTwo)
	case thousands > 2:
		parts = append(parts, cardinalUnder1000(thousands, Feminine)+" "+thousandPlural)
	}

	// The final 0–999 remainder is the only segment rendered in the
	// caller-requested gender.
	if n > 0 {
		r := cardinalUnder1000(n, g)
		// "две хиляди и петстотин" but "две хиляди петстотин и едно":
		// a remainder below 100, or an exact multiple of 100, takes the
		// conjunction after a higher scale segment.
		if len(parts) > 0 && (n < 100 || n%100 == 0) {
			r = wordConj + " " + r
		}
		parts = append(parts, r)
	}

	return strings.Join(parts, " ")
}

// cardinalUnder1000 converts a value in [1, 999] to Bulgarian cardinal text.
// The conjunction "и" goes before the last spoken component: before the
// ones/teens after a hundreds word, before a nonzero ones digit after a tens
// word, and before a round tens word after a hundreds word.
func cardinalUnder1000(n int64, g Gender) string {
	var b strings.Builder
	b.Grow(growCardinal)

	h := n / 100
	r := n % 100

	if h > 0 {
		b.WriteString(hundreds[h])
	}

	switch {
	case r == 0:
	case r < 10:
		if h > 0 {
			b.WriteByte(' ')
			b.WriteString(wordConj)
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ones[g][r])
	case r < 20:
		if h > 0 {
			b.WriteByte(' ')
			b.WriteString(wordConj)
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(teens[r-10])
	default:
		t := r / 10
		o := r % 10
		if h > 0 && o == 0 {
			b.WriteByte(' ')
			b.WriteString(wordConj)
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tens[t])
		if o > 0 {
			b.WriteByte(' ')
			b.WriteString(wordConj)
			b.WriteByte(' ')
			b.WriteString(ones[g][o])
		}
	}

	return b.String()
}

// digitByDigit reads a digit string one digit at a time.
// Non-digit bytes are passed through unchanged.
func digitByDigit(s string) string {
	parts := make([]string, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			parts = append(parts, digitWords[c-'0'])
		} else {
			parts = append(parts, string(c))
		}
	}
	return strings.Join(parts, " ")
}
