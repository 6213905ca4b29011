// Unexported ordinal conversion for Bulgarian number-to-text conversion.
package numwords

// ordinal converts an int64 to Bulgarian ordinal text.
//
// Non-positive input falls back to the cardinal form: Bulgarian defines no
// ordinal for zero or negative numbers, and callers rely on the fallback
// being total rather than an error.
func ordinal(n int64, g Gender) string {
	if n <= 0 {
		return cardinal(n, g)
	}
	if n > maxTable {
		return cardinal(n, g)
	}

	if n >= 1000 {
		thousands := n / 1000
		remainder := n % 1000
		if remainder == 0 {
			return ordinalRoundThousands(thousands, g)
		}
		// 2026 → "две хиляди" + "двадесет и шеста": cardinal thousands in
		// the requested gender, ordinal remainder.
		return cardinal(n-remainder, g) + " " + ordinal(remainder, g)
	}

	if n >= 100 {
		h := n / 100
		remainder := n % 100
		if remainder == 0 {
			return ordinalHundreds[g][h]
		}
		return hundreds[h] + " " + ordinal(remainder, g)
	}

	if n >= 20 {
		t := n / 10
		o := n % 10
		if o == 0 {
			return ordinalTens[g][t]
		}
		return tens[t] + " " + wordConj + " " + ordinal(o, g)
	}

	if n >= 11 {
		return ordinalTeens[g][n-10]
	}

	return ordinalOnes[g][n]
}

// ordinalRoundThousands builds the ordinal of an exact multiple of 1000 from
// a thousands stem plus a gender suffix: хиляден, двехилядна, петхилядно.
func ordinalRoundThousands(thousands int64, g Gender) string {
	var stem string
	switch {
	case thousands == 1:
		stem = thousandStemOne
	case thousands == 2:
		stem = thousandStemTwo
	case thousands <= 999:
		stem = cardinalUnder1000(thousands, Feminine) + thousandStem
	default:
		// Round millions and beyond have no tabled ordinal stem; fall back
		// to the cardinal form to stay total.
		return cardinal(thousands*1000, g)
	}
	return stem + ordinalThousandSuffix[g]
}
