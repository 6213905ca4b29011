// Package numwords converts numbers to spoken Bulgarian text.
//
// The package provides three renderings:
//
//   - Cardinal turns an integer into counting words ("двадесет и един").
//   - Ordinal produces ranking forms with gender agreement ("двадесет и първи").
//   - Decimal converts decimal number strings to words ("три цяло и четиринадесет стотни").
//
// Bulgarian numerals 1 and 2, and every ordinal form, agree with the
// grammatical gender of the noun they modify, so each conversion takes a
// Gender. Scale words are gender-invariant except thousands, whose
// multiplier is always feminine.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Values above 999 999 999 999 are read digit by digit.
//   - Ordinal input below 1 falls back to the cardinal form.
//   - Decimal denominations are named up to three fractional digits; longer
//     fractions are read without a denomination word.
package numwords

// Gender selects the grammatical agreement of the rendered number.
type Gender int

const (
	// Masculine agreement: един, два, първи.
	Masculine Gender = iota

	// Feminine agreement: една, две, първа.
	Feminine

	// Neuter agreement: едно, две, първо.
	Neuter
)

// String returns the short grammatical label for g.
func (g Gender) String() string {
	switch g {
	case Masculine:
		return "m"
	case Feminine:
		return "f"
	case Neuter:
		return "n"
	}
	return "?"
}

// Cardinal returns the Bulgarian cardinal text for n in the given gender.
// Zero returns "нула". Negative numbers are prefixed with "минус".
// Values above 999 999 999 999 are read digit by digit, never an error.
func Cardinal(n int64, g Gender) string {
	return cardinal(n, g)
}

// Ordinal returns the Bulgarian ordinal text for n in the given gender.
// Composite values concatenate cardinal leading segments with an ordinal
// final component ("две хиляди двадесет и шеста"); round tens, hundreds and
// thousands use dedicated table forms (двадесета, стотна, двехилядна).
// Input below 1 falls back to Cardinal.
func Ordinal(n int64, g Gender) string {
	return ordinal(n, g)
}

// Decimal converts a decimal number string to Bulgarian text.
// Accepts dot or comma as decimal separator and parses the digit string
// directly, never through a binary float. Trailing fractional zeros are
// dropped; with nothing left the result degrades to a plain cardinal.
//
// Returns an empty string for input that is not a decimal number.
func Decimal(s string, g Gender) string {
	return decimal(s, g)
}
