package numwords

import (
	"strings"
	"testing"
)

// FuzzCardinal verifies that Cardinal and Ordinal never panic for any int64
// input in any gender, and never produce doubled or edge whitespace.
func FuzzCardinal(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(-1))
	f.Add(int64(100))
	f.Add(int64(1000))
	f.Add(int64(2026))
	f.Add(int64(1_000_000))
	f.Add(int64(999_999_999_999))
	f.Add(int64(1_000_000_000_000))
	f.Add(int64(9223372036854775807))  // math.MaxInt64
	f.Add(int64(-9223372036854775808)) // math.MinInt64

	f.Fuzz(func(t *testing.T, n int64) {
		for g := Masculine; g <= Neuter; g++ {
			for _, got := range []string{Cardinal(n, g), Ordinal(n, g)} {
				if got == "" {
					t.Errorf("empty output for %d in gender %v", n, g)
				}
				if strings.Contains(got, "  ") || got != strings.TrimSpace(got) {
					t.Errorf("malformed whitespace in %q for %d in gender %v", got, n, g)
				}
			}
		}
	})
}

// FuzzDecimal verifies that Decimal never panics for any string input.
func FuzzDecimal(f *testing.F) {
	f.Add("")
	f.Add("3.14")
	f.Add("0.5")
	f.Add("-2.5")
	f.Add("abc")
	f.Add("3,14")
	f.Add(".5")
	f.Add("3.")
	f.Add("3.14.15")
	f.Add("\xff\xfe")
	f.Add("999999999999999999.999999999999999999")

	f.Fuzz(func(t *testing.T, s string) {
		for g := Masculine; g <= Neuter; g++ {
			_ = Decimal(s, g)
		}
	})
}
