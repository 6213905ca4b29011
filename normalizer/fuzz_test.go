package normalizer

import (
	"strings"
	"testing"
	"unicode"
)

// FuzzNormalize verifies that Normalize never panics and that fully
// normalized text is a fixed point of the pipeline.
func FuzzNormalize(f *testing.F) {
	f.Add("На 15.02.2026 г. в 14:30 ч. цената е 1500.50 лв.")
	f.Add("бул. Витоша №10, гр. София")
	f.Add("Той е на 35 години.")
	f.Add("XL глава")
	f.Add("+359 888 123 456")
	f.Add("")
	f.Add("   ")
	f.Add("35.13.2024")
	f.Add("99:99")
	f.Add("\xff\xfe")
	f.Add(strings.Repeat("9", 64))

	f.Fuzz(func(t *testing.T, s string) {
		out := Normalize(s)

		// Once every digit is spelled out, a second run has nothing left
		// to rewrite. Inputs that still carry digits (declined candidates)
		// are exempt.
		if !strings.ContainsFunc(out, unicode.IsDigit) {
			if again := Normalize(out); again != out {
				t.Errorf("not a fixed point for %q:\n once  %q\n twice %q", s, out, again)
			}
		}
	})
}

// FuzzNormalizeWith exercises both option combinations.
func FuzzNormalizeWith(f *testing.F) {
	f.Add("гр. София, 5 км", true)
	f.Add("гр. София, 5 км", false)
	f.Add("№10 & ап. 3", true)

	f.Fuzz(func(t *testing.T, s string, expand bool) {
		_ = NormalizeWith(s, Options{ExpandAbbreviations: expand})
	})
}
