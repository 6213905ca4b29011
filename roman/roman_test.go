package roman

import (
	"fmt"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  int64
	}{
		{"I", 1},
		{"II", 2},
		{"III", 3},
		{"IV", 4},
		{"V", 5},
		{"VI", 6},
		{"IX", 9},
		{"X", 10},
		{"XIV", 14},
		{"XIX", 19},
		{"XX", 20},
		{"XXI", 21},
		{"XXXII", 32},
		{"XL", 40},
		{"XLIV", 44},
		{"L", 50},
		{"XC", 90},
		{"C", 100},
		{"CD", 400},
		{"D", 500},
		{"CM", 900},
		{"M", 1000},
		{"MCMXIV", 1914},
		{"MMXXVI", 2026},
		{"MMMCMXCIX", 3999},
		{"iv", 4},
		{"xl", 40},
		{" XIV ", 14},
		// Malformed numerals still decode: a symbol subtracts only when
		// the symbol directly to its right is larger.
		{"IIX", 10},
		{"IIII", 4},
		{"IXX", 19},
	}

	for _, tt := range cases {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"",
		"A",
		"X I",
		"X.",
		"MIXED1",
		"ИКС",
	}

	for _, in := range invalid {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			t.Parallel()
			if v, err := Parse(in); err == nil {
				t.Errorf("Parse(%q) = %d, want error", in, v)
			}
			if Valid(in) {
				t.Errorf("Valid(%q) = true, want false", in)
			}
		})
	}
}

func ExampleParse() {
	v, _ := Parse("XL")
	fmt.Println(v)
	// Output: 40
}

func FuzzParse(f *testing.F) {
	f.Add("XIV")
	f.Add("")
	f.Add("IIII")
	f.Add("ИVX")
	f.Add("\xff\xfe")

	f.Fuzz(func(t *testing.T, s string) {
		v, err := Parse(s)
		if err == nil && v <= 0 {
			t.Errorf("Parse(%q) = %d with nil error", s, v)
		}
	})
}
