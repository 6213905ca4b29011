package numwords

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name     string `json:"name"`
	Input    int64  `json:"input"`
	Gender   string `json:"gender"`
	Cardinal string `json:"cardinal"`
	Ordinal  string `json:"ordinal"`
}

const goldenPath = "../data/golden/numwords.json"

func goldenGender(t *testing.T, s string) Gender {
	t.Helper()
	switch s {
	case "m":
		return Masculine
	case "f":
		return Feminine
	case "n":
		return Neuter
	}
	t.Fatalf("unknown gender label %q", s)
	return Masculine
}

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			g := goldenGender(t, tc.Gender)

			gotCardinal := Cardinal(tc.Input, g)
			if gotCardinal != tc.Cardinal {
				t.Errorf("Cardinal(%d, %v) = %q, want %q", tc.Input, g, gotCardinal, tc.Cardinal)
			}

			gotOrdinal := Ordinal(tc.Input, g)
			if gotOrdinal != tc.Ordinal {
				t.Errorf("Ordinal(%d, %v) = %q, want %q", tc.Input, g, gotOrdinal, tc.Ordinal)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		tc := &cases[i]
		g := goldenGender(t, tc.Gender)
		tc.Cardinal = Cardinal(tc.Input, g)
		tc.Ordinal = Ordinal(tc.Input, g)
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff data/golden/numwords.json")
}
