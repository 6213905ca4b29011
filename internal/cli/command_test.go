package cli

import (
	"testing"

	"github.com/raditotev/bg-text-normalizer/normalizer"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "bgnorm [text]" {
		t.Errorf("Use = %q", cmd.Use)
	}
	for _, name := range []string{"no-abbrev", "verbose"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not registered", name)
		}
	}
	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("persistent flag \"config\" not registered")
	}
}

func TestFlagParsing(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if err := cmd.ParseFlags([]string{"--no-abbrev", "-v"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if !flags.NoAbbrev {
		t.Error("NoAbbrev not set by --no-abbrev")
	}
	if !flags.Verbose {
		t.Error("Verbose not set by -v")
	}
}

func TestOptions(t *testing.T) {
	cases := []struct {
		name  string
		flags Flags
		want  normalizer.Options
	}{
		{"defaults", Flags{}, normalizer.Options{ExpandAbbreviations: true}},
		{"no abbrev", Flags{NoAbbrev: true}, normalizer.Options{ExpandAbbreviations: false}},
		{"verbose", Flags{Verbose: true}, normalizer.Options{ExpandAbbreviations: true, Verbose: true}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := Options(&tt.flags); got != tt.want {
				t.Errorf("Options(%+v) = %+v, want %+v", tt.flags, got, tt.want)
			}
		})
	}
}
