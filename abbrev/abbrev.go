// Package abbrev expands Bulgarian abbreviations to their full spoken forms.
//
// The dictionary is embedded as YAML and grouped by category: addresses
// (бул., ж.к.), geography (гр., с.), titles (г-н, д-р), business forms
// (ЕООД, АД), common text abbreviations (т.е., напр.), institutions (НАП,
// МВР) and typographic symbols. Measurement units (км, кг, кв.м) expand
// only when they follow a digit, since bare "м" or "т" are ordinary words.
package abbrev

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/raditotev/bg-text-normalizer/data"
	"github.com/raditotev/bg-text-normalizer/internal/rewrite"
)

type dictionary struct {
	Address      map[string]string `yaml:"address"`
	Geographic   map[string]string `yaml:"geographic"`
	Titles       map[string]string `yaml:"titles"`
	Units        map[string]string `yaml:"units"`
	Business     map[string]string `yaml:"business"`
	Common       map[string]string `yaml:"common"`
	Institutions map[string]string `yaml:"institutions"`
	Symbols      map[string]string `yaml:"symbols"`
}

type entry struct {
	abbrev string
	full   string
	re     *regexp.Regexp
}

var (
	// general holds every boundary-checked abbreviation, longest first so
	// "и т.н." wins over "т.н." and "т.н." over "т.".
	general []entry

	// units holds measurement units, expanded only in digit context.
	units []entry

	// forms maps lowercased abbreviations to full forms for single lookups.
	forms map[string]string
)

func init() {
	var dict dictionary
	if err := yaml.Unmarshal(data.Abbreviations, &dict); err != nil {
		panic(fmt.Sprintf("abbrev: parsing embedded dictionary: %v", err))
	}

	generalMaps := []map[string]string{
		dict.Address, dict.Geographic, dict.Titles, dict.Business,
		dict.Common, dict.Institutions, dict.Symbols,
	}

	forms = make(map[string]string)
	for _, m := range append(generalMaps, dict.Units) {
		for abbrev, full := range m {
			key := strings.ToLower(abbrev)
			if _, ok := forms[key]; !ok {
				forms[key] = full
			}
		}
	}

	for _, m := range generalMaps {
		for abbrev, full := range m {
			general = append(general, entry{
				abbrev: abbrev,
				full:   full,
				re:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(abbrev)),
			})
		}
	}
	sortLongestFirst(general)

	for abbrev, full := range dict.Units {
		units = append(units, entry{
			abbrev: abbrev,
			full:   full,
			re:     regexp.MustCompile(`(\d)\s*` + regexp.QuoteMeta(abbrev)),
		})
	}
	sortLongestFirst(units)
}

func sortLongestFirst(entries []entry) {
	sort.Slice(entries, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(entries[i].abbrev), utf8.RuneCountInString(entries[j].abbrev)
		if li != lj {
			return li > lj
		}
		return entries[i].abbrev < entries[j].abbrev
	})
}

// Expand replaces every recognized abbreviation in text with its full
// spoken form. Matching is case-insensitive and requires a word boundary
// on both sides, so "кв." expands in "кв. Лозенец" but stays put inside
// "кв.м", which the digit-context unit pass then picks up whole.
func Expand(text string) string {
	for _, e := range general {
		text = rewrite.All(text, e.re, func(m rewrite.Match) (string, bool) {
			if !m.AtBoundaryBefore() || !m.AtBoundaryAfter() {
				return "", false
			}
			return e.full, true
		})
	}

	for _, e := range units {
		text = rewrite.All(text, e.re, func(m rewrite.Match) (string, bool) {
			if !m.AtBoundaryAfter() {
				return "", false
			}
			return m.Group(1) + " " + e.full, true
		})
	}

	return text
}

// Lookup returns the full spoken form for a single abbreviation, matched
// case-insensitively. The second result reports whether it is known.
func Lookup(abbrev string) (string, bool) {
	full, ok := forms[strings.ToLower(abbrev)]
	return full, ok
}
