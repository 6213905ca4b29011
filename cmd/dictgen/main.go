// Command dictgen rewrites data/abbreviations.yaml in canonical form:
// categories in a fixed order, keys sorted, values trimmed. It rejects
// abbreviations that repeat across categories, since the expansion pass
// would silently keep only the first one.
//
// Run after editing the dictionary:
//
//	go run ./cmd/dictgen
//
// Output: data/abbreviations.yaml (commit this file).
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultPath = "data/abbreviations.yaml"

// categoryOrder fixes the category sequence in the generated file.
var categoryOrder = []string{
	"address",
	"geographic",
	"titles",
	"units",
	"business",
	"common",
	"institutions",
	"symbols",
}

func main() {
	path := flag.String("path", defaultPath, "path to the abbreviations dictionary")
	check := flag.Bool("check", false, "verify only, do not rewrite the file")
	flag.Parse()

	raw, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: read dictionary: %v\n", err)
		os.Exit(1)
	}

	var dict map[string]map[string]string
	if err := yaml.Unmarshal(raw, &dict); err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: parse dictionary: %v\n", err)
		os.Exit(1)
	}

	if errs := validate(dict); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "dictgen: %s\n", e)
		}
		os.Exit(1)
	}

	out := render(dict)

	if *check {
		if string(raw) != out {
			fmt.Fprintf(os.Stderr, "dictgen: %s is not in canonical form, rerun without -check\n", *path)
			os.Exit(1)
		}
		return
	}

	if err := os.WriteFile(*path, []byte(out), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: write dictionary: %v\n", err)
		os.Exit(1)
	}

	total := 0
	for _, entries := range dict {
		total += len(entries)
	}
	fmt.Fprintf(os.Stderr, "dictgen: wrote %d entries in %d categories to %s\n", total, len(dict), *path)
}

func validate(dict map[string]map[string]string) []string {
	var errs []string

	known := make(map[string]bool, len(categoryOrder))
	for _, c := range categoryOrder {
		known[c] = true
	}
	for category := range dict {
		if !known[category] {
			errs = append(errs, fmt.Sprintf("unknown category %q", category))
		}
	}

	// An abbreviation repeated across categories is ambiguous: the
	// expansion pass keys on the lowercased abbreviation alone.
	seen := make(map[string]string)
	for _, category := range categoryOrder {
		for abbrev, full := range dict[category] {
			key := strings.ToLower(abbrev)
			if prev, dup := seen[key]; dup {
				errs = append(errs, fmt.Sprintf("%q appears in both %q and %q", abbrev, prev, category))
				continue
			}
			seen[key] = category

			if strings.TrimSpace(full) == "" {
				errs = append(errs, fmt.Sprintf("%s/%q has an empty expansion", category, abbrev))
			}
		}
	}

	sort.Strings(errs)
	return errs
}

func render(dict map[string]map[string]string) string {
	var sb strings.Builder
	sb.WriteString("# Abbreviation dictionary for Bulgarian text normalization.\n")
	sb.WriteString("# Regenerate the canonical form with: go run ./cmd/dictgen\n")

	for _, category := range categoryOrder {
		entries := dict[category]
		if len(entries) == 0 {
			continue
		}

		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\n")
		sb.WriteString(category)
		sb.WriteString(":\n")
		for _, k := range keys {
			line, err := yaml.Marshal(map[string]string{k: strings.TrimSpace(entries[k])})
			if err != nil {
				// Plain string maps always marshal.
				panic(err)
			}
			sb.WriteString("  ")
			sb.Write(line)
		}
	}

	return sb.String()
}
