// Package normalizer converts written Bulgarian text into its spoken form
// for speech synthesis.
//
// Digits, dates, clock times, currency amounts, percentages, ordinal
// suffixes, phone numbers, Roman numerals and common abbreviations are all
// spelled out as words:
//
//	Normalize("На 15.02.2026 г. в 14:30 ч. цената е 1500.50 лв.")
//	// На петнадесети февруари две хиляди двадесет и шеста година в
//	// четиринадесет и тридесет часа цената е хиляда и петстотин лева и
//	// петдесет стотинки.
//
// Passes run in a fixed order so that earlier passes never corrupt
// candidates for later ones: percentages go before dates (15.5% is not a
// date), dates before generic numbers (a date is made of numbers), currency
// before generic numbers, and so on. A pattern whose content fails its
// domain constraints (day 35, month 13, an invalid Roman token) is left
// unchanged for later passes rather than reported as an error; no pass ever
// fails.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Integers above 999 999 999 999 are left as digits.
//   - A day-and-month pair like 1.5 is read as a date; plain decimals
//     survive only when the month part is out of range.
package normalizer

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/unicode/norm"
)

// maxInputBytes is the maximum input size for Normalize.
// Inputs exceeding this are returned unchanged.
const maxInputBytes = 1 << 20 // 1 MiB

// Options controls optional normalizer behavior.
type Options struct {
	// ExpandAbbreviations enables the dictionary pass that spells out
	// abbreviations (бул., гр., ДДС) before any number handling.
	ExpandAbbreviations bool

	// Verbose logs every pass that changed the text to stderr.
	Verbose bool
}

// DefaultOptions returns the options used by Normalize: abbreviations
// expanded, no tracing.
func DefaultOptions() Options {
	return Options{ExpandAbbreviations: true}
}

// Normalize converts text to its spoken form using DefaultOptions.
// Empty or whitespace-only input is returned unchanged.
func Normalize(text string) string {
	return NormalizeWith(text, DefaultOptions())
}

// NormalizeWith converts text to its spoken form with explicit options.
// Returns the input unchanged for empty, whitespace-only or oversized
// (>1 MiB) input.
func NormalizeWith(text string, opts Options) string {
	if strings.TrimSpace(text) == "" || len(text) > maxInputBytes {
		return text
	}
	text = norm.NFC.String(text)

	var logger *log.Logger
	if opts.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "normalize"})
	}

	for _, p := range passes {
		if p.needsAbbrev && !opts.ExpandAbbreviations {
			continue
		}
		out := p.apply(text)
		if logger != nil && out != text {
			logger.Info(p.name, "before", text, "after", out)
		}
		text = out
	}

	return text
}
