// Pipeline passes, in execution order, with their patterns and handlers.
package normalizer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/raditotev/bg-text-normalizer/abbrev"
	"github.com/raditotev/bg-text-normalizer/clock"
	"github.com/raditotev/bg-text-normalizer/currency"
	"github.com/raditotev/bg-text-normalizer/dates"
	"github.com/raditotev/bg-text-normalizer/internal/rewrite"
	"github.com/raditotev/bg-text-normalizer/numwords"
	"github.com/raditotev/bg-text-normalizer/phone"
	"github.com/raditotev/bg-text-normalizer/roman"
)

// maxSpoken is the largest integer the generic number pass spells out.
const maxSpoken = 999_999_999_999

type pass struct {
	name        string
	apply       func(string) string
	needsAbbrev bool
}

// passes run in a fixed order: percentages before dates (15.5% is not a
// date), dates and times before currency, everything before the generic
// number pass, whitespace cleanup last.
var passes = []pass{
	{name: "abbreviations", apply: abbrev.Expand, needsAbbrev: true},
	{name: "grouped digits", apply: collapseGroupedDigits},
	{name: "percentages", apply: normalizePercentages},
	{name: "dates", apply: normalizeDates},
	{name: "times", apply: normalizeTimes},
	{name: "currency", apply: normalizeCurrency},
	{name: "phones", apply: normalizePhones},
	{name: "roman numerals", apply: normalizeRomanNumerals},
	{name: "symbols", apply: normalizeSymbols},
	{name: "ordinal suffixes", apply: normalizeOrdinalSuffixes},
	{name: "years", apply: normalizeYears},
	{name: "numbers", apply: normalizeNumbers},
	{name: "whitespace", apply: normalizeWhitespace},
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// reGrouped matches digit groups separated by single whitespace where every
// group after the first is exactly three digits: 7 000 000, 1 500.
var reGrouped = regexp.MustCompile(`\d{1,3}(?:\s\d{3})+`)

func collapseGroupedDigits(s string) string {
	return rewrite.All(s, reGrouped, func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() || !m.AtBoundaryAfter() {
			return "", false
		}
		return strings.Join(strings.Fields(m.Text()), ""), true
	})
}

var rePercent = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*%`)

func normalizePercentages(s string) string {
	return rewrite.All(s, rePercent, func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() {
			return "", false
		}
		num := strings.ReplaceAll(m.Group(1), ",", ".")
		var words string
		if strings.Contains(num, ".") {
			words = numwords.Decimal(num, numwords.Neuter)
		} else {
			v, err := strconv.ParseInt(num, 10, 64)
			if err != nil {
				return "", false
			}
			words = numwords.Cardinal(v, numwords.Masculine)
		}
		if words == "" {
			return "", false
		}
		return words + " процента", true
	})
}

var (
	// Dates come in descending specificity: with a year suffix, with a
	// year, day plus month name, then bare day.month.
	reDateWithSuffix = regexp.MustCompile(`(\d{1,2})[./\-](\d{1,2})[./\-](\d{4})\s*(година|г\.?)`)
	reDateFull       = regexp.MustCompile(`(\d{1,2})[./\-](\d{1,2})[./\-](\d{4})`)
	reDateMonthName  = regexp.MustCompile(`(\d{1,2})\s+((?i:януари|февруари|март|април|май|юни|юли|август|септември|октомври|ноември|декември))`)
	reDatePartial    = regexp.MustCompile(`(\d{1,2})[./](\d{1,2})`)
)

func normalizeDates(s string) string {
	s = rewrite.All(s, reDateWithSuffix, func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() {
			return "", false
		}
		// A bare "г" must not bite the front off "години".
		if suffix := m.Group(4); !strings.HasSuffix(suffix, ".") && !m.AtBoundaryAfter() {
			return "", false
		}
		day, _ := strconv.Atoi(m.Group(1))
		month, _ := strconv.Atoi(m.Group(2))
		year, _ := strconv.Atoi(m.Group(3))
		out := dates.DateYear(day, month, year, true)
		if out == "" {
			return "", false
		}
		return out, true
	})

	s = rewrite.All(s, reDateFull, func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() || !m.AtBoundaryAfter() {
			return "", false
		}
		day, _ := strconv.Atoi(m.Group(1))
		month, _ := strconv.Atoi(m.Group(2))
		year, _ := strconv.Atoi(m.Group(3))
		out := dates.DateYear(day, month, year, false)
		if out == "" {
			return "", false
		}
		return out, true
	})

	s = rewrite.All(s, reDateMonthName, func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() || !m.AtBoundaryAfter() {
			return "", false
		}
		day, _ := strconv.Atoi(m.Group(1))
		out := dates.Date(day, dates.MonthNumber(m.Group(2)))
		if out == "" {
			return "", false
		}
		return out, true
	})

	cur := s
	s = rewrite.All(cur, reDatePartial, func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() || !m.AtBoundaryAfter() {
			return "", false
		}
		// 35.13 inside 35.13.2024 is not a day.month pair.
		if end := m.End(); end+1 < len(cur) && cur[end] == '.' && isDigit(cur[end+1]) {
			return "", false
		}
		day, _ := strconv.Atoi(m.Group(1))
		month, _ := strconv.Atoi(m.Group(2))
		out := dates.Date(day, month)
		if out == "" {
			return "", false
		}
		return out, true
	})

	return s
}

var (
	reTimeWithSuffix = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(?:ч\.|часа|часът)`)
	reTime           = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
)

func normalizeTimes(s string) string {
	s = rewrite.All(s, reTimeWithSuffix, func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() {
			return "", false
		}
		return timeWords(m, true)
	})
	s = rewrite.All(s, reTime, func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() || !m.AtBoundaryAfter() {
			return "", false
		}
		return timeWords(m, false)
	})
	return s
}

func timeWords(m rewrite.Match, withSuffix bool) (string, bool) {
	hours, _ := strconv.Atoi(m.Group(1))
	minutes, _ := strconv.Atoi(m.Group(2))
	return clock.Time(hours, minutes, withSuffix), true
}

// amountPat captures a currency amount: digits, optional digit groups and
// up to two fractional digits.
const amountPat = `(\d[\d\s]*(?:[.,]\d{1,2})?)`

var (
	reBGN     = regexp.MustCompile(amountPat + `\s*(?:лева|лв|BGN)`)
	reEURSym  = regexp.MustCompile(`€\s*` + amountPat + `\s*`)
	reEURWord = regexp.MustCompile(amountPat + `\s*(?:EUR|евро)`)
	reUSDSym  = regexp.MustCompile(`\$\s*` + amountPat + `\s*`)
	reUSDWord = regexp.MustCompile(amountPat + `\s*(?:USD|долара?)`)
	reGBPSym  = regexp.MustCompile(`£\s*` + amountPat + `\s*`)
	reGBPWord = regexp.MustCompile(amountPat + `\s*(?:GBP|лири|паунда?)`)
)

func normalizeCurrency(s string) string {
	s = rewrite.All(s, reBGN, currencyWord("BGN"))
	s = rewrite.All(s, reEURSym, currencySymbol("EUR"))
	s = rewrite.All(s, reEURWord, currencyWord("EUR"))
	s = rewrite.All(s, reUSDSym, currencySymbol("USD"))
	s = rewrite.All(s, reUSDWord, currencyWord("USD"))
	s = rewrite.All(s, reGBPSym, currencySymbol("GBP"))
	s = rewrite.All(s, reGBPWord, currencyWord("GBP"))
	return s
}

func currencyWord(code string) func(rewrite.Match) (string, bool) {
	return func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() || !m.AtBoundaryAfter() {
			return "", false
		}
		amount := strings.Join(strings.Fields(m.Group(1)), "")
		out := currency.Normalize(amount, code)
		if out == amount {
			return "", false
		}
		return out, true
	}
}

func currencySymbol(code string) func(rewrite.Match) (string, bool) {
	return func(m rewrite.Match) (string, bool) {
		amount := strings.Join(strings.Fields(m.Group(1)), "")
		out := currency.Normalize(amount, code)
		if out == amount {
			return "", false
		}
		return out + " ", true
	}
}

var rePhone = regexp.MustCompile(`(?:\+359[\s\-]?|0)[\d\s\-/]{6,12}\d`)

func normalizePhones(s string) string {
	return rewrite.All(s, rePhone, func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() {
			return "", false
		}
		return phone.Normalize(m.Text()), true
	})
}

var (
	// Roman numerals convert only next to a context noun that also settles
	// the grammatical gender of the ordinal.
	reRomanBeforeNoun = regexp.MustCompile(`([IVXLCDM]+)\s+((?i:век|глава|том|книга|част|клас|степен))`)
	reRomanAfterNoun  = regexp.MustCompile(`((?i:век|глава|том|книга|част|клас|степен))\s+((?i:[IVXLCDM]+))`)

	// Bare Roman tokens without a context noun are deliberately never
	// converted; ordinary capital-letter sequences would misread.
	reRomanBare = regexp.MustCompile(`[IVXLCDM]+`)
)

var _ = reRomanBare

var feminineNouns = map[string]bool{
	"глава":  true,
	"книга":  true,
	"част":   true,
	"степен": true,
}

func romanGender(noun string) numwords.Gender {
	if feminineNouns[strings.ToLower(noun)] {
		return numwords.Feminine
	}
	return numwords.Masculine
}

func normalizeRomanNumerals(s string) string {
	s = rewrite.All(s, reRomanBeforeNoun, func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() || !m.AtBoundaryAfter() {
			return "", false
		}
		v, err := roman.Parse(m.Group(1))
		if err != nil {
			return "", false
		}
		noun := m.Group(2)
		return numwords.Ordinal(v, romanGender(noun)) + " " + noun, true
	})

	s = rewrite.All(s, reRomanAfterNoun, func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() || !m.AtBoundaryAfter() {
			return "", false
		}
		v, err := roman.Parse(m.Group(2))
		if err != nil {
			return "", false
		}
		noun := m.Group(1)
		return noun + " " + numwords.Ordinal(v, romanGender(noun)), true
	})

	return s
}

var symbolReplacer = strings.NewReplacer(
	"№", "номер ",
	"&", " и ",
	"@", " кльомба ",
)

func normalizeSymbols(s string) string {
	return symbolReplacer.Replace(s)
}

var reOrdinalSuffix = regexp.MustCompile(`(\d+)\s*-?\s*(ви|ри|ти|ми|ва|ра|та|на|во|ро|то|но)`)

var (
	feminineSuffixes = map[string]bool{"ва": true, "ра": true, "та": true, "на": true}
	neuterSuffixes   = map[string]bool{"во": true, "ро": true, "то": true, "но": true}
)

func normalizeOrdinalSuffixes(s string) string {
	return rewrite.All(s, reOrdinalSuffix, func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() || !m.AtBoundaryAfter() {
			return "", false
		}
		v, err := strconv.ParseInt(m.Group(1), 10, 64)
		if err != nil {
			return "", false
		}
		g := numwords.Masculine
		switch suffix := m.Group(2); {
		case feminineSuffixes[suffix]:
			g = numwords.Feminine
		case neuterSuffixes[suffix]:
			g = numwords.Neuter
		}
		return numwords.Ordinal(v, g), true
	})
}

var reYear = regexp.MustCompile(`(\d{4})\s*(г\.|година|години)`)

func normalizeYears(s string) string {
	return rewrite.All(s, reYear, func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() {
			return "", false
		}
		if suffix := m.Group(2); !strings.HasSuffix(suffix, ".") && !m.AtBoundaryAfter() {
			return "", false
		}
		year, _ := strconv.Atoi(m.Group(1))
		if year < 1000 || year > 2100 {
			return "", false
		}
		return dates.Year(year) + " година", true
	})
}

var (
	reDecimalNum = regexp.MustCompile(`(\d+)[.,](\d+)`)
	reIntegerNum = regexp.MustCompile(`\d+`)
)

func normalizeNumbers(s string) string {
	cur := s
	s = rewrite.All(cur, reDecimalNum, func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() || !m.AtBoundaryAfter() {
			return "", false
		}
		if partOfDottedRun(cur, m.Start(), m.End()) {
			return "", false
		}
		out := numwords.Decimal(m.Group(1)+"."+m.Group(2), numwords.Neuter)
		if out == "" {
			return "", false
		}
		return out, true
	})

	cur = s
	s = rewrite.All(cur, reIntegerNum, func(m rewrite.Match) (string, bool) {
		if !m.AtBoundaryBefore() || !m.AtBoundaryAfter() {
			return "", false
		}
		if partOfDottedRun(cur, m.Start(), m.End()) {
			return "", false
		}
		v, err := strconv.ParseInt(m.Text(), 10, 64)
		if err != nil || v > maxSpoken {
			return "", false
		}
		return numwords.Cardinal(v, numwords.Masculine), true
	})

	return s
}

// partOfDottedRun reports whether s[start:end] is glued to further dotted
// digits on either side, like each component of 35.13.2024.
func partOfDottedRun(s string, start, end int) bool {
	if start >= 2 && (s[start-1] == '.' || s[start-1] == '/') && isDigit(s[start-2]) {
		return true
	}
	if end+1 < len(s) && (s[end] == '.' || s[end] == '/') && isDigit(s[end+1]) {
		return true
	}
	return false
}

var reSpace = regexp.MustCompile(`\s+`)

func normalizeWhitespace(s string) string {
	return strings.TrimSpace(reSpace.ReplaceAllString(s, " "))
}
