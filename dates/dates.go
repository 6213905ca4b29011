// Package dates renders calendar dates and years in spoken Bulgarian.
//
// Days are masculine ordinals (agreeing with "ден"), years are feminine
// ordinals (agreeing with "година"): "петнадесети февруари две хиляди
// двадесет и шеста година".
package dates

import (
	"strings"

	"github.com/raditotev/bg-text-normalizer/numwords"
)

// monthNames is indexed by month number; index 0 is unused.
var monthNames = [13]string{
	1:  "януари",
	2:  "февруари",
	3:  "март",
	4:  "април",
	5:  "май",
	6:  "юни",
	7:  "юли",
	8:  "август",
	9:  "септември",
	10: "октомври",
	11: "ноември",
	12: "декември",
}

// MonthName returns the Bulgarian name of month m, or "" when m is not
// in [1, 12].
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthNames[m]
}

// MonthNumber returns the month number for a Bulgarian month name, matched
// case-insensitively, or 0 when the name is unknown.
func MonthNumber(name string) int {
	name = strings.ToLower(name)
	for m := 1; m <= 12; m++ {
		if monthNames[m] == name {
			return m
		}
	}
	return 0
}

// ValidDay reports whether d can be a day of month.
func ValidDay(d int) bool {
	return d >= 1 && d <= 31
}

// Date renders a day and month: "петнадесети май". Returns "" when the day
// is not in [1, 31] or the month is not in [1, 12], so callers can leave
// non-dates untouched.
func Date(day, month int) string {
	if !ValidDay(day) {
		return ""
	}
	name := MonthName(month)
	if name == "" {
		return ""
	}
	return numwords.Ordinal(int64(day), numwords.Masculine) + " " + name
}

// DateYear renders a full date: "петнадесети май две хиляди двадесет и
// шеста". With withSuffix the word "година" is appended. Returns "" on an
// invalid day or month.
func DateYear(day, month, year int, withSuffix bool) string {
	d := Date(day, month)
	if d == "" {
		return ""
	}
	s := d + " " + Year(year)
	if withSuffix {
		s += " година"
	}
	return s
}

// Year renders a year as a feminine ordinal: "две хиляди двадесет и шеста".
// Years below 1 have no ordinal form and are read as cardinals.
func Year(year int) string {
	if year <= 0 {
		return numwords.Cardinal(int64(year), numwords.Masculine)
	}
	return numwords.Ordinal(int64(year), numwords.Feminine)
}
