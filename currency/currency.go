// Package currency renders money amounts in spoken Bulgarian.
package currency

import (
	"strconv"
	"strings"

	"github.com/raditotev/bg-text-normalizer/numwords"
)

// Info describes how a currency is spoken: unit names for the main and
// fractional denominations and the grammatical gender each agrees with.
type Info struct {
	MainSingular string
	MainPlural   string
	SubSingular  string
	SubPlural    string
	MainGender   numwords.Gender
	SubGender    numwords.Gender
}

var currencies = map[string]Info{
	"BGN": {
		MainSingular: "лев",
		MainPlural:   "лева",
		SubSingular:  "стотинка",
		SubPlural:    "стотинки",
		MainGender:   numwords.Masculine,
		SubGender:    numwords.Feminine,
	},
	"EUR": {
		MainSingular: "евро",
		MainPlural:   "евро",
		SubSingular:  "цент",
		SubPlural:    "цента",
		MainGender:   numwords.Neuter,
		SubGender:    numwords.Masculine,
	},
	"USD": {
		MainSingular: "долар",
		MainPlural:   "долара",
		SubSingular:  "цент",
		SubPlural:    "цента",
		MainGender:   numwords.Masculine,
		SubGender:    numwords.Masculine,
	},
	"GBP": {
		MainSingular: "лира",
		MainPlural:   "лири",
		SubSingular:  "пени",
		SubPlural:    "пенса",
		MainGender:   numwords.Feminine,
		SubGender:    numwords.Masculine,
	},
}

// Lookup returns the spoken-form description for a currency code. Unknown
// codes fall back to BGN.
func Lookup(code string) Info {
	if info, ok := currencies[strings.ToUpper(code)]; ok {
		return info
	}
	return currencies["BGN"]
}

// Normalize converts a money amount to spoken Bulgarian:
// "1500.50" in BGN becomes "хиляда и петстотин лева и петдесет стотинки".
//
// The amount is parsed as a string, never through a float. The fractional
// part is truncated or zero-padded to two digits, so "0.5" reads as fifty
// stotinki. An unparsable amount is returned unchanged. A zero amount reads
// as "нула" plus the plural main unit.
func Normalize(amount, code string) string {
	info := Lookup(code)

	s := strings.ReplaceAll(strings.ReplaceAll(amount, ",", "."), " ", "")

	var main, sub int64
	if mainStr, fracStr, found := strings.Cut(s, "."); found {
		if mainStr != "" {
			v, err := strconv.ParseInt(mainStr, 10, 64)
			if err != nil {
				return amount
			}
			main = v
		}
		v, err := strconv.ParseInt((fracStr + "00")[:2], 10, 64)
		if err != nil {
			return amount
		}
		sub = v
	} else {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return amount
		}
		main = v
	}

	var parts []string

	if main > 0 {
		unit := info.MainPlural
		if main == 1 {
			unit = info.MainSingular
		}
		parts = append(parts, numwords.Cardinal(main, info.MainGender)+" "+unit)
	}

	if sub > 0 {
		if len(parts) > 0 {
			parts = append(parts, "и")
		}
		unit := info.SubPlural
		if sub == 1 {
			unit = info.SubSingular
		}
		parts = append(parts, numwords.Cardinal(sub, info.SubGender)+" "+unit)
	}

	if len(parts) == 0 {
		return "нула " + info.MainPlural
	}
	return strings.Join(parts, " ")
}
