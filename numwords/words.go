// Word tables for Bulgarian number-to-text conversion.
package numwords

const (
	// maxTable is the largest value rendered through the scale-word tables.
	// Anything above it is read digit by digit.
	maxTable int64 = 999_999_999_999

	wordZero  = "нула"
	wordMinus = "минус"
	wordConj  = "и"
	wordWhole = "цяло"

	thousandOne    = "хиляда"
	thousandTwo    = "две хиляди"
	thousandPlural = "хиляди"
	millionOne     = "един милион"
	millionTwo     = "два милиона"
	millionPlural  = "милиона"
	billionOne     = "един милиард"
	billionTwo     = "два милиарда"
	billionPlural  = "милиарда"

	// Ordinal stems for round thousands: хиляден / двехиляден / петхиляден.
	thousandStemOne = "хиляд"
	thousandStemTwo = "двехиляд"
	thousandStem    = "хиляд"
)

// digitWords is used for digit-by-digit fallback reading. The forms for
// 1 and 2 are neuter (едно, две), matching how digits are read in isolation.
var digitWords = [10]string{
	"нула",
	"едно",
	"две",
	"три",
	"четири",
	"пет",
	"шест",
	"седем",
	"осем",
	"девет",
}

// ones is indexed by [gender][digit]; index 0 is unused. Only 1 and 2 vary
// by gender (един/една/едно, два/две/две).
var ones = [3][10]string{
	Masculine: {"", "един", "два", "три", "четири", "пет", "шест", "седем", "осем", "девет"},
	Feminine:  {"", "една", "две", "три", "четири", "пет", "шест", "седем", "осем", "девет"},
	Neuter:    {"", "едно", "две", "три", "четири", "пет", "шест", "седем", "осем", "девет"},
}

// teens is indexed by n-10 for n in [10, 19].
var teens = [10]string{
	"десет",
	"единадесет",
	"дванадесет",
	"тринадесет",
	"четиринадесет",
	"петнадесет",
	"шестнадесет",
	"седемнадесет",
	"осемнадесет",
	"деветнадесет",
}

// tens is indexed by the tens digit (2–9); indexes 0 and 1 are unused.
var tens = [10]string{
	2: "двадесет",
	3: "тридесет",
	4: "четиридесет",
	5: "петдесет",
	6: "шестдесет",
	7: "седемдесет",
	8: "осемдесет",
	9: "деветдесет",
}

// hundreds is indexed by the hundreds digit (1–9); index 0 is unused.
var hundreds = [10]string{
	1: "сто",
	2: "двеста",
	3: "триста",
	4: "четиристотин",
	5: "петстотин",
	6: "шестстотин",
	7: "седемстотин",
	8: "осемстотин",
	9: "деветстотин",
}

// Ordinal tables are indexed by [gender][value] with unused zero slots.
// Bulgarian ordinals carry the gender of the noun they rank.

var ordinalOnes = [3][11]string{
	Masculine: {"", "първи", "втори", "трети", "четвърти", "пети", "шести", "седми", "осми", "девети", "десети"},
	Feminine:  {"", "първа", "втора", "трета", "четвърта", "пета", "шеста", "седма", "осма", "девета", "десета"},
	Neuter:    {"", "първо", "второ", "трето", "четвърто", "пето", "шесто", "седмо", "осмо", "девето", "десето"},
}

// ordinalTeens is indexed by [gender][n-10] for n in [11, 19]; index 0 is unused.
var ordinalTeens = [3][10]string{
	Masculine: {"", "единадесети", "дванадесети", "тринадесети", "четиринадесети", "петнадесети", "шестнадесети", "седемнадесети", "осемнадесети", "деветнадесети"},
	Feminine:  {"", "единадесета", "дванадесета", "тринадесета", "четиринадесета", "петнадесета", "шестнадесета", "седемнадесета", "осемнадесета", "деветнадесета"},
	Neuter:    {"", "единадесето", "дванадесето", "тринадесето", "четиринадесето", "петнадесето", "шестнадесето", "седемнадесето", "осемнадесето", "деветнадесето"},
}

// ordinalTens is indexed by [gender][tens digit] for digits 2–9.
var ordinalTens = [3][10]string{
	Masculine: {2: "двадесети", 3: "тридесети", 4: "четиридесети", 5: "петдесети", 6: "шестдесети", 7: "седемдесети", 8: "осемдесети", 9: "деветдесети"},
	Feminine:  {2: "двадесета", 3: "тридесета", 4: "четиридесета", 5: "петдесета", 6: "шестдесета", 7: "седемдесета", 8: "осемдесета", 9: "деветдесета"},
	Neuter:    {2: "двадесето", 3: "тридесето", 4: "четиридесето", 5: "петдесето", 6: "шестдесето", 7: "седемдесето", 8: "осемдесето", 9: "деветдесето"},
}

// ordinalHundreds is indexed by [gender][hundreds digit] for digits 1–9.
var ordinalHundreds = [3][10]string{
	Masculine: {1: "стотен", 2: "двестотен", 3: "тристотен", 4: "четиристотен", 5: "петстотен", 6: "шестстотен", 7: "седемстотен", 8: "осемстотен", 9: "деветстотен"},
	Feminine:  {1: "стотна", 2: "двестотна", 3: "тристотна", 4: "четиристотна", 5: "петстотна", 6: "шестстотна", 7: "седемстотна", 8: "осемстотна", 9: "деветстотна"},
	Neuter:    {1: "стотно", 2: "двестотно", 3: "тристотно", 4: "четиристотно", 5: "петстотно", 6: "шестстотно", 7: "седемстотно", 8: "осемстотно", 9: "деветстотно"},
}

// ordinalThousandSuffix attaches to a thousands stem: хиляден / хилядна / хилядно.
var ordinalThousandSuffix = [3]string{
	Masculine: "ен",
	Feminine:  "на",
	Neuter:    "но",
}

// denominations maps the number of retained fractional digits (1–3) to the
// denomination word pair (singular, plural). Index 0 is unused; beyond 3
// digits the denomination is omitted.
var denominations = [4]struct{ singular, plural string }{
	1: {"десета", "десети"},
	2: {"стотна", "стотни"},
	3: {"хилядна", "хилядни"},
}
