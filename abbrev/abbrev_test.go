package abbrev

import (
	"fmt"
	"strings"
	"testing"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"street", "бул. Витоша", "булевард Витоша"},
		{"city", "гр. София", "град София"},
		{"village", "с. Бистрица", "село Бистрица"},
		{"title", "г-н Иванов", "господин Иванов"},
		{"doctor", "д-р Петров", "доктор Петров"},
		{"stacked titles", "проф. д-р Петров", "професор доктор Петров"},
		{
			"full address",
			"ж.к. Люлин, бл. 305, вх. А, ет. 5, ап. 20",
			"жилищен комплекс Люлин, блок 305, вход А, етаж 5, апартамент 20",
		},
		{"longest first", "и т.н. и т.н.", "и така нататък и така нататък"},
		{"that is", "т.е. не може", "тоест не може"},
		{"company form", "Фирма Тест ЕООД", "Фирма Тест еоод"},
		{"institution", "справка от НАП", "справка от национална агенция по приходите"},
		{"vat", "цена с ДДС", "цена с данък добавена стойност"},
		{"unit with digit", "на 5 км от центъра", "на 5 километра от центъра"},
		{"unit glued to digit", "60км", "60 километра"},
		{"speed", "Скорост: 60 км/ч", "Скорост: 60 километра в час"},
		{"square meters", "Площ: 120 кв.м", "Площ: 120 квадратни метра"},
		{"kilograms", "3 кг брашно", "3 килограма брашно"},
		{"unit without digit untouched", "м и км без числа", "м и км без числа"},
		{"abbrev inside word untouched", "сапун", "сапун"},
		{"era", "през V век пр.н.е.", "през V век преди новата ера"},
		{"case insensitive", "ГР. Пловдив", "град Пловдив"},
		{"no abbreviations", "чист текст без съкращения", "чист текст без съкращения"},
		{"empty", "", ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Expand(tt.input)
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandSymbolBoundaries(t *testing.T) {
	t.Parallel()

	// A symbol glued to a digit is not a standalone token; the pipeline
	// handles those separately.
	if got := Expand("№ едно"); got != "номер едно" {
		t.Errorf("Expand(№ едно) = %q", got)
	}
	if got := Expand("№10"); got != "№10" {
		t.Errorf("Expand(№10) = %q, want unchanged", got)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	cases := []struct {
		abbrev string
		want   string
		ok     bool
	}{
		{"бул.", "булевард", true},
		{"БУЛ.", "булевард", true},
		{"г-н", "господин", true},
		{"км/ч", "километра в час", true},
		{"нап", "национална агенция по приходите", true},
		{"несъществуващо", "", false},
	}

	for _, tt := range cases {
		got, ok := Lookup(tt.abbrev)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Lookup(%q) = %q, %v, want %q, %v", tt.abbrev, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDictionaryLoaded(t *testing.T) {
	t.Parallel()

	if len(general) == 0 || len(units) == 0 {
		t.Fatalf("dictionary not loaded: %d general, %d units", len(general), len(units))
	}

	// Longest-first ordering is what keeps "и т.н." ahead of "т.н.".
	for i := 1; i < len(general); i++ {
		if len([]rune(general[i-1].abbrev)) < len([]rune(general[i].abbrev)) {
			t.Fatalf("general entries out of order: %q before %q",
				general[i-1].abbrev, general[i].abbrev)
		}
	}
}

func ExampleExpand() {
	fmt.Println(Expand("гр. София, бул. Витоша"))
	// Output: град София, булевард Витоша
}

func FuzzExpand(f *testing.F) {
	f.Add("гр. София")
	f.Add("5 км")
	f.Add("")
	f.Add("т.е. т.н. и т.н.")
	f.Add("\xff\xfe")

	f.Fuzz(func(t *testing.T, s string) {
		out := Expand(s)
		if s != "" && out == "" {
			t.Errorf("Expand(%q) produced empty output", s)
		}
		_ = strings.TrimSpace(out)
	})
}
