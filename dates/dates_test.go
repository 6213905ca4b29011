package dates

import (
	"fmt"
	"testing"
)

func TestMonthName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		month int
		want  string
	}{
		{1, "януари"},
		{2, "февруари"},
		{3, "март"},
		{5, "май"},
		{9, "септември"},
		{12, "декември"},
		{0, ""},
		{13, ""},
		{-1, ""},
	}

	for _, tt := range cases {
		if got := MonthName(tt.month); got != tt.want {
			t.Errorf("MonthName(%d) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestMonthNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want int
	}{
		{"януари", 1},
		{"май", 5},
		{"Май", 5},
		{"ДЕКЕМВРИ", 12},
		{"месец", 0},
		{"", 0},
	}

	for _, tt := range cases {
		if got := MonthNumber(tt.name); got != tt.want {
			t.Errorf("MonthNumber(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		day, month int
		want       string
	}{
		{"mid month", 15, 5, "петнадесети май"},
		{"first of january", 1, 1, "първи януари"},
		{"christmas", 25, 12, "двадесет и пети декември"},
		{"last possible day", 31, 12, "тридесет и първи декември"},
		{"day out of range", 35, 5, ""},
		{"day zero", 0, 5, ""},
		{"month out of range", 15, 13, ""},
		{"month zero", 15, 0, ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Date(tt.day, tt.month); got != tt.want {
				t.Errorf("Date(%d, %d) = %q, want %q", tt.day, tt.month, got, tt.want)
			}
		})
	}
}

func TestDateYear(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name             string
		day, month, year int
		suffix           bool
		want             string
	}{
		{
			"with suffix", 15, 2, 2026, true,
			"петнадесети февруари две хиляди двадесет и шеста година",
		},
		{
			"without suffix", 1, 9, 2024, false,
			"първи септември две хиляди двадесет и четвърта",
		},
		{
			"round year", 1, 1, 2000, true,
			"първи януари двехилядна година",
		},
		{
			"nineteenth century", 3, 3, 1878, true,
			"трети март хиляда осемстотин седемдесет и осма година",
		},
		{"invalid day", 32, 1, 2024, true, ""},
		{"invalid month", 15, 14, 2024, true, ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DateYear(tt.day, tt.month, tt.year, tt.suffix)
			if got != tt.want {
				t.Errorf("DateYear(%d, %d, %d, %v) = %q, want %q",
					tt.day, tt.month, tt.year, tt.suffix, got, tt.want)
			}
		})
	}
}

func TestYear(t *testing.T) {
	t.Parallel()

	cases := []struct {
		year int
		want string
	}{
		{2026, "две хиляди двадесет и шеста"},
		{1989, "хиляда деветстотин осемдесет и девета"},
		{2000, "двехилядна"},
		{1900, "хиляда деветстотна"},
		{1, "първа"},
		{0, "нула"},
		{-44, "минус четиридесет и четири"},
	}

	for _, tt := range cases {
		if got := Year(tt.year); got != tt.want {
			t.Errorf("Year(%d) = %q, want %q", tt.year, got, tt.want)
		}
	}
}

func ExampleDateYear() {
	fmt.Println(DateYear(3, 3, 1878, true))
	// Output: трети март хиляда осемстотин седемдесет и осма година
}
