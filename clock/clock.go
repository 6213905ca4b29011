// Package clock renders 24-hour clock times in spoken Bulgarian.
package clock

import (
	"github.com/raditotev/bg-text-normalizer/numwords"
)

// Time renders hours and minutes as spoken Bulgarian: "четиринадесет и
// тридесет". Zero minutes are omitted ("дванадесет"). With withSuffix the
// word "часа" is appended. No validity range is enforced; whatever the
// text carries is read out.
func Time(hours, minutes int, withSuffix bool) string {
	s := numwords.Cardinal(int64(hours), numwords.Masculine)
	if minutes != 0 {
		s += " и " + numwords.Cardinal(int64(minutes), numwords.Masculine)
	}
	if withSuffix {
		s += " часа"
	}
	return s
}
