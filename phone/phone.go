// Package phone reads phone numbers aloud in Bulgarian.
package phone

import (
	"strings"

	"github.com/raditotev/bg-text-normalizer/numwords"
)

const intlPrefix = "+359"

// prefixWords is the spoken form of the +359 country code, read digit by
// digit with an explicit "плюс".
const prefixWords = "плюс три пет девет"

// digitWords uses the neuter forms for 1 and 2, matching how digits are
// read in isolation.
var digitWords = [10]string{
	"нула", "едно", "две", "три", "четири",
	"пет", "шест", "седем", "осем", "девет",
}

// Normalize converts a phone number to its spoken Bulgarian form. The +359
// country code reads digit by digit with "плюс", and restores the domestic
// leading zero; the remaining digits are read in pairs ("88" becomes
// "осемдесет и осем", "05" becomes "нула пет"), with a lone trailing digit
// read on its own. Input without any digit is returned unchanged.
func Normalize(number string) string {
	cleaned := strings.TrimSpace(number)

	var prefixed bool
	if strings.HasPrefix(cleaned, intlPrefix) {
		prefixed = true
		cleaned = strings.TrimSpace(cleaned[len(intlPrefix):])
		if !strings.HasPrefix(cleaned, "0") {
			cleaned = "0" + cleaned
		}
	}

	var digits []byte
	for i := 0; i < len(cleaned); i++ {
		if c := cleaned[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) == 0 {
		return number
	}

	var parts []string
	if prefixed {
		parts = append(parts, prefixWords)
	}

	for i := 0; i < len(digits); {
		if len(digits)-i < 2 {
			parts = append(parts, digitWords[digits[i]-'0'])
			i++
			continue
		}

		hi, lo := digits[i]-'0', digits[i+1]-'0'
		switch {
		case hi == 0 && lo == 0:
			parts = append(parts, "нула нула")
		case hi == 0:
			parts = append(parts, "нула "+digitWords[lo])
		default:
			parts = append(parts, numwords.Cardinal(int64(hi)*10+int64(lo), numwords.Masculine))
		}
		i += 2
	}

	return strings.Join(parts, " ")
}
