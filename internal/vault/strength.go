// Package vault holds the password-entry services: strength scoring,
// generation, secret sealing, family sharing and exports.
package vault

import (
	"unicode/utf16"

	"github.com/rohits-web03/passvault/internal/models"
)

// Classify scores a plaintext secret. One point each for length >= 8,
// length >= 12, a lowercase letter, an uppercase letter, a digit and any
// other character; <= 2 is weak, <= 4 is medium, anything above is strong.
// Length is measured in UTF-16 code units so scores match the web client,
// which counts a character outside the BMP as two.
func Classify(secret string) models.Strength {
	var lower, upper, digit, symbol bool
	n := 0
	for _, r := range secret {
		n += utf16.RuneLen(r)
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}

	score := 0
	for _, ok := range []bool{n >= 8, n >= 12, lower, upper, digit, symbol} {
		if ok {
			score++
		}
	}

	switch {
	case score <= 2:
		return models.StrengthWeak
	case score <= 4:
		return models.StrengthMedium
	default:
		return models.StrengthStrong
	}
}
