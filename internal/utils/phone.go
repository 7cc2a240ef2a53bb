package utils

import "strings"

// NormalizePhone brings a user-typed phone number to the +7XXXXXXXXXX form
// the activation endpoint expects. Spaces, dashes and parentheses are
// stripped, a domestic leading 8 becomes 7, and a plus sign is prepended.
//
// The input is a courtesy cleanup only: anything that does not look like a
// phone number after stripping is returned as bare digits with a plus sign,
// and the empty string stays empty.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if digits == "" {
		return ""
	}

	if len(digits) == 11 && digits[0] == '8' {
		digits = "7" + digits[1:]
	}

	return "+" + digits
}
