package business

import "strings"

const countryCode = "91"

// NormalizePhone reduces a phone number to the bare digit string used for
// storage and login comparison. A leading "+" and all separators are
// stripped; a bare 10-digit national number gets the country code prefixed.
// Normalizing an already-normalized number returns the same string.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()

	// Drop the international-dialing zeros ("0091...").
	digits = strings.TrimLeft(digits, "0")

	// A bare 10-digit national number always gets the country code, even
	// when its leading digits look like one; the prefixed form is 12
	// digits and never re-enters this branch.
	if len(digits) == 10 {
		return countryCode + digits
	}
	return digits
}
