package service

import "strings"

// countryCode is prefixed to bare 9-digit national numbers so the
// notification deep link routes correctly.
const countryCode = "51"

// NormalizePhone strips non-digit characters and returns the canonical
// phone used for notification routing. Exactly 9 digits gets the country
// code prefixed; any longer digit string passes through unchanged. Fewer
// than 9 digits is ErrInvalidPhone.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) < 9 {
		return "", ErrInvalidPhone
	}
	if len(digits) == 9 {
		return countryCode + digits, nil
	}
	return digits, nil
}
