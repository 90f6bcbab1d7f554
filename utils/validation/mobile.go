package validation

import (
	"strings"

	"github.com/coachdesk/coachdesk-api/utils/apperr"
)

// MobileLength is the expected number of digits in an Indian mobile number.
const MobileLength = 10

// NormalizeMobile strips every non-digit character from a mobile number as
// typed ("98765 43210", "98765-43210" and so on).
func NormalizeMobile(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateMobiles normalizes both mobile numbers and requires at least one
// to be exactly ten digits. A secondary number that normalizes to the wrong
// length is rejected outright rather than silently dropped, so a typo never
// loses a contact number.
func ValidateMobiles(m1, m2 string) (string, string, error) {
	n1 := NormalizeMobile(m1)
	n2 := NormalizeMobile(m2)

	ok1 := len(n1) == MobileLength
	ok2 := len(n2) == MobileLength

	if !ok1 && !ok2 {
		return "", "", apperr.New(apperr.KindValidation, "at least one 10-digit mobile number is required")
	}
	if n1 != "" && !ok1 {
		return "", "", apperr.New(apperr.KindValidation, "mobile must be exactly 10 digits")
	}
	if n2 != "" && !ok2 {
		return "", "", apperr.New(apperr.KindValidation, "mobile2 must be exactly 10 digits")
	}
	return n1, n2, nil
}
