// internal/domain/validate.go
package domain

import (
	"math"
	"regexp"
	"strings"
)

var (
	// Basic local@domain.tld shape, no whitespace and exactly one @.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Kenyan mobile number: 07XXXXXXXX or 2547XXXXXXXX.
	phonePattern = regexp.MustCompile(`^(07\d{8}|2547\d{8})$`)
)

// ValidEmail reports whether email has a basic local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeEmail lowercases email so log lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}

// NormalizePhone validates phone against the accepted formats and rewrites
// the local 07XXXXXXXX form to the international 2547XXXXXXXX form.
func NormalizePhone(phone string) (string, bool) {
	if !phonePattern.MatchString(phone) {
		return "", false
	}
	if strings.HasPrefix(phone, "07") {
		phone = "254" + phone[1:]
	}
	return phone, true
}

// ValidAmount reports whether amount is a finite number within [min, max].
func ValidAmount(amount, min, max float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	return amount >= min && amount <= max
}
