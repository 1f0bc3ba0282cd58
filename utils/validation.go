// utils/validation.go
package utils

import (
	"net/mail"
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

func cleanPhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "").Replace(strings.TrimSpace(phone))
}

// ValidatePhone checks if a phone number is in a valid international or US format
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(cleanPhone(phone))
}

// SMSNumber converts a valid phone into E.164, assuming +1 for bare 10-digit US numbers.
func SMSNumber(phone string) (string, bool) {
	cleaned := cleanPhone(phone)
	if !phonePattern.MatchString(cleaned) {
		return "", false
	}
	if strings.HasPrefix(cleaned, "+") {
		return cleaned, true
	}
	if len(cleaned) == 10 {
		return "+1" + cleaned, true
	}
	return "+" + cleaned, true
}

// ValidateEmail reports whether s is a bare address like name@example.com.
func ValidateEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
