package handlers

import (
	"regexp"
	"strings"
)

// Field rules mirror what the backend services accept; anything failing
// here is rejected before a single request goes out.
var (
	nameRegex      = regexp.MustCompile(`^[a-zA-Z]+(?: [a-zA-Z]+)*$`)
	alphaNameRegex = regexp.MustCompile(`^[a-zA-Z ]+$`)
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@(?:gmail\.com|nuclesteq\.com)$`)
	digitsRegex    = regexp.MustCompile(`^\d+$`)
	phoneRegex     = regexp.MustCompile(`^[6789]\d{9}$`)
	pinCodeRegex   = regexp.MustCompile(`^\d{6}$`)
)

// normalizeName trims and collapses runs of spaces to one.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func validatePersonName(name string) string {
	normalized := normalizeName(name)
	switch {
	case normalized == "":
		return "Name cannot be blank."
	case len(normalized) < 3:
		return "Name must be at least 3 characters long."
	case !nameRegex.MatchString(normalized):
		return "Name can only contain alphabets and single spaces between words."
	}
	return ""
}

func validateEmail(email string) string {
	if !emailRegex.MatchString(email) {
		return "Email must end with @gmail.com or @nuclesteq.com."
	}
	localPart := email[:strings.Index(email, "@")]
	if digitsRegex.MatchString(localPart) {
		return "Email local part cannot be just numbers."
	}
	return ""
}

func validatePhone(phoneNo string) string {
	if !phoneRegex.MatchString(phoneNo) {
		return "Phone number must be a 10-digit number starting with 6, 7, 8, or 9."
	}
	return ""
}

func validatePinCode(pinCode string) string {
	if !pinCodeRegex.MatchString(pinCode) {
		return "Pin code must be 6 digits"
	}
	return ""
}

// validateAlphaName covers category and food names.
func validateAlphaName(name, what string) string {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return what + " name cannot be blank."
	case len(trimmed) < 3:
		return what + " name must be at least 3 characters long."
	case !alphaNameRegex.MatchString(trimmed):
		return what + " name must contain only alphabets and spaces."
	}
	return ""
}
