package internal

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Pakistani identity and contact formats. CNIC is the 13-digit national
// identity card number, displayed as XXXXX-XXXXXXX-X. Phone numbers accept
// the +92 country code, the bare 92 prefix, or the 0 trunk prefix.
const (
	EmailRegexTemplate = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	MinimumAge         = 18
)

var (
	emailRegex = regexp.MustCompile(EmailRegexTemplate)
	cnicRegex  = regexp.MustCompile(`^\d{13}$`)
	// Latin letters, whitespace and the Arabic-script block used by Urdu.
	nameRegex    = regexp.MustCompile(`^[a-zA-Z\s\x{0600}-\x{06FF}]+$`)
	nonDigit     = regexp.MustCompile(`\D`)
	nonDigitPlus = regexp.MustCompile(`[^\d+]`)

	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\+92\d{10}$`), // +92XXXXXXXXXX
		regexp.MustCompile(`^92\d{10}$`),   // 92XXXXXXXXXX
		regexp.MustCompile(`^0\d{10}$`),    // 0XXXXXXXXXX (11 digits, landline trunk form)
		regexp.MustCompile(`^03\d{9}$`),    // 03XXXXXXXXX (11 digits, mobile)
	}
)

// ValidCNIC reports whether the given string is a valid CNIC: exactly 13
// decimal digits once dashes and whitespace are stripped.
func ValidCNIC(cnic string) bool {
	clean := strings.NewReplacer("-", "", " ", "", "\t", "").Replace(cnic)
	return cnicRegex.MatchString(clean)
}

// FormatCNIC strips all non-digits and re-inserts the XXXXX-XXXXXXX-X
// dashes, truncating at 13 digits. Partial input is formatted
// progressively, so it is safe to call on every keystroke.
func FormatCNIC(cnic string) string {
	clean := nonDigit.ReplaceAllString(cnic, "")
	switch {
	case len(clean) <= 5:
		return clean
	case len(clean) <= 12:
		return clean[:5] + "-" + clean[5:]
	default:
		return clean[:5] + "-" + clean[5:12] + "-" + clean[12:13]
	}
}

// ValidPhone reports whether the given string is a valid Pakistani phone
// number in any of the accepted prefix forms. Spaces, dashes and
// parentheses are ignored.
func ValidPhone(phone string) bool {
	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	for _, pattern := range phonePatterns {
		if pattern.MatchString(clean) {
			return true
		}
	}
	return false
}

// FormatPhone strips everything but digits and '+' and re-inserts a single
// dash after the country or trunk prefix (+92-XXX-XXXXXXX or
// 0XXX-XXXXXXX), progressively as digits accrue. The bare 92 prefix is
// normalized to +92.
func FormatPhone(phone string) string {
	clean := nonDigitPlus.ReplaceAllString(phone, "")
	switch {
	case strings.HasPrefix(clean, "+92"):
		return formatIntlPhone(clean[3:])
	case strings.HasPrefix(clean, "92"):
		return formatIntlPhone(clean[2:])
	case strings.HasPrefix(clean, "0"):
		if len(clean) <= 4 {
			return clean
		}
		return clean[:4] + "-" + clean[4:]
	}
	return clean
}

func formatIntlPhone(digits string) string {
	if len(digits) <= 3 {
		return "+92-" + digits
	}
	return "+92-" + digits[:3] + "-" + digits[3:]
}

// ValidEmail reports whether the given string looks like an email address.
// The pattern is deliberately permissive (local@domain.tld shape); full
// RFC 5322 compliance is not attempted.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidName reports whether the given string is a plausible person name:
// at least two characters, Latin letters, whitespace or Urdu script only.
func ValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if len([]rune(trimmed)) < 2 {
		return false
	}
	return nameRegex.MatchString(trimmed)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return parsed, nil
}

// AgeAt returns the whole years between the YYYY-MM-DD date of birth and
// now, decremented by one when the birthday has not yet been reached in
// the current year. Unparseable input yields 0.
func AgeAt(dateOfBirth string, now time.Time) int {
	birth, err := ParseDate(dateOfBirth)
	if err != nil {
		return 0
	}
	age := now.Year() - birth.Year()
	if int(now.Month()) < int(birth.Month()) ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// CalculateAge returns the age in whole years as of the current date.
func CalculateAge(dateOfBirth string) int {
	return AgeAt(dateOfBirth, time.Now())
}

// ValidMinimumAgeAt reports whether the date of birth corresponds to an
// age of at least MinimumAge years at the given instant.
func ValidMinimumAgeAt(dateOfBirth string, now time.Time) bool {
	return AgeAt(dateOfBirth, now) >= MinimumAge
}

// ValidMinimumAge reports whether the date of birth corresponds to an age
// of at least MinimumAge years today.
func ValidMinimumAge(dateOfBirth string) bool {
	return ValidMinimumAgeAt(dateOfBirth, time.Now())
}

// ValidRequired reports whether the value is non-empty once trimmed.
func ValidRequired(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ValidLength reports whether the trimmed value length is within the
// inclusive [minLen, maxLen] range. A maxLen of 0 means unbounded.
func ValidLength(value string, minLen, maxLen int) bool {
	length := len([]rune(strings.TrimSpace(value)))
	if length < minLen {
		return false
	}
	return maxLen == 0 || length <= maxLen
}

// validationMessages maps a validation kind to its user-facing template.
var validationMessages = map[string]string{
	"required": "%s is required",
	"cnic":     "Please enter a valid 13-digit CNIC",
	"phone":    "Please enter a valid Pakistani phone number",
	"email":    "Please enter a valid email address",
	"age":      "You must be at least 18 years old to register",
	"name":     "Please enter a valid name (letters only)",
	"length":   "%s length is invalid",
}

// ValidationMessage maps a validation-kind tag to a fixed human-readable
// message for the given field label. Unknown kinds fall back to a generic
// "<field> is invalid" message.
func ValidationMessage(field, kind string) string {
	template, ok := validationMessages[kind]
	if !ok {
		return fmt.Sprintf("%s is invalid", field)
	}
	if strings.Contains(template, "%s") {
		return fmt.Sprintf(template, field)
	}
	return template
}
