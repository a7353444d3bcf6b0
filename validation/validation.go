package validation

import (
	"regexp"
	"strings"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

var (
	startsWithLetter = regexp.MustCompile(`^[a-zA-Z]`)
	invalidEmailChar = regexp.MustCompile(`[^a-zA-Z0-9@._-]`)
	emailFormat      = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._-]*@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidateEmail checks an email address and returns the message key of the
// first rule it breaks, or "" when valid. Rule order matters: required,
// leading letter, presence of @, allowed characters, overall format.
func ValidateEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return "validation_email_required"
	}
	if !startsWithLetter.MatchString(email) {
		return "validation_email_must_start_with_letter"
	}
	if !strings.Contains(email, "@") {
		return "validation_email_must_contain_at"
	}
	if invalidEmailChar.MatchString(email) {
		return "validation_email_contains_invalid_chars"
	}
	if !emailFormat.MatchString(email) {
		return "validation_email_invalid_format"
	}
	return ""
}
