package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	t.Run("empty and whitespace are required errors", func(t *testing.T) {
		assert.Equal(t, "validation_email_required", ValidateEmail(""))
		assert.Equal(t, "validation_email_required", ValidateEmail(" "))
		assert.Equal(t, "validation_email_required", ValidateEmail("\t \n"))
	})

	t.Run("must start with a letter", func(t *testing.T) {
		for _, email := range []string{"1a@b.com", "_a@b.com", ".a@b.com", "-a@b.com", "9@x.io", "@b.com"} {
			assert.Equal(t, "validation_email_must_start_with_letter", ValidateEmail(email), email)
		}
	})

	t.Run("must contain at sign", func(t *testing.T) {
		assert.Equal(t, "validation_email_must_contain_at", ValidateEmail("ab.com"))
		assert.Equal(t, "validation_email_must_contain_at", ValidateEmail("a"))
	})

	t.Run("rejects invalid characters", func(t *testing.T) {
		assert.Equal(t, "validation_email_contains_invalid_chars", ValidateEmail("a b@c.com"))
		assert.Equal(t, "validation_email_contains_invalid_chars", ValidateEmail("a!@c.com"))
		assert.Equal(t, "validation_email_contains_invalid_chars", ValidateEmail("a+tag@c.com"))
	})

	t.Run("rejects bad overall format", func(t *testing.T) {
		// no TLD of length >= 2
		assert.Equal(t, "validation_email_invalid_format", ValidateEmail("a@b"))
		assert.Equal(t, "validation_email_invalid_format", ValidateEmail("a@b.c"))
		// digits-only TLD
		assert.Equal(t, "validation_email_invalid_format", ValidateEmail("a@b.12"))
		// trailing dot
		assert.Equal(t, "validation_email_invalid_format", ValidateEmail("a@b.com."))
	})

	t.Run("accepts valid addresses", func(t *testing.T) {
		for _, email := range []string{"a@b.com", "alice@example.co", "a.b-c_d@sub.domain.org", "x9@mail.io"} {
			assert.Empty(t, ValidateEmail(email), email)
		}
	})

	t.Run("rule order: leading-letter check wins over missing at", func(t *testing.T) {
		assert.Equal(t, "validation_email_must_start_with_letter", ValidateEmail("1abc"))
	})
}

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("name", "  ", v)
	Required("phone", "0123", v)
	assert.False(t, v.Empty())
	assert.Equal(t, "required", v["name"])
	_, ok := v["phone"]
	assert.False(t, ok)
}
