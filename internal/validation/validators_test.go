package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	t.Run("valid names", func(t *testing.T) {
		for _, raw := range []string{"Іван", "Марія-Олена", "O'Brien", "Анна Марія", "  Петро  "} {
			name, res := ValidateName(raw)
			assert.True(t, res.Valid, "input %q: %s", raw, res.Message)
			assert.Equal(t, strings.TrimSpace(raw), name)
		}
	})

	t.Run("empty", func(t *testing.T) {
		_, res := ValidateName("   ")
		assert.False(t, res.Valid)
		assert.Equal(t, msgFieldRequired, res.Message)
	})

	t.Run("length boundaries", func(t *testing.T) {
		_, res := ValidateName("І")
		assert.False(t, res.Valid)
		assert.Equal(t, msgNameLength, res.Message)

		// 50 кириличних символів - верхня допустима межа
		name50 := strings.Repeat("а", 50)
		_, res = ValidateName(name50)
		assert.True(t, res.Valid)

		_, res = ValidateName(name50 + "а")
		assert.False(t, res.Valid)
		assert.Equal(t, msgNameLength, res.Message)
	})

	t.Run("forbidden characters", func(t *testing.T) {
		for _, raw := range []string{"Іван123", "Іван!", "ivan@mail"} {
			_, res := ValidateName(raw)
			assert.False(t, res.Valid, "input %q", raw)
			assert.Equal(t, msgNameCharset, res.Message)
		}
	})
}

func TestValidatePhone(t *testing.T) {
	t.Run("accepted forms normalize to canonical", func(t *testing.T) {
		inputs := []string{
			"0671234567",
			"380671234567",
			"+380671234567",
			"+38 (067) 123-45-67",
			"067 123 45 67",
		}
		for _, raw := range inputs {
			phone, res := ValidatePhone(raw)
			assert.True(t, res.Valid, "input %q: %s", raw, res.Message)
			assert.Equal(t, "+380671234567", phone, "input %q", raw)
		}
	})

	t.Run("normalization is idempotent", func(t *testing.T) {
		phone, res := ValidatePhone("0501234567")
		assert.True(t, res.Valid)

		again, res := ValidatePhone(phone)
		assert.True(t, res.Valid)
		assert.Equal(t, phone, again)
	})

	t.Run("unknown operator code", func(t *testing.T) {
		_, res := ValidatePhone("+380111234567")
		assert.False(t, res.Valid)
		assert.Equal(t, msgPhoneOperator, res.Message)
	})

	t.Run("wrong format", func(t *testing.T) {
		for _, raw := range []string{"12345", "+380 67 123", "abc", "+4915112345678"} {
			_, res := ValidatePhone(raw)
			assert.False(t, res.Valid, "input %q", raw)
		}
	})

	t.Run("empty", func(t *testing.T) {
		_, res := ValidatePhone("  ")
		assert.False(t, res.Valid)
		assert.Equal(t, msgPhoneRequired, res.Message)
	})
}

func TestValidateEmail(t *testing.T) {
	t.Run("valid and normalized", func(t *testing.T) {
		email, res := ValidateEmail("  Ivan@Example.COM ")
		assert.True(t, res.Valid)
		assert.Equal(t, "ivan@example.com", email)
	})

	t.Run("consecutive dots", func(t *testing.T) {
		_, res := ValidateEmail("a..b@example.com")
		assert.False(t, res.Valid)
		assert.Equal(t, msgEmailFormat, res.Message)

		_, res = ValidateEmail("ab@exa..mple.com")
		assert.False(t, res.Valid)
	})

	t.Run("domain must contain a dot", func(t *testing.T) {
		_, res := ValidateEmail("ivan@localhost")
		assert.False(t, res.Valid)
		assert.Equal(t, msgEmailFormat, res.Message)
	})

	t.Run("length limits", func(t *testing.T) {
		longLocal := strings.Repeat("a", 65) + "@example.com"
		_, res := ValidateEmail(longLocal)
		assert.False(t, res.Valid)

		longTotal := strings.Repeat("a", 250) + "@ex.com"
		_, res = ValidateEmail(longTotal)
		assert.False(t, res.Valid)
		assert.Equal(t, msgEmailTooLong, res.Message)
	})

	t.Run("empty", func(t *testing.T) {
		_, res := ValidateEmail("")
		assert.False(t, res.Valid)
		assert.Equal(t, msgEmailRequired, res.Message)
	})
}

func TestValidateNotes(t *testing.T) {
	notes, res := ValidateNotes("  зйомка для каталогу  ")
	assert.True(t, res.Valid)
	assert.Equal(t, "зйомка для каталогу", notes)

	_, res = ValidateNotes(strings.Repeat("а", 501))
	assert.False(t, res.Valid)
	assert.Equal(t, msgNotesTooLong, res.Message)

	// Порожні нотатки допустимі
	notes, res = ValidateNotes("")
	assert.True(t, res.Valid)
	assert.Equal(t, "", notes)
}

func TestRequireParams(t *testing.T) {
	record := map[string]string{
		"date":     "2026-03-15",
		"time":     "",
		"location": "  ",
	}

	missing := RequireParams(record, "date", "time", "location", "duration")
	assert.Equal(t, []string{"time", "location", "duration"}, missing)

	assert.Empty(t, RequireParams(record, "date"))
}
