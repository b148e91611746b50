package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() FormInput {
	return FormInput{
		FirstName: "Іван",
		LastName:  "Петренко",
		Phone:     "067 123 45 67",
		Email:     " Ivan@Example.COM ",
		Notes:     "  зйомка лукбука ",
		Date:      "2026-03-15",
		Time:      "10:00",
	}
}

func TestValidateBookingForm_Valid(t *testing.T) {
	result := ValidateBookingForm(validInput())

	require.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	require.NotNil(t, result.Normalized)

	assert.Equal(t, "Іван", result.Normalized.FirstName)
	assert.Equal(t, "Петренко", result.Normalized.LastName)
	assert.Equal(t, "+380671234567", result.Normalized.PhoneNumber)
	assert.Equal(t, "ivan@example.com", result.Normalized.Email)
	assert.Equal(t, "зйомка лукбука", result.Normalized.Notes)
}

func TestValidateBookingForm_CollectsAllErrors(t *testing.T) {
	result := ValidateBookingForm(FormInput{
		FirstName: "І",
		LastName:  "",
		Phone:     "12345",
		Email:     "a..b@example.com",
		Date:      "",
		Time:      "",
	})

	require.False(t, result.Valid)
	assert.Nil(t, result.Normalized)

	for _, field := range []string{
		"first_name", "last_name", "phone_number", "email", "booking_date", "booking_time",
	} {
		assert.Contains(t, result.Errors, field)
	}
}

func TestValidateBookingForm_SingleFieldError(t *testing.T) {
	in := validInput()
	in.Phone = "+380111234567" // невідомий код оператора

	result := ValidateBookingForm(in)

	require.False(t, result.Valid)
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, msgPhoneOperator, result.Errors["phone_number"])
}
