package validation

import (
	"strings"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
)

// FormInput сырые данные формы бронирования
type FormInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Notes     string
	Date      string
	Time      string
}

// FormResult агрегированный результат проверки формы.
// Normalized заполняется только при Valid=true.
type FormResult struct {
	Valid      bool
	Errors     map[string]string
	Normalized *domain.ContactInfo
}

// ValidateBookingForm проверяет все поля формы бронирования и возвращает
// ошибки по полям вместе с нормализованной копией валидного ввода.
func ValidateBookingForm(in FormInput) FormResult {
	errors := make(map[string]string)

	firstName, res := ValidateName(in.FirstName)
	if !res.Valid {
		errors["first_name"] = res.Message
	}

	lastName, res := ValidateName(in.LastName)
	if !res.Valid {
		errors["last_name"] = res.Message
	}

	phone, res := ValidatePhone(in.Phone)
	if !res.Valid {
		errors["phone_number"] = res.Message
	}

	email, res := ValidateEmail(in.Email)
	if !res.Valid {
		errors["email"] = res.Message
	}

	notes, res := ValidateNotes(in.Notes)
	if !res.Valid {
		errors["notes"] = res.Message
	}

	if strings.TrimSpace(in.Date) == "" {
		errors["booking_date"] = msgDateRequired
	}
	if strings.TrimSpace(in.Time) == "" {
		errors["booking_time"] = msgTimeRequired
	}

	if len(errors) > 0 {
		return FormResult{Valid: false, Errors: errors}
	}

	return FormResult{
		Valid:  true,
		Errors: map[string]string{},
		Normalized: &domain.ContactInfo{
			FirstName:   firstName,
			LastName:    lastName,
			PhoneNumber: phone,
			Email:       email,
			Notes:       notes,
		},
	}
}
