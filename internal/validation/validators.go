package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
)

// FieldResult результат проверки одного поля.
// Валидаторы никогда не возвращают ошибку Go: невалидный ввод - это
// ожидаемое состояние, оно описывается Valid=false и сообщением.
type FieldResult struct {
	Valid   bool
	Message string
}

func ok() FieldResult {
	return FieldResult{Valid: true}
}

func fail(message string) FieldResult {
	return FieldResult{Valid: false, Message: message}
}

const (
	minNameLength = 2
	maxNameLength = 50

	maxEmailLength      = 254
	maxEmailLocalLength = 64
)

// operatorCodes коды мобильных операторов Украины.
// Две цифры сразу после префикса страны.
var operatorCodes = map[string]struct{}{
	"39": {}, "50": {}, "63": {}, "66": {}, "67": {}, "68": {}, "73": {},
	"91": {}, "92": {}, "93": {}, "94": {}, "95": {}, "96": {}, "97": {},
	"98": {}, "99": {},
}

var (
	nameRe       = regexp.MustCompile(`^[A-Za-zА-Яа-яЁёІіЇїЄєҐґ'’ -]+$`)
	phoneStripRe = regexp.MustCompile(`[\s()\-]`)
	phoneRe      = regexp.MustCompile(`^(?:\+?380|0)(\d{9})$`)
	emailRe      = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
)

// ValidateName проверяет имя или фамилию.
// Возвращает нормализованную копию (обрезанные пробелы) и результат проверки.
func ValidateName(raw string) (string, FieldResult) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fail(msgFieldRequired)
	}

	length := utf8.RuneCountInString(name)
	if length < minNameLength || length > maxNameLength {
		return "", fail(msgNameLength)
	}

	if !nameRe.MatchString(name) {
		return "", fail(msgNameCharset)
	}

	return name, ok()
}

// ValidatePhone проверяет украинский мобильный номер.
// Принимает формы 0XXXXXXXXX, 380XXXXXXXXX, +380XXXXXXXXX (с пробелами,
// скобками и дефисами) и нормализует до +380XXXXXXXXX.
// Нормализация идемпотентна: валидный канонический номер возвращается без изменений.
func ValidatePhone(raw string) (string, FieldResult) {
	stripped := phoneStripRe.ReplaceAllString(raw, "")
	if stripped == "" {
		return "", fail(msgPhoneRequired)
	}

	match := phoneRe.FindStringSubmatch(stripped)
	if match == nil {
		return "", fail(msgPhoneFormat)
	}

	digits := match[1]
	if _, known := operatorCodes[digits[:2]]; !known {
		return "", fail(msgPhoneOperator)
	}

	return "+380" + digits, ok()
}

// ValidateEmail проверяет адрес email.
// Возвращает нормализованную копию: обрезанную и в нижнем регистре.
func ValidateEmail(raw string) (string, FieldResult) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", fail(msgEmailRequired)
	}

	if len(email) > maxEmailLength {
		return "", fail(msgEmailTooLong)
	}

	local, _, found := strings.Cut(email, "@")
	if !found || len(local) > maxEmailLocalLength {
		return "", fail(msgEmailFormat)
	}

	// Две точки подряд недопустимы в любой части адреса
	if strings.Contains(email, "..") {
		return "", fail(msgEmailFormat)
	}

	if !emailRe.MatchString(email) {
		return "", fail(msgEmailFormat)
	}

	return email, ok()
}

// ValidateNotes проверяет заметки. Поле необязательное.
func ValidateNotes(raw string) (string, FieldResult) {
	notes := strings.TrimSpace(raw)
	if utf8.RuneCountInString(notes) > domain.MaxNotesLength {
		return "", fail(msgNotesTooLong)
	}
	return notes, ok()
}

// RequireParams проверяет, что все названные поля присутствуют и не пусты.
// Возвращает имена отсутствующих полей. Используется для защиты вызовов
// (например, перед проверкой доступности), а не для отображения формы.
func RequireParams(record map[string]string, fields ...string) []string {
	missing := make([]string, 0)
	for _, field := range fields {
		value, present := record[field]
		if !present || strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}
