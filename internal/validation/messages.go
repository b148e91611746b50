package validation

// Сообщения для пользователя на языке бизнеса
const (
	msgFieldRequired = "Це поле обов'язкове"
	msgNameLength    = "Довжина має бути від 2 до 50 символів"
	msgNameCharset   = "Допустимі лише літери, пробіли, апострофи та дефіси"

	msgPhoneRequired = "Вкажіть номер телефону"
	msgPhoneFormat   = "Невірний формат номера телефону"
	msgPhoneOperator = "Невідомий код мобільного оператора"

	msgEmailRequired = "Вкажіть email"
	msgEmailTooLong  = "Занадто довга адреса email"
	msgEmailFormat   = "Невірний формат email"

	msgNotesTooLong = "Нотатки не можуть перевищувати 500 символів"

	msgDateRequired = "Оберіть дату бронювання"
	msgTimeRequired = "Оберіть час бронювання"
)
