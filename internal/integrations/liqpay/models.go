package liqpay

// checkoutParams параметры платежа, кодируемые в поле data
type checkoutParams struct {
	Version     int     `json:"version"`
	PublicKey   string  `json:"public_key"`
	Action      string  `json:"action"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	OrderID     string  `json:"order_id"`
	ServerURL   string  `json:"server_url,omitempty"`
	ResultURL   string  `json:"result_url,omitempty"`
	Sandbox     string  `json:"sandbox,omitempty"`
}

// Checkout подготовленные данные для редиректа на страницу оплаты
type Checkout struct {
	Data        string `json:"data"`
	Signature   string `json:"signature"`
	CheckoutURL string `json:"checkout_url"`
}

// Callback расшифрованный server-to-server callback от платежной системы
type Callback struct {
	OrderID        string  `json:"order_id"`
	Status         string  `json:"status"`
	PaymentID      int64   `json:"payment_id"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	TransactionID  int64   `json:"transaction_id"`
	ErrCode        string  `json:"err_code"`
	ErrDescription string  `json:"err_description"`
}

// Статусы платежа, приходящие в callback
const (
	StatusSuccess  = "success"
	StatusSandbox  = "sandbox"
	StatusFailure  = "failure"
	StatusError    = "error"
	StatusExpired  = "expired"
	StatusReversed = "reversed"
)

// IsPaid true для статусов успешной оплаты
func (c *Callback) IsPaid() bool {
	return c.Status == StatusSuccess || c.Status == StatusSandbox
}

// IsFailed true для терминальных статусов неуспеха
func (c *Callback) IsFailed() bool {
	switch c.Status {
	case StatusFailure, StatusError, StatusExpired, StatusReversed:
		return true
	}
	return false
}
