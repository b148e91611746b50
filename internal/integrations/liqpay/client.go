package liqpay

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

const (
	apiVersion         = 3
	actionPay          = "pay"
	currencyUAH        = "UAH"
	defaultCheckoutURL = "https://www.liqpay.ua/api/3/checkout"

	// Описание платежа, которое видит клиент на странице оплаты
	paymentDescription = "Передоплата за оренду студії"
)

// Logger интерфейс логирования для клиента
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежной системы LiqPay.
// Формирует подписанные checkout-данные и проверяет callback
type Client struct {
	publicKey   string
	privateKey  string
	checkoutURL string
	serverURL   string
	resultURL   string
	sandbox     bool
	log         Logger
}

// Config конфигурация клиента
type Config struct {
	PublicKey   string
	PrivateKey  string
	CheckoutURL string
	ServerURL   string
	ResultURL   string
	Sandbox     bool
}

// NewClient создает новый экземпляр клиента LiqPay
func NewClient(cfg Config, log Logger) *Client {
	checkoutURL := cfg.CheckoutURL
	if checkoutURL == "" {
		checkoutURL = defaultCheckoutURL
	}
	return &Client{
		publicKey:   cfg.PublicKey,
		privateKey:  cfg.PrivateKey,
		checkoutURL: checkoutURL,
		serverURL:   cfg.ServerURL,
		resultURL:   cfg.ResultURL,
		sandbox:     cfg.Sandbox,
		log:         log,
	}
}

// GenerateCheckout формирует data и signature для страницы оплаты.
// data = base64(json-параметры), signature = base64(sha1(private + data + private))
func (c *Client) GenerateCheckout(orderID string, amount float64) (*Checkout, error) {
	params := checkoutParams{
		Version:     apiVersion,
		PublicKey:   c.publicKey,
		Action:      actionPay,
		Amount:      amount,
		Currency:    currencyUAH,
		Description: paymentDescription,
		OrderID:     orderID,
		ServerURL:   c.serverURL,
		ResultURL:   c.resultURL,
	}
	if c.sandbox {
		params.Sandbox = "1"
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal checkout params: %v", ErrInternal, err)
	}

	data := base64.StdEncoding.EncodeToString(raw)
	return &Checkout{
		Data:        data,
		Signature:   c.Sign(data),
		CheckoutURL: c.checkoutURL,
	}, nil
}

// Sign подписывает строку data приватным ключом
func (c *Client) Sign(data string) string {
	sum := sha1.Sum([]byte(c.privateKey + data + c.privateKey))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// VerifyCallback проверяет подпись callback от платежной системы
func (c *Client) VerifyCallback(data, signature string) error {
	expected := c.Sign(data)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) != 1 {
		c.log.Error("LiqPay callback signature mismatch")
		return ErrInvalidSignature
	}
	return nil
}

// DecodeCallback расшифровывает payload callback.
// Подпись должна быть проверена до вызова
func (c *Client) DecodeCallback(data string) (*Callback, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %v", ErrInvalidPayload, err)
	}

	var callback Callback
	if err := json.Unmarshal(raw, &callback); err != nil {
		return nil, fmt.Errorf("%w: unmarshal payload: %v", ErrInvalidPayload, err)
	}
	if callback.OrderID == "" {
		return nil, fmt.Errorf("%w: empty order_id", ErrInvalidPayload)
	}

	c.log.Info("LiqPay callback decoded: order_id=%s, status=%s", callback.OrderID, callback.Status)
	return &callback, nil
}
