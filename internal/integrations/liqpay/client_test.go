package liqpay

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testClient() *Client {
	return NewClient(Config{
		PublicKey:  "pub_test",
		PrivateKey: "priv_test",
		ServerURL:  "https://studio.example/api/v1/payments/callback",
		ResultURL:  "https://studio.example/booking/result",
		Sandbox:    true,
	}, nopLogger{})
}

func TestGenerateCheckout(t *testing.T) {
	client := testClient()

	checkout, err := client.GenerateCheckout("a4f7b2c1-order", 525.00)
	require.NoError(t, err)

	assert.Equal(t, defaultCheckoutURL, checkout.CheckoutURL)
	assert.Equal(t, client.Sign(checkout.Data), checkout.Signature)

	raw, err := base64.StdEncoding.DecodeString(checkout.Data)
	require.NoError(t, err)

	var params map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &params))

	assert.Equal(t, "pay", params["action"])
	assert.Equal(t, "UAH", params["currency"])
	assert.Equal(t, "a4f7b2c1-order", params["order_id"])
	assert.Equal(t, "pub_test", params["public_key"])
	assert.Equal(t, "1", params["sandbox"])
	assert.InDelta(t, 525.00, params["amount"].(float64), 1e-9)
}

func TestSign(t *testing.T) {
	client := testClient()
	data := "eyJ0ZXN0IjoxfQ=="

	sum := sha1.Sum([]byte("priv_test" + data + "priv_test"))
	expected := base64.StdEncoding.EncodeToString(sum[:])

	assert.Equal(t, expected, client.Sign(data))
}

func TestVerifyCallback(t *testing.T) {
	client := testClient()
	data := base64.StdEncoding.EncodeToString([]byte(`{"order_id":"x","status":"success"}`))

	require.NoError(t, client.VerifyCallback(data, client.Sign(data)))

	err := client.VerifyCallback(data, "forged")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestDecodeCallback(t *testing.T) {
	client := testClient()

	t.Run("valid payload", func(t *testing.T) {
		payload := `{"order_id":"b1","status":"success","amount":500,"currency":"UAH","payment_id":12345}`
		data := base64.StdEncoding.EncodeToString([]byte(payload))

		callback, err := client.DecodeCallback(data)
		require.NoError(t, err)
		assert.Equal(t, "b1", callback.OrderID)
		assert.Equal(t, StatusSuccess, callback.Status)
		assert.True(t, callback.IsPaid())
		assert.EqualValues(t, 12345, callback.PaymentID)
	})

	t.Run("not base64", func(t *testing.T) {
		_, err := client.DecodeCallback("%%%")
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("missing order id", func(t *testing.T) {
		data := base64.StdEncoding.EncodeToString([]byte(`{"status":"success"}`))
		_, err := client.DecodeCallback(data)
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})
}

func TestCallbackStatusClasses(t *testing.T) {
	assert.True(t, (&Callback{Status: StatusSuccess}).IsPaid())
	assert.True(t, (&Callback{Status: StatusSandbox}).IsPaid())

	assert.True(t, (&Callback{Status: StatusFailure}).IsFailed())
	assert.True(t, (&Callback{Status: StatusError}).IsFailed())
	assert.True(t, (&Callback{Status: StatusExpired}).IsFailed())

	intermediate := &Callback{Status: "processing"}
	assert.False(t, intermediate.IsPaid())
	assert.False(t, intermediate.IsFailed())
}
