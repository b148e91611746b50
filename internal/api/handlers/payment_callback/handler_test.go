package payment_callback

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	processPaymentCallback "github.com/lumiere-studio/StudioBookingService/internal/usecase/process_payment_callback"
)

type fakeUseCase struct {
	err error

	gotData      string
	gotSignature string
	calls        int
}

func (f *fakeUseCase) Execute(ctx context.Context, data, signature string) error {
	f.calls++
	f.gotData = data
	f.gotSignature = signature
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doCallback(h *Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payments/callback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_MissingFields(t *testing.T) {
	cases := []struct {
		name string
		form url.Values
	}{
		{"empty form", url.Values{}},
		{"no signature", url.Values{"data": {"ZGF0YQ=="}}},
		{"no data", url.Values{"signature": {"c2ln"}}},
		{"blank data", url.Values{"data": {"  "}, "signature": {"c2ln"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			h := NewHandler(uc, nopLogger{})

			rec := doCallback(h, tc.form)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, uc.calls)
		})
	}
}

func TestHandle_ValidForm(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := doCallback(h, url.Values{"data": {"ZGF0YQ=="}, "signature": {"c2ln"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, uc.calls)
	assert.Equal(t, "ZGF0YQ==", uc.gotData)
	assert.Equal(t, "c2ln", uc.gotSignature)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid signature", processPaymentCallback.ErrInvalidSignature, http.StatusBadRequest},
		{"invalid payload", processPaymentCallback.ErrInvalidPayload, http.StatusBadRequest},
		{"payment not found", processPaymentCallback.ErrPaymentNotFound, http.StatusNotFound},
		{"internal", processPaymentCallback.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tc.err}
			h := NewHandler(uc, nopLogger{})

			rec := doCallback(h, url.Values{"data": {"ZGF0YQ=="}, "signature": {"c2ln"}})

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}
