package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/lumiere-studio/StudioBookingService/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	gotReq *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(h *Handler, locationID, rawQuery string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/locations/"+locationID+"/available-slots?"+rawQuery, nil)
	req = mux.SetURLVars(req, map[string]string{"locationId": locationID})

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_MissingParams(t *testing.T) {
	locationID := uuid.New().String()

	t.Run("both params missing", func(t *testing.T) {
		uc := &fakeUseCase{}
		h := NewHandler(uc, nopLogger{})

		rec := doRequest(h, locationID, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "date")
		assert.Contains(t, rec.Body.String(), "duration_hours")
		assert.Nil(t, uc.gotReq)
	})

	t.Run("duration missing", func(t *testing.T) {
		uc := &fakeUseCase{}
		h := NewHandler(uc, nopLogger{})

		rec := doRequest(h, locationID, "date=2026-03-15")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "duration_hours")
		assert.Nil(t, uc.gotReq)
	})

	t.Run("blank date counts as missing", func(t *testing.T) {
		uc := &fakeUseCase{}
		h := NewHandler(uc, nopLogger{})

		rec := doRequest(h, locationID, "date=%20%20&duration_hours=2")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "date")
		assert.Nil(t, uc.gotReq)
	})
}

func TestHandle_ValidRequest(t *testing.T) {
	locationID := uuid.New()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		LocationID:    locationID,
		Date:          date,
		DurationHours: 2,
		Slots: []getAvailableSlots.Slot{
			{StartTime: "09:00", EndTime: "11:00", Available: true},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, locationID.String(), "date=2026-03-15&duration_hours=2")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, locationID, uc.gotReq.LocationID)
	assert.True(t, date.Equal(uc.gotReq.Date))
	assert.InDelta(t, 2.0, uc.gotReq.DurationHours, 1e-9)
	assert.Contains(t, rec.Body.String(), `"start_time":"09:00"`)
}

func TestHandle_InvalidLocationID(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(h, "not-a-uuid", "date=2026-03-15&duration_hours=2")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
