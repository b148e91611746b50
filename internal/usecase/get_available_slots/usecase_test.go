package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	catalogRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/catalog"
	"github.com/lumiere-studio/StudioBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByLocationWithFilter(ctx context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeCatalogRepo struct {
	location *domain.Location
	err      error
}

func (f *fakeCatalogRepo) GetActiveLocation(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.location, nil
}

type fakeSettings struct {
	settings *domain.BookingSettings
}

func (f *fakeSettings) Get(ctx context.Context) (*domain.BookingSettings, error) {
	if f.settings != nil {
		return f.settings, nil
	}
	return domain.DefaultBookingSettings(), nil
}

type fakeTime struct {
	now time.Time
}

func (f *fakeTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testLocation() *domain.Location {
	return &domain.Location{
		ID:          uuid.New(),
		Name:        "Основний зал",
		OpeningTime: "09:00",
		ClosingTime: "20:00",
		IsActive:    true,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, catalog *fakeCatalogRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, catalog, &fakeSettings{}, nopLogger{})
	uc.timeProvider = &fakeTime{now: now}
	return uc
}

func TestExecute_SlotGrid(t *testing.T) {
	location := testLocation()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	futureDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{location: location}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		LocationID:    location.ID,
		Date:          futureDate,
		DurationHours: 2,
	})
	require.NoError(t, err)

	// 09:00-20:00 при длительности 2ч: старты 09:00..18:00, всего 10
	require.Len(t, resp.Slots, 10)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[0].EndTime)
	assert.Equal(t, types.TimeString("18:00"), resp.Slots[9].StartTime)
	assert.Equal(t, types.TimeString("20:00"), resp.Slots[9].EndTime)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s", slot.StartTime)
	}
}

func TestExecute_OverlapBoundaries(t *testing.T) {
	location := testLocation()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	futureDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	// Бронирование 12:00-14:00
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{{
		StartTime:       "12:00",
		DurationMinutes: 120,
		Status:          domain.StatusConfirmed,
	}}}

	uc := newTestUseCase(bookings, &fakeCatalogRepo{location: location}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		LocationID:    location.ID,
		Date:          futureDate,
		DurationHours: 2,
	})
	require.NoError(t, err)

	availability := make(map[types.TimeString]bool)
	for _, slot := range resp.Slots {
		availability[slot.StartTime] = slot.Available
	}

	// Пересечение со слотами 11:00-13:00, 12:00-14:00, 13:00-15:00
	assert.False(t, availability["11:00"])
	assert.False(t, availability["12:00"])
	assert.False(t, availability["13:00"])

	// Граничащие интервалы не конфликтуют: 10:00-12:00 и 14:00-16:00 свободны
	assert.True(t, availability["10:00"])
	assert.True(t, availability["14:00"])
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	location := testLocation()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	futureDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{{
		StartTime:       "12:00",
		DurationMinutes: 120,
		Status:          domain.StatusCancelled,
	}}}

	uc := newTestUseCase(bookings, &fakeCatalogRepo{location: location}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		LocationID:    location.ID,
		Date:          futureDate,
		DurationHours: 2,
	})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s", slot.StartTime)
	}
}

func TestExecute_TodayPastSlotsUnavailable(t *testing.T) {
	location := testLocation()
	// Сегодня, 13:30: слоты с началом раньше 13:30 уже прошли
	now := time.Date(2026, 3, 15, 13, 30, 0, 0, time.UTC)
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{location: location}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		LocationID:    location.ID,
		Date:          today,
		DurationHours: 1,
	})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		minutes, merr := slot.StartTime.Minutes()
		require.NoError(t, merr)
		if minutes < 13*60+30 {
			assert.False(t, slot.Available, "past slot %s must be unavailable", slot.StartTime)
		} else {
			assert.True(t, slot.Available, "future slot %s must be available", slot.StartTime)
		}
	}
}

func TestExecute_ClosingNotAfterOpening(t *testing.T) {
	location := testLocation()
	location.OpeningTime = "20:00"
	location.ClosingTime = "09:00"

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	futureDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{location: location}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		LocationID:    location.ID,
		Date:          futureDate,
		DurationHours: 1,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DurationLongerThanDay(t *testing.T) {
	location := testLocation()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	futureDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	// 8 часов при окне 09:00-20:00: старты 09:00..12:00
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{location: location}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		LocationID:    location.ID,
		Date:          futureDate,
		DurationHours: 8,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, types.TimeString("12:00"), resp.Slots[3].StartTime)
}

func TestExecute_Validation(t *testing.T) {
	location := testLocation()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	futureDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{location: location}, now)

	t.Run("date in the past", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			LocationID:    location.ID,
			Date:          time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			DurationHours: 1,
		})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("date beyond booking horizon", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			LocationID:    location.ID,
			Date:          now.AddDate(0, 0, domain.DefaultAdvanceDays+1),
			DurationHours: 1,
		})
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("duration not a half hour multiple", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			LocationID:    location.ID,
			Date:          futureDate,
			DurationHours: 1.3,
		})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("duration outside settings range", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			LocationID:    location.ID,
			Date:          futureDate,
			DurationHours: domain.DefaultMaxBookingHours + 0.5,
		})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("missing location id", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			Date:          futureDate,
			DurationHours: 1,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_LocationNotFound(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	futureDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{err: catalogRepo.ErrLocationNotFound}, now)

	_, err := uc.Execute(context.Background(), &Request{
		LocationID:    uuid.New(),
		Date:          futureDate,
		DurationHours: 1,
	})
	assert.ErrorIs(t, err, ErrLocationNotFound)
}
