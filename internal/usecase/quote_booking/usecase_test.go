package quote_booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	catalogRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/catalog"
)

type fakeCatalog struct {
	location    *domain.Location
	locationErr error
	services    map[uuid.UUID]*domain.AdditionalService
	items       map[uuid.UUID]*domain.RentalItem
}

func (f *fakeCatalog) GetActiveLocation(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	if f.locationErr != nil {
		return nil, f.locationErr
	}
	return f.location, nil
}

func (f *fakeCatalog) GetActiveServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.AdditionalService, error) {
	var out []*domain.AdditionalService
	for _, id := range ids {
		if s, ok := f.services[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeCatalog) GetActiveRentalItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.RentalItem, error) {
	var out []*domain.RentalItem
	for _, id := range ids {
		if item, ok := f.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
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

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestCatalog() (*fakeCatalog, uuid.UUID, uuid.UUID) {
	serviceID := uuid.New()
	itemID := uuid.New()

	return &fakeCatalog{
		location: &domain.Location{
			ID:         uuid.New(),
			Name:       "Основний зал",
			HourlyRate: 500,
			IsActive:   true,
		},
		services: map[uuid.UUID]*domain.AdditionalService{
			serviceID: {ID: serviceID, Name: "Візажист", Price: 200, IsActive: true},
		},
		items: map[uuid.UUID]*domain.RentalItem{
			itemID: {ID: itemID, Name: "Вечірня сукня", Price: 100, Quantity: 3, IsActive: true},
		},
	}, serviceID, itemID
}

func TestExecute_Quote(t *testing.T) {
	catalog, serviceID, itemID := newTestCatalog()
	uc := NewUseCase(catalog, &fakeSettings{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		LocationID:    catalog.location.ID,
		DurationHours: 2.5,
		ServiceIDs:    []uuid.UUID{serviceID},
		RentalLines:   []domain.CartLine{{ItemID: itemID, Quantity: 3}},
	})
	require.NoError(t, err)

	// 500*2.5 + 200 + 100*3 = 1750, депозит 30% = 525
	quote := resp.Quote
	assert.InDelta(t, 1250.0, quote.BaseCost, 1e-9)
	assert.InDelta(t, 200.0, quote.ServicesCost, 1e-9)
	assert.InDelta(t, 300.0, quote.RentalCost, 1e-9)
	assert.InDelta(t, 1750.0, quote.TotalAmount, 1e-9)
	assert.InDelta(t, 525.0, quote.DepositAmount, 1e-9)
	assert.Equal(t, domain.DepositPercentage, quote.DepositPolicy)
}

func TestExecute_BaseOnly(t *testing.T) {
	catalog, _, _ := newTestCatalog()
	uc := NewUseCase(catalog, &fakeSettings{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		LocationID:    catalog.location.ID,
		DurationHours: 1,
	})
	require.NoError(t, err)
	assert.InDelta(t, 500.0, resp.Quote.TotalAmount, 1e-9)
}

func TestExecute_Validation(t *testing.T) {
	catalog, _, itemID := newTestCatalog()
	uc := NewUseCase(catalog, &fakeSettings{}, nopLogger{})
	ctx := context.Background()

	t.Run("missing location id", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{DurationHours: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duration off the half hour grid", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{LocationID: catalog.location.ID, DurationHours: 1.7})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("duration outside settings range", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{
			LocationID:    catalog.location.ID,
			DurationHours: domain.DefaultMaxBookingHours + 0.5,
		})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("non-positive rental quantity", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{
			LocationID:    catalog.location.ID,
			DurationHours: 1,
			RentalLines:   []domain.CartLine{{ItemID: itemID, Quantity: 0}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_NotFound(t *testing.T) {
	catalog, _, _ := newTestCatalog()
	uc := NewUseCase(catalog, &fakeSettings{}, nopLogger{})
	ctx := context.Background()

	t.Run("location", func(t *testing.T) {
		missing := &fakeCatalog{locationErr: catalogRepo.ErrLocationNotFound}
		missingUC := NewUseCase(missing, &fakeSettings{}, nopLogger{})

		_, err := missingUC.Execute(ctx, &Request{LocationID: uuid.New(), DurationHours: 1})
		assert.ErrorIs(t, err, ErrLocationNotFound)
	})

	t.Run("service", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{
			LocationID:    catalog.location.ID,
			DurationHours: 1,
			ServiceIDs:    []uuid.UUID{uuid.New()},
		})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("rental item", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{
			LocationID:    catalog.location.ID,
			DurationHours: 1,
			RentalLines:   []domain.CartLine{{ItemID: uuid.New(), Quantity: 1}},
		})
		assert.ErrorIs(t, err, ErrRentalItemNotFound)
	})
}
