package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	settingsRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/settings"
	"github.com/lumiere-studio/StudioBookingService/internal/service/settings/models"
	"github.com/lumiere-studio/StudioBookingService/pkg/ptr"
)

type fakeRepo struct {
	stored    *domain.BookingSettings
	getErr    error
	upsertErr error
	upserts   int
}

func (f *fakeRepo) Get(ctx context.Context) (*domain.BookingSettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored, nil
}

func (f *fakeRepo) Upsert(ctx context.Context, s *domain.BookingSettings) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts++
	f.stored = s
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGet_DefaultsWhenNotStored(t *testing.T) {
	svc := NewService(&fakeRepo{getErr: settingsRepo.ErrSettingsNotFound}, nil, nopLogger{})

	got, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, domain.DefaultBasePricePerHour, got.BasePricePerHour, 1e-9)
	assert.Equal(t, domain.DepositPercentage, got.DepositPolicy)
	assert.True(t, got.IsBookingEnabled)
}

func TestGet_ReturnsStoredSettings(t *testing.T) {
	stored := domain.DefaultBookingSettings()
	stored.BasePricePerHour = 700

	svc := NewService(&fakeRepo{stored: stored}, nil, nopLogger{})

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 700.0, got.BasePricePerHour, 1e-9)
}

func TestUpdate_PartialUpdate(t *testing.T) {
	repo := &fakeRepo{stored: domain.DefaultBookingSettings()}
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		BasePricePerHour: ptr.Ptr(650.0),
		DepositPolicy:    ptr.Ptr(string(domain.DepositCappedHalf)),
	})
	require.NoError(t, err)

	assert.InDelta(t, 650.0, resp.BasePricePerHour, 1e-9)
	assert.Equal(t, string(domain.DepositCappedHalf), resp.DepositPolicy)
	// Не указанные поля не меняются
	assert.InDelta(t, domain.DefaultDepositPercentage, resp.DepositPercentage, 1e-9)
	assert.Equal(t, 1, repo.upserts)
}

func TestUpdate_WorkingHours(t *testing.T) {
	repo := &fakeRepo{stored: domain.DefaultBookingSettings()}
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		OpeningTime: ptr.Ptr("08:00"),
		ClosingTime: ptr.Ptr("22:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "08:00", resp.OpeningTime)
	assert.Equal(t, "22:30", resp.ClosingTime)
}

func TestUpdate_DisableBooking(t *testing.T) {
	repo := &fakeRepo{stored: domain.DefaultBookingSettings()}
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		IsBookingEnabled:   ptr.Ptr(false),
		MaintenanceMessage: ptr.Ptr("Студія зачинена на ремонт"),
	})
	require.NoError(t, err)
	assert.False(t, resp.IsBookingEnabled)
	assert.Equal(t, "Студія зачинена на ремонт", resp.MaintenanceMessage)
}

func TestUpdate_Validation(t *testing.T) {
	cases := []struct {
		name string
		req  *models.UpdateSettingsRequest
	}{
		{"negative base price", &models.UpdateSettingsRequest{BasePricePerHour: ptr.Ptr(-100.0)}},
		{"deposit over 100 percent", &models.UpdateSettingsRequest{DepositPercentage: ptr.Ptr(150.0)}},
		{"unknown deposit policy", &models.UpdateSettingsRequest{DepositPolicy: ptr.Ptr("prepay_all")}},
		{"malformed opening time", &models.UpdateSettingsRequest{OpeningTime: ptr.Ptr("9am")}},
		{"min above max", &models.UpdateSettingsRequest{MinBookingHours: ptr.Ptr(10.0)}},
		{"advance days above limit", &models.UpdateSettingsRequest{AdvanceBookingDays: ptr.Ptr(domain.MaxAdvanceDays + 1)}},
		{"opening after closing", &models.UpdateSettingsRequest{OpeningTime: ptr.Ptr("22:00")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{stored: domain.DefaultBookingSettings()}
			svc := NewService(repo, nil, nopLogger{})

			_, err := svc.Update(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidSettings)
			assert.Zero(t, repo.upserts)
		})
	}
}
