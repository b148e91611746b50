package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	bookingRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/booking"
	paymentRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/payment"
	"github.com/lumiere-studio/StudioBookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings   map[uuid.UUID]*domain.Booking
	cancels    int
	lastReason string
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[uuid.UUID]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByLocationWithFilter(ctx context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.LocationID != filter.LocationID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id uuid.UUID, reason string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	b.AdminNotes = &reason
	f.cancels++
	f.lastReason = reason
	return nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*domain.Payment
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return p, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              uuid.New(),
		LocationID:      uuid.New(),
		FirstName:       "Іван",
		LastName:        "Шевченко",
		PhoneNumber:     "+380671234567",
		BookingDate:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 120,
		TotalAmount:     1000,
		DepositAmount:   300,
		Status:          status,
	}
}

func TestGetByID(t *testing.T) {
	booking := testBooking(domain.StatusConfirmed)
	svc := NewService(newFakeBookingRepo(booking), &fakePaymentRepo{}, nopLogger{})

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), booking.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.ID, resp.ID)
		assert.Equal(t, "Іван", resp.FirstName)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, "12:00", resp.EndTime)
		assert.InDelta(t, 2.0, resp.DurationHours, 1e-9)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestCancel(t *testing.T) {
	t.Run("active booking is cancelled", func(t *testing.T) {
		booking := testBooking(domain.StatusPaid)
		repo := newFakeBookingRepo(booking)
		svc := NewService(repo, &fakePaymentRepo{}, nopLogger{})

		resp, err := svc.Cancel(context.Background(), booking.ID, "клієнт попросив перенести")
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		assert.Equal(t, 1, repo.cancels)
		assert.Equal(t, "клієнт попросив перенести", repo.lastReason)
	})

	t.Run("reason is required", func(t *testing.T) {
		booking := testBooking(domain.StatusPaid)
		svc := NewService(newFakeBookingRepo(booking), &fakePaymentRepo{}, nopLogger{})

		_, err := svc.Cancel(context.Background(), booking.ID, "   ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		booking := testBooking(domain.StatusCompleted)
		svc := NewService(newFakeBookingRepo(booking), &fakePaymentRepo{}, nopLogger{})

		_, err := svc.Cancel(context.Background(), booking.ID, "reason")
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("cancel is not repeatable", func(t *testing.T) {
		booking := testBooking(domain.StatusCancelled)
		svc := NewService(newFakeBookingRepo(booking), &fakePaymentRepo{}, nopLogger{})

		_, err := svc.Cancel(context.Background(), booking.ID, "reason")
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("lifecycle transitions", func(t *testing.T) {
		booking := testBooking(domain.StatusPendingPayment)
		svc := NewService(newFakeBookingRepo(booking), &fakePaymentRepo{}, nopLogger{})
		ctx := context.Background()

		for _, next := range []domain.BookingStatus{domain.StatusPaid, domain.StatusConfirmed, domain.StatusCompleted} {
			resp, err := svc.UpdateStatus(ctx, booking.ID, string(next))
			require.NoError(t, err)
			assert.Equal(t, string(next), resp.Status)
		}
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		booking := testBooking(domain.StatusPendingPayment)
		svc := NewService(newFakeBookingRepo(booking), &fakePaymentRepo{}, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), booking.ID, string(domain.StatusCompleted))
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		booking := testBooking(domain.StatusPaid)
		svc := NewService(newFakeBookingRepo(booking), &fakePaymentRepo{}, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), booking.ID, "archived")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestGetLocationBookings(t *testing.T) {
	locationID := uuid.New()

	active := testBooking(domain.StatusConfirmed)
	active.LocationID = locationID
	cancelled := testBooking(domain.StatusCancelled)
	cancelled.LocationID = locationID
	otherLocation := testBooking(domain.StatusConfirmed)

	repo := newFakeBookingRepo(active, cancelled, otherLocation)
	svc := NewService(repo, &fakePaymentRepo{}, nopLogger{})
	ctx := context.Background()

	t.Run("active only by default", func(t *testing.T) {
		resp, err := svc.GetLocationBookings(ctx, &models.GetLocationBookingsRequest{LocationID: locationID})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, active.ID, resp.Bookings[0].ID)
	})

	t.Run("include inactive", func(t *testing.T) {
		resp, err := svc.GetLocationBookings(ctx, &models.GetLocationBookingsRequest{
			LocationID:      locationID,
			IncludeInactive: true,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		bad := "archived"
		_, err := svc.GetLocationBookings(ctx, &models.GetLocationBookingsRequest{
			LocationID: locationID,
			Status:     &bad,
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestGetPaymentStatus(t *testing.T) {
	paymentID := uuid.New()
	paidAt := time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC)

	repo := &fakePaymentRepo{payments: map[uuid.UUID]*domain.Payment{
		paymentID: {
			ID:        paymentID,
			BookingID: uuid.New(),
			OrderID:   "order-1",
			Status:    domain.PaymentStatusPaid,
			Amount:    525,
			Currency:  "UAH",
			PaidAt:    &paidAt,
		},
	}}
	svc := NewService(newFakeBookingRepo(), repo, nopLogger{})

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetPaymentStatus(context.Background(), paymentID)
		require.NoError(t, err)
		assert.Equal(t, "order-1", resp.OrderID)
		assert.Equal(t, string(domain.PaymentStatusPaid), resp.Status)
		require.NotNil(t, resp.PaidAt)
		assert.True(t, resp.PaidAt.Equal(paidAt))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetPaymentStatus(context.Background(), uuid.New())
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})
}
