package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	bookingRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/booking"
	paymentRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/payment"
	"github.com/lumiere-studio/StudioBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, paymentRepo PaymentRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetLocationBookings получает бронирования локации с фильтрацией
// по периоду и статусу. Используется административной панелью
func (s *Service) GetLocationBookings(ctx context.Context, req *models.GetLocationBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetLocationBookings: location=%s", req.LocationID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetLocationBookings: invalid filter: %v", err)
		return nil, ErrInvalidStatus
	}

	bookings, err := s.bookingRepo.GetByLocationWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetLocationBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetLocationBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetLocationBookings: fetched %d bookings for location=%s", len(bookings), req.LocationID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование с указанием причины.
// Завершенные и уже отмененные бронирования отменить нельзя
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, reason string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s in status %s cannot be cancelled", id, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, id, reason); err != nil {
		s.logger.Error("Cancel: failed to cancel booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	updated, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: failed to reload booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%s cancelled", id)
	return models.FromDomainBooking(updated), nil
}

// UpdateStatus переводит бронирование в новый статус.
// Допустимы только переходы вперед по жизненному циклу и отмена
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, statusStr string) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%s -> %s", id, statusStr)

	status, ok := domain.ParseBookingStatus(statusStr)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status %q", statusStr)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%s", booking.Status, status, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("UpdateStatus: failed to update booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = status
	s.logger.Info("UpdateStatus: booking id=%s updated to %s", id, status)
	return models.FromDomainBooking(booking), nil
}

// GetPaymentStatus возвращает статус платежа по его ID
func (s *Service) GetPaymentStatus(ctx context.Context, id uuid.UUID) (*models.PaymentStatusResponse, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("GetPaymentStatus: payment id=%s not found", id)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetPaymentStatus: repository error for payment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetPaymentStatus - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPayment(payment), nil
}
