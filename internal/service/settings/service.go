package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	"github.com/lumiere-studio/StudioBookingService/internal/infra/cache"
	settingsRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/settings"
	"github.com/lumiere-studio/StudioBookingService/internal/service/settings/models"
	"github.com/lumiere-studio/StudioBookingService/pkg/types"
)

// Service сервис настроек бронирования.
// Настройки читаются на каждый запрос бронирования, поэтому кешируются.
// Пока администратор ничего не сохранял, действуют значения по умолчанию
type Service struct {
	repo   SettingsRepository
	cache  Cache
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, c Cache, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  c,
		logger: logger,
	}
}

// Get возвращает текущие настройки бронирования
func (s *Service) Get(ctx context.Context) (*domain.BookingSettings, error) {
	if s.cache != nil {
		var cached domain.BookingSettings
		hit, err := s.cache.GetJSON(ctx, cache.KeySettings, &cached)
		if err != nil {
			s.logger.Warn("Get: cache error: %v", err)
		} else if hit {
			return &cached, nil
		}
	}

	current, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return domain.DefaultBookingSettings(), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cache.KeySettings, current); err != nil {
			s.logger.Warn("Get: failed to cache settings: %v", err)
		}
	}
	return current, nil
}

// GetResponse возвращает настройки в виде DTO для API
func (s *Service) GetResponse(ctx context.Context) (*models.SettingsResponse, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSettings(current), nil
}

// Update применяет частичное обновление настроек и сбрасывает кеш
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := applyUpdate(current, req); err != nil {
		s.logger.Warn("Update: invalid settings: %v", err)
		return nil, err
	}
	if err := validateSettings(current); err != nil {
		s.logger.Warn("Update: settings validation failed: %v", err)
		return nil, err
	}

	if err := s.repo.Upsert(ctx, current); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, cache.KeySettings); err != nil {
			s.logger.Warn("Update: failed to invalidate cache: %v", err)
		}
	}

	s.logger.Info("Update: booking settings updated")
	return models.FromDomainSettings(current), nil
}

// applyUpdate накладывает ненулевые поля запроса на текущие настройки
func applyUpdate(current *domain.BookingSettings, req *models.UpdateSettingsRequest) error {
	if req.BasePricePerHour != nil {
		current.BasePricePerHour = *req.BasePricePerHour
	}
	if req.DepositPercentage != nil {
		current.DepositPercentage = *req.DepositPercentage
	}
	if req.DepositPolicy != nil {
		policy, ok := domain.ParseDepositPolicy(*req.DepositPolicy)
		if !ok {
			return fmt.Errorf("%w: unknown deposit policy %q", ErrInvalidSettings, *req.DepositPolicy)
		}
		current.DepositPolicy = policy
	}
	if req.OpeningTime != nil {
		opening, err := types.NewTimeStringFromString(*req.OpeningTime)
		if err != nil {
			return fmt.Errorf("%w: invalid opening time: %v", ErrInvalidSettings, err)
		}
		current.OpeningTime = opening
	}
	if req.ClosingTime != nil {
		closing, err := types.NewTimeStringFromString(*req.ClosingTime)
		if err != nil {
			return fmt.Errorf("%w: invalid closing time: %v", ErrInvalidSettings, err)
		}
		current.ClosingTime = closing
	}
	if req.MinBookingHours != nil {
		current.MinBookingHours = *req.MinBookingHours
	}
	if req.MaxBookingHours != nil {
		current.MaxBookingHours = *req.MaxBookingHours
	}
	if req.AdvanceBookingDays != nil {
		current.AdvanceBookingDays = *req.AdvanceBookingDays
	}
	if req.IsBookingEnabled != nil {
		current.IsBookingEnabled = *req.IsBookingEnabled
	}
	if req.MaintenanceMessage != nil {
		current.MaintenanceMessage = *req.MaintenanceMessage
	}
	return nil
}

// validateSettings проверяет согласованность настроек
func validateSettings(s *domain.BookingSettings) error {
	if s.BasePricePerHour <= 0 {
		return fmt.Errorf("%w: base price must be positive", ErrInvalidSettings)
	}
	if s.DepositPercentage < 0 || s.DepositPercentage > 100 {
		return fmt.Errorf("%w: deposit percentage must be between 0 and 100", ErrInvalidSettings)
	}
	if s.MinBookingHours <= 0 || s.MaxBookingHours < s.MinBookingHours {
		return fmt.Errorf("%w: invalid booking hours range", ErrInvalidSettings)
	}
	if s.MaxBookingHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: max booking hours cannot exceed %v", ErrInvalidSettings, domain.MaxDurationHours)
	}
	if s.AdvanceBookingDays < 0 || s.AdvanceBookingDays > domain.MaxAdvanceDays {
		return fmt.Errorf("%w: advance booking days must be between 0 and %d", ErrInvalidSettings, domain.MaxAdvanceDays)
	}
	if !s.OpeningTime.IsBefore(s.ClosingTime) {
		return fmt.Errorf("%w: opening time must be before closing time", ErrInvalidSettings)
	}
	return nil
}
