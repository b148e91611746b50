package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	"github.com/lumiere-studio/StudioBookingService/pkg/dbmetrics"
	"github.com/lumiere-studio/StudioBookingService/pkg/psqlbuilder"
)

// Repository репозиторий настроек бронирования.
// Настройки хранятся одной строкой с id = 1 (синглтон)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

const singletonID = 1

var settingsColumns = []string{
	"base_price_per_hour",
	"deposit_percentage",
	"deposit_policy",
	"opening_time",
	"closing_time",
	"min_booking_hours",
	"max_booking_hours",
	"advance_booking_days",
	"is_booking_enabled",
	"maintenance_message",
	"updated_at",
}

// Get возвращает текущие настройки бронирования.
// Если строка настроек еще не создана, возвращает ErrSettingsNotFound
func (r *Repository) Get(ctx context.Context) (*domain.BookingSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("booking_settings").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build query: %v", ErrBuildQuery, err)
	}

	var (
		result    domain.BookingSettings
		policy    string
		updatedAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&result.BasePricePerHour,
		&result.DepositPercentage,
		&policy,
		&result.OpeningTime,
		&result.ClosingTime,
		&result.MinBookingHours,
		&result.MaxBookingHours,
		&result.AdvanceBookingDays,
		&result.IsBookingEnabled,
		&result.MaintenanceMessage,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}
	result.DepositPolicy = domain.DepositPolicy(policy)
	result.UpdatedAt = updatedAt.Time
	return &result, nil
}

// Upsert записывает настройки, создавая строку при первом вызове
func (r *Repository) Upsert(ctx context.Context, s *domain.BookingSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_settings").
		Columns(
			"id",
			"base_price_per_hour",
			"deposit_percentage",
			"deposit_policy",
			"opening_time",
			"closing_time",
			"min_booking_hours",
			"max_booking_hours",
			"advance_booking_days",
			"is_booking_enabled",
			"maintenance_message",
			"updated_at",
		).
		Values(
			singletonID,
			s.BasePricePerHour,
			s.DepositPercentage,
			string(s.DepositPolicy),
			s.OpeningTime,
			s.ClosingTime,
			s.MinBookingHours,
			s.MaxBookingHours,
			s.AdvanceBookingDays,
			s.IsBookingEnabled,
			s.MaintenanceMessage,
			squirrel.Expr("NOW()"),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			base_price_per_hour = EXCLUDED.base_price_per_hour,
			deposit_percentage = EXCLUDED.deposit_percentage,
			deposit_policy = EXCLUDED.deposit_policy,
			opening_time = EXCLUDED.opening_time,
			closing_time = EXCLUDED.closing_time,
			min_booking_hours = EXCLUDED.min_booking_hours,
			max_booking_hours = EXCLUDED.max_booking_hours,
			advance_booking_days = EXCLUDED.advance_booking_days,
			is_booking_enabled = EXCLUDED.is_booking_enabled,
			maintenance_message = EXCLUDED.maintenance_message,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute query: %v", ErrExecQuery, err)
	}
	return nil
}
