package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	"github.com/lumiere-studio/StudioBookingService/pkg/dbmetrics"
	"github.com/lumiere-studio/StudioBookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"location_id",
	"first_name",
	"last_name",
	"phone_number",
	"email",
	"booking_date",
	"start_time",
	"duration_minutes",
	"base_price_per_hour",
	"services_total",
	"rental_total",
	"total_amount",
	"deposit_amount",
	"deposit_percentage",
	"deposit_policy",
	"payment_id",
	"status",
	"notes",
	"admin_notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе со связями услуг и позициями аренды.
// Должен вызываться внутри транзакции (см. create_booking usecase):
// вставка строк аренды и услуг обязана быть атомарной с самим бронированием.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"location_id",
			"first_name",
			"last_name",
			"phone_number",
			"email",
			"booking_date",
			"start_time",
			"duration_minutes",
			"base_price_per_hour",
			"services_total",
			"rental_total",
			"total_amount",
			"deposit_amount",
			"deposit_percentage",
			"deposit_policy",
			"payment_id",
			"status",
			"notes",
			"admin_notes",
		).
		Values(
			booking.ID,
			booking.LocationID,
			booking.FirstName,
			booking.LastName,
			booking.PhoneNumber,
			booking.Email,
			booking.BookingDate,
			booking.StartTime,
			booking.DurationMinutes,
			booking.BasePricePerHour,
			booking.ServicesTotal,
			booking.RentalTotal,
			booking.TotalAmount,
			booking.DepositAmount,
			booking.DepositPercentage,
			string(booking.DepositPolicy),
			booking.PaymentID,
			string(booking.Status),
			booking.Notes,
			booking.AdminNotes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if err := r.insertServiceLinks(ctx, executor, booking); err != nil {
		return nil, err
	}
	if err := r.insertRentalLines(ctx, executor, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

func (r *Repository) insertServiceLinks(ctx context.Context, executor DBExecutor, booking *domain.Booking) error {
	if len(booking.ServiceIDs) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("booking_services").Columns("booking_id", "service_id")
	for _, serviceID := range booking.ServiceIDs {
		builder = builder.Values(booking.ID, serviceID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build services insert: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - insert services: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) insertRentalLines(ctx context.Context, executor DBExecutor, booking *domain.Booking) error {
	if len(booking.RentalLines) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("booking_rental_items").
		Columns("booking_id", "item_id", "quantity", "price_at_booking")
	for _, line := range booking.RentalLines {
		builder = builder.Values(booking.ID, line.ItemID, line.Quantity, line.PriceAtBooking)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build rental lines insert: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - insert rental lines: %v", ErrExecQuery, err)
	}
	return nil
}

// GetByID получает бронирование по ID вместе с услугами и позициями аренды
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	if err := r.loadServiceIDs(ctx, executor, booking); err != nil {
		return nil, err
	}
	if err := r.loadRentalLines(ctx, executor, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetByPaymentID получает бронирование по ID платежа
func (r *Repository) GetByPaymentID(ctx context.Context, paymentID uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"payment_id": paymentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	if err := r.loadServiceIDs(ctx, executor, booking); err != nil {
		return nil, err
	}
	if err := r.loadRentalLines(ctx, executor, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetByLocationWithFilter получает бронирования локации с фильтрацией
// по периоду, статусу и включению неактивных.
// Внутри транзакции для выборки на конкретную дату добавляется FOR UPDATE:
// это блокирует конкурентное создание бронирования на тот же слот.
func (r *Repository) GetByLocationWithFilter(ctx context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"location_id": filter.LocationID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	} else if !filter.IncludeInactive {
		activeStatusStrings := make([]string, len(domain.ActiveStatuses))
		for i, s := range domain.ActiveStatuses {
			activeStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": activeStatusStrings})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if singleDate {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocationWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocationWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetRentedQuantity возвращает суммарное количество единиц позиции,
// уже арендованных в активных бронированиях, пересекающихся с интервалом
// [startTime, startTime+durationMinutes) на указанную дату.
func (r *Repository) GetRentedQuantity(
	ctx context.Context,
	itemID uuid.UUID,
	date time.Time,
	startMinutes int,
	durationMinutes int,
) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	// Пересечение интервалов на строгих неравенствах: границы не конфликтуют
	query, args, err := psqlbuilder.Select("COALESCE(SUM(bri.quantity), 0)").
		From("booking_rental_items bri").
		Join("bookings b ON b.id = bri.booking_id").
		Where(squirrel.Eq{"bri.item_id": itemID}).
		Where(squirrel.Eq{"b.booking_date": date}).
		Where(squirrel.Eq{"b.status": activeStatusStrings}).
		Where(squirrel.Expr(
			"(EXTRACT(HOUR FROM b.start_time) * 60 + EXTRACT(MINUTE FROM b.start_time)) < ?",
			startMinutes+durationMinutes,
		)).
		Where(squirrel.Expr(
			"(EXTRACT(HOUR FROM b.start_time) * 60 + EXTRACT(MINUTE FROM b.start_time) + b.duration_minutes) > ?",
			startMinutes,
		)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: GetRentedQuantity - build select query: %v", ErrBuildQuery, err)
	}

	var rented int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rented); err != nil {
		return 0, fmt.Errorf("%w: GetRentedQuantity - scan: %v", ErrScanRow, err)
	}
	return rented, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Cancel отменяет бронирование, дописывая причину в admin_notes
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", string(domain.StatusCancelled)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if reason != "" {
		updateBuilder = updateBuilder.Set(
			"admin_notes",
			squirrel.Expr("COALESCE(admin_notes, '') || ?", "\nПричина скасування: "+reason),
		)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// SetPayment привязывает платёж к бронированию
func (r *Repository) SetPayment(ctx context.Context, id uuid.UUID, paymentID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_id", paymentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetPayment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetPayment - execute update: %v", ErrExecQuery, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		depositPolicy        string
		status               string
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.LocationID,
		&booking.FirstName,
		&booking.LastName,
		&booking.PhoneNumber,
		&booking.Email,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.DurationMinutes,
		&booking.BasePricePerHour,
		&booking.ServicesTotal,
		&booking.RentalTotal,
		&booking.TotalAmount,
		&booking.DepositAmount,
		&booking.DepositPercentage,
		&depositPolicy,
		&booking.PaymentID,
		&status,
		&booking.Notes,
		&booking.AdminNotes,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
	}

	booking.DepositPolicy = domain.DepositPolicy(depositPolicy)
	booking.Status = domain.BookingStatus(status)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return &booking, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate bookings: %v", ErrScanRow, err)
	}
	return bookings, nil
}

func (r *Repository) loadServiceIDs(ctx context.Context, executor DBExecutor, booking *domain.Booking) error {
	query, args, err := psqlbuilder.Select("service_id").
		From("booking_services").
		Where(squirrel.Eq{"booking_id": booking.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadServiceIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadServiceIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	booking.ServiceIDs = make([]uuid.UUID, 0)
	for rows.Next() {
		var serviceID uuid.UUID
		if err := rows.Scan(&serviceID); err != nil {
			return fmt.Errorf("%w: loadServiceIDs - scan: %v", ErrScanRow, err)
		}
		booking.ServiceIDs = append(booking.ServiceIDs, serviceID)
	}
	return rows.Err()
}

func (r *Repository) loadRentalLines(ctx context.Context, executor DBExecutor, booking *domain.Booking) error {
	query, args, err := psqlbuilder.Select(
		"bri.item_id",
		"ri.name",
		"ri.category",
		"bri.quantity",
		"bri.price_at_booking",
	).
		From("booking_rental_items bri").
		Join("rental_items ri ON ri.id = bri.item_id").
		Where(squirrel.Eq{"bri.booking_id": booking.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadRentalLines - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadRentalLines - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	booking.RentalLines = make([]domain.BookingRentalLine, 0)
	for rows.Next() {
		var (
			line     domain.BookingRentalLine
			category string
		)
		if err := rows.Scan(&line.ItemID, &line.ItemName, &category, &line.Quantity, &line.PriceAtBooking); err != nil {
			return fmt.Errorf("%w: loadRentalLines - scan: %v", ErrScanRow, err)
		}
		line.Category = domain.RentalCategory(category)
		booking.RentalLines = append(booking.RentalLines, line)
	}
	return rows.Err()
}
