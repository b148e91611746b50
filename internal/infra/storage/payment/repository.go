package payment

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

// Repository репозиторий платежей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var paymentColumns = []string{
	"id",
	"booking_id",
	"order_id",
	"amount",
	"currency",
	"status",
	"provider_txn_id",
	"provider_status",
	"failure_reason",
	"paid_at",
	"created_at",
	"updated_at",
}

// Create сохраняет новый платеж
func (r *Repository) Create(ctx context.Context, p *domain.Payment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"id",
			"booking_id",
			"order_id",
			"amount",
			"currency",
			"status",
		).
		Values(
			p.ID,
			p.BookingID,
			p.OrderID,
			p.Amount,
			p.Currency,
			string(p.Status),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: Create - execute query: %v", ErrExecQuery, err)
	}
	return nil
}

// GetByID возвращает платеж по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return r.getByColumn(ctx, "id", id)
}

// GetByOrderID возвращает платеж по внешнему идентификатору заказа
func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	return r.getByColumn(ctx, "order_id", orderID)
}

func (r *Repository) getByColumn(ctx context.Context, column string, value interface{}) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{column: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByColumn - build query: %v", ErrBuildQuery, err)
	}

	var (
		p                    domain.Payment
		status               string
		paidAt               sql.NullTime
		createdAt, updatedAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.BookingID,
		&p.OrderID,
		&p.Amount,
		&p.Currency,
		&status,
		&p.ProviderTxnID,
		&p.ProviderStatus,
		&p.FailureReason,
		&paidAt,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByColumn - scan payment: %v", ErrScanRow, err)
	}
	p.Status = domain.PaymentStatus(status)
	if paidAt.Valid {
		t := paidAt.Time
		p.PaidAt = &t
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return &p, nil
}

// MarkPaid переводит платеж в статус paid и фиксирует данные провайдера
func (r *Repository) MarkPaid(ctx context.Context, id uuid.UUID, providerTxnID, providerStatus string, paidAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("status", string(domain.PaymentStatusPaid)).
		Set("provider_txn_id", providerTxnID).
		Set("provider_status", providerStatus).
		Set("paid_at", paidAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - execute query: %v", ErrExecQuery, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// MarkFailed переводит платеж в статус failed с причиной отказа
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, providerStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("status", string(domain.PaymentStatusFailed)).
		Set("provider_status", providerStatus).
		Set("failure_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkFailed - build query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkFailed - execute query: %v", ErrExecQuery, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
