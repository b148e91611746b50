package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	"github.com/lumiere-studio/StudioBookingService/pkg/dbmetrics"
	"github.com/lumiere-studio/StudioBookingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога: локации, услуги, арендуемые позиции
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var locationColumns = []string{
	"id",
	"name",
	"description",
	"address",
	"hourly_rate",
	"opening_time",
	"closing_time",
	"capacity",
	"amenities",
	"is_active",
	"created_at",
	"updated_at",
}

// ListActiveLocations возвращает активные локации, отсортированные по имени
func (r *Repository) ListActiveLocations(ctx context.Context) ([]*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(locationColumns...).
		From("locations").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveLocations - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveLocations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	locations := make([]*domain.Location, 0)
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveLocations - iterate: %v", ErrScanRow, err)
	}
	return locations, nil
}

// GetActiveLocation возвращает активную локацию по ID
func (r *Repository) GetActiveLocation(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(locationColumns...).
		From("locations").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveLocation - build query: %v", ErrBuildQuery, err)
	}

	location, err := scanLocation(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	return location, nil
}

var serviceColumns = []string{
	"id",
	"name",
	"description",
	"price",
	"duration_minutes",
	"is_active",
	"created_at",
	"updated_at",
}

// ListActiveServices возвращает активные дополнительные услуги
func (r *Repository) ListActiveServices(ctx context.Context) ([]*domain.AdditionalService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("additional_services").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.AdditionalService, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - iterate: %v", ErrScanRow, err)
	}
	return services, nil
}

// GetActiveServicesByIDs возвращает активные услуги по списку ID.
// Отсутствующие и неактивные ID просто не попадают в результат:
// решение о конфликте принимает вызывающий usecase.
func (r *Repository) GetActiveServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.AdditionalService, error) {
	if len(ids) == 0 {
		return []*domain.AdditionalService{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("additional_services").
		Where(squirrel.Eq{"id": ids, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveServicesByIDs - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveServicesByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.AdditionalService, 0, len(ids))
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveServicesByIDs - iterate: %v", ErrScanRow, err)
	}
	return services, nil
}

var rentalItemColumns = []string{
	"id",
	"name",
	"description",
	"category",
	"price",
	"quantity",
	"is_active",
	"is_available",
	"created_at",
	"updated_at",
}

// ListActiveRentalItems возвращает активные арендуемые позиции,
// опционально фильтруя по категории
func (r *Repository) ListActiveRentalItems(ctx context.Context, category *domain.RentalCategory) ([]*domain.RentalItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rentalItemColumns...).
		From("rental_items").
		Where(squirrel.Eq{"is_active": true, "is_available": true}).
		OrderBy("category ASC, name ASC")

	if category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": string(*category)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveRentalItems - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveRentalItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.RentalItem, 0)
	for rows.Next() {
		item, err := scanRentalItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveRentalItems - iterate: %v", ErrScanRow, err)
	}
	return items, nil
}

// GetActiveRentalItemsByIDs возвращает активные позиции по списку ID
func (r *Repository) GetActiveRentalItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.RentalItem, error) {
	if len(ids) == 0 {
		return []*domain.RentalItem{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rentalItemColumns...).
		From("rental_items").
		Where(squirrel.Eq{"id": ids, "is_active": true, "is_available": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveRentalItemsByIDs - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveRentalItemsByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.RentalItem, 0, len(ids))
	for rows.Next() {
		item, err := scanRentalItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveRentalItemsByIDs - iterate: %v", ErrScanRow, err)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLocation(row rowScanner) (*domain.Location, error) {
	var (
		location             domain.Location
		createdAt, updatedAt sql.NullTime
	)
	err := row.Scan(
		&location.ID,
		&location.Name,
		&location.Description,
		&location.Address,
		&location.HourlyRate,
		&location.OpeningTime,
		&location.ClosingTime,
		&location.Capacity,
		&location.Amenities,
		&location.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan location: %v", ErrScanRow, err)
	}
	location.CreatedAt = createdAt.Time
	location.UpdatedAt = updatedAt.Time
	return &location, nil
}

func scanService(row rowScanner) (*domain.AdditionalService, error) {
	var (
		service              domain.AdditionalService
		createdAt, updatedAt sql.NullTime
	)
	err := row.Scan(
		&service.ID,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.DurationMinutes,
		&service.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scan service: %v", ErrScanRow, err)
	}
	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time
	return &service, nil
}

func scanRentalItem(row rowScanner) (*domain.RentalItem, error) {
	var (
		item                 domain.RentalItem
		category             string
		createdAt, updatedAt sql.NullTime
	)
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&category,
		&item.Price,
		&item.Quantity,
		&item.IsActive,
		&item.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scan rental item: %v", ErrScanRow, err)
	}
	item.Category = domain.RentalCategory(category)
	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time
	return &item, nil
}
