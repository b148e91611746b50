package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	"github.com/lumiere-studio/StudioBookingService/internal/infra/cache"
	catalogRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/catalog"
	"github.com/lumiere-studio/StudioBookingService/internal/service/catalog/models"
)

// Service сервис каталога: локации, услуги, арендуемые позиции.
// Списки кешируются целиком, кеш необязателен (nil отключает его).
// Ошибки кеша не фатальны: сервис переживает недоступный redis
type Service struct {
	repo   CatalogRepository
	cache  Cache
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo CatalogRepository, c Cache, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  c,
		logger: logger,
	}
}

// ListLocations возвращает все активные локации
func (s *Service) ListLocations(ctx context.Context) (*models.LocationListResponse, error) {
	var cached models.LocationListResponse
	if s.cacheGet(ctx, cache.KeyLocations, &cached) {
		return &cached, nil
	}

	locations, err := s.repo.ListActiveLocations(ctx)
	if err != nil {
		s.logger.Error("ListLocations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListLocations - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainLocationList(locations)
	s.cacheSet(ctx, cache.KeyLocations, resp)
	return resp, nil
}

// GetLocation возвращает активную локацию по ID
func (s *Service) GetLocation(ctx context.Context, id uuid.UUID) (*models.LocationResponse, error) {
	location, err := s.repo.GetActiveLocation(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrLocationNotFound) {
			s.logger.Warn("GetLocation: location id=%s not found", id)
			return nil, ErrLocationNotFound
		}
		s.logger.Error("GetLocation: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetLocation - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainLocation(location), nil
}

// ListServices возвращает все активные дополнительные услуги
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	var cached models.ServiceListResponse
	if s.cacheGet(ctx, cache.KeyServices, &cached) {
		return &cached, nil
	}

	services, err := s.repo.ListActiveServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainServiceList(services)
	s.cacheSet(ctx, cache.KeyServices, resp)
	return resp, nil
}

// ListRentalItems возвращает активные арендуемые позиции.
// Фильтр по категории применяется в памяти поверх кешированного списка
func (s *Service) ListRentalItems(ctx context.Context, category *string) (*models.RentalItemListResponse, error) {
	var domainCategory *domain.RentalCategory
	if category != nil {
		parsed, ok := domain.ParseRentalCategory(*category)
		if !ok {
			s.logger.Warn("ListRentalItems: invalid category %q", *category)
			return nil, ErrInvalidCategory
		}
		domainCategory = &parsed
	}

	var cached models.RentalItemListResponse
	if s.cacheGet(ctx, cache.KeyRentalItems, &cached) {
		return filterByCategory(&cached, domainCategory), nil
	}

	items, err := s.repo.ListActiveRentalItems(ctx, nil)
	if err != nil {
		s.logger.Error("ListRentalItems: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRentalItems - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainRentalItemList(items)
	s.cacheSet(ctx, cache.KeyRentalItems, resp)
	return filterByCategory(resp, domainCategory), nil
}

func filterByCategory(resp *models.RentalItemListResponse, category *domain.RentalCategory) *models.RentalItemListResponse {
	if category == nil {
		return resp
	}
	filtered := &models.RentalItemListResponse{
		Items: make([]models.RentalItemResponse, 0, len(resp.Items)),
	}
	for _, item := range resp.Items {
		if item.Category == string(*category) {
			filtered.Items = append(filtered.Items, item)
		}
	}
	return filtered
}

func (s *Service) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, dest)
	if err != nil {
		s.logger.Warn("cacheGet: %v", err)
		return false
	}
	return hit
}

func (s *Service) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value); err != nil {
		s.logger.Warn("cacheSet: %v", err)
	}
}
