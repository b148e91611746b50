package models

import (
	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
)

// LocationResponse ответ с данными локации
type LocationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	HourlyRate  float64   `json:"hourly_rate"`
	OpeningTime string    `json:"opening_time"` // "09:00"
	ClosingTime string    `json:"closing_time"` // "21:00"
	Capacity    int       `json:"capacity"`
	Amenities   []string  `json:"amenities"`
}

// LocationListResponse ответ со списком локаций
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// ServiceResponse ответ с данными дополнительной услуги
type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// RentalItemResponse ответ с данными арендуемой позиции
type RentalItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
}

// RentalItemListResponse ответ со списком арендуемых позиций
type RentalItemListResponse struct {
	Items []RentalItemResponse `json:"items"`
}

// Методы конвертации

// FromDomainLocation конвертирует domain модель в DTO
func FromDomainLocation(l *domain.Location) *LocationResponse {
	if l == nil {
		return nil
	}
	return &LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Address:     l.Address,
		HourlyRate:  l.HourlyRate,
		OpeningTime: l.OpeningTime.String(),
		ClosingTime: l.ClosingTime.String(),
		Capacity:    l.Capacity,
		Amenities:   l.AmenitiesList(),
	}
}

// FromDomainLocationList конвертирует список локаций в DTO
func FromDomainLocationList(locations []*domain.Location) *LocationListResponse {
	resp := &LocationListResponse{
		Locations: make([]LocationResponse, 0, len(locations)),
	}
	for _, location := range locations {
		if dto := FromDomainLocation(location); dto != nil {
			resp.Locations = append(resp.Locations, *dto)
		}
	}
	return resp
}

// FromDomainServiceList конвертирует список услуг в DTO
func FromDomainServiceList(services []*domain.AdditionalService) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, service := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              service.ID,
			Name:            service.Name,
			Description:     service.Description,
			Price:           service.Price,
			DurationMinutes: service.DurationMinutes,
		})
	}
	return resp
}

// FromDomainRentalItemList конвертирует список позиций аренды в DTO
func FromDomainRentalItemList(items []*domain.RentalItem) *RentalItemListResponse {
	resp := &RentalItemListResponse{
		Items: make([]RentalItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, RentalItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Category:    string(item.Category),
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}
	return resp
}
