package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdditionalService дополнительная услуга (визаж, укладка, обработка фото и т.п.)
type AdditionalService struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64

	// DurationMinutes дополнительное время к сессии; 0, если не применимо
	DurationMinutes int

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RentalCategory категория арендуемой позиции
type RentalCategory string

const (
	CategoryClothing RentalCategory = "clothing"
	CategoryProp     RentalCategory = "prop"
)

// ParseRentalCategory валидирует строковую категорию
func ParseRentalCategory(s string) (RentalCategory, bool) {
	switch RentalCategory(s) {
	case CategoryClothing, CategoryProp:
		return RentalCategory(s), true
	}
	return "", false
}

// RentalItem арендуемая позиция: одежда или реквизит
type RentalItem struct {
	ID          uuid.UUID
	Name        string
	Description string
	Category    RentalCategory
	Price       float64

	// Quantity общее количество единиц на складе
	Quantity int

	IsActive    bool
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CartLine позиция корзины: арендуемая вещь и запрошенное количество
type CartLine struct {
	ItemID   uuid.UUID
	Quantity int
}
