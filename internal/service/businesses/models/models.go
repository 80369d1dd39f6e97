package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ListBusinessesRequest параметры поиска по каталогу
type ListBusinessesRequest struct {
	Search         *string
	Category       *string
	MinPrice       *int
	MaxPrice       *int
	MinRating      *float64
	AvailableToday bool
}

// ToDomainFilter фильтр, который применяется на стороне БД.
// MinRating и AvailableToday применяются после агрегации
func (r *ListBusinessesRequest) ToDomainFilter() domain.BusinessFilter {
	return domain.BusinessFilter{
		Search:   r.Search,
		Category: r.Category,
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
	}
}

// UpdateBusinessRequest частичное обновление профиля бизнеса
type UpdateBusinessRequest struct {
	Name         *string               `json:"name,omitempty"`
	Description  *string               `json:"description,omitempty"`
	LogoURL      *string               `json:"logoUrl,omitempty"`
	Phone        *string               `json:"phone,omitempty"`
	Email        *string               `json:"email,omitempty"`
	Address      *string               `json:"address,omitempty"`
	City         *string               `json:"city,omitempty"`
	Category     *string               `json:"category,omitempty"`
	PriceRange   *int                  `json:"priceRange,omitempty"`
	WorkingHours domain.WeeklySchedule `json:"workingHours,omitempty"`
	IsActive     *bool                 `json:"isActive,omitempty"`
}

// ToDomainUpdate конвертирует request в domain модель
func (r *UpdateBusinessRequest) ToDomainUpdate() domain.BusinessUpdate {
	return domain.BusinessUpdate{
		Name:         r.Name,
		Description:  r.Description,
		LogoURL:      r.LogoURL,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		City:         r.City,
		Category:     r.Category,
		PriceRange:   r.PriceRange,
		WorkingHours: r.WorkingHours,
		IsActive:     r.IsActive,
	}
}

// BusinessResponse карточка бизнеса
type BusinessResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Slug          string                `json:"slug"`
	Subdomain     *string               `json:"subdomain,omitempty"`
	Description   *string               `json:"description,omitempty"`
	LogoURL       *string               `json:"logoUrl,omitempty"`
	Phone         *string               `json:"phone,omitempty"`
	Email         *string               `json:"email,omitempty"`
	Address       *string               `json:"address,omitempty"`
	City          *string               `json:"city,omitempty"`
	Latitude      *float64              `json:"latitude,omitempty"`
	Longitude     *float64              `json:"longitude,omitempty"`
	Category      string                `json:"category"`
	PriceRange    int                   `json:"priceRange"`
	WorkingHours  domain.WeeklySchedule `json:"workingHours"`
	AverageRating float64               `json:"averageRating"`
	ReviewCount   int                   `json:"reviewCount"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// FromDomainBusiness конвертирует domain модель в DTO
func FromDomainBusiness(b *domain.Business) *BusinessResponse {
	if b == nil {
		return nil
	}

	return &BusinessResponse{
		ID:            b.ID,
		Name:          b.Name,
		Slug:          b.Slug,
		Subdomain:     b.Subdomain,
		Description:   b.Description,
		LogoURL:       b.LogoURL,
		Phone:         b.Phone,
		Email:         b.Email,
		Address:       b.Address,
		City:          b.City,
		Latitude:      b.Latitude,
		Longitude:     b.Longitude,
		Category:      b.Category,
		PriceRange:    b.PriceRange,
		WorkingHours:  b.WorkingHours,
		AverageRating: b.AverageRating,
		ReviewCount:   b.ReviewCount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBusinessList конвертирует список domain моделей в DTO
func FromDomainBusinessList(list []*domain.Business) []BusinessResponse {
	resp := make([]BusinessResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, *FromDomainBusiness(b))
	}
	return resp
}
