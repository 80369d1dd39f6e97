package domain

import (
	"time"

	"github.com/google/uuid"
)

// Business represents a salon or barbershop listed on the marketplace
type Business struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	Subdomain    *string
	Description  *string
	LogoURL      *string
	Phone        *string
	Email        *string
	Address      *string
	City         *string
	Latitude     *float64
	Longitude    *float64
	Category     string
	PriceRange   int
	WorkingHours WeeklySchedule
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Aggregated over verified reviews
	AverageRating float64
	ReviewCount   int
}

// BusinessFilter фильтр каталога бизнесов
type BusinessFilter struct {
	Search   *string // ILIKE по названию
	Category *string
	MinPrice *int
	MaxPrice *int
}

// BusinessUpdate partial update of a business profile
type BusinessUpdate struct {
	Name         *string
	Description  *string
	LogoURL      *string
	Phone        *string
	Email        *string
	Address      *string
	City         *string
	Category     *string
	PriceRange   *int
	WorkingHours WeeklySchedule
	IsActive     *bool
}

// IsEmpty returns true if nothing is to be updated
func (u BusinessUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.LogoURL == nil && u.Phone == nil &&
		u.Email == nil && u.Address == nil && u.City == nil && u.Category == nil &&
		u.PriceRange == nil && u.WorkingHours == nil && u.IsActive == nil
}

// RatingStats aggregated ratings of a business
type RatingStats struct {
	BusinessID    uuid.UUID
	AverageRating float64
	ReviewCount   int
}
