package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer review of a business
type Review struct {
	ID                uuid.UUID
	BusinessID        uuid.UUID
	BookingID         *uuid.UUID
	CustomerName      string
	RatingOverall     int
	RatingCleanliness *int
	RatingService     *int
	RatingPrice       *int
	Comment           *string
	Reply             *string
	IsVerified        bool
	CreatedAt         time.Time
}

// RatingBreakdown average ratings per category over verified reviews
type RatingBreakdown struct {
	Overall     float64
	Cleanliness float64
	Service     float64
	Price       float64
}
