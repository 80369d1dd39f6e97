package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	BusinessID        uuid.UUID  `json:"businessId"`
	BookingID         *uuid.UUID `json:"bookingId,omitempty"`
	CustomerName      string     `json:"customerName"`
	RatingOverall     int        `json:"ratingOverall"`
	RatingCleanliness *int       `json:"ratingCleanliness,omitempty"`
	RatingService     *int       `json:"ratingService,omitempty"`
	RatingPrice       *int       `json:"ratingPrice,omitempty"`
	Comment           *string    `json:"comment,omitempty"`
}

// ReplyRequest ответ бизнеса на отзыв
type ReplyRequest struct {
	Reply string `json:"reply"`
}

// ReviewResponse отзыв в ответе API
type ReviewResponse struct {
	ID                uuid.UUID  `json:"id"`
	BusinessID        uuid.UUID  `json:"businessId"`
	BookingID         *uuid.UUID `json:"bookingId,omitempty"`
	CustomerName      string     `json:"customerName"`
	RatingOverall     int        `json:"ratingOverall"`
	RatingCleanliness *int       `json:"ratingCleanliness,omitempty"`
	RatingService     *int       `json:"ratingService,omitempty"`
	RatingPrice       *int       `json:"ratingPrice,omitempty"`
	Comment           *string    `json:"comment,omitempty"`
	Reply             *string    `json:"reply,omitempty"`
	IsVerified        bool       `json:"isVerified"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// RatingBreakdownResponse средние оценки по категориям
type RatingBreakdownResponse struct {
	Overall     float64 `json:"overall"`
	Cleanliness float64 `json:"cleanliness"`
	Service     float64 `json:"service"`
	Price       float64 `json:"price"`
}

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:                r.ID,
		BusinessID:        r.BusinessID,
		BookingID:         r.BookingID,
		CustomerName:      r.CustomerName,
		RatingOverall:     r.RatingOverall,
		RatingCleanliness: r.RatingCleanliness,
		RatingService:     r.RatingService,
		RatingPrice:       r.RatingPrice,
		Comment:           r.Comment,
		Reply:             r.Reply,
		IsVerified:        r.IsVerified,
		CreatedAt:         r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO
func FromDomainReviewList(list []*domain.Review) []ReviewResponse {
	resp := make([]ReviewResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, *FromDomainReview(r))
	}
	return resp
}

// FromDomainBreakdown конвертирует domain модель в DTO
func FromDomainBreakdown(b *domain.RatingBreakdown) *RatingBreakdownResponse {
	return &RatingBreakdownResponse{
		Overall:     b.Overall,
		Cleanliness: b.Cleanliness,
		Service:     b.Service,
		Price:       b.Price,
	}
}
