package create_review

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reviews"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reviews/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingMismatch    = "бронирование не найдено, не завершено или относится к другому бизнесу"
	msgAlreadyReviewed    = "на это бронирование уже оставлен отзыв"
	msgBusinessNotFound   = "бизнес не найден"
)

type ReviewService interface {
	Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid input: business_id=%s, error=%v", req.BusinessID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, reviews.ErrBookingMismatch):
			h.logger.Warn("POST /reviews - Booking mismatch: business_id=%s", req.BusinessID)
			handlers.RespondBadRequest(w, msgBookingMismatch)

		case errors.Is(err, reviews.ErrAlreadyReviewed):
			h.logger.Warn("POST /reviews - Booking already reviewed: business_id=%s", req.BusinessID)
			handlers.RespondConflict(w, msgAlreadyReviewed)

		case errors.Is(err, reviews.ErrBusinessNotFound):
			h.logger.Warn("POST /reviews - Business not found: business_id=%s", req.BusinessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("POST /reviews - Failed to create review: business_id=%s, error=%v", req.BusinessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created: review_id=%s, business_id=%s, verified=%t",
		review.ID, req.BusinessID, review.IsVerified)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
