package get_ratings

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reviews/models"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
)

type ReviewService interface {
	RatingBreakdown(ctx context.Context, businessID uuid.UUID) (*models.RatingBreakdownResponse, error)
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

// Handle GET /api/v1/businesses/{businessId}/ratings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/ratings - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	result, err := h.service.RatingBreakdown(r.Context(), businessID)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/ratings - Failed to get ratings: business_id=%s, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/ratings - Ratings retrieved: business_id=%s", businessID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
