package list_reviews

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
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.ReviewResponse, error)
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

// Handle GET /api/v1/businesses/{businessId}/reviews
// Только подтвержденные отзывы, новые сверху
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/reviews - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	result, err := h.service.ListByBusiness(r.Context(), businessID)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/reviews - Failed to list reviews: business_id=%s, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/reviews - Reviews retrieved: business_id=%s, count=%d", businessID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
