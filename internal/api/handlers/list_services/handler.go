package list_services

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
)

type CatalogService interface {
	ListServices(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service    CatalogService
	activeOnly bool
	logger     Logger
}

// NewHandler activeOnly=true для публичного каталога, false для админки
func NewHandler(service CatalogService, activeOnly bool, logger Logger) *Handler {
	return &Handler{
		service:    service,
		activeOnly: activeOnly,
		logger:     logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/services
// и GET /api/v1/admin/businesses/{businessId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/services - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	result, err := h.service.ListServices(r.Context(), businessID, h.activeOnly)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/services - Failed to list services: business_id=%s, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/services - Services retrieved: business_id=%s, active_only=%t, count=%d",
		businessID, h.activeOnly, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
