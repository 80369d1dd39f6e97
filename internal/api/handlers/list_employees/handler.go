package list_employees

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
	ListEmployees(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]models.EmployeeResponse, error)
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

// Handle GET /api/v1/businesses/{businessId}/employees
// и GET /api/v1/admin/businesses/{businessId}/employees
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/employees - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	result, err := h.service.ListEmployees(r.Context(), businessID, h.activeOnly)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/employees - Failed to list employees: business_id=%s, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/employees - Employees retrieved: business_id=%s, active_only=%t, count=%d",
		businessID, h.activeOnly, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
