package manage_services

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "услуга не найдена"
	msgBusinessNotFound   = "бизнес не найден"
	msgInUse              = "на услугу есть бронирования, вместо удаления отключите ее через isActive"
)

// Handler CRUD услуг бизнеса для админки
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/admin/businesses/{businessId}/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const route = "POST /admin/businesses/{id}/services"

	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("%s - Invalid business ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateService(r.Context(), businessID, &req)
	if err != nil {
		h.respondError(w, route, businessID, uuid.Nil, err)
		return
	}

	h.logger.Info("%s - Service created: business_id=%s, service_id=%s", route, businessID, created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// Update PATCH /api/v1/admin/businesses/{businessId}/services/{serviceId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const route = "PATCH /admin/businesses/{id}/services/{id}"

	businessID, serviceID, ok := h.pathIDs(w, r, route)
	if !ok {
		return
	}

	var req models.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateService(r.Context(), businessID, serviceID, &req)
	if err != nil {
		h.respondError(w, route, businessID, serviceID, err)
		return
	}

	h.logger.Info("%s - Service updated: business_id=%s, service_id=%s", route, businessID, serviceID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// Delete DELETE /api/v1/admin/businesses/{businessId}/services/{serviceId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const route = "DELETE /admin/businesses/{id}/services/{id}"

	businessID, serviceID, ok := h.pathIDs(w, r, route)
	if !ok {
		return
	}

	if err := h.service.DeleteService(r.Context(), businessID, serviceID); err != nil {
		h.respondError(w, route, businessID, serviceID, err)
		return
	}

	h.logger.Info("%s - Service deleted: business_id=%s, service_id=%s", route, businessID, serviceID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) pathIDs(w http.ResponseWriter, r *http.Request, route string) (uuid.UUID, uuid.UUID, bool) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("%s - Invalid business ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return uuid.Nil, uuid.Nil, false
	}

	serviceID, err := handlers.PathUUID(r, "serviceId")
	if err != nil {
		h.logger.Warn("%s - Invalid service ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return uuid.Nil, uuid.Nil, false
	}

	return businessID, serviceID, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, businessID, serviceID uuid.UUID, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: business_id=%s, error=%v", route, businessID, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, catalog.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: business_id=%s, service_id=%s", route, businessID, serviceID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, catalog.ErrBusinessNotFound):
		h.logger.Warn("%s - Business not found: business_id=%s", route, businessID)
		handlers.RespondNotFound(w, msgBusinessNotFound)

	case errors.Is(err, catalog.ErrServiceInUse):
		h.logger.Warn("%s - Service has bookings: business_id=%s, service_id=%s", route, businessID, serviceID)
		handlers.RespondConflict(w, msgInUse)

	default:
		h.logger.Error("%s - Failed: business_id=%s, service_id=%s, error=%v", route, businessID, serviceID, err)
		handlers.RespondInternalError(w)
	}
}
