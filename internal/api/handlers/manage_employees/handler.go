package manage_employees

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
	msgInvalidEmployeeID  = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "сотрудник не найден"
	msgBusinessNotFound   = "бизнес не найден"
	msgInUse              = "к сотруднику есть бронирования, вместо удаления отключите его через isActive"
)

// Handler CRUD сотрудников бизнеса для админки
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

// Create POST /api/v1/admin/businesses/{businessId}/employees
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const route = "POST /admin/businesses/{id}/employees"

	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("%s - Invalid business ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req models.CreateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateEmployee(r.Context(), businessID, &req)
	if err != nil {
		h.respondError(w, route, businessID, uuid.Nil, err)
		return
	}

	h.logger.Info("%s - Employee created: business_id=%s, employee_id=%s", route, businessID, created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// Update PATCH /api/v1/admin/businesses/{businessId}/employees/{employeeId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const route = "PATCH /admin/businesses/{id}/employees/{id}"

	businessID, employeeID, ok := h.pathIDs(w, r, route)
	if !ok {
		return
	}

	var req models.UpdateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateEmployee(r.Context(), businessID, employeeID, &req)
	if err != nil {
		h.respondError(w, route, businessID, employeeID, err)
		return
	}

	h.logger.Info("%s - Employee updated: business_id=%s, employee_id=%s", route, businessID, employeeID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// Delete DELETE /api/v1/admin/businesses/{businessId}/employees/{employeeId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const route = "DELETE /admin/businesses/{id}/employees/{id}"

	businessID, employeeID, ok := h.pathIDs(w, r, route)
	if !ok {
		return
	}

	if err := h.service.DeleteEmployee(r.Context(), businessID, employeeID); err != nil {
		h.respondError(w, route, businessID, employeeID, err)
		return
	}

	h.logger.Info("%s - Employee deleted: business_id=%s, employee_id=%s", route, businessID, employeeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) pathIDs(w http.ResponseWriter, r *http.Request, route string) (uuid.UUID, uuid.UUID, bool) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("%s - Invalid business ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return uuid.Nil, uuid.Nil, false
	}

	employeeID, err := handlers.PathUUID(r, "employeeId")
	if err != nil {
		h.logger.Warn("%s - Invalid employee ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return uuid.Nil, uuid.Nil, false
	}

	return businessID, employeeID, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, businessID, employeeID uuid.UUID, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: business_id=%s, error=%v", route, businessID, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, catalog.ErrEmployeeNotFound):
		h.logger.Warn("%s - Employee not found: business_id=%s, employee_id=%s", route, businessID, employeeID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, catalog.ErrBusinessNotFound):
		h.logger.Warn("%s - Business not found: business_id=%s", route, businessID)
		handlers.RespondNotFound(w, msgBusinessNotFound)

	case errors.Is(err, catalog.ErrEmployeeInUse):
		h.logger.Warn("%s - Employee has bookings: business_id=%s, employee_id=%s", route, businessID, employeeID)
		handlers.RespondConflict(w, msgInUse)

	default:
		h.logger.Error("%s - Failed: business_id=%s, employee_id=%s, error=%v", route, businessID, employeeID, err)
		handlers.RespondInternalError(w)
	}
}
