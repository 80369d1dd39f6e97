package update_business

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/businesses"
	"github.com/m04kA/SMC-SalonBooking/internal/service/businesses/models"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSchedule    = "некорректное расписание работы"
	msgNotFound           = "бизнес не найден"
)

type Handler struct {
	service BusinessService
	logger  Logger
}

func NewHandler(service BusinessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/businesses/{businessId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := handlers.PathUUID(r, "businessId")
	if err != nil {
		h.logger.Warn("PUT /admin/businesses/{id} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	// Расписание с неверным временем ("9am") отсеивается уже здесь, при разборе TimeOfDay
	var req models.UpdateBusinessRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/businesses/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	if err := h.service.Update(r.Context(), businessID, &req); err != nil {
		switch {
		case errors.Is(err, businesses.ErrInvalidSchedule):
			h.logger.Warn("PUT /admin/businesses/{id} - Invalid schedule: business_id=%s, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule+": "+err.Error())

		case errors.Is(err, businesses.ErrInvalidInput):
			h.logger.Warn("PUT /admin/businesses/{id} - Invalid input: business_id=%s, error=%v", businessID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, businesses.ErrBusinessNotFound):
			h.logger.Warn("PUT /admin/businesses/{id} - Business not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /admin/businesses/{id} - Failed to update business: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/businesses/{id} - Business updated successfully: business_id=%s, user_id=%s", businessID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
