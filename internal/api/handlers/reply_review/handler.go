package reply_review

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reviews"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reviews/models"
)

const (
	msgInvalidReviewID    = "некорректный ID отзыва"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "отзыв не найден"
)

type ReviewService interface {
	Reply(ctx context.Context, reviewID uuid.UUID, req *models.ReplyRequest) (*models.ReviewResponse, error)
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

// Handle POST /api/v1/admin/reviews/{reviewId}/reply
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reviewID, err := handlers.PathUUID(r, "reviewId")
	if err != nil {
		h.logger.Warn("POST /admin/reviews/{id}/reply - Invalid review ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	var req models.ReplyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reviews/{id}/reply - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	review, err := h.service.Reply(r.Context(), reviewID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /admin/reviews/{id}/reply - Invalid input: review_id=%s, error=%v", reviewID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, reviews.ErrReviewNotFound):
			h.logger.Warn("POST /admin/reviews/{id}/reply - Review not found: review_id=%s", reviewID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /admin/reviews/{id}/reply - Failed to reply: review_id=%s, error=%v", reviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/reviews/{id}/reply - Reply saved: review_id=%s, user_id=%s", reviewID, userID)
	handlers.RespondJSON(w, http.StatusOK, review)
}
