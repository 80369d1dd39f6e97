package create_review

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/service/reviews"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reviews/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	got *models.CreateReviewRequest
	err error
}

func (f *fakeService) Create(_ context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReviewResponse{ID: uuid.New(), BusinessID: req.BusinessID, RatingOverall: req.RatingOverall}, nil
}

func serve(svc ReviewService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{}
	bookingID := uuid.New()

	body := fmt.Sprintf(`{"businessId":%q,"bookingId":%q,"customerName":"Maria","ratingOverall":5,"ratingPrice":4}`,
		uuid.NewString(), bookingID)
	rec := serve(svc, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, bookingID, *svc.got.BookingID)
	assert.Equal(t, 4, *svc.got.RatingPrice)
	assert.Nil(t, svc.got.RatingService)
}

func TestHandle_Errors(t *testing.T) {
	body := fmt.Sprintf(`{"businessId":%q,"customerName":"Maria","ratingOverall":6}`, uuid.NewString())

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{"businessId":"nope"}`).Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(&fakeService{err: fmt.Errorf("%w: rating must be 1-5", reviews.ErrInvalidInput)}, body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: reviews.ErrBookingMismatch}, body).Code)
	assert.Equal(t, http.StatusConflict, serve(&fakeService{err: reviews.ErrAlreadyReviewed}, body).Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: reviews.ErrBusinessNotFound}, body).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: reviews.ErrInternal}, body).Code)
}
