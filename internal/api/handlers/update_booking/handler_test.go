package update_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	got *models.UpdateBookingRequest
	err error
}

func (f *fakeService) Update(_ context.Context, id uuid.UUID, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id, Status: *req.Status}, nil
}

func serve(svc BookingService, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/bookings/{bookingId}", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/"+id, strings.NewReader(body)))
	return rec
}

func TestHandle_Updated(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, uuid.NewString(), `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "confirmed", *svc.got.Status)
	assert.Nil(t, svc.got.Notes)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
}

func TestHandle_Errors(t *testing.T) {
	id := uuid.NewString()

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, id, `{"state":"confirmed"}`).Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(&fakeService{err: fmt.Errorf("%w: invalid booking status", bookings.ErrInvalidInput)}, id, `{"status":"done"}`).Code)
	assert.Equal(t, http.StatusNotFound,
		serve(&fakeService{err: bookings.ErrBookingNotFound}, id, `{"status":"confirmed"}`).Code)
}
