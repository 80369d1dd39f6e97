package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	cancelled []uuid.UUID
	err       error
}

func (f *fakeService) Cancel(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

func serve(svc BookingService, id string, userID string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Handle("/api/v1/admin/bookings/{bookingId}/cancel",
		middleware.Auth(http.HandlerFunc(NewHandler(svc, logger.NewNop()).Handle))).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/"+id+"/cancel", nil)
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Cancelled(t *testing.T) {
	svc := &fakeService{}
	id := uuid.New()

	rec := serve(svc, id.String(), "admin-1")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []uuid.UUID{id}, svc.cancelled)
}

func TestHandle_Errors(t *testing.T) {
	id := uuid.NewString()

	assert.Equal(t, http.StatusUnauthorized, serve(&fakeService{}, id, "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "abc", "admin-1").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: bookings.ErrBookingNotFound}, id, "admin-1").Code)
	assert.Equal(t, http.StatusConflict, serve(&fakeService{err: bookings.ErrCannotCancel}, id, "admin-1").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: bookings.ErrInternal}, id, "admin-1").Code)
}
