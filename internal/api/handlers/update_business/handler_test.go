package update_business

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

	"github.com/m04kA/SMC-SalonBooking/internal/service/businesses"
	"github.com/m04kA/SMC-SalonBooking/internal/service/businesses/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	got *models.UpdateBusinessRequest
	err error
}

func (f *fakeService) Update(_ context.Context, _ uuid.UUID, req *models.UpdateBusinessRequest) error {
	f.got = req
	return f.err
}

func serve(svc BusinessService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/businesses/{businessId}", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut,
		"/api/v1/admin/businesses/"+uuid.NewString(), strings.NewReader(body)))
	return rec
}

func TestHandle_DecodesWorkingHours(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, `{"name":"Fade","workingHours":{"monday":{"open":"09:00","close":"18:00"}}}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, "Fade", *svc.got.Name)
	assert.Equal(t, "18:00", svc.got.WorkingHours["monday"].Close.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest,
		serve(&fakeService{}, `{"workingHours":{"monday":{"open":"9am","close":"18:00"}}}`).Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(&fakeService{err: fmt.Errorf("%w: missing sunday", businesses.ErrInvalidSchedule)}, `{"name":"Fade"}`).Code)
	assert.Equal(t, http.StatusNotFound,
		serve(&fakeService{err: businesses.ErrBusinessNotFound}, `{"name":"Fade"}`).Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(&fakeService{err: businesses.ErrInternal}, `{"name":"Fade"}`).Code)
}
