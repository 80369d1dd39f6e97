package get_business

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/service/businesses"
	"github.com/m04kA/SMC-SalonBooking/internal/service/businesses/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	bySlug map[string]*models.BusinessResponse
}

func (f *fakeService) GetBySlug(_ context.Context, slug string) (*models.BusinessResponse, error) {
	b, ok := f.bySlug[slug]
	if !ok {
		return nil, businesses.ErrBusinessNotFound
	}
	return b, nil
}

func TestHandle(t *testing.T) {
	svc := &fakeService{bySlug: map[string]*models.BusinessResponse{
		"fade-studio": {ID: uuid.New(), Name: "Fade Studio", Slug: "fade-studio"},
	}}

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/businesses/{slug}", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/businesses/fade-studio", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Fade Studio"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/businesses/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
