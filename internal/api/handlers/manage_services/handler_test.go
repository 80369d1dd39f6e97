package manage_services

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

	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	created *models.CreateServiceRequest
	deleted []uuid.UUID
	err     error
}

func (f *fakeService) CreateService(_ context.Context, businessID uuid.UUID, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = req
	return &models.ServiceResponse{ID: uuid.New(), BusinessID: businessID, Name: req.Name}, nil
}

func (f *fakeService) UpdateService(_ context.Context, businessID, serviceID uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceResponse{ID: serviceID, BusinessID: businessID, Price: *req.Price}, nil
}

func (f *fakeService) DeleteService(_ context.Context, _, serviceID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, serviceID)
	return nil
}

func newRouter(svc CatalogService) *mux.Router {
	h := NewHandler(svc, logger.NewNop())

	router := mux.NewRouter()
	router.HandleFunc("/b/{businessId}/services", h.Create).Methods(http.MethodPost)
	router.HandleFunc("/b/{businessId}/services/{serviceId}", h.Update).Methods(http.MethodPatch)
	router.HandleFunc("/b/{businessId}/services/{serviceId}", h.Delete).Methods(http.MethodDelete)
	return router
}

func do(router *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestCreate(t *testing.T) {
	svc := &fakeService{}
	router := newRouter(svc)

	rec := do(router, http.MethodPost, "/b/"+uuid.NewString()+"/services", `{"name":"Beard trim","price":700,"durationMinutes":30}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 30, svc.created.DurationMinutes)
	assert.Nil(t, svc.created.IsActive)

	rec = do(newRouter(&fakeService{err: fmt.Errorf("%w: price must be >= 0", catalog.ErrInvalidInput)}),
		http.MethodPost, "/b/"+uuid.NewString()+"/services", `{"name":"x","price":-1,"durationMinutes":30}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAndDelete(t *testing.T) {
	svc := &fakeService{}
	router := newRouter(svc)
	businessID, serviceID := uuid.NewString(), uuid.New()

	rec := do(router, http.MethodPatch, "/b/"+businessID+"/services/"+serviceID.String(), `{"price":1800}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":1800`)

	rec = do(router, http.MethodDelete, "/b/"+businessID+"/services/"+serviceID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []uuid.UUID{serviceID}, svc.deleted)
}

func TestForeignServiceIsNotFound(t *testing.T) {
	router := newRouter(&fakeService{err: catalog.ErrServiceNotFound})

	rec := do(router, http.MethodDelete, "/b/"+uuid.NewString()+"/services/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(router, http.MethodDelete, "/b/"+uuid.NewString()+"/services/7", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelete_ServiceWithBookings(t *testing.T) {
	rec := do(newRouter(&fakeService{err: catalog.ErrServiceInUse}),
		http.MethodDelete, "/b/"+uuid.NewString()+"/services/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "isActive")
}

func TestCreate_UnknownBusiness(t *testing.T) {
	rec := do(newRouter(&fakeService{err: catalog.ErrBusinessNotFound}),
		http.MethodPost, "/b/"+uuid.NewString()+"/services", `{"name":"Beard trim","price":700,"durationMinutes":30}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
