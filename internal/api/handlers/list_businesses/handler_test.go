package list_businesses

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/service/businesses/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	got *models.ListBusinessesRequest
}

func (f *fakeService) List(_ context.Context, req *models.ListBusinessesRequest) ([]models.BusinessResponse, error) {
	f.got = req
	return []models.BusinessResponse{}, nil
}

func TestToServiceRequest(t *testing.T) {
	req, err := ToServiceRequest(url.Values{
		"search":         {" fade "},
		"category":       {"barbershop"},
		"minPrice":       {"1"},
		"maxPrice":       {"3"},
		"minRating":      {"4.5"},
		"availableToday": {"true"},
	})
	require.NoError(t, err)

	assert.Equal(t, "fade", *req.Search)
	assert.Equal(t, "barbershop", *req.Category)
	assert.Equal(t, 1, *req.MinPrice)
	assert.Equal(t, 3, *req.MaxPrice)
	assert.InDelta(t, 4.5, *req.MinRating, 1e-9)
	assert.True(t, req.AvailableToday)
}

func TestToServiceRequest_MinRatingRange(t *testing.T) {
	for _, v := range []string{"NaN", "nan", "Inf", "-Inf", "-0.5", "5.01", "abc"} {
		_, err := ToServiceRequest(url.Values{"minRating": {v}})
		assert.Error(t, err, "minRating=%s", v)
	}

	for _, v := range []string{"0", "3.5", "5"} {
		_, err := ToServiceRequest(url.Values{"minRating": {v}})
		assert.NoError(t, err, "minRating=%s", v)
	}
}

func TestToServiceRequest_Empty(t *testing.T) {
	req, err := ToServiceRequest(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, &models.ListBusinessesRequest{}, req)
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/businesses?category=salon", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
	assert.Equal(t, "salon", *svc.got.Category)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/businesses?minPrice=cheap", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/businesses?minRating=NaN", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
