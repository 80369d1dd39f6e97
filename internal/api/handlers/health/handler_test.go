package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(pinger{}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/health/check", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHandler(pinger{err: errors.New("connection refused")}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/health/check", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
