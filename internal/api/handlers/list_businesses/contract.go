package list_businesses

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/businesses/models"
)

type BusinessService interface {
	List(ctx context.Context, req *models.ListBusinessesRequest) ([]models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
