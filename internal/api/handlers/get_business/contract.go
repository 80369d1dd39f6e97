package get_business

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/businesses/models"
)

type BusinessService interface {
	GetBySlug(ctx context.Context, slug string) (*models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
