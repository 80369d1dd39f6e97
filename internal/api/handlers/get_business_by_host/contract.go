package get_business_by_host

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/businesses/models"
)

type BusinessService interface {
	GetBySubdomain(ctx context.Context, subdomain string) (*models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
