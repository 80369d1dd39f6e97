package update_business

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/service/businesses/models"
)

type BusinessService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateBusinessRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
