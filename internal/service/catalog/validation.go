package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
)

func validateServiceFields(name *string, price *float64, duration *int) error {
	if name != nil && strings.TrimSpace(*name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if price != nil && *price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if duration != nil && *duration <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	return nil
}

func validateCreateService(req *models.CreateServiceRequest) error {
	return validateServiceFields(&req.Name, &req.Price, &req.DurationMinutes)
}

func validateUpdateService(req *models.UpdateServiceRequest) error {
	return validateServiceFields(req.Name, req.Price, req.DurationMinutes)
}

func validateEmployeeName(name *string) error {
	if name != nil && strings.TrimSpace(*name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	return nil
}
