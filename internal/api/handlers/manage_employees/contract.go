package manage_employees

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
)

type CatalogService interface {
	CreateEmployee(ctx context.Context, businessID uuid.UUID, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, businessID, employeeID uuid.UUID, req *models.UpdateEmployeeRequest) (*models.EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, businessID, employeeID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
