package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]*domain.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, id uuid.UUID, u domain.ServiceUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]*domain.Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, id uuid.UUID, u domain.EmployeeUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
