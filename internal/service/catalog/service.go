package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
)

// Service услуги и сотрудники бизнеса
type Service struct {
	serviceRepo  ServiceRepository
	employeeRepo EmployeeRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога услуг и сотрудников
func NewService(serviceRepo ServiceRepository, employeeRepo EmployeeRepository, logger Logger) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// ListServices услуги бизнеса. activeOnly=true для публичного каталога
func (s *Service) ListServices(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]models.ServiceResponse, error) {
	list, err := s.serviceRepo.ListByBusiness(ctx, businessID, activeOnly)
	if err != nil {
		s.logger.Error("ListServices: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(list), nil
}

// CreateService создает услугу
func (s *Service) CreateService(ctx context.Context, businessID uuid.UUID, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if err := validateCreateService(req); err != nil {
		s.logger.Warn("CreateService: validation failed for business=%s: %v", businessID, err)
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		BusinessID:      businessID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		IsActive:        isActive,
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBusinessNotFound) {
			s.logger.Warn("CreateService: business id=%s not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("CreateService: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%s for business=%s", created.ID, businessID)
	return models.FromDomainService(created), nil
}

// UpdateService частично обновляет услугу бизнеса
func (s *Service) UpdateService(ctx context.Context, businessID, serviceID uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	if err := validateUpdateService(req); err != nil {
		s.logger.Warn("UpdateService: validation failed for service=%s: %v", serviceID, err)
		return nil, err
	}

	if _, err := s.ownedService(ctx, "UpdateService", businessID, serviceID); err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Update(ctx, serviceID, req.ToDomainUpdate()); err != nil {
		return nil, s.serviceRepoError("UpdateService", serviceID, err)
	}

	updated, err := s.ownedService(ctx, "UpdateService", businessID, serviceID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateService: updated service id=%s", serviceID)
	return models.FromDomainService(updated), nil
}

// DeleteService удаляет услугу бизнеса
func (s *Service) DeleteService(ctx context.Context, businessID, serviceID uuid.UUID) error {
	if _, err := s.ownedService(ctx, "DeleteService", businessID, serviceID); err != nil {
		return err
	}

	if err := s.serviceRepo.Delete(ctx, serviceID); err != nil {
		return s.serviceRepoError("DeleteService", serviceID, err)
	}

	s.logger.Info("DeleteService: deleted service id=%s", serviceID)
	return nil
}

// ListEmployees сотрудники бизнеса. activeOnly=true для публичного каталога
func (s *Service) ListEmployees(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]models.EmployeeResponse, error) {
	list, err := s.employeeRepo.ListByBusiness(ctx, businessID, activeOnly)
	if err != nil {
		s.logger.Error("ListEmployees: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListEmployees - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainEmployeeList(list), nil
}

// CreateEmployee создает сотрудника
func (s *Service) CreateEmployee(ctx context.Context, businessID uuid.UUID, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error) {
	if err := validateEmployeeName(&req.Name); err != nil {
		s.logger.Warn("CreateEmployee: validation failed for business=%s: %v", businessID, err)
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := s.employeeRepo.Create(ctx, &domain.Employee{
		BusinessID: businessID,
		Name:       req.Name,
		PhotoURL:   req.PhotoURL,
		Position:   req.Position,
		Bio:        req.Bio,
		IsActive:   isActive,
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBusinessNotFound) {
			s.logger.Warn("CreateEmployee: business id=%s not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("CreateEmployee: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: CreateEmployee - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateEmployee: created employee id=%s for business=%s", created.ID, businessID)
	return models.FromDomainEmployee(created), nil
}

// UpdateEmployee частично обновляет сотрудника бизнеса
func (s *Service) UpdateEmployee(ctx context.Context, businessID, employeeID uuid.UUID, req *models.UpdateEmployeeRequest) (*models.EmployeeResponse, error) {
	if err := validateEmployeeName(req.Name); err != nil {
		s.logger.Warn("UpdateEmployee: validation failed for employee=%s: %v", employeeID, err)
		return nil, err
	}

	if _, err := s.ownedEmployee(ctx, "UpdateEmployee", businessID, employeeID); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Update(ctx, employeeID, req.ToDomainUpdate()); err != nil {
		return nil, s.employeeRepoError("UpdateEmployee", employeeID, err)
	}

	updated, err := s.ownedEmployee(ctx, "UpdateEmployee", businessID, employeeID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateEmployee: updated employee id=%s", employeeID)
	return models.FromDomainEmployee(updated), nil
}

// DeleteEmployee удаляет сотрудника бизнеса
func (s *Service) DeleteEmployee(ctx context.Context, businessID, employeeID uuid.UUID) error {
	if _, err := s.ownedEmployee(ctx, "DeleteEmployee", businessID, employeeID); err != nil {
		return err
	}

	if err := s.employeeRepo.Delete(ctx, employeeID); err != nil {
		return s.employeeRepoError("DeleteEmployee", employeeID, err)
	}

	s.logger.Info("DeleteEmployee: deleted employee id=%s", employeeID)
	return nil
}

// ownedService услуга, принадлежащая бизнесу. Чужая услуга неотличима от несуществующей
func (s *Service) ownedService(ctx context.Context, op string, businessID, serviceID uuid.UUID) (*domain.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, s.serviceRepoError(op, serviceID, err)
	}
	if svc.BusinessID != businessID {
		s.logger.Warn("%s: service id=%s does not belong to business=%s", op, serviceID, businessID)
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (s *Service) ownedEmployee(ctx context.Context, op string, businessID, employeeID uuid.UUID) (*domain.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, s.employeeRepoError(op, employeeID, err)
	}
	if emp.BusinessID != businessID {
		s.logger.Warn("%s: employee id=%s does not belong to business=%s", op, employeeID, businessID)
		return nil, ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *Service) serviceRepoError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, catalogRepo.ErrServiceNotFound) {
		s.logger.Warn("%s: service id=%s not found", op, id)
		return ErrServiceNotFound
	}
	if errors.Is(err, catalogRepo.ErrServiceInUse) {
		s.logger.Warn("%s: service id=%s is referenced by bookings", op, id)
		return ErrServiceInUse
	}
	s.logger.Error("%s: repository error for service id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func (s *Service) employeeRepoError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, catalogRepo.ErrEmployeeNotFound) {
		s.logger.Warn("%s: employee id=%s not found", op, id)
		return ErrEmployeeNotFound
	}
	if errors.Is(err, catalogRepo.ErrEmployeeInUse) {
		s.logger.Warn("%s: employee id=%s is referenced by bookings", op, id)
		return ErrEmployeeInUse
	}
	s.logger.Error("%s: repository error for employee id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
