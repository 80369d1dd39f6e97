package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	businessRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/business"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	businessRepo BusinessRepository
	serviceRepo  ServiceRepository
	employeeRepo EmployeeRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	businessRepo BusinessRepository,
	serviceRepo ServiceRepository,
	employeeRepo EmployeeRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		serviceRepo:  serviceRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Execute создает бронирование в статусе pending.
// Занятость слота при записи не проверяется: два запроса на одно время оба будут сохранены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: business=%s, service=%s, employee=%s, date=%s, time=%s",
		req.BusinessID, req.ServiceID, req.EmployeeID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Бизнес
	business, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateBooking: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateBooking: failed to get business id=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Услуга должна принадлежать бизнесу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.BusinessID != req.BusinessID || !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%s is not offered by business=%s", req.ServiceID, req.BusinessID)
		return nil, ErrServiceNotFound
	}

	// 4. Сотрудник должен работать в бизнесе
	employee, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("CreateBooking: employee id=%s not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get employee id=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}
	if employee.BusinessID != req.BusinessID || !employee.IsActive {
		uc.logger.Warn("CreateBooking: employee id=%s is not bookable at business=%s", req.EmployeeID, req.BusinessID)
		return nil, ErrEmployeeNotFound
	}

	// 5. Запись
	created, err := uc.bookingRepo.Create(ctx, &domain.Booking{
		BusinessID:    req.BusinessID,
		ServiceID:     req.ServiceID,
		EmployeeID:    req.EmployeeID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		BookingDate:   req.Date,
		BookingTime:   req.Time,
		Status:        domain.StatusPending,
		Notes:         req.Notes,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%s for employee=%s at %s %s",
		created.ID, req.EmployeeID, req.Date.Format(domain.DateFormat), req.Time)

	return &Response{
		ID:            created.ID,
		BusinessID:    created.BusinessID,
		ServiceID:     created.ServiceID,
		EmployeeID:    created.EmployeeID,
		CustomerName:  created.CustomerName,
		CustomerEmail: created.CustomerEmail,
		CustomerPhone: created.CustomerPhone,
		BookingDate:   created.BookingDate,
		BookingTime:   created.BookingTime,
		Status:        string(created.Status),
		Notes:         created.Notes,
		ServiceName:   service.Name,
		EmployeeName:  employee.Name,
		BusinessName:  business.Name,
		CreatedAt:     created.CreatedAt,
	}, nil
}
