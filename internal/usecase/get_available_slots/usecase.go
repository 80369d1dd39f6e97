package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	businessRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/business"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/slots"
)

// UseCase use case для получения слотов записи к сотруднику на дату
type UseCase struct {
	businessRepo    BusinessRepository
	employeeRepo    EmployeeRepository
	bookingRepo     BookingRepository
	observer        SlotsObserver
	intervalMinutes int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. observer может быть nil
func NewUseCase(
	businessRepo BusinessRepository,
	employeeRepo EmployeeRepository,
	bookingRepo BookingRepository,
	observer SlotsObserver,
	intervalMinutes int,
	logger Logger,
) *UseCase {
	if observer == nil {
		observer = nopObserver{}
	}
	return &UseCase{
		businessRepo:    businessRepo,
		employeeRepo:    employeeRepo,
		bookingRepo:     bookingRepo,
		observer:        observer,
		intervalMinutes: intervalMinutes,
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов.
// Результат - снимок на момент чтения: слот, показанный свободным, может быть занят параллельной записью
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%s, employee=%s, date=%s",
		req.BusinessID, req.EmployeeID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Сотрудник должен работать в этом бизнесе и быть активным
	employee, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("GetAvailableSlots: employee id=%s not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get employee id=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}
	if employee.BusinessID != req.BusinessID || !employee.IsActive {
		uc.logger.Warn("GetAvailableSlots: employee id=%s is not bookable at business=%s", req.EmployeeID, req.BusinessID)
		return nil, ErrEmployeeNotFound
	}

	// 3. Расписание бизнеса
	schedule, err := uc.businessRepo.GetWeeklySchedule(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule for business=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 4. День недели берется из запрошенной даты
	day, err := slots.CurrentDaySchedule(schedule, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: broken schedule for business=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	if day.IsPartial() {
		uc.logger.Error("GetAvailableSlots: partial day schedule for business=%s on %s", req.BusinessID, req.Date.Weekday())
		return nil, fmt.Errorf("%w: %s has only one of open/close", ErrInvalidSchedule, domain.WeekdayKey(req.Date.Weekday()))
	}

	response := &Response{
		Date:       req.Date,
		BusinessID: req.BusinessID,
		EmployeeID: req.EmployeeID,
		Slots:      []domain.TimeSlot{},
	}

	if !slots.IsBusinessOpen(day) {
		uc.logger.Info("GetAvailableSlots: business=%s is closed on %s", req.BusinessID, req.Date.Format(domain.DateFormat))
		return response, nil
	}
	response.IsOpen = true

	// 5. Занятые времена сотрудника
	booked, err := uc.bookingRepo.GetBookedSlots(ctx, req.EmployeeID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked slots for employee=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	// 6. Генерация
	timeSlots, err := slots.GenerateTimeSlots(*day.Open, *day.Close, uc.intervalMinutes, booked)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}
	response.Slots = timeSlots

	available := domain.CountAvailable(timeSlots)
	uc.observer.ObserveSlots(len(timeSlots), available)

	uc.logger.Info("GetAvailableSlots: generated %d slots (%d available) for employee=%s, date=%s",
		len(timeSlots), available, req.EmployeeID, req.Date.Format(domain.DateFormat))

	return response, nil
}
