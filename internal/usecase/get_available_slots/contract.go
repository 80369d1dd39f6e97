package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// BusinessRepository источник расписания работы бизнеса
type BusinessRepository interface {
	GetWeeklySchedule(ctx context.Context, businessID uuid.UUID) (domain.WeeklySchedule, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
}

// BookingRepository источник занятых времен сотрудника
type BookingRepository interface {
	// GetBookedSlots возвращает времена начала ожидающих и подтвержденных бронирований сотрудника на дату
	GetBookedSlots(ctx context.Context, employeeID uuid.UUID, date time.Time) ([]types.TimeOfDay, error)
}

// SlotsObserver метрики сгенерированных слотов
type SlotsObserver interface {
	ObserveSlots(total, available int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopObserver struct{}

func (nopObserver) ObserveSlots(int, int) {}
