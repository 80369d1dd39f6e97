package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true for known statuses
func (s BookingStatus) IsValid() bool {
	for _, st := range AllStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Booking represents an appointment at a business
type Booking struct {
	ID            uuid.UUID
	BusinessID    uuid.UUID
	ServiceID     uuid.UUID
	EmployeeID    uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	BookingDate   time.Time
	BookingTime   types.TimeOfDay
	Status        BookingStatus
	Notes         *string
	CreatedAt     time.Time

	// Joined data, filled by GetByID and ListByBusiness
	ServiceName  *string
	EmployeeName *string
	BusinessName *string
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingUpdate partial update of a booking
type BookingUpdate struct {
	Status *BookingStatus
	Notes  *string
}

// IsEmpty returns true if nothing is to be updated
func (u BookingUpdate) IsEmpty() bool {
	return u.Status == nil && u.Notes == nil
}

// BusinessBookingsFilter фильтр для получения бронирований бизнеса
type BusinessBookingsFilter struct {
	BusinessID uuid.UUID      // Обязательный параметр
	EmployeeID *uuid.UUID     // Фильтр по сотруднику (опционально)
	Date       *time.Time     // Конкретная дата (опционально)
	Status     *BookingStatus // Фильтр по статусу (опционально)
}
