package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	BusinessID    uuid.UUID
	ServiceID     uuid.UUID
	EmployeeID    uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          time.Time       // Дата бронирования (без времени)
	Time          types.TimeOfDay // Время начала, одно из значений, выданных get_available_slots
	Notes         *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            uuid.UUID
	BusinessID    uuid.UUID
	ServiceID     uuid.UUID
	EmployeeID    uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	BookingDate   time.Time
	BookingTime   types.TimeOfDay
	Status        string
	Notes         *string

	// Денормализованные данные
	ServiceName  string
	EmployeeName string
	BusinessName string

	CreatedAt time.Time
}
