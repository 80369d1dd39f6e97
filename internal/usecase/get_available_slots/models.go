package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модель запроса на получение слотов сотрудника
type Request struct {
	BusinessID uuid.UUID // ID бизнеса
	EmployeeID uuid.UUID // ID сотрудника
	Date       time.Time // Дата, на которую нужны слоты (без времени)
}

// Response модель ответа со слотами
type Response struct {
	Date       time.Time
	BusinessID uuid.UUID
	EmployeeID uuid.UUID
	IsOpen     bool              // false - бизнес в этот день не работает, слотов нет
	Slots      []domain.TimeSlot // По возрастанию времени
}
