package slots

import (
	"errors"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrInvalidInterval возвращается при нулевом или отрицательном шаге слотов
	ErrInvalidInterval = errors.New("slots: interval must be a positive number of minutes")

	// ErrMissingWeekday возвращается, когда в расписании нет нужного дня недели
	ErrMissingWeekday = domain.ErrMissingWeekday
)
