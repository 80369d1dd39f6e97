package get_available_slots

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден или неактивен
	ErrBusinessNotFound = errors.New("business not found")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден, неактивен или работает в другом бизнесе
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidSchedule возвращается, когда расписание бизнеса повреждено (нет дня недели, задано только open или close)
	ErrInvalidSchedule = errors.New("business working hours are invalid")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
