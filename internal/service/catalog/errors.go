package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в бизнесе
	ErrServiceNotFound = errors.New("service not found")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден в бизнесе
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrBusinessNotFound возвращается, когда бизнес не существует
	ErrBusinessNotFound = errors.New("business not found")

	// ErrServiceInUse возвращается при удалении услуги, на которую уже есть бронирования
	ErrServiceInUse = errors.New("service has bookings and cannot be deleted")

	// ErrEmployeeInUse возвращается при удалении сотрудника, к которому уже есть бронирования
	ErrEmployeeInUse = errors.New("employee has bookings and cannot be deleted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
