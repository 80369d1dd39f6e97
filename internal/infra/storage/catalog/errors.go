package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("catalog.repository: employee not found")

	// ErrBusinessNotFound возвращается, когда бизнес, к которому привязывается запись, не существует
	ErrBusinessNotFound = errors.New("catalog.repository: business not found")

	// ErrServiceInUse возвращается при удалении услуги, на которую есть бронирования
	ErrServiceInUse = errors.New("catalog.repository: service is referenced by bookings")

	// ErrEmployeeInUse возвращается при удалении сотрудника, к которому есть бронирования
	ErrEmployeeInUse = errors.New("catalog.repository: employee is referenced by bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)

// foreignKeyViolation код ошибки PostgreSQL foreign_key_violation
const foreignKeyViolation = "23503"
