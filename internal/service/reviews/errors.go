package reviews

import "errors"

var (
	// ErrReviewNotFound возвращается, когда отзыв не найден
	ErrReviewNotFound = errors.New("review not found")

	// ErrBookingMismatch возвращается, когда указанное бронирование не подходит для отзыва
	ErrBookingMismatch = errors.New("booking does not match the business or is not completed")

	// ErrAlreadyReviewed возвращается, когда на бронирование уже оставлен отзыв
	ErrAlreadyReviewed = errors.New("booking has already been reviewed")

	// ErrBusinessNotFound возвращается, когда отзыв оставляют несуществующему бизнесу
	ErrBusinessNotFound = errors.New("business not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
