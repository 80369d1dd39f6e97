package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes = 30
)

// Business validation constants
const (
	MinCustomerNameLength  = 2
	MinCustomerPhoneLength = 6
	MaxNotesLength         = 500
	MaxReviewCommentLength = 2000
	MaxReviewReplyLength   = 2000
	MinRating              = 1
	MaxRating              = 5
	MinPriceRange          = 1
	MaxPriceRange          = 4
)

// DateFormat формат даты в запросах и ответах, YYYY-MM-DD
const DateFormat = "2006-01-02"

// ActiveStatuses статусы, занимающие слот.
// Используются при получении занятых слотов сотрудника
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// AllStatuses все допустимые статусы бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}
