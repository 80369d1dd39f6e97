package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid booking date")
	errInvalidTime = errors.New("invalid booking time")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BusinessID    uuid.UUID `json:"businessId"`
	ServiceID     uuid.UUID `json:"serviceId"`
	EmployeeID    uuid.UUID `json:"employeeId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	BookingDate   string    `json:"bookingDate"` // "2026-10-21"
	BookingTime   string    `json:"bookingTime"` // "10:30"
	Notes         *string   `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	BusinessID    uuid.UUID `json:"businessId"`
	ServiceID     uuid.UUID `json:"serviceId"`
	EmployeeID    uuid.UUID `json:"employeeId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	BookingDate   string    `json:"bookingDate"`
	BookingTime   string    `json:"bookingTime"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	ServiceName   string    `json:"serviceName"`
	EmployeeName  string    `json:"employeeName"`
	BusinessName  string    `json:"businessName"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	at, err := types.ParseTimeOfDay(r.BookingTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createBooking.Request{
		BusinessID:    r.BusinessID,
		ServiceID:     r.ServiceID,
		EmployeeID:    r.EmployeeID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Date:          date,
		Time:          at,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		BusinessID:    resp.BusinessID,
		ServiceID:     resp.ServiceID,
		EmployeeID:    resp.EmployeeID,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		BookingTime:   resp.BookingTime.String(),
		Status:        resp.Status,
		Notes:         resp.Notes,
		ServiceName:   resp.ServiceName,
		EmployeeName:  resp.EmployeeName,
		BusinessName:  resp.BusinessName,
		CreatedAt:     resp.CreatedAt,
	}
}
