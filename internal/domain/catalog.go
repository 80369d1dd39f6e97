package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service is a service offered by a business (haircut, manicure, ...)
type Service struct {
	ID              uuid.UUID
	BusinessID      uuid.UUID
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
	IsActive        bool
	CreatedAt       time.Time
}

// ServiceUpdate partial update of a service
type ServiceUpdate struct {
	Name            *string
	Description     *string
	Price           *float64
	DurationMinutes *int
	IsActive        *bool
}

// Employee is a staff member who can be booked
type Employee struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	PhotoURL   *string
	Position   *string
	Bio        *string
	IsActive   bool
	CreatedAt  time.Time
}

// EmployeeUpdate partial update of an employee
type EmployeeUpdate struct {
	Name     *string
	PhotoURL *string
	Position *string
	Bio      *string
	IsActive *bool
}
