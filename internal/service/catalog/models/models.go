package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	IsActive        *bool   `json:"isActive,omitempty"` // по умолчанию true
}

// UpdateServiceRequest частичное обновление услуги
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty"`
}

// ToDomainUpdate конвертирует request в domain модель
func (r *UpdateServiceRequest) ToDomainUpdate() domain.ServiceUpdate {
	return domain.ServiceUpdate{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		IsActive:        r.IsActive,
	}
}

// ServiceResponse услуга в ответе API
type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	BusinessID      uuid.UUID `json:"businessId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		BusinessID:      s.BusinessID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(list []*domain.Service) []ServiceResponse {
	resp := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		resp = append(resp, *FromDomainService(s))
	}
	return resp
}

// CreateEmployeeRequest запрос на создание сотрудника
type CreateEmployeeRequest struct {
	Name     string  `json:"name"`
	PhotoURL *string `json:"photoUrl,omitempty"`
	Position *string `json:"position,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"` // по умолчанию true
}

// UpdateEmployeeRequest частичное обновление сотрудника
type UpdateEmployeeRequest struct {
	Name     *string `json:"name,omitempty"`
	PhotoURL *string `json:"photoUrl,omitempty"`
	Position *string `json:"position,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ToDomainUpdate конвертирует request в domain модель
func (r *UpdateEmployeeRequest) ToDomainUpdate() domain.EmployeeUpdate {
	return domain.EmployeeUpdate{
		Name:     r.Name,
		PhotoURL: r.PhotoURL,
		Position: r.Position,
		Bio:      r.Bio,
		IsActive: r.IsActive,
	}
}

// EmployeeResponse сотрудник в ответе API
type EmployeeResponse struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"businessId"`
	Name       string    `json:"name"`
	PhotoURL   *string   `json:"photoUrl,omitempty"`
	Position   *string   `json:"position,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FromDomainEmployee конвертирует domain модель в DTO
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:         e.ID,
		BusinessID: e.BusinessID,
		Name:       e.Name,
		PhotoURL:   e.PhotoURL,
		Position:   e.Position,
		Bio:        e.Bio,
		IsActive:   e.IsActive,
		CreatedAt:  e.CreatedAt,
	}
}

// FromDomainEmployeeList конвертирует список domain моделей в DTO
func FromDomainEmployeeList(list []*domain.Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, *FromDomainEmployee(e))
	}
	return resp
}
