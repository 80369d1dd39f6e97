package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"b.id",
	"b.business_id",
	"b.service_id",
	"b.employee_id",
	"b.customer_name",
	"b.customer_email",
	"b.customer_phone",
	"b.booking_date",
	"b.booking_time",
	"b.status",
	"b.notes",
	"b.created_at",
	"s.name",
	"e.name",
	"bu.name",
}

// selectBookings базовый запрос с именами услуги, сотрудника и бизнеса
func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("services s ON s.id = b.service_id").
		LeftJoin("employees e ON e.id = b.employee_id").
		LeftJoin("businesses bu ON bu.id = b.business_id")
}

// Create создает новое бронирование.
// Доступность слота здесь не проверяется: два одновременных запроса на одно время оба будут записаны
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"business_id",
			"service_id",
			"employee_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"booking_date",
			"booking_time",
			"status",
			"notes",
		).
		Values(
			booking.ID,
			booking.BusinessID,
			booking.ServiceID,
			booking.EmployeeID,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.BookingDate.Format(domain.DateFormat),
			booking.BookingTime,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// listByBusinessQuery запрос бронирований бизнеса: сначала новые
func listByBusinessQuery(filter domain.BusinessBookingsFilter) squirrel.SelectBuilder {
	q := selectBookings().
		Where(squirrel.Eq{"b.business_id": filter.BusinessID})

	if filter.EmployeeID != nil {
		q = q.Where(squirrel.Eq{"b.employee_id": *filter.EmployeeID})
	}
	if filter.Date != nil {
		q = q.Where(squirrel.Eq{"b.booking_date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"b.status": *filter.Status})
	}

	return q.OrderBy("b.booking_date DESC", "b.booking_time DESC")
}

// ListByBusiness получает бронирования бизнеса с фильтрацией
func (r *Repository) ListByBusiness(ctx context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error) {
	query, args, err := listByBusinessQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// bookedSlotsQuery время начала активных бронирований сотрудника на дату
func bookedSlotsQuery(employeeID uuid.UUID, date time.Time) squirrel.SelectBuilder {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}

	return psqlbuilder.Select("booking_time").
		From("bookings").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"status": statuses}).
		OrderBy("booking_time ASC")
}

// GetBookedSlots возвращает занятые времена сотрудника на дату.
// Учитываются только pending и confirmed, отмененные бронирования слот не занимают
func (r *Repository) GetBookedSlots(ctx context.Context, employeeID uuid.UUID, date time.Time) ([]types.TimeOfDay, error) {
	query, args, err := bookedSlotsQuery(employeeID, date).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	booked := make([]types.TimeOfDay, 0)
	for rows.Next() {
		var t types.TimeOfDay
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetBookedSlots - scan booking_time: %v", ErrScanRow, err)
		}
		booked = append(booked, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - rows error: %v", ErrScanRow, err)
	}

	return booked, nil
}

// updateQuery частичное обновление статуса и заметок
func updateQuery(id uuid.UUID, update domain.BookingUpdate) squirrel.UpdateBuilder {
	q := psqlbuilder.Update("bookings")
	if update.Status != nil {
		q = q.Set("status", *update.Status)
	}
	if update.Notes != nil {
		q = q.Set("notes", *update.Notes)
	}
	return q.Where(squirrel.Eq{"id": id})
}

// Update обновляет статус и/или заметки бронирования
func (r *Repository) Update(ctx context.Context, id uuid.UUID, update domain.BookingUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	query, args, err := updateQuery(id, update).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "Update", query, args)
}

// Cancel переводит бронирование в статус cancelled
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "Cancel", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, op string, query string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var notes, serviceName, employeeName, businessName sql.NullString

	err := row.Scan(
		&b.ID,
		&b.BusinessID,
		&b.ServiceID,
		&b.EmployeeID,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.BookingDate,
		&b.BookingTime,
		&b.Status,
		&notes,
		&b.CreatedAt,
		&serviceName,
		&employeeName,
		&businessName,
	)
	if err != nil {
		return nil, err
	}

	b.Notes = nullString(notes)
	b.ServiceName = nullString(serviceName)
	b.EmployeeName = nullString(employeeName)
	b.BusinessName = nullString(businessName)

	return &b, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
