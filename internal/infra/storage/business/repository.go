package business

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

// Repository каталог бизнесов (Business Directory)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var businessColumns = []string{
	"id",
	"name",
	"slug",
	"subdomain",
	"description",
	"logo_url",
	"phone",
	"email",
	"address",
	"city",
	"latitude",
	"longitude",
	"category",
	"price_range",
	"working_hours",
	"is_active",
	"created_at",
	"updated_at",
}

func selectActive() squirrel.SelectBuilder {
	return psqlbuilder.Select(businessColumns...).
		From("businesses").
		Where(squirrel.Eq{"is_active": true})
}

// escapeLike экранирует спецсимволы шаблона LIKE
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// listQuery запрос активных бизнесов с фильтрами, сортировка по названию
func listQuery(filter domain.BusinessFilter) squirrel.SelectBuilder {
	q := selectActive()

	if filter.Search != nil && *filter.Search != "" {
		q = q.Where(squirrel.ILike{"name": "%" + escapeLike(*filter.Search) + "%"})
	}
	if filter.Category != nil && *filter.Category != "" {
		q = q.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.MinPrice != nil {
		q = q.Where(squirrel.GtOrEq{"price_range": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		q = q.Where(squirrel.LtOrEq{"price_range": *filter.MaxPrice})
	}

	return q.OrderBy("name ASC")
}

// List возвращает активные бизнесы по фильтру
func (r *Repository) List(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, error) {
	query, args, err := listQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	businesses := make([]*domain.Business, 0)
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return businesses, nil
}

// GetByID получает активный бизнес по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetBySlug получает активный бизнес по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	return r.getOne(ctx, "GetBySlug", squirrel.Eq{"slug": slug})
}

// GetBySubdomain получает активный бизнес по поддомену
func (r *Repository) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Business, error) {
	return r.getOne(ctx, "GetBySubdomain", squirrel.Eq{"subdomain": subdomain})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Business, error) {
	query, args, err := selectActive().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	b, err := scanBusiness(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan business: %v", ErrScanRow, op, err)
	}

	return b, nil
}

// GetWeeklySchedule возвращает расписание работы бизнеса.
// Расписание не валидируется: это делает вызывающий код
func (r *Repository) GetWeeklySchedule(ctx context.Context, businessID uuid.UUID) (domain.WeeklySchedule, error) {
	query, args, err := psqlbuilder.Select("working_hours").
		From("businesses").
		Where(squirrel.Eq{"id": businessID, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.WeeklySchedule
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&schedule)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - scan working_hours: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// updateQuery частичное обновление профиля, updated_at выставляется всегда
func updateQuery(id uuid.UUID, u domain.BusinessUpdate) squirrel.UpdateBuilder {
	q := psqlbuilder.Update("businesses")

	if u.Name != nil {
		q = q.Set("name", *u.Name)
	}
	if u.Description != nil {
		q = q.Set("description", *u.Description)
	}
	if u.LogoURL != nil {
		q = q.Set("logo_url", *u.LogoURL)
	}
	if u.Phone != nil {
		q = q.Set("phone", *u.Phone)
	}
	if u.Email != nil {
		q = q.Set("email", *u.Email)
	}
	if u.Address != nil {
		q = q.Set("address", *u.Address)
	}
	if u.City != nil {
		q = q.Set("city", *u.City)
	}
	if u.Category != nil {
		q = q.Set("category", *u.Category)
	}
	if u.PriceRange != nil {
		q = q.Set("price_range", *u.PriceRange)
	}
	if u.WorkingHours != nil {
		q = q.Set("working_hours", u.WorkingHours)
	}
	if u.IsActive != nil {
		q = q.Set("is_active", *u.IsActive)
	}

	return q.Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
}

// Update частично обновляет бизнес (в том числе неактивный)
func (r *Repository) Update(ctx context.Context, id uuid.UUID, update domain.BusinessUpdate) error {
	query, args, err := updateQuery(id, update).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBusinessNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBusiness(row rowScanner) (*domain.Business, error) {
	var b domain.Business
	var subdomain, description, logoURL, phone, email, address, city sql.NullString
	var latitude, longitude sql.NullFloat64

	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Slug,
		&subdomain,
		&description,
		&logoURL,
		&phone,
		&email,
		&address,
		&city,
		&latitude,
		&longitude,
		&b.Category,
		&b.PriceRange,
		&b.WorkingHours,
		&b.IsActive,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Subdomain = nullString(subdomain)
	b.Description = nullString(description)
	b.LogoURL = nullString(logoURL)
	b.Phone = nullString(phone)
	b.Email = nullString(email)
	b.Address = nullString(address)
	b.City = nullString(city)
	if latitude.Valid {
		b.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		b.Longitude = &longitude.Float64
	}

	return &b, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
