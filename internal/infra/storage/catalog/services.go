package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

// ServiceRepository репозиторий услуг бизнеса
type ServiceRepository struct {
	db DBExecutor
}

// NewServiceRepository создает новый экземпляр репозитория услуг
func NewServiceRepository(db DBExecutor) *ServiceRepository {
	return &ServiceRepository{db: db}
}

var serviceColumns = []string{
	"id",
	"business_id",
	"name",
	"description",
	"price",
	"duration_minutes",
	"is_active",
	"created_at",
}

// listServicesQuery услуги бизнеса по названию; activeOnly - только активные (публичный каталог)
func listServicesQuery(businessID uuid.UUID, activeOnly bool) squirrel.SelectBuilder {
	q := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"business_id": businessID})
	if activeOnly {
		q = q.Where(squirrel.Eq{"is_active": true})
	}
	return q.OrderBy("name ASC")
}

// ListByBusiness получает услуги бизнеса
func (r *ServiceRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]*domain.Service, error) {
	query, args, err := listServicesQuery(businessID, activeOnly).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetByID получает услугу по ID
func (r *ServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanService(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return s, nil
}

// Create создает услугу
func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("services").
		Columns("id", "business_id", "name", "description", "price", "duration_minutes", "is_active").
		Values(s.ID, s.BusinessID, s.Name, s.Description, s.Price, s.DurationMinutes, s.IsActive).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("%w: CreateService - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

func updateServiceQuery(id uuid.UUID, u domain.ServiceUpdate) squirrel.UpdateBuilder {
	q := psqlbuilder.Update("services")
	if u.Name != nil {
		q = q.Set("name", *u.Name)
	}
	if u.Description != nil {
		q = q.Set("description", *u.Description)
	}
	if u.Price != nil {
		q = q.Set("price", *u.Price)
	}
	if u.DurationMinutes != nil {
		q = q.Set("duration_minutes", *u.DurationMinutes)
	}
	if u.IsActive != nil {
		q = q.Set("is_active", *u.IsActive)
	}
	return q.Where(squirrel.Eq{"id": id})
}

// Update частично обновляет услугу. Пустое обновление ничего не делает
func (r *ServiceRepository) Update(ctx context.Context, id uuid.UUID, u domain.ServiceUpdate) error {
	if u == (domain.ServiceUpdate{}) {
		return nil
	}

	query, args, err := updateServiceQuery(id, u).ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateService - build update query: %v", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, r.db, "UpdateService", query, args, ErrServiceNotFound, nil)
}

// Delete удаляет услугу
func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psqlbuilder.Delete("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteService - build delete query: %v", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, r.db, "DeleteService", query, args, ErrServiceNotFound, ErrServiceInUse)
}

func scanService(row rowScanner) (*domain.Service, error) {
	var s domain.Service
	var description sql.NullString

	err := row.Scan(
		&s.ID,
		&s.BusinessID,
		&s.Name,
		&description,
		&s.Price,
		&s.DurationMinutes,
		&s.IsActive,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		s.Description = &description.String
	}

	return &s, nil
}
