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

// EmployeeRepository репозиторий сотрудников бизнеса
type EmployeeRepository struct {
	db DBExecutor
}

// NewEmployeeRepository создает новый экземпляр репозитория сотрудников
func NewEmployeeRepository(db DBExecutor) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

var employeeColumns = []string{
	"id",
	"business_id",
	"name",
	"photo_url",
	"position",
	"bio",
	"is_active",
	"created_at",
}

func listEmployeesQuery(businessID uuid.UUID, activeOnly bool) squirrel.SelectBuilder {
	q := psqlbuilder.Select(employeeColumns...).
		From("employees").
		Where(squirrel.Eq{"business_id": businessID})
	if activeOnly {
		q = q.Where(squirrel.Eq{"is_active": true})
	}
	return q.OrderBy("name ASC")
}

// ListByBusiness получает сотрудников бизнеса
func (r *EmployeeRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]*domain.Employee, error) {
	query, args, err := listEmployeesQuery(businessID, activeOnly).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEmployees - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEmployees - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListEmployees - scan row: %v", ErrScanRow, err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEmployees - rows error: %v", ErrScanRow, err)
	}

	return employees, nil
}

// GetByID получает сотрудника по ID
func (r *EmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	query, args, err := psqlbuilder.Select(employeeColumns...).
		From("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEmployee - build select query: %v", ErrBuildQuery, err)
	}

	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetEmployee - scan employee: %v", ErrScanRow, err)
	}

	return e, nil
}

// Create создает сотрудника
func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("employees").
		Columns("id", "business_id", "name", "photo_url", "position", "bio", "is_active").
		Values(e.ID, e.BusinessID, e.Name, e.PhotoURL, e.Position, e.Bio, e.IsActive).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateEmployee - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&e.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("%w: CreateEmployee - execute insert: %v", ErrExecQuery, err)
	}

	return e, nil
}

func updateEmployeeQuery(id uuid.UUID, u domain.EmployeeUpdate) squirrel.UpdateBuilder {
	q := psqlbuilder.Update("employees")
	if u.Name != nil {
		q = q.Set("name", *u.Name)
	}
	if u.PhotoURL != nil {
		q = q.Set("photo_url", *u.PhotoURL)
	}
	if u.Position != nil {
		q = q.Set("position", *u.Position)
	}
	if u.Bio != nil {
		q = q.Set("bio", *u.Bio)
	}
	if u.IsActive != nil {
		q = q.Set("is_active", *u.IsActive)
	}
	return q.Where(squirrel.Eq{"id": id})
}

// Update частично обновляет сотрудника
func (r *EmployeeRepository) Update(ctx context.Context, id uuid.UUID, u domain.EmployeeUpdate) error {
	if u == (domain.EmployeeUpdate{}) {
		return nil
	}

	query, args, err := updateEmployeeQuery(id, u).ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateEmployee - build update query: %v", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, r.db, "UpdateEmployee", query, args, ErrEmployeeNotFound, nil)
}

// Delete удаляет сотрудника
func (r *EmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psqlbuilder.Delete("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteEmployee - build delete query: %v", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, r.db, "DeleteEmployee", query, args, ErrEmployeeNotFound, ErrEmployeeInUse)
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var e domain.Employee
	var photoURL, position, bio sql.NullString

	err := row.Scan(
		&e.ID,
		&e.BusinessID,
		&e.Name,
		&photoURL,
		&position,
		&bio,
		&e.IsActive,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if photoURL.Valid {
		e.PhotoURL = &photoURL.String
	}
	if position.Valid {
		e.Position = &position.String
	}
	if bio.Valid {
		e.Bio = &bio.String
	}

	return &e, nil
}
