package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// execOnlyDB отвечает на ExecContext заданной ошибкой или числом затронутых строк
type execOnlyDB struct {
	err      error
	affected int64
}

func (d *execOnlyDB) ExecContext(_ context.Context, _ string, _ ...interface{}) (sql.Result, error) {
	if d.err != nil {
		return nil, d.err
	}
	return driverResult(d.affected), nil
}

func (d *execOnlyDB) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not supported")
}

func (d *execOnlyDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type driverResult int64

func (r driverResult) LastInsertId() (int64, error) { return 0, nil }
func (r driverResult) RowsAffected() (int64, error) { return int64(r), nil }

func fkError() error {
	return &pq.Error{Code: "23503", Constraint: "bookings_service_id_fkey"}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(fkError()))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("delete: %w", fkError())))
	assert.False(t, isForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(errors.New("connection reset")))
}

func TestDelete_ReferencedByBookings(t *testing.T) {
	err := NewServiceRepository(&execOnlyDB{err: fkError()}).Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrServiceInUse)
	assert.NotErrorIs(t, err, ErrExecQuery)

	err = NewEmployeeRepository(&execOnlyDB{err: fkError()}).Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrEmployeeInUse)
}

func TestDelete_Outcomes(t *testing.T) {
	repo := NewServiceRepository(&execOnlyDB{affected: 0})
	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), ErrServiceNotFound)

	repo = NewServiceRepository(&execOnlyDB{affected: 1})
	assert.NoError(t, repo.Delete(context.Background(), uuid.New()))

	repo = NewServiceRepository(&execOnlyDB{err: errors.New("connection reset")})
	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), ErrExecQuery)
}

func TestUpdate_ForeignKeyErrorStaysInternal(t *testing.T) {
	name := "Стрижка"
	err := NewServiceRepository(&execOnlyDB{err: fkError()}).Update(context.Background(), uuid.New(), domain.ServiceUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrExecQuery)
}
