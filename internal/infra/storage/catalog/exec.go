package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// execAffectingOne выполняет UPDATE/DELETE и возвращает notFound, если ни одна строка не затронута.
// Нарушение внешнего ключа возвращается как referenced, если он задан
func execAffectingOne(ctx context.Context, db DBExecutor, op string, query string, args []interface{}, notFound, referenced error) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		if referenced != nil && isForeignKeyViolation(err) {
			return referenced
		}
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
