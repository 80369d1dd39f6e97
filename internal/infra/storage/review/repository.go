package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

// Repository репозиторий отзывов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var reviewColumns = []string{
	"id",
	"business_id",
	"booking_id",
	"customer_name",
	"rating_overall",
	"rating_cleanliness",
	"rating_service",
	"rating_price",
	"comment",
	"reply",
	"is_verified",
	"created_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func listByBusinessQuery(businessID uuid.UUID) squirrel.SelectBuilder {
	return psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"business_id": businessID, "is_verified": true}).
		OrderBy("created_at DESC")
}

// ListByBusiness получает подтвержденные отзывы бизнеса, новые первыми
func (r *Repository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*domain.Review, error) {
	query, args, err := listByBusinessQuery(businessID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - scan row: %v", ErrScanRow, err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// GetByID получает отзыв по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rv, err := scanReview(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan review: %v", ErrScanRow, err)
	}

	return rv, nil
}

// Create создает отзыв
func (r *Repository) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	if rv.ID == uuid.Nil {
		rv.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("reviews").
		Columns(
			"id",
			"business_id",
			"booking_id",
			"customer_name",
			"rating_overall",
			"rating_cleanliness",
			"rating_service",
			"rating_price",
			"comment",
			"is_verified",
		).
		Values(
			rv.ID,
			rv.BusinessID,
			rv.BookingID,
			rv.CustomerName,
			rv.RatingOverall,
			rv.RatingCleanliness,
			rv.RatingService,
			rv.RatingPrice,
			rv.Comment,
			rv.IsVerified,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&rv.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateReview
		}
		if isForeignKeyViolation(err) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return rv, nil
}

// Reply сохраняет ответ бизнеса на отзыв
func (r *Repository) Reply(ctx context.Context, id uuid.UUID, reply string) error {
	query, args, err := psqlbuilder.Update("reviews").
		Set("reply", reply).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reply - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reply - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reply - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}

// breakdownQuery средние по подтвержденным отзывам; отсутствующая частная оценка считается нулем
func breakdownQuery(businessID uuid.UUID) squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"COALESCE(AVG(rating_overall), 0)",
		"COALESCE(AVG(COALESCE(rating_cleanliness, 0)), 0)",
		"COALESCE(AVG(COALESCE(rating_service, 0)), 0)",
		"COALESCE(AVG(COALESCE(rating_price, 0)), 0)",
	).
		From("reviews").
		Where(squirrel.Eq{"business_id": businessID, "is_verified": true})
}

// RatingBreakdown считает средние оценки бизнеса по категориям
func (r *Repository) RatingBreakdown(ctx context.Context, businessID uuid.UUID) (*domain.RatingBreakdown, error) {
	query, args, err := breakdownQuery(businessID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: RatingBreakdown - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.RatingBreakdown
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&b.Overall, &b.Cleanliness, &b.Service, &b.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: RatingBreakdown - scan: %v", ErrScanRow, err)
	}

	return &b, nil
}

func ratingStatsQuery(businessIDs []uuid.UUID) squirrel.SelectBuilder {
	ids := make([]string, 0, len(businessIDs))
	for _, id := range businessIDs {
		ids = append(ids, id.String())
	}

	return psqlbuilder.Select("business_id", "AVG(rating_overall)", "COUNT(*)").
		From("reviews").
		Where(squirrel.Eq{"business_id": ids, "is_verified": true}).
		GroupBy("business_id")
}

// GetRatingStats средний рейтинг и количество подтвержденных отзывов по списку бизнесов.
// Бизнесы без отзывов в результат не попадают
func (r *Repository) GetRatingStats(ctx context.Context, businessIDs []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error) {
	stats := make(map[uuid.UUID]domain.RatingStats, len(businessIDs))
	if len(businessIDs) == 0 {
		return stats, nil
	}

	query, args, err := ratingStatsQuery(businessIDs).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRatingStats - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRatingStats - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.RatingStats
		if err := rows.Scan(&s.BusinessID, &s.AverageRating, &s.ReviewCount); err != nil {
			return nil, fmt.Errorf("%w: GetRatingStats - scan row: %v", ErrScanRow, err)
		}
		stats[s.BusinessID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRatingStats - rows error: %v", ErrScanRow, err)
	}

	return stats, nil
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var rv domain.Review
	var bookingID uuid.NullUUID
	var cleanliness, service, price sql.NullInt32
	var comment, reply sql.NullString

	err := row.Scan(
		&rv.ID,
		&rv.BusinessID,
		&bookingID,
		&rv.CustomerName,
		&rv.RatingOverall,
		&cleanliness,
		&service,
		&price,
		&comment,
		&reply,
		&rv.IsVerified,
		&rv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if bookingID.Valid {
		rv.BookingID = &bookingID.UUID
	}
	rv.RatingCleanliness = nullInt(cleanliness)
	rv.RatingService = nullInt(service)
	rv.RatingPrice = nullInt(price)
	if comment.Valid {
		rv.Comment = &comment.String
	}
	if reply.Valid {
		rv.Reply = &reply.String
	}

	return &rv, nil
}

func nullInt(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}

// isUniqueViolation 23505: на одно бронирование не больше одного отзыва (reviews_booking_id_key)
func isUniqueViolation(err error) bool {
	return hasPQCode(err, uniqueViolation)
}

// isForeignKeyViolation бронирование проверяется сервисом заранее, поэтому нарушение ключа означает несуществующий бизнес
func isForeignKeyViolation(err error) bool {
	return hasPQCode(err, foreignKeyViolation)
}

func hasPQCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
