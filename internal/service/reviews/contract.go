package reviews

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*domain.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	Create(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	Reply(ctx context.Context, id uuid.UUID, reply string) error
	RatingBreakdown(ctx context.Context, businessID uuid.UUID) (*domain.RatingBreakdown, error)
}

// BookingRepository нужен для подтверждения отзыва завершенным визитом
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
