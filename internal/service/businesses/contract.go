package businesses

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	List(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Business, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*domain.Business, error)
	Update(ctx context.Context, id uuid.UUID, update domain.BusinessUpdate) error
}

// RatingRepository источник агрегированных оценок по подтвержденным отзывам
type RatingRepository interface {
	GetRatingStats(ctx context.Context, businessIDs []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
