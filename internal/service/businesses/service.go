package businesses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	businessRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/business"
	"github.com/m04kA/SMC-SalonBooking/internal/service/businesses/models"
	"github.com/m04kA/SMC-SalonBooking/internal/slots"
)

// Service каталог бизнесов
type Service struct {
	businessRepo BusinessRepository
	ratingRepo   RatingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(businessRepo BusinessRepository, ratingRepo RatingRepository, logger Logger) *Service {
	return &Service{
		businessRepo: businessRepo,
		ratingRepo:   ratingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает активные бизнесы, подходящие под фильтр, с рейтингом
func (s *Service) List(ctx context.Context, req *models.ListBusinessesRequest) ([]models.BusinessResponse, error) {
	list, err := s.businessRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if err := s.decorate(ctx, list); err != nil {
		return nil, err
	}

	if req.MinRating != nil {
		list = filterBusinesses(list, func(b *domain.Business) bool {
			return b.AverageRating >= *req.MinRating
		})
	}

	if req.AvailableToday {
		today := s.timeProvider.Now()
		list = filterBusinesses(list, func(b *domain.Business) bool {
			day, err := slots.CurrentDaySchedule(b.WorkingHours, today)
			if err != nil {
				s.logger.Warn("List: business id=%s has broken working hours: %v", b.ID, err)
				return false
			}
			return slots.IsBusinessOpen(day)
		})
	}

	s.logger.Info("List: found %d businesses", len(list))
	return models.FromDomainBusinessList(list), nil
}

// GetByID получает бизнес по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BusinessResponse, error) {
	return s.getOne(ctx, "GetByID", id.String(), func() (*domain.Business, error) {
		return s.businessRepo.GetByID(ctx, id)
	})
}

// GetBySlug получает бизнес по slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.BusinessResponse, error) {
	return s.getOne(ctx, "GetBySlug", slug, func() (*domain.Business, error) {
		return s.businessRepo.GetBySlug(ctx, slug)
	})
}

// GetBySubdomain получает бизнес по поддомену сайта
func (s *Service) GetBySubdomain(ctx context.Context, subdomain string) (*models.BusinessResponse, error) {
	return s.getOne(ctx, "GetBySubdomain", subdomain, func() (*domain.Business, error) {
		return s.businessRepo.GetBySubdomain(ctx, subdomain)
	})
}

// Update частично обновляет профиль бизнеса.
// Расписание проверяется до записи: все семь дней, у каждого дня есть и open и close или ни одного
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateBusinessRequest) error {
	if err := validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed for business id=%s: %v", id, err)
		return err
	}

	update := req.ToDomainUpdate()
	if update.IsEmpty() {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if err := s.businessRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("Update: business id=%s not found", id)
			return ErrBusinessNotFound
		}
		s.logger.Error("Update: repository error for business id=%s: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated business id=%s", id)
	return nil
}

func (s *Service) getOne(ctx context.Context, op, key string, get func() (*domain.Business, error)) (*models.BusinessResponse, error) {
	b, err := get()
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("%s: business %s not found", op, key)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("%s: repository error for business %s: %v", op, key, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if err := s.decorate(ctx, []*domain.Business{b}); err != nil {
		return nil, err
	}

	return models.FromDomainBusiness(b), nil
}

// decorate проставляет средний рейтинг и число отзывов
func (s *Service) decorate(ctx context.Context, list []*domain.Business) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(list))
	for _, b := range list {
		ids = append(ids, b.ID)
	}

	stats, err := s.ratingRepo.GetRatingStats(ctx, ids)
	if err != nil {
		s.logger.Error("decorate: failed to get rating stats: %v", err)
		return fmt.Errorf("%w: failed to get rating stats: %v", ErrInternal, err)
	}

	for _, b := range list {
		st := stats[b.ID]
		b.AverageRating = st.AverageRating
		b.ReviewCount = st.ReviewCount
	}

	return nil
}

func filterBusinesses(list []*domain.Business, keep func(*domain.Business) bool) []*domain.Business {
	out := make([]*domain.Business, 0, len(list))
	for _, b := range list {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

func validateUpdate(req *models.UpdateBusinessRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) == "" {
		return fmt.Errorf("%w: category must not be empty", ErrInvalidInput)
	}
	if req.PriceRange != nil && (*req.PriceRange < domain.MinPriceRange || *req.PriceRange > domain.MaxPriceRange) {
		return fmt.Errorf("%w: priceRange must be between %d and %d", ErrInvalidInput, domain.MinPriceRange, domain.MaxPriceRange)
	}
	if req.WorkingHours != nil {
		if err := req.WorkingHours.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
	}
	return nil
}
