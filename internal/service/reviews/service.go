package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/booking"
	reviewRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/review"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reviews/models"
)

// Service сервис отзывов
type Service struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ListByBusiness подтвержденные отзывы бизнеса, новые первыми
func (s *Service) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.ReviewResponse, error) {
	list, err := s.reviewRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("ListByBusiness: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListByBusiness - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReviewList(list), nil
}

// Create создает отзыв.
// Отзыв с бронированием, завершенным в этом же бизнесе, сразу подтвержден; без бронирования ждет модерации
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed for business=%s: %v", req.BusinessID, err)
		return nil, err
	}

	verified := false
	if req.BookingID != nil {
		booking, err := s.bookingRepo.GetByID(ctx, *req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Create: booking id=%s not found", *req.BookingID)
				return nil, ErrBookingMismatch
			}
			s.logger.Error("Create: failed to get booking id=%s: %v", *req.BookingID, err)
			return nil, fmt.Errorf("%w: Create - failed to get booking: %v", ErrInternal, err)
		}
		if booking.BusinessID != req.BusinessID || booking.Status != domain.StatusCompleted {
			s.logger.Warn("Create: booking id=%s cannot back a review for business=%s (status=%s)",
				booking.ID, req.BusinessID, booking.Status)
			return nil, ErrBookingMismatch
		}
		verified = true
	}

	created, err := s.reviewRepo.Create(ctx, &domain.Review{
		BusinessID:        req.BusinessID,
		BookingID:         req.BookingID,
		CustomerName:      req.CustomerName,
		RatingOverall:     req.RatingOverall,
		RatingCleanliness: req.RatingCleanliness,
		RatingService:     req.RatingService,
		RatingPrice:       req.RatingPrice,
		Comment:           req.Comment,
		IsVerified:        verified,
	})
	if err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicateReview) {
			s.logger.Warn("Create: booking id=%s already has a review", *req.BookingID)
			return nil, ErrAlreadyReviewed
		}
		if errors.Is(err, reviewRepo.ErrBusinessNotFound) {
			s.logger.Warn("Create: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("Create: repository error for business=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created review id=%s for business=%s, verified=%t", created.ID, req.BusinessID, verified)
	return models.FromDomainReview(created), nil
}

// Reply сохраняет ответ бизнеса на отзыв
func (s *Service) Reply(ctx context.Context, reviewID uuid.UUID, req *models.ReplyRequest) (*models.ReviewResponse, error) {
	if err := validateReply(req.Reply); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Reply(ctx, reviewID, req.Reply); err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("Reply: review id=%s not found", reviewID)
			return nil, ErrReviewNotFound
		}
		s.logger.Error("Reply: repository error for review id=%s: %v", reviewID, err)
		return nil, fmt.Errorf("%w: Reply - repository error: %v", ErrInternal, err)
	}

	rv, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		s.logger.Error("Reply: failed to reload review id=%s: %v", reviewID, err)
		return nil, fmt.Errorf("%w: Reply - reload: %v", ErrInternal, err)
	}

	s.logger.Info("Reply: replied to review id=%s", reviewID)
	return models.FromDomainReview(rv), nil
}

// RatingBreakdown средние оценки по категориям. Без отзывов все нули
func (s *Service) RatingBreakdown(ctx context.Context, businessID uuid.UUID) (*models.RatingBreakdownResponse, error) {
	b, err := s.reviewRepo.RatingBreakdown(ctx, businessID)
	if err != nil {
		s.logger.Error("RatingBreakdown: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: RatingBreakdown - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBreakdown(b), nil
}
