package reviews

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reviews/models"
)

func validateRating(field string, v int) error {
	if v < domain.MinRating || v > domain.MaxRating {
		return fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidInput, field, domain.MinRating, domain.MaxRating)
	}
	return nil
}

func validateOptionalRating(field string, v *int) error {
	if v == nil {
		return nil
	}
	return validateRating(field, *v)
}

func validateCreate(req *models.CreateReviewRequest) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if err := validateRating("ratingOverall", req.RatingOverall); err != nil {
		return err
	}
	if err := validateOptionalRating("ratingCleanliness", req.RatingCleanliness); err != nil {
		return err
	}
	if err := validateOptionalRating("ratingService", req.RatingService); err != nil {
		return err
	}
	if err := validateOptionalRating("ratingPrice", req.RatingPrice); err != nil {
		return err
	}
	if req.Comment != nil && utf8.RuneCountInString(*req.Comment) > domain.MaxReviewCommentLength {
		return fmt.Errorf("%w: comment must be at most %d characters", ErrInvalidInput, domain.MaxReviewCommentLength)
	}
	return nil
}

func validateReply(reply string) error {
	if strings.TrimSpace(reply) == "" {
		return fmt.Errorf("%w: reply must not be empty", ErrInvalidInput)
	}
	if utf8.RuneCountInString(reply) > domain.MaxReviewReplyLength {
		return fmt.Errorf("%w: reply must be at most %d characters", ErrInvalidInput, domain.MaxReviewReplyLength)
	}
	return nil
}
