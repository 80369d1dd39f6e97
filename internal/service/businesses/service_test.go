package businesses

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	businessRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/business"
	"github.com/m04kA/SMC-SalonBooking/internal/service/businesses/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type fakeBusinessRepo struct {
	list    []*domain.Business
	updated map[uuid.UUID]domain.BusinessUpdate
}

func (r *fakeBusinessRepo) List(_ context.Context, _ domain.BusinessFilter) ([]*domain.Business, error) {
	return r.list, nil
}

func (r *fakeBusinessRepo) find(match func(*domain.Business) bool) (*domain.Business, error) {
	for _, b := range r.list {
		if match(b) {
			return b, nil
		}
	}
	return nil, businessRepo.ErrBusinessNotFound
}

func (r *fakeBusinessRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Business, error) {
	return r.find(func(b *domain.Business) bool { return b.ID == id })
}

func (r *fakeBusinessRepo) GetBySlug(_ context.Context, slug string) (*domain.Business, error) {
	return r.find(func(b *domain.Business) bool { return b.Slug == slug })
}

func (r *fakeBusinessRepo) GetBySubdomain(_ context.Context, sub string) (*domain.Business, error) {
	return r.find(func(b *domain.Business) bool { return b.Subdomain != nil && *b.Subdomain == sub })
}

func (r *fakeBusinessRepo) Update(_ context.Context, id uuid.UUID, u domain.BusinessUpdate) error {
	if _, err := r.GetByID(context.Background(), id); err != nil {
		return err
	}
	if r.updated == nil {
		r.updated = map[uuid.UUID]domain.BusinessUpdate{}
	}
	r.updated[id] = u
	return nil
}

type fakeRatingRepo struct {
	stats map[uuid.UUID]domain.RatingStats
}

func (r *fakeRatingRepo) GetRatingStats(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error) {
	return r.stats, nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func weekdaysOnly() domain.WeeklySchedule {
	open := types.MustParseTimeOfDay("09:00")
	closeAt := types.MustParseTimeOfDay("18:00")
	w := domain.WeeklySchedule{}
	for _, key := range domain.WeekdayKeys {
		w[key] = domain.DaySchedule{Open: &open, Close: &closeAt}
	}
	w["saturday"] = domain.DaySchedule{}
	w["sunday"] = domain.DaySchedule{}
	return w
}

func everyDay() domain.WeeklySchedule {
	w := weekdaysOnly()
	w["sunday"] = w["monday"]
	w["saturday"] = w["monday"]
	return w
}

func newTestService(now time.Time, list ...*domain.Business) (*Service, *fakeBusinessRepo, *fakeRatingRepo) {
	repo := &fakeBusinessRepo{list: list}
	ratings := &fakeRatingRepo{stats: map[uuid.UUID]domain.RatingStats{}}
	svc := NewService(repo, ratings, logger.NewNop())
	svc.timeProvider = fixedTime{t: now}
	return svc, repo, ratings
}

func TestService_List_DecoratesAndFiltersByRating(t *testing.T) {
	good := &domain.Business{ID: uuid.New(), Name: "Fade Studio", WorkingHours: everyDay()}
	poor := &domain.Business{ID: uuid.New(), Name: "Quick Cuts", WorkingHours: everyDay()}
	unrated := &domain.Business{ID: uuid.New(), Name: "New Place", WorkingHours: everyDay()}

	svc, _, ratings := newTestService(time.Now(), good, poor, unrated)
	ratings.stats[good.ID] = domain.RatingStats{BusinessID: good.ID, AverageRating: 4.6, ReviewCount: 12}
	ratings.stats[poor.ID] = domain.RatingStats{BusinessID: poor.ID, AverageRating: 3.1, ReviewCount: 4}

	all, err := svc.List(context.Background(), &models.ListBusinessesRequest{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 4.6, all[0].AverageRating)
	assert.Equal(t, 12, all[0].ReviewCount)
	assert.Equal(t, 0, all[2].ReviewCount)

	filtered, err := svc.List(context.Background(), &models.ListBusinessesRequest{MinRating: ptr.Ptr(4.0)})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Fade Studio", filtered[0].Name)
}

func TestService_List_AvailableToday(t *testing.T) {
	weekdays := &domain.Business{ID: uuid.New(), Name: "Weekdays", WorkingHours: weekdaysOnly()}
	daily := &domain.Business{ID: uuid.New(), Name: "Daily", WorkingHours: everyDay()}
	broken := &domain.Business{ID: uuid.New(), Name: "Broken", WorkingHours: domain.WeeklySchedule{}}

	// 2026-10-18 - воскресенье
	sunday := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(sunday, weekdays, daily, broken)

	result, err := svc.List(context.Background(), &models.ListBusinessesRequest{AvailableToday: true})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Daily", result[0].Name)

	// 2026-10-21 - среда
	svc.timeProvider = fixedTime{t: time.Date(2026, 10, 21, 12, 0, 0, 0, time.UTC)}
	result, err = svc.List(context.Background(), &models.ListBusinessesRequest{AvailableToday: true})
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestService_GetBySlugAndSubdomain(t *testing.T) {
	b := &domain.Business{ID: uuid.New(), Slug: "fade-studio", Subdomain: ptr.Ptr("fade")}
	svc, _, ratings := newTestService(time.Now(), b)
	ratings.stats[b.ID] = domain.RatingStats{AverageRating: 5, ReviewCount: 1}

	resp, err := svc.GetBySlug(context.Background(), "fade-studio")
	require.NoError(t, err)
	assert.Equal(t, b.ID, resp.ID)
	assert.Equal(t, 5.0, resp.AverageRating)

	resp, err = svc.GetBySubdomain(context.Background(), "fade")
	require.NoError(t, err)
	assert.Equal(t, b.ID, resp.ID)

	_, err = svc.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestService_Update(t *testing.T) {
	b := &domain.Business{ID: uuid.New()}
	svc, repo, _ := newTestService(time.Now(), b)

	require.NoError(t, svc.Update(context.Background(), b.ID, &models.UpdateBusinessRequest{
		Name:         ptr.Ptr("Fade Studio"),
		WorkingHours: everyDay(),
	}))
	assert.Equal(t, "Fade Studio", *repo.updated[b.ID].Name)

	partial := everyDay()
	open := types.MustParseTimeOfDay("10:00")
	partial["monday"] = domain.DaySchedule{Open: &open}
	err := svc.Update(context.Background(), b.ID, &models.UpdateBusinessRequest{WorkingHours: partial})
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	err = svc.Update(context.Background(), b.ID, &models.UpdateBusinessRequest{PriceRange: ptr.Ptr(5)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Update(context.Background(), b.ID, &models.UpdateBusinessRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Update(context.Background(), uuid.New(), &models.UpdateBusinessRequest{Name: ptr.Ptr("x")})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}
