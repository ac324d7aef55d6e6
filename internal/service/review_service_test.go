package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/buscart/buscart-backend/internal/models"
	"github.com/buscart/buscart-backend/internal/pkg/apperror"
	"github.com/buscart/buscart-backend/internal/repository"
)

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	if args.Error(0) == nil {
		review.ID = 1
		review.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *mockReviewRepo) ExistsForTarget(ctx context.Context, userID string, target models.ReviewTarget) (bool, error) {
	args := m.Called(ctx, userID, target)
	return args.Bool(0), args.Error(1)
}

func (m *mockReviewRepo) ListByTarget(ctx context.Context, target models.ReviewTarget) ([]models.Review, error) {
	args := m.Called(ctx, target)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *mockReviewRepo) GetAverageScore(ctx context.Context, target models.ReviewTarget) (float64, int, error) {
	args := m.Called(ctx, target)
	return args.Get(0).(float64), args.Int(1), args.Error(2)
}

func TestReviewService_CanUserReview(t *testing.T) {
	repo := new(mockReviewRepo)
	svc := NewReviewService(repo)
	ctx := context.Background()

	target := models.ReviewTarget{Type: models.TargetTypeArtist, ID: 42}

	repo.On("ExistsForTarget", ctx, "u1", target).Return(false, nil)
	canReview, err := svc.CanUserReview(ctx, "u1", target)
	assert.NoError(t, err)
	assert.True(t, canReview)

	repo.On("ExistsForTarget", ctx, "u2", target).Return(true, nil)
	canReview, err = svc.CanUserReview(ctx, "u2", target)
	assert.NoError(t, err)
	assert.False(t, canReview)
}

func TestReviewService_CanUserReview_Validation(t *testing.T) {
	repo := new(mockReviewRepo)
	svc := NewReviewService(repo)
	ctx := context.Background()

	_, err := svc.CanUserReview(ctx, "", models.ReviewTarget{Type: models.TargetTypeArtist, ID: 1})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.CanUserReview(ctx, "u1", models.ReviewTarget{Type: "user", ID: 1})
	assert.True(t, apperror.IsValidation(err))
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	repo := new(mockReviewRepo)
	svc := NewReviewService(repo)
	ctx := context.Background()

	target := models.ReviewTarget{Type: models.TargetTypeArtist, ID: 42}
	repo.On("ExistsForTarget", ctx, "u1", target).Return(false, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*models.Review")).Return(nil)

	review, err := svc.CreateReview(ctx, CreateReviewInput{
		UserID: "u1",
		Target: target,
		Score:  "5",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.TargetTypeArtist, review.Type)
	assert.NotNil(t, review.ArtistID)
	assert.Equal(t, int64(42), *review.ArtistID)
	assert.Nil(t, review.EventID)
	assert.Nil(t, review.VenueID)
}

func TestReviewService_CreateReview_AlreadyReviewed(t *testing.T) {
	repo := new(mockReviewRepo)
	svc := NewReviewService(repo)
	ctx := context.Background()

	target := models.ReviewTarget{Type: models.TargetTypeArtist, ID: 42}
	repo.On("ExistsForTarget", ctx, "u1", target).Return(true, nil)

	_, err := svc.CreateReview(ctx, CreateReviewInput{UserID: "u1", Target: target, Score: "5"})

	assert.True(t, apperror.IsConflict(err))
	repo.AssertNotCalled(t, "Create")
}

// Гонка двух отправок: обе прошли предварительную проверку, но вторая
// вставка упирается в уникальный индекс и возвращается как конфликт.
func TestReviewService_CreateReview_DuplicateRace(t *testing.T) {
	repo := new(mockReviewRepo)
	svc := NewReviewService(repo)
	ctx := context.Background()

	target := models.ReviewTarget{Type: models.TargetTypeVenue, ID: 7}
	repo.On("ExistsForTarget", ctx, "u1", target).Return(false, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*models.Review")).Return(repository.ErrDuplicateReview)

	_, err := svc.CreateReview(ctx, CreateReviewInput{UserID: "u1", Target: target, Score: "4.5"})

	assert.True(t, apperror.IsConflict(err))
}

func TestReviewService_CreateReview_InvalidScore(t *testing.T) {
	repo := new(mockReviewRepo)
	svc := NewReviewService(repo)
	ctx := context.Background()

	target := models.ReviewTarget{Type: models.TargetTypeArtist, ID: 42}

	for _, score := range []string{"", "abc", "-1", "5.5"} {
		_, err := svc.CreateReview(ctx, CreateReviewInput{UserID: "u1", Target: target, Score: score})
		assert.True(t, apperror.IsValidation(err), "score %q", score)
	}

	repo.AssertNotCalled(t, "ExistsForTarget")
}

func TestReviewService_GetReviews(t *testing.T) {
	repo := new(mockReviewRepo)
	svc := NewReviewService(repo)
	ctx := context.Background()

	target := models.ReviewTarget{Type: models.TargetTypeEvent, ID: 3}
	eventID := int64(3)
	stored := []models.Review{
		{ID: 1, UserID: "u1", Type: models.TargetTypeEvent, Score: "5.0", EventID: &eventID},
		{ID: 2, UserID: "u2", Type: models.TargetTypeEvent, Score: "3.5", EventID: &eventID},
	}
	repo.On("ListByTarget", ctx, target).Return(stored, nil)

	reviews, err := svc.GetReviews(ctx, target)
	assert.NoError(t, err)
	assert.Equal(t, stored, reviews)

	// Повторное чтение без записей между ними возвращает то же самое.
	again, err := svc.GetReviews(ctx, target)
	assert.NoError(t, err)
	assert.Equal(t, reviews, again)
}

func TestReviewService_GetReviews_EmptyIsNotNil(t *testing.T) {
	repo := new(mockReviewRepo)
	svc := NewReviewService(repo)
	ctx := context.Background()

	target := models.ReviewTarget{Type: models.TargetTypeVenue, ID: 7}
	repo.On("ListByTarget", ctx, target).Return(([]models.Review)(nil), nil)

	reviews, err := svc.GetReviews(ctx, target)
	assert.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Len(t, reviews, 0)
}

func TestReviewService_GetReviews_InvalidType(t *testing.T) {
	repo := new(mockReviewRepo)
	svc := NewReviewService(repo)
	ctx := context.Background()

	_, err := svc.GetReviews(ctx, models.ReviewTarget{Type: "user", ID: 1})
	assert.True(t, apperror.IsValidation(err))
}
