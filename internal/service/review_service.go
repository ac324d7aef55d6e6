package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/buscart/buscart-backend/internal/models"
	"github.com/buscart/buscart-backend/internal/pkg/apperror"
	"github.com/buscart/buscart-backend/internal/repository"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ExistsForTarget(ctx context.Context, userID string, target models.ReviewTarget) (bool, error)
	ListByTarget(ctx context.Context, target models.ReviewTarget) ([]models.Review, error)
	GetAverageScore(ctx context.Context, target models.ReviewTarget) (float64, int, error)
}

type ReviewService struct {
	repo ReviewRepository
}

func NewReviewService(repo ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

type CreateReviewInput struct {
	UserID string
	Target models.ReviewTarget
	Score  string
	Reason *string
}

// CanUserReview возвращает true, если пользователь ещё не оставлял отзыв
// о цели. Это быстрая предварительная проверка для UI; окончательную
// защиту от дублей дают уникальные индексы в хранилище.
func (s *ReviewService) CanUserReview(ctx context.Context, userID string, target models.ReviewTarget) (bool, error) {
	if strings.TrimSpace(userID) == "" {
		return false, apperror.New(apperror.ErrCodeValidation, "идентификатор пользователя обязателен")
	}
	if !target.Type.IsValid() {
		return false, apperror.New(apperror.ErrCodeValidation, "некорректный тип цели отзыва")
	}

	exists, err := s.repo.ExistsForTarget(ctx, userID, target)
	if err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось проверить отзывы")
	}
	return !exists, nil
}

// GetReviews возвращает все отзывы о цели.
func (s *ReviewService) GetReviews(ctx context.Context, target models.ReviewTarget) ([]models.Review, error) {
	if !target.Type.IsValid() {
		return nil, apperror.New(apperror.ErrCodeValidation, "некорректный тип цели отзыва")
	}
	reviews, err := s.repo.ListByTarget(ctx, target)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить отзывы")
	}
	// Пустая выборка отдаётся как [], а не null.
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// GetTargetRating возвращает среднюю оценку и количество отзывов о цели.
func (s *ReviewService) GetTargetRating(ctx context.Context, target models.ReviewTarget) (float64, int, error) {
	if !target.Type.IsValid() {
		return 0, 0, apperror.New(apperror.ErrCodeValidation, "некорректный тип цели отзыва")
	}
	return s.repo.GetAverageScore(ctx, target)
}

// CreateReview создаёт отзыв. Предварительная проверка отсекает очевидные
// дубли, а гонка двух одновременных отправок разрешается уникальным
// индексом и возвращается как конфликт.
func (s *ReviewService) CreateReview(ctx context.Context, input CreateReviewInput) (*models.Review, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "идентификатор пользователя обязателен")
	}
	if !input.Target.Type.IsValid() {
		return nil, apperror.New(apperror.ErrCodeValidation, "некорректный тип цели отзыва")
	}
	if input.Target.ID <= 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "идентификатор цели обязателен")
	}

	score, err := strconv.ParseFloat(input.Score, 64)
	if err != nil || score < 0 || score > 5 {
		return nil, apperror.New(apperror.ErrCodeValidation, "оценка должна быть числом от 0 до 5")
	}

	canReview, err := s.CanUserReview(ctx, input.UserID, input.Target)
	if err != nil {
		return nil, err
	}
	if !canReview {
		return nil, apperror.ErrReviewAlreadyExists
	}

	review := &models.Review{
		UserID: input.UserID,
		Score:  input.Score,
		Reason: input.Reason,
	}
	review.SetTarget(input.Target)

	if err := s.repo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, apperror.ErrReviewAlreadyExists
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать отзыв")
	}
	return review, nil
}
