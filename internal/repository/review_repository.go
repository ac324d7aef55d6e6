package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/buscart/buscart-backend/internal/models"
)

var ErrDuplicateReview = errors.New("review already exists for this target")

// pgUniqueViolation — код ошибки PostgreSQL для нарушения уникальности.
const pgUniqueViolation = "23505"

type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// targetColumn выбирает колонку внешнего ключа по типу цели.
func targetColumn(t models.TargetType) (string, error) {
	switch t {
	case models.TargetTypeArtist:
		return "artist_id", nil
	case models.TargetTypeEvent:
		return "event_id", nil
	case models.TargetTypeVenue:
		return "venue_id", nil
	default:
		return "", fmt.Errorf("review repository: unknown target type %q", t)
	}
}

// Create вставляет отзыв. Частичные уникальные индексы по (user_id, цель)
// служат окончательной защитой от дублей: их срабатывание возвращается
// как ErrDuplicateReview даже при гонке двух одновременных отправок.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (user_id, type, score, reason, artist_id, event_id, venue_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		review.UserID, review.Type, review.Score, review.Reason,
		review.ArtistID, review.EventID, review.VenueID,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return ErrDuplicateReview
		}
		return fmt.Errorf("review repository: create: %w", err)
	}
	return nil
}

// ExistsForTarget проверяет, оставлял ли пользователь отзыв о цели.
func (r *ReviewRepository) ExistsForTarget(ctx context.Context, userID string, target models.ReviewTarget) (bool, error) {
	column, err := targetColumn(target.Type)
	if err != nil {
		return false, err
	}

	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM reviews WHERE user_id = $1 AND %s = $2`, column)
	if err := r.db.GetContext(ctx, &count, query, userID, target.ID); err != nil {
		return false, fmt.Errorf("review repository: exists for target: %w", err)
	}
	return count > 0, nil
}

// ListByTarget возвращает все отзывы о цели. Порядок не гарантируется.
func (r *ReviewRepository) ListByTarget(ctx context.Context, target models.ReviewTarget) ([]models.Review, error) {
	column, err := targetColumn(target.Type)
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	query := fmt.Sprintf(`
		SELECT id, user_id, type, score, reason, artist_id, event_id, venue_id, created_at
		FROM reviews WHERE %s = $1
	`, column)
	if err := r.db.SelectContext(ctx, &reviews, query, target.ID); err != nil {
		return nil, fmt.Errorf("review repository: list by target: %w", err)
	}
	return reviews, nil
}

// GetAverageScore возвращает среднюю оценку и количество отзывов о цели.
func (r *ReviewRepository) GetAverageScore(ctx context.Context, target models.ReviewTarget) (float64, int, error) {
	column, err := targetColumn(target.Type)
	if err != nil {
		return 0, 0, err
	}

	var result struct {
		Avg   float64 `db:"avg"`
		Count int     `db:"count"`
	}
	query := fmt.Sprintf(`
		SELECT COALESCE(AVG(score), 0) as avg, COUNT(*) as count FROM reviews WHERE %s = $1
	`, column)
	if err := r.db.GetContext(ctx, &result, query, target.ID); err != nil {
		return 0, 0, fmt.Errorf("review repository: average score: %w", err)
	}
	return result.Avg, result.Count, nil
}
