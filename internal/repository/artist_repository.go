package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/buscart/buscart-backend/internal/models"
)

var ErrArtistNotFound = errors.New("artist not found")

type ArtistRepository struct {
	db *sqlx.DB
}

func NewArtistRepository(db *sqlx.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// Create вставляет профиль артиста.
func (r *ArtistRepository) Create(ctx context.Context, artist *models.Artist) error {
	query := `
		INSERT INTO artists (user_id, stage_name, category_id, city, price_min, price_max, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		artist.UserID, artist.StageName, artist.CategoryID, artist.City,
		artist.PriceMin, artist.PriceMax, artist.Description,
	).Scan(&artist.ID, &artist.CreatedAt, &artist.UpdatedAt)
	if err != nil {
		return fmt.Errorf("artist repository: create: %w", err)
	}
	return nil
}

// GetByID возвращает артиста по ID.
func (r *ArtistRepository) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.GetContext(ctx, &artist, `SELECT * FROM artists WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, fmt.Errorf("artist repository: get %d: %w", id, err)
	}
	return &artist, nil
}

// List возвращает артистов с необязательными фильтрами по городу и категории.
func (r *ArtistRepository) List(ctx context.Context, city *string, categoryID *int64, limit, offset int) ([]models.Artist, error) {
	query := `SELECT * FROM artists WHERE 1=1`
	args := []interface{}{}

	if city != nil {
		args = append(args, *city)
		query += fmt.Sprintf(` AND city = $%d`, len(args))
	}
	if categoryID != nil {
		args = append(args, *categoryID)
		query += fmt.Sprintf(` AND category_id = $%d`, len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))
	args = append(args, offset)
	query += fmt.Sprintf(` OFFSET $%d`, len(args))

	var artists []models.Artist
	if err := r.db.SelectContext(ctx, &artists, query, args...); err != nil {
		return nil, fmt.Errorf("artist repository: list: %w", err)
	}
	return artists, nil
}
