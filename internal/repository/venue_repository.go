package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/buscart/buscart-backend/internal/models"
)

var ErrVenueNotFound = errors.New("venue not found")

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// Create вставляет площадку.
func (r *VenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	query := `
		INSERT INTO venues (owner_id, name, city, address, capacity, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		venue.OwnerID, venue.Name, venue.City, venue.Address, venue.Capacity, venue.Description,
	).Scan(&venue.ID, &venue.CreatedAt, &venue.UpdatedAt)
	if err != nil {
		return fmt.Errorf("venue repository: create: %w", err)
	}
	return nil
}

// GetByID возвращает площадку по ID.
func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.GetContext(ctx, &venue, `SELECT * FROM venues WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("venue repository: get %d: %w", id, err)
	}
	return &venue, nil
}

// List возвращает площадки с необязательным фильтром по городу.
func (r *VenueRepository) List(ctx context.Context, city *string, limit, offset int) ([]models.Venue, error) {
	var venues []models.Venue
	var err error
	if city != nil {
		err = r.db.SelectContext(ctx, &venues, `
			SELECT * FROM venues WHERE city = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3
		`, *city, limit, offset)
	} else {
		err = r.db.SelectContext(ctx, &venues, `
			SELECT * FROM venues ORDER BY created_at DESC LIMIT $1 OFFSET $2
		`, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("venue repository: list: %w", err)
	}
	return venues, nil
}
