package service

import (
	"context"
	"errors"
	"strings"

	"github.com/buscart/buscart-backend/internal/models"
	"github.com/buscart/buscart-backend/internal/pkg/apperror"
	"github.com/buscart/buscart-backend/internal/repository"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	GetByID(ctx context.Context, id int64) (*models.Artist, error)
	List(ctx context.Context, city *string, categoryID *int64, limit, offset int) ([]models.Artist, error)
}

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, id int64) (*models.Venue, error)
	List(ctx context.Context, city *string, limit, offset int) ([]models.Venue, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
}

// CatalogService обслуживает витрину артистов, площадок и категорий.
type CatalogService struct {
	artists    ArtistRepository
	venues     VenueRepository
	categories CategoryRepository
}

func NewCatalogService(artists ArtistRepository, venues VenueRepository, categories CategoryRepository) *CatalogService {
	return &CatalogService{artists: artists, venues: venues, categories: categories}
}

func (s *CatalogService) ListArtists(ctx context.Context, city *string, categoryID *int64, limit, offset int) ([]models.Artist, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	artists, err := s.artists.List(ctx, city, categoryID, limit, offset)
	if err != nil {
		return nil, err
	}
	if artists == nil {
		artists = []models.Artist{}
	}
	return artists, nil
}

func (s *CatalogService) GetArtist(ctx context.Context, id int64) (*models.Artist, error) {
	artist, err := s.artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return nil, apperror.ErrArtistNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить артиста")
	}
	return artist, nil
}

func (s *CatalogService) CreateArtist(ctx context.Context, artist *models.Artist) error {
	if strings.TrimSpace(artist.UserID) == "" {
		return apperror.New(apperror.ErrCodeValidation, "идентификатор пользователя обязателен")
	}
	if strings.TrimSpace(artist.StageName) == "" {
		return apperror.New(apperror.ErrCodeValidation, "сценическое имя обязательно")
	}
	if err := s.artists.Create(ctx, artist); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать профиль артиста")
	}
	return nil
}

func (s *CatalogService) ListVenues(ctx context.Context, city *string, limit, offset int) ([]models.Venue, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	venues, err := s.venues.List(ctx, city, limit, offset)
	if err != nil {
		return nil, err
	}
	if venues == nil {
		venues = []models.Venue{}
	}
	return venues, nil
}

func (s *CatalogService) GetVenue(ctx context.Context, id int64) (*models.Venue, error) {
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, apperror.ErrVenueNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить площадку")
	}
	return venue, nil
}

func (s *CatalogService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if strings.TrimSpace(venue.OwnerID) == "" {
		return apperror.New(apperror.ErrCodeValidation, "идентификатор владельца обязателен")
	}
	if strings.TrimSpace(venue.Name) == "" {
		return apperror.New(apperror.ErrCodeValidation, "название площадки обязательно")
	}
	if err := s.venues.Create(ctx, venue); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать площадку")
	}
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}
