package dto

import (
	"fmt"
	"time"
)

// CreateHiringRequestRequest — тело POST /api/hiring/requests.
type CreateHiringRequestRequest struct {
	ArtistID  *int64 `json:"artist_id"`
	VenueID   *int64 `json:"venue_id"`
	EventDate string `json:"event_date" binding:"required"`
	Details   string `json:"details" binding:"required"`
}

// CreateHiringResponseRequest — тело POST /api/hiring/requests/:id/responses.
type CreateHiringResponseRequest struct {
	ArtistID int64   `json:"artist_id" binding:"required"`
	Proposal string  `json:"proposal" binding:"required"`
	Accepted *bool   `json:"accepted" binding:"required"`
	Message  *string `json:"message"`
}

// CreateReviewRequest — тело POST /api/reviews.
type CreateReviewRequest struct {
	Type     string  `json:"type" binding:"required,oneof=artist event venue"`
	TargetID int64   `json:"target_id" binding:"required"`
	Score    string  `json:"score" binding:"required"`
	Reason   *string `json:"reason"`
}

// CreateArtistRequest — тело POST /api/artists.
type CreateArtistRequest struct {
	StageName   string   `json:"stage_name" binding:"required"`
	CategoryID  *int64   `json:"category_id"`
	City        *string  `json:"city"`
	PriceMin    *float64 `json:"price_min"`
	PriceMax    *float64 `json:"price_max"`
	Description *string  `json:"description"`
}

// CreateVenueRequest — тело POST /api/venues.
type CreateVenueRequest struct {
	Name        string  `json:"name" binding:"required"`
	City        *string `json:"city"`
	Address     *string `json:"address"`
	Capacity    *int    `json:"capacity"`
	Description *string `json:"description"`
}

// eventDateLayouts — допустимые форматы даты события. Время суток,
// если оно пришло, отбрасывается при нормализации.
var eventDateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseEventDate разбирает дату события в одном из допустимых форматов.
func ParseEventDate(raw string) (time.Time, error) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("дата события должна быть в формате YYYY-MM-DD или RFC 3339: %q", raw)
}
