package models

import "time"

// TargetType определяет, к какой сущности привязан отзыв.
type TargetType string

const (
	TargetTypeArtist TargetType = "artist"
	TargetTypeEvent  TargetType = "event"
	TargetTypeVenue  TargetType = "venue"
)

func (t TargetType) IsValid() bool {
	switch t {
	case TargetTypeArtist, TargetTypeEvent, TargetTypeVenue:
		return true
	}
	return false
}

// ReviewTarget — тегированная цель отзыва: тип плюс ровно один идентификатор.
// Инвариант "заполнен ровно один внешний ключ" закреплён самим типом,
// три nullable колонки остаются только в строке хранилища.
type ReviewTarget struct {
	Type TargetType
	ID   int64
}

// Review описывает отзыв пользователя об артисте, событии или площадке.
// Оценка хранится строкой, как её отдаёт NUMERIC колонка.
type Review struct {
	ID        int64      `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"user_id"`
	Type      TargetType `db:"type" json:"type"`
	Score     string     `db:"score" json:"score"`
	Reason    *string    `db:"reason" json:"reason,omitempty"`
	ArtistID  *int64     `db:"artist_id" json:"artist_id,omitempty"`
	EventID   *int64     `db:"event_id" json:"event_id,omitempty"`
	VenueID   *int64     `db:"venue_id" json:"venue_id,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// Target восстанавливает тегированную цель из строки хранилища.
func (r *Review) Target() ReviewTarget {
	target := ReviewTarget{Type: r.Type}
	switch r.Type {
	case TargetTypeArtist:
		if r.ArtistID != nil {
			target.ID = *r.ArtistID
		}
	case TargetTypeEvent:
		if r.EventID != nil {
			target.ID = *r.EventID
		}
	case TargetTypeVenue:
		if r.VenueID != nil {
			target.ID = *r.VenueID
		}
	}
	return target
}

// SetTarget раскладывает цель по колонкам строки, обнуляя остальные.
func (r *Review) SetTarget(target ReviewTarget) {
	r.Type = target.Type
	r.ArtistID, r.EventID, r.VenueID = nil, nil, nil
	id := target.ID
	switch target.Type {
	case TargetTypeArtist:
		r.ArtistID = &id
	case TargetTypeEvent:
		r.EventID = &id
	case TargetTypeVenue:
		r.VenueID = &id
	}
}
