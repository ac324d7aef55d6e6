package models

import "time"

// RequestStatus описывает статус заявки на бронирование.
type RequestStatus string

const (
	RequestStatusOpen       RequestStatus = "open"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusOpen, RequestStatusInProgress, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo проверяет допустимость перехода между статусами.
// Из cancelled и completed выхода нет.
func (s RequestStatus) CanTransitionTo(newStatus RequestStatus) bool {
	transitions := map[RequestStatus][]RequestStatus{
		RequestStatusOpen:       {RequestStatusInProgress, RequestStatusCancelled, RequestStatusCompleted},
		RequestStatusInProgress: {RequestStatusCompleted},
		RequestStatusCompleted:  {},
		RequestStatusCancelled:  {},
	}

	for _, allowed := range transitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// ResponseStatus описывает статус отклика: принят или отклонён.
type ResponseStatus string

const (
	ResponseStatusInProgress ResponseStatus = "in_progress"
	ResponseStatusCancelled  ResponseStatus = "cancelled"
)

// ResponseStatusFor возвращает статус отклика по флагу принятия.
func ResponseStatusFor(accepted bool) ResponseStatus {
	if accepted {
		return ResponseStatusInProgress
	}
	return ResponseStatusCancelled
}

// HiringRequest описывает заявку клиента на бронирование артиста или площадки.
// Целью заявки служит artist_id либо venue_id; взаимная исключительность
// не закреплена на уровне схемы, её контролирует сервисный слой.
type HiringRequest struct {
	ID        int64         `db:"id" json:"id"`
	ClientID  string        `db:"client_id" json:"client_id"`
	ArtistID  *int64        `db:"artist_id" json:"artist_id,omitempty"`
	VenueID   *int64        `db:"venue_id" json:"venue_id,omitempty"`
	EventDate time.Time     `db:"event_date" json:"event_date"`
	Details   string        `db:"details" json:"details"`
	Status    RequestStatus `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`

	Responses []HiringResponse `json:"responses,omitempty"`
}

// HiringResponse представляет отклик артиста на заявку.
type HiringResponse struct {
	ID        int64          `db:"id" json:"id"`
	RequestID int64          `db:"request_id" json:"request_id"`
	ArtistID  int64          `db:"artist_id" json:"artist_id"`
	Proposal  string         `db:"proposal" json:"proposal"`
	Message   *string        `db:"message" json:"message,omitempty"`
	Status    ResponseStatus `db:"status" json:"status"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// NormalizeEventDate отбрасывает время суток: берётся календарная дата в том
// виде, как её записал вызывающий, и закрепляется на полночь UTC.
func NormalizeEventDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
