package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/buscart/buscart-backend/internal/models"
)

var (
	ErrRequestNotFound = errors.New("hiring request not found")
	ErrRequestClosed   = errors.New("hiring request status changed")
)

type HiringRepository struct {
	db *sqlx.DB
}

func NewHiringRepository(db *sqlx.DB) *HiringRepository {
	return &HiringRepository{db: db}
}

// ListActive возвращает заявки в статусе open. Порядок не гарантируется.
func (r *HiringRepository) ListActive(ctx context.Context) ([]models.HiringRequest, error) {
	var requests []models.HiringRequest
	err := r.db.SelectContext(ctx, &requests,
		`SELECT * FROM hiring_requests WHERE status = $1`, models.RequestStatusOpen)
	if err != nil {
		return nil, fmt.Errorf("hiring repository: list active: %w", err)
	}
	return requests, nil
}

// GetByID возвращает заявку вместе со всеми откликами на неё.
// Оба чтения выполняются в одной транзакции, чтобы отклик, созданный
// между ними, не дал рассогласованную картину.
func (r *HiringRepository) GetByID(ctx context.Context, id int64) (*models.HiringRequest, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("hiring repository: begin tx: %w", err)
	}
	defer tx.Rollback()

	var request models.HiringRequest
	err = tx.GetContext(ctx, &request, `SELECT * FROM hiring_requests WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("hiring repository: get request %d: %w", id, err)
	}

	if err = tx.SelectContext(ctx, &request.Responses,
		`SELECT * FROM hiring_responses WHERE request_id = $1`, id); err != nil {
		return nil, fmt.Errorf("hiring repository: get responses for %d: %w", id, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("hiring repository: commit: %w", err)
	}
	return &request, nil
}

// CreateRequest вставляет новую заявку и заполняет присвоенные базой поля.
func (r *HiringRepository) CreateRequest(ctx context.Context, request *models.HiringRequest) error {
	query := `
		INSERT INTO hiring_requests (client_id, artist_id, venue_id, event_date, details, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		request.ClientID, request.ArtistID, request.VenueID,
		request.EventDate, request.Details, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return fmt.Errorf("hiring repository: create request: %w", err)
	}
	return nil
}

// CreateResponse атомарно вставляет отклик и переводит родительскую заявку
// из fromStatus в новый статус. Либо фиксируются обе записи, либо ни одной.
// Перевод обусловлен текущим статусом прямо в UPDATE: проверка перехода,
// сделанная сервисом по отдельному чтению, могла устареть под конкурентным
// откликом, и тогда вся транзакция откатывается с ErrRequestClosed.
func (r *HiringRepository) CreateResponse(ctx context.Context, response *models.HiringResponse, fromStatus, toStatus models.RequestStatus) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("hiring repository: begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		INSERT INTO hiring_responses (request_id, artist_id, proposal, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	if err = tx.QueryRowxContext(ctx, query,
		response.RequestID, response.ArtistID, response.Proposal, response.Message, response.Status,
	).Scan(&response.ID, &response.CreatedAt, &response.UpdatedAt); err != nil {
		return fmt.Errorf("hiring repository: create response: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE hiring_requests SET status = $2, updated_at = NOW() WHERE id = $1 AND status = $3`,
		response.RequestID, toStatus, fromStatus)
	if err != nil {
		return fmt.Errorf("hiring repository: update request status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("hiring repository: rows affected: %w", err)
	}
	if affected == 0 {
		// Вставка отклика уже прошла, значит заявка существует (FK), но её
		// статус успел измениться. Откат по defer убирает и отклик.
		err = ErrRequestClosed
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("hiring repository: commit: %w", err)
	}
	return nil
}

// ListByClient возвращает заявки конкретного клиента для его кабинета.
func (r *HiringRepository) ListByClient(ctx context.Context, clientID string) ([]models.HiringRequest, error) {
	var requests []models.HiringRequest
	err := r.db.SelectContext(ctx, &requests,
		`SELECT * FROM hiring_requests WHERE client_id = $1 ORDER BY created_at DESC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("hiring repository: list by client: %w", err)
	}
	return requests, nil
}
