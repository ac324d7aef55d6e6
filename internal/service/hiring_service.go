package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/buscart/buscart-backend/internal/models"
	"github.com/buscart/buscart-backend/internal/pkg/apperror"
	"github.com/buscart/buscart-backend/internal/repository"
)

type HiringRepository interface {
	ListActive(ctx context.Context) ([]models.HiringRequest, error)
	GetByID(ctx context.Context, id int64) (*models.HiringRequest, error)
	CreateRequest(ctx context.Context, request *models.HiringRequest) error
	CreateResponse(ctx context.Context, response *models.HiringResponse, fromStatus, toStatus models.RequestStatus) error
	ListByClient(ctx context.Context, clientID string) ([]models.HiringRequest, error)
}

type HiringService struct {
	repo HiringRepository
}

func NewHiringService(repo HiringRepository) *HiringService {
	return &HiringService{repo: repo}
}

type CreateRequestInput struct {
	ClientID  string
	ArtistID  *int64
	VenueID   *int64
	EventDate time.Time
	Details   string
}

type RespondInput struct {
	RequestID int64
	ArtistID  int64
	Proposal  string
	Accepted  bool
	Message   *string
}

// ListActiveRequests возвращает все открытые заявки.
func (s *HiringService) ListActiveRequests(ctx context.Context) ([]models.HiringRequest, error) {
	requests, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return ensureRequests(requests), nil
}

// GetRequest возвращает заявку вместе с откликами на неё.
func (s *HiringService) GetRequest(ctx context.Context, id int64) (*models.HiringRequest, error) {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, apperror.ErrRequestNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить заявку")
	}
	if request.Responses == nil {
		request.Responses = []models.HiringResponse{}
	}
	return request, nil
}

// ListClientRequests возвращает заявки клиента для его кабинета.
func (s *HiringService) ListClientRequests(ctx context.Context, clientID string) ([]models.HiringRequest, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "идентификатор клиента обязателен")
	}
	requests, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return ensureRequests(requests), nil
}

// ensureRequests приводит пустую выборку к пустому срезу, чтобы API
// отдавал [], а не null.
func ensureRequests(requests []models.HiringRequest) []models.HiringRequest {
	if requests == nil {
		return []models.HiringRequest{}
	}
	return requests
}

// CreateRequest создаёт заявку в статусе open. Время суток в дате события
// отбрасывается: хранится только календарная дата.
func (s *HiringService) CreateRequest(ctx context.Context, input CreateRequestInput) (*models.HiringRequest, error) {
	if strings.TrimSpace(input.ClientID) == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "идентификатор клиента обязателен")
	}
	if strings.TrimSpace(input.Details) == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "описание заявки обязательно")
	}
	if input.ArtistID != nil && input.VenueID != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, "заявка может быть адресована либо артисту, либо площадке")
	}

	request := &models.HiringRequest{
		ClientID:  input.ClientID,
		ArtistID:  input.ArtistID,
		VenueID:   input.VenueID,
		EventDate: models.NormalizeEventDate(input.EventDate),
		Details:   input.Details,
		Status:    models.RequestStatusOpen,
	}

	if err := s.repo.CreateRequest(ctx, request); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать заявку")
	}
	return request, nil
}

// Respond записывает отклик артиста и переводит заявку в in_progress либо
// cancelled. Отклик принимается только пока заявка открыта: таблица
// переходов не выпускает из cancelled и completed. Проверка по прочитанному
// статусу лишь предварительная: окончательно переход подтверждает
// обусловленный UPDATE внутри транзакции хранилища, так что опоздавший
// конкурентный отклик получает конфликт, а не перезаписывает статус.
func (s *HiringService) Respond(ctx context.Context, input RespondInput) (*models.HiringResponse, error) {
	if strings.TrimSpace(input.Proposal) == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "текст предложения обязателен")
	}
	if input.ArtistID <= 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "идентификатор артиста обязателен")
	}

	request, err := s.GetRequest(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}

	responseStatus := models.ResponseStatusFor(input.Accepted)
	requestStatus := models.RequestStatus(responseStatus)
	if !request.Status.CanTransitionTo(requestStatus) {
		return nil, apperror.New(apperror.ErrCodeConflict, "заявка уже закрыта для откликов")
	}

	response := &models.HiringResponse{
		RequestID: input.RequestID,
		ArtistID:  input.ArtistID,
		Proposal:  input.Proposal,
		Message:   input.Message,
		Status:    responseStatus,
	}

	if err := s.repo.CreateResponse(ctx, response, request.Status, requestStatus); err != nil {
		if errors.Is(err, repository.ErrRequestClosed) {
			return nil, apperror.New(apperror.ErrCodeConflict, "заявка уже закрыта для откликов")
		}
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, apperror.ErrRequestNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось записать отклик")
	}
	return response, nil
}
