package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/buscart/buscart-backend/internal/models"
	"github.com/buscart/buscart-backend/internal/pkg/apperror"
	"github.com/buscart/buscart-backend/internal/repository"
)

type mockHiringRepo struct {
	mock.Mock
}

func (m *mockHiringRepo) ListActive(ctx context.Context) ([]models.HiringRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.HiringRequest), args.Error(1)
}

func (m *mockHiringRepo) GetByID(ctx context.Context, id int64) (*models.HiringRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HiringRequest), args.Error(1)
}

func (m *mockHiringRepo) CreateRequest(ctx context.Context, request *models.HiringRequest) error {
	args := m.Called(ctx, request)
	if args.Error(0) == nil {
		request.ID = 1
		request.CreatedAt = time.Now()
		request.UpdatedAt = request.CreatedAt
	}
	return args.Error(0)
}

func (m *mockHiringRepo) CreateResponse(ctx context.Context, response *models.HiringResponse, fromStatus, toStatus models.RequestStatus) error {
	args := m.Called(ctx, response, fromStatus, toStatus)
	if args.Error(0) == nil {
		response.ID = 1
		response.CreatedAt = time.Now()
		response.UpdatedAt = response.CreatedAt
	}
	return args.Error(0)
}

func (m *mockHiringRepo) ListByClient(ctx context.Context, clientID string) ([]models.HiringRequest, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]models.HiringRequest), args.Error(1)
}

func TestHiringService_CreateRequest_Success(t *testing.T) {
	repo := new(mockHiringRepo)
	svc := NewHiringService(repo)
	ctx := context.Background()

	repo.On("CreateRequest", ctx, mock.AnythingOfType("*models.HiringRequest")).Return(nil)

	artistID := int64(42)
	request, err := svc.CreateRequest(ctx, CreateRequestInput{
		ClientID:  "u1",
		ArtistID:  &artistID,
		EventDate: time.Date(2024, 7, 15, 21, 30, 0, 0, time.FixedZone("UTC-5", -5*3600)),
		Details:   "Birthday set",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusOpen, request.Status)
	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), request.EventDate)
	assert.Equal(t, int64(1), request.ID)
}

func TestHiringService_CreateRequest_Validation(t *testing.T) {
	repo := new(mockHiringRepo)
	svc := NewHiringService(repo)
	ctx := context.Background()

	_, err := svc.CreateRequest(ctx, CreateRequestInput{ClientID: "", Details: "x"})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.CreateRequest(ctx, CreateRequestInput{ClientID: "u1", Details: "   "})
	assert.True(t, apperror.IsValidation(err))

	artistID, venueID := int64(1), int64(2)
	_, err = svc.CreateRequest(ctx, CreateRequestInput{
		ClientID: "u1", Details: "x", ArtistID: &artistID, VenueID: &venueID,
	})
	assert.True(t, apperror.IsValidation(err))

	repo.AssertNotCalled(t, "CreateRequest")
}

func TestHiringService_Respond_Accepted(t *testing.T) {
	repo := new(mockHiringRepo)
	svc := NewHiringService(repo)
	ctx := context.Background()

	request := &models.HiringRequest{ID: 5, ClientID: "u1", Status: models.RequestStatusOpen}
	repo.On("GetByID", ctx, int64(5)).Return(request, nil)
	repo.On("CreateResponse", ctx, mock.AnythingOfType("*models.HiringResponse"), models.RequestStatusOpen, models.RequestStatusInProgress).Return(nil)

	response, err := svc.Respond(ctx, RespondInput{
		RequestID: 5,
		ArtistID:  42,
		Proposal:  "2hr set, $500",
		Accepted:  true,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.ResponseStatusInProgress, response.Status)
	repo.AssertExpectations(t)
}

func TestHiringService_Respond_Declined(t *testing.T) {
	repo := new(mockHiringRepo)
	svc := NewHiringService(repo)
	ctx := context.Background()

	request := &models.HiringRequest{ID: 5, ClientID: "u1", Status: models.RequestStatusOpen}
	repo.On("GetByID", ctx, int64(5)).Return(request, nil)
	repo.On("CreateResponse", ctx, mock.AnythingOfType("*models.HiringResponse"), models.RequestStatusOpen, models.RequestStatusCancelled).Return(nil)

	response, err := svc.Respond(ctx, RespondInput{
		RequestID: 5,
		ArtistID:  42,
		Proposal:  "not available",
		Accepted:  false,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.ResponseStatusCancelled, response.Status)
	repo.AssertExpectations(t)
}

func TestHiringService_Respond_ClosedRequest(t *testing.T) {
	repo := new(mockHiringRepo)
	svc := NewHiringService(repo)
	ctx := context.Background()

	request := &models.HiringRequest{ID: 5, Status: models.RequestStatusCancelled}
	repo.On("GetByID", ctx, int64(5)).Return(request, nil)

	_, err := svc.Respond(ctx, RespondInput{RequestID: 5, ArtistID: 42, Proposal: "late", Accepted: true})

	assert.True(t, apperror.IsConflict(err))
	repo.AssertNotCalled(t, "CreateResponse")
}

// Конкурентный отклик: прочитанный статус open устарел, пока шла проверка
// перехода, и обусловленный UPDATE в хранилище не нашёл строку в open.
// Опоздавший отклик получает конфликт, а не перезаписывает статус.
func TestHiringService_Respond_StaleStatus(t *testing.T) {
	repo := new(mockHiringRepo)
	svc := NewHiringService(repo)
	ctx := context.Background()

	request := &models.HiringRequest{ID: 5, ClientID: "u1", Status: models.RequestStatusOpen}
	repo.On("GetByID", ctx, int64(5)).Return(request, nil)
	repo.On("CreateResponse", ctx, mock.AnythingOfType("*models.HiringResponse"), models.RequestStatusOpen, models.RequestStatusCancelled).Return(repository.ErrRequestClosed)

	_, err := svc.Respond(ctx, RespondInput{RequestID: 5, ArtistID: 42, Proposal: "not available", Accepted: false})

	assert.True(t, apperror.IsConflict(err))
	repo.AssertExpectations(t)
}

func TestHiringService_Respond_Validation(t *testing.T) {
	repo := new(mockHiringRepo)
	svc := NewHiringService(repo)
	ctx := context.Background()

	_, err := svc.Respond(ctx, RespondInput{RequestID: 5, ArtistID: 42, Proposal: "", Accepted: true})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Respond(ctx, RespondInput{RequestID: 5, ArtistID: 0, Proposal: "x", Accepted: true})
	assert.True(t, apperror.IsValidation(err))
}

// Пустые выборки отдаются как пустой срез, чтобы API сериализовал [],
// а не null.
func TestHiringService_EmptyListsAreNotNil(t *testing.T) {
	repo := new(mockHiringRepo)
	svc := NewHiringService(repo)
	ctx := context.Background()

	repo.On("ListActive", ctx).Return(([]models.HiringRequest)(nil), nil)
	requests, err := svc.ListActiveRequests(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, requests)
	assert.Len(t, requests, 0)

	repo.On("ListByClient", ctx, "u1").Return(([]models.HiringRequest)(nil), nil)
	requests, err = svc.ListClientRequests(ctx, "u1")
	assert.NoError(t, err)
	assert.NotNil(t, requests)

	repo.On("GetByID", ctx, int64(9)).Return(&models.HiringRequest{ID: 9, Status: models.RequestStatusOpen}, nil)
	request, err := svc.GetRequest(ctx, 9)
	assert.NoError(t, err)
	assert.NotNil(t, request.Responses)
	assert.Len(t, request.Responses, 0)
}

func TestHiringService_GetRequest_NotFound(t *testing.T) {
	repo := new(mockHiringRepo)
	svc := NewHiringService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(404)).Return(nil, repository.ErrRequestNotFound)

	_, err := svc.GetRequest(ctx, 404)

	assert.True(t, apperror.IsNotFound(err))
}

// Сквозной сценарий: заявка создаётся открытой, принятый отклик переводит
// её в in_progress, и заявка читается вместе с откликом.
func TestHiringService_RequestResponseLifecycle(t *testing.T) {
	repo := new(mockHiringRepo)
	svc := NewHiringService(repo)
	ctx := context.Background()

	repo.On("CreateRequest", ctx, mock.AnythingOfType("*models.HiringRequest")).Return(nil)

	artistID := int64(42)
	request, err := svc.CreateRequest(ctx, CreateRequestInput{
		ClientID:  "u1",
		ArtistID:  &artistID,
		EventDate: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		Details:   "Birthday set",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusOpen, request.Status)

	repo.On("GetByID", ctx, request.ID).Return(request, nil)
	repo.On("CreateResponse", ctx, mock.AnythingOfType("*models.HiringResponse"), models.RequestStatusOpen, models.RequestStatusInProgress).Return(nil).Run(func(args mock.Arguments) {
		response := args.Get(1).(*models.HiringResponse)
		request.Status = models.RequestStatusInProgress
		request.Responses = append(request.Responses, *response)
	})

	response, err := svc.Respond(ctx, RespondInput{
		RequestID: request.ID,
		ArtistID:  42,
		Proposal:  "2hr set, $500",
		Accepted:  true,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.ResponseStatusInProgress, response.Status)

	got, err := svc.GetRequest(ctx, request.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusInProgress, got.Status)
	assert.Len(t, got.Responses, 1)
}
