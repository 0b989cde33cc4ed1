package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/pkg/apperror"
)

type MockCandidateRepository struct {
	mock.Mock
}

func (m *MockCandidateRepository) Create(ctx context.Context, candidate *models.Candidate) error {
	args := m.Called(ctx, candidate)
	return args.Error(0)
}

func (m *MockCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateRepository) List(ctx context.Context, jobOrderID *uuid.UUID) ([]models.Candidate, error) {
	args := m.Called(ctx, jobOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Candidate), args.Error(1)
}

func (m *MockCandidateRepository) UpdateProfile(ctx context.Context, candidate *models.Candidate) error {
	args := m.Called(ctx, candidate)
	return args.Error(0)
}

func (m *MockCandidateRepository) UpdateStatus(ctx context.Context, candidate *models.Candidate) error {
	args := m.Called(ctx, candidate)
	return args.Error(0)
}

func (m *MockCandidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockJobOrderGetter struct {
	mock.Mock
}

func (m *MockJobOrderGetter) GetByID(ctx context.Context, id uuid.UUID) (*models.JobOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobOrder), args.Error(1)
}

type MockActivityLogger struct {
	mock.Mock
}

func (m *MockActivityLogger) Add(ctx context.Context, userID *uuid.UUID, action, entityType string, entityID uuid.UUID, oldValue, newValue interface{}) error {
	args := m.Called(ctx, userID, action, entityType, entityID, oldValue, newValue)
	return args.Error(0)
}

func (m *MockActivityLogger) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]models.ActivityLog, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActivityLog), args.Error(1)
}

type MockPipelineNotifier struct {
	mock.Mock
}

func (m *MockPipelineNotifier) BroadcastToUser(userID uuid.UUID, event string, data any) error {
	args := m.Called(userID, event, data)
	return args.Error(0)
}

func newTestCandidate(status valueobject.CandidateStatus) *models.Candidate {
	return &models.Candidate{
		ID:         uuid.New(),
		JobOrderID: uuid.New(),
		FirstName:  "Анна",
		LastName:   "Петрова",
		Email:      "anna.petrova@example.com",
		Status:     status,
		AddedBy:    uuid.New(),
		Version:    1,
	}
}

func TestCandidateService_AddCandidate(t *testing.T) {
	ctx := context.Background()
	jobOrderID := uuid.New()

	t.Run("успешное добавление", func(t *testing.T) {
		repo := new(MockCandidateRepository)
		jobOrders := new(MockJobOrderGetter)
		svc := NewCandidateService(repo, jobOrders, nil)

		jobOrders.On("GetByID", ctx, jobOrderID).Return(&models.JobOrder{ID: jobOrderID}, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Candidate")).Return(nil)

		candidate, err := svc.AddCandidate(ctx, CreateCandidateInput{
			JobOrderID: jobOrderID,
			FirstName:  "Анна",
			LastName:   "Петрова",
			Email:      "anna.petrova@example.com",
			AddedBy:    uuid.New(),
		})

		require.NoError(t, err)
		assert.Equal(t, "Анна", candidate.FirstName)
		repo.AssertExpectations(t)
		jobOrders.AssertExpectations(t)
	})

	t.Run("некорректный email", func(t *testing.T) {
		svc := NewCandidateService(new(MockCandidateRepository), new(MockJobOrderGetter), nil)

		_, err := svc.AddCandidate(ctx, CreateCandidateInput{
			JobOrderID: jobOrderID,
			FirstName:  "Анна",
			LastName:   "Петрова",
			Email:      "not-an-email",
		})

		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("вакансия не найдена", func(t *testing.T) {
		repo := new(MockCandidateRepository)
		jobOrders := new(MockJobOrderGetter)
		svc := NewCandidateService(repo, jobOrders, nil)

		jobOrders.On("GetByID", ctx, jobOrderID).Return(nil, apperror.ErrJobOrderNotFound)

		_, err := svc.AddCandidate(ctx, CreateCandidateInput{
			JobOrderID: jobOrderID,
			FirstName:  "Анна",
			LastName:   "Петрова",
			Email:      "anna.petrova@example.com",
		})

		assert.True(t, apperror.IsNotFound(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCandidateService_Transition(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("допустимый переход", func(t *testing.T) {
		repo := new(MockCandidateRepository)
		activity := new(MockActivityLogger)
		svc := NewCandidateService(repo, new(MockJobOrderGetter), activity)

		candidate := newTestCandidate(valueobject.CandidateStatusNoContact)
		repo.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		repo.On("UpdateStatus", ctx, candidate).Return(nil)
		activity.On("Add", ctx, &actorID, models.ActionStatusChanged, "candidate", candidate.ID,
			mock.Anything, mock.Anything).Return(nil)

		updated, err := svc.Transition(ctx, candidate.ID, valueobject.CandidateStatusContacted, actorID)

		require.NoError(t, err)
		assert.Equal(t, valueobject.CandidateStatusContacted, updated.Status)
		repo.AssertExpectations(t)
		activity.AssertExpectations(t)
	})

	t.Run("недопустимый переход", func(t *testing.T) {
		repo := new(MockCandidateRepository)
		svc := NewCandidateService(repo, new(MockJobOrderGetter), nil)

		candidate := newTestCandidate(valueobject.CandidateStatusNoContact)
		repo.On("GetByID", ctx, candidate.ID).Return(candidate, nil)

		_, err := svc.Transition(ctx, candidate.ID, valueobject.CandidateStatusHired, actorID)

		assert.True(t, apperror.IsCode(err, apperror.ErrCodeInvalidTransition))
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("кандидат в конечном статусе", func(t *testing.T) {
		repo := new(MockCandidateRepository)
		svc := NewCandidateService(repo, new(MockJobOrderGetter), nil)

		candidate := newTestCandidate(valueobject.CandidateStatusRejected)
		repo.On("GetByID", ctx, candidate.ID).Return(candidate, nil)

		_, err := svc.Transition(ctx, candidate.ID, valueobject.CandidateStatusContacted, actorID)

		assert.True(t, apperror.IsCode(err, apperror.ErrCodeTerminalState))
	})

	t.Run("некорректный целевой статус", func(t *testing.T) {
		repo := new(MockCandidateRepository)
		svc := NewCandidateService(repo, new(MockJobOrderGetter), nil)

		candidate := newTestCandidate(valueobject.CandidateStatusContacted)
		repo.On("GetByID", ctx, candidate.ID).Return(candidate, nil)

		_, err := svc.Transition(ctx, candidate.ID, valueobject.CandidateStatus("GHOSTED"), actorID)

		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("уведомление отправляется владельцу", func(t *testing.T) {
		repo := new(MockCandidateRepository)
		activity := new(MockActivityLogger)
		notifier := new(MockPipelineNotifier)
		svc := NewCandidateService(repo, new(MockJobOrderGetter), activity)
		svc.SetNotifier(notifier)

		candidate := newTestCandidate(valueobject.CandidateStatusQualified)
		repo.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		repo.On("UpdateStatus", ctx, candidate).Return(nil)
		activity.On("Add", ctx, &actorID, models.ActionStatusChanged, "candidate", candidate.ID,
			mock.Anything, mock.Anything).Return(nil)
		notifier.On("BroadcastToUser", candidate.AddedBy, "candidate_status_changed", mock.Anything).Return(nil)

		_, err := svc.Transition(ctx, candidate.ID, valueobject.CandidateStatusHired, actorID)

		require.NoError(t, err)
		notifier.AssertExpectations(t)
	})

	t.Run("конфликт версий доходит до вызывающего", func(t *testing.T) {
		repo := new(MockCandidateRepository)
		svc := NewCandidateService(repo, new(MockJobOrderGetter), nil)

		candidate := newTestCandidate(valueobject.CandidateStatusQualified)
		conflict := apperror.New(apperror.ErrCodeVersionConflict, "кандидат был изменён параллельно, повторите операцию")
		repo.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		repo.On("UpdateStatus", ctx, candidate).Return(conflict)

		_, err := svc.Transition(ctx, candidate.ID, valueobject.CandidateStatusHired, actorID)

		assert.True(t, apperror.IsCode(err, apperror.ErrCodeVersionConflict))
	})
}

func TestCandidateService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("частичное обновление", func(t *testing.T) {
		repo := new(MockCandidateRepository)
		svc := NewCandidateService(repo, new(MockJobOrderGetter), nil)

		candidate := newTestCandidate(valueobject.CandidateStatusContacted)
		repo.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		repo.On("UpdateProfile", ctx, candidate).Return(nil)

		newEmail := "new.email@example.com"
		updated, err := svc.UpdateProfile(ctx, candidate.ID, UpdateProfileInput{Email: &newEmail})

		require.NoError(t, err)
		assert.Equal(t, newEmail, updated.Email)
		assert.Equal(t, "Анна", updated.FirstName)
	})

	t.Run("некорректный новый email", func(t *testing.T) {
		repo := new(MockCandidateRepository)
		svc := NewCandidateService(repo, new(MockJobOrderGetter), nil)

		candidate := newTestCandidate(valueobject.CandidateStatusContacted)
		repo.On("GetByID", ctx, candidate.ID).Return(candidate, nil)

		bad := "broken"
		_, err := svc.UpdateProfile(ctx, candidate.ID, UpdateProfileInput{Email: &bad})

		assert.True(t, apperror.IsValidation(err))
		repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})
}

func TestCandidateService_GetHistory(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCandidateRepository)
	activity := new(MockActivityLogger)
	svc := NewCandidateService(repo, new(MockJobOrderGetter), activity)

	candidate := newTestCandidate(valueobject.CandidateStatusHired)
	entries := []models.ActivityLog{{ID: uuid.New(), Action: models.ActionStatusChanged}}
	repo.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
	activity.On("ListByEntity", ctx, "candidate", candidate.ID).Return(entries, nil)

	history, err := svc.GetHistory(ctx, candidate.ID)

	require.NoError(t, err)
	assert.Len(t, history, 1)

	missing := uuid.New()
	repo.On("GetByID", ctx, missing).Return(nil, apperror.ErrCandidateNotFound)
	_, err = svc.GetHistory(ctx, missing)
	assert.True(t, apperror.IsNotFound(err))
}
