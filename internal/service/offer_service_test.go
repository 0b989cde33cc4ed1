package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/pkg/apperror"
)

type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) CreateWithCandidate(ctx context.Context, offer *models.Offer, candidate *models.Candidate) error {
	args := m.Called(ctx, offer, candidate)
	return args.Error(0)
}

func (m *MockOfferRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetActiveByCandidate(ctx context.Context, candidateID uuid.UUID) (*models.Offer, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Offer), args.Error(1)
}

func (m *MockOfferRepository) List(ctx context.Context, candidateID *uuid.UUID) ([]models.Offer, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Offer), args.Error(1)
}

func (m *MockOfferRepository) DecideWithCandidate(ctx context.Context, offer *models.Offer, candidate *models.Candidate) error {
	args := m.Called(ctx, offer, candidate)
	return args.Error(0)
}

func (m *MockOfferRepository) WithdrawWithCandidate(ctx context.Context, offer *models.Offer, candidate *models.Candidate) error {
	args := m.Called(ctx, offer, candidate)
	return args.Error(0)
}

func newActiveOffer(candidateID, jobOrderID uuid.UUID) *models.Offer {
	return &models.Offer{
		ID:                  uuid.New(),
		CandidateID:         candidateID,
		JobOrderID:          jobOrderID,
		OfferedRole:         "Senior Go Developer",
		OfferedSalary:       "350000 RUB",
		ExpectedJoiningDate: time.Now().AddDate(0, 1, 0),
		Status:              valueobject.OfferStatusOffered,
		OfferedAt:           time.Now(),
		CreatedBy:           uuid.New(),
	}
}

func TestOfferService_CreateOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("оффер кандидату в статусе HIRED", func(t *testing.T) {
		repo := new(MockOfferRepository)
		candidates := new(MockCandidateRepository)
		activity := new(MockActivityLogger)
		svc := NewOfferService(repo, candidates, activity)

		candidate := newTestCandidate(valueobject.CandidateStatusHired)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		repo.On("GetActiveByCandidate", ctx, candidate.ID).Return(nil, nil)
		repo.On("CreateWithCandidate", ctx, mock.AnythingOfType("*models.Offer"), candidate).Return(nil)
		activity.On("Add", ctx, mock.Anything, models.ActionOfferCreated, "candidate", candidate.ID,
			mock.Anything, mock.Anything).Return(nil)

		offer, err := svc.CreateOffer(ctx, CreateOfferInput{
			CandidateID:         candidate.ID,
			OfferedRole:         "Senior Go Developer",
			OfferedSalary:       "350000 RUB",
			ExpectedJoiningDate: time.Now().AddDate(0, 1, 0),
			CreatedBy:           uuid.New(),
		})

		require.NoError(t, err)
		assert.Equal(t, valueobject.OfferStatusOffered, offer.Status)
		assert.Equal(t, valueobject.CandidateStatusOffered, candidate.Status)
		repo.AssertExpectations(t)
	})

	t.Run("второй активный оффер запрещён", func(t *testing.T) {
		repo := new(MockOfferRepository)
		candidates := new(MockCandidateRepository)
		svc := NewOfferService(repo, candidates, nil)

		candidate := newTestCandidate(valueobject.CandidateStatusHired)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		repo.On("GetActiveByCandidate", ctx, candidate.ID).
			Return(newActiveOffer(candidate.ID, candidate.JobOrderID), nil)

		_, err := svc.CreateOffer(ctx, CreateOfferInput{
			CandidateID:         candidate.ID,
			OfferedRole:         "Senior Go Developer",
			OfferedSalary:       "350000 RUB",
			ExpectedJoiningDate: time.Now().AddDate(0, 1, 0),
		})

		assert.True(t, apperror.IsCode(err, apperror.ErrCodeConflict))
		repo.AssertNotCalled(t, "CreateWithCandidate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("оффер кандидату не в HIRED", func(t *testing.T) {
		repo := new(MockOfferRepository)
		candidates := new(MockCandidateRepository)
		svc := NewOfferService(repo, candidates, nil)

		candidate := newTestCandidate(valueobject.CandidateStatusQualified)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)

		_, err := svc.CreateOffer(ctx, CreateOfferInput{
			CandidateID:         candidate.ID,
			OfferedRole:         "Senior Go Developer",
			OfferedSalary:       "350000 RUB",
			ExpectedJoiningDate: time.Now().AddDate(0, 1, 0),
		})

		assert.True(t, apperror.IsCode(err, apperror.ErrCodeInvalidTransition))
	})

	t.Run("обязательные поля", func(t *testing.T) {
		svc := NewOfferService(new(MockOfferRepository), new(MockCandidateRepository), nil)

		_, err := svc.CreateOffer(ctx, CreateOfferInput{CandidateID: uuid.New()})

		assert.True(t, apperror.IsValidation(err))
	})
}

func TestOfferService_Decide(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("принятие оффера", func(t *testing.T) {
		repo := new(MockOfferRepository)
		candidates := new(MockCandidateRepository)
		activity := new(MockActivityLogger)
		svc := NewOfferService(repo, candidates, activity)

		candidate := newTestCandidate(valueobject.CandidateStatusOffered)
		offer := newActiveOffer(candidate.ID, candidate.JobOrderID)

		repo.On("GetByID", ctx, offer.ID).Return(offer, nil)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		repo.On("DecideWithCandidate", ctx, offer, candidate).Return(nil)
		activity.On("Add", ctx, &actorID, models.ActionOfferDecision, "candidate", candidate.ID,
			mock.Anything, mock.Anything).Return(nil)

		result, err := svc.Decide(ctx, offer.ID, true, nil, actorID)

		require.NoError(t, err)
		assert.Equal(t, valueobject.OfferStatusAccepted, result.Offer.Status)
		assert.Equal(t, valueobject.CandidateStatusOfferAccepted, result.Candidate.Status)
		assert.NotNil(t, result.Offer.RespondedAt)
	})

	t.Run("отклонение делает статус конечным", func(t *testing.T) {
		repo := new(MockOfferRepository)
		candidates := new(MockCandidateRepository)
		svc := NewOfferService(repo, candidates, nil)

		candidate := newTestCandidate(valueobject.CandidateStatusOffered)
		offer := newActiveOffer(candidate.ID, candidate.JobOrderID)

		repo.On("GetByID", ctx, offer.ID).Return(offer, nil)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		repo.On("DecideWithCandidate", ctx, offer, candidate).Return(nil)

		result, err := svc.Decide(ctx, offer.ID, false, nil, actorID)

		require.NoError(t, err)
		assert.Equal(t, valueobject.OfferStatusDeclined, result.Offer.Status)
		assert.Equal(t, valueobject.CandidateStatusOfferDeclined, result.Candidate.Status)
		assert.True(t, result.Candidate.Status.IsTerminal())
	})

	t.Run("повторный ответ отклоняется", func(t *testing.T) {
		repo := new(MockOfferRepository)
		svc := NewOfferService(repo, new(MockCandidateRepository), nil)

		offer := newActiveOffer(uuid.New(), uuid.New())
		offer.Status = valueobject.OfferStatusAccepted

		repo.On("GetByID", ctx, offer.ID).Return(offer, nil)

		_, err := svc.Decide(ctx, offer.ID, false, nil, actorID)

		assert.True(t, apperror.IsCode(err, apperror.ErrCodeAlreadyCompleted))
		repo.AssertNotCalled(t, "DecideWithCandidate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestOfferService_Withdraw(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("отзыв возвращает кандидата в HIRED", func(t *testing.T) {
		repo := new(MockOfferRepository)
		candidates := new(MockCandidateRepository)
		svc := NewOfferService(repo, candidates, nil)

		candidate := newTestCandidate(valueobject.CandidateStatusOffered)
		offer := newActiveOffer(candidate.ID, candidate.JobOrderID)
		repo.On("GetByID", ctx, offer.ID).Return(offer, nil)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		repo.On("WithdrawWithCandidate", ctx, offer, candidate).Return(nil)

		withdrawn, err := svc.Withdraw(ctx, offer.ID, actorID)

		require.NoError(t, err)
		assert.Equal(t, valueobject.OfferStatusWithdrawn, withdrawn.Status)
		assert.Equal(t, valueobject.CandidateStatusHired, candidate.Status)
		repo.AssertExpectations(t)
	})

	t.Run("после отзыва возможен новый оффер", func(t *testing.T) {
		repo := new(MockOfferRepository)
		candidates := new(MockCandidateRepository)
		svc := NewOfferService(repo, candidates, nil)

		candidate := newTestCandidate(valueobject.CandidateStatusOffered)
		offer := newActiveOffer(candidate.ID, candidate.JobOrderID)
		repo.On("GetByID", ctx, offer.ID).Return(offer, nil)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		repo.On("WithdrawWithCandidate", ctx, offer, candidate).Return(nil)

		_, err := svc.Withdraw(ctx, offer.ID, actorID)
		require.NoError(t, err)

		// Отозванный оффер больше не активен, кандидат снова в HIRED.
		repo.On("GetActiveByCandidate", ctx, candidate.ID).Return(nil, nil)
		repo.On("CreateWithCandidate", ctx, mock.AnythingOfType("*models.Offer"), candidate).Return(nil)

		next, err := svc.CreateOffer(ctx, CreateOfferInput{
			CandidateID:         candidate.ID,
			OfferedRole:         "Senior Go Developer",
			OfferedSalary:       "380000 RUB",
			ExpectedJoiningDate: time.Now().AddDate(0, 1, 0),
			CreatedBy:           actorID,
		})

		require.NoError(t, err)
		assert.Equal(t, valueobject.OfferStatusOffered, next.Status)
		assert.Equal(t, valueobject.CandidateStatusOffered, candidate.Status)
	})

	t.Run("отозвать отвеченный нельзя", func(t *testing.T) {
		repo := new(MockOfferRepository)
		svc := NewOfferService(repo, new(MockCandidateRepository), nil)

		offer := newActiveOffer(uuid.New(), uuid.New())
		offer.Status = valueobject.OfferStatusDeclined
		repo.On("GetByID", ctx, offer.ID).Return(offer, nil)

		_, err := svc.Withdraw(ctx, offer.ID, actorID)

		assert.True(t, apperror.IsCode(err, apperror.ErrCodeAlreadyCompleted))
	})
}

func TestOfferService_ConfirmJoining(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("подтверждение выхода", func(t *testing.T) {
		repo := new(MockOfferRepository)
		candidates := new(MockCandidateRepository)
		activity := new(MockActivityLogger)
		svc := NewOfferService(repo, candidates, activity)

		candidate := newTestCandidate(valueobject.CandidateStatusOfferAccepted)
		offer := newActiveOffer(candidate.ID, candidate.JobOrderID)
		offer.Status = valueobject.OfferStatusAccepted

		repo.On("GetByID", ctx, offer.ID).Return(offer, nil)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		candidates.On("UpdateStatus", ctx, candidate).Return(nil)
		activity.On("Add", ctx, &actorID, models.ActionJoiningConfirmed, "candidate", candidate.ID,
			mock.Anything, mock.Anything).Return(nil)

		joined, err := svc.ConfirmJoining(ctx, offer.ID, time.Now(), actorID)

		require.NoError(t, err)
		assert.Equal(t, valueobject.CandidateStatusJoined, joined.Status)
	})

	t.Run("только по принятому офферу", func(t *testing.T) {
		repo := new(MockOfferRepository)
		svc := NewOfferService(repo, new(MockCandidateRepository), nil)

		offer := newActiveOffer(uuid.New(), uuid.New())
		repo.On("GetByID", ctx, offer.ID).Return(offer, nil)

		_, err := svc.ConfirmJoining(ctx, offer.ID, time.Now(), actorID)

		assert.True(t, apperror.IsCode(err, apperror.ErrCodeConflict))
	})
}

func TestOfferService_RecordPostJoiningOutcome(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("успешный найм", func(t *testing.T) {
		candidates := new(MockCandidateRepository)
		activity := new(MockActivityLogger)
		svc := NewOfferService(new(MockOfferRepository), candidates, activity)

		candidate := newTestCandidate(valueobject.CandidateStatusJoined)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		candidates.On("UpdateStatus", ctx, candidate).Return(nil)
		activity.On("Add", ctx, &actorID, models.ActionPostJoiningOutcome, "candidate", candidate.ID,
			mock.Anything, mock.Anything).Return(nil)

		result, err := svc.RecordPostJoiningOutcome(ctx, candidate.ID,
			valueobject.CandidateStatusSuccessfulHire, nil, actorID)

		require.NoError(t, err)
		assert.Equal(t, valueobject.CandidateStatusSuccessfulHire, result.Status)
		assert.True(t, result.Status.IsTerminal())
	})

	t.Run("итог возможен только из JOINED", func(t *testing.T) {
		candidates := new(MockCandidateRepository)
		svc := NewOfferService(new(MockOfferRepository), candidates, nil)

		candidate := newTestCandidate(valueobject.CandidateStatusOfferAccepted)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)

		_, err := svc.RecordPostJoiningOutcome(ctx, candidate.ID,
			valueobject.CandidateStatusTerminated, nil, actorID)

		assert.True(t, apperror.IsCode(err, apperror.ErrCodeInvalidTransition))
	})

	t.Run("итогом может быть только конечный статус после выхода", func(t *testing.T) {
		svc := NewOfferService(new(MockOfferRepository), new(MockCandidateRepository), nil)

		_, err := svc.RecordPostJoiningOutcome(ctx, uuid.New(),
			valueobject.CandidateStatusRejected, nil, actorID)

		assert.True(t, apperror.IsValidation(err))
	})
}
