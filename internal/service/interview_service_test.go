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

type MockInterviewRepository struct {
	mock.Mock
}

func (m *MockInterviewRepository) Create(ctx context.Context, interview *models.Interview) error {
	args := m.Called(ctx, interview)
	return args.Error(0)
}

func (m *MockInterviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.Interview, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) ListByJobOrder(ctx context.Context, jobOrderID uuid.UUID) ([]models.Interview, error) {
	args := m.Called(ctx, jobOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) Complete(ctx context.Context, interview *models.Interview, candidate *models.Candidate) error {
	args := m.Called(ctx, interview, candidate)
	return args.Error(0)
}

func (m *MockInterviewRepository) Cancel(ctx context.Context, interview *models.Interview) error {
	args := m.Called(ctx, interview)
	return args.Error(0)
}

func newScheduledInterview(candidateID, jobOrderID uuid.UUID, level valueobject.InterviewLevel) *models.Interview {
	return &models.Interview{
		ID:          uuid.New(),
		CandidateID: candidateID,
		JobOrderID:  jobOrderID,
		Level:       level,
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Status:      valueobject.InterviewStatusScheduled,
		CreatedBy:   uuid.New(),
	}
}

func TestInterviewService_Schedule(t *testing.T) {
	ctx := context.Background()

	t.Run("успешное планирование", func(t *testing.T) {
		repo := new(MockInterviewRepository)
		candidates := new(MockCandidateRepository)
		activity := new(MockActivityLogger)
		svc := NewInterviewService(repo, candidates, activity)

		candidate := newTestCandidate(valueobject.CandidateStatusQualified)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Interview")).Return(nil)
		activity.On("Add", ctx, mock.Anything, models.ActionInterviewSchedule, "interview",
			mock.Anything, mock.Anything, mock.Anything).Return(nil)

		interview, err := svc.Schedule(ctx, ScheduleInterviewInput{
			CandidateID: candidate.ID,
			Level:       valueobject.InterviewLevelL1,
			ScheduledAt: time.Now().Add(48 * time.Hour),
			CreatedBy:   uuid.New(),
		})

		require.NoError(t, err)
		assert.Equal(t, valueobject.InterviewStatusScheduled, interview.Status)
		assert.Equal(t, candidate.JobOrderID, interview.JobOrderID)
		repo.AssertExpectations(t)
	})

	t.Run("статус кандидата не меняется при планировании", func(t *testing.T) {
		repo := new(MockInterviewRepository)
		candidates := new(MockCandidateRepository)
		svc := NewInterviewService(repo, candidates, nil)

		candidate := newTestCandidate(valueobject.CandidateStatusNextInterview)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		repo.On("Create", ctx, mock.Anything).Return(nil)

		_, err := svc.Schedule(ctx, ScheduleInterviewInput{
			CandidateID: candidate.ID,
			Level:       valueobject.InterviewLevelL2,
			ScheduledAt: time.Now().Add(time.Hour),
		})

		require.NoError(t, err)
		assert.Equal(t, valueobject.CandidateStatusNextInterview, candidate.Status)
		candidates.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("некорректный уровень", func(t *testing.T) {
		svc := NewInterviewService(new(MockInterviewRepository), new(MockCandidateRepository), nil)

		_, err := svc.Schedule(ctx, ScheduleInterviewInput{
			CandidateID: uuid.New(),
			Level:       valueobject.InterviewLevel("L9"),
			ScheduledAt: time.Now(),
		})

		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("кандидат в конечном статусе", func(t *testing.T) {
		repo := new(MockInterviewRepository)
		candidates := new(MockCandidateRepository)
		svc := NewInterviewService(repo, candidates, nil)

		candidate := newTestCandidate(valueobject.CandidateStatusRejected)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)

		_, err := svc.Schedule(ctx, ScheduleInterviewInput{
			CandidateID: candidate.ID,
			Level:       valueobject.InterviewLevelL1,
			ScheduledAt: time.Now().Add(time.Hour),
		})

		assert.True(t, apperror.IsCode(err, apperror.ErrCodeTerminalState))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestInterviewService_Decide(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("решение HIRED переводит кандидата", func(t *testing.T) {
		repo := new(MockInterviewRepository)
		candidates := new(MockCandidateRepository)
		activity := new(MockActivityLogger)
		svc := NewInterviewService(repo, candidates, activity)

		candidate := newTestCandidate(valueobject.CandidateStatusNextInterview)
		interview := newScheduledInterview(candidate.ID, candidate.JobOrderID, valueobject.InterviewLevelL2)

		repo.On("GetByID", ctx, interview.ID).Return(interview, nil)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		repo.On("Complete", ctx, interview, candidate).Return(nil)
		activity.On("Add", ctx, &actorID, models.ActionInterviewDecision, "candidate", candidate.ID,
			mock.Anything, mock.Anything).Return(nil)

		result, err := svc.Decide(ctx, interview.ID, valueobject.InterviewOutcomeHired, nil, actorID)

		require.NoError(t, err)
		assert.Equal(t, valueobject.CandidateStatusHired, result.Candidate.Status)
		assert.Equal(t, valueobject.InterviewStatusCompleted, result.Interview.Status)
		require.NotNil(t, result.Interview.Outcome)
		assert.Equal(t, valueobject.InterviewOutcomeHired, *result.Interview.Outcome)
		require.NotNil(t, result.Candidate.CurrentLevel)
		assert.Equal(t, valueobject.InterviewLevelL2, *result.Candidate.CurrentLevel)
	})

	t.Run("уровень кандидата не понижается", func(t *testing.T) {
		repo := new(MockInterviewRepository)
		candidates := new(MockCandidateRepository)
		svc := NewInterviewService(repo, candidates, nil)

		l3 := valueobject.InterviewLevelL3
		candidate := newTestCandidate(valueobject.CandidateStatusNextInterview)
		candidate.CurrentLevel = &l3
		interview := newScheduledInterview(candidate.ID, candidate.JobOrderID, valueobject.InterviewLevelL1)

		repo.On("GetByID", ctx, interview.ID).Return(interview, nil)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)
		repo.On("Complete", ctx, interview, candidate).Return(nil)

		result, err := svc.Decide(ctx, interview.ID, valueobject.InterviewOutcomeOnHold, nil, actorID)

		require.NoError(t, err)
		assert.Equal(t, valueobject.InterviewLevelL3, *result.Candidate.CurrentLevel)
	})

	t.Run("повторное решение отклоняется", func(t *testing.T) {
		repo := new(MockInterviewRepository)
		candidates := new(MockCandidateRepository)
		svc := NewInterviewService(repo, candidates, nil)

		interview := newScheduledInterview(uuid.New(), uuid.New(), valueobject.InterviewLevelL1)
		interview.Status = valueobject.InterviewStatusCompleted

		repo.On("GetByID", ctx, interview.ID).Return(interview, nil)

		_, err := svc.Decide(ctx, interview.ID, valueobject.InterviewOutcomeRejected, nil, actorID)

		assert.True(t, apperror.IsCode(err, apperror.ErrCodeAlreadyCompleted))
		repo.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("решение по кандидату в конечном статусе", func(t *testing.T) {
		repo := new(MockInterviewRepository)
		candidates := new(MockCandidateRepository)
		svc := NewInterviewService(repo, candidates, nil)

		candidate := newTestCandidate(valueobject.CandidateStatusRejected)
		interview := newScheduledInterview(candidate.ID, candidate.JobOrderID, valueobject.InterviewLevelL1)

		repo.On("GetByID", ctx, interview.ID).Return(interview, nil)
		candidates.On("GetByID", ctx, candidate.ID).Return(candidate, nil)

		_, err := svc.Decide(ctx, interview.ID, valueobject.InterviewOutcomeHired, nil, actorID)

		assert.True(t, apperror.IsCode(err, apperror.ErrCodeTerminalState))
	})

	t.Run("некорректное решение", func(t *testing.T) {
		svc := NewInterviewService(new(MockInterviewRepository), new(MockCandidateRepository), nil)

		_, err := svc.Decide(ctx, uuid.New(), valueobject.InterviewOutcome("MAYBE"), nil, actorID)

		assert.True(t, apperror.IsValidation(err))
	})
}

func TestInterviewService_Cancel(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("отмена запланированного", func(t *testing.T) {
		repo := new(MockInterviewRepository)
		svc := NewInterviewService(repo, new(MockCandidateRepository), nil)

		interview := newScheduledInterview(uuid.New(), uuid.New(), valueobject.InterviewLevelL1)
		repo.On("GetByID", ctx, interview.ID).Return(interview, nil)
		repo.On("Cancel", ctx, interview).Return(nil)

		cancelled, err := svc.Cancel(ctx, interview.ID, actorID)

		require.NoError(t, err)
		assert.Equal(t, valueobject.InterviewStatusCancelled, cancelled.Status)
	})

	t.Run("завершённое не отменяется", func(t *testing.T) {
		repo := new(MockInterviewRepository)
		svc := NewInterviewService(repo, new(MockCandidateRepository), nil)

		interview := newScheduledInterview(uuid.New(), uuid.New(), valueobject.InterviewLevelL1)
		interview.Status = valueobject.InterviewStatusCompleted
		repo.On("GetByID", ctx, interview.ID).Return(interview, nil)

		_, err := svc.Cancel(ctx, interview.ID, actorID)

		assert.True(t, apperror.IsCode(err, apperror.ErrCodeAlreadyCompleted))
	})
}
