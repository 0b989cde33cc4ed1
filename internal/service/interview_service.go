package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/pkg/apperror"
)

// InterviewRepository описывает зависимости InterviewService от слоя хранилища.
type InterviewRepository interface {
	Create(ctx context.Context, interview *models.Interview) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Interview, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.Interview, error)
	ListByJobOrder(ctx context.Context, jobOrderID uuid.UUID) ([]models.Interview, error)
	Complete(ctx context.Context, interview *models.Interview, candidate *models.Candidate) error
	Cancel(ctx context.Context, interview *models.Interview) error
}

// CandidateRepoForInterview даёт доступ к кандидату при работе с интервью.
type CandidateRepoForInterview interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
}

// InterviewService управляет расписанием интервью и решениями по ним.
type InterviewService struct {
	repo       InterviewRepository
	candidates CandidateRepoForInterview
	activity   ActivityLogger
}

// NewInterviewService создаёт сервис интервью.
func NewInterviewService(repo InterviewRepository, candidates CandidateRepoForInterview, activity ActivityLogger) *InterviewService {
	return &InterviewService{repo: repo, candidates: candidates, activity: activity}
}

// ScheduleInterviewInput содержит данные нового интервью.
type ScheduleInterviewInput struct {
	CandidateID     uuid.UUID
	Level           valueobject.InterviewLevel
	ScheduledAt     time.Time
	InterviewerName *string
	CreatedBy       uuid.UUID
}

// Schedule планирует интервью. Статус кандидата при этом не меняется:
// переход делает только решение по завершённому интервью. Проверки
// пересечений по времени нет — двойное бронирование не запрещено.
func (s *InterviewService) Schedule(ctx context.Context, in ScheduleInterviewInput) (*models.Interview, error) {
	if !in.Level.IsValid() {
		return nil, apperror.New(apperror.ErrCodeValidation, "некорректный уровень интервью")
	}
	if in.ScheduledAt.IsZero() {
		return nil, apperror.New(apperror.ErrCodeValidation, "дата интервью обязательна")
	}

	candidate, err := s.candidates.GetByID(ctx, in.CandidateID)
	if err != nil {
		return nil, err
	}
	if candidate.Status.IsTerminal() {
		return nil, apperror.New(apperror.ErrCodeTerminalState,
			"нельзя запланировать интервью кандидату в конечном статусе")
	}

	interview := &models.Interview{
		CandidateID:     candidate.ID,
		JobOrderID:      candidate.JobOrderID,
		Level:           in.Level,
		ScheduledAt:     in.ScheduledAt,
		Status:          valueobject.InterviewStatusScheduled,
		InterviewerName: in.InterviewerName,
		CreatedBy:       in.CreatedBy,
	}

	if err := s.repo.Create(ctx, interview); err != nil {
		return nil, err
	}

	if s.activity != nil {
		_ = s.activity.Add(ctx, &in.CreatedBy, models.ActionInterviewSchedule, "interview", interview.ID,
			nil, map[string]any{"level": interview.Level, "scheduled_at": interview.ScheduledAt})
	}

	return interview, nil
}

// GetInterview возвращает интервью по идентификатору.
func (s *InterviewService) GetInterview(ctx context.Context, id uuid.UUID) (*models.Interview, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByCandidate возвращает интервью кандидата.
func (s *InterviewService) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.Interview, error) {
	return s.repo.ListByCandidate(ctx, candidateID)
}

// ListByJobOrder возвращает интервью по вакансии.
func (s *InterviewService) ListByJobOrder(ctx context.Context, jobOrderID uuid.UUID) ([]models.Interview, error) {
	return s.repo.ListByJobOrder(ctx, jobOrderID)
}

// DecisionResult возвращает итог решения: завершённое интервью и кандидата
// в новом статусе.
type DecisionResult struct {
	Interview *models.Interview
	Candidate *models.Candidate
}

// Decide закрывает интервью решением и переводит кандидата в соответствующий
// статус. Переход проверяется до записи; запись интервью и кандидата
// выполняется одной транзакцией, так что частично применённого решения
// не бывает.
func (s *InterviewService) Decide(ctx context.Context, interviewID uuid.UUID, decision valueobject.InterviewOutcome, notes *string, actorID uuid.UUID) (*DecisionResult, error) {
	if !decision.IsValid() {
		return nil, apperror.New(apperror.ErrCodeValidation, "некорректное решение по интервью")
	}

	interview, err := s.repo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if interview.Status != valueobject.InterviewStatusScheduled {
		return nil, apperror.New(apperror.ErrCodeAlreadyCompleted,
			"решение по этому интервью уже записано")
	}

	candidate, err := s.candidates.GetByID(ctx, interview.CandidateID)
	if err != nil {
		return nil, err
	}

	target := decision.CandidateStatus()
	if err := validateTransition(candidate.Status, target); err != nil {
		return nil, err
	}

	oldStatus := candidate.Status
	candidate.Status = target
	candidate.CurrentLevel = highestLevel(candidate.CurrentLevel, interview.Level)

	interview.Status = valueobject.InterviewStatusCompleted
	interview.Outcome = &decision
	interview.Feedback = notes

	if err := s.repo.Complete(ctx, interview, candidate); err != nil {
		return nil, err
	}

	if s.activity != nil {
		_ = s.activity.Add(ctx, &actorID, models.ActionInterviewDecision, "candidate", candidate.ID,
			map[string]any{"status": oldStatus},
			map[string]any{"status": candidate.Status, "level": interview.Level, "outcome": decision})
	}

	return &DecisionResult{Interview: interview, Candidate: candidate}, nil
}

// Cancel отменяет запланированное интервью.
func (s *InterviewService) Cancel(ctx context.Context, interviewID, actorID uuid.UUID) (*models.Interview, error) {
	interview, err := s.repo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if interview.Status != valueobject.InterviewStatusScheduled {
		return nil, apperror.New(apperror.ErrCodeAlreadyCompleted,
			"интервью уже завершено или отменено")
	}

	interview.Status = valueobject.InterviewStatusCancelled
	if err := s.repo.Cancel(ctx, interview); err != nil {
		return nil, err
	}

	if s.activity != nil {
		_ = s.activity.Add(ctx, &actorID, models.ActionInterviewCancel, "interview", interview.ID, nil, nil)
	}

	return interview, nil
}

// highestLevel возвращает наибольший из достигнутых уровней интервью.
func highestLevel(current *valueobject.InterviewLevel, reached valueobject.InterviewLevel) *valueobject.InterviewLevel {
	if current != nil && current.Rank() >= reached.Rank() {
		return current
	}
	return &reached
}
