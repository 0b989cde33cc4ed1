package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
	"github.com/ignatzorin/ats-backend/internal/logger"
	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/pkg/apperror"
	"github.com/ignatzorin/ats-backend/internal/validation"
)

// CandidateRepository описывает зависимости CandidateService от слоя хранилища.
type CandidateRepository interface {
	Create(ctx context.Context, candidate *models.Candidate) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
	List(ctx context.Context, jobOrderID *uuid.UUID) ([]models.Candidate, error)
	UpdateProfile(ctx context.Context, candidate *models.Candidate) error
	UpdateStatus(ctx context.Context, candidate *models.Candidate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// JobOrderRepoForCandidate нужен для проверки вакансии при добавлении кандидата.
type JobOrderRepoForCandidate interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.JobOrder, error)
}

// ActivityLogger пишет и читает журнал действий.
type ActivityLogger interface {
	Add(ctx context.Context, userID *uuid.UUID, action, entityType string, entityID uuid.UUID, oldValue, newValue interface{}) error
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]models.ActivityLog, error)
}

// PipelineNotifier рассылает события воронки подписанным пользователям.
type PipelineNotifier interface {
	BroadcastToUser(userID uuid.UUID, event string, data any) error
}

// CandidateService — владелец жизненного цикла кандидата. Все изменения
// статуса проходят через Transition: проверка перехода, CAS-запись, аудит.
type CandidateService struct {
	repo      CandidateRepository
	jobOrders JobOrderRepoForCandidate
	activity  ActivityLogger
	notifier  PipelineNotifier
}

// NewCandidateService создаёт сервис кандидатов.
func NewCandidateService(repo CandidateRepository, jobOrders JobOrderRepoForCandidate, activity ActivityLogger) *CandidateService {
	return &CandidateService{repo: repo, jobOrders: jobOrders, activity: activity}
}

// SetNotifier подключает рассылку событий воронки (websocket hub).
func (s *CandidateService) SetNotifier(notifier PipelineNotifier) {
	s.notifier = notifier
}

// CreateCandidateInput содержит данные нового кандидата.
type CreateCandidateInput struct {
	JobOrderID  uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	Phone       *string
	ResumeURL   *string
	LinkedinURL *string
	AddedBy     uuid.UUID
}

// AddCandidate добавляет кандидата в воронку вакансии в статусе NO_CONTACT.
func (s *CandidateService) AddCandidate(ctx context.Context, in CreateCandidateInput) (*models.Candidate, error) {
	if err := validation.ValidatePersonName(in.FirstName, in.LastName); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateOptionalURL("resume_url", in.ResumeURL); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateOptionalURL("linkedin_url", in.LinkedinURL); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}

	if _, err := s.jobOrders.GetByID(ctx, in.JobOrderID); err != nil {
		return nil, err
	}

	candidate := &models.Candidate{
		JobOrderID:  in.JobOrderID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		ResumeURL:   in.ResumeURL,
		LinkedinURL: in.LinkedinURL,
		AddedBy:     in.AddedBy,
	}

	if err := s.repo.Create(ctx, candidate); err != nil {
		return nil, err
	}

	return candidate, nil
}

// GetCandidate возвращает кандидата по идентификатору.
func (s *CandidateService) GetCandidate(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCandidates возвращает кандидатов, опционально по вакансии.
func (s *CandidateService) ListCandidates(ctx context.Context, jobOrderID *uuid.UUID) ([]models.Candidate, error) {
	return s.repo.List(ctx, jobOrderID)
}

// UpdateProfileInput содержит анкетные поля кандидата.
type UpdateProfileInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	ResumeURL   *string
	LinkedinURL *string
}

// UpdateProfile обновляет анкетные поля. Статус отсюда изменить нельзя.
func (s *CandidateService) UpdateProfile(ctx context.Context, id uuid.UUID, in UpdateProfileInput) (*models.Candidate, error) {
	candidate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		candidate.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		candidate.LastName = *in.LastName
	}
	if in.Email != nil {
		if err := validation.ValidateEmail(*in.Email); err != nil {
			return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
		}
		candidate.Email = *in.Email
	}
	if in.Phone != nil {
		candidate.Phone = in.Phone
	}
	if in.ResumeURL != nil {
		if err := validation.ValidateOptionalURL("resume_url", in.ResumeURL); err != nil {
			return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
		}
		candidate.ResumeURL = in.ResumeURL
	}
	if in.LinkedinURL != nil {
		if err := validation.ValidateOptionalURL("linkedin_url", in.LinkedinURL); err != nil {
			return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
		}
		candidate.LinkedinURL = in.LinkedinURL
	}
	if err := validation.ValidatePersonName(candidate.FirstName, candidate.LastName); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}

	if err := s.repo.UpdateProfile(ctx, candidate); err != nil {
		return nil, err
	}

	return candidate, nil
}

// DeleteCandidate удаляет кандидата (явное действие рекрутёра).
func (s *CandidateService) DeleteCandidate(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Transition переводит кандидата в целевой статус: проверяет допустимость
// перехода, записывает новое состояние через CAS и фиксирует аудит.
func (s *CandidateService) Transition(ctx context.Context, candidateID uuid.UUID, target valueobject.CandidateStatus, actorID uuid.UUID) (*models.Candidate, error) {
	candidate, err := s.repo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	if err := validateTransition(candidate.Status, target); err != nil {
		return nil, err
	}

	oldStatus := candidate.Status
	candidate.Status = target

	if err := s.repo.UpdateStatus(ctx, candidate); err != nil {
		return nil, err
	}

	s.recordStatusChange(ctx, actorID, models.ActionStatusChanged, candidate, oldStatus, nil)
	return candidate, nil
}

// GetHistory возвращает журнал действий по кандидату.
func (s *CandidateService) GetHistory(ctx context.Context, id uuid.UUID) ([]models.ActivityLog, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.activity.ListByEntity(ctx, "candidate", id)
}

// MarkContacted отмечает первичный контакт с кандидатом.
func (s *CandidateService) MarkContacted(ctx context.Context, candidateID, actorID uuid.UUID) (*models.Candidate, error) {
	return s.Transition(ctx, candidateID, valueobject.CandidateStatusContacted, actorID)
}

// Qualify отмечает успешный скрининг.
func (s *CandidateService) Qualify(ctx context.Context, candidateID, actorID uuid.UUID) (*models.Candidate, error) {
	return s.Transition(ctx, candidateID, valueobject.CandidateStatusQualified, actorID)
}

// Reject отклоняет кандидата на этапе скрининга.
func (s *CandidateService) Reject(ctx context.Context, candidateID, actorID uuid.UUID) (*models.Candidate, error) {
	return s.Transition(ctx, candidateID, valueobject.CandidateStatusRejected, actorID)
}

// recordStatusChange пишет аудит и рассылает событие воронки. Ошибки здесь
// не прерывают операцию: переход уже зафиксирован в базе.
func (s *CandidateService) recordStatusChange(ctx context.Context, actorID uuid.UUID, action string, candidate *models.Candidate, oldStatus valueobject.CandidateStatus, extra map[string]any) {
	newValue := map[string]any{"status": candidate.Status}
	for k, v := range extra {
		newValue[k] = v
	}

	if s.activity != nil {
		err := s.activity.Add(ctx, &actorID, action, "candidate", candidate.ID,
			map[string]any{"status": oldStatus}, newValue)
		if err != nil && logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"candidate_id": candidate.ID,
				"action":       action,
			}).WithError(err).Warn("не удалось записать аудит перехода")
		}
	}

	if s.notifier != nil {
		payload := map[string]any{
			"candidate_id": candidate.ID,
			"old_status":   oldStatus,
			"new_status":   candidate.Status,
		}
		if err := s.notifier.BroadcastToUser(candidate.AddedBy, "candidate_status_changed", payload); err != nil && logger.Log != nil {
			logger.Log.WithField("candidate_id", candidate.ID).
				WithError(err).Warn("не удалось отправить уведомление о переходе")
		}
	}
}

// validateTransition — единая проверка перехода статуса кандидата,
// используемая всеми тремя потоками: действиями рекрутёра, решением по
// интервью и событиями оффера.
func validateTransition(from, to valueobject.CandidateStatus) error {
	if !to.IsValid() {
		return apperror.New(apperror.ErrCodeValidation, "некорректный статус кандидата")
	}
	if from.IsTerminal() {
		return apperror.New(apperror.ErrCodeTerminalState,
			fmt.Sprintf("кандидат уже в конечном статусе %s", from))
	}
	if !from.CanTransitionTo(to) {
		return apperror.New(apperror.ErrCodeInvalidTransition,
			fmt.Sprintf("переход %s -> %s недопустим", from, to))
	}
	return nil
}
