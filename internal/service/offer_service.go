package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/pkg/apperror"
)

// OfferRepository описывает зависимости OfferService от слоя хранилища.
type OfferRepository interface {
	CreateWithCandidate(ctx context.Context, offer *models.Offer, candidate *models.Candidate) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Offer, error)
	GetActiveByCandidate(ctx context.Context, candidateID uuid.UUID) (*models.Offer, error)
	List(ctx context.Context, candidateID *uuid.UUID) ([]models.Offer, error)
	DecideWithCandidate(ctx context.Context, offer *models.Offer, candidate *models.Candidate) error
	WithdrawWithCandidate(ctx context.Context, offer *models.Offer, candidate *models.Candidate) error
}

// CandidateRepoForOffer даёт доступ к кандидату при работе с офферами.
type CandidateRepoForOffer interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
	UpdateStatus(ctx context.Context, candidate *models.Candidate) error
}

// OfferService управляет офферами: создание, ответ, отзыв, подтверждение
// выхода и итог после выхода. Каждое событие синхронизировано с жизненным
// циклом кандидата.
type OfferService struct {
	repo       OfferRepository
	candidates CandidateRepoForOffer
	activity   ActivityLogger
}

// NewOfferService создаёт сервис офферов.
func NewOfferService(repo OfferRepository, candidates CandidateRepoForOffer, activity ActivityLogger) *OfferService {
	return &OfferService{repo: repo, candidates: candidates, activity: activity}
}

// CreateOfferInput содержит данные нового оффера.
type CreateOfferInput struct {
	CandidateID         uuid.UUID
	OfferedRole         string
	OfferedSalary       string
	ExpectedJoiningDate time.Time
	JoiningBonus        *float64
	Benefits            *string
	OfferNotes          *string
	CreatedBy           uuid.UUID
}

// CreateOffer создаёт оффер кандидату в статусе HIRED и переводит его в
// OFFERED. У кандидата может быть только один не отозванный оффер: правило
// проверяется здесь и продублировано уникальным индексом в базе.
func (s *OfferService) CreateOffer(ctx context.Context, in CreateOfferInput) (*models.Offer, error) {
	if in.OfferedRole == "" || in.OfferedSalary == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "роль и зарплата оффера обязательны")
	}
	if in.ExpectedJoiningDate.IsZero() {
		return nil, apperror.New(apperror.ErrCodeValidation, "ожидаемая дата выхода обязательна")
	}

	candidate, err := s.candidates.GetByID(ctx, in.CandidateID)
	if err != nil {
		return nil, err
	}
	if err := validateTransition(candidate.Status, valueobject.CandidateStatusOffered); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetActiveByCandidate(ctx, in.CandidateID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.New(apperror.ErrCodeConflict, "у кандидата уже есть активный оффер")
	}

	oldStatus := candidate.Status
	candidate.Status = valueobject.CandidateStatusOffered

	offer := &models.Offer{
		CandidateID:         candidate.ID,
		JobOrderID:          candidate.JobOrderID,
		OfferedRole:         in.OfferedRole,
		OfferedSalary:       in.OfferedSalary,
		ExpectedJoiningDate: in.ExpectedJoiningDate,
		JoiningBonus:        in.JoiningBonus,
		Benefits:            in.Benefits,
		OfferNotes:          in.OfferNotes,
		Status:              valueobject.OfferStatusOffered,
		OfferedAt:           time.Now(),
		CreatedBy:           in.CreatedBy,
	}

	if err := s.repo.CreateWithCandidate(ctx, offer, candidate); err != nil {
		return nil, err
	}

	if s.activity != nil {
		_ = s.activity.Add(ctx, &in.CreatedBy, models.ActionOfferCreated, "candidate", candidate.ID,
			map[string]any{"status": oldStatus},
			map[string]any{"status": candidate.Status, "offer_id": offer.ID})
	}

	return offer, nil
}

// GetOffer возвращает оффер по идентификатору.
func (s *OfferService) GetOffer(ctx context.Context, id uuid.UUID) (*models.Offer, error) {
	return s.repo.GetByID(ctx, id)
}

// ListOffers возвращает офферы, опционально по кандидату.
func (s *OfferService) ListOffers(ctx context.Context, candidateID *uuid.UUID) ([]models.Offer, error) {
	return s.repo.List(ctx, candidateID)
}

// OfferDecisionResult возвращает итог решения по офферу.
type OfferDecisionResult struct {
	Offer     *models.Offer
	Candidate *models.Candidate
}

// Decide записывает ответ кандидата по офферу и переводит его в
// OFFER_ACCEPTED или OFFER_DECLINED. Ответ записывается ровно один раз.
func (s *OfferService) Decide(ctx context.Context, offerID uuid.UUID, accepted bool, notes *string, actorID uuid.UUID) (*OfferDecisionResult, error) {
	offer, err := s.repo.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.Status.IsResponded() {
		return nil, apperror.New(apperror.ErrCodeAlreadyCompleted,
			"ответ по этому офферу уже записан")
	}

	candidate, err := s.candidates.GetByID(ctx, offer.CandidateID)
	if err != nil {
		return nil, err
	}

	target := valueobject.CandidateStatusOfferAccepted
	offerStatus := valueobject.OfferStatusAccepted
	if !accepted {
		target = valueobject.CandidateStatusOfferDeclined
		offerStatus = valueobject.OfferStatusDeclined
	}
	if err := validateTransition(candidate.Status, target); err != nil {
		return nil, err
	}

	oldStatus := candidate.Status
	candidate.Status = target

	now := time.Now()
	offer.Status = offerStatus
	offer.RespondedAt = &now

	if err := s.repo.DecideWithCandidate(ctx, offer, candidate); err != nil {
		return nil, err
	}

	if s.activity != nil {
		_ = s.activity.Add(ctx, &actorID, models.ActionOfferDecision, "candidate", candidate.ID,
			map[string]any{"status": oldStatus},
			map[string]any{"status": candidate.Status, "offer_id": offer.ID, "notes": notes})
	}

	return &OfferDecisionResult{Offer: offer, Candidate: candidate}, nil
}

// Withdraw отзывает оффер и возвращает кандидата в статус HIRED: место под
// новый оффер освобождается, и воронка может продолжиться.
func (s *OfferService) Withdraw(ctx context.Context, offerID, actorID uuid.UUID) (*models.Offer, error) {
	offer, err := s.repo.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.Status.IsResponded() {
		return nil, apperror.New(apperror.ErrCodeAlreadyCompleted,
			"ответ по этому офферу уже записан")
	}

	candidate, err := s.candidates.GetByID(ctx, offer.CandidateID)
	if err != nil {
		return nil, err
	}
	if err := validateTransition(candidate.Status, valueobject.CandidateStatusHired); err != nil {
		return nil, err
	}

	oldStatus := candidate.Status
	candidate.Status = valueobject.CandidateStatusHired

	now := time.Now()
	offer.Status = valueobject.OfferStatusWithdrawn
	offer.RespondedAt = &now

	if err := s.repo.WithdrawWithCandidate(ctx, offer, candidate); err != nil {
		return nil, err
	}

	if s.activity != nil {
		_ = s.activity.Add(ctx, &actorID, models.ActionOfferWithdrawn, "candidate", candidate.ID,
			map[string]any{"status": oldStatus},
			map[string]any{"status": candidate.Status, "offer_id": offer.ID})
	}

	return offer, nil
}

// ConfirmJoining подтверждает выход кандидата на работу по принятому офферу.
// Фактическая дата выхода сохраняется в журнале аудита, сам оффер после
// ответа не изменяется.
func (s *OfferService) ConfirmJoining(ctx context.Context, offerID uuid.UUID, actualJoinDate time.Time, actorID uuid.UUID) (*models.Candidate, error) {
	offer, err := s.repo.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.Status != valueobject.OfferStatusAccepted {
		return nil, apperror.New(apperror.ErrCodeConflict,
			"подтвердить выход можно только по принятому офферу")
	}

	candidate, err := s.candidates.GetByID(ctx, offer.CandidateID)
	if err != nil {
		return nil, err
	}
	if err := validateTransition(candidate.Status, valueobject.CandidateStatusJoined); err != nil {
		return nil, err
	}

	oldStatus := candidate.Status
	candidate.Status = valueobject.CandidateStatusJoined

	if err := s.candidates.UpdateStatus(ctx, candidate); err != nil {
		return nil, err
	}

	if s.activity != nil {
		_ = s.activity.Add(ctx, &actorID, models.ActionJoiningConfirmed, "candidate", candidate.ID,
			map[string]any{"status": oldStatus},
			map[string]any{"status": candidate.Status, "actual_join_date": actualJoinDate})
	}

	return candidate, nil
}

// RecordPostJoiningOutcome фиксирует итог после выхода: успешный найм,
// проблемная поставка или увольнение. Все три статуса конечные.
func (s *OfferService) RecordPostJoiningOutcome(ctx context.Context, candidateID uuid.UUID, outcome valueobject.CandidateStatus, notes *string, actorID uuid.UUID) (*models.Candidate, error) {
	switch outcome {
	case valueobject.CandidateStatusSuccessfulHire,
		valueobject.CandidateStatusBadDelivery,
		valueobject.CandidateStatusTerminated:
	default:
		return nil, apperror.New(apperror.ErrCodeValidation,
			"итог после выхода должен быть SUCCESSFUL_HIRE, BAD_DELIVERY или TERMINATED")
	}

	candidate, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if err := validateTransition(candidate.Status, outcome); err != nil {
		return nil, err
	}

	oldStatus := candidate.Status
	candidate.Status = outcome

	if err := s.candidates.UpdateStatus(ctx, candidate); err != nil {
		return nil, err
	}

	if s.activity != nil {
		_ = s.activity.Add(ctx, &actorID, models.ActionPostJoiningOutcome, "candidate", candidate.ID,
			map[string]any{"status": oldStatus},
			map[string]any{"status": candidate.Status, "notes": notes})
	}

	return candidate, nil
}
