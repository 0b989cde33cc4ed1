package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/pkg/apperror"
	"github.com/ignatzorin/ats-backend/internal/validation"
)

// JobOrderRepository описывает зависимости JobOrderService от слоя хранилища.
type JobOrderRepository interface {
	Create(ctx context.Context, jobOrder *models.JobOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.JobOrder, error)
	List(ctx context.Context, companyID *uuid.UUID) ([]models.JobOrder, error)
	Update(ctx context.Context, jobOrder *models.JobOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompanyGetter нужен JobOrderService для проверки существования компании.
type CompanyGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
}

// CandidateLister нужен JobOrderService для проверки кандидатов в воронке.
type CandidateLister interface {
	List(ctx context.Context, jobOrderID *uuid.UUID) ([]models.Candidate, error)
}

// JobOrderService управляет вакансиями клиентов.
type JobOrderService struct {
	repo       JobOrderRepository
	companies  CompanyGetter
	candidates CandidateLister
	users      UserLister
}

// UserLister нужен для проверки назначаемых рекрутёров.
type UserLister interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// NewJobOrderService создаёт сервис вакансий.
func NewJobOrderService(repo JobOrderRepository, companies CompanyGetter, candidates CandidateLister, users UserLister) *JobOrderService {
	return &JobOrderService{repo: repo, companies: companies, candidates: candidates, users: users}
}

// CreateJobOrder открывает вакансию у компании-клиента.
func (s *JobOrderService) CreateJobOrder(ctx context.Context, jobOrder *models.JobOrder) (*models.JobOrder, error) {
	if err := validation.ValidateJobTitle(jobOrder.Title); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if jobOrder.Positions <= 0 {
		jobOrder.Positions = 1
	}

	if _, err := s.companies.GetByID(ctx, jobOrder.CompanyID); err != nil {
		return nil, err
	}

	if err := s.checkRecruiters(ctx, jobOrder.AssignedRecruiters); err != nil {
		return nil, err
	}

	if jobOrder.Status == "" {
		jobOrder.Status = valueobject.JobOrderStatusOpen
	}
	if !jobOrder.Status.IsValid() {
		return nil, apperror.New(apperror.ErrCodeValidation, "некорректный статус вакансии")
	}

	if err := s.repo.Create(ctx, jobOrder); err != nil {
		return nil, err
	}
	return jobOrder, nil
}

// GetJobOrder возвращает вакансию по идентификатору.
func (s *JobOrderService) GetJobOrder(ctx context.Context, id uuid.UUID) (*models.JobOrder, error) {
	return s.repo.GetByID(ctx, id)
}

// ListJobOrders возвращает вакансии, при необходимости фильтруя по компании.
func (s *JobOrderService) ListJobOrders(ctx context.Context, companyID *uuid.UUID) ([]models.JobOrder, error) {
	return s.repo.List(ctx, companyID)
}

// UpdateJobOrder обновляет вакансию.
func (s *JobOrderService) UpdateJobOrder(ctx context.Context, jobOrder *models.JobOrder) (*models.JobOrder, error) {
	existing, err := s.repo.GetByID(ctx, jobOrder.ID)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateJobTitle(jobOrder.Title); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if !jobOrder.Status.IsValid() {
		return nil, apperror.New(apperror.ErrCodeValidation, "некорректный статус вакансии")
	}
	if err := s.checkRecruiters(ctx, jobOrder.AssignedRecruiters); err != nil {
		return nil, err
	}

	// Компания вакансии не меняется после создания.
	jobOrder.CompanyID = existing.CompanyID
	jobOrder.CreatedBy = existing.CreatedBy
	jobOrder.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, jobOrder); err != nil {
		return nil, err
	}
	return jobOrder, nil
}

// DeleteJobOrder удаляет вакансию. Вакансия с кандидатами не удаляется.
func (s *JobOrderService) DeleteJobOrder(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	candidates, err := s.candidates.List(ctx, &id)
	if err != nil {
		return err
	}
	if len(candidates) > 0 {
		return apperror.New(apperror.ErrCodeConflict, "в воронке вакансии есть кандидаты, сначала удалите их")
	}

	return s.repo.Delete(ctx, id)
}

// AssignRecruiters заменяет список назначенных рекрутёров.
func (s *JobOrderService) AssignRecruiters(ctx context.Context, id uuid.UUID, recruiterIDs []string) (*models.JobOrder, error) {
	jobOrder, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkRecruiters(ctx, recruiterIDs); err != nil {
		return nil, err
	}

	jobOrder.AssignedRecruiters = recruiterIDs
	if err := s.repo.Update(ctx, jobOrder); err != nil {
		return nil, err
	}
	return jobOrder, nil
}

// checkRecruiters проверяет, что все идентификаторы указывают на существующих пользователей.
func (s *JobOrderService) checkRecruiters(ctx context.Context, recruiterIDs []string) error {
	for _, raw := range recruiterIDs {
		recruiterID, err := uuid.Parse(raw)
		if err != nil {
			return apperror.New(apperror.ErrCodeValidation, "некорректный идентификатор рекрутёра")
		}
		if _, err := s.users.GetByID(ctx, recruiterID); err != nil {
			if apperror.IsNotFound(err) {
				return apperror.New(apperror.ErrCodeValidation, "рекрутёр не найден")
			}
			return err
		}
	}
	return nil
}
