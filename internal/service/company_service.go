package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/pkg/apperror"
	"github.com/ignatzorin/ats-backend/internal/validation"
)

// CompanyRepository описывает зависимости CompanyService от слоя хранилища.
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	List(ctx context.Context) ([]models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// JobOrderLister нужен CompanyService для проверки связанных вакансий.
type JobOrderLister interface {
	List(ctx context.Context, companyID *uuid.UUID) ([]models.JobOrder, error)
}

// CompanyService управляет компаниями-клиентами агентства.
type CompanyService struct {
	repo      CompanyRepository
	jobOrders JobOrderLister
}

// NewCompanyService создаёт сервис компаний.
func NewCompanyService(repo CompanyRepository, jobOrders JobOrderLister) *CompanyService {
	return &CompanyService{repo: repo, jobOrders: jobOrders}
}

// CreateCompany регистрирует нового клиента.
func (s *CompanyService) CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error) {
	if err := validation.ValidateCompanyName(company.Name); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if company.ContactEmail != nil && *company.ContactEmail != "" {
		if err := validation.ValidateEmail(*company.ContactEmail); err != nil {
			return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
		}
	}
	if err := validation.ValidatePhone(company.ContactPhone); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateOptionalURL("web_site", company.WebSite); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}

	if company.Status == "" {
		company.Status = valueobject.CompanyStatusActive
	}
	if !company.Status.IsValid() {
		return nil, apperror.New(apperror.ErrCodeValidation, "некорректный статус компании")
	}

	if err := s.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetCompany возвращает компанию по идентификатору.
func (s *CompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCompanies возвращает всех клиентов агентства.
func (s *CompanyService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return s.repo.List(ctx)
}

// UpdateCompany обновляет данные клиента.
func (s *CompanyService) UpdateCompany(ctx context.Context, company *models.Company) (*models.Company, error) {
	existing, err := s.repo.GetByID(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateCompanyName(company.Name); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if company.ContactEmail != nil && *company.ContactEmail != "" {
		if err := validation.ValidateEmail(*company.ContactEmail); err != nil {
			return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
		}
	}
	if !company.Status.IsValid() {
		return nil, apperror.New(apperror.ErrCodeValidation, "некорректный статус компании")
	}

	company.CreatedBy = existing.CreatedBy
	company.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany удаляет клиента. Компания с вакансиями не удаляется.
func (s *CompanyService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	jobOrders, err := s.jobOrders.List(ctx, &id)
	if err != nil {
		return err
	}
	if len(jobOrders) > 0 {
		return apperror.New(apperror.ErrCodeConflict, "у компании есть вакансии, сначала удалите их")
	}

	return s.repo.Delete(ctx, id)
}
