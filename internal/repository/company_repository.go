package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/pkg/apperror"
	"github.com/ignatzorin/ats-backend/internal/repository/common"
)

// CompanyRepository отвечает за работу с компаниями-клиентами.
type CompanyRepository struct {
	db *sqlx.DB
}

// NewCompanyRepository создаёт новый экземпляр.
func NewCompanyRepository(db *sqlx.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create сохраняет новую компанию.
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (
			name, industry, location, address, city, state, postal_code, web_site,
			primary_phone, secondary_phone, contact_email, contact_phone,
			departments, key_technologies, misc_notes, is_hot_company, status, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, created_at, updated_at
	`
	if err := r.db.QueryRowxContext(ctx, query,
		company.Name, company.Industry, company.Location, company.Address,
		company.City, company.State, company.PostalCode, company.WebSite,
		company.PrimaryPhone, company.SecondaryPhone, company.ContactEmail, company.ContactPhone,
		company.Departments, company.KeyTechnologies, company.MiscNotes,
		company.IsHotCompany, company.Status, company.CreatedBy,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt); err != nil {
		return fmt.Errorf("company repository: create %w", err)
	}
	return nil
}

// GetByID возвращает компанию по идентификатору.
func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	return common.GetByID[models.Company](ctx, r.db, "companies", id, apperror.ErrCompanyNotFound)
}

// List возвращает все компании.
func (r *CompanyRepository) List(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	query := `SELECT * FROM companies ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &companies, query); err != nil {
		return nil, fmt.Errorf("company repository: list %w", err)
	}
	return companies, nil
}

// Update сохраняет изменения компании.
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	query := `
		UPDATE companies SET
			name = $2, industry = $3, location = $4, address = $5, city = $6,
			state = $7, postal_code = $8, web_site = $9, primary_phone = $10,
			secondary_phone = $11, contact_email = $12, contact_phone = $13,
			departments = $14, key_technologies = $15, misc_notes = $16,
			is_hot_company = $17, status = $18, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	if err := r.db.QueryRowxContext(ctx, query,
		company.ID, company.Name, company.Industry, company.Location, company.Address,
		company.City, company.State, company.PostalCode, company.WebSite,
		company.PrimaryPhone, company.SecondaryPhone, company.ContactEmail, company.ContactPhone,
		company.Departments, company.KeyTechnologies, company.MiscNotes,
		company.IsHotCompany, company.Status,
	).Scan(&company.UpdatedAt); err != nil {
		return fmt.Errorf("company repository: update %w", err)
	}
	return nil
}

// Delete удаляет компанию.
func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("company repository: delete %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperror.ErrCompanyNotFound
	}
	return nil
}

// CountByStatus возвращает общее количество компаний и количество в заданном статусе.
func (r *CompanyRepository) CountByStatus(ctx context.Context, status valueobject.CompanyStatus) (total int, inStatus int, err error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1) FROM companies`
	if err := r.db.QueryRowxContext(ctx, query, status).Scan(&total, &inStatus); err != nil {
		return 0, 0, fmt.Errorf("company repository: count %w", err)
	}
	return total, inStatus, nil
}
