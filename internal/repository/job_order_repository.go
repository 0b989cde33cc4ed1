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

// JobOrderRepository отвечает за работу с вакансиями.
type JobOrderRepository struct {
	db *sqlx.DB
}

// NewJobOrderRepository создаёт новый экземпляр.
func NewJobOrderRepository(db *sqlx.DB) *JobOrderRepository {
	return &JobOrderRepository{db: db}
}

// Create сохраняет новую вакансию.
func (r *JobOrderRepository) Create(ctx context.Context, jobOrder *models.JobOrder) error {
	query := `
		INSERT INTO job_orders (
			company_id, title, description, requirements, location,
			salary_range, positions, status, assigned_recruiters, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	if err := r.db.QueryRowxContext(ctx, query,
		jobOrder.CompanyID, jobOrder.Title, jobOrder.Description, jobOrder.Requirements,
		jobOrder.Location, jobOrder.SalaryRange, jobOrder.Positions, jobOrder.Status,
		jobOrder.AssignedRecruiters, jobOrder.CreatedBy,
	).Scan(&jobOrder.ID, &jobOrder.CreatedAt, &jobOrder.UpdatedAt); err != nil {
		return fmt.Errorf("job order repository: create %w", err)
	}
	return nil
}

// GetByID возвращает вакансию по идентификатору.
func (r *JobOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.JobOrder, error) {
	return common.GetByID[models.JobOrder](ctx, r.db, "job_orders", id, apperror.ErrJobOrderNotFound)
}

// List возвращает вакансии, опционально фильтруя по компании.
func (r *JobOrderRepository) List(ctx context.Context, companyID *uuid.UUID) ([]models.JobOrder, error) {
	var jobOrders []models.JobOrder
	if companyID != nil {
		query := `SELECT * FROM job_orders WHERE company_id = $1 ORDER BY created_at DESC`
		if err := r.db.SelectContext(ctx, &jobOrders, query, *companyID); err != nil {
			return nil, fmt.Errorf("job order repository: list by company %w", err)
		}
		return jobOrders, nil
	}
	query := `SELECT * FROM job_orders ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &jobOrders, query); err != nil {
		return nil, fmt.Errorf("job order repository: list %w", err)
	}
	return jobOrders, nil
}

// Update сохраняет изменения вакансии.
func (r *JobOrderRepository) Update(ctx context.Context, jobOrder *models.JobOrder) error {
	query := `
		UPDATE job_orders SET
			title = $2, description = $3, requirements = $4, location = $5,
			salary_range = $6, positions = $7, status = $8,
			assigned_recruiters = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	if err := r.db.QueryRowxContext(ctx, query,
		jobOrder.ID, jobOrder.Title, jobOrder.Description, jobOrder.Requirements,
		jobOrder.Location, jobOrder.SalaryRange, jobOrder.Positions, jobOrder.Status,
		jobOrder.AssignedRecruiters,
	).Scan(&jobOrder.UpdatedAt); err != nil {
		return fmt.Errorf("job order repository: update %w", err)
	}
	return nil
}

// Delete удаляет вакансию.
func (r *JobOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM job_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("job order repository: delete %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperror.ErrJobOrderNotFound
	}
	return nil
}

// CountByStatus возвращает общее количество вакансий и количество в заданном статусе.
func (r *JobOrderRepository) CountByStatus(ctx context.Context, status valueobject.JobOrderStatus) (total int, inStatus int, err error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1) FROM job_orders`
	if err := r.db.QueryRowxContext(ctx, query, status).Scan(&total, &inStatus); err != nil {
		return 0, 0, fmt.Errorf("job order repository: count %w", err)
	}
	return total, inStatus, nil
}
