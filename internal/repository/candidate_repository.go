package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/pkg/apperror"
	"github.com/ignatzorin/ats-backend/internal/repository/common"
)

// CandidateRepository отвечает за работу с кандидатами.
type CandidateRepository struct {
	db *sqlx.DB
}

// NewCandidateRepository создаёт новый экземпляр.
func NewCandidateRepository(db *sqlx.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

// Create сохраняет нового кандидата. Статус всегда NO_CONTACT.
func (r *CandidateRepository) Create(ctx context.Context, candidate *models.Candidate) error {
	candidate.Status = valueobject.CandidateStatusNoContact
	query := `
		INSERT INTO candidates (
			job_order_id, first_name, last_name, email, phone,
			resume_url, linkedin_url, status, added_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, version, created_at, updated_at
	`
	if err := r.db.QueryRowxContext(ctx, query,
		candidate.JobOrderID, candidate.FirstName, candidate.LastName,
		candidate.Email, candidate.Phone, candidate.ResumeURL, candidate.LinkedinURL,
		candidate.Status, candidate.AddedBy,
	).Scan(&candidate.ID, &candidate.Version, &candidate.CreatedAt, &candidate.UpdatedAt); err != nil {
		return fmt.Errorf("candidate repository: create %w", err)
	}
	return nil
}

// GetByID возвращает кандидата по идентификатору.
func (r *CandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	return common.GetByID[models.Candidate](ctx, r.db, "candidates", id, apperror.ErrCandidateNotFound)
}

// List возвращает кандидатов, опционально фильтруя по вакансии.
func (r *CandidateRepository) List(ctx context.Context, jobOrderID *uuid.UUID) ([]models.Candidate, error) {
	var candidates []models.Candidate
	if jobOrderID != nil {
		query := `SELECT * FROM candidates WHERE job_order_id = $1 ORDER BY created_at DESC`
		if err := r.db.SelectContext(ctx, &candidates, query, *jobOrderID); err != nil {
			return nil, fmt.Errorf("candidate repository: list by job order %w", err)
		}
		return candidates, nil
	}
	query := `SELECT * FROM candidates ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &candidates, query); err != nil {
		return nil, fmt.Errorf("candidate repository: list %w", err)
	}
	return candidates, nil
}

// UpdateProfile сохраняет анкетные поля кандидата. Статус и уровень эта
// операция не трогает: они меняются только через UpdateStatus.
func (r *CandidateRepository) UpdateProfile(ctx context.Context, candidate *models.Candidate) error {
	query := `
		UPDATE candidates SET
			first_name = $2, last_name = $3, email = $4, phone = $5,
			resume_url = $6, linkedin_url = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	if err := r.db.QueryRowxContext(ctx, query,
		candidate.ID, candidate.FirstName, candidate.LastName, candidate.Email,
		candidate.Phone, candidate.ResumeURL, candidate.LinkedinURL,
	).Scan(&candidate.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrCandidateNotFound
		}
		return fmt.Errorf("candidate repository: update profile %w", err)
	}
	return nil
}

// UpdateStatus применяет переход статуса через compare-and-swap по версии.
// При гонке двух решений по одному кандидату проигравший получает
// VERSION_CONFLICT и должен повторить операцию с актуальным состоянием.
func (r *CandidateRepository) UpdateStatus(ctx context.Context, candidate *models.Candidate) error {
	return applyCandidateStatus(ctx, r.db, candidate)
}

// Delete удаляет кандидата (явное действие рекрутёра).
func (r *CandidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("candidate repository: delete %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperror.ErrCandidateNotFound
	}
	return nil
}

// PipelineCounts возвращает количество кандидатов: всего, в активной воронке
// и вышедших на работу за текущий месяц.
func (r *CandidateRepository) PipelineCounts(ctx context.Context) (total, inPipeline, joinedThisMonth int, err error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status NOT IN ('REJECTED', 'OFFER_DECLINED', 'SUCCESSFUL_HIRE', 'BAD_DELIVERY', 'TERMINATED')),
			COUNT(*) FILTER (WHERE status IN ('JOINED', 'SUCCESSFUL_HIRE') AND updated_at >= date_trunc('month', NOW()))
		FROM candidates
	`
	if err := r.db.QueryRowxContext(ctx, query).Scan(&total, &inPipeline, &joinedThisMonth); err != nil {
		return 0, 0, 0, fmt.Errorf("candidate repository: pipeline counts %w", err)
	}
	return total, inPipeline, joinedThisMonth, nil
}

// applyCandidateStatus выполняет CAS-обновление статуса кандидата. Общий для
// CandidateRepository и транзакций интервью/офферов: sqlx.ExtContext позволяет
// выполнять его как на *sqlx.DB, так и внутри *sqlx.Tx.
func applyCandidateStatus(ctx context.Context, ext sqlx.ExtContext, candidate *models.Candidate) error {
	var (
		newVersion int64
		updatedAt  time.Time
	)
	query := `
		UPDATE candidates
		SET status = $2, current_level = $3, version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $4
		RETURNING version, updated_at
	`
	err := ext.QueryRowxContext(ctx, query,
		candidate.ID, candidate.Status, candidate.CurrentLevel, candidate.Version,
	).Scan(&newVersion, &updatedAt)
	if err == nil {
		candidate.Version = newVersion
		candidate.UpdatedAt = updatedAt
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("candidate repository: update status %w", err)
	}

	// Строка не обновилась: либо кандидата нет, либо версия устарела.
	var exists bool
	if err := sqlx.GetContext(ctx, ext, &exists,
		`SELECT EXISTS (SELECT 1 FROM candidates WHERE id = $1)`, candidate.ID); err != nil {
		return fmt.Errorf("candidate repository: check existence %w", err)
	}
	if !exists {
		return apperror.ErrCandidateNotFound
	}
	return apperror.New(apperror.ErrCodeVersionConflict,
		"кандидат был изменён параллельно, повторите операцию")
}
