package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/pkg/apperror"
	"github.com/ignatzorin/ats-backend/internal/repository/common"
)

// InterviewRepository отвечает за работу с интервью.
type InterviewRepository struct {
	db *sqlx.DB
}

// NewInterviewRepository создаёт новый экземпляр.
func NewInterviewRepository(db *sqlx.DB) *InterviewRepository {
	return &InterviewRepository{db: db}
}

// Create сохраняет новое запланированное интервью.
func (r *InterviewRepository) Create(ctx context.Context, interview *models.Interview) error {
	query := `
		INSERT INTO interviews (
			candidate_id, job_order_id, level, scheduled_at, status,
			interviewer_name, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	if err := r.db.QueryRowxContext(ctx, query,
		interview.CandidateID, interview.JobOrderID, interview.Level,
		interview.ScheduledAt, interview.Status, interview.InterviewerName, interview.CreatedBy,
	).Scan(&interview.ID, &interview.CreatedAt, &interview.UpdatedAt); err != nil {
		return fmt.Errorf("interview repository: create %w", err)
	}
	return nil
}

// GetByID возвращает интервью по идентификатору.
func (r *InterviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Interview, error) {
	return common.GetByID[models.Interview](ctx, r.db, "interviews", id, apperror.ErrInterviewNotFound)
}

// ListByCandidate возвращает интервью кандидата в порядке их проведения.
func (r *InterviewRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.Interview, error) {
	var interviews []models.Interview
	query := `SELECT * FROM interviews WHERE candidate_id = $1 ORDER BY scheduled_at ASC`
	if err := r.db.SelectContext(ctx, &interviews, query, candidateID); err != nil {
		return nil, fmt.Errorf("interview repository: list by candidate %w", err)
	}
	return interviews, nil
}

// ListByJobOrder возвращает интервью по вакансии.
func (r *InterviewRepository) ListByJobOrder(ctx context.Context, jobOrderID uuid.UUID) ([]models.Interview, error) {
	var interviews []models.Interview
	query := `SELECT * FROM interviews WHERE job_order_id = $1 ORDER BY scheduled_at ASC`
	if err := r.db.SelectContext(ctx, &interviews, query, jobOrderID); err != nil {
		return nil, fmt.Errorf("interview repository: list by job order %w", err)
	}
	return interviews, nil
}

// Complete закрывает интервью решением и применяет переход кандидата одной
// транзакцией. Интервью завершается ровно один раз: условие status='SCHEDULED'
// в UPDATE отсекает повторное решение, CAS по версии кандидата отсекает гонку
// двух параллельных решений.
func (r *InterviewRepository) Complete(ctx context.Context, interview *models.Interview, candidate *models.Candidate) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			UPDATE interviews
			SET status = $2, outcome = $3, feedback = $4, updated_at = NOW()
			WHERE id = $1 AND status = 'SCHEDULED'
			RETURNING updated_at
		`
		if err := tx.QueryRowxContext(ctx, query,
			interview.ID, interview.Status, interview.Outcome, interview.Feedback,
		).Scan(&interview.UpdatedAt); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperror.New(apperror.ErrCodeAlreadyCompleted,
					"решение по этому интервью уже записано")
			}
			return fmt.Errorf("interview repository: complete %w", err)
		}
		return applyCandidateStatus(ctx, tx, candidate)
	})
}

// Cancel отменяет запланированное интервью. Статус кандидата не меняется.
func (r *InterviewRepository) Cancel(ctx context.Context, interview *models.Interview) error {
	query := `
		UPDATE interviews
		SET status = 'CANCELLED', updated_at = NOW()
		WHERE id = $1 AND status = 'SCHEDULED'
		RETURNING updated_at
	`
	if err := r.db.QueryRowxContext(ctx, query, interview.ID).Scan(&interview.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.New(apperror.ErrCodeAlreadyCompleted,
				"интервью уже завершено или отменено")
		}
		return fmt.Errorf("interview repository: cancel %w", err)
	}
	return nil
}
