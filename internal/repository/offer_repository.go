package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/pkg/apperror"
	"github.com/ignatzorin/ats-backend/internal/repository/common"
)

// Код ошибки PostgreSQL при нарушении уникального индекса.
const pgUniqueViolation = "23505"

// OfferRepository отвечает за работу с офферами.
type OfferRepository struct {
	db *sqlx.DB
}

// NewOfferRepository создаёт новый экземпляр.
func NewOfferRepository(db *sqlx.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// CreateWithCandidate сохраняет оффер и переводит кандидата в OFFERED одной
// транзакцией. Частичный уникальный индекс по candidate_id страхует правило
// «не более одного активного оффера» на уровне базы.
func (r *OfferRepository) CreateWithCandidate(ctx context.Context, offer *models.Offer, candidate *models.Candidate) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO offers (
				candidate_id, job_order_id, offered_role, offered_salary,
				expected_joining_date, joining_bonus, benefits, offer_notes,
				status, offered_at, created_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at, updated_at
		`
		err := tx.QueryRowxContext(ctx, query,
			offer.CandidateID, offer.JobOrderID, offer.OfferedRole, offer.OfferedSalary,
			offer.ExpectedJoiningDate, offer.JoiningBonus, offer.Benefits, offer.OfferNotes,
			offer.Status, offer.OfferedAt, offer.CreatedBy,
		).Scan(&offer.ID, &offer.CreatedAt, &offer.UpdatedAt)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
				return apperror.New(apperror.ErrCodeConflict,
					"у кандидата уже есть активный оффер")
			}
			return fmt.Errorf("offer repository: create %w", err)
		}
		return applyCandidateStatus(ctx, tx, candidate)
	})
}

// GetByID возвращает оффер по идентификатору.
func (r *OfferRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Offer, error) {
	return common.GetByID[models.Offer](ctx, r.db, "offers", id, apperror.ErrOfferNotFound)
}

// GetActiveByCandidate возвращает не отозванный оффер кандидата, если он есть.
func (r *OfferRepository) GetActiveByCandidate(ctx context.Context, candidateID uuid.UUID) (*models.Offer, error) {
	var offer models.Offer
	query := `SELECT * FROM offers WHERE candidate_id = $1 AND status <> 'WITHDRAWN'`
	if err := r.db.GetContext(ctx, &offer, query, candidateID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("offer repository: get active by candidate %w", err)
	}
	return &offer, nil
}

// List возвращает офферы, опционально фильтруя по кандидату.
func (r *OfferRepository) List(ctx context.Context, candidateID *uuid.UUID) ([]models.Offer, error) {
	var offers []models.Offer
	if candidateID != nil {
		query := `SELECT * FROM offers WHERE candidate_id = $1 ORDER BY created_at DESC`
		if err := r.db.SelectContext(ctx, &offers, query, *candidateID); err != nil {
			return nil, fmt.Errorf("offer repository: list by candidate %w", err)
		}
		return offers, nil
	}
	query := `SELECT * FROM offers ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &offers, query); err != nil {
		return nil, fmt.Errorf("offer repository: list %w", err)
	}
	return offers, nil
}

// DecideWithCandidate записывает ответ по офферу и переводит кандидата одной
// транзакцией. Условие status='OFFERED' в UPDATE гарантирует, что ответ
// записывается ровно один раз.
func (r *OfferRepository) DecideWithCandidate(ctx context.Context, offer *models.Offer, candidate *models.Candidate) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			UPDATE offers
			SET status = $2, responded_at = $3, updated_at = NOW()
			WHERE id = $1 AND status = 'OFFERED'
			RETURNING updated_at
		`
		if err := tx.QueryRowxContext(ctx, query,
			offer.ID, offer.Status, offer.RespondedAt,
		).Scan(&offer.UpdatedAt); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperror.New(apperror.ErrCodeAlreadyCompleted,
					"ответ по этому офферу уже записан")
			}
			return fmt.Errorf("offer repository: decide %w", err)
		}
		return applyCandidateStatus(ctx, tx, candidate)
	})
}

// WithdrawWithCandidate отзывает оффер и возвращает кандидата в HIRED одной
// транзакцией. После отзыва частичный уникальный индекс перестаёт видеть
// оффер, и кандидату можно сделать новый.
func (r *OfferRepository) WithdrawWithCandidate(ctx context.Context, offer *models.Offer, candidate *models.Candidate) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			UPDATE offers
			SET status = 'WITHDRAWN', responded_at = $2, updated_at = NOW()
			WHERE id = $1 AND status = 'OFFERED'
			RETURNING updated_at
		`
		if err := tx.QueryRowxContext(ctx, query, offer.ID, offer.RespondedAt).Scan(&offer.UpdatedAt); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperror.New(apperror.ErrCodeAlreadyCompleted,
					"ответ по этому офферу уже записан")
			}
			return fmt.Errorf("offer repository: withdraw %w", err)
		}
		return applyCandidateStatus(ctx, tx, candidate)
	})
}
