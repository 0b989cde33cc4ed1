package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
)

// Offer описывает оффер кандидату. У кандидата может быть не более одного
// не отозванного оффера. Инвариант: RespondedAt заполнен тогда и только
// тогда, когда статус отличен от OFFERED.
type Offer struct {
	ID                  uuid.UUID               `db:"id" json:"id"`
	CandidateID         uuid.UUID               `db:"candidate_id" json:"candidate_id"`
	JobOrderID          uuid.UUID               `db:"job_order_id" json:"job_order_id"`
	OfferedRole         string                  `db:"offered_role" json:"offered_role"`
	OfferedSalary       string                  `db:"offered_salary" json:"offered_salary"`
	ExpectedJoiningDate time.Time               `db:"expected_joining_date" json:"expected_joining_date"`
	JoiningBonus        *float64                `db:"joining_bonus" json:"joining_bonus,omitempty"`
	Benefits            *string                 `db:"benefits" json:"benefits,omitempty"`
	OfferNotes          *string                 `db:"offer_notes" json:"offer_notes,omitempty"`
	Status              valueobject.OfferStatus `db:"status" json:"status"`
	OfferedAt           time.Time               `db:"offered_at" json:"offered_at"`
	RespondedAt         *time.Time              `db:"responded_at" json:"responded_at,omitempty"`
	CreatedBy           uuid.UUID               `db:"created_by" json:"created_by"`
	CreatedAt           time.Time               `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time               `db:"updated_at" json:"updated_at"`
}
