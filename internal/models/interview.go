package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
)

// Interview описывает одно интервью кандидата на заданном уровне.
// Инвариант: Outcome заполнен тогда и только тогда, когда статус COMPLETED.
type Interview struct {
	ID              uuid.UUID                     `db:"id" json:"id"`
	CandidateID     uuid.UUID                     `db:"candidate_id" json:"candidate_id"`
	JobOrderID      uuid.UUID                     `db:"job_order_id" json:"job_order_id"`
	Level           valueobject.InterviewLevel    `db:"level" json:"level"`
	ScheduledAt     time.Time                     `db:"scheduled_at" json:"scheduled_at"`
	Status          valueobject.InterviewStatus   `db:"status" json:"status"`
	Outcome         *valueobject.InterviewOutcome `db:"outcome" json:"outcome,omitempty"`
	Feedback        *string                       `db:"feedback" json:"feedback,omitempty"`
	InterviewerName *string                       `db:"interviewer_name" json:"interviewer_name,omitempty"`
	CreatedBy       uuid.UUID                     `db:"created_by" json:"created_by"`
	CreatedAt       time.Time                     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time                     `db:"updated_at" json:"updated_at"`
}
