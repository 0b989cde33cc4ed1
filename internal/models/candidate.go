package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
)

// Candidate описывает кандидата в воронке конкретной вакансии.
// Поле Status изменяется исключительно через переходы жизненного цикла;
// Version используется для оптимистической блокировки при гонке двух решений.
type Candidate struct {
	ID           uuid.UUID                   `db:"id" json:"id"`
	JobOrderID   uuid.UUID                   `db:"job_order_id" json:"job_order_id"`
	FirstName    string                      `db:"first_name" json:"first_name"`
	LastName     string                      `db:"last_name" json:"last_name"`
	Email        string                      `db:"email" json:"email"`
	Phone        *string                     `db:"phone" json:"phone,omitempty"`
	ResumeURL    *string                     `db:"resume_url" json:"resume_url,omitempty"`
	LinkedinURL  *string                     `db:"linkedin_url" json:"linkedin_url,omitempty"`
	Status       valueobject.CandidateStatus `db:"status" json:"status"`
	CurrentLevel *valueobject.InterviewLevel `db:"current_level" json:"current_level,omitempty"`
	AddedBy      uuid.UUID                   `db:"added_by" json:"added_by"`
	Version      int64                       `db:"version" json:"version"`
	CreatedAt    time.Time                   `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time                   `db:"updated_at" json:"updated_at"`
}
