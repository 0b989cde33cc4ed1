package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
)

// JobOrder описывает вакансию компании, по которой ведётся подбор.
type JobOrder struct {
	ID                 uuid.UUID                  `db:"id" json:"id"`
	CompanyID          uuid.UUID                  `db:"company_id" json:"company_id"`
	Title              string                     `db:"title" json:"title"`
	Description        *string                    `db:"description" json:"description,omitempty"`
	Requirements       *string                    `db:"requirements" json:"requirements,omitempty"`
	Location           *string                    `db:"location" json:"location,omitempty"`
	SalaryRange        *string                    `db:"salary_range" json:"salary_range,omitempty"`
	Positions          int                        `db:"positions" json:"positions"`
	Status             valueobject.JobOrderStatus `db:"status" json:"status"`
	AssignedRecruiters pq.StringArray             `db:"assigned_recruiters" json:"assigned_recruiters"`
	CreatedBy          uuid.UUID                  `db:"created_by" json:"created_by"`
	CreatedAt          time.Time                  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time                  `db:"updated_at" json:"updated_at"`
}
