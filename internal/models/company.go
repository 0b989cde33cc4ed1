package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
)

// Company описывает компанию-клиента агентства.
type Company struct {
	ID              uuid.UUID                 `db:"id" json:"id"`
	Name            string                    `db:"name" json:"name"`
	Industry        *string                   `db:"industry" json:"industry,omitempty"`
	Location        *string                   `db:"location" json:"location,omitempty"`
	Address         *string                   `db:"address" json:"address,omitempty"`
	City            *string                   `db:"city" json:"city,omitempty"`
	State           *string                   `db:"state" json:"state,omitempty"`
	PostalCode      *string                   `db:"postal_code" json:"postal_code,omitempty"`
	WebSite         *string                   `db:"web_site" json:"web_site,omitempty"`
	PrimaryPhone    *string                   `db:"primary_phone" json:"primary_phone,omitempty"`
	SecondaryPhone  *string                   `db:"secondary_phone" json:"secondary_phone,omitempty"`
	ContactEmail    *string                   `db:"contact_email" json:"contact_email,omitempty"`
	ContactPhone    *string                   `db:"contact_phone" json:"contact_phone,omitempty"`
	Departments     *string                   `db:"departments" json:"departments,omitempty"`
	KeyTechnologies *string                   `db:"key_technologies" json:"key_technologies,omitempty"`
	MiscNotes       *string                   `db:"misc_notes" json:"misc_notes,omitempty"`
	IsHotCompany    bool                      `db:"is_hot_company" json:"is_hot_company"`
	Status          valueobject.CompanyStatus `db:"status" json:"status"`
	CreatedBy       uuid.UUID                 `db:"created_by" json:"created_by"`
	CreatedAt       time.Time                 `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time                 `db:"updated_at" json:"updated_at"`
}
