package dto

import (
	"github.com/ignatzorin/ats-backend/internal/models"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// AuthResponse represents the result of register, login or refresh
type AuthResponse struct {
	User   *models.User `json:"user"`
	Tokens interface{}  `json:"tokens"`
}

// DecisionResponse represents an interview decision with the resulting candidate state
type DecisionResponse struct {
	Interview *models.Interview `json:"interview"`
	Candidate *models.Candidate `json:"candidate"`
}

// OfferDecisionResponse represents an offer decision with the resulting candidate state
type OfferDecisionResponse struct {
	Offer     *models.Offer     `json:"offer"`
	Candidate *models.Candidate `json:"candidate"`
}

// CandidateHistoryResponse represents a candidate with its audit trail
type CandidateHistoryResponse struct {
	Candidate *models.Candidate    `json:"candidate"`
	History   []models.ActivityLog `json:"history"`
}
