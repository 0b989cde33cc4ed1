package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
	"github.com/ignatzorin/ats-backend/internal/dto"
	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/service"
)

// CandidateHandler предоставляет HTTP слой для воронки кандидатов.
type CandidateHandler struct {
	candidates *service.CandidateService
}

// NewCandidateHandler создаёт хэндлер.
func NewCandidateHandler(candidates *service.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidates: candidates}
}

// CreateCandidate обрабатывает POST /candidates.
func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var req dto.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	jobOrderID, err := uuid.Parse(req.JobOrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор вакансии"})
		return
	}

	candidate, err := h.candidates.AddCandidate(c.Request.Context(), service.CreateCandidateInput{
		JobOrderID:  jobOrderID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		ResumeURL:   req.ResumeURL,
		LinkedinURL: req.LinkedinURL,
		AddedBy:     userID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, candidate)
}

// GetCandidate обрабатывает GET /candidates/:id.
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	candidate, err := h.candidates.GetCandidate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// ListCandidates обрабатывает GET /candidates?job_order_id=...
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	var jobOrderID *uuid.UUID
	if raw := c.Query("job_order_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор вакансии"})
			return
		}
		jobOrderID = &parsed
	}

	candidates, err := h.candidates.ListCandidates(c.Request.Context(), jobOrderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidates)
}

// UpdateCandidate обрабатывает PUT /candidates/:id. Меняет только анкетные
// поля, статус через этот endpoint изменить нельзя.
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate, err := h.candidates.UpdateProfile(c.Request.Context(), id, service.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		ResumeURL:   req.ResumeURL,
		LinkedinURL: req.LinkedinURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// DeleteCandidate обрабатывает DELETE /candidates/:id.
func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.candidates.DeleteCandidate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "кандидат удалён"})
}

// Transition обрабатывает POST /candidates/:id/transition — явный перевод
// кандидата в новый статус.
func (h *CandidateHandler) Transition(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	candidate, err := h.candidates.Transition(c.Request.Context(), id, valueobject.CandidateStatus(req.Status), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// MarkContacted обрабатывает POST /candidates/:id/contact.
func (h *CandidateHandler) MarkContacted(c *gin.Context) {
	h.shortcut(c, h.candidates.MarkContacted)
}

// Qualify обрабатывает POST /candidates/:id/qualify.
func (h *CandidateHandler) Qualify(c *gin.Context) {
	h.shortcut(c, h.candidates.Qualify)
}

// Reject обрабатывает POST /candidates/:id/reject.
func (h *CandidateHandler) Reject(c *gin.Context) {
	h.shortcut(c, h.candidates.Reject)
}

// GetHistory обрабатывает GET /candidates/:id/history.
func (h *CandidateHandler) GetHistory(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	candidate, err := h.candidates.GetCandidate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	history, err := h.candidates.GetHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CandidateHistoryResponse{
		Candidate: candidate,
		History:   history,
	})
}

type transitionFunc func(ctx context.Context, candidateID, actorID uuid.UUID) (*models.Candidate, error)

func (h *CandidateHandler) shortcut(c *gin.Context, fn transitionFunc) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	candidate, err := fn(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}
