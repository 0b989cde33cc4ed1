package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
	"github.com/ignatzorin/ats-backend/internal/dto"
	"github.com/ignatzorin/ats-backend/internal/service"
)

// OfferHandler предоставляет HTTP слой для офферов.
type OfferHandler struct {
	offers *service.OfferService
}

// NewOfferHandler создаёт хэндлер.
func NewOfferHandler(offers *service.OfferService) *OfferHandler {
	return &OfferHandler{offers: offers}
}

// CreateOffer обрабатывает POST /offers.
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор кандидата"})
		return
	}

	joiningDate, err := time.Parse("2006-01-02", req.ExpectedJoiningDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected_joining_date должна быть в формате YYYY-MM-DD"})
		return
	}

	offer, err := h.offers.CreateOffer(c.Request.Context(), service.CreateOfferInput{
		CandidateID:         candidateID,
		OfferedRole:         req.OfferedRole,
		OfferedSalary:       req.OfferedSalary,
		ExpectedJoiningDate: joiningDate,
		JoiningBonus:        req.JoiningBonus,
		Benefits:            req.Benefits,
		OfferNotes:          req.OfferNotes,
		CreatedBy:           userID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, offer)
}

// GetOffer обрабатывает GET /offers/:id.
func (h *OfferHandler) GetOffer(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	offer, err := h.offers.GetOffer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, offer)
}

// ListOffers обрабатывает GET /offers?candidate_id=...
func (h *OfferHandler) ListOffers(c *gin.Context) {
	var candidateID *uuid.UUID
	if raw := c.Query("candidate_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор кандидата"})
			return
		}
		candidateID = &parsed
	}

	offers, err := h.offers.ListOffers(c.Request.Context(), candidateID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, offers)
}

// Decide обрабатывает POST /offers/:id/decision — ответ кандидата на оффер.
func (h *OfferHandler) Decide(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.OfferDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	result, err := h.offers.Decide(c.Request.Context(), id, req.Accepted, req.Notes, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OfferDecisionResponse{
		Offer:     result.Offer,
		Candidate: result.Candidate,
	})
}

// Withdraw обрабатывает POST /offers/:id/withdraw.
func (h *OfferHandler) Withdraw(c *gin.Context) {
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

	offer, err := h.offers.Withdraw(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, offer)
}

// ConfirmJoining обрабатывает POST /offers/:id/joining.
func (h *OfferHandler) ConfirmJoining(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.ConfirmJoiningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	actualJoinDate, err := time.Parse("2006-01-02", req.ActualJoinDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "actual_join_date должна быть в формате YYYY-MM-DD"})
		return
	}

	candidate, err := h.offers.ConfirmJoining(c.Request.Context(), id, actualJoinDate, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// PostJoiningOutcome обрабатывает POST /candidates/:id/post-joining —
// финальный исход после выхода кандидата.
func (h *OfferHandler) PostJoiningOutcome(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.PostJoiningOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	candidate, err := h.offers.RecordPostJoiningOutcome(c.Request.Context(), id, valueobject.CandidateStatus(req.Outcome), req.Notes, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}
