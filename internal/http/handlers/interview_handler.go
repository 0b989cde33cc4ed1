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

// InterviewHandler предоставляет HTTP слой для интервью.
type InterviewHandler struct {
	interviews *service.InterviewService
}

// NewInterviewHandler создаёт хэндлер.
func NewInterviewHandler(interviews *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

// Schedule обрабатывает POST /interviews.
func (h *InterviewHandler) Schedule(c *gin.Context) {
	var req dto.ScheduleInterviewRequest
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

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scheduled_at должен быть в формате RFC3339"})
		return
	}

	interview, err := h.interviews.Schedule(c.Request.Context(), service.ScheduleInterviewInput{
		CandidateID:     candidateID,
		Level:           valueobject.InterviewLevel(req.Level),
		ScheduledAt:     scheduledAt,
		InterviewerName: req.InterviewerName,
		CreatedBy:       userID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, interview)
}

// GetInterview обрабатывает GET /interviews/:id.
func (h *InterviewHandler) GetInterview(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	interview, err := h.interviews.GetInterview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, interview)
}

// ListInterviews обрабатывает GET /interviews?candidate_id=...&job_order_id=...
func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	if raw := c.Query("candidate_id"); raw != "" {
		candidateID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор кандидата"})
			return
		}
		interviews, err := h.interviews.ListByCandidate(c.Request.Context(), candidateID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, interviews)
		return
	}

	if raw := c.Query("job_order_id"); raw != "" {
		jobOrderID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор вакансии"})
			return
		}
		interviews, err := h.interviews.ListByJobOrder(c.Request.Context(), jobOrderID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, interviews)
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "укажите candidate_id или job_order_id"})
}

// Decide обрабатывает POST /interviews/:id/decision — решение по
// завершённому интервью с переводом кандидата.
func (h *InterviewHandler) Decide(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.InterviewDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	result, err := h.interviews.Decide(c.Request.Context(), id, valueobject.InterviewOutcome(req.Decision), req.Feedback, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DecisionResponse{
		Interview: result.Interview,
		Candidate: result.Candidate,
	})
}

// Cancel обрабатывает POST /interviews/:id/cancel.
func (h *InterviewHandler) Cancel(c *gin.Context) {
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

	interview, err := h.interviews.Cancel(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, interview)
}
