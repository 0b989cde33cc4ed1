package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
	"github.com/ignatzorin/ats-backend/internal/dto"
	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/service"
)

// JobOrderHandler предоставляет HTTP слой для вакансий.
type JobOrderHandler struct {
	jobOrders *service.JobOrderService
}

// NewJobOrderHandler создаёт хэндлер.
func NewJobOrderHandler(jobOrders *service.JobOrderService) *JobOrderHandler {
	return &JobOrderHandler{jobOrders: jobOrders}
}

// CreateJobOrder обрабатывает POST /job-orders.
func (h *JobOrderHandler) CreateJobOrder(c *gin.Context) {
	var req dto.CreateJobOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор компании"})
		return
	}

	jobOrder := &models.JobOrder{
		CompanyID:          companyID,
		Title:              req.Title,
		Description:        req.Description,
		Requirements:       req.Requirements,
		Location:           req.Location,
		SalaryRange:        req.SalaryRange,
		Positions:          req.Positions,
		Status:             valueobject.JobOrderStatus(req.Status),
		AssignedRecruiters: req.AssignedRecruiters,
		CreatedBy:          userID,
	}

	created, err := h.jobOrders.CreateJobOrder(c.Request.Context(), jobOrder)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetJobOrder обрабатывает GET /job-orders/:id.
func (h *JobOrderHandler) GetJobOrder(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	jobOrder, err := h.jobOrders.GetJobOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobOrder)
}

// ListJobOrders обрабатывает GET /job-orders?company_id=...
func (h *JobOrderHandler) ListJobOrders(c *gin.Context) {
	var companyID *uuid.UUID
	if raw := c.Query("company_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор компании"})
			return
		}
		companyID = &parsed
	}

	jobOrders, err := h.jobOrders.ListJobOrders(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobOrders)
}

// UpdateJobOrder обрабатывает PUT /job-orders/:id.
func (h *JobOrderHandler) UpdateJobOrder(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateJobOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jobOrder := &models.JobOrder{
		ID:                 id,
		Title:              req.Title,
		Description:        req.Description,
		Requirements:       req.Requirements,
		Location:           req.Location,
		SalaryRange:        req.SalaryRange,
		Positions:          req.Positions,
		Status:             valueobject.JobOrderStatus(req.Status),
		AssignedRecruiters: req.AssignedRecruiters,
	}

	updated, err := h.jobOrders.UpdateJobOrder(c.Request.Context(), jobOrder)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteJobOrder обрабатывает DELETE /job-orders/:id.
func (h *JobOrderHandler) DeleteJobOrder(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.jobOrders.DeleteJobOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "вакансия удалена"})
}

// AssignRecruiters обрабатывает PUT /job-orders/:id/recruiters.
func (h *JobOrderHandler) AssignRecruiters(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.AssignRecruitersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jobOrder, err := h.jobOrders.AssignRecruiters(c.Request.Context(), id, req.RecruiterIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobOrder)
}
