package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
	"github.com/ignatzorin/ats-backend/internal/dto"
	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/service"
)

// CompanyHandler предоставляет HTTP слой для компаний-клиентов.
type CompanyHandler struct {
	companies *service.CompanyService
}

// NewCompanyHandler создаёт хэндлер.
func NewCompanyHandler(companies *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// CreateCompany обрабатывает POST /companies.
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	company := companyFromRequest(&req)
	company.CreatedBy = userID

	created, err := h.companies.CreateCompany(c.Request.Context(), company)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetCompany обрабатывает GET /companies/:id.
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	company, err := h.companies.GetCompany(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// ListCompanies обрабатывает GET /companies.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companies.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}

// UpdateCompany обрабатывает PUT /companies/:id.
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company := companyFromRequest(&req)
	company.ID = id

	updated, err := h.companies.UpdateCompany(c.Request.Context(), company)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCompany обрабатывает DELETE /companies/:id.
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.companies.DeleteCompany(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "компания удалена"})
}

func companyFromRequest(req *dto.CreateCompanyRequest) *models.Company {
	return &models.Company{
		Name:            req.Name,
		Industry:        req.Industry,
		Location:        req.Location,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		PostalCode:      req.PostalCode,
		WebSite:         req.WebSite,
		PrimaryPhone:    req.PrimaryPhone,
		SecondaryPhone:  req.SecondaryPhone,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		Departments:     req.Departments,
		KeyTechnologies: req.KeyTechnologies,
		MiscNotes:       req.MiscNotes,
		IsHotCompany:    req.IsHotCompany,
		Status:          valueobject.CompanyStatus(req.Status),
	}
}
