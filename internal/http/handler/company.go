package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/dto"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

type CompanyHandler struct {
	companyService service.CompanyService
}

func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (h *CompanyHandler) List(c *gin.Context) {
	batchID, ok := queryID(c, "batch_id")
	if !ok {
		return
	}

	companies, err := h.companyService.List(c.Request.Context(), batchID)
	if err != nil {
		respondError(c, err, "list companies")
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": nonNil(companies)})
}

func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	company, err := h.companyService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get company")
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid company: name is required")
		return
	}

	company, err := h.companyService.Create(ctx, req.ToInput())
	if err != nil {
		respondError(c, err, "create company")
		return
	}

	slog.InfoContext(ctx, "company created", "company_id", company.ID, "slug", company.Slug)
	c.JSON(http.StatusCreated, company)
}

// Update is open to admins and founders of the company.
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid company: name is required")
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), currentUser(c), id, req.ToInput())
	if err != nil {
		respondError(c, err, "update company")
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete company")
		return
	}
	c.Status(http.StatusNoContent)
}
