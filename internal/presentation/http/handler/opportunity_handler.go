package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sellstack/pipeline-api/internal/application/service"
	"github.com/sellstack/pipeline-api/internal/presentation/http/dto/response"
)

// OpportunityHandler handles opportunity-related HTTP requests
type OpportunityHandler struct {
	opportunityService *service.OpportunityService
}

// NewOpportunityHandler creates a new opportunity handler
func NewOpportunityHandler(opportunityService *service.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{opportunityService: opportunityService}
}

// List handles listing opportunities
func (h *OpportunityHandler) List(c *gin.Context) {
	params := pageParams(c)
	search := c.Query("search")

	result, err := h.opportunityService.ListOpportunities(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Opportunities retrieved successfully", result)
}

// Create handles creating an opportunity
func (h *OpportunityHandler) Create(c *gin.Context) {
	var req struct {
		AccountID        uint       `json:"account_id" binding:"required"`
		Name             string     `json:"name" binding:"required"`
		Stage            *string    `json:"stage"`
		Amount           *float64   `json:"amount"`
		CloseDate        *time.Time `json:"close_date"`
		ForecastCategory *string    `json:"forecast_category"`
		Owner            *string    `json:"opportunity_owner"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	opportunity, err := h.opportunityService.CreateOpportunity(c.Request.Context(), &service.CreateOpportunityInput{
		AccountID:        req.AccountID,
		Name:             req.Name,
		Stage:            req.Stage,
		Amount:           req.Amount,
		CloseDate:        req.CloseDate,
		ForecastCategory: req.ForecastCategory,
		Owner:            req.Owner,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Opportunity created successfully", opportunity)
}

// Get handles getting a single opportunity
func (h *OpportunityHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid opportunity ID")
		return
	}

	opportunity, err := h.opportunityService.GetOpportunity(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Opportunity retrieved successfully", opportunity)
}

// Update handles updating an opportunity
func (h *OpportunityHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid opportunity ID")
		return
	}

	var req struct {
		AccountID        *uint      `json:"account_id"`
		Name             *string    `json:"name"`
		Stage            *string    `json:"stage"`
		Amount           *float64   `json:"amount"`
		CloseDate        *time.Time `json:"close_date"`
		ForecastCategory *string    `json:"forecast_category"`
		Owner            *string    `json:"opportunity_owner"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	opportunity, err := h.opportunityService.UpdateOpportunity(c.Request.Context(), &service.UpdateOpportunityInput{
		ID:               id,
		AccountID:        req.AccountID,
		Name:             req.Name,
		Stage:            req.Stage,
		Amount:           req.Amount,
		CloseDate:        req.CloseDate,
		ForecastCategory: req.ForecastCategory,
		Owner:            req.Owner,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Opportunity updated successfully", opportunity)
}

// Delete handles deleting an opportunity
func (h *OpportunityHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid opportunity ID")
		return
	}

	if err := h.opportunityService.DeleteOpportunity(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
