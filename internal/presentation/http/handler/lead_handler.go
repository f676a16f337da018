package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sellstack/pipeline-api/internal/application/service"
	"github.com/sellstack/pipeline-api/internal/presentation/http/dto/response"
)

// LeadHandler handles lead-related HTTP requests, including conversion
type LeadHandler struct {
	leadService    *service.LeadService
	convertService *service.ConvertService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *service.LeadService, convertService *service.ConvertService) *LeadHandler {
	return &LeadHandler{leadService: leadService, convertService: convertService}
}

// List handles listing leads
func (h *LeadHandler) List(c *gin.Context) {
	params := pageParams(c)
	search := c.Query("search")

	result, err := h.leadService.ListLeads(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Leads retrieved successfully", result)
}

// Create handles creating a lead
func (h *LeadHandler) Create(c *gin.Context) {
	var req struct {
		Salutation    *string  `json:"salutation"`
		FirstName     *string  `json:"first_name"`
		LastName      string   `json:"last_name" binding:"required"`
		Company       string   `json:"company"`
		Title         *string  `json:"title"`
		Email         *string  `json:"email"`
		Phone         *string  `json:"phone"`
		Website       *string  `json:"website"`
		Street        *string  `json:"street"`
		City          *string  `json:"city"`
		StateProvince *string  `json:"state_province"`
		ZipPostalCode *string  `json:"zip_postal_code"`
		Country       *string  `json:"country"`
		AnnualRevenue *float64 `json:"annual_revenue"`
		Status        *string  `json:"status"`
		Owner         *string  `json:"lead_owner"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), &service.CreateLeadInput{
		Salutation:    req.Salutation,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Company:       req.Company,
		Title:         req.Title,
		Email:         req.Email,
		Phone:         req.Phone,
		Website:       req.Website,
		Street:        req.Street,
		City:          req.City,
		StateProvince: req.StateProvince,
		ZipPostalCode: req.ZipPostalCode,
		Country:       req.Country,
		AnnualRevenue: req.AnnualRevenue,
		Status:        req.Status,
		Owner:         req.Owner,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Lead created successfully", lead)
}

// Get handles getting a single lead
func (h *LeadHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	lead, err := h.leadService.GetLead(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead retrieved successfully", lead)
}

// Update handles updating a lead
func (h *LeadHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req struct {
		Salutation    *string  `json:"salutation"`
		FirstName     *string  `json:"first_name"`
		LastName      *string  `json:"last_name"`
		Company       *string  `json:"company"`
		Title         *string  `json:"title"`
		Email         *string  `json:"email"`
		Phone         *string  `json:"phone"`
		Website       *string  `json:"website"`
		Street        *string  `json:"street"`
		City          *string  `json:"city"`
		StateProvince *string  `json:"state_province"`
		ZipPostalCode *string  `json:"zip_postal_code"`
		Country       *string  `json:"country"`
		AnnualRevenue *float64 `json:"annual_revenue"`
		Status        *string  `json:"status"`
		Owner         *string  `json:"lead_owner"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), &service.UpdateLeadInput{
		ID:            id,
		Salutation:    req.Salutation,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Company:       req.Company,
		Title:         req.Title,
		Email:         req.Email,
		Phone:         req.Phone,
		Website:       req.Website,
		Street:        req.Street,
		City:          req.City,
		StateProvince: req.StateProvince,
		ZipPostalCode: req.ZipPostalCode,
		Country:       req.Country,
		AnnualRevenue: req.AnnualRevenue,
		Status:        req.Status,
		Owner:         req.Owner,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead updated successfully", lead)
}

// Delete handles deleting a lead
func (h *LeadHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	if err := h.leadService.DeleteLead(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Convert handles converting a lead into an account, contact and optional
// opportunity
func (h *LeadHandler) Convert(c *gin.Context) {
	var req struct {
		LeadID                uint    `json:"leadId"`
		ConvertedStatus       string  `json:"convertedStatus"`
		DontCreateOpportunity bool    `json:"dontCreateOpportunity"`
		AccountID             *uint   `json:"accountId"`
		NewAccountName        *string `json:"newAccountName"`
		ContactID             *uint   `json:"contactId"`
		OpportunityID         *uint   `json:"opportunityId"`
		NewOpportunityName    *string `json:"newOpportunityName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.convertService.Convert(c.Request.Context(), &service.ConvertLeadInput{
		LeadID:                req.LeadID,
		ConvertedStatus:       req.ConvertedStatus,
		DontCreateOpportunity: req.DontCreateOpportunity,
		AccountID:             req.AccountID,
		NewAccountName:        req.NewAccountName,
		ContactID:             req.ContactID,
		OpportunityID:         req.OpportunityID,
		NewOpportunityName:    req.NewOpportunityName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead converted successfully", result)
}
