package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sellstack/pipeline-api/internal/application/service"
	"github.com/sellstack/pipeline-api/internal/presentation/http/dto/response"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// List handles listing accounts
func (h *AccountHandler) List(c *gin.Context) {
	params := pageParams(c)
	search := c.Query("search")

	result, err := h.accountService.ListAccounts(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Accounts retrieved successfully", result)
}

// Create handles creating an account
func (h *AccountHandler) Create(c *gin.Context) {
	var req struct {
		Name                 string  `json:"name" binding:"required"`
		Website              *string `json:"website"`
		Phone                *string `json:"phone"`
		BillingStreet        *string `json:"billing_street"`
		BillingCity          *string `json:"billing_city"`
		BillingStateProvince *string `json:"billing_state_province"`
		BillingZipPostalCode *string `json:"billing_zip_postal_code"`
		BillingCountry       *string `json:"billing_country"`
		Owner                *string `json:"account_owner"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), &service.CreateAccountInput{
		Name:                 req.Name,
		Website:              req.Website,
		Phone:                req.Phone,
		BillingStreet:        req.BillingStreet,
		BillingCity:          req.BillingCity,
		BillingStateProvince: req.BillingStateProvince,
		BillingZipPostalCode: req.BillingZipPostalCode,
		BillingCountry:       req.BillingCountry,
		Owner:                req.Owner,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Account created successfully", account)
}

// Get handles getting a single account
func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Account retrieved successfully", account)
}

// Update handles updating an account
func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	var req struct {
		Name                 *string `json:"name"`
		Website              *string `json:"website"`
		Phone                *string `json:"phone"`
		BillingStreet        *string `json:"billing_street"`
		BillingCity          *string `json:"billing_city"`
		BillingStateProvince *string `json:"billing_state_province"`
		BillingZipPostalCode *string `json:"billing_zip_postal_code"`
		BillingCountry       *string `json:"billing_country"`
		Owner                *string `json:"account_owner"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), &service.UpdateAccountInput{
		ID:                   id,
		Name:                 req.Name,
		Website:              req.Website,
		Phone:                req.Phone,
		BillingStreet:        req.BillingStreet,
		BillingCity:          req.BillingCity,
		BillingStateProvince: req.BillingStateProvince,
		BillingZipPostalCode: req.BillingZipPostalCode,
		BillingCountry:       req.BillingCountry,
		Owner:                req.Owner,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Account updated successfully", account)
}

// Delete handles deleting an account
func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
