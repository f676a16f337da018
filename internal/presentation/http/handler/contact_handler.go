package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sellstack/pipeline-api/internal/application/service"
	"github.com/sellstack/pipeline-api/internal/presentation/http/dto/response"
)

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// List handles listing contacts. An exact email lookup is available via the
// email query parameter so clients can check for an existing contact before
// converting a lead.
func (h *ContactHandler) List(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		contact, err := h.contactService.FindContactByEmail(c.Request.Context(), email)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Contact retrieved successfully", contact)
		return
	}

	params := pageParams(c)
	search := c.Query("search")

	result, err := h.contactService.ListContacts(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Contacts retrieved successfully", result)
}

// Create handles creating a contact
func (h *ContactHandler) Create(c *gin.Context) {
	var req struct {
		AccountID            uint    `json:"account_id" binding:"required"`
		Salutation           *string `json:"salutation"`
		FirstName            *string `json:"first_name"`
		LastName             string  `json:"last_name" binding:"required"`
		Email                *string `json:"email"`
		Phone                *string `json:"phone"`
		Title                *string `json:"title"`
		MailingStreet        *string `json:"mailing_street"`
		MailingCity          *string `json:"mailing_city"`
		MailingStateProvince *string `json:"mailing_state_province"`
		MailingZipPostalCode *string `json:"mailing_zip_postal_code"`
		MailingCountry       *string `json:"mailing_country"`
		Owner                *string `json:"contact_owner"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), &service.CreateContactInput{
		AccountID:            req.AccountID,
		Salutation:           req.Salutation,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		Phone:                req.Phone,
		Title:                req.Title,
		MailingStreet:        req.MailingStreet,
		MailingCity:          req.MailingCity,
		MailingStateProvince: req.MailingStateProvince,
		MailingZipPostalCode: req.MailingZipPostalCode,
		MailingCountry:       req.MailingCountry,
		Owner:                req.Owner,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Contact created successfully", contact)
}

// Get handles getting a single contact
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid contact ID")
		return
	}

	contact, err := h.contactService.GetContact(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contact retrieved successfully", contact)
}

// Update handles updating a contact
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid contact ID")
		return
	}

	var req struct {
		AccountID            *uint   `json:"account_id"`
		Salutation           *string `json:"salutation"`
		FirstName            *string `json:"first_name"`
		LastName             *string `json:"last_name"`
		Email                *string `json:"email"`
		Phone                *string `json:"phone"`
		Title                *string `json:"title"`
		MailingStreet        *string `json:"mailing_street"`
		MailingCity          *string `json:"mailing_city"`
		MailingStateProvince *string `json:"mailing_state_province"`
		MailingZipPostalCode *string `json:"mailing_zip_postal_code"`
		MailingCountry       *string `json:"mailing_country"`
		Owner                *string `json:"contact_owner"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.contactService.UpdateContact(c.Request.Context(), &service.UpdateContactInput{
		ID:                   id,
		AccountID:            req.AccountID,
		Salutation:           req.Salutation,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		Phone:                req.Phone,
		Title:                req.Title,
		MailingStreet:        req.MailingStreet,
		MailingCity:          req.MailingCity,
		MailingStateProvince: req.MailingStateProvince,
		MailingZipPostalCode: req.MailingZipPostalCode,
		MailingCountry:       req.MailingCountry,
		Owner:                req.Owner,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contact updated successfully", contact)
}

// Delete handles deleting a contact
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid contact ID")
		return
	}

	if err := h.contactService.DeleteContact(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
