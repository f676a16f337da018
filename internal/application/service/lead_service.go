package service

import (
	"context"

	"github.com/sellstack/pipeline-api/internal/domain/entity"
	"github.com/sellstack/pipeline-api/internal/domain/enum"
	"github.com/sellstack/pipeline-api/internal/domain/repository"
	"github.com/sellstack/pipeline-api/pkg/apperror"
	"github.com/sellstack/pipeline-api/pkg/pagination"
)

// LeadService handles lead-related operations
type LeadService struct {
	leadRepo repository.LeadRepository
}

// NewLeadService creates a new lead service
func NewLeadService(leadRepo repository.LeadRepository) *LeadService {
	return &LeadService{leadRepo: leadRepo}
}

// CreateLeadInput represents the create lead input
type CreateLeadInput struct {
	Salutation    *string
	FirstName     *string
	LastName      string
	Company       string
	Title         *string
	Email         *string
	Phone         *string
	Website       *string
	Street        *string
	City          *string
	StateProvince *string
	ZipPostalCode *string
	Country       *string
	AnnualRevenue *float64
	Status        *string
	Owner         *string
}

// CreateLead creates a new lead
func (s *LeadService) CreateLead(ctx context.Context, input *CreateLeadInput) (*entity.Lead, error) {
	lead := &entity.Lead{
		Salutation:    input.Salutation,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Company:       input.Company,
		Title:         input.Title,
		Email:         input.Email,
		Phone:         input.Phone,
		Website:       input.Website,
		Street:        input.Street,
		City:          input.City,
		StateProvince: input.StateProvince,
		ZipPostalCode: input.ZipPostalCode,
		Country:       input.Country,
		AnnualRevenue: input.AnnualRevenue,
		Status:        enum.LeadStatusNew,
		Owner:         input.Owner,
	}
	if input.Status != nil && *input.Status != "" {
		lead.Status = enum.LeadStatus(*input.Status)
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}

// GetLead retrieves a lead by ID
func (s *LeadService) GetLead(ctx context.Context, id uint) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return lead, nil
}

// ListLeads lists leads with pagination and search
func (s *LeadService) ListLeads(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Lead], error) {
	leads, total, err := s.leadRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(leads, pag), nil
}

// UpdateLeadInput represents the update lead input
type UpdateLeadInput struct {
	ID            uint
	Salutation    *string
	FirstName     *string
	LastName      *string
	Company       *string
	Title         *string
	Email         *string
	Phone         *string
	Website       *string
	Street        *string
	City          *string
	StateProvince *string
	ZipPostalCode *string
	Country       *string
	AnnualRevenue *float64
	Status        *string
	Owner         *string
}

// UpdateLead updates a lead
func (s *LeadService) UpdateLead(ctx context.Context, input *UpdateLeadInput) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	if input.Salutation != nil {
		lead.Salutation = input.Salutation
	}
	if input.FirstName != nil {
		lead.FirstName = input.FirstName
	}
	if input.LastName != nil {
		lead.LastName = *input.LastName
	}
	if input.Company != nil {
		lead.Company = *input.Company
	}
	if input.Title != nil {
		lead.Title = input.Title
	}
	if input.Email != nil {
		lead.Email = input.Email
	}
	if input.Phone != nil {
		lead.Phone = input.Phone
	}
	if input.Website != nil {
		lead.Website = input.Website
	}
	if input.Street != nil {
		lead.Street = input.Street
	}
	if input.City != nil {
		lead.City = input.City
	}
	if input.StateProvince != nil {
		lead.StateProvince = input.StateProvince
	}
	if input.ZipPostalCode != nil {
		lead.ZipPostalCode = input.ZipPostalCode
	}
	if input.Country != nil {
		lead.Country = input.Country
	}
	if input.AnnualRevenue != nil {
		lead.AnnualRevenue = input.AnnualRevenue
	}
	if input.Status != nil {
		lead.Status = enum.LeadStatus(*input.Status)
	}
	if input.Owner != nil {
		lead.Owner = input.Owner
	}

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}

// DeleteLead deletes a lead
func (s *LeadService) DeleteLead(ctx context.Context, id uint) error {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return apperror.NewNotFoundError("Lead")
	}

	return s.leadRepo.Delete(ctx, id)
}
