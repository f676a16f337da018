package service

import (
	"context"
	"time"

	"github.com/sellstack/pipeline-api/internal/domain/entity"
	"github.com/sellstack/pipeline-api/internal/domain/enum"
	"github.com/sellstack/pipeline-api/internal/domain/repository"
	"github.com/sellstack/pipeline-api/pkg/apperror"
	"github.com/sellstack/pipeline-api/pkg/pagination"
)

// OpportunityService handles opportunity-related operations
type OpportunityService struct {
	opportunityRepo repository.OpportunityRepository
	accountRepo     repository.AccountRepository
}

// NewOpportunityService creates a new opportunity service
func NewOpportunityService(opportunityRepo repository.OpportunityRepository, accountRepo repository.AccountRepository) *OpportunityService {
	return &OpportunityService{opportunityRepo: opportunityRepo, accountRepo: accountRepo}
}

// CreateOpportunityInput represents the create opportunity input
type CreateOpportunityInput struct {
	AccountID        uint
	Name             string
	Stage            *string
	Amount           *float64
	CloseDate        *time.Time
	ForecastCategory *string
	Owner            *string
}

// CreateOpportunity creates a new opportunity bound to an existing account
func (s *OpportunityService) CreateOpportunity(ctx context.Context, input *CreateOpportunityInput) (*entity.Opportunity, error) {
	account, err := s.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}

	opportunity := &entity.Opportunity{
		AccountID:        input.AccountID,
		Name:             input.Name,
		Stage:            enum.OpportunityStageQualification,
		Amount:           input.Amount,
		CloseDate:        input.CloseDate,
		ForecastCategory: enum.ForecastCategoryPipeline,
		Owner:            input.Owner,
	}
	if input.Stage != nil && *input.Stage != "" {
		opportunity.Stage = enum.OpportunityStage(*input.Stage)
	}
	if input.ForecastCategory != nil && *input.ForecastCategory != "" {
		opportunity.ForecastCategory = enum.ForecastCategory(*input.ForecastCategory)
	}

	if err := s.opportunityRepo.Create(ctx, opportunity); err != nil {
		return nil, err
	}

	return opportunity, nil
}

// GetOpportunity retrieves an opportunity by ID
func (s *OpportunityService) GetOpportunity(ctx context.Context, id uint) (*entity.Opportunity, error) {
	opportunity, err := s.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if opportunity == nil {
		return nil, apperror.NewNotFoundError("Opportunity")
	}
	return opportunity, nil
}

// ListOpportunities lists opportunities with pagination and search
func (s *OpportunityService) ListOpportunities(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Opportunity], error) {
	opportunities, total, err := s.opportunityRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(opportunities, pag), nil
}

// UpdateOpportunityInput represents the update opportunity input
type UpdateOpportunityInput struct {
	ID               uint
	AccountID        *uint
	Name             *string
	Stage            *string
	Amount           *float64
	CloseDate        *time.Time
	ForecastCategory *string
	Owner            *string
}

// UpdateOpportunity updates an opportunity
func (s *OpportunityService) UpdateOpportunity(ctx context.Context, input *UpdateOpportunityInput) (*entity.Opportunity, error) {
	opportunity, err := s.opportunityRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if opportunity == nil {
		return nil, apperror.NewNotFoundError("Opportunity")
	}

	if input.AccountID != nil {
		account, err := s.accountRepo.GetByID(ctx, *input.AccountID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, apperror.NewNotFoundError("Account")
		}
		opportunity.AccountID = *input.AccountID
	}
	if input.Name != nil {
		opportunity.Name = *input.Name
	}
	if input.Stage != nil {
		opportunity.Stage = enum.OpportunityStage(*input.Stage)
	}
	if input.Amount != nil {
		opportunity.Amount = input.Amount
	}
	if input.CloseDate != nil {
		opportunity.CloseDate = input.CloseDate
	}
	if input.ForecastCategory != nil {
		opportunity.ForecastCategory = enum.ForecastCategory(*input.ForecastCategory)
	}
	if input.Owner != nil {
		opportunity.Owner = input.Owner
	}

	if err := s.opportunityRepo.Update(ctx, opportunity); err != nil {
		return nil, err
	}

	return opportunity, nil
}

// DeleteOpportunity deletes an opportunity
func (s *OpportunityService) DeleteOpportunity(ctx context.Context, id uint) error {
	opportunity, err := s.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if opportunity == nil {
		return apperror.NewNotFoundError("Opportunity")
	}

	return s.opportunityRepo.Delete(ctx, id)
}
