package service

import (
	"context"

	"github.com/sellstack/pipeline-api/internal/domain/entity"
	"github.com/sellstack/pipeline-api/internal/domain/repository"
	"github.com/sellstack/pipeline-api/pkg/apperror"
	"github.com/sellstack/pipeline-api/pkg/pagination"
)

// AccountService handles account-related operations
type AccountService struct {
	accountRepo repository.AccountRepository
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// CreateAccountInput represents the create account input
type CreateAccountInput struct {
	Name                 string
	Website              *string
	Phone                *string
	BillingStreet        *string
	BillingCity          *string
	BillingStateProvince *string
	BillingZipPostalCode *string
	BillingCountry       *string
	Owner                *string
}

// CreateAccount creates a new account
func (s *AccountService) CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.Account, error) {
	account := &entity.Account{
		Name:                 input.Name,
		Website:              input.Website,
		Phone:                input.Phone,
		BillingStreet:        input.BillingStreet,
		BillingCity:          input.BillingCity,
		BillingStateProvince: input.BillingStateProvince,
		BillingZipPostalCode: input.BillingZipPostalCode,
		BillingCountry:       input.BillingCountry,
		Owner:                input.Owner,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID
func (s *AccountService) GetAccount(ctx context.Context, id uint) (*entity.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}
	return account, nil
}

// ListAccounts lists accounts with pagination and search
func (s *AccountService) ListAccounts(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Account], error) {
	accounts, total, err := s.accountRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(accounts, pag), nil
}

// UpdateAccountInput represents the update account input
type UpdateAccountInput struct {
	ID                   uint
	Name                 *string
	Website              *string
	Phone                *string
	BillingStreet        *string
	BillingCity          *string
	BillingStateProvince *string
	BillingZipPostalCode *string
	BillingCountry       *string
	Owner                *string
}

// UpdateAccount updates an account
func (s *AccountService) UpdateAccount(ctx context.Context, input *UpdateAccountInput) (*entity.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}

	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Website != nil {
		account.Website = input.Website
	}
	if input.Phone != nil {
		account.Phone = input.Phone
	}
	if input.BillingStreet != nil {
		account.BillingStreet = input.BillingStreet
	}
	if input.BillingCity != nil {
		account.BillingCity = input.BillingCity
	}
	if input.BillingStateProvince != nil {
		account.BillingStateProvince = input.BillingStateProvince
	}
	if input.BillingZipPostalCode != nil {
		account.BillingZipPostalCode = input.BillingZipPostalCode
	}
	if input.BillingCountry != nil {
		account.BillingCountry = input.BillingCountry
	}
	if input.Owner != nil {
		account.Owner = input.Owner
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// DeleteAccount deletes an account
func (s *AccountService) DeleteAccount(ctx context.Context, id uint) error {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if account == nil {
		return apperror.NewNotFoundError("Account")
	}

	return s.accountRepo.Delete(ctx, id)
}
