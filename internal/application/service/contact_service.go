package service

import (
	"context"
	"errors"

	"github.com/sellstack/pipeline-api/internal/domain/entity"
	"github.com/sellstack/pipeline-api/internal/domain/repository"
	"github.com/sellstack/pipeline-api/pkg/apperror"
	"github.com/sellstack/pipeline-api/pkg/pagination"
)

// ContactService handles contact-related operations
type ContactService struct {
	contactRepo repository.ContactRepository
	accountRepo repository.AccountRepository
}

// NewContactService creates a new contact service
func NewContactService(contactRepo repository.ContactRepository, accountRepo repository.AccountRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo, accountRepo: accountRepo}
}

// CreateContactInput represents the create contact input
type CreateContactInput struct {
	AccountID            uint
	Salutation           *string
	FirstName            *string
	LastName             string
	Email                *string
	Phone                *string
	Title                *string
	MailingStreet        *string
	MailingCity          *string
	MailingStateProvince *string
	MailingZipPostalCode *string
	MailingCountry       *string
	Owner                *string
}

// CreateContact creates a new contact bound to an existing account
func (s *ContactService) CreateContact(ctx context.Context, input *CreateContactInput) (*entity.Contact, error) {
	account, err := s.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}

	contact := &entity.Contact{
		AccountID:            input.AccountID,
		Salutation:           input.Salutation,
		FirstName:            input.FirstName,
		LastName:             input.LastName,
		Email:                input.Email,
		Phone:                input.Phone,
		Title:                input.Title,
		MailingStreet:        input.MailingStreet,
		MailingCity:          input.MailingCity,
		MailingStateProvince: input.MailingStateProvince,
		MailingZipPostalCode: input.MailingZipPostalCode,
		MailingCountry:       input.MailingCountry,
		Owner:                input.Owner,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateContactEmail
		}
		return nil, err
	}

	return contact, nil
}

// GetContact retrieves a contact by ID
func (s *ContactService) GetContact(ctx context.Context, id uint) (*entity.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, apperror.NewNotFoundError("Contact")
	}
	return contact, nil
}

// FindContactByEmail retrieves the contact owning the given email address
func (s *ContactService) FindContactByEmail(ctx context.Context, email string) (*entity.Contact, error) {
	contact, err := s.contactRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, apperror.NewNotFoundError("Contact")
	}
	return contact, nil
}

// ListContacts lists contacts with pagination and search
func (s *ContactService) ListContacts(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Contact], error) {
	contacts, total, err := s.contactRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(contacts, pag), nil
}

// UpdateContactInput represents the update contact input
type UpdateContactInput struct {
	ID                   uint
	AccountID            *uint
	Salutation           *string
	FirstName            *string
	LastName             *string
	Email                *string
	Phone                *string
	Title                *string
	MailingStreet        *string
	MailingCity          *string
	MailingStateProvince *string
	MailingZipPostalCode *string
	MailingCountry       *string
	Owner                *string
}

// UpdateContact updates a contact
func (s *ContactService) UpdateContact(ctx context.Context, input *UpdateContactInput) (*entity.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, apperror.NewNotFoundError("Contact")
	}

	if input.AccountID != nil {
		account, err := s.accountRepo.GetByID(ctx, *input.AccountID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, apperror.NewNotFoundError("Account")
		}
		contact.AccountID = *input.AccountID
	}
	if input.Salutation != nil {
		contact.Salutation = input.Salutation
	}
	if input.FirstName != nil {
		contact.FirstName = input.FirstName
	}
	if input.LastName != nil {
		contact.LastName = *input.LastName
	}
	if input.Email != nil {
		contact.Email = input.Email
	}
	if input.Phone != nil {
		contact.Phone = input.Phone
	}
	if input.Title != nil {
		contact.Title = input.Title
	}
	if input.MailingStreet != nil {
		contact.MailingStreet = input.MailingStreet
	}
	if input.MailingCity != nil {
		contact.MailingCity = input.MailingCity
	}
	if input.MailingStateProvince != nil {
		contact.MailingStateProvince = input.MailingStateProvince
	}
	if input.MailingZipPostalCode != nil {
		contact.MailingZipPostalCode = input.MailingZipPostalCode
	}
	if input.MailingCountry != nil {
		contact.MailingCountry = input.MailingCountry
	}
	if input.Owner != nil {
		contact.Owner = input.Owner
	}

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateContactEmail
		}
		return nil, err
	}

	return contact, nil
}

// DeleteContact deletes a contact
func (s *ContactService) DeleteContact(ctx context.Context, id uint) error {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if contact == nil {
		return apperror.NewNotFoundError("Contact")
	}

	return s.contactRepo.Delete(ctx, id)
}
