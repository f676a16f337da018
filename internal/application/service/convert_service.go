package service

import (
	"context"
	"errors"
	"time"

	"github.com/sellstack/pipeline-api/internal/config"
	"github.com/sellstack/pipeline-api/internal/domain/entity"
	"github.com/sellstack/pipeline-api/internal/domain/enum"
	"github.com/sellstack/pipeline-api/internal/domain/repository"
	"github.com/sellstack/pipeline-api/pkg/apperror"
	"gorm.io/gorm"
)

// Conversion error values surfaced to callers. AlreadyConverted and the
// duplicate-email conflict are both 400s but carry distinct messages so the
// UI can tell the user what to do next.
var (
	ErrLeadAlreadyConverted  = apperror.NewBadRequestError("Lead has already been converted")
	ErrDuplicateContactEmail = apperror.NewBadRequestError("A contact with this email already exists; select the existing contact or change the email")
)

// ConvertService performs lead conversion: it resolves or creates the
// Account, Contact and Opportunity, then marks the lead converted, all
// inside a single database transaction.
type ConvertService struct {
	leadRepo        repository.LeadRepository
	accountRepo     repository.AccountRepository
	contactRepo     repository.ContactRepository
	opportunityRepo repository.OpportunityRepository
	tx              repository.TxRunner
	cfg             config.CRMConfig
}

// NewConvertService creates a new conversion service
func NewConvertService(
	leadRepo repository.LeadRepository,
	accountRepo repository.AccountRepository,
	contactRepo repository.ContactRepository,
	opportunityRepo repository.OpportunityRepository,
	tx repository.TxRunner,
	cfg config.CRMConfig,
) *ConvertService {
	if cfg.OpportunityCloseMonths <= 0 {
		cfg.OpportunityCloseMonths = 1
	}
	return &ConvertService{
		leadRepo:        leadRepo,
		accountRepo:     accountRepo,
		contactRepo:     contactRepo,
		opportunityRepo: opportunityRepo,
		tx:              tx,
		cfg:             cfg,
	}
}

// ConvertLeadInput represents the conversion request
type ConvertLeadInput struct {
	LeadID                uint
	ConvertedStatus       string
	DontCreateOpportunity bool
	AccountID             *uint
	NewAccountName        *string
	ContactID             *uint
	OpportunityID         *uint
	NewOpportunityName    *string
}

// ConversionResult holds the references produced by a successful conversion.
// Opportunity is nil when creation was suppressed.
type ConversionResult struct {
	Account     *entity.Account     `json:"account"`
	Contact     *entity.Contact     `json:"contact"`
	Opportunity *entity.Opportunity `json:"opportunity"`
}

// Convert validates the request, then runs the conversion inside one
// transaction. Any step failing rolls back every write performed so far, so
// a failed conversion never leaves a partial Account, Contact or Opportunity
// behind and never marks the lead converted.
func (s *ConvertService) Convert(ctx context.Context, input *ConvertLeadInput) (*ConversionResult, error) {
	if err := validateConvertInput(input); err != nil {
		return nil, err
	}

	// Fast-fail checks before any write is attempted. The status guard is
	// re-applied inside the transaction; this read only spares callers a
	// transaction for requests that can never succeed.
	lead, err := s.leadRepo.GetByID(ctx, input.LeadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	if !lead.Status.IsConvertible() {
		return nil, ErrLeadAlreadyConverted
	}

	var result *ConversionResult
	err = s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		accounts := s.accountRepo.WithTx(tx)
		contacts := s.contactRepo.WithTx(tx)
		opportunities := s.opportunityRepo.WithTx(tx)
		leads := s.leadRepo.WithTx(tx)

		account, err := s.resolveAccount(ctx, accounts, lead, input)
		if err != nil {
			return err
		}

		contact, err := s.resolveContact(ctx, contacts, lead, input, account.ID)
		if err != nil {
			return err
		}

		opportunity, err := s.resolveOpportunity(ctx, opportunities, lead, input, account.ID)
		if err != nil {
			return err
		}

		// The status write goes last and is guarded, so a concurrent
		// conversion of the same lead that committed after our initial read
		// aborts this one instead of converting twice.
		rows, err := leads.UpdateStatusExcluding(ctx, input.LeadID,
			enum.LeadStatus(input.ConvertedStatus), enum.TerminalLeadStatuses()...)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrLeadAlreadyConverted
		}

		result = &ConversionResult{
			Account:     account,
			Contact:     contact,
			Opportunity: opportunity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// validateConvertInput applies the pre-transaction request checks
func validateConvertInput(input *ConvertLeadInput) error {
	if input.LeadID == 0 || input.ConvertedStatus == "" {
		return apperror.NewBadRequestError("Lead id and converted status are required")
	}
	if input.AccountID == nil && !hasValue(input.NewAccountName) {
		return apperror.NewBadRequestError("Account id or new account name is required")
	}
	if !input.DontCreateOpportunity &&
		input.OpportunityID == nil && !hasValue(input.NewOpportunityName) {
		return apperror.NewBadRequestError("Opportunity id or new opportunity name is required")
	}
	return nil
}

// resolveAccount loads the referenced account or creates one from the lead
func (s *ConvertService) resolveAccount(ctx context.Context, accounts repository.AccountRepository, lead *entity.Lead, input *ConvertLeadInput) (*entity.Account, error) {
	if input.AccountID != nil {
		account, err := accounts.GetByID(ctx, *input.AccountID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, apperror.NewNotFoundError("Account")
		}
		return account, nil
	}

	account := &entity.Account{
		Name:                 *input.NewAccountName,
		Website:              lead.Website,
		Phone:                lead.Phone,
		BillingStreet:        lead.Street,
		BillingCity:          lead.City,
		BillingStateProvince: lead.StateProvince,
		BillingZipPostalCode: lead.ZipPostalCode,
		BillingCountry:       lead.Country,
		Owner:                s.ownerOrDefault(lead),
	}
	if err := accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// resolveContact loads the referenced contact or creates one from the lead,
// bound to the resolved account
func (s *ConvertService) resolveContact(ctx context.Context, contacts repository.ContactRepository, lead *entity.Lead, input *ConvertLeadInput, accountID uint) (*entity.Contact, error) {
	if input.ContactID != nil {
		contact, err := contacts.GetByID(ctx, *input.ContactID)
		if err != nil {
			return nil, err
		}
		if contact == nil {
			return nil, apperror.NewNotFoundError("Contact")
		}
		return contact, nil
	}

	contact := &entity.Contact{
		AccountID:            accountID,
		Salutation:           lead.Salutation,
		FirstName:            lead.FirstName,
		LastName:             lead.LastName,
		Email:                lead.Email,
		Phone:                lead.Phone,
		Title:                lead.Title,
		MailingStreet:        lead.Street,
		MailingCity:          lead.City,
		MailingStateProvince: lead.StateProvince,
		MailingZipPostalCode: lead.ZipPostalCode,
		MailingCountry:       lead.Country,
		Owner:                s.ownerOrDefault(lead),
	}
	if err := contacts.Create(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateContactEmail
		}
		return nil, err
	}
	return contact, nil
}

// resolveOpportunity loads the referenced opportunity, creates one from the
// lead, or returns nil when creation is suppressed
func (s *ConvertService) resolveOpportunity(ctx context.Context, opportunities repository.OpportunityRepository, lead *entity.Lead, input *ConvertLeadInput, accountID uint) (*entity.Opportunity, error) {
	if input.DontCreateOpportunity {
		return nil, nil
	}

	if input.OpportunityID != nil {
		opportunity, err := opportunities.GetByID(ctx, *input.OpportunityID)
		if err != nil {
			return nil, err
		}
		if opportunity == nil {
			return nil, apperror.NewNotFoundError("Opportunity")
		}
		return opportunity, nil
	}

	closeDate := time.Now().AddDate(0, s.cfg.OpportunityCloseMonths, 0)
	opportunity := &entity.Opportunity{
		AccountID:        accountID,
		Name:             *input.NewOpportunityName,
		Stage:            enum.OpportunityStageQualification,
		Amount:           lead.AnnualRevenue,
		CloseDate:        &closeDate,
		ForecastCategory: enum.ForecastCategoryPipeline,
		Owner:            s.ownerOrDefault(lead),
	}
	if err := opportunities.Create(ctx, opportunity); err != nil {
		return nil, err
	}
	return opportunity, nil
}

// ownerOrDefault returns the lead's owner, falling back to the configured
// default owner identity
func (s *ConvertService) ownerOrDefault(lead *entity.Lead) *string {
	if hasValue(lead.Owner) {
		return lead.Owner
	}
	owner := s.cfg.DefaultOwner
	return &owner
}

func hasValue(s *string) bool {
	return s != nil && *s != ""
}
