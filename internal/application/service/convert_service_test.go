package service

import (
	"context"
	"testing"
	"time"

	"github.com/sellstack/pipeline-api/internal/config"
	"github.com/sellstack/pipeline-api/internal/domain/entity"
	"github.com/sellstack/pipeline-api/internal/domain/enum"
	infraRepo "github.com/sellstack/pipeline-api/internal/infrastructure/repository"
	"github.com/sellstack/pipeline-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ptr[T any](v T) *T {
	return &v
}

func setupConvertTest(t *testing.T) (*gorm.DB, *ConvertService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	require.NoError(t, db.AutoMigrate(
		&entity.Lead{},
		&entity.Account{},
		&entity.Contact{},
		&entity.Opportunity{},
	))

	svc := NewConvertService(
		infraRepo.NewLeadRepository(db),
		infraRepo.NewAccountRepository(db),
		infraRepo.NewContactRepository(db),
		infraRepo.NewOpportunityRepository(db),
		infraRepo.NewTxRunner(db),
		config.CRMConfig{DefaultOwner: "house", OpportunityCloseMonths: 1},
	)

	return db, svc
}

func seedLead(t *testing.T, db *gorm.DB, mutate func(*entity.Lead)) *entity.Lead {
	t.Helper()

	lead := &entity.Lead{
		Salutation:    ptr("Ms."),
		FirstName:     ptr("Ada"),
		LastName:      "Lovelace",
		Company:       "Acme Corp",
		Title:         ptr("CTO"),
		Email:         ptr("a@acme.com"),
		Phone:         ptr("555-0100"),
		Website:       ptr("https://acme.example"),
		Street:        ptr("1 Main St"),
		City:          ptr("Springfield"),
		StateProvince: ptr("IL"),
		ZipPostalCode: ptr("62701"),
		Country:       ptr("US"),
		AnnualRevenue: ptr(125000.0),
		Status:        enum.LeadStatusNew,
		Owner:         ptr("jordan"),
	}
	if mutate != nil {
		mutate(lead)
	}
	require.NoError(t, db.Create(lead).Error)
	return lead
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestConvert_MissingLeadIDOrStatus(t *testing.T) {
	_, svc := setupConvertTest(t)

	_, err := svc.Convert(context.Background(), &ConvertLeadInput{
		ConvertedStatus: "Qualified",
		NewAccountName:  ptr("Acme Corp"),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.Convert(context.Background(), &ConvertLeadInput{
		LeadID:         7,
		NewAccountName: ptr("Acme Corp"),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestConvert_MissingAccountPath(t *testing.T) {
	db, svc := setupConvertTest(t)
	lead := seedLead(t, db, nil)

	_, err := svc.Convert(context.Background(), &ConvertLeadInput{
		LeadID:             lead.ID,
		ConvertedStatus:    "Qualified",
		NewOpportunityName: ptr("Acme Deal"),
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "Account id or new account name")

	// Rejected before any write
	assert.EqualValues(t, 0, countRows(t, db, &entity.Account{}))
	assert.EqualValues(t, 0, countRows(t, db, &entity.Contact{}))
}

func TestConvert_MissingOpportunityPath(t *testing.T) {
	db, svc := setupConvertTest(t)
	lead := seedLead(t, db, nil)

	_, err := svc.Convert(context.Background(), &ConvertLeadInput{
		LeadID:          lead.ID,
		ConvertedStatus: "Qualified",
		NewAccountName:  ptr("Acme Corp"),
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "Opportunity id or new opportunity name")
	assert.EqualValues(t, 0, countRows(t, db, &entity.Account{}))
}

func TestConvert_LeadNotFound(t *testing.T) {
	_, svc := setupConvertTest(t)

	_, err := svc.Convert(context.Background(), &ConvertLeadInput{
		LeadID:             999,
		ConvertedStatus:    "Qualified",
		NewAccountName:     ptr("Acme Corp"),
		NewOpportunityName: ptr("Acme Deal"),
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestConvert_AlreadyConverted(t *testing.T) {
	for _, status := range []enum.LeadStatus{enum.LeadStatusConverted, enum.LeadStatusQualified} {
		t.Run(status.String(), func(t *testing.T) {
			db, svc := setupConvertTest(t)
			lead := seedLead(t, db, func(l *entity.Lead) {
				l.Status = status
			})

			_, err := svc.Convert(context.Background(), &ConvertLeadInput{
				LeadID:             lead.ID,
				ConvertedStatus:    "Converted",
				NewAccountName:     ptr("Acme Corp"),
				NewOpportunityName: ptr("Acme Deal"),
			})
			require.ErrorIs(t, err, ErrLeadAlreadyConverted)
			assert.Equal(t, 400, apperror.GetAppError(err).Code)

			// Zero writes: the lead row is untouched and nothing was created
			var reloaded entity.Lead
			require.NoError(t, db.First(&reloaded, lead.ID).Error)
			assert.Equal(t, status, reloaded.Status)
			assert.EqualValues(t, 0, countRows(t, db, &entity.Account{}))
			assert.EqualValues(t, 0, countRows(t, db, &entity.Contact{}))
			assert.EqualValues(t, 0, countRows(t, db, &entity.Opportunity{}))
		})
	}
}

func TestConvert_NewAccountContactOpportunity(t *testing.T) {
	db, svc := setupConvertTest(t)
	lead := seedLead(t, db, nil)

	result, err := svc.Convert(context.Background(), &ConvertLeadInput{
		LeadID:             lead.ID,
		ConvertedStatus:    "Qualified",
		NewAccountName:     ptr("Acme Corp"),
		NewOpportunityName: ptr("Acme Deal"),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Account)
	require.NotNil(t, result.Contact)
	require.NotNil(t, result.Opportunity)

	// Account carries over the lead's company details verbatim
	account := result.Account
	assert.Equal(t, "Acme Corp", account.Name)
	assert.Equal(t, lead.Website, account.Website)
	assert.Equal(t, lead.Phone, account.Phone)
	assert.Equal(t, lead.Street, account.BillingStreet)
	assert.Equal(t, lead.City, account.BillingCity)
	assert.Equal(t, lead.StateProvince, account.BillingStateProvince)
	assert.Equal(t, lead.ZipPostalCode, account.BillingZipPostalCode)
	assert.Equal(t, lead.Country, account.BillingCountry)
	assert.Equal(t, "jordan", *account.Owner)

	// Contact is bound to the new account and carries the lead's person fields
	contact := result.Contact
	assert.Equal(t, account.ID, contact.AccountID)
	assert.Equal(t, "a@acme.com", *contact.Email)
	assert.Equal(t, lead.FirstName, contact.FirstName)
	assert.Equal(t, lead.LastName, contact.LastName)
	assert.Equal(t, lead.Title, contact.Title)
	assert.Equal(t, lead.Salutation, contact.Salutation)
	assert.Equal(t, lead.Street, contact.MailingStreet)

	// Opportunity starts in Qualification with the one-month close horizon
	opportunity := result.Opportunity
	assert.Equal(t, account.ID, opportunity.AccountID)
	assert.Equal(t, "Acme Deal", opportunity.Name)
	assert.Equal(t, enum.OpportunityStageQualification, opportunity.Stage)
	assert.Equal(t, enum.ForecastCategoryPipeline, opportunity.ForecastCategory)
	assert.Equal(t, lead.AnnualRevenue, opportunity.Amount)
	require.NotNil(t, opportunity.CloseDate)
	expected := time.Now().AddDate(0, 1, 0)
	assert.WithinDuration(t, expected, *opportunity.CloseDate, time.Minute)

	// Lead is marked with the caller-supplied status; nothing else changed
	var reloaded entity.Lead
	require.NoError(t, db.First(&reloaded, lead.ID).Error)
	assert.Equal(t, enum.LeadStatusQualified, reloaded.Status)
	assert.Equal(t, lead.Company, reloaded.Company)
	assert.Equal(t, lead.Email, reloaded.Email)
	assert.Equal(t, lead.Owner, reloaded.Owner)
}

func TestConvert_ExistingAccountNoOpportunity(t *testing.T) {
	db, svc := setupConvertTest(t)
	account := &entity.Account{Name: "Existing Co"}
	require.NoError(t, db.Create(account).Error)
	lead := seedLead(t, db, nil)

	result, err := svc.Convert(context.Background(), &ConvertLeadInput{
		LeadID:                lead.ID,
		ConvertedStatus:       "Converted",
		AccountID:             ptr(account.ID),
		DontCreateOpportunity: true,
	})
	require.NoError(t, err)
	assert.Equal(t, account.ID, result.Account.ID)
	assert.Nil(t, result.Opportunity)
	assert.Equal(t, account.ID, result.Contact.AccountID)

	// No new account, no opportunity at all
	assert.EqualValues(t, 1, countRows(t, db, &entity.Account{}))
	assert.EqualValues(t, 0, countRows(t, db, &entity.Opportunity{}))

	var reloaded entity.Lead
	require.NoError(t, db.First(&reloaded, lead.ID).Error)
	assert.Equal(t, enum.LeadStatusConverted, reloaded.Status)
}

func TestConvert_SuppressedOpportunityIgnoresName(t *testing.T) {
	db, svc := setupConvertTest(t)
	lead := seedLead(t, db, nil)

	result, err := svc.Convert(context.Background(), &ConvertLeadInput{
		LeadID:                lead.ID,
		ConvertedStatus:       "Converted",
		NewAccountName:        ptr("Acme Corp"),
		DontCreateOpportunity: true,
		NewOpportunityName:    ptr("Should Be Ignored"),
	})
	require.NoError(t, err)
	assert.Nil(t, result.Opportunity)
	assert.EqualValues(t, 0, countRows(t, db, &entity.Opportunity{}))
}

func TestConvert_ExistingAccountNotFound(t *testing.T) {
	db, svc := setupConvertTest(t)
	lead := seedLead(t, db, nil)

	_, err := svc.Convert(context.Background(), &ConvertLeadInput{
		LeadID:                lead.ID,
		ConvertedStatus:       "Converted",
		AccountID:             ptr(uint(999)),
		DontCreateOpportunity: true,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	// The lead must not be marked converted
	var reloaded entity.Lead
	require.NoError(t, db.First(&reloaded, lead.ID).Error)
	assert.Equal(t, enum.LeadStatusNew, reloaded.Status)
}

func TestConvert_DuplicateEmailRollsBackAccount(t *testing.T) {
	db, svc := setupConvertTest(t)

	// An unrelated contact already owns the lead's email
	other := &entity.Account{Name: "Other Co"}
	require.NoError(t, db.Create(other).Error)
	require.NoError(t, db.Create(&entity.Contact{
		AccountID: other.ID,
		LastName:  "Taken",
		Email:     ptr("a@acme.com"),
	}).Error)

	lead := seedLead(t, db, nil)

	_, err := svc.Convert(context.Background(), &ConvertLeadInput{
		LeadID:             lead.ID,
		ConvertedStatus:    "Qualified",
		NewAccountName:     ptr("Acme Corp"),
		NewOpportunityName: ptr("Acme Deal"),
	})
	require.ErrorIs(t, err, ErrDuplicateContactEmail)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// The account created earlier in the same call must not survive
	assert.EqualValues(t, 1, countRows(t, db, &entity.Account{}))
	assert.EqualValues(t, 1, countRows(t, db, &entity.Contact{}))
	assert.EqualValues(t, 0, countRows(t, db, &entity.Opportunity{}))

	var reloaded entity.Lead
	require.NoError(t, db.First(&reloaded, lead.ID).Error)
	assert.Equal(t, enum.LeadStatusNew, reloaded.Status)
}

func TestConvert_ExistingContactReused(t *testing.T) {
	db, svc := setupConvertTest(t)
	account := &entity.Account{Name: "Existing Co"}
	require.NoError(t, db.Create(account).Error)
	contact := &entity.Contact{
		AccountID: account.ID,
		LastName:  "Kept",
		Email:     ptr("kept@acme.com"),
	}
	require.NoError(t, db.Create(contact).Error)
	lead := seedLead(t, db, nil)

	result, err := svc.Convert(context.Background(), &ConvertLeadInput{
		LeadID:                lead.ID,
		ConvertedStatus:       "Converted",
		AccountID:             ptr(account.ID),
		ContactID:             ptr(contact.ID),
		DontCreateOpportunity: true,
	})
	require.NoError(t, err)
	assert.Equal(t, contact.ID, result.Contact.ID)
	assert.EqualValues(t, 1, countRows(t, db, &entity.Contact{}))
}

func TestConvert_ExistingOpportunityReused(t *testing.T) {
	db, svc := setupConvertTest(t)
	account := &entity.Account{Name: "Existing Co"}
	require.NoError(t, db.Create(account).Error)
	opportunity := &entity.Opportunity{
		AccountID: account.ID,
		Name:      "Open Deal",
		Stage:     enum.OpportunityStageProposal,
	}
	require.NoError(t, db.Create(opportunity).Error)
	lead := seedLead(t, db, nil)

	result, err := svc.Convert(context.Background(), &ConvertLeadInput{
		LeadID:          lead.ID,
		ConvertedStatus: "Converted",
		AccountID:       ptr(account.ID),
		OpportunityID:   ptr(opportunity.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, opportunity.ID, result.Opportunity.ID)
	assert.Equal(t, enum.OpportunityStageProposal, result.Opportunity.Stage)
	assert.EqualValues(t, 1, countRows(t, db, &entity.Opportunity{}))
}

func TestConvert_DefaultOwnerFallback(t *testing.T) {
	db, svc := setupConvertTest(t)
	lead := seedLead(t, db, func(l *entity.Lead) {
		l.Owner = nil
	})

	result, err := svc.Convert(context.Background(), &ConvertLeadInput{
		LeadID:             lead.ID,
		ConvertedStatus:    "Qualified",
		NewAccountName:     ptr("Acme Corp"),
		NewOpportunityName: ptr("Acme Deal"),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Account.Owner)
	assert.Equal(t, "house", *result.Account.Owner)
	require.NotNil(t, result.Contact.Owner)
	assert.Equal(t, "house", *result.Contact.Owner)
	require.NotNil(t, result.Opportunity.Owner)
	assert.Equal(t, "house", *result.Opportunity.Owner)
}
