package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sellstack/pipeline-api/internal/application/service"
	"github.com/sellstack/pipeline-api/internal/config"
	"github.com/sellstack/pipeline-api/internal/domain/entity"
	"github.com/sellstack/pipeline-api/internal/domain/enum"
	infraRepo "github.com/sellstack/pipeline-api/internal/infrastructure/repository"
	"github.com/sellstack/pipeline-api/internal/presentation/http/handler"
	"github.com/sellstack/pipeline-api/internal/presentation/http/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ptr[T any](v T) *T {
	return &v
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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
		&entity.IdempotencyKey{},
	))

	cfg := &config.Config{
		App: config.AppConfig{Name: "pipeline-api-test", Env: "test"},
		CRM: config.CRMConfig{DefaultOwner: "unassigned", OpportunityCloseMonths: 1},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		RateLimit: config.RateLimitConfig{Requests: 100, Duration: 1},
	}

	leadRepo := infraRepo.NewLeadRepository(db)
	accountRepo := infraRepo.NewAccountRepository(db)
	contactRepo := infraRepo.NewContactRepository(db)
	opportunityRepo := infraRepo.NewOpportunityRepository(db)
	idempotencyRepo := infraRepo.NewIdempotencyRepository(db)
	txRunner := infraRepo.NewTxRunner(db)

	leadService := service.NewLeadService(leadRepo)
	accountService := service.NewAccountService(accountRepo)
	contactService := service.NewContactService(contactRepo, accountRepo)
	opportunityService := service.NewOpportunityService(opportunityRepo, accountRepo)
	convertService := service.NewConvertService(leadRepo, accountRepo, contactRepo, opportunityRepo, txRunner, cfg.CRM)

	router := routes.Setup(&routes.Handlers{
		Lead:        handler.NewLeadHandler(leadService, convertService),
		Account:     handler.NewAccountHandler(accountService),
		Contact:     handler.NewContactHandler(contactService),
		Opportunity: handler.NewOpportunityHandler(opportunityService),
	}, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedHTTPLead(t *testing.T, db *gorm.DB) *entity.Lead {
	t.Helper()

	lead := &entity.Lead{
		FirstName:     ptr("Ada"),
		LastName:      "Lovelace",
		Company:       "Acme Corp",
		Email:         ptr("a@acme.com"),
		Street:        ptr("1 Main St"),
		City:          ptr("Springfield"),
		AnnualRevenue: ptr(125000.0),
		Status:        enum.LeadStatusNew,
	}
	require.NoError(t, db.Create(lead).Error)
	return lead
}

func TestConvertEndpoint_Success(t *testing.T) {
	router, db := setupRouter(t)
	lead := seedHTTPLead(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/v1/leads/convert", gin.H{
		"leadId":             lead.ID,
		"convertedStatus":    "Qualified",
		"newAccountName":     "Acme Corp",
		"newOpportunityName": "Acme Deal",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Account struct {
				ID   uint   `json:"id"`
				Name string `json:"name"`
			} `json:"account"`
			Contact struct {
				ID        uint    `json:"id"`
				AccountID uint    `json:"account_id"`
				Email     *string `json:"email"`
			} `json:"contact"`
			Opportunity *struct {
				Name  string `json:"name"`
				Stage string `json:"stage"`
			} `json:"opportunity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Acme Corp", body.Data.Account.Name)
	assert.Equal(t, body.Data.Account.ID, body.Data.Contact.AccountID)
	require.NotNil(t, body.Data.Contact.Email)
	assert.Equal(t, "a@acme.com", *body.Data.Contact.Email)
	require.NotNil(t, body.Data.Opportunity)
	assert.Equal(t, "Acme Deal", body.Data.Opportunity.Name)
	assert.Equal(t, "Qualification", body.Data.Opportunity.Stage)
}

func TestConvertEndpoint_OpportunitySuppressed(t *testing.T) {
	router, db := setupRouter(t)
	account := &entity.Account{Name: "Existing Co"}
	require.NoError(t, db.Create(account).Error)
	lead := seedHTTPLead(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/v1/leads/convert", gin.H{
		"leadId":                lead.ID,
		"convertedStatus":       "Converted",
		"accountId":             account.ID,
		"dontCreateOpportunity": true,
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Opportunity json.RawMessage `json:"opportunity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "null", string(body.Data.Opportunity))
}

func TestConvertEndpoint_ValidationError(t *testing.T) {
	router, db := setupRouter(t)
	lead := seedHTTPLead(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/v1/leads/convert", gin.H{
		"leadId":          lead.ID,
		"convertedStatus": "Qualified",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Account id or new account name")
}

func TestConvertEndpoint_LeadNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/leads/convert", gin.H{
		"leadId":             999,
		"convertedStatus":    "Qualified",
		"newAccountName":     "Acme Corp",
		"newOpportunityName": "Acme Deal",
	}, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConvertEndpoint_AlreadyConverted(t *testing.T) {
	router, db := setupRouter(t)
	lead := seedHTTPLead(t, db)
	require.NoError(t, db.Model(lead).Update("status", enum.LeadStatusConverted).Error)

	w := doJSON(t, router, http.MethodPost, "/api/v1/leads/convert", gin.H{
		"leadId":             lead.ID,
		"convertedStatus":    "Converted",
		"newAccountName":     "Acme Corp",
		"newOpportunityName": "Acme Deal",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already been converted")
}

func TestConvertEndpoint_IdempotentReplay(t *testing.T) {
	router, db := setupRouter(t)
	lead := seedHTTPLead(t, db)

	payload := gin.H{
		"leadId":             lead.ID,
		"convertedStatus":    "Converted",
		"newAccountName":     "Acme Corp",
		"newOpportunityName": "Acme Deal",
	}
	headers := map[string]string{"Idempotency-Key": "convert-42-once"}

	first := doJSON(t, router, http.MethodPost, "/api/v1/leads/convert", payload, headers)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Empty(t, first.Header().Get("X-Idempotency-Replayed"))

	// The retry replays the cached response instead of tripping the
	// already-converted guard
	second := doJSON(t, router, http.MethodPost, "/api/v1/leads/convert", payload, headers)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	// Still exactly one account despite two submits
	var n int64
	require.NoError(t, db.Model(&entity.Account{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestLeadCRUDEndpoints(t *testing.T) {
	router, _ := setupRouter(t)

	created := doJSON(t, router, http.MethodPost, "/api/v1/leads", gin.H{
		"first_name": "Grace",
		"last_name":  "Hopper",
		"company":    "Navy Labs",
		"email":      "g@navy.example",
	}, nil)
	require.Equal(t, http.StatusCreated, created.Code)

	var body struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &body))
	require.NotZero(t, body.Data.ID)

	leadPath := fmt.Sprintf("/api/v1/leads/%d", body.Data.ID)

	got := doJSON(t, router, http.MethodGet, leadPath, nil, nil)
	assert.Equal(t, http.StatusOK, got.Code)
	assert.Contains(t, got.Body.String(), "Hopper")

	missing := doJSON(t, router, http.MethodGet, "/api/v1/leads/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)

	badID := doJSON(t, router, http.MethodGet, "/api/v1/leads/abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, badID.Code)

	list := doJSON(t, router, http.MethodGet, "/api/v1/leads", nil, nil)
	assert.Equal(t, http.StatusOK, list.Code)

	deleted := doJSON(t, router, http.MethodDelete, leadPath, nil, nil)
	assert.Equal(t, http.StatusNoContent, deleted.Code)
}
