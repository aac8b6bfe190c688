package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/gestor-negocios-api/internal/config"
	"github.com/sjperalta/gestor-negocios-api/internal/jobs"
	"github.com/sjperalta/gestor-negocios-api/internal/metrics"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
	"github.com/sjperalta/gestor-negocios-api/internal/services"
	"github.com/sjperalta/gestor-negocios-api/internal/statemachine"
	"github.com/sjperalta/gestor-negocios-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	db := testutil.NewDB(t)
	worker := jobs.NewWorker(1)
	t.Cleanup(worker.Shutdown)

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1, RefreshTokenDays: 1}
	svcs := services.NewServices(db, repository.NewRepositories(db), repository.NewTransactor(db, 2), worker, nil, metrics.New(), cfg)

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), NewHandlers(svcs), cfg.JWTSecret)
	return &apiClient{t: t, router: router}
}

func (a *apiClient) do(method, path string, body interface{}) (int, map[string]interface{}) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api/v1"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	out := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

// signUp registers and logs in a user, returning a client authenticated as them
func (a *apiClient) signUp(email string) *apiClient {
	a.t.Helper()
	status, _ := a.do(http.MethodPost, "/auth/register", gin.H{"full_name": "Usuario " + email, "email": email, "password": "secreto"})
	require.Equal(a.t, http.StatusCreated, status)

	status, body := a.do(http.MethodPost, "/auth/login", gin.H{"email": email, "password": "secreto"})
	require.Equal(a.t, http.StatusOK, status)
	return &apiClient{t: a.t, router: a.router, token: body["token"].(string)}
}

func id(body map[string]interface{}, key string) uint {
	return uint(body[key].(map[string]interface{})["id"].(float64))
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{services.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", services.ErrForbidden), http.StatusForbidden},
		{services.ErrUnauthenticated, http.StatusUnauthorized},
		{services.ErrWeakPassword, http.StatusBadRequest},
		{services.ErrCrossBusinessMismatch, http.StatusBadRequest},
		{&statemachine.ExceedsBalanceError{}, http.StatusBadRequest},
		{services.ErrDuplicateEmail, http.StatusConflict},
		{services.ErrDuplicateClientIdentity, http.StatusConflict},
		{repository.ErrUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, statusFor(tt.err), tt.err.Error())
	}
}

func TestRespondError_HidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestAPI_AuthRequired(t *testing.T) {
	api := newAPI(t)

	status, body := api.do(http.MethodGet, "/businesses", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Authorization header is required", body["error"])

	status, _ = api.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestAPI_Register(t *testing.T) {
	api := newAPI(t)

	tests := []struct {
		name   string
		body   gin.H
		status int
	}{
		{"created", gin.H{"full_name": "Ana", "email": "ana@example.com", "password": "secreto"}, http.StatusCreated},
		{"duplicate", gin.H{"full_name": "Ana", "email": "ANA@example.com", "password": "secreto"}, http.StatusConflict},
		{"weak password", gin.H{"full_name": "Beto", "email": "beto@example.com", "password": "123"}, http.StatusBadRequest},
		{"missing name", gin.H{"email": "carla@example.com", "password": "secreto"}, http.StatusBadRequest},
		{"nested payload", gin.H{"user": gin.H{"full_name": "Dani", "email": "dani@example.com", "password": "secreto"}}, http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := api.do(http.MethodPost, "/auth/register", tt.body)
			assert.Equal(t, tt.status, status, body)
		})
	}

	status, _ := api.do(http.MethodPost, "/auth/login", gin.H{"email": "ana@example.com", "password": "otra"})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAPI_LedgerFlow(t *testing.T) {
	api := newAPI(t)
	owner := api.signUp("owner@example.com")
	stranger := api.signUp("stranger@example.com")

	status, body := owner.do(http.MethodPost, "/businesses", gin.H{"name": "Pulpería", "founded_on": "2020-01-15"})
	require.Equal(t, http.StatusCreated, status, body)
	bizID := id(body, "business")

	status, body = owner.do(http.MethodPost, fmt.Sprintf("/businesses/%d/clients", bizID), gin.H{"identity": "0801", "name": "Ana"})
	require.Equal(t, http.StatusCreated, status, body)
	clientID := id(body, "client")

	status, _ = owner.do(http.MethodPost, fmt.Sprintf("/businesses/%d/clients", bizID), gin.H{"identity": "0801", "name": "Otra"})
	assert.Equal(t, http.StatusConflict, status)

	status, body = owner.do(http.MethodPost, fmt.Sprintf("/businesses/%d/transactions", bizID), gin.H{"kind": "income", "amount": "100.00", "date": "2024-05-01"})
	require.Equal(t, http.StatusCreated, status, body)
	txID := id(body, "transaction")

	status, _ = owner.do(http.MethodPost, fmt.Sprintf("/businesses/%d/transactions", bizID), gin.H{"kind": "gift", "amount": "1"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = owner.do(http.MethodPost, "/debts", gin.H{"transaction_id": txID, "client_id": clientID, "total_amount": "100.00"})
	require.Equal(t, http.StatusCreated, status, body)
	debtID := id(body, "debt")
	assert.Equal(t, "pending", body["debt"].(map[string]interface{})["status"])

	path := fmt.Sprintf("/debts/%d/installments", debtID)
	status, body = owner.do(http.MethodPost, path, gin.H{"amount": "60.00"})
	require.Equal(t, http.StatusCreated, status, body)
	debt := body["debt"].(map[string]interface{})
	assert.Equal(t, "partial", debt["status"])
	assert.True(t, decimal.RequireFromString(debt["outstanding_balance"].(string)).Equal(decimal.NewFromInt(40)))

	status, body = owner.do(http.MethodPost, path, gin.H{"amount": "41.00"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "El abono (41.00) excede el saldo pendiente (40.00)", body["error"])
	assert.Equal(t, "41.00", body["requested"])
	assert.Equal(t, "40.00", body["outstanding"])

	status, _ = owner.do(http.MethodPost, path, gin.H{"amount": "0"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = owner.do(http.MethodPost, path, gin.H{"amount": "40.00"})
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, "settled", body["debt"].(map[string]interface{})["status"])

	status, body = owner.do(http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["installments"], 2)

	status, body = owner.do(http.MethodGet, fmt.Sprintf("/businesses/%d/debts/summary", bizID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "100.00", body["total_settled"])
	assert.Equal(t, "100.00", body["total_paid"])
	assert.Equal(t, "0.00", body["total_outstanding"])
	assert.Equal(t, float64(0), body["clients_with_debt"])

	status, body = owner.do(http.MethodGet, fmt.Sprintf("/businesses/%d/balance?from=2024-05-01&to=2024-05-31", bizID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "100.00", body["balance"])
	assert.Equal(t, "2024-05-01", body["from"])

	status, _ = owner.do(http.MethodGet, fmt.Sprintf("/businesses/%d/balance?from=mayo", bizID), nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = stranger.do(http.MethodGet, fmt.Sprintf("/businesses/%d/balance", bizID), nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = stranger.do(http.MethodGet, "/debts/9999", nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = stranger.do(http.MethodGet, fmt.Sprintf("/debts/%d", debtID), nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = owner.do(http.MethodGet, "/debts/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAPI_Members(t *testing.T) {
	api := newAPI(t)
	owner := api.signUp("owner@example.com")
	guest := api.signUp("guest@example.com")

	status, body := guest.do(http.MethodGet, "/users/me", nil)
	require.Equal(t, http.StatusOK, status)
	guestID := id(body, "user")

	status, body = owner.do(http.MethodPost, "/businesses", gin.H{"name": "Taller"})
	require.Equal(t, http.StatusCreated, status)
	bizID := id(body, "business")

	status, body = owner.do(http.MethodGet, "/users/search?query=guest", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["users"], 1)

	status, _ = owner.do(http.MethodPost, fmt.Sprintf("/businesses/%d/members/%d", bizID, guestID), nil)
	assert.Equal(t, http.StatusCreated, status)
	status, body = owner.do(http.MethodPost, fmt.Sprintf("/businesses/%d/members/%d", bizID, guestID), nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Usuario ya está asociado al negocio", body["error"])

	status, body = guest.do(http.MethodGet, fmt.Sprintf("/businesses/%d", bizID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["business"].(map[string]interface{})["members"], 2)

	status, _ = owner.do(http.MethodDelete, fmt.Sprintf("/businesses/%d/members/%d", bizID, guestID), nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = guest.do(http.MethodGet, fmt.Sprintf("/businesses/%d", bizID), nil)
	assert.Equal(t, http.StatusForbidden, status)
}
