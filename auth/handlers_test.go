package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MehradEsmaeilZad81/TodoList/apperror"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc, _ := newTestService(t)
	r := chi.NewRouter()
	r.Route("/auth", NewHandlers(svc).RegisterRoutes)
	return r
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandlers_RegisterThenLogin(t *testing.T) {
	h := newTestRouter(t)

	rec := post(t, h, "/auth/register", `{"name":"John Doe","email":"john@example.com","password":"password123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var reg TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&reg))
	assert.NotEmpty(t, reg.Token)

	rec = post(t, h, "/auth/login", `{"email":"john@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var login TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))
	assert.NotEmpty(t, login.Token)

	rec = post(t, h, "/auth/register", `{"name":"John","email":"john@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = post(t, h, "/auth/login", `{"email":"john@example.com","password":"nope-nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandlers_BadInput(t *testing.T) {
	h := newTestRouter(t)

	rec := post(t, h, "/auth/register", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body apperror.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Invalid request body", body.Message)
	assert.Equal(t, "/auth/register", body.Path)

	rec = post(t, h, "/auth/register", `{"name":"","email":"x","password":"1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body = apperror.ErrorResponse{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Validation failed", body.Message)
	assert.Len(t, body.Errors, 3)
}
