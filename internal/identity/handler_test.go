package identity

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (chi.Router, *Service) {
	t.Helper()
	store := NewStore()
	svc := NewService(store, PlainVerifier{})
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r, svc
}

func postJSON(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoginEndpoint(t *testing.T) {
	r, svc := newTestRouter(t)
	svc.Seed(context.Background(), "user@example.com", "password")

	rec := postJSON(t, r, "/login", `{"email":"user@example.com","password":"password"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool    `json:"success"`
		User    Account `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "user@example.com", resp.User.Email)
	require.NotEmpty(t, resp.User.ID)
	require.NotContains(t, rec.Body.String(), "password")
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	r, svc := newTestRouter(t)
	svc.Seed(context.Background(), "user@example.com", "password")

	rec := postJSON(t, r, "/login", `{"email":"user@example.com","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "Invalid credentials", resp.Message)
}

func TestSignupAcceptsOpaqueEmailString(t *testing.T) {
	r, _ := newTestRouter(t)

	// Emails are opaque unique strings; non-RFC values register fine.
	rec := postJSON(t, r, "/signup", `{"email":"justauser","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool    `json:"success"`
		User    Account `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "justauser", resp.User.Email)

	rec = postJSON(t, r, "/login", `{"email":"justauser","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSignupEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := postJSON(t, r, "/signup", `{"email":"new@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, r, "/signup", `{"email":"new@example.com","password":"other"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "Email already exists", resp.Message)
}
