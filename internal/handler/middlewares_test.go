package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantOK    bool
	}{
		{"well formed header", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"missing header", "", "", false},
		{"missing scheme", "abc.def.ghi", "", false},
		{"wrong scheme", "Basic abc.def.ghi", "", false},
		{"scheme without token", "Bearer ", "", false},
		{"lowercase scheme is rejected", "bearer abc.def.ghi", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, ok := parseBearerToken(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, tokenString)
		})
	}
}

func requestWithPrincipal(principal *domain.Principal) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(r.Context(), PrincipalCtxKey, principal)
	return r.WithContext(ctx)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestRequiredRole(t *testing.T) {
	h := &Handler{}

	tests := []struct {
		name       string
		allowed    []domain.Role
		role       domain.Role
		wantStatus int
	}{
		{"matching role passes", []domain.Role{domain.RoleAdmin}, domain.RoleAdmin, http.StatusOK},
		{"one of several roles passes", []domain.Role{domain.RoleEmployer, domain.RoleAdmin}, domain.RoleEmployer, http.StatusOK},
		{"other role is rejected", []domain.Role{domain.RoleAdmin}, domain.RoleCandidate, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			h.RequiredRole(tt.allowed)(next).ServeHTTP(rec, requestWithPrincipal(&domain.Principal{Role: tt.role}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				resp := decodeResponse(t, rec)
				assert.False(t, resp.Success)
				assert.Equal(t, CodeForbidden, resp.Code)
			}
		})
	}
}

func TestRequireVerifiedEmployer(t *testing.T) {
	h := &Handler{}

	tests := []struct {
		name       string
		principal  *domain.Principal
		wantStatus int
		wantCode   string
	}{
		{"verified employer passes", &domain.Principal{Role: domain.RoleEmployer, IsVerified: true}, http.StatusOK, ""},
		{"unverified employer is rejected", &domain.Principal{Role: domain.RoleEmployer, IsVerified: false}, http.StatusForbidden, CodeEmployerNotVerified},
		{"admin passes without a profile", &domain.Principal{Role: domain.RoleAdmin}, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			h.requireVerifiedEmployer(next).ServeHTTP(rec, requestWithPrincipal(tt.principal))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				resp := decodeResponse(t, rec)
				assert.Equal(t, tt.wantCode, resp.Code)
			}
		})
	}
}
