package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// Admin listings must sit behind the auth middleware; a request without a
// token never reaches the database.
func TestAdminRoutesRequireToken(t *testing.T) {
	h := &Handler{Mux: chi.NewRouter()}
	h.RegisterRoutes()

	for _, path := range []string{"/admin/jobs", "/admin/stats"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			resp := decodeResponse(t, rec)
			assert.Equal(t, CodeNoToken, resp.Code)
		})
	}
}
