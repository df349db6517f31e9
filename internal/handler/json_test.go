package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	require.NoError(t, en_translations.RegisterDefaultTranslations(validate, trans))

	return &Handler{
		validate:   validate,
		translator: trans,
	}
}

func TestResponseEnvelope(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	tests := []struct {
		name        string
		write       func(w http.ResponseWriter)
		wantStatus  int
		wantSuccess bool
		wantCode    string
	}{
		{
			name:        "success is 200",
			write:       func(w http.ResponseWriter) { h.successResponse(w, req, "ok", map[string]int{"n": 1}) },
			wantStatus:  http.StatusOK,
			wantSuccess: true,
		},
		{
			name:        "created is 201",
			write:       func(w http.ResponseWriter) { h.createdResponse(w, req, "made", nil) },
			wantStatus:  http.StatusCreated,
			wantSuccess: true,
		},
		{
			name:       "conflict maps to 400 with its code",
			write:      func(w http.ResponseWriter) { h.conflict(w, req, CodeEmailTaken, "this email is already registered") },
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeEmailTaken,
		},
		{
			name:       "unauthorized is 401",
			write:      func(w http.ResponseWriter) { h.unauthorized(w, req, CodeTokenExpired, "token has expired") },
			wantStatus: http.StatusUnauthorized,
			wantCode:   CodeTokenExpired,
		},
		{
			name:       "forbidden is 403",
			write:      func(w http.ResponseWriter) { h.forbidden(w, req, CodeForbidden, "insufficient permissions") },
			wantStatus: http.StatusForbidden,
			wantCode:   CodeForbidden,
		},
		{
			name:       "not found is 404",
			write:      func(w http.ResponseWriter) { h.notFound(w, req, "job not found") },
			wantStatus: http.StatusNotFound,
			wantCode:   CodeNotFound,
		},
		{
			name:       "internal error hides the cause",
			write:      func(w http.ResponseWriter) { h.internalServerError(w, req, assert.AnError) },
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			resp := decodeResponse(t, rec)
			assert.Equal(t, tt.wantSuccess, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", resp.Message)
			}
		})
	}
}

func TestBadRequestTranslatesValidationErrors(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	var body struct {
		Email string `json:"email" validate:"required,email"`
	}
	body.Email = "not-an-email"

	err := h.validate.Struct(body)
	require.Error(t, err)

	rec := httptest.NewRecorder()
	h.badRequest(rec, req, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, CodeValidationError, resp.Code)
	assert.Contains(t, resp.Message, "Email")
}
