package handler

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsConstraintViolation(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{
			"duplicate email",
			&pgconn.PgError{ConstraintName: "users_email_key"},
			"users_email_key",
			true,
		},
		{
			"duplicate application",
			&pgconn.PgError{ConstraintName: "applications_job_id_candidate_id_key"},
			"applications_job_id_candidate_id_key",
			true,
		},
		{
			"wrapped constraint error still matches",
			fmt.Errorf("create user: %w", &pgconn.PgError{ConstraintName: "users_email_key"}),
			"users_email_key",
			true,
		},
		{
			"different constraint",
			&pgconn.PgError{ConstraintName: "employers_user_id_key"},
			"users_email_key",
			false,
		},
		{
			"plain error",
			sql.ErrConnDone,
			"users_email_key",
			false,
		},
		{
			"nil error",
			nil,
			"users_email_key",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isConstraintViolation(tt.err, tt.constraint))
		})
	}
}

func TestLookupError(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	t.Run("missing row is 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.lookupError(rec, req, sql.ErrNoRows, "employer not found")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, CodeNotFound, resp.Code)
		assert.Equal(t, "employer not found", resp.Message)
	})

	t.Run("database failure is 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.lookupError(rec, req, sql.ErrConnDone, "employer not found")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "internal server error", resp.Message)
	})
}

func TestUpdateError(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPatch, "/", nil)

	t.Run("version conflict is a retryable 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.updateError(rec, req, sql.ErrNoRows)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, "retry")
	})

	t.Run("database failure is 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.updateError(rec, req, sql.ErrConnDone)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
