package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// isConstraintViolation reports whether err is a violation of the named
// database constraint.
func isConstraintViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == constraint
}

// lookupError maps a failed row fetch onto the API error space.
func (h *Handler) lookupError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		h.notFound(w, r, msg)
	default:
		h.internalServerError(w, r, err)
	}
}

// updateError reports a lost optimistic-lock race (the UPDATE matched no
// row at the expected version) as a retryable 400; anything else is a 500.
func (h *Handler) updateError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		h.badRequest(w, r, errors.New("the record was modified concurrently, please retry"))
	default:
		h.internalServerError(w, r, err)
	}
}
