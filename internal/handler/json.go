package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("internal server error", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data"`
}

// Stable machine-readable error codes. Clients branch on these rather than
// on message text, so they must never change meaning.
const (
	CodeValidationError     = "VALIDATION_ERROR"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeNoToken             = "NO_TOKEN"
	CodeTokenInvalid        = "TOKEN_INVALID"
	CodeTokenExpired        = "TOKEN_EXPIRED"
	CodeTokenRevoked        = "TOKEN_REVOKED"
	CodePrincipalNotFound   = "PRINCIPAL_NOT_FOUND"
	CodeAccountSuspended    = "ACCOUNT_SUSPENDED"
	CodeForbidden           = "FORBIDDEN"
	CodeEmployerNotVerified = "EMPLOYER_NOT_VERIFIED"
	CodeNotFound            = "NOT_FOUND"
	CodeEmailTaken          = "EMAIL_TAKEN"
	CodeAlreadyApplied      = "ALREADY_APPLIED"
	CodeDeadlinePassed      = "DEADLINE_PASSED"
	CodeUploadRejected      = "UPLOAD_REJECTED"
)

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

func (h *Handler) createdResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusCreated, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, code string, msg string) {
	h.writeJSON(w, r, status, Response{
		Success: false,
		Message: msg,
		Code:    code,
		Data:    nil,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, CodeValidationError, err.Error())
		return
	}

	h.errorResponse(w, r, http.StatusBadRequest, CodeValidationError, validationErrors[0].Translate(h.translator))
}

// conflict errors map to 400 with a specific code, per the API contract
func (h *Handler) conflict(w http.ResponseWriter, r *http.Request, code string, msg string) {
	h.errorResponse(w, r, http.StatusBadRequest, code, msg)
}

func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request, code string, msg string) {
	h.errorResponse(w, r, http.StatusUnauthorized, code, msg)
}

func (h *Handler) forbidden(w http.ResponseWriter, r *http.Request, code string, msg string) {
	h.errorResponse(w, r, http.StatusForbidden, code, msg)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, msg string) {
	h.errorResponse(w, r, http.StatusNotFound, CodeNotFound, msg)
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, Response{
		Success: false,
		Message: "internal server error",
		Data:    nil,
	})
}
