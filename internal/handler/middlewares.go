package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hirewire-dev/hirewire/backend/internal/domain"
	"github.com/hirewire-dev/hirewire/backend/internal/token"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("handled request", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog mangles multi-line stack traces
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// parseBearerToken extracts the raw token from an Authorization header of
// the form "Bearer <token>".
func parseBearerToken(header string) (string, bool) {
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return "", false
	}
	return tokenString, true
}

// auth verifies the bearer token and resolves the acting principal. The
// role is always taken from the database, never from the token payload, so
// an admin suspending an account takes effect on the very next request.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := parseBearerToken(r.Header.Get("Authorization"))
		if !ok {
			h.unauthorized(w, r, CodeNoToken, "missing or malformed Authorization header")
			return
		}

		revoked, err := h.revocations.IsRevoked(r.Context(), tokenString)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if revoked {
			h.unauthorized(w, r, CodeTokenRevoked, "token has been revoked")
			return
		}

		claims, err := token.Parse(tokenString, []byte(h.config.JWT.Secret))
		if err != nil {
			switch {
			case errors.Is(err, token.ErrTokenExpired):
				h.unauthorized(w, r, CodeTokenExpired, "token has expired")
			default:
				h.unauthorized(w, r, CodeTokenInvalid, "invalid token")
			}
			return
		}

		sub, err := claims.UserID()
		if err != nil {
			h.unauthorized(w, r, CodeTokenInvalid, "invalid token")
			return
		}

		principal, err := h.repository.GetPrincipalByID(sub)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.unauthorized(w, r, CodePrincipalNotFound, "account no longer exists")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		if !principal.IsActive {
			h.forbidden(w, r, CodeAccountSuspended, "account has been suspended")
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, PrincipalCtxKey, principal)
		ctx = context.WithValue(ctx, BearerTokenCtx, tokenString)
		ctx = context.WithValue(ctx, AuthClaimsCtx, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) RequiredRole(roles []domain.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)
			if !slices.Contains(roles, principal.Role) {
				h.forbidden(w, r, CodeForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireVerifiedEmployer gates job posting: employers must have passed
// admin verification first. Admins pass through.
func (h *Handler) requireVerifiedEmployer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)
		if principal.Role == domain.RoleEmployer && !principal.IsVerified {
			h.forbidden(w, r, CodeEmployerNotVerified, "employer account is not verified yet")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) userInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDParam := chi.URLParam(r, "id")
		userID, err := strconv.ParseInt(userIDParam, 10, 64)
		if err != nil {
			h.badRequest(w, r, errors.New("invalid user id"))
			return
		}

		user, err := h.repository.GetUserByID(userID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "user not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), UserInfoCtx, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) employerInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		employerIDParam := chi.URLParam(r, "id")
		employerID, err := strconv.ParseInt(employerIDParam, 10, 64)
		if err != nil {
			h.badRequest(w, r, errors.New("invalid employer id"))
			return
		}

		employer, err := h.repository.GetEmployerByID(employerID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "employer not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), EmployerCtx, employer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) jobInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jobIDParam := chi.URLParam(r, "id")
		jobID, err := strconv.ParseInt(jobIDParam, 10, 64)
		if err != nil {
			h.badRequest(w, r, errors.New("invalid job id"))
			return
		}

		job, err := h.repository.GetJobByID(jobID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "job not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), JobCtx, job)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) applicationInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		applicationIDParam := chi.URLParam(r, "id")
		applicationID, err := strconv.ParseInt(applicationIDParam, 10, 64)
		if err != nil {
			h.badRequest(w, r, errors.New("invalid application id"))
			return
		}

		application, err := h.repository.GetApplicationByID(applicationID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "application not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), ApplicationCtx, application)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
