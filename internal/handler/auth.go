package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
	"github.com/hirewire-dev/hirewire/backend/internal/token"
	"github.com/hirewire-dev/hirewire/backend/internal/utils"
)

func (h *Handler) issueToken(user *domain.User) (string, error) {
	return token.Issue(user.ID, user.Role, []byte(h.config.JWT.Secret), time.Duration(h.config.JWT.Expiration)*time.Second)
}

type authPayload struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (h *Handler) RegisterCandidate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string   `json:"fullName" validate:"required"`
		Email    string   `json:"email" validate:"required,email"`
		Phone    string   `json:"phone" validate:"required"`
		Password string   `json:"password" validate:"required,min=8"`
		Headline string   `json:"headline"`
		Location string   `json:"location"`
		Skills   []string `json:"skills"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	exists, err := h.repository.CheckEmailIfExists(req.Email)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if exists {
		h.conflict(w, r, CodeEmailTaken, "an account with this email already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user := &domain.User{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleCandidate,
		Headline:     req.Headline,
		Location:     req.Location,
		Skills:       req.Skills,
	}

	if err := h.repository.CreateUser(user); err != nil {
		// the unique index closes the race the pre-check leaves open
		if isConstraintViolation(err, "users_email_key") {
			h.conflict(w, r, CodeEmailTaken, "an account with this email already exists")
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	if err := h.queueMail(domain.MailMessage{
		Type: "welcome",
		To:   user.Email,
		Data: domain.WelcomeMailData{FullName: user.FullName},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	tokenString, err := h.issueToken(user)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "registration successful", authPayload{Token: tokenString, User: user})
}

func (h *Handler) RegisterEmployer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName     string `json:"fullName" validate:"required"`
		Email        string `json:"email" validate:"required,email"`
		Phone        string `json:"phone" validate:"required"`
		Password     string `json:"password" validate:"required,min=8"`
		CompanyName  string `json:"companyName" validate:"required"`
		Industry     string `json:"industry" validate:"required"`
		CompanySize  string `json:"companySize" validate:"required"`
		Website      string `json:"website"`
		Description  string `json:"description" validate:"required"`
		Location     string `json:"location" validate:"required"`
		ContactPhone string `json:"contactPhone" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	exists, err := h.repository.CheckEmailIfExists(req.Email)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if exists {
		h.conflict(w, r, CodeEmailTaken, "an account with this email already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user := &domain.User{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleEmployer,
		Skills:       []string{},
	}

	if err := h.repository.CreateUser(user); err != nil {
		// the unique index closes the race the pre-check leaves open
		if isConstraintViolation(err, "users_email_key") {
			h.conflict(w, r, CodeEmailTaken, "an account with this email already exists")
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	// the profile starts unverified; an admin has to approve it before the
	// employer may post jobs
	employer := &domain.Employer{
		UserID:       user.ID,
		CompanyName:  req.CompanyName,
		Industry:     req.Industry,
		CompanySize:  req.CompanySize,
		Website:      req.Website,
		Description:  req.Description,
		Location:     req.Location,
		ContactPhone: req.ContactPhone,
	}

	if err := h.repository.CreateEmployer(employer); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.queueMail(domain.MailMessage{
		Type: "welcome",
		To:   user.Email,
		Data: domain.WelcomeMailData{FullName: user.FullName},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	tokenString, err := h.issueToken(user)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "registration successful", struct {
		Token    string           `json:"token"`
		User     *domain.User     `json:"user"`
		Employer *domain.Employer `json:"employer"`
	}{Token: tokenString, User: user, Employer: employer})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	user, err := h.repository.GetUserByEmail(req.Email)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.unauthorized(w, r, CodeInvalidCredentials, "invalid email or password")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			h.unauthorized(w, r, CodeInvalidCredentials, "invalid email or password")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if !user.IsActive {
		h.forbidden(w, r, CodeAccountSuspended, "account has been suspended")
		return
	}

	tokenString, err := h.issueToken(user)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "login successful", authPayload{Token: tokenString, User: user})
}

// Logout revokes the presented token; the revocation entry expires together
// with the token itself.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	tokenString := r.Context().Value(BearerTokenCtx).(string)
	claims := r.Context().Value(AuthClaimsCtx).(*token.Claims)

	if err := h.revocations.Revoke(r.Context(), tokenString, claims.ExpiresAt.Time); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "logout successful", nil)
}

func (h *Handler) ChangeMyPassword(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)

	var req struct {
		OldPassword string `json:"oldPassword" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required,min=8"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	user, err := h.repository.GetUserByID(principal.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		h.badRequest(w, r, errors.New("current password is incorrect"))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user.PasswordHash = string(hashedPassword)

	if err := h.repository.UpdateUser(user); err != nil {
		h.updateError(w, r, err)
		return
	}

	h.successResponse(w, r, "password changed", nil)
}

func (h *Handler) RequireResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	user, err := h.repository.GetUserByEmail(req.Email)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// don't leak which emails have accounts
			h.successResponse(w, r, "a reset code has been sent if the email is registered", nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	otp := utils.GenerateRandomOTP()

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	if err := h.redisClient.Set(ctx, fmt.Sprintf("otp_reset_password_%s", user.Email), otp, time.Duration(h.config.OTP.Expiration)*time.Second).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.queueMail(domain.MailMessage{
		Type: "reset_password",
		To:   user.Email,
		Data: domain.ResetPasswordMailData{
			FullName:   user.FullName,
			OTP:        otp,
			Expiration: h.config.OTP.Expiration / 60, // shown in minutes
		},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "a reset code has been sent if the email is registered", nil)
}

func (h *Handler) ConfirmResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		OTP      string `json:"otp" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	otp, err := h.redisClient.Get(ctx, fmt.Sprintf("otp_reset_password_%s", req.Email)).Result()
	if err != nil || otp != req.OTP {
		h.badRequest(w, r, errors.New("invalid reset code"))
		return
	}

	user, err := h.repository.GetUserByEmail(req.Email)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user.PasswordHash = string(hashedPassword)

	if err := h.repository.UpdateUser(user); err != nil {
		h.updateError(w, r, err)
		return
	}

	if err := h.redisClient.Del(ctx, fmt.Sprintf("otp_reset_password_%s", req.Email)).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "password reset successful", nil)
}
