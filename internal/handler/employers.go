package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

func (h *Handler) GetAllEmployers(w http.ResponseWriter, r *http.Request) {
	employers, err := h.repository.GetAllEmployers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employers fetched", employers)
}

func (h *Handler) GetEmployer(w http.ResponseWriter, r *http.Request) {
	employer := r.Context().Value(EmployerCtx).(*domain.Employer)

	h.successResponse(w, r, "employer fetched", employer)
}

func (h *Handler) GetTopHiringCompanies(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			h.badRequest(w, r, errors.New("limit must be between 1 and 50"))
			return
		}
		limit = n
	}

	companies, err := h.repository.GetTopHiringCompanies(limit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "top hiring companies fetched", companies)
}

func (h *Handler) UpdateEmployer(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)
	employer := r.Context().Value(EmployerCtx).(*domain.Employer)

	if principal.Role != domain.RoleAdmin && principal.ID != employer.UserID {
		h.forbidden(w, r, CodeForbidden, "you may not modify another employer's profile")
		return
	}

	var req struct {
		CompanyName  *string `json:"companyName"`
		Industry     *string `json:"industry"`
		CompanySize  *string `json:"companySize"`
		Website      *string `json:"website" validate:"omitempty,url"`
		Description  *string `json:"description"`
		Location     *string `json:"location"`
		ContactPhone *string `json:"contactPhone"`
		Logo         *string `json:"logo"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.CompanyName != nil {
		employer.CompanyName = *req.CompanyName
	}
	if req.Industry != nil {
		employer.Industry = *req.Industry
	}
	if req.CompanySize != nil {
		employer.CompanySize = *req.CompanySize
	}
	if req.Website != nil {
		employer.Website = *req.Website
	}
	if req.Description != nil {
		employer.Description = *req.Description
	}
	if req.Location != nil {
		employer.Location = *req.Location
	}
	if req.ContactPhone != nil {
		employer.ContactPhone = *req.ContactPhone
	}
	if req.Logo != nil {
		employer.Logo = *req.Logo
	}

	if err := h.repository.UpdateEmployer(employer); err != nil {
		h.updateError(w, r, err)
		return
	}

	h.successResponse(w, r, "employer updated", employer)
}

func (h *Handler) DeleteEmployer(w http.ResponseWriter, r *http.Request) {
	employer := r.Context().Value(EmployerCtx).(*domain.Employer)

	if err := h.repository.DeleteEmployer(employer.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employer deleted", nil)
}

// VerifyEmployer flips the verification flag so the employer may start
// posting jobs, and notifies the company by email.
func (h *Handler) VerifyEmployer(w http.ResponseWriter, r *http.Request) {
	employer := r.Context().Value(EmployerCtx).(*domain.Employer)

	if employer.IsVerified {
		h.successResponse(w, r, "employer already verified", employer)
		return
	}

	employer.IsVerified = true
	if err := h.repository.UpdateEmployer(employer); err != nil {
		h.updateError(w, r, err)
		return
	}

	user, err := h.repository.GetUserByID(employer.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.successResponse(w, r, "employer verified", employer)
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	if err := h.queueMail(domain.MailMessage{
		Type: "employer_verified",
		To:   user.Email,
		Data: domain.EmployerVerifiedMailData{CompanyName: employer.CompanyName},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employer verified", employer)
}
