package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)

	user, err := h.repository.GetUserByID(principal.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.notFound(w, r, "user not found")
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	// employers get their company profile alongside the account
	if principal.Role == domain.RoleEmployer {
		employer, err := h.repository.GetEmployerByUserID(principal.ID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			h.internalServerError(w, r, err)
			return
		}
		h.successResponse(w, r, "profile fetched", map[string]any{
			"user":     user,
			"employer": employer,
		})
		return
	}

	h.successResponse(w, r, "profile fetched", user)
}

func (h *Handler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)

	user, err := h.repository.GetUserByID(principal.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.notFound(w, r, "user not found")
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	var req struct {
		FullName *string   `json:"fullName"`
		Phone    *string   `json:"phone"`
		Avatar   *string   `json:"avatar"`
		Headline *string   `json:"headline"`
		Location *string   `json:"location"`
		Skills   *[]string `json:"skills"`
		Resume   *string   `json:"resume"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Headline != nil {
		user.Headline = *req.Headline
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	if req.Resume != nil {
		user.Resume = *req.Resume
	}

	if err := h.repository.UpdateUser(user); err != nil {
		h.updateError(w, r, err)
		return
	}

	h.successResponse(w, r, "profile updated", user)
}
