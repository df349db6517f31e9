package handler

import (
	"net/http"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

func (h *Handler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.repository.GetAllUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "users fetched", users)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)

	h.successResponse(w, r, "user fetched", user)
}

// ToggleUserStatus suspends or reinstates an account. A suspended user's
// outstanding tokens start failing at the auth middleware on their next
// request.
func (h *Handler) ToggleUserStatus(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)

	user.IsActive = !user.IsActive

	if err := h.repository.UpdateUser(user); err != nil {
		h.updateError(w, r, err)
		return
	}

	msg := "user suspended"
	if user.IsActive {
		msg = "user reinstated"
	}
	h.successResponse(w, r, msg, user)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)

	if err := h.repository.DeleteUser(user.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "user deleted", nil)
}
