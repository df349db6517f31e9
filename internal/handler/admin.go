package handler

import (
	"net/http"
)

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repository.GetStats()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "stats fetched", stats)
}

// GetAllJobs lists every job, inactive postings included. The public
// listing only shows active ones.
func (h *Handler) GetAllJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repository.GetAllJobs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "jobs fetched", jobs)
}
