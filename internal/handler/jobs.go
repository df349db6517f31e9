package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

func (h *Handler) GetActiveJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repository.GetActiveJobs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "jobs fetched", jobs)
}

// GetJob returns the job detail. Every fetch counts as a view; the counter
// is bumped with a single-statement increment so concurrent fetches never
// lose updates, and the response carries the post-increment value.
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)

	views, err := h.repository.IncrementJobViews(job.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	job.Views = views

	h.successResponse(w, r, "job fetched", job)
}

func (h *Handler) SearchJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := &domain.JobFilter{
		Keyword:  query.Get("keyword"),
		Category: domain.JobCategory(query.Get("category")),
		JobType:  domain.JobType(query.Get("jobType")),
		Location: query.Get("location"),
	}

	jobs, err := h.repository.SearchJobs(filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "jobs fetched", jobs)
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)

	var req struct {
		Title       string    `json:"title" validate:"required"`
		Description string    `json:"description" validate:"required"`
		Company     string    `json:"company" validate:"required"`
		Category    string    `json:"category" validate:"required,oneof=technology healthcare finance education marketing sales engineering other"`
		JobType     string    `json:"jobType" validate:"required,oneof=full-time part-time contract internship remote"`
		Location    string    `json:"location" validate:"required"`
		Salary      string    `json:"salary"`
		Experience  string    `json:"experience"`
		Education   string    `json:"education"`
		Tags        []string  `json:"tags"`
		Deadline    time.Time `json:"deadline" validate:"required"`
		Featured    bool      `json:"featured"`
		EmployerID  int64     `json:"employerId"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// employers always post under their own profile; only admins may post
	// on behalf of someone else
	employerID := principal.EmployerID
	if principal.Role == domain.RoleAdmin {
		employerID = req.EmployerID
	}
	if employerID == 0 {
		h.badRequest(w, r, errors.New("employerId is required"))
		return
	}

	if principal.Role == domain.RoleAdmin {
		employer, err := h.repository.GetEmployerByID(employerID)
		if err != nil {
			h.lookupError(w, r, err, "employer not found")
			return
		}
		if !employer.IsVerified {
			h.forbidden(w, r, CodeEmployerNotVerified, "employer account is not verified yet")
			return
		}
	}

	if req.Deadline.Before(time.Now()) {
		h.badRequest(w, r, errors.New("deadline must be in the future"))
		return
	}

	if req.Tags == nil {
		req.Tags = []string{}
	}

	job := &domain.Job{
		EmployerID:  employerID,
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Category:    domain.JobCategory(req.Category),
		JobType:     domain.JobType(req.JobType),
		Location:    req.Location,
		Salary:      req.Salary,
		Experience:  req.Experience,
		Education:   req.Education,
		Tags:        req.Tags,
		Deadline:    req.Deadline,
		Featured:    req.Featured,
	}

	if err := h.repository.CreateJob(job); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "job created", job)
}

// canManageJob reports whether the principal owns the job or is an admin.
func canManageJob(principal *domain.Principal, job *domain.Job) bool {
	if principal.Role == domain.RoleAdmin {
		return true
	}
	return principal.Role == domain.RoleEmployer && principal.EmployerID == job.EmployerID
}

func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)
	job := r.Context().Value(JobCtx).(*domain.Job)

	if !canManageJob(principal, job) {
		h.forbidden(w, r, CodeForbidden, "only the owning employer or an admin may modify this job")
		return
	}

	var req struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Company     *string    `json:"company"`
		Category    *string    `json:"category" validate:"omitempty,oneof=technology healthcare finance education marketing sales engineering other"`
		JobType     *string    `json:"jobType" validate:"omitempty,oneof=full-time part-time contract internship remote"`
		Location    *string    `json:"location"`
		Salary      *string    `json:"salary"`
		Experience  *string    `json:"experience"`
		Education   *string    `json:"education"`
		Tags        *[]string  `json:"tags"`
		Deadline    *time.Time `json:"deadline"`
		Featured    *bool      `json:"featured"`
		IsActive    *bool      `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Category != nil {
		job.Category = domain.JobCategory(*req.Category)
	}
	if req.JobType != nil {
		job.JobType = domain.JobType(*req.JobType)
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Experience != nil {
		job.Experience = *req.Experience
	}
	if req.Education != nil {
		job.Education = *req.Education
	}
	if req.Tags != nil {
		job.Tags = *req.Tags
	}
	if req.Deadline != nil {
		job.Deadline = *req.Deadline
	}
	if req.Featured != nil {
		job.Featured = *req.Featured
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateJob(job); err != nil {
		h.updateError(w, r, err)
		return
	}

	h.successResponse(w, r, "job updated", job)
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)
	job := r.Context().Value(JobCtx).(*domain.Job)

	if !canManageJob(principal, job) {
		h.forbidden(w, r, CodeForbidden, "only the owning employer or an admin may delete this job")
		return
	}

	if err := h.repository.DeleteJob(job.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "job deleted", nil)
}

func (h *Handler) GetJobsByEmployer(w http.ResponseWriter, r *http.Request) {
	employerID, err := strconv.ParseInt(chi.URLParam(r, "employerID"), 10, 64)
	if err != nil {
		h.badRequest(w, r, errors.New("invalid employer id"))
		return
	}

	jobs, err := h.repository.GetJobsByEmployer(employerID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "jobs fetched", jobs)
}
