package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

func (h *Handler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)

	var req struct {
		JobID       int64  `json:"jobId" validate:"required"`
		Resume      string `json:"resume" validate:"required"`
		CoverLetter string `json:"coverLetter"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	job, err := h.repository.GetJobByID(req.JobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.notFound(w, r, "job not found")
			return
		}
		h.internalServerError(w, r, err)
		return
	}
	// a deactivated posting is indistinguishable from a missing one
	if !job.IsActive {
		h.notFound(w, r, "job not found")
		return
	}
	if job.Deadline.Before(time.Now()) {
		h.conflict(w, r, CodeDeadlinePassed, "the application deadline for this job has passed")
		return
	}

	exists, err := h.repository.CheckApplicationIfExists(job.ID, principal.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if exists {
		h.conflict(w, r, CodeAlreadyApplied, "you have already applied to this job")
		return
	}

	application := &domain.Application{
		JobID:       job.ID,
		CandidateID: principal.ID,
		EmployerID:  job.EmployerID,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
	}

	if err := h.repository.CreateApplication(application); err != nil {
		// the unique index closes the race the pre-check leaves open
		if isConstraintViolation(err, "applications_job_id_candidate_id_key") {
			h.conflict(w, r, CodeAlreadyApplied, "you have already applied to this job")
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	if err := h.repository.IncrementJobApplicationCount(job.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "application submitted", application)
}

// canViewApplication: the applying candidate, the hiring employer, and
// admins may read an application.
func canViewApplication(principal *domain.Principal, application *domain.Application) bool {
	switch principal.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleCandidate:
		return principal.ID == application.CandidateID
	case domain.RoleEmployer:
		return principal.EmployerID == application.EmployerID
	}
	return false
}

func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)
	application := r.Context().Value(ApplicationCtx).(*domain.Application)

	if !canViewApplication(principal, application) {
		h.forbidden(w, r, CodeForbidden, "you may not view this application")
		return
	}

	h.successResponse(w, r, "application fetched", application)
}

func (h *Handler) GetAllApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.repository.GetAllApplications()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "applications fetched", applications)
}

func (h *Handler) GetMyApplications(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)

	applications, err := h.repository.GetApplicationsByCandidate(principal.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "applications fetched", applications)
}

func (h *Handler) GetApplicationsByJob(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)
	job := r.Context().Value(JobCtx).(*domain.Job)

	if !canManageJob(principal, job) {
		h.forbidden(w, r, CodeForbidden, "only the owning employer or an admin may list these applications")
		return
	}

	applications, err := h.repository.GetApplicationsByJob(job.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "applications fetched", applications)
}

func (h *Handler) GetApplicationsByEmployer(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)
	employer := r.Context().Value(EmployerCtx).(*domain.Employer)

	if principal.Role != domain.RoleAdmin && principal.EmployerID != employer.ID {
		h.forbidden(w, r, CodeForbidden, "you may not list another employer's applications")
		return
	}

	applications, err := h.repository.GetApplicationsByEmployer(employer.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "applications fetched", applications)
}

func (h *Handler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)
	application := r.Context().Value(ApplicationCtx).(*domain.Application)

	isOwnerEmployer := principal.Role == domain.RoleEmployer && principal.EmployerID == application.EmployerID
	if principal.Role != domain.RoleAdmin && !isOwnerEmployer {
		h.forbidden(w, r, CodeForbidden, "only the hiring employer or an admin may update this application")
		return
	}

	var req struct {
		Status string  `json:"status" validate:"required,oneof=submitted reviewed shortlisted rejected hired"`
		Notes  *string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	application.Status = domain.ApplicationStatus(req.Status)
	if req.Notes != nil {
		application.Notes = *req.Notes
	}

	if err := h.repository.UpdateApplication(application); err != nil {
		h.updateError(w, r, err)
		return
	}

	h.successResponse(w, r, "application updated", application)
}

func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	principal := r.Context().Value(PrincipalCtxKey).(*domain.Principal)
	application := r.Context().Value(ApplicationCtx).(*domain.Application)

	isOwnerCandidate := principal.Role == domain.RoleCandidate && principal.ID == application.CandidateID
	if principal.Role != domain.RoleAdmin && !isOwnerCandidate {
		h.forbidden(w, r, CodeForbidden, "only the applying candidate or an admin may withdraw this application")
		return
	}

	if err := h.repository.DeleteApplication(application.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.repository.DecrementJobApplicationCount(application.JobID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "application withdrawn", nil)
}
