package domain

import (
	"time"
)

type ApplicationStatus string

const (
	StatusSubmitted   ApplicationStatus = "submitted"
	StatusReviewed    ApplicationStatus = "reviewed"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusHired       ApplicationStatus = "hired"
)

// Application links a candidate to a job. At most one application may exist
// per (job, candidate) pair; the database enforces this with a unique index.
type Application struct {
	ID          int64             `json:"id"`
	JobID       int64             `json:"jobId"`
	CandidateID int64             `json:"candidateId"`
	EmployerID  int64             `json:"employerId"`
	Resume      string            `json:"resume"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	Status      ApplicationStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	SubmittedAt time.Time         `json:"submittedAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	Version     int32             `json:"-"`
}
