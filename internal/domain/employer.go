package domain

import (
	"time"
)

type Employer struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	CompanyName  string    `json:"companyName"`
	Industry     string    `json:"industry"`
	CompanySize  string    `json:"companySize"`
	Website      string    `json:"website,omitempty"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	ContactPhone string    `json:"contactPhone"`
	Logo         string    `json:"logo,omitempty"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}

// TopHiringCompany is an aggregate row for the public landing page.
type TopHiringCompany struct {
	EmployerID  int64  `json:"employerId"`
	CompanyName string `json:"companyName"`
	Logo        string `json:"logo,omitempty"`
	ActiveJobs  int64  `json:"activeJobs"`
}
