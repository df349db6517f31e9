package domain

import (
	"time"
)

type JobCategory string

const (
	CategoryTechnology  JobCategory = "technology"
	CategoryHealthcare  JobCategory = "healthcare"
	CategoryFinance     JobCategory = "finance"
	CategoryEducation   JobCategory = "education"
	CategoryMarketing   JobCategory = "marketing"
	CategorySales       JobCategory = "sales"
	CategoryEngineering JobCategory = "engineering"
	CategoryOther       JobCategory = "other"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeRemote     JobType = "remote"
)

type Job struct {
	ID               int64       `json:"id"`
	EmployerID       int64       `json:"employerId"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Company          string      `json:"company"`
	Category         JobCategory `json:"category"`
	JobType          JobType     `json:"jobType"`
	Location         string      `json:"location"`
	Salary           string      `json:"salary,omitempty"`
	Experience       string      `json:"experience,omitempty"`
	Education        string      `json:"education,omitempty"`
	Tags             []string    `json:"tags"`
	Deadline         time.Time   `json:"deadline"`
	Featured         bool        `json:"featured"`
	Views            int64       `json:"views"`
	ApplicationCount int64       `json:"applicationCount"`
	IsActive         bool        `json:"isActive"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
	Version          int32       `json:"-"`
}

// JobFilter is the AND-combined filter for the public search endpoint.
// Keyword and Location match case-insensitive substrings, Category and
// JobType match exactly.
type JobFilter struct {
	Keyword  string
	Category JobCategory
	JobType  JobType
	Location string
}
