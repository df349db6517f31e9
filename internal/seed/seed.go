// Package seed fills a development database with a recognizable set of
// companies, jobs and candidates so the frontend has something to render.
package seed

import (
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
	"github.com/hirewire-dev/hirewire/backend/internal/repository"
)

type sampleCompany struct {
	name     string
	industry string
	size     string
	location string
	jobs     []sampleJob
}

type sampleJob struct {
	title    string
	category domain.JobCategory
	jobType  domain.JobType
	salary   string
}

var sampleCompanies = []sampleCompany{
	{
		name:     "Northbeam Software",
		industry: "Software",
		size:     "51-200",
		location: "Seattle, WA",
		jobs: []sampleJob{
			{"Senior Backend Engineer", domain.CategoryTechnology, domain.JobTypeFullTime, "$150,000 - $190,000"},
			{"Platform Engineer", domain.CategoryTechnology, domain.JobTypeRemote, "$140,000 - $175,000"},
		},
	},
	{
		name:     "Harborview Health",
		industry: "Healthcare",
		size:     "201-500",
		location: "Boston, MA",
		jobs: []sampleJob{
			{"Clinical Data Analyst", domain.CategoryHealthcare, domain.JobTypeFullTime, "$85,000 - $110,000"},
		},
	},
	{
		name:     "Ledgerline Capital",
		industry: "Financial Services",
		size:     "11-50",
		location: "New York, NY",
		jobs: []sampleJob{
			{"Quantitative Developer", domain.CategoryFinance, domain.JobTypeFullTime, "$170,000 - $230,000"},
			{"Compliance Associate", domain.CategoryFinance, domain.JobTypeContract, "$60/hour"},
		},
	},
	{
		name:     "Brightpath Learning",
		industry: "Education",
		size:     "1-10",
		location: "Austin, TX",
		jobs: []sampleJob{
			{"Curriculum Designer", domain.CategoryEducation, domain.JobTypePartTime, "$45,000 - $60,000"},
		},
	},
}

var sampleCandidates = []struct {
	fullName string
	headline string
	skills   []string
}{
	{"Grace Holden", "Backend engineer, distributed systems", []string{"Go", "PostgreSQL", "Kubernetes"}},
	{"Marcus Reed", "Full-stack developer", []string{"TypeScript", "React", "Node.js"}},
	{"Priya Nair", "Data analyst", []string{"SQL", "Python", "Tableau"}},
}

func deadline() time.Time {
	return time.Now().Add(30 * 24 * time.Hour)
}

func emailFor(fullName, domainName string) string {
	parts := strings.Fields(strings.ToLower(fullName))
	return parts[0] + "." + parts[len(parts)-1] + "@" + domainName
}

// SeedSampleData inserts the fixture set. Inserts that fail (typically
// because a previous run already created the row) are logged and skipped.
func SeedSampleData(repo *repository.Repository, password string) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash seed password", "error", err)
		return
	}

	for _, company := range sampleCompanies {
		contact := &domain.User{
			FullName:     company.name + " Recruiting",
			Email:        emailFor("careers "+strings.Fields(company.name)[0], "example.com"),
			PasswordHash: string(passwordHash),
			Role:         domain.RoleEmployer,
			Skills:       []string{},
		}
		if err := repo.CreateUser(contact); err != nil {
			slog.Error("failed to insert employer user", "company", company.name, "error", err)
			continue
		}

		employer := &domain.Employer{
			UserID:      contact.ID,
			CompanyName: company.name,
			Industry:    company.industry,
			CompanySize: company.size,
			Description: company.name + " is hiring across " + company.industry + ".",
			Location:    company.location,
			IsVerified:  true,
		}
		if err := repo.CreateEmployer(employer); err != nil {
			slog.Error("failed to insert employer profile", "company", company.name, "error", err)
			continue
		}

		for _, j := range company.jobs {
			job := &domain.Job{
				EmployerID:  employer.ID,
				Title:       j.title,
				Description: company.name + " is looking for a " + j.title + " in " + company.location + ".",
				Company:     company.name,
				Category:    j.category,
				JobType:     j.jobType,
				Location:    company.location,
				Salary:      j.salary,
				Experience:  "3+ years",
				Education:   "Bachelor's degree or equivalent experience",
				Tags:        []string{string(j.category), string(j.jobType)},
				Deadline:    deadline(),
			}
			if err := repo.CreateJob(job); err != nil {
				slog.Error("failed to insert job", "title", j.title, "error", err)
			}
		}
	}

	for _, c := range sampleCandidates {
		user := &domain.User{
			FullName:     c.fullName,
			Email:        emailFor(c.fullName, "example.com"),
			PasswordHash: string(passwordHash),
			Role:         domain.RoleCandidate,
			Headline:     c.headline,
			Skills:       c.skills,
		}
		if err := repo.CreateUser(user); err != nil {
			slog.Error("failed to insert candidate", "name", c.fullName, "error", err)
		}
	}

	slog.Info("sample data seeded")
}
