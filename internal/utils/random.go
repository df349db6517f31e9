package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Daniel", "Karen", "Emma",
	"Olivia", "Noah", "Liam", "Sophia", "Ava", "Ethan", "Lucas", "Mia", "Amelia",
}
var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson",
	"Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee",
}

func GenerateRandomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

var digits = "0123456789"

// GenerateEmailFromFullName derives a throwaway address like
// "jsmith123@example.com" for seeded accounts.
func GenerateEmailFromFullName(fullName, emailDomain string) string {
	parts := strings.Fields(strings.ToLower(fullName))
	local := ""
	if len(parts) > 1 {
		local = parts[0][:1] + parts[len(parts)-1]
	} else if len(parts) == 1 {
		local = parts[0]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@" + emailDomain
}

var candidateSkills = []string{
	"Go", "Python", "TypeScript", "React", "PostgreSQL", "Kubernetes",
	"Docker", "AWS", "Terraform", "GraphQL", "Java", "Rust", "SQL",
	"Communication", "Project Management",
}

func GenerateRandomSkills() []string {
	n := rand.Intn(5) + 1
	picked := make([]string, 0, n)
	seen := make(map[string]bool)
	for len(picked) < n {
		s := candidateSkills[rand.Intn(len(candidateSkills))]
		if !seen[s] {
			seen[s] = true
			picked = append(picked, s)
		}
	}
	return picked
}

func GenerateRandomCandidate(password string, emailDomain string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:     fullName,
		Email:        GenerateEmailFromFullName(fullName, emailDomain),
		PasswordHash: string(passwordHash),
		Role:         domain.RoleCandidate,
		Skills:       GenerateRandomSkills(),
	}

	return user, nil
}

var jobCategories = []domain.JobCategory{
	domain.CategoryTechnology,
	domain.CategoryHealthcare,
	domain.CategoryFinance,
	domain.CategoryEducation,
	domain.CategoryMarketing,
	domain.CategorySales,
	domain.CategoryEngineering,
}

var jobTypes = []domain.JobType{
	domain.JobTypeFullTime,
	domain.JobTypePartTime,
	domain.JobTypeContract,
	domain.JobTypeInternship,
	domain.JobTypeRemote,
}

var jobTitles = []string{
	"Backend Engineer", "Frontend Engineer", "Data Analyst",
	"Product Manager", "DevOps Engineer", "QA Engineer",
	"Sales Representative", "Marketing Specialist", "Account Manager",
	"Customer Success Manager", "Technical Writer", "Site Reliability Engineer",
}

var jobLocations = []string{
	"New York, NY", "San Francisco, CA", "Austin, TX", "Seattle, WA",
	"Chicago, IL", "Boston, MA", "Denver, CO", "Remote",
}

func GenerateRandomJob(employer *domain.Employer) *domain.Job {
	title := jobTitles[rand.Intn(len(jobTitles))]

	return &domain.Job{
		EmployerID:  employer.ID,
		Title:       title,
		Description: fmt.Sprintf("%s is hiring a %s to join the team.", employer.CompanyName, title),
		Company:     employer.CompanyName,
		Category:    jobCategories[rand.Intn(len(jobCategories))],
		JobType:     jobTypes[rand.Intn(len(jobTypes))],
		Location:    jobLocations[rand.Intn(len(jobLocations))],
		Salary:      fmt.Sprintf("$%d,000 - $%d,000", 60+rand.Intn(60), 130+rand.Intn(90)),
		Experience:  fmt.Sprintf("%d+ years", rand.Intn(8)+1),
		Education:   "Bachelor's degree or equivalent experience",
		Tags:        GenerateRandomSkills(),
		Deadline:    time.Now().Add(time.Duration(rand.Intn(60)+7) * 24 * time.Hour),
		Featured:    rand.Intn(5) == 0,
	}
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}
