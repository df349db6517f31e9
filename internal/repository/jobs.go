package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

const jobColumns = `id, employer_id, title, description, company, category, job_type, location, salary, experience, education, tags, deadline, featured, views, application_count, is_active, created_at, updated_at, version`

func scanJob(row interface{ Scan(dest ...any) error }) (*domain.Job, error) {
	job := &domain.Job{}
	var tags []byte
	dst := []any{&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Company, &job.Category, &job.JobType, &job.Location, &job.Salary, &job.Experience, &job.Education, &tags, &job.Deadline, &job.Featured, &job.Views, &job.ApplicationCount, &job.IsActive, &job.CreatedAt, &job.UpdatedAt, &job.Version}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &job.Tags); err != nil {
		return nil, err
	}
	return job, nil
}

func (r *Repository) CreateJob(job *domain.Job) error {
	query := `
		INSERT INTO jobs (employer_id, title, description, company, category, job_type, location, salary, experience, education, tags, deadline, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, views, application_count, is_active, created_at, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	tags, err := json.Marshal(job.Tags)
	if err != nil {
		return err
	}

	args := []any{job.EmployerID, job.Title, job.Description, job.Company, job.Category, job.JobType, job.Location, job.Salary, job.Experience, job.Education, tags, job.Deadline, job.Featured}
	dst := []any{&job.ID, &job.Views, &job.ApplicationCount, &job.IsActive, &job.CreatedAt, &job.UpdatedAt, &job.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetJobByID(id int64) (*domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return scanJob(r.dbpool.QueryRowContext(ctx, query, id))
}

func (r *Repository) UpdateJob(job *domain.Job) error {
	query := `
		UPDATE jobs
		SET
			title = $1,
			description = $2,
			company = $3,
			category = $4,
			job_type = $5,
			location = $6,
			salary = $7,
			experience = $8,
			education = $9,
			tags = $10,
			deadline = $11,
			featured = $12,
			is_active = $13,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $14 AND version = $15
		RETURNING views, application_count, created_at, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	tags, err := json.Marshal(job.Tags)
	if err != nil {
		return err
	}

	args := []any{job.Title, job.Description, job.Company, job.Category, job.JobType, job.Location, job.Salary, job.Experience, job.Education, tags, job.Deadline, job.Featured, job.IsActive, job.ID, job.Version}
	dst := []any{&job.Views, &job.ApplicationCount, &job.CreatedAt, &job.UpdatedAt, &job.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteJob(id int64) error {
	query := `
		DELETE FROM jobs WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) queryJobs(query string, args ...any) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *Repository) GetActiveJobs() ([]*domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs WHERE is_active = TRUE ORDER BY created_at DESC
	`

	return r.queryJobs(query)
}

func (r *Repository) GetAllJobs() ([]*domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs ORDER BY created_at DESC
	`

	return r.queryJobs(query)
}

func (r *Repository) GetJobsByEmployer(employerID int64) ([]*domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC
	`

	return r.queryJobs(query, employerID)
}

// SearchJobs combines the filter clauses with AND over active jobs:
// keyword and location are case-insensitive substring matches, category
// and job type are exact.
func (r *Repository) SearchJobs(filter *domain.JobFilter) ([]*domain.Job, error) {
	conditions := []string{"is_active = TRUE"}
	args := []any{}

	if filter.Keyword != "" {
		args = append(args, filter.Keyword)
		conditions = append(conditions, fmt.Sprintf("(title ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%')", len(args), len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.JobType != "" {
		args = append(args, filter.JobType)
		conditions = append(conditions, fmt.Sprintf("job_type = $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, filter.Location)
		conditions = append(conditions, fmt.Sprintf("location ILIKE '%%' || $%d || '%%'", len(args)))
	}

	query := `
		SELECT ` + jobColumns + `
		FROM jobs WHERE ` + strings.Join(conditions, " AND ") + ` ORDER BY created_at DESC
	`

	return r.queryJobs(query, args...)
}

// IncrementJobViews bumps the view counter in a single statement so
// concurrent detail fetches never lose updates.
func (r *Repository) IncrementJobViews(id int64) (int64, error) {
	query := `
		UPDATE jobs SET views = views + 1 WHERE id = $1 RETURNING views
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var views int64
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&views); err != nil {
		return 0, err
	}

	return views, nil
}

func (r *Repository) IncrementJobApplicationCount(id int64) error {
	query := `
		UPDATE jobs SET application_count = application_count + 1 WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	return err
}

func (r *Repository) DecrementJobApplicationCount(id int64) error {
	query := `
		UPDATE jobs SET application_count = GREATEST(application_count - 1, 0) WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	return err
}
