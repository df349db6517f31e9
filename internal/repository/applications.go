package repository

import (
	"context"
	"time"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

const applicationColumns = `id, job_id, candidate_id, employer_id, resume, cover_letter, status, notes, submitted_at, updated_at, version`

func scanApplication(row interface{ Scan(dest ...any) error }) (*domain.Application, error) {
	a := &domain.Application{}
	dst := []any{&a.ID, &a.JobID, &a.CandidateID, &a.EmployerID, &a.Resume, &a.CoverLetter, &a.Status, &a.Notes, &a.SubmittedAt, &a.UpdatedAt, &a.Version}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Repository) CreateApplication(application *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, candidate_id, employer_id, resume, cover_letter)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, notes, submitted_at, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{application.JobID, application.CandidateID, application.EmployerID, application.Resume, application.CoverLetter}
	dst := []any{&application.ID, &application.Status, &application.Notes, &application.SubmittedAt, &application.UpdatedAt, &application.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetApplicationByID(id int64) (*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return scanApplication(r.dbpool.QueryRowContext(ctx, query, id))
}

func (r *Repository) UpdateApplication(application *domain.Application) error {
	query := `
		UPDATE applications
		SET
			status = $1,
			notes = $2,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING submitted_at, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{application.Status, application.Notes, application.ID, application.Version}
	dst := []any{&application.SubmittedAt, &application.UpdatedAt, &application.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteApplication(id int64) error {
	query := `
		DELETE FROM applications WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) queryApplications(query string, args ...any) ([]*domain.Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := make([]*domain.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

func (r *Repository) GetAllApplications() ([]*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications ORDER BY submitted_at DESC
	`

	return r.queryApplications(query)
}

func (r *Repository) GetApplicationsByJob(jobID int64) ([]*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications WHERE job_id = $1 ORDER BY submitted_at DESC
	`

	return r.queryApplications(query, jobID)
}

func (r *Repository) GetApplicationsByCandidate(candidateID int64) ([]*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications WHERE candidate_id = $1 ORDER BY submitted_at DESC
	`

	return r.queryApplications(query, candidateID)
}

func (r *Repository) GetApplicationsByEmployer(employerID int64) ([]*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications WHERE employer_id = $1 ORDER BY submitted_at DESC
	`

	return r.queryApplications(query, employerID)
}

func (r *Repository) CheckApplicationIfExists(jobID, candidateID int64) (bool, error) {
	isExists := false

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, jobID, candidateID).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}
