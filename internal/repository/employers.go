package repository

import (
	"context"
	"time"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

func (r *Repository) CreateEmployer(employer *domain.Employer) error {
	query := `
		INSERT INTO employers (user_id, company_name, industry, company_size, website, description, location, contact_phone, logo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, is_verified, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{employer.UserID, employer.CompanyName, employer.Industry, employer.CompanySize, employer.Website, employer.Description, employer.Location, employer.ContactPhone, employer.Logo}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employer.ID, &employer.IsVerified, &employer.CreatedAt, &employer.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetEmployerByID(id int64) (*domain.Employer, error) {
	query := `
		SELECT user_id, company_name, industry, company_size, website, description, location, contact_phone, logo, is_verified, created_at, version
		FROM employers WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employer := &domain.Employer{
		ID: id,
	}

	dst := []any{&employer.UserID, &employer.CompanyName, &employer.Industry, &employer.CompanySize, &employer.Website, &employer.Description, &employer.Location, &employer.ContactPhone, &employer.Logo, &employer.IsVerified, &employer.CreatedAt, &employer.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return employer, nil
}

func (r *Repository) GetEmployerByUserID(userID int64) (*domain.Employer, error) {
	query := `
		SELECT id, company_name, industry, company_size, website, description, location, contact_phone, logo, is_verified, created_at, version
		FROM employers WHERE user_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employer := &domain.Employer{
		UserID: userID,
	}

	dst := []any{&employer.ID, &employer.CompanyName, &employer.Industry, &employer.CompanySize, &employer.Website, &employer.Description, &employer.Location, &employer.ContactPhone, &employer.Logo, &employer.IsVerified, &employer.CreatedAt, &employer.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, userID).Scan(dst...); err != nil {
		return nil, err
	}

	return employer, nil
}

func (r *Repository) UpdateEmployer(employer *domain.Employer) error {
	query := `
		UPDATE employers
		SET
			company_name = $1,
			industry = $2,
			company_size = $3,
			website = $4,
			description = $5,
			location = $6,
			contact_phone = $7,
			logo = $8,
			is_verified = $9,
			version = version + 1
		WHERE id = $10 AND version = $11
		RETURNING user_id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{employer.CompanyName, employer.Industry, employer.CompanySize, employer.Website, employer.Description, employer.Location, employer.ContactPhone, employer.Logo, employer.IsVerified, employer.ID, employer.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employer.UserID, &employer.CreatedAt, &employer.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllEmployers() ([]*domain.Employer, error) {
	query := `
		SELECT id, user_id, company_name, industry, company_size, website, description, location, contact_phone, logo, is_verified, created_at, version
		FROM employers ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employers := make([]*domain.Employer, 0)
	for rows.Next() {
		employer := &domain.Employer{}
		dst := []any{&employer.ID, &employer.UserID, &employer.CompanyName, &employer.Industry, &employer.CompanySize, &employer.Website, &employer.Description, &employer.Location, &employer.ContactPhone, &employer.Logo, &employer.IsVerified, &employer.CreatedAt, &employer.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employers = append(employers, employer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employers, nil
}

func (r *Repository) DeleteEmployer(id int64) error {
	query := `
		DELETE FROM employers WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

// GetTopHiringCompanies ranks verified employers by their number of active
// job postings.
func (r *Repository) GetTopHiringCompanies(limit int) ([]*domain.TopHiringCompany, error) {
	query := `
		SELECT e.id, e.company_name, e.logo, COUNT(j.id) AS active_jobs
		FROM employers e
		JOIN jobs j ON j.employer_id = e.id AND j.is_active = TRUE
		WHERE e.is_verified = TRUE
		GROUP BY e.id, e.company_name, e.logo
		ORDER BY active_jobs DESC, e.id
		LIMIT $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]*domain.TopHiringCompany, 0)
	for rows.Next() {
		c := &domain.TopHiringCompany{}
		if err := rows.Scan(&c.EmployerID, &c.CompanyName, &c.Logo, &c.ActiveJobs); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}
