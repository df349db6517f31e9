package repository

import (
	"context"
	"time"
)

// Stats is the admin dashboard aggregate.
type Stats struct {
	Users        int64 `json:"users"`
	Employers    int64 `json:"employers"`
	Jobs         int64 `json:"jobs"`
	ActiveJobs   int64 `json:"activeJobs"`
	Applications int64 `json:"applications"`
}

func (r *Repository) GetStats() (*Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM employers),
			(SELECT COUNT(*) FROM jobs),
			(SELECT COUNT(*) FROM jobs WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM applications)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	stats := &Stats{}
	dst := []any{&stats.Users, &stats.Employers, &stats.Jobs, &stats.ActiveJobs, &stats.Applications}
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(dst...); err != nil {
		return nil, err
	}

	return stats, nil
}
