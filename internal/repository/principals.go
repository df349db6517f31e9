package repository

import (
	"context"
	"time"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

// GetPrincipalByID resolves a user id into the normalized principal used by
// the auth middleware. A single query covers both account types: candidates
// and admins come back with IsVerified=false and no employer id, employers
// pick up their profile's verification state via the join.
func (r *Repository) GetPrincipalByID(id int64) (*domain.Principal, error) {
	query := `
		SELECT u.id, u.role, u.is_active, COALESCE(e.is_verified, FALSE), COALESCE(e.id, 0)
		FROM users u
		LEFT JOIN employers e ON e.user_id = u.id
		WHERE u.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	p := &domain.Principal{}
	dst := []any{&p.ID, &p.Role, &p.IsActive, &p.IsVerified, &p.EmployerID}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return p, nil
}
