package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

func (r *Repository) CreateUser(user *domain.User) error {
	query := `
		INSERT INTO users (full_name, email, phone, password_hash, avatar, role, headline, location, skills, resume)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, is_active, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	skills, err := json.Marshal(user.Skills)
	if err != nil {
		return err
	}

	args := []any{user.FullName, user.Email, user.Phone, user.PasswordHash, user.Avatar, user.Role, user.Headline, user.Location, skills, user.Resume}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetUserByID(id int64) (*domain.User, error) {
	query := `
		SELECT full_name, email, phone, password_hash, avatar, role, headline, location, skills, resume, is_active, created_at, version
		FROM users WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	user := &domain.User{
		ID: id,
	}

	var skills []byte
	dst := []any{&user.FullName, &user.Email, &user.Phone, &user.PasswordHash, &user.Avatar, &user.Role, &user.Headline, &user.Location, &skills, &user.Resume, &user.IsActive, &user.CreatedAt, &user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(skills, &user.Skills); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetUserByEmail(email string) (*domain.User, error) {
	query := `
		SELECT id, full_name, phone, password_hash, avatar, role, headline, location, skills, resume, is_active, created_at, version
		FROM users WHERE email = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	user := &domain.User{
		Email: email,
	}

	var skills []byte
	dst := []any{&user.ID, &user.FullName, &user.Phone, &user.PasswordHash, &user.Avatar, &user.Role, &user.Headline, &user.Location, &skills, &user.Resume, &user.IsActive, &user.CreatedAt, &user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(dst...); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(skills, &user.Skills); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repository) UpdateUser(user *domain.User) error {
	query := `
		UPDATE users
		SET
			full_name = $1,
			email = $2,
			phone = $3,
			password_hash = $4,
			avatar = $5,
			headline = $6,
			location = $7,
			skills = $8,
			resume = $9,
			is_active = $10,
			version = version + 1
		WHERE id = $11 AND version = $12
		RETURNING role, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	skills, err := json.Marshal(user.Skills)
	if err != nil {
		return err
	}

	args := []any{user.FullName, user.Email, user.Phone, user.PasswordHash, user.Avatar, user.Headline, user.Location, skills, user.Resume, user.IsActive, user.ID, user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&user.Role, &user.CreatedAt, &user.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllUsers() ([]*domain.User, error) {
	query := `
		SELECT id, full_name, email, phone, avatar, role, headline, location, skills, resume, is_active, created_at, version
		FROM users ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}
		var skills []byte
		dst := []any{&user.ID, &user.FullName, &user.Email, &user.Phone, &user.Avatar, &user.Role, &user.Headline, &user.Location, &skills, &user.Resume, &user.IsActive, &user.CreatedAt, &user.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(skills, &user.Skills); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *Repository) DeleteUser(id int64) error {
	query := `
		DELETE FROM users WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CheckEmailIfExists(email string) (bool, error) {
	isExists := false

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}
