package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"
)

const (
	userColumns = `id, full_name, nit, email, phone, profile, status, created_at`

	countUsersQuery  = `SELECT count(*) FROM users`
	seedUserQuery    = `INSERT INTO users(` + userColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT DO NOTHING`
	listUsersQuery   = `SELECT ` + userColumns + ` FROM users ORDER BY seq`
	getUserQuery     = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	userByEmailQuery = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1) ORDER BY seq LIMIT 1`
	insertUserQuery  = `INSERT INTO users(` + userColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING ` + userColumns
	updateUserQuery = `UPDATE users
SET full_name = $2, nit = $3, email = $4, phone = $5, profile = $6, status = $7
WHERE id = $1
RETURNING ` + userColumns
	deleteUserQuery = `DELETE FROM users WHERE id = $1`

	uniqueViolation = "23505"
)

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	if err := row.Scan(&u.ID, &u.FullName, &u.NIT, &u.Email, &u.Phone, &u.Profile, &u.Status, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// ListUsers returns all users in insertion order.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			p.log.Errorw("failed to scan user", "error", err)
			return nil, fmt.Errorf("scan users: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate users", "error", err)
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// GetUser fetches a user by id.
func (p *Postgres) GetUser(ctx context.Context, id string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, getUserQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// FindUserByEmail fetches a user by email ignoring case.
func (p *Postgres) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, userByEmailQuery, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// CreateUser inserts user.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, insertUserQuery,
		user.ID, user.FullName, user.NIT, user.Email, user.Phone, user.Profile, user.Status, user.CreatedAt))
	if err != nil {
		p.log.Errorw("failed to insert user", "error", err, "user_id", user.ID)
		if isUniqueViolation(err) {
			return nil, entities.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", u.ID)
	return u, nil
}

// UpdateUser rewrites the editable columns of user.
func (p *Postgres) UpdateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, updateUserQuery,
		user.ID, user.FullName, user.NIT, user.Email, user.Phone, user.Profile, user.Status))
	if err != nil {
		p.log.Errorw("failed to update user", "error", err, "user_id", user.ID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return nil, entities.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	p.log.Infow("user updated", "user_id", u.ID)
	return u, nil
}

// DeleteUser removes the user with id.
func (p *Postgres) DeleteUser(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteUserQuery, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}

	p.log.Infow("user deleted", "user_id", id)
	return nil
}
