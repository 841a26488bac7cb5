package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/employwise/internal/common"
	"github.com/dmitrijs2005/employwise/internal/dbx"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, first_name, last_name, avatar, password_hash, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }, u *User) error {
	return row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Avatar, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
}

// Create inserts user. A non-zero ID is kept, which is how the demo
// directory is seeded with stable ids.
func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {
	var row *sql.Row
	if user.ID != 0 {
		row = r.db.QueryRowContext(ctx,
			`INSERT INTO users (id, email, first_name, last_name, avatar, password_hash)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING `+userColumns,
			user.ID, user.Email, user.FirstName, user.LastName, user.Avatar, user.PasswordHash)
	} else {
		row = r.db.QueryRowContext(ctx,
			`INSERT INTO users (email, first_name, last_name, avatar, password_hash)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING `+userColumns,
			user.Email, user.FirstName, user.LastName, user.Avatar, user.PasswordHash)
	}

	out := &User{}
	if err := scanUser(row, out); err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)

	u := &User{}
	if err := scanUser(row, u); err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	u := &User{}
	if err := scanUser(row, u); err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []User{}
	for rows.Next() {
		var u User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// Update applies patch with COALESCE so absent fields keep their value.
func (r *PostgresRepository) Update(ctx context.Context, id int, patch Patch) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE users SET
		   first_name = COALESCE($2, first_name),
		   last_name  = COALESCE($3, last_name),
		   email      = COALESCE($4, email),
		   updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, patch.FirstName, patch.LastName, patch.Email)

	u := &User{}
	if err := scanUser(row, u); err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return common.ErrorAlreadyExists
	}
	return fmt.Errorf("db error: %w", err)
}
