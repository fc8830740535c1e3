// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres"
	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, username, email, password_hash, karma, current_streak, highest_streak, is_active, registered_at`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

// getByIDForUpdateSQL takes a row lock so concurrent karma awards for the
// same user serialize on the user row.
const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

const createSQL = `
INSERT INTO users (id, username, email, password_hash, karma, current_streak, highest_streak, is_active, registered_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const updateKarmaSQL = `
UPDATE users SET karma = $2 WHERE id = $1`

const updateStreakSQL = `
UPDATE users SET current_streak = $2, highest_streak = $3 WHERE id = $1`

const listActiveSQL = `
SELECT ` + userColumns + `
FROM users
WHERE is_active
ORDER BY registered_at`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByIDForUpdate returns a user by primary key, locking the row for the
// duration of the surrounding transaction. Only meaningful inside RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// Create inserts a new user.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL,
		u.ID, u.Username, u.Email, u.PasswordHash,
		u.Karma, u.CurrentStreak, u.HighestStreak, u.IsActive, u.RegisteredAt,
	)
	return postgres.MapError(err, "user", u.ID)
}

// UpdateKarma stores a new karma total for the user.
func (r *Repo) UpdateKarma(ctx context.Context, id uuid.UUID, karma int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateKarmaSQL, id, karma)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// UpdateStreak stores new streak counters for the user.
func (r *Repo) UpdateStreak(ctx context.Context, id uuid.UUID, current, highest int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateStreakSQL, id, current, highest)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// ListActive returns all active users ordered by registration time.
// The scheduled jobs iterate this set.
func (r *Repo) ListActive(ctx context.Context) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listActiveSQL)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, postgres.MapError(err, "user", uuid.Nil)
		}
		users = append(users, *u)
	}
	return users, postgres.MapError(rows.Err(), "user", uuid.Nil)
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.Karma, &u.CurrentStreak, &u.HighestStreak, &u.IsActive, &u.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
