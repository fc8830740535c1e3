// Package karma implements the karma transaction ledger using PostgreSQL.
// The ledger is append-only: rows are inserted once and never touched again.
package karma

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres"
	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

// Repo provides karma transaction persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new karma transaction repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO karma_transactions (id, user_id, amount, reason, created_at)
VALUES ($1, $2, $3, $4, $5)`

const listByUserSQL = `
SELECT id, user_id, amount, reason, created_at
FROM karma_transactions
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

const countByUserSQL = `SELECT count(*) FROM karma_transactions WHERE user_id = $1`

// Create appends one transaction to the ledger.
func (r *Repo) Create(ctx context.Context, tx *domain.KarmaTransaction) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL, tx.ID, tx.UserID, tx.Amount, tx.Reason, tx.CreatedAt)
	return postgres.MapError(err, "karma_transaction", tx.ID)
}

// ListByUser returns a user's transactions newest-first with limit/offset
// pagination, plus the total count.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.KarmaTransaction, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countByUserSQL, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count karma_transactions: %w", err)
	}

	// limit=0 means "no limit"
	effectiveLimit := limit
	if effectiveLimit <= 0 {
		effectiveLimit = 2147483647
	}

	rows, err := q.Query(ctx, listByUserSQL, userID, effectiveLimit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list karma_transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.KarmaTransaction
	for rows.Next() {
		var tx domain.KarmaTransaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Reason, &tx.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan karma_transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate karma_transactions: %w", err)
	}

	return txs, total, nil
}
