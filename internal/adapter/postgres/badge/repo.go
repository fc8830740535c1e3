// Package badge implements the badge catalog and user badge repositories
// using PostgreSQL.
package badge

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres"
	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

// Repo provides badge persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new badge repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listCatalogSQL = `
SELECT id, level, karma_min, karma_max
FROM badges
ORDER BY karma_min`

const listEarnedSQL = `
SELECT b.id, b.level, b.karma_min, b.karma_max
FROM user_badges ub
JOIN badges b ON b.id = ub.badge_id
WHERE ub.user_id = $1
ORDER BY b.karma_min`

const listEarnedIDsSQL = `
SELECT badge_id FROM user_badges WHERE user_id = $1`

// awardSQL is idempotent: the (user_id, badge_id) primary key plus
// ON CONFLICT DO NOTHING means re-awarding already-held badges is a no-op.
const awardSQL = `
INSERT INTO user_badges (user_id, badge_id, awarded_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, badge_id) DO NOTHING`

const upsertBadgeSQL = `
INSERT INTO badges (id, level, karma_min, karma_max)
VALUES ($1, $2, $3, $4)
ON CONFLICT (level) DO UPDATE SET karma_min = EXCLUDED.karma_min, karma_max = EXCLUDED.karma_max`

// ListCatalog returns every badge in the catalog ordered by karma_min.
func (r *Repo) ListCatalog(ctx context.Context) ([]domain.Badge, error) {
	return r.queryBadges(ctx, listCatalogSQL)
}

// ListEarned returns the badges a user holds, ordered by karma_min.
func (r *Repo) ListEarned(ctx context.Context, userID uuid.UUID) ([]domain.Badge, error) {
	return r.queryBadges(ctx, listEarnedSQL, userID)
}

// ListEarnedIDs returns the set of badge IDs a user holds.
func (r *Repo) ListEarnedIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listEarnedIDsSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "user_badge", userID)
	}
	defer rows.Close()

	ids := make(map[uuid.UUID]bool)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, postgres.MapError(err, "user_badge", userID)
		}
		ids[id] = true
	}
	return ids, postgres.MapError(rows.Err(), "user_badge", userID)
}

// Award grants a badge to a user. Awarding a badge the user already
// holds changes nothing and reports false.
func (r *Repo) Award(ctx context.Context, userID, badgeID uuid.UUID, awardedAt time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, awardSQL, userID, badgeID, awardedAt)
	if err != nil {
		return false, postgres.MapError(err, "user_badge", badgeID)
	}
	return tag.RowsAffected() > 0, nil
}

// Upsert inserts or updates a catalog entry by level. Used by the seeder.
func (r *Repo) Upsert(ctx context.Context, b *domain.Badge) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, upsertBadgeSQL, b.ID, string(b.Level), b.KarmaMin, b.KarmaMax)
	return postgres.MapError(err, "badge", b.ID)
}

func (r *Repo) queryBadges(ctx context.Context, sql string, args ...any) ([]domain.Badge, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "badge", uuid.Nil)
	}
	defer rows.Close()

	var badges []domain.Badge
	for rows.Next() {
		var b domain.Badge
		if err := rows.Scan(&b.ID, &b.Level, &b.KarmaMin, &b.KarmaMax); err != nil {
			return nil, postgres.MapError(err, "badge", uuid.Nil)
		}
		badges = append(badges, b)
	}
	return badges, postgres.MapError(rows.Err(), "badge", uuid.Nil)
}
