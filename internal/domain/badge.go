package domain

import (
	"time"

	"github.com/google/uuid"
)

// Badge is a static catalog entry unlocked by reaching a karma range.
// KarmaMin/KarmaMax are inclusive; the catalog is expected to partition
// the karma space without overlaps. The catalog is seeded externally and
// read-only from the core's perspective.
type Badge struct {
	ID       uuid.UUID
	Level    BadgeLevel
	KarmaMin int
	KarmaMax int
}

// Contains reports whether the given karma value falls inside the
// badge's inclusive range.
func (b *Badge) Contains(karma int) bool {
	return karma >= b.KarmaMin && karma <= b.KarmaMax
}

// UserBadge records that a user earned a badge. At most one row exists
// per (user, badge) pair, and rows are never removed: badges are
// permanent even if karma later drops.
type UserBadge struct {
	UserID    uuid.UUID
	BadgeID   uuid.UUID
	AwardedAt time.Time
}

// BadgeProgress is a derived view of where a user stands in the badge
// ladder.
type BadgeProgress struct {
	Karma            int
	CurrentLevel     *Badge
	PercentIntoLevel float64
	KarmaToNextLevel int
	Earned           []Badge
}
