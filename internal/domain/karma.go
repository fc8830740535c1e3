package domain

import (
	"time"

	"github.com/google/uuid"
)

// KarmaTransaction is one immutable entry in a user's karma ledger.
//
// Amount keeps the raw signed value even when the stored running total
// was clamped at zero, so the audit trail reflects what actually
// happened. Rows are never updated or deleted.
type KarmaTransaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    int
	Reason    string
	CreatedAt time.Time
}

// Ledger reasons written by the core. Free-text reasons from callers are
// allowed too; these are the ones the scheduled jobs use.
const (
	KarmaReasonTaskCompleted    = "task completed"
	KarmaReasonTaskUncompleted  = "task uncompleted"
	KarmaReasonStreakDaily      = "daily streak maintained"
	KarmaReasonStreakWeekBonus  = "7 days streak bonus"
	KarmaReasonStreakMonthBonus = "30 days streak bonus"
)
