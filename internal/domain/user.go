package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered application user.
//
// Karma and streak counters are mutated only by the karma ledger and the
// streak tracker; Karma is clamped at zero in storage.
type User struct {
	ID            uuid.UUID
	Username      string
	Email         string
	PasswordHash  string
	Karma         int
	CurrentStreak int
	HighestStreak int
	IsActive      bool
	RegisteredAt  time.Time
}
