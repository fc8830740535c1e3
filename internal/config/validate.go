package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Karma.validate(); err != nil {
		return fmt.Errorf("karma: %w", err)
	}
	if c.User.PasswordHashCost < 4 || c.User.PasswordHashCost > 31 {
		return fmt.Errorf("user: password_hash_cost must be between 4 and 31 (got %d)", c.User.PasswordHashCost)
	}
	if c.Retention.ExpiredTaskDays <= 0 {
		return fmt.Errorf("retention: expired_task_days must be > 0 (got %d)", c.Retention.ExpiredTaskDays)
	}
	if err := c.Scheduler.validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	return nil
}

func (k *KarmaConfig) validate() error {
	if k.CompletionReward < 0 {
		return fmt.Errorf("completion_reward must be >= 0 (got %d)", k.CompletionReward)
	}
	if k.StreakDaily < 0 || k.StreakWeekBonus < 0 || k.StreakMonthBonus < 0 {
		return fmt.Errorf("streak amounts must be >= 0")
	}
	if k.AwardMaxRetries < 1 {
		return fmt.Errorf("award_max_retries must be >= 1 (got %d)", k.AwardMaxRetries)
	}
	if k.AwardRetryBackoff <= 0 {
		return fmt.Errorf("award_retry_backoff must be > 0 (got %v)", k.AwardRetryBackoff)
	}
	return nil
}

func (s *SchedulerConfig) validate() error {
	for _, t := range []struct{ name, value string }{
		{"streak_time", s.StreakTime},
		{"recurrence_time", s.RecurrenceTime},
		{"morning_time", s.MorningTime},
		{"evening_time", s.EveningTime},
	} {
		if err := validateClock(t.value); err != nil {
			return fmt.Errorf("%s: %w", t.name, err)
		}
	}
	if s.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be > 0 (got %v)", s.SweepInterval)
	}
	if s.ReminderInterval <= 0 {
		return fmt.Errorf("reminder_interval must be > 0 (got %v)", s.ReminderInterval)
	}
	return nil
}

// validateClock checks a HH:MM wall-clock string.
func validateClock(v string) error {
	parts := strings.Split(v, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid time %q, expected HH:MM", v)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return fmt.Errorf("invalid hour in %q", v)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid minute in %q", v)
	}
	return nil
}
