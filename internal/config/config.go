package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Karma     KarmaConfig     `yaml:"karma"`
	User      UserConfig      `yaml:"user"`
	Retention RetentionConfig `yaml:"retention"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// KarmaConfig holds the karma amounts awarded by the core.
type KarmaConfig struct {
	CompletionReward int `yaml:"completion_reward"  env:"KARMA_COMPLETION_REWARD"  env-default:"10"`
	StreakDaily      int `yaml:"streak_daily"       env:"KARMA_STREAK_DAILY"       env-default:"20"`
	StreakWeekBonus  int `yaml:"streak_week_bonus"  env:"KARMA_STREAK_WEEK_BONUS"  env-default:"350"`
	StreakMonthBonus int `yaml:"streak_month_bonus" env:"KARMA_STREAK_MONTH_BONUS" env-default:"1000"`
	AwardMaxRetries  int `yaml:"award_max_retries"  env:"KARMA_AWARD_MAX_RETRIES"  env-default:"3"`

	// AwardRetryBackoff is the base delay between award retries; the
	// delay grows linearly with the attempt number.
	AwardRetryBackoff time.Duration `yaml:"award_retry_backoff" env:"KARMA_AWARD_RETRY_BACKOFF" env-default:"50ms"`
}

// UserConfig holds registration settings.
type UserConfig struct {
	PasswordHashCost int `yaml:"password_hash_cost" env:"USER_PASSWORD_HASH_COST" env-default:"10"`
}

// RetentionConfig controls how long expired tasks are kept before purge.
type RetentionConfig struct {
	ExpiredTaskDays int `yaml:"expired_task_days" env:"RETENTION_EXPIRED_TASK_DAYS" env-default:"30"`
}

// SMTPConfig holds outbound mail settings. Password may be empty for
// unauthenticated relays in development.
type SMTPConfig struct {
	Host     string `yaml:"host"      env:"SMTP_HOST"      env-default:"localhost"`
	Port     int    `yaml:"port"      env:"SMTP_PORT"      env-default:"587"`
	Username string `yaml:"username"  env:"SMTP_USERNAME"`
	Password string `yaml:"password"  env:"SMTP_PASSWORD"`
	From     string `yaml:"from"      env:"SMTP_FROM"      env-default:"noreply@tasksphere.app"`
}

// SchedulerConfig holds the cadences used by the in-process scheduler
// binary. The daily jobs take a HH:MM wall-clock time in UTC.
type SchedulerConfig struct {
	StreakTime       string        `yaml:"streak_time"       env:"SCHEDULER_STREAK_TIME"       env-default:"00:30"`
	RecurrenceTime   string        `yaml:"recurrence_time"   env:"SCHEDULER_RECURRENCE_TIME"   env-default:"01:00"`
	MorningTime      string        `yaml:"morning_time"      env:"SCHEDULER_MORNING_TIME"      env-default:"07:00"`
	EveningTime      string        `yaml:"evening_time"      env:"SCHEDULER_EVENING_TIME"      env-default:"19:00"`
	SweepInterval    time.Duration `yaml:"sweep_interval"    env:"SCHEDULER_SWEEP_INTERVAL"    env-default:"10m"`
	ReminderInterval time.Duration `yaml:"reminder_interval" env:"SCHEDULER_REMINDER_INTERVAL" env-default:"5m"`
	PurgeSpec        string        `yaml:"purge_spec"        env:"SCHEDULER_PURGE_SPEC"        env-default:"0 3 1 * *"`
	WeeklySpec       string        `yaml:"weekly_spec"       env:"SCHEDULER_WEEKLY_SPEC"       env-default:"0 18 * * 0"`
}
