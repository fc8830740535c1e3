// Command scheduler runs every periodic job in a single process using
// an in-process cron. It is an alternative to wiring the one-shot
// binaries into an external cron for small deployments.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tasksphere/tasksphere-backend/internal/adapter/postgres"
	badgerepo "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres/badge"
	karmarepo "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres/karma"
	taskrepo "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres/task"
	userrepo "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres/user"
	"github.com/tasksphere/tasksphere-backend/internal/app"
	"github.com/tasksphere/tasksphere-backend/internal/config"
	"github.com/tasksphere/tasksphere-backend/internal/notify"
	"github.com/tasksphere/tasksphere-backend/internal/service/badge"
	"github.com/tasksphere/tasksphere-backend/internal/service/digest"
	"github.com/tasksphere/tasksphere-backend/internal/service/karma"
	"github.com/tasksphere/tasksphere-backend/internal/service/recurrence"
	"github.com/tasksphere/tasksphere-backend/internal/service/reminder"
	"github.com/tasksphere/tasksphere-backend/internal/service/streak"
	"github.com/tasksphere/tasksphere-backend/internal/service/sweeper"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tasks := taskrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	badges := badge.NewService(logger, badgerepo.New(pool), users)
	awarder := karma.NewService(logger, users, karmarepo.New(pool), badges, tx, cfg.Karma)

	dispatcher := notify.NewDispatcher(logger, notify.NewSMTPNotifier(cfg.SMTP))
	defer dispatcher.Close()

	streaks := streak.NewService(logger, users, tasks, awarder, tx, cfg.Karma)
	recurrences := recurrence.NewService(logger, tasks, tx)
	sweeps := sweeper.NewService(logger, tasks, cfg.Retention)
	reminders := reminder.NewService(logger, tasks, dispatcher)
	digests := digest.NewService(logger, users, tasks, dispatcher)

	c := cron.New(cron.WithLocation(time.UTC))

	jobs := []struct {
		name string
		spec string
		run  func(context.Context) error
	}{
		{"streaks", dailySpec(cfg.Scheduler.StreakTime), func(ctx context.Context) error {
			_, err := streaks.Run(ctx, time.Now().UTC())
			return err
		}},
		{"recurrence", dailySpec(cfg.Scheduler.RecurrenceTime), func(ctx context.Context) error {
			_, err := recurrences.Run(ctx, time.Now().UTC())
			return err
		}},
		{"digest_morning", dailySpec(cfg.Scheduler.MorningTime), func(ctx context.Context) error {
			_, err := digests.Morning(ctx, time.Now().UTC())
			return err
		}},
		{"digest_evening", dailySpec(cfg.Scheduler.EveningTime), func(ctx context.Context) error {
			_, err := digests.Evening(ctx, time.Now().UTC())
			return err
		}},
		{"digest_weekly", cfg.Scheduler.WeeklySpec, func(ctx context.Context) error {
			_, err := digests.Weekly(ctx, time.Now().UTC())
			return err
		}},
		{"sweeper", "@every " + cfg.Scheduler.SweepInterval.String(), func(ctx context.Context) error {
			_, err := sweeps.MarkExpired(ctx, time.Now().UTC())
			return err
		}},
		{"reminders", "@every " + cfg.Scheduler.ReminderInterval.String(), func(ctx context.Context) error {
			_, err := reminders.Run(ctx, time.Now().UTC())
			return err
		}},
		{"purge", cfg.Scheduler.PurgeSpec, func(ctx context.Context) error {
			_, err := sweeps.Purge(ctx, time.Now().UTC())
			return err
		}},
	}

	for _, job := range jobs {
		job := job
		_, err := c.AddFunc(job.spec, func() {
			if err := job.run(ctx); err != nil {
				logger.Error("scheduled job failed",
					slog.String("job", job.name),
					slog.String("error", err.Error()),
				)
			}
		})
		if err != nil {
			logger.Error("register job",
				slog.String("job", job.name),
				slog.String("spec", job.spec),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		logger.Info("job registered", slog.String("job", job.name), slog.String("spec", job.spec))
	}

	c.Start()
	logger.Info("scheduler started", slog.String("version", app.BuildVersion()))

	<-ctx.Done()
	logger.Info("shutting down")

	// Let in-flight jobs finish.
	<-c.Stop().Done()
}

// dailySpec converts a HH:MM wall-clock time into a five-field cron
// spec that fires once a day.
func dailySpec(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm // let cron report the parse error
	}
	hour := strings.TrimLeft(parts[0], "0")
	minute := strings.TrimLeft(parts[1], "0")
	if hour == "" {
		hour = "0"
	}
	if minute == "" {
		minute = "0"
	}
	return fmt.Sprintf("%s %s * * *", minute, hour)
}
