// Command reminders emails every user whose task reminder has come due
// and clears the fired reminders. It is intended to be invoked by an
// external cron job every few minutes.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/tasksphere/tasksphere-backend/internal/adapter/postgres"
	taskrepo "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres/task"
	"github.com/tasksphere/tasksphere-backend/internal/app"
	"github.com/tasksphere/tasksphere-backend/internal/config"
	"github.com/tasksphere/tasksphere-backend/internal/notify"
	"github.com/tasksphere/tasksphere-backend/internal/service/reminder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	dispatcher := notify.NewDispatcher(logger, notify.NewSMTPNotifier(cfg.SMTP))
	defer dispatcher.Close()

	svc := reminder.NewService(logger, taskrepo.New(pool), dispatcher)

	sent, err := svc.Run(ctx, time.Now().UTC())
	if err != nil {
		logger.Error("reminder run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("reminder run completed", slog.Int("sent", sent))
}
