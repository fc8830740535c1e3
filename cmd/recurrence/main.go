// Command recurrence materializes today's instances from every due
// recurring template and advances their rules. It is intended to be
// invoked by an external cron job once per day.
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
	"github.com/tasksphere/tasksphere-backend/internal/service/recurrence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := recurrence.NewService(logger, taskrepo.New(pool), postgres.NewTxManager(pool))

	res, err := svc.Run(ctx, time.Now().UTC())
	if err != nil {
		logger.Error("recurrence run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("recurrence run completed",
		slog.Int("due", res.Due),
		slog.Int("generated", res.Generated),
		slog.Int("failed", res.Failed),
	)
	if res.Failed > 0 {
		os.Exit(1)
	}
}
