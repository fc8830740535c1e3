// Command sweeper flags overdue tasks as expired. It is intended to be
// invoked by an external cron job every few minutes.
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
	"github.com/tasksphere/tasksphere-backend/internal/service/sweeper"
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

	svc := sweeper.NewService(logger, taskrepo.New(pool), cfg.Retention)

	marked, err := svc.MarkExpired(ctx, time.Now().UTC())
	if err != nil {
		logger.Error("expiration sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("expiration sweep completed", slog.Int64("marked", marked))
}
