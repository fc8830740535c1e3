// Command streaks runs the daily streak evaluation for every active
// user. It is intended to be invoked by an external cron job shortly
// after midnight UTC, not as an in-process goroutine.
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
	badgerepo "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres/badge"
	karmarepo "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres/karma"
	taskrepo "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres/task"
	userrepo "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres/user"
	"github.com/tasksphere/tasksphere-backend/internal/app"
	"github.com/tasksphere/tasksphere-backend/internal/config"
	"github.com/tasksphere/tasksphere-backend/internal/service/badge"
	"github.com/tasksphere/tasksphere-backend/internal/service/karma"
	"github.com/tasksphere/tasksphere-backend/internal/service/streak"
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

	users := userrepo.New(pool)
	tasks := taskrepo.New(pool)
	tx := postgres.NewTxManager(pool)
	badges := badge.NewService(logger, badgerepo.New(pool), users)
	awarder := karma.NewService(logger, users, karmarepo.New(pool), badges, tx, cfg.Karma)
	svc := streak.NewService(logger, users, tasks, awarder, tx, cfg.Karma)

	res, err := svc.Run(ctx, time.Now().UTC())
	if err != nil {
		logger.Error("streak run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("streak run completed",
		slog.Int("processed", res.Processed),
		slog.Int("extended", res.Extended),
		slog.Int("reset", res.Reset),
		slog.Int("failed", res.Failed),
	)
	if res.Failed > 0 {
		os.Exit(1)
	}
}
