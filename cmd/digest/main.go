// Command digest emails a task summary to every active user. The -kind
// flag picks which one: morning (today's plan), evening (what is left)
// or weekly (completion rate for the past week).
//
// Exit codes: 0 = success, 1 = error, 2 = bad usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/tasksphere/tasksphere-backend/internal/adapter/postgres"
	taskrepo "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres/task"
	userrepo "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres/user"
	"github.com/tasksphere/tasksphere-backend/internal/app"
	"github.com/tasksphere/tasksphere-backend/internal/config"
	"github.com/tasksphere/tasksphere-backend/internal/notify"
	"github.com/tasksphere/tasksphere-backend/internal/service/digest"
)

func main() {
	kind := flag.String("kind", "", "digest kind: morning, evening or weekly")
	flag.Parse()

	if *kind != "morning" && *kind != "evening" && *kind != "weekly" {
		fmt.Fprintln(os.Stderr, "usage: digest -kind morning|evening|weekly")
		os.Exit(2)
	}

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

	dispatcher := notify.NewDispatcher(logger, notify.NewSMTPNotifier(cfg.SMTP))
	defer dispatcher.Close()

	svc := digest.NewService(logger, userrepo.New(pool), taskrepo.New(pool), dispatcher)

	now := time.Now().UTC()
	var sent int
	switch *kind {
	case "morning":
		sent, err = svc.Morning(ctx, now)
	case "evening":
		sent, err = svc.Evening(ctx, now)
	case "weekly":
		sent, err = svc.Weekly(ctx, now)
	}
	if err != nil {
		logger.Error("digest run failed",
			slog.String("kind", *kind),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info("digest run completed", slog.String("kind", *kind), slog.Int("sent", sent))
}
