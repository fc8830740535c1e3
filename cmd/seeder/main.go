// Command seeder populates the badge catalog. It is idempotent: levels
// already present are updated in place, so it can be re-run after a
// range change.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tasksphere/tasksphere-backend/internal/adapter/postgres"
	badgerepo "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres/badge"
	"github.com/tasksphere/tasksphere-backend/internal/app"
	"github.com/tasksphere/tasksphere-backend/internal/config"
	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

// catalog is the default badge ladder. Ranges are inclusive and
// partition the karma space without gaps.
var catalog = []domain.Badge{
	{Level: domain.BadgeLevelBeginner, KarmaMin: 0, KarmaMax: 99},
	{Level: domain.BadgeLevelNovice, KarmaMin: 100, KarmaMax: 299},
	{Level: domain.BadgeLevelIntermediate, KarmaMin: 300, KarmaMax: 699},
	{Level: domain.BadgeLevelProfessional, KarmaMin: 700, KarmaMax: 1499},
	{Level: domain.BadgeLevelExpert, KarmaMin: 1500, KarmaMax: 2999},
	{Level: domain.BadgeLevelMaster, KarmaMin: 3000, KarmaMax: 5999},
	{Level: domain.BadgeLevelGrandMaster, KarmaMin: 6000, KarmaMax: 9999},
	{Level: domain.BadgeLevelEnlightened, KarmaMin: 10000, KarmaMax: 10000000},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	badges := badgerepo.New(pool)

	for _, b := range catalog {
		b.ID = uuid.New()
		if err := badges.Upsert(ctx, &b); err != nil {
			logger.Error("seed badge",
				slog.String("level", b.Level.String()),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	logger.Info("badge catalog seeded", slog.Int("levels", len(catalog)))
}
