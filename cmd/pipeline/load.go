package main

import (
	"context"
	"os"
	"time"

	"martgen/internal/infra/persistence/csvstore"
	"martgen/internal/infra/warehouse/postgres"
)

func handleLoad(ctx context.Context, flags *pipelineFlags) error {
	if err := flags.Load.cmd.Parse(os.Args[2:]); err != nil {
		return err
	}

	date, err := resolveDate(*flags.Load.date)
	if err != nil {
		return err
	}

	deps, err := newPipelineDeps()
	if err != nil {
		return err
	}

	return loadDay(ctx, deps, date, *flags.Load.reference)
}

func loadDay(ctx context.Context, deps *pipelineDeps, date time.Time, reference bool) error {
	db, err := postgres.Open(deps.cfg, deps.logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = postgres.Close(db)
	}()

	refRepo := csvstore.NewReferenceRepository(deps.cfg)
	loader := postgres.NewLoader(deps.cfg, db, refRepo, deps.logger)

	// Reference tables are replaced before the daily append so new daily
	// rows never point at rows the warehouse does not have yet.
	if reference {
		if err := loader.LoadReference(ctx); err != nil {
			return err
		}
	}

	return loader.LoadDaily(ctx, date)
}
