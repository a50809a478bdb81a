package main

import (
	"context"
	"os"
	"time"

	"martgen/internal/infra/persistence/csvstore"
	"martgen/internal/usecase/impl"

	"github.com/pkg/errors"
)

func handleSeedDates(ctx context.Context, flags *pipelineFlags) error {
	if err := flags.SeedDates.cmd.Parse(os.Args[2:]); err != nil {
		return err
	}

	start, err := time.Parse(time.DateOnly, *flags.SeedDates.start)
	if err != nil {
		return errors.Wrapf(err, "invalid start date %q", *flags.SeedDates.start)
	}

	end, err := time.Parse(time.DateOnly, *flags.SeedDates.end)
	if err != nil {
		return errors.Wrapf(err, "invalid end date %q", *flags.SeedDates.end)
	}

	deps, err := newPipelineDeps()
	if err != nil {
		return err
	}

	rows, err := impl.NewDateDimensionService(deps.logger).GenerateRange(ctx, start, end)
	if err != nil {
		return err
	}

	return csvstore.NewSeedRepository(deps.cfg).SaveDateDimension(ctx, rows)
}
