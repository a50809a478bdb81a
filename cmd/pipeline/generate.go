package main

import (
	"context"
	"os"

	"martgen/internal/infra/persistence/csvstore"
	"martgen/internal/usecase"
	"martgen/internal/usecase/impl"
)

func handleGenerate(ctx context.Context, flags *pipelineFlags) error {
	if err := flags.Generate.cmd.Parse(os.Args[2:]); err != nil {
		return err
	}

	date, err := resolveDate(*flags.Generate.date)
	if err != nil {
		return err
	}

	deps, err := newPipelineDeps()
	if err != nil {
		return err
	}

	_, err = newDailyRunner(deps).Run(ctx, date)

	return err
}

// newDailyRunner assembles the generator stack on top of the CSV store.
func newDailyRunner(deps *pipelineDeps) usecase.DailyRunUsecase {
	refRepo := csvstore.NewReferenceRepository(deps.cfg)
	partRepo := csvstore.NewPartitionRepository(deps.cfg)

	bootstrap := impl.NewBootstrapService(refRepo, deps.faker, deps.logger)
	orders := impl.NewOrderGenerator(deps.cfg, deps.faker, deps.logger)
	inventory := impl.NewInventoryGenerator(deps.faker, deps.logger)

	return impl.NewDailyRunService(deps.cfg, bootstrap, orders, inventory, partRepo, deps.logger)
}
