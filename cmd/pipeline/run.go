package main

import (
	"context"
	"os"
)

// handleRun executes the full daily pipeline in stage order. Each stage only
// starts after the previous one succeeded, so a failed upload never reaches
// the warehouse and a failed load never triggers the transformation.
func handleRun(ctx context.Context, flags *pipelineFlags) error {
	if err := flags.Run.cmd.Parse(os.Args[2:]); err != nil {
		return err
	}

	date, err := resolveDate(*flags.Run.date)
	if err != nil {
		return err
	}

	deps, err := newPipelineDeps()
	if err != nil {
		return err
	}

	if _, err := newDailyRunner(deps).Run(ctx, date); err != nil {
		return err
	}

	if err := uploadDay(ctx, deps, date); err != nil {
		return err
	}

	if err := loadDay(ctx, deps, date, true); err != nil {
		return err
	}

	if deps.cfg.Transform == nil || !deps.cfg.Transform.Enabled {
		deps.logger.Info("Transformation disabled, pipeline finished after load")

		return nil
	}

	return runTransform(ctx, deps, true)
}
