package main

import (
	"context"
	"os"

	"martgen/internal/infra/transform"
)

func handleTransform(ctx context.Context, flags *pipelineFlags) error {
	if err := flags.Transform.cmd.Parse(os.Args[2:]); err != nil {
		return err
	}

	deps, err := newPipelineDeps()
	if err != nil {
		return err
	}

	return runTransform(ctx, deps, *flags.Transform.test)
}

func runTransform(ctx context.Context, deps *pipelineDeps, test bool) error {
	runner, err := transform.NewDBTRunner(deps.cfg, deps.logger)
	if err != nil {
		return err
	}

	if err := runner.Run(ctx); err != nil {
		return err
	}

	if !test {
		return nil
	}

	return runner.Test(ctx)
}
