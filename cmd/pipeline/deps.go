package main

import (
	"log/slog"
	"time"

	"martgen/config"
	"martgen/internal/infra/datagen"
	logs "martgen/internal/infra/log"
	"martgen/internal/util"

	"github.com/pkg/errors"
)

// pipelineDeps holds the shared wiring for every subcommand. The pipeline
// binary builds its dependencies by hand; the one-shot binaries use fx.
type pipelineDeps struct {
	cfg    *config.Config
	logger *slog.Logger
	faker  *datagen.Faker
}

func newPipelineDeps() (*pipelineDeps, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	return &pipelineDeps{
		cfg:    cfg,
		logger: logger,
		faker:  datagen.New(cfg.Generator.Seed),
	}, nil
}

// resolveDate parses a -date flag value, falling back to yesterday when the
// flag was left empty.
func resolveDate(raw string) (time.Time, error) {
	if raw == "" {
		return util.Yesterday(), nil
	}

	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date %q, expected YYYY-MM-DD", raw)
	}

	return date, nil
}
