// Package transform invokes the external dbt project that models and tests
// the loaded warehouse data. The pipeline only consumes its exit status.
package transform

import (
	"context"
	"log/slog"
	"os"
	"os/exec"

	"martgen/config"
	"martgen/internal/domain/service"

	"github.com/pkg/errors"
)

type dbtRunner struct {
	projectDir  string
	profilesDir string
	logger      *slog.Logger
}

// NewDBTRunner creates a runner for the configured dbt project.
func NewDBTRunner(cfg *config.Config, logger *slog.Logger) (service.TransformRunner, error) {
	if cfg.Transform == nil || cfg.Transform.ProjectDir == "" {
		return nil, errors.New("transform.projectDir is not configured")
	}

	return &dbtRunner{
		projectDir:  cfg.Transform.ProjectDir,
		profilesDir: cfg.Transform.ProfilesDir,
		logger:      logger,
	}, nil
}

func (r *dbtRunner) Run(ctx context.Context) error {
	return r.invoke(ctx, "run")
}

func (r *dbtRunner) Test(ctx context.Context) error {
	return r.invoke(ctx, "test")
}

func (r *dbtRunner) invoke(ctx context.Context, subcommand string) error {
	r.logger.Info("invoking dbt",
		slog.String("subcommand", subcommand),
		slog.String("projectDir", r.projectDir))

	cmd := exec.CommandContext(ctx, "dbt", subcommand)
	cmd.Dir = r.projectDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	if r.profilesDir != "" {
		cmd.Env = append(cmd.Env, "DBT_PROFILES_DIR="+r.profilesDir)
	}

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "dbt %s", subcommand)
	}

	return nil
}
