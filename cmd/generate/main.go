package main

import (
	"context"
	"log/slog"

	"martgen/config"
	"martgen/internal/infra/datagen"
	logs "martgen/internal/infra/log"
	"martgen/internal/infra/persistence/csvstore"
	"martgen/internal/usecase"
	"martgen/internal/usecase/impl"
	"martgen/internal/util"

	"go.uber.org/fx"
)

type runParams struct {
	fx.In
	fx.Lifecycle

	Shutdowner fx.Shutdowner
	Runner     usecase.DailyRunUsecase
	Logger     *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		fx.Invoke(
			runDaily,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newFaker,
	)
}

// newFaker creates the seeded random source shared by all generators
func newFaker(cfg *config.Config) *datagen.Faker {
	return datagen.New(cfg.Generator.Seed)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			csvstore.NewReferenceRepository,
			csvstore.NewPartitionRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBootstrapService,
			impl.NewOrderGenerator,
			impl.NewInventoryGenerator,
			impl.NewDailyRunService,
		),
	)
}

func runDaily(params runParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				// A daily batch always covers the previous, completed day.
				if _, err := params.Runner.Run(context.Background(), util.Yesterday()); err != nil {
					params.Logger.Error("Daily generation failed", slog.Any("error", err))
					_ = params.Shutdowner.Shutdown(fx.ExitCode(1))

					return
				}

				_ = params.Shutdowner.Shutdown()
			}()

			return nil
		},
	})
}
