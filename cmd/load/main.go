package main

import (
	"context"
	"log/slog"

	"martgen/config"
	"martgen/internal/domain/service"
	logs "martgen/internal/infra/log"
	"martgen/internal/infra/persistence/csvstore"
	"martgen/internal/infra/warehouse/postgres"
	"martgen/internal/util"

	"go.uber.org/fx"
)

type loadParams struct {
	fx.In
	fx.Lifecycle

	Shutdowner fx.Shutdowner
	Loader     service.WarehouseLoader
	Logger     *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		fx.Invoke(
			runLoad,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			csvstore.NewReferenceRepository,
			postgres.NewLoader,
		),
	)
}

func runLoad(params loadParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ctx := context.Background()

				// Reference tables are replaced before the daily append so new
				// daily rows never point at rows the warehouse does not have yet.
				if err := params.Loader.LoadReference(ctx); err != nil {
					params.Logger.Error("Reference load failed", slog.Any("error", err))
					_ = params.Shutdowner.Shutdown(fx.ExitCode(1))

					return
				}

				if err := params.Loader.LoadDaily(ctx, util.Yesterday()); err != nil {
					params.Logger.Error("Daily load failed", slog.Any("error", err))
					_ = params.Shutdowner.Shutdown(fx.ExitCode(1))

					return
				}

				_ = params.Shutdowner.Shutdown()
			}()

			return nil
		},
	})
}
