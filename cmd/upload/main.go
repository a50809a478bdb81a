package main

import (
	"context"
	"log/slog"

	"martgen/config"
	"martgen/internal/domain/service"
	logs "martgen/internal/infra/log"
	"martgen/internal/infra/storage"
	"martgen/internal/usecase"
	"martgen/internal/usecase/impl"
	"martgen/internal/util"

	"go.uber.org/fx"
)

type uploadParams struct {
	fx.In
	fx.Lifecycle

	Shutdowner fx.Shutdowner
	Uploader   usecase.UploadUsecase
	Storage    service.ObjectStorage
	Logger     *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		fx.Invoke(
			runUpload,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		storage.NewBucket,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUploadService,
		),
	)
}

func runUpload(params uploadParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := params.Uploader.UploadDay(context.Background(), util.Yesterday()); err != nil {
					params.Logger.Error("Upload failed", slog.Any("error", err))
					_ = params.Shutdowner.Shutdown(fx.ExitCode(1))

					return
				}

				_ = params.Shutdowner.Shutdown()
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			return params.Storage.Close()
		},
	})
}
