package main

import (
	"context"
	"os"
	"time"

	"martgen/internal/infra/storage"
	"martgen/internal/usecase/impl"
)

func handleUpload(ctx context.Context, flags *pipelineFlags) error {
	if err := flags.Upload.cmd.Parse(os.Args[2:]); err != nil {
		return err
	}

	date, err := resolveDate(*flags.Upload.date)
	if err != nil {
		return err
	}

	deps, err := newPipelineDeps()
	if err != nil {
		return err
	}

	return uploadDay(ctx, deps, date)
}

func uploadDay(ctx context.Context, deps *pipelineDeps, date time.Time) error {
	bucket, err := storage.NewBucket(ctx, deps.cfg, deps.logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = bucket.Close()
	}()

	return impl.NewUploadService(deps.cfg, bucket, deps.logger).UploadDay(ctx, date)
}
