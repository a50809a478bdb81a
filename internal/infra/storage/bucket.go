// Package storage implements the object-storage sink over a gocloud.dev
// bucket, so the same code uploads to GCS in production and to a local
// file bucket in development and tests.
package storage

import (
	"context"
	"io"
	"log/slog"
	"os"

	"martgen/config"
	"martgen/internal/domain/service"
	"martgen/internal/util"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Bucket drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type bucketStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewBucket opens the configured bucket URL and returns it as the pipeline's
// object storage.
func NewBucket(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.ObjectStorage, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is not configured")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.Storage.BucketURL)
	}

	return NewBucketStorage(bucket, logger), nil
}

// NewBucketStorage wraps an already opened bucket. Callers that open the
// bucket themselves keep ownership of its lifecycle.
func NewBucketStorage(bucket *blob.Bucket, logger *slog.Logger) service.ObjectStorage {
	return &bucketStorage{bucket: bucket, logger: logger}
}

func (s *bucketStorage) Upload(ctx context.Context, key string, localPath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return errors.Wrapf(err, "open %s", localPath)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return errors.Wrapf(err, "stat %s", localPath)
	}

	writer, err := s.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(writer, file); err != nil {
		// Abort the write so a partial object is not committed.
		_ = writer.Close()

		return errors.Wrapf(err, "copy %s to %s", localPath, key)
	}

	if err := writer.Close(); err != nil {
		return errors.Wrapf(err, "commit %s", key)
	}

	s.logger.Debug("object written",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(info.Size())))

	return nil
}

func (s *bucketStorage) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "check %s", key)
	}

	return exists, nil
}

func (s *bucketStorage) Close() error {
	return s.bucket.Close()
}
