package impl

import (
	"context"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"martgen/config"
	"martgen/internal/domain/repository"
	"martgen/internal/domain/service"
	"martgen/internal/usecase"

	"github.com/pkg/errors"
)

const defaultReferencePrefix = "reference"

type uploadService struct {
	dataDir         string
	referencePrefix string
	storage         service.ObjectStorage
	logger          *slog.Logger
}

// NewUploadService creates the upload stage over the configured bucket.
func NewUploadService(cfg *config.Config, storage service.ObjectStorage, logger *slog.Logger) usecase.UploadUsecase {
	referencePrefix := defaultReferencePrefix
	if cfg.Storage != nil && cfg.Storage.ReferencePrefix != "" {
		referencePrefix = cfg.Storage.ReferencePrefix
	}

	return &uploadService{
		dataDir:         cfg.Generator.DataDir,
		referencePrefix: referencePrefix,
		storage:         storage,
		logger:          logger,
	}
}

// UploadDay copies the date's partition files to the bucket, then the
// reference files. Daily objects are overwritten freely; reference objects
// are only uploaded when absent remotely, since the warehouse replaces those
// tables wholesale and re-uploading would just churn history.
func (s *uploadService) UploadDay(ctx context.Context, date time.Time) error {
	for _, kind := range repository.PartitionKinds() {
		if err := s.uploadPartition(ctx, kind, date); err != nil {
			return err
		}
	}

	return s.uploadReference(ctx)
}

func (s *uploadService) uploadPartition(ctx context.Context, kind string, date time.Time) error {
	localDir := repository.PartitionDir(s.dataDir, kind, date)

	entries, err := os.ReadDir(localDir)
	if err != nil {
		// A missing partition means the generation stage never ran for this
		// date; uploading nothing would silently drop a day downstream.
		return errors.Wrapf(err, "partition %s missing for %s", kind, repository.DateKey(date))
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}

		localPath := filepath.Join(localDir, entry.Name())
		key := path.Join(kind, repository.DateKey(date), entry.Name())

		if err := s.storage.Upload(ctx, key, localPath); err != nil {
			return errors.Wrapf(err, "upload %s", key)
		}

		s.logger.Info("uploaded partition file",
			slog.String("key", key),
			slog.String("source", localPath))
	}

	return nil
}

func (s *uploadService) uploadReference(ctx context.Context) error {
	for _, name := range []string{repository.CustomersFile, repository.ProductsFile} {
		localPath := filepath.Join(s.dataDir, name)
		key := path.Join(s.referencePrefix, name)

		exists, err := s.storage.Exists(ctx, key)
		if err != nil {
			return errors.Wrapf(err, "check %s", key)
		}
		if exists {
			s.logger.Info("reference file already uploaded", slog.String("key", key))

			continue
		}

		if _, err := os.Stat(localPath); err != nil {
			s.logger.Warn("reference file not found locally", slog.String("path", localPath))

			continue
		}

		if err := s.storage.Upload(ctx, key, localPath); err != nil {
			return errors.Wrapf(err, "upload %s", key)
		}

		s.logger.Info("uploaded reference file", slog.String("key", key))
	}

	return nil
}
