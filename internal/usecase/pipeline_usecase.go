package usecase

import (
	"context"
	"time"
)

// DailyRunResult summarizes one daily generation run for logging.
type DailyRunResult struct {
	Date      time.Time
	Orders    int
	Items     int
	Movements int
}

// DailyRunUsecase ties bootstrap, order generation and inventory generation
// together for a single date and persists the output to that date's
// partitions.
type DailyRunUsecase interface {
	// Run executes one full generation run for the given date.
	Run(ctx context.Context, date time.Time) (*DailyRunResult, error)
}

// UploadUsecase copies one date's persisted partitions to object storage.
type UploadUsecase interface {
	// UploadDay uploads every tabular file of the date's partitions to the
	// bucket under {prefix}/{date}/{filename}, then uploads the reference
	// files, skipping any already present remotely. A missing local partition
	// is fatal and aborts the call.
	UploadDay(ctx context.Context, date time.Time) error
}
