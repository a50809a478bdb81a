// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"martgen/internal/domain/entity"
)

// PartitionRepository persists one day's generated output to date-keyed
// partitions, one file per entity type. Missing partition directories are
// created on demand.
//
// Re-running the same date overwrites that date's files. This matches the
// source system's behavior and is a documented gap, not a feature: partition
// level idempotency belongs to the external orchestrator.
type PartitionRepository interface {
	// SaveBatch writes the orders, order items and inventory movements of one
	// generation run under the partition for the given date.
	SaveBatch(ctx context.Context, date time.Time, batch *entity.DailyBatch) error
}

// SeedRepository persists warehouse seed files, such as the date dimension.
type SeedRepository interface {
	// SaveDateDimension writes the full date dimension seed, replacing any
	// existing copy.
	SaveDateDimension(ctx context.Context, rows []*entity.DateDimension) error
}
