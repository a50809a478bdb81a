package service

import (
	"context"
	"time"
)

// WarehouseLoader defines the interface for loading persisted CSV files into
// warehouse tables. Daily partitions are appended; reference tables are fully
// replaced on every load.
type WarehouseLoader interface {
	// LoadDaily appends the given date's orders, order items and inventory
	// movements partitions to their warehouse tables.
	LoadDaily(ctx context.Context, date time.Time) error

	// LoadReference replaces the customers and products warehouse tables with
	// the persisted reference data.
	LoadReference(ctx context.Context) error
}
