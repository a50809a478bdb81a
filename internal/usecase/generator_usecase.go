package usecase

import (
	"context"
	"time"

	"martgen/internal/domain/entity"
)

// OrderGeneratorUsecase produces one calendar day's orders and order items
// against the fixed reference population.
type OrderGeneratorUsecase interface {
	// GenerateDay samples the day's order volume and fabricates orders with
	// their line items. Both returned slices may be empty on a low-volume day;
	// that is a valid outcome, not an error.
	GenerateDay(ctx context.Context, ref *entity.ReferenceData, date time.Time) ([]*entity.Order, []*entity.OrderItem, error)
}

// InventoryGeneratorUsecase produces one calendar day's stock movements.
type InventoryGeneratorUsecase interface {
	// GenerateDay fabricates at most one movement per product; products whose
	// sampled adjustment quantity is zero are skipped, so the result length is
	// at most len(products).
	GenerateDay(ctx context.Context, products []*entity.Product, date time.Time) ([]*entity.InventoryMovement, error)
}

// DateDimensionUsecase produces the warehouse date dimension seed.
type DateDimensionUsecase interface {
	// GenerateRange returns one row per calendar day from start through end
	// inclusive.
	GenerateRange(ctx context.Context, start, end time.Time) ([]*entity.DateDimension, error)
}
