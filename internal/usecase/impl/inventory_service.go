package impl

import (
	"context"
	"log/slog"
	"time"

	"martgen/internal/domain/entity"
	"martgen/internal/infra/datagen"
	"martgen/internal/usecase"
)

type inventoryService struct {
	faker  *datagen.Faker
	logger *slog.Logger
}

// NewInventoryGenerator creates the inventory movement generator.
func NewInventoryGenerator(faker *datagen.Faker, logger *slog.Logger) usecase.InventoryGeneratorUsecase {
	return &inventoryService{
		faker:  faker,
		logger: logger,
	}
}

// GenerateDay fabricates at most one stock movement per product for the date.
// Movements are sampled independently of the order stream; the two are only
// date-aligned. This disconnect is inherited from the source model and kept
// as-is.
func (s *inventoryService) GenerateDay(_ context.Context, products []*entity.Product, date time.Time) ([]*entity.InventoryMovement, error) {
	movements := make([]*entity.InventoryMovement, 0, len(products))

	for _, product := range products {
		movementType := datagen.Pick(s.faker, entity.MovementTypes())

		quantity := s.sampleQuantity(movementType)
		if quantity == 0 {
			// Only adjustments can sample zero; a movement that moves nothing
			// is discarded rather than persisted.
			continue
		}

		movements = append(movements, &entity.InventoryMovement{
			ID:        s.faker.UUID(),
			ProductID: product.ID,
			MovementDate: time.Date(date.Year(), date.Month(), date.Day(),
				s.faker.IntRange(0, 23), 0, 0, 0, date.Location()),
			Quantity:     quantity,
			MovementType: movementType,
			ReferenceID:  s.faker.UUID(),
			Notes:        s.faker.Sentence(6),
		})
	}

	s.logger.Debug("generated inventory movements",
		slog.String("date", date.Format("2006-01-02")),
		slog.Int("movements", len(movements)))

	return movements, nil
}

// sampleQuantity draws the signed stock delta for a movement type: inbound
// types add 1-100 units, sales remove 1-50, adjustments drift within -20..20.
func (s *inventoryService) sampleQuantity(movementType entity.MovementType) int {
	switch movementType {
	case entity.MovementTypePurchase, entity.MovementTypeReturn:
		return s.faker.IntRange(1, 100)
	case entity.MovementTypeSale:
		return -s.faker.IntRange(1, 50)
	default:
		return s.faker.IntRange(-20, 20)
	}
}
