package impl

import (
	"context"
	"testing"
	"time"

	"martgen/internal/domain/entity"
	"martgen/internal/infra/datagen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_GenerateDay_MovementInvariants(t *testing.T) {
	faker := datagen.New(testSeed)
	ref := testReference(t, faker, 5, 30)
	svc := NewInventoryGenerator(faker, testLogger())

	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	movements, err := svc.GenerateDay(context.Background(), ref.Products, date)
	require.NoError(t, err)

	// At most one movement per product; zero-quantity adjustments are dropped.
	assert.LessOrEqual(t, len(movements), len(ref.Products))
	assert.NotEmpty(t, movements)

	for _, m := range movements {
		assert.NotZero(t, m.Quantity)
		assert.Contains(t, entity.MovementTypes(), m.MovementType)
		assert.Equal(t, date.Year(), m.MovementDate.Year())
		assert.Equal(t, date.Month(), m.MovementDate.Month())
		assert.Equal(t, date.Day(), m.MovementDate.Day())
		assert.NotEmpty(t, m.Notes)

		switch m.MovementType {
		case entity.MovementTypePurchase, entity.MovementTypeReturn:
			assert.GreaterOrEqual(t, m.Quantity, 1)
			assert.LessOrEqual(t, m.Quantity, 100)
		case entity.MovementTypeSale:
			assert.GreaterOrEqual(t, m.Quantity, -50)
			assert.LessOrEqual(t, m.Quantity, -1)
		case entity.MovementTypeAdjustment:
			assert.GreaterOrEqual(t, m.Quantity, -20)
			assert.LessOrEqual(t, m.Quantity, 20)
		}
	}
}

func TestInventoryService_GenerateDay_ReferencesKnownProducts(t *testing.T) {
	faker := datagen.New(testSeed)
	ref := testReference(t, faker, 5, 10)
	svc := NewInventoryGenerator(faker, testLogger())

	movements, err := svc.GenerateDay(context.Background(), ref.Products, time.Now())
	require.NoError(t, err)

	known := make(map[string]bool, len(ref.Products))
	for _, p := range ref.Products {
		known[p.ID.String()] = true
	}

	seen := make(map[string]int)
	for _, m := range movements {
		assert.True(t, known[m.ProductID.String()])
		seen[m.ProductID.String()]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "product %s moved more than once", id)
	}
}

func TestInventoryService_GenerateDay_NoProducts(t *testing.T) {
	svc := NewInventoryGenerator(datagen.New(testSeed), testLogger())

	movements, err := svc.GenerateDay(context.Background(), nil, time.Now())
	require.NoError(t, err)
	assert.Empty(t, movements)
}
