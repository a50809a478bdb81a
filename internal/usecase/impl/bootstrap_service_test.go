package impl

import (
	"context"
	"testing"

	"martgen/internal/domain/entity"
	"martgen/internal/infra/datagen"
	"martgen/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapService_LoadOrCreate_GeneratesPopulation(t *testing.T) {
	repo := &memoryReferenceRepository{}
	svc := NewBootstrapService(repo, datagen.New(testSeed), testLogger())

	ref, err := svc.LoadOrCreate(context.Background(), usecase.ReferenceSpec{
		NumCustomers: 100,
		NumProducts:  50,
	})
	require.NoError(t, err)
	require.Len(t, ref.Customers, 100)
	require.Len(t, ref.Products, 50)
	assert.Equal(t, 1, repo.saves)

	for _, c := range ref.Customers {
		assert.True(t, c.LoyaltyTier.IsValid())
		assert.Contains(t, entity.Segments(), c.Segment)
		assert.GreaterOrEqual(t, c.CreditScore, 300)
		assert.LessOrEqual(t, c.CreditScore, 850)
	}

	for _, p := range ref.Products {
		assert.True(t, p.Category.IsValid())
		assert.GreaterOrEqual(t, p.CostPrice, 5.0)
		// Selling price carries a markup between 1.2x and 3x cost; rounding of
		// the two prices may shave fractions of a cent off the exact ratio.
		ratio := p.SellingPrice / p.CostPrice
		assert.GreaterOrEqual(t, ratio, 1.19)
		assert.LessOrEqual(t, ratio, 3.01)
	}
}

func TestBootstrapService_LoadOrCreate_ReusesPersisted(t *testing.T) {
	repo := &memoryReferenceRepository{}
	svc := NewBootstrapService(repo, datagen.New(testSeed), testLogger())
	spec := usecase.ReferenceSpec{NumCustomers: 10, NumProducts: 5}

	first, err := svc.LoadOrCreate(context.Background(), spec)
	require.NoError(t, err)

	second, err := svc.LoadOrCreate(context.Background(), spec)
	require.NoError(t, err)

	// The second call must return the persisted population, not a fresh one.
	assert.Equal(t, 1, repo.saves)
	require.Len(t, second.Customers, len(first.Customers))
	for i := range first.Customers {
		assert.Equal(t, first.Customers[i].ID, second.Customers[i].ID)
	}
	for i := range first.Products {
		assert.Equal(t, first.Products[i].ID, second.Products[i].ID)
	}
}

func TestBootstrapService_LoadOrCreate_PropagatesLoadFailure(t *testing.T) {
	loadErr := errors.New("corrupt store")
	repo := &memoryReferenceRepository{loadErr: loadErr}
	svc := NewBootstrapService(repo, datagen.New(testSeed), testLogger())

	_, err := svc.LoadOrCreate(context.Background(), usecase.ReferenceSpec{
		NumCustomers: 10,
		NumProducts:  5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
	// A broken store must never be papered over with a regenerated one.
	assert.Equal(t, 0, repo.saves)
}

func TestBootstrapService_LoadOrCreate_DeterministicForSeed(t *testing.T) {
	spec := usecase.ReferenceSpec{NumCustomers: 10, NumProducts: 5}

	makeRef := func() *entity.ReferenceData {
		repo := &memoryReferenceRepository{}
		svc := NewBootstrapService(repo, datagen.New(testSeed), testLogger())
		ref, err := svc.LoadOrCreate(context.Background(), spec)
		require.NoError(t, err)

		return ref
	}

	first := makeRef()
	second := makeRef()

	for i := range first.Customers {
		assert.Equal(t, first.Customers[i].ID, second.Customers[i].ID)
		assert.Equal(t, first.Customers[i].Email, second.Customers[i].Email)
	}
	for i := range first.Products {
		assert.Equal(t, first.Products[i].ID, second.Products[i].ID)
		assert.Equal(t, first.Products[i].SellingPrice, second.Products[i].SellingPrice)
	}
}
