package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"martgen/config"
	"martgen/internal/domain/entity"
	"martgen/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStoreConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Generator: &config.GeneratorConfig{DataDir: t.TempDir()},
	}
}

func sampleReference() *entity.ReferenceData {
	return &entity.ReferenceData{
		Customers: []*entity.Customer{
			{
				ID:          uuid.New(),
				FirstName:   "Ada",
				LastName:    "Lovelace",
				Email:       "ada@example.com",
				Phone:       "555-0100",
				Address:     "12 Analytical Way",
				City:        "London",
				State:       "LDN",
				ZipCode:     "00123",
				JoinDate:    time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
				LoyaltyTier: entity.LoyaltyTierGold,
				Segment:     entity.SegmentFrequent,
				CreditScore: 712,
			},
		},
		Products: []*entity.Product{
			{
				ID:           uuid.New(),
				SKU:          "SKU-0001-ABCD",
				Name:         "Mechanical Keyboard",
				Category:     entity.CategoryElectronics,
				Subcategory:  "peripherals",
				Brand:        "Clackers",
				CostPrice:    45.50,
				SellingPrice: 99.99,
				Weight:       1.25,
				CreatedAt:    time.Date(2022, 1, 15, 0, 0, 0, 0, time.UTC),
				IsActive:     true,
				InventoryQty: 240,
			},
		},
	}
}

func TestReferenceRepository_SaveLoadRoundtrip(t *testing.T) {
	cfg := testStoreConfig(t)
	repo := NewReferenceRepository(cfg)
	ctx := context.Background()

	want := sampleReference()
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Customers, 1)
	require.Len(t, got.Products, 1)

	customer := got.Customers[0]
	assert.Equal(t, want.Customers[0].ID, customer.ID)
	assert.Equal(t, "Ada", customer.FirstName)
	assert.Equal(t, "00123", customer.ZipCode, "leading zeros survive the roundtrip")
	assert.Equal(t, entity.LoyaltyTierGold, customer.LoyaltyTier)
	assert.Equal(t, 712, customer.CreditScore)
	assert.True(t, customer.JoinDate.Equal(want.Customers[0].JoinDate))

	product := got.Products[0]
	assert.Equal(t, want.Products[0].ID, product.ID)
	assert.Equal(t, 45.50, product.CostPrice)
	assert.Equal(t, 99.99, product.SellingPrice)
	assert.True(t, product.IsActive)
	assert.Equal(t, 240, product.InventoryQty)
}

func TestReferenceRepository_Load_NotBootstrapped(t *testing.T) {
	repo := NewReferenceRepository(testStoreConfig(t))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrReferenceNotFound)
}

func TestReferenceRepository_Load_PartialStoreIsFatal(t *testing.T) {
	cfg := testStoreConfig(t)
	repo := NewReferenceRepository(cfg)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleReference()))
	require.NoError(t, os.Remove(filepath.Join(cfg.Generator.DataDir, repository.ProductsFile)))

	_, err := repo.Load(ctx)
	require.Error(t, err)
	// A half-present store must not look like "not bootstrapped yet".
	assert.NotErrorIs(t, err, repository.ErrReferenceNotFound)
	assert.Contains(t, err.Error(), "partial reference data")
}

func TestReferenceRepository_Load_CorruptRowIsFatal(t *testing.T) {
	cfg := testStoreConfig(t)
	repo := NewReferenceRepository(cfg)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleReference()))

	customersPath := filepath.Join(cfg.Generator.DataDir, repository.CustomersFile)
	content, err := os.ReadFile(customersPath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(customersPath, append(content, []byte("not-a-valid-row\n")...), 0o600))

	_, err = repo.Load(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrReferenceNotFound)
}

func TestReferenceRepository_Save_Overwrites(t *testing.T) {
	cfg := testStoreConfig(t)
	repo := NewReferenceRepository(cfg)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleReference()))

	replacement := sampleReference()
	replacement.Customers[0].FirstName = "Grace"
	require.NoError(t, repo.Save(ctx, replacement))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Customers, 1)
	assert.Equal(t, "Grace", got.Customers[0].FirstName)
}
