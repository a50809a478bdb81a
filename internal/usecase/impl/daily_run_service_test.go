package impl

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"martgen/config"
	"martgen/internal/domain/repository"
	"martgen/internal/infra/datagen"
	"martgen/internal/infra/persistence/csvstore"
	"martgen/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDailyRunner(t *testing.T) (usecase.DailyRunUsecase, *config.Config) {
	t.Helper()

	cfg := testConfig(t)
	faker := datagen.New(testSeed)
	refRepo := csvstore.NewReferenceRepository(cfg)
	partRepo := csvstore.NewPartitionRepository(cfg)

	bootstrap := NewBootstrapService(refRepo, faker, testLogger())
	orders := NewOrderGenerator(cfg, faker, testLogger())
	inventory := NewInventoryGenerator(faker, testLogger())

	return NewDailyRunService(cfg, bootstrap, orders, inventory, partRepo, testLogger()), cfg
}

func TestDailyRunService_Run_WritesAllPartitions(t *testing.T) {
	runner, cfg := createTestDailyRunner(t)
	date := time.Date(2024, 3, 5, 13, 45, 0, 0, time.UTC)

	result, err := runner.Run(context.Background(), date)
	require.NoError(t, err)

	// The partition key is the date component only, regardless of the
	// time of day passed in.
	assert.Equal(t, "2024-03-05", repository.DateKey(result.Date))
	assert.Positive(t, result.Orders)
	assert.Positive(t, result.Items)
	assert.Positive(t, result.Movements)

	dataDir := cfg.Generator.DataDir
	assert.FileExists(t, filepath.Join(dataDir, repository.CustomersFile))
	assert.FileExists(t, filepath.Join(dataDir, repository.ProductsFile))
	assert.FileExists(t, filepath.Join(repository.PartitionDir(dataDir, repository.KindOrders, date), repository.OrdersFile))
	assert.FileExists(t, filepath.Join(repository.PartitionDir(dataDir, repository.KindOrderItems, date), repository.OrderItemsFile))
	assert.FileExists(t, filepath.Join(repository.PartitionDir(dataDir, repository.KindInventory, date), repository.MovementsFile))
}

func TestDailyRunService_Run_ReusesReferenceAcrossDays(t *testing.T) {
	runner, cfg := createTestDailyRunner(t)
	ctx := context.Background()

	_, err := runner.Run(ctx, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	customersPath := filepath.Join(cfg.Generator.DataDir, repository.CustomersFile)
	before, err := os.ReadFile(customersPath)
	require.NoError(t, err)

	_, err = runner.Run(ctx, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	after, err := os.ReadFile(customersPath)
	require.NoError(t, err)

	// The second day reuses the bootstrapped population byte for byte.
	assert.Equal(t, before, after)
}

func TestDailyRunService_Run_RerunOverwritesPartition(t *testing.T) {
	runner, cfg := createTestDailyRunner(t)
	ctx := context.Background()
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	first, err := runner.Run(ctx, date)
	require.NoError(t, err)
	require.Positive(t, first.Orders)

	second, err := runner.Run(ctx, date)
	require.NoError(t, err)

	// A rerun replaces the partition rather than appending to it.
	ordersPath := filepath.Join(repository.PartitionDir(cfg.Generator.DataDir, repository.KindOrders, date), repository.OrdersFile)
	content, err := os.ReadFile(ordersPath)
	require.NoError(t, err)

	lines := 0
	for _, b := range content {
		if b == '\n' {
			lines++
		}
	}
	assert.Equal(t, second.Orders+1, lines, "orders file holds only the rerun's rows plus the header")
}
