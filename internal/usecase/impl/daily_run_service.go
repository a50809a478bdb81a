package impl

import (
	"context"
	"log/slog"
	"time"

	"martgen/config"
	"martgen/internal/domain/entity"
	"martgen/internal/domain/repository"
	"martgen/internal/usecase"
	"martgen/internal/util"

	"github.com/pkg/errors"
)

type dailyRunService struct {
	cfg        *config.GeneratorConfig
	bootstrap  usecase.BootstrapUsecase
	orders     usecase.OrderGeneratorUsecase
	inventory  usecase.InventoryGeneratorUsecase
	partitions repository.PartitionRepository
	logger     *slog.Logger
}

// NewDailyRunService creates the daily run orchestrator.
func NewDailyRunService(
	cfg *config.Config,
	bootstrap usecase.BootstrapUsecase,
	orders usecase.OrderGeneratorUsecase,
	inventory usecase.InventoryGeneratorUsecase,
	partitions repository.PartitionRepository,
	logger *slog.Logger,
) usecase.DailyRunUsecase {
	return &dailyRunService{
		cfg:        cfg.Generator,
		bootstrap:  bootstrap,
		orders:     orders,
		inventory:  inventory,
		partitions: partitions,
		logger:     logger,
	}
}

// Run generates and persists one date's data: bootstrap the reference
// population, sample the day's orders and movements against it, and write the
// date's partitions. Re-running a date overwrites its partition files.
func (s *dailyRunService) Run(ctx context.Context, date time.Time) (*usecase.DailyRunResult, error) {
	started := time.Now()
	date = util.DateOnly(date)

	s.logger.Info("generating data", slog.String("date", repository.DateKey(date)))

	ref, err := s.bootstrap.LoadOrCreate(ctx, usecase.ReferenceSpec{
		NumCustomers: s.cfg.NumCustomers,
		NumProducts:  s.cfg.NumProducts,
	})
	if err != nil {
		return nil, errors.Wrap(err, "bootstrap reference data")
	}

	orders, items, err := s.orders.GenerateDay(ctx, ref, date)
	if err != nil {
		return nil, errors.Wrap(err, "generate orders")
	}

	movements, err := s.inventory.GenerateDay(ctx, ref.Products, date)
	if err != nil {
		return nil, errors.Wrap(err, "generate inventory movements")
	}

	batch := &entity.DailyBatch{
		Orders:    orders,
		Items:     items,
		Movements: movements,
	}
	if err := s.partitions.SaveBatch(ctx, date, batch); err != nil {
		return nil, errors.Wrap(err, "persist daily partitions")
	}

	result := &usecase.DailyRunResult{
		Date:      date,
		Orders:    len(orders),
		Items:     len(items),
		Movements: len(movements),
	}

	s.logger.Info("generated data",
		slog.String("date", repository.DateKey(date)),
		slog.Int("orders", result.Orders),
		slog.Int("items", result.Items),
		slog.Int("movements", result.Movements),
		slog.String("took", util.FormatDuration(time.Since(started))))

	return result, nil
}
