package postgres

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"martgen/config"
	"martgen/internal/domain/entity"
	"martgen/internal/domain/repository"
	"martgen/internal/domain/service"
	"martgen/internal/infra/persistence/csvstore"
	"martgen/internal/infra/warehouse/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultBatchSize = 500

type loader struct {
	db          *gorm.DB
	refRepo     repository.ReferenceRepository
	dataDir     string
	batchSize   int
	autoMigrate bool
	logger      *slog.Logger
}

// NewLoader creates the warehouse load stage. Daily partitions are appended
// to their tables; reference tables are replaced wholesale, mirroring the
// append/truncate write modes of the original warehouse loads.
func NewLoader(cfg *config.Config, db *gorm.DB, refRepo repository.ReferenceRepository, logger *slog.Logger) service.WarehouseLoader {
	batchSize := defaultBatchSize
	autoMigrate := true
	if cfg.Warehouse != nil {
		if cfg.Warehouse.BatchSize > 0 {
			batchSize = cfg.Warehouse.BatchSize
		}
		autoMigrate = cfg.Warehouse.AutoMigrate
	}

	return &loader{
		db:          db,
		refRepo:     refRepo,
		dataDir:     cfg.Generator.DataDir,
		batchSize:   batchSize,
		autoMigrate: autoMigrate,
		logger:      logger,
	}
}

// LoadDaily appends one date's partitions to the warehouse tables.
func (l *loader) LoadDaily(ctx context.Context, date time.Time) error {
	if l.autoMigrate {
		if err := l.db.WithContext(ctx).AutoMigrate(
			&model.OrderRow{}, &model.OrderItemRow{}, &model.InventoryMovementRow{},
		); err != nil {
			return errors.Wrap(err, "migrate daily tables")
		}
	}

	orders, err := csvstore.ReadOrdersFile(filepath.Join(
		repository.PartitionDir(l.dataDir, repository.KindOrders, date), repository.OrdersFile))
	if err != nil {
		return errors.Wrap(err, "read orders partition")
	}

	items, err := csvstore.ReadOrderItemsFile(filepath.Join(
		repository.PartitionDir(l.dataDir, repository.KindOrderItems, date), repository.OrderItemsFile))
	if err != nil {
		return errors.Wrap(err, "read order items partition")
	}

	movements, err := csvstore.ReadMovementsFile(filepath.Join(
		repository.PartitionDir(l.dataDir, repository.KindInventory, date), repository.MovementsFile))
	if err != nil {
		return errors.Wrap(err, "read inventory partition")
	}

	if err := appendRows(ctx, l.db, l.batchSize, OrderRows(orders)); err != nil {
		return errors.Wrap(err, "load orders")
	}
	if err := appendRows(ctx, l.db, l.batchSize, OrderItemRows(items)); err != nil {
		return errors.Wrap(err, "load order items")
	}
	if err := appendRows(ctx, l.db, l.batchSize, MovementRows(movements)); err != nil {
		return errors.Wrap(err, "load inventory movements")
	}

	l.logger.Info("loaded daily partitions",
		slog.String("date", repository.DateKey(date)),
		slog.Int("orders", len(orders)),
		slog.Int("items", len(items)),
		slog.Int("movements", len(movements)))

	return nil
}

// LoadReference replaces the customers and products tables with the persisted
// reference data. Both tables are swapped in one transaction so readers never
// see half a population.
func (l *loader) LoadReference(ctx context.Context) error {
	ref, err := l.refRepo.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "load reference data")
	}

	if l.autoMigrate {
		if err := l.db.WithContext(ctx).AutoMigrate(&model.CustomerRow{}, &model.ProductRow{}); err != nil {
			return errors.Wrap(err, "migrate reference tables")
		}
	}

	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.CustomerRow{}).Error; err != nil {
			return errors.Wrap(err, "clear customers")
		}
		if err := tx.Where("1 = 1").Delete(&model.ProductRow{}).Error; err != nil {
			return errors.Wrap(err, "clear products")
		}

		if err := tx.CreateInBatches(CustomerRows(ref.Customers), l.batchSize).Error; err != nil {
			return errors.Wrap(err, "insert customers")
		}
		if err := tx.CreateInBatches(ProductRows(ref.Products), l.batchSize).Error; err != nil {
			return errors.Wrap(err, "insert products")
		}

		return nil
	})
	if err != nil {
		return err
	}

	l.logger.Info("replaced reference tables",
		slog.Int("customers", len(ref.Customers)),
		slog.Int("products", len(ref.Products)))

	return nil
}

func appendRows[T any](ctx context.Context, db *gorm.DB, batchSize int, rows []T) error {
	if len(rows) == 0 {
		return nil
	}

	return db.WithContext(ctx).CreateInBatches(rows, batchSize).Error
}

// CustomerRows maps customers to their warehouse rows.
func CustomerRows(customers []*entity.Customer) []model.CustomerRow {
	rows := make([]model.CustomerRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, model.CustomerRow{
			CustomerID:  c.ID,
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			Email:       c.Email,
			Phone:       c.Phone,
			Address:     c.Address,
			City:        c.City,
			State:       c.State,
			ZipCode:     c.ZipCode,
			JoinDate:    c.JoinDate,
			LoyaltyTier: c.LoyaltyTier.String(),
			Segment:     c.Segment.String(),
			CreditScore: c.CreditScore,
		})
	}

	return rows
}

// ProductRows maps products to their warehouse rows.
func ProductRows(products []*entity.Product) []model.ProductRow {
	rows := make([]model.ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, model.ProductRow{
			ProductID:    p.ID,
			SKU:          p.SKU,
			Name:         p.Name,
			Category:     p.Category.String(),
			Subcategory:  p.Subcategory,
			Brand:        p.Brand,
			CostPrice:    p.CostPrice,
			SellingPrice: p.SellingPrice,
			Weight:       p.Weight,
			CreatedAt:    p.CreatedAt,
			IsActive:     p.IsActive,
			InventoryQty: p.InventoryQty,
		})
	}

	return rows
}

// OrderRows maps orders to their warehouse rows.
func OrderRows(orders []*entity.Order) []model.OrderRow {
	rows := make([]model.OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, model.OrderRow{
			OrderID:         o.ID,
			CustomerID:      o.CustomerID,
			IsGuest:         o.IsGuest,
			OrderDate:       o.OrderDate,
			Status:          o.Status.String(),
			TotalAmount:     o.TotalAmount,
			ShippingAddress: o.ShippingAddress,
			ShippingCity:    o.ShippingCity,
			ShippingState:   o.ShippingState,
			ShippingZip:     o.ShippingZip,
			PaymentMethod:   o.PaymentMethod.String(),
			PaymentStatus:   o.PaymentStatus.String(),
			ShippingCost:    o.ShippingCost,
		})
	}

	return rows
}

// OrderItemRows maps order items to their warehouse rows.
func OrderItemRows(items []*entity.OrderItem) []model.OrderItemRow {
	rows := make([]model.OrderItemRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, model.OrderItemRow{
			OrderItemID:  item.ID,
			OrderID:      item.OrderID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			DiscountPct:  item.DiscountPct,
			TotalPrice:   item.TotalPrice,
			ReturnStatus: item.ReturnStatus.String(),
			ReturnReason: item.ReturnReason,
		})
	}

	return rows
}

// MovementRows maps inventory movements to their warehouse rows.
func MovementRows(movements []*entity.InventoryMovement) []model.InventoryMovementRow {
	rows := make([]model.InventoryMovementRow, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, model.InventoryMovementRow{
			MovementID:   m.ID,
			ProductID:    m.ProductID,
			MovementDate: m.MovementDate,
			Quantity:     m.Quantity,
			MovementType: m.MovementType.String(),
			ReferenceID:  m.ReferenceID,
			Notes:        m.Notes,
		})
	}

	return rows
}
