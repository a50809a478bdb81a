package csvstore

import (
	"context"
	"path/filepath"
	"time"

	"martgen/config"
	"martgen/internal/domain/entity"
	"martgen/internal/domain/repository"
)

var ordersHeader = []string{
	"order_id", "customer_id", "is_guest", "order_date", "status",
	"total_amount", "shipping_address", "shipping_city", "shipping_state",
	"shipping_zip", "payment_method", "payment_status", "shipping_cost",
}

var orderItemsHeader = []string{
	"order_item_id", "order_id", "product_id", "quantity", "unit_price",
	"discount_pct", "total_price", "return_status", "return_reason",
}

var movementsHeader = []string{
	"movement_id", "product_id", "movement_date", "quantity",
	"movement_type", "reference_id", "notes",
}

type partitionRepository struct {
	dataDir string
}

// NewPartitionRepository creates the CSV-backed daily partition store.
func NewPartitionRepository(cfg *config.Config) repository.PartitionRepository {
	return &partitionRepository{dataDir: cfg.Generator.DataDir}
}

// SaveBatch writes the date's three partition files, creating partition
// directories on demand. An existing partition for the date is overwritten.
func (r *partitionRepository) SaveBatch(_ context.Context, date time.Time, batch *entity.DailyBatch) error {
	if err := r.saveOrders(date, batch.Orders); err != nil {
		return err
	}
	if err := r.saveOrderItems(date, batch.Items); err != nil {
		return err
	}

	return r.saveMovements(date, batch.Movements)
}

func (r *partitionRepository) saveOrders(date time.Time, orders []*entity.Order) error {
	records := make([][]string, 0, len(orders))
	for _, o := range orders {
		customerID := ""
		if o.CustomerID != nil {
			customerID = o.CustomerID.String()
		}

		records = append(records, []string{
			o.ID.String(),
			customerID,
			formatBool(o.IsGuest),
			o.OrderDate.Format(timestampFormat),
			o.Status.String(),
			formatMoney(o.TotalAmount),
			o.ShippingAddress,
			o.ShippingCity,
			o.ShippingState,
			o.ShippingZip,
			o.PaymentMethod.String(),
			o.PaymentStatus.String(),
			formatMoney(o.ShippingCost),
		})
	}

	path := filepath.Join(repository.PartitionDir(r.dataDir, repository.KindOrders, date), repository.OrdersFile)

	return writeCSVFile(path, ordersHeader, records)
}

func (r *partitionRepository) saveOrderItems(date time.Time, items []*entity.OrderItem) error {
	records := make([][]string, 0, len(items))
	for _, item := range items {
		reason := ""
		if item.ReturnReason != nil {
			reason = *item.ReturnReason
		}

		records = append(records, []string{
			item.ID.String(),
			item.OrderID.String(),
			item.ProductID.String(),
			formatInt(item.Quantity),
			formatMoney(item.UnitPrice),
			formatMoney(item.DiscountPct),
			// Item totals are intentionally unrounded; the warehouse models
			// re-derive order totals from them.
			formatFloat(item.TotalPrice),
			item.ReturnStatus.String(),
			reason,
		})
	}

	path := filepath.Join(repository.PartitionDir(r.dataDir, repository.KindOrderItems, date), repository.OrderItemsFile)

	return writeCSVFile(path, orderItemsHeader, records)
}

func (r *partitionRepository) saveMovements(date time.Time, movements []*entity.InventoryMovement) error {
	records := make([][]string, 0, len(movements))
	for _, m := range movements {
		records = append(records, []string{
			m.ID.String(),
			m.ProductID.String(),
			m.MovementDate.Format(timestampFormat),
			formatInt(m.Quantity),
			m.MovementType.String(),
			m.ReferenceID.String(),
			m.Notes,
		})
	}

	path := filepath.Join(repository.PartitionDir(r.dataDir, repository.KindInventory, date), repository.MovementsFile)

	return writeCSVFile(path, movementsHeader, records)
}
