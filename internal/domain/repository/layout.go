// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"path/filepath"
	"time"
)

// The on-disk layout is shared by the local store, the upload stage and the
// warehouse load stage, so it lives with the repository contracts. Daily
// output is partitioned as {root}/{kind}/{date}/{file}; reference files sit
// directly under the root.
const (
	KindOrders     = "orders"
	KindOrderItems = "order_items"
	KindInventory  = "inventory"

	OrdersFile     = "orders.csv"
	OrderItemsFile = "order_items.csv"
	MovementsFile  = "inventory_movements.csv"

	CustomersFile = "customers.csv"
	ProductsFile  = "products.csv"

	// DateLayout is the partition key format.
	DateLayout = "2006-01-02"
)

// PartitionKinds lists every daily partition kind in load order.
func PartitionKinds() []string {
	return []string{KindOrders, KindOrderItems, KindInventory}
}

// DateKey formats a date as its partition key.
func DateKey(date time.Time) string {
	return date.Format(DateLayout)
}

// PartitionDir returns the local directory of one kind's partition for a date.
func PartitionDir(root, kind string, date time.Time) string {
	return filepath.Join(root, kind, DateKey(date))
}
