// Package entity contains the core business objects of the project.
package entity

// ReferenceData is the closed-world customer and product population shared by
// every daily run. It is bootstrapped once and reused afterwards so that all
// generated partitions remain referentially consistent with each other.
type ReferenceData struct {
	Customers []*Customer
	Products  []*Product
}

// DailyBatch is the full output of one daily generation run.
type DailyBatch struct {
	Orders    []*Order
	Items     []*OrderItem
	Movements []*InventoryMovement
}
