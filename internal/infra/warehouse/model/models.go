// Package model defines the warehouse table rows the load stage writes.
// Column sets mirror the CSV files one to one; typing beyond that is left to
// the transformation layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerRow mirrors the 'customers' reference table (full-replace loads).
type CustomerRow struct {
	CustomerID  uuid.UUID `gorm:"type:uuid;primaryKey;column:customer_id"`
	FirstName   string    `gorm:"type:varchar(100);column:first_name"`
	LastName    string    `gorm:"type:varchar(100);column:last_name"`
	Email       string    `gorm:"type:varchar(255);column:email"`
	Phone       string    `gorm:"type:varchar(50);column:phone"`
	Address     string    `gorm:"type:text;column:address"`
	City        string    `gorm:"type:varchar(100);column:city"`
	State       string    `gorm:"type:varchar(100);column:state"`
	ZipCode     string    `gorm:"type:varchar(20);column:zip_code"`
	JoinDate    time.Time `gorm:"type:date;column:join_date"`
	LoyaltyTier string    `gorm:"type:varchar(20);column:loyalty_tier"`
	Segment     string    `gorm:"type:varchar(20);column:segment"`
	CreditScore int       `gorm:"column:credit_score"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerRow) TableName() string {
	return "customers"
}

// ProductRow mirrors the 'products' reference table (full-replace loads).
type ProductRow struct {
	ProductID    uuid.UUID `gorm:"type:uuid;primaryKey;column:product_id"`
	SKU          string    `gorm:"type:varchar(20);column:sku"`
	Name         string    `gorm:"type:varchar(255);column:name"`
	Category     string    `gorm:"type:varchar(50);column:category"`
	Subcategory  string    `gorm:"type:varchar(100);column:subcategory"`
	Brand        string    `gorm:"type:varchar(100);column:brand"`
	CostPrice    float64   `gorm:"type:numeric(10,2);column:cost_price"`
	SellingPrice float64   `gorm:"type:numeric(10,2);column:selling_price"`
	Weight       float64   `gorm:"type:numeric(8,2);column:weight"`
	CreatedAt    time.Time `gorm:"type:date;column:created_at"`
	IsActive     bool      `gorm:"column:is_active"`
	InventoryQty int       `gorm:"column:inventory_qty"`
}

// TableName explicitly sets the table name for GORM.
func (ProductRow) TableName() string {
	return "products"
}

// OrderRow mirrors the 'orders' daily table (append loads).
type OrderRow struct {
	OrderID         uuid.UUID  `gorm:"type:uuid;primaryKey;column:order_id"`
	CustomerID      *uuid.UUID `gorm:"type:uuid;column:customer_id"`
	IsGuest         bool       `gorm:"column:is_guest"`
	OrderDate       time.Time  `gorm:"column:order_date;index"`
	Status          string     `gorm:"type:varchar(20);column:status"`
	TotalAmount     float64    `gorm:"type:numeric(12,2);column:total_amount"`
	ShippingAddress string     `gorm:"type:text;column:shipping_address"`
	ShippingCity    string     `gorm:"type:varchar(100);column:shipping_city"`
	ShippingState   string     `gorm:"type:varchar(100);column:shipping_state"`
	ShippingZip     string     `gorm:"type:varchar(20);column:shipping_zip"`
	PaymentMethod   string     `gorm:"type:varchar(50);column:payment_method"`
	PaymentStatus   string     `gorm:"type:varchar(20);column:payment_status"`
	ShippingCost    float64    `gorm:"type:numeric(8,2);column:shipping_cost"`
}

// TableName explicitly sets the table name for GORM.
func (OrderRow) TableName() string {
	return "orders"
}

// OrderItemRow mirrors the 'order_items' daily table (append loads).
type OrderItemRow struct {
	OrderItemID  uuid.UUID `gorm:"type:uuid;primaryKey;column:order_item_id"`
	OrderID      uuid.UUID `gorm:"type:uuid;column:order_id;index"`
	ProductID    uuid.UUID `gorm:"type:uuid;column:product_id"`
	Quantity     int       `gorm:"column:quantity"`
	UnitPrice    float64   `gorm:"type:numeric(10,2);column:unit_price"`
	DiscountPct  float64   `gorm:"type:numeric(4,2);column:discount_pct"`
	TotalPrice   float64   `gorm:"type:numeric(12,4);column:total_price"`
	ReturnStatus string    `gorm:"type:varchar(20);column:return_status"`
	ReturnReason *string   `gorm:"type:varchar(100);column:return_reason"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemRow) TableName() string {
	return "order_items"
}

// InventoryMovementRow mirrors the 'inventory_movements' daily table
// (append loads).
type InventoryMovementRow struct {
	MovementID   uuid.UUID `gorm:"type:uuid;primaryKey;column:movement_id"`
	ProductID    uuid.UUID `gorm:"type:uuid;column:product_id;index"`
	MovementDate time.Time `gorm:"column:movement_date"`
	Quantity     int       `gorm:"column:quantity"`
	MovementType string    `gorm:"type:varchar(20);column:movement_type"`
	ReferenceID  uuid.UUID `gorm:"type:uuid;column:reference_id"`
	Notes        string    `gorm:"type:text;column:notes"`
}

// TableName explicitly sets the table name for GORM.
func (InventoryMovementRow) TableName() string {
	return "inventory_movements"
}
