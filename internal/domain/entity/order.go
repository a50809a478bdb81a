// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is a single purchase generated for one calendar date. Orders are
// immutable once their items have been generated and the total finalized.
//
// The shipping fields are a snapshot of the sampled customer's address at
// order time. Guest orders keep the snapshot even though CustomerID is nil:
// shipping identity is deliberately independent of account identity.
type Order struct {
	ID              uuid.UUID     // The Global Unique Identifier (GUID) for the order.
	CustomerID      *uuid.UUID    // The ordering customer; nil for guest orders.
	IsGuest         bool          // True when the order was placed without an account.
	OrderDate       time.Time     // Order timestamp; date component is the generation date, time sampled 08:00-22:59.
	Status          OrderStatus   // Lifecycle status of the order.
	TotalAmount     float64       // 0 unless Status is completed; then round2(sum of item totals + shipping cost).
	ShippingAddress string        // Street address snapshot.
	ShippingCity    string        // City snapshot.
	ShippingState   string        // State snapshot.
	ShippingZip     string        // Postal code snapshot.
	PaymentMethod   PaymentMethod // How the order was paid.
	PaymentStatus   PaymentStatus // Paid when completed; otherwise pending or failed.
	ShippingCost    float64       // Shipping cost in [0, 15], 2 decimals.
}

// OrderStatus represents the lifecycle status of an order.
type OrderStatus string

const (
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusReturned   OrderStatus = "returned"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusProcessing, OrderStatusCancelled, OrderStatusReturned:
		return true
	default:
		return false
	}
}

// PaymentMethod represents how an order was paid.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "Credit Card"
	PaymentMethodPayPal       PaymentMethod = "PayPal"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
)

// PaymentMethods lists every valid payment method.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentMethodCreditCard, PaymentMethodPayPal, PaymentMethodBankTransfer}
}

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentStatus represents the settlement state of an order's payment.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}
