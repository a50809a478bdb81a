// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// OrderItem is a single line of an order. Every item references an order
// created in the same daily run and a product from the reference catalog.
type OrderItem struct {
	ID           uuid.UUID    // The Global Unique Identifier (GUID) for the line item.
	OrderID      uuid.UUID    // The parent order; always an order from the same run.
	ProductID    uuid.UUID    // The purchased product from the reference catalog.
	Quantity     int          // Units purchased, 1 to 5.
	UnitPrice    float64      // The product's selling price at generation time.
	DiscountPct  float64      // Discount fraction, 0 or uniform in (0, 0.3].
	TotalPrice   float64      // Quantity * UnitPrice * (1 - DiscountPct); intentionally unrounded.
	ReturnStatus ReturnStatus // Return state; forced to not_returned when the parent order completed.
	ReturnReason *string      // One of ReturnReasons when ReturnStatus != not_returned, nil otherwise.
}

// ReturnStatus represents the return state of an order item.
type ReturnStatus string

const (
	ReturnStatusNotReturned ReturnStatus = "not_returned"
	ReturnStatusReturned    ReturnStatus = "returned"
	ReturnStatusRefunded    ReturnStatus = "refunded"
)

// String returns the string representation of the ReturnStatus.
func (s ReturnStatus) String() string {
	return string(s)
}

// IsValid checks if the ReturnStatus is a valid value.
func (s ReturnStatus) IsValid() bool {
	switch s {
	case ReturnStatusNotReturned, ReturnStatusReturned, ReturnStatusRefunded:
		return true
	default:
		return false
	}
}

// ReturnReasons is the fixed list a return reason is drawn from.
func ReturnReasons() []string {
	return []string{
		"Wrong item",
		"Defective",
		"No longer needed",
		"Better price elsewhere",
		"Wrong size",
	}
}
