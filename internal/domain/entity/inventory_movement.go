// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// InventoryMovement is a stock change for one product on one day.
// Movements are sampled independently of the order stream; the two are only
// date-aligned. Movements with a zero quantity are never persisted.
type InventoryMovement struct {
	ID           uuid.UUID    // The Global Unique Identifier (GUID) for the movement.
	ProductID    uuid.UUID    // The product whose stock changed.
	MovementDate time.Time    // Movement timestamp; date is the generation date, hour sampled 0-23.
	Quantity     int          // Signed stock delta; never zero.
	MovementType MovementType // The kind of stock change.
	ReferenceID  uuid.UUID    // Opaque reference to an external document (PO, invoice, ...).
	Notes        string       // Free-text note.
}

// MovementType represents the kind of stock change.
type MovementType string

const (
	MovementTypePurchase   MovementType = "purchase"
	MovementTypeSale       MovementType = "sale"
	MovementTypeAdjustment MovementType = "adjustment"
	MovementTypeReturn     MovementType = "return"
)

// MovementTypes lists every valid movement type.
func MovementTypes() []MovementType {
	return []MovementType{MovementTypePurchase, MovementTypeSale, MovementTypeAdjustment, MovementTypeReturn}
}

// String returns the string representation of the MovementType.
func (m MovementType) String() string {
	return string(m)
}

// IsInbound reports whether the movement type always increases stock.
func (m MovementType) IsInbound() bool {
	return m == MovementTypePurchase || m == MovementTypeReturn
}
