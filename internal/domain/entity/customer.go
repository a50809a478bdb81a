// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a member of the fixed reference population. Customers are
// created once during bootstrap and never mutated or deleted afterwards,
// so every historical order stays referentially consistent.
type Customer struct {
	ID          uuid.UUID   // The Global Unique Identifier (GUID) for the customer.
	FirstName   string      // The customer's given name.
	LastName    string      // The customer's family name.
	Email       string      // The customer's contact email.
	Phone       string      // The customer's contact phone number.
	Address     string      // The street address, single line.
	City        string      // The city of the address.
	State       string      // The state or region of the address.
	ZipCode     string      // The postal code, kept as a string to preserve leading zeros.
	JoinDate    time.Time   // The date the customer joined, within the past two years.
	LoyaltyTier LoyaltyTier // The customer's loyalty program tier.
	Segment     Segment     // The marketing segment the customer belongs to.
	CreditScore int         // Credit score, 300 to 850 inclusive.
}

// LoyaltyTier represents a customer's loyalty program tier.
type LoyaltyTier string

const (
	LoyaltyTierBronze   LoyaltyTier = "Bronze"
	LoyaltyTierSilver   LoyaltyTier = "Silver"
	LoyaltyTierGold     LoyaltyTier = "Gold"
	LoyaltyTierPlatinum LoyaltyTier = "Platinum"
)

// LoyaltyTiers lists every valid tier, in ascending order of standing.
func LoyaltyTiers() []LoyaltyTier {
	return []LoyaltyTier{LoyaltyTierBronze, LoyaltyTierSilver, LoyaltyTierGold, LoyaltyTierPlatinum}
}

// String returns the string representation of the LoyaltyTier.
func (t LoyaltyTier) String() string {
	return string(t)
}

// IsValid checks if the LoyaltyTier is a valid value.
func (t LoyaltyTier) IsValid() bool {
	switch t {
	case LoyaltyTierBronze, LoyaltyTierSilver, LoyaltyTierGold, LoyaltyTierPlatinum:
		return true
	default:
		return false
	}
}

// Segment represents the marketing segment a customer belongs to.
type Segment string

const (
	SegmentFrequent   Segment = "Frequent"
	SegmentOccasional Segment = "Occasional"
	SegmentOneTime    Segment = "One-time"
)

// Segments lists every valid customer segment.
func Segments() []Segment {
	return []Segment{SegmentFrequent, SegmentOccasional, SegmentOneTime}
}

// String returns the string representation of the Segment.
func (s Segment) String() string {
	return string(s)
}
