// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MinPriceMarkup is the lowest allowed selling price relative to cost price.
// Product creation enforces sellingPrice >= costPrice * MinPriceMarkup.
const MinPriceMarkup = 1.2

// Product is a member of the fixed reference catalog. Products are created
// once during bootstrap and referenced by order items and inventory
// movements; they are never mutated afterwards.
type Product struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the product.
	SKU          string    // Formatted stock keeping unit code, e.g. "SKU-1234-ABQZ".
	Name         string    // Display name of the product.
	Category     Category  // Top-level catalog category.
	Subcategory  string    // Free-form subcategory label.
	Brand        string    // Brand or manufacturer name.
	CostPrice    float64   // Acquisition cost, 2 decimals.
	SellingPrice float64   // List price; always at least MinPriceMarkup times CostPrice.
	Weight       float64   // Shipping weight in kilograms.
	CreatedAt    time.Time // Date the product entered the catalog.
	IsActive     bool      // Whether the product is currently sold.
	InventoryQty int       // Informational stock level; not decremented by movements.
}

// Category represents a top-level product catalog category.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryHome        Category = "Home"
	CategoryBooks       Category = "Books"
	CategoryBeauty      Category = "Beauty"
)

// Categories lists every valid product category.
func Categories() []Category {
	return []Category{CategoryElectronics, CategoryClothing, CategoryHome, CategoryBooks, CategoryBeauty}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryHome, CategoryBooks, CategoryBeauty:
		return true
	default:
		return false
	}
}
