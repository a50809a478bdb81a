// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"martgen/internal/domain/entity"
)

// ErrReferenceNotFound is returned when no reference data has been persisted
// yet. It signals the bootstrap path, as opposed to a malformed or partially
// written store, which surfaces as an ordinary error and must never trigger
// regeneration.
var ErrReferenceNotFound = errors.New("reference data not found")

// ReferenceRepository persists the fixed customer and product populations.
// The application layer depends on this interface, not the concrete store,
// so the bootstrap decision is testable without touching a real filesystem.
type ReferenceRepository interface {
	// Load returns the previously persisted reference data.
	// It returns ErrReferenceNotFound when nothing has been persisted, and a
	// descriptive error when the persisted copy is present but unreadable.
	Load(ctx context.Context) (*entity.ReferenceData, error)

	// Save persists the full reference data, replacing any existing copy.
	Save(ctx context.Context, ref *entity.ReferenceData) error
}
