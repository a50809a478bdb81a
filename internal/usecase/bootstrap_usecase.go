package usecase

import (
	"context"

	"martgen/internal/domain/entity"
)

// ReferenceSpec describes the desired size of the reference population.
type ReferenceSpec struct {
	NumCustomers int
	NumProducts  int
}

// BootstrapUsecase defines the reference data bootstrap: load the persisted
// customer and product populations when they exist, otherwise synthesize and
// persist them. Repeated calls return the same population by identity, which
// keeps every later daily run referentially consistent with earlier ones.
type BootstrapUsecase interface {
	// LoadOrCreate returns the reference population, creating and persisting
	// it on first use. A present but unreadable store is a fatal error and is
	// propagated; the population is never silently regenerated.
	LoadOrCreate(ctx context.Context, spec ReferenceSpec) (*entity.ReferenceData, error)
}
