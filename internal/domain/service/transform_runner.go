package service

import (
	"context"
)

// TransformRunner defines the interface for the external transformation tool
// invoked after all warehouse loads complete. The tool is a black box: the
// pipeline consumes nothing from it beyond success or failure.
type TransformRunner interface {
	// Run executes the transformation models.
	Run(ctx context.Context) error

	// Test executes the transformation test suite.
	Test(ctx context.Context) error
}
