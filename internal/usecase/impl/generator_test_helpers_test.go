package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"martgen/config"
	"martgen/internal/domain/entity"
	"martgen/internal/domain/repository"
	"martgen/internal/infra/datagen"
	"martgen/internal/usecase"
)

// testSeed keeps every generator test deterministic.
const testSeed = 42

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	guestRate := 0.05
	cfg := &config.Config{
		Generator: &config.GeneratorConfig{
			Seed:            testSeed,
			NumCustomers:    20,
			NumProducts:     10,
			MaxOrdersPerDay: 20,
			GuestOrderRate:  &guestRate,
			DataDir:         t.TempDir(),
		},
	}

	return cfg
}

// memoryReferenceRepository is an in-memory ReferenceRepository for tests
// that only care about bootstrap behavior, not persistence.
type memoryReferenceRepository struct {
	ref     *entity.ReferenceData
	loadErr error
	saves   int
}

func (r *memoryReferenceRepository) Load(_ context.Context) (*entity.ReferenceData, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.ref == nil {
		return nil, repository.ErrReferenceNotFound
	}

	return r.ref, nil
}

func (r *memoryReferenceRepository) Save(_ context.Context, ref *entity.ReferenceData) error {
	r.ref = ref
	r.saves++

	return nil
}

// testReference generates a small deterministic reference population.
func testReference(t *testing.T, faker *datagen.Faker, customers, products int) *entity.ReferenceData {
	t.Helper()

	repo := &memoryReferenceRepository{}
	svc := NewBootstrapService(repo, faker, testLogger())

	ref, err := svc.LoadOrCreate(context.Background(), usecase.ReferenceSpec{
		NumCustomers: customers,
		NumProducts:  products,
	})
	if err != nil {
		t.Fatalf("bootstrap test reference: %v", err)
	}

	return ref
}
