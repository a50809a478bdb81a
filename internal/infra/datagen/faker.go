// Package datagen provides the seedable random sources used by every
// generation routine: a fake-data faker, uniform sampling helpers, and a
// weighted-choice utility. All randomness flows through an explicitly
// constructed Faker so runs are reproducible from a single seed.
package datagen

import (
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Faker bundles a seedable math/rand generator with a gofakeit faker seeded
// from the same value. A zero seed yields a non-deterministic instance.
type Faker struct {
	rng  *rand.Rand
	fake *gofakeit.Faker
}

// New creates a Faker from the given seed. Seed 0 produces an instance
// seeded from the current time, for production runs where reproducibility
// does not matter.
func New(seed uint64) *Faker {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Faker{
		rng:  rand.New(rand.NewPCG(seed, seed)),
		fake: gofakeit.New(seed),
	}
}

// Rand exposes the underlying generator for callers that sample directly.
func (f *Faker) Rand() *rand.Rand {
	return f.rng
}

// IntRange returns a uniform integer in [min, max] inclusive.
func (f *Faker) IntRange(min, max int) int {
	if min >= max {
		return min
	}

	return min + f.rng.IntN(max-min+1)
}

// Float64Range returns a uniform float in [min, max).
func (f *Faker) Float64Range(min, max float64) float64 {
	return min + f.rng.Float64()*(max-min)
}

// Chance returns true with the given probability.
func (f *Faker) Chance(p float64) bool {
	return f.rng.Float64() < p
}

// Pick returns a uniformly sampled element of items. Items must be non-empty.
func Pick[T any](f *Faker, items []T) T {
	return items[f.rng.IntN(len(items))]
}

// UUID returns a random v4 UUID drawn from the seeded faker, so identifiers
// are reproducible for a fixed seed.
func (f *Faker) UUID() uuid.UUID {
	return uuid.MustParse(f.fake.UUID())
}

// DateRange returns a uniform timestamp between start and end.
func (f *Faker) DateRange(start, end time.Time) time.Time {
	return f.fake.DateRange(start, end)
}

// FirstName returns a fake given name.
func (f *Faker) FirstName() string { return f.fake.FirstName() }

// LastName returns a fake family name.
func (f *Faker) LastName() string { return f.fake.LastName() }

// Email returns a fake email address.
func (f *Faker) Email() string { return f.fake.Email() }

// Phone returns a fake phone number.
func (f *Faker) Phone() string { return f.fake.Phone() }

// Street returns a fake street address line.
func (f *Faker) Street() string { return f.fake.Street() }

// City returns a fake city name.
func (f *Faker) City() string { return f.fake.City() }

// State returns a fake state name.
func (f *Faker) State() string { return f.fake.State() }

// Zip returns a fake postal code.
func (f *Faker) Zip() string { return f.fake.Zip() }

// Company returns a fake company name.
func (f *Faker) Company() string { return f.fake.Company() }

// Word returns a single fake word.
func (f *Faker) Word() string { return f.fake.Word() }

// Sentence returns a fake sentence of the given word count.
func (f *Faker) Sentence(wordCount int) string { return f.fake.Sentence(wordCount) }

// ProductName returns a fake product display name.
func (f *Faker) ProductName() string { return f.fake.ProductName() }

// SKU returns a formatted stock keeping unit code like "SKU-4821-QZPX".
func (f *Faker) SKU() string {
	return f.fake.Numerify("SKU-####-") + f.fake.LetterN(4)
}
