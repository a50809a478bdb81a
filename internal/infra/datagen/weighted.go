package datagen

import (
	"github.com/pkg/errors"
)

// WeightedItem pairs one outcome with its relative weight.
type WeightedItem[T any] struct {
	Value  T
	Weight float64
}

// Item is a convenience constructor for a WeightedItem.
func Item[T any](value T, weight float64) WeightedItem[T] {
	return WeightedItem[T]{Value: value, Weight: weight}
}

// Weighted samples one of a fixed set of outcomes with probability
// proportional to its weight. The outcome order is fixed at construction, so
// sampling is deterministic for a seeded generator.
type Weighted[T any] struct {
	items []WeightedItem[T]
	total float64
}

// NewWeighted builds a weighted chooser from the given items. Weights must be
// non-negative and sum to a positive value.
func NewWeighted[T any](items ...WeightedItem[T]) (*Weighted[T], error) {
	if len(items) == 0 {
		return nil, errors.New("weighted choice requires at least one item")
	}

	var total float64
	for _, item := range items {
		if item.Weight < 0 {
			return nil, errors.Errorf("negative weight %v", item.Weight)
		}
		total += item.Weight
	}
	if total <= 0 {
		return nil, errors.New("weights must sum to a positive value")
	}

	return &Weighted[T]{items: items, total: total}, nil
}

// MustWeighted is NewWeighted that panics on invalid input. Intended for
// package-level tables with literal weights.
func MustWeighted[T any](items ...WeightedItem[T]) *Weighted[T] {
	w, err := NewWeighted(items...)
	if err != nil {
		panic(err)
	}

	return w
}

// Pick samples one outcome using the given faker's generator.
func (w *Weighted[T]) Pick(f *Faker) T {
	target := f.Rand().Float64() * w.total

	var cum float64
	for _, item := range w.items {
		cum += item.Weight
		if target < cum {
			return item.Value
		}
	}

	// Float accumulation can land exactly on total; return the last outcome.
	return w.items[len(w.items)-1].Value
}
