package datagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaker_DeterministicForSeed(t *testing.T) {
	first := New(42)
	second := New(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, first.IntRange(0, 1000), second.IntRange(0, 1000))
	}
	assert.Equal(t, first.UUID(), second.UUID())
	assert.Equal(t, first.Email(), second.Email())
	assert.Equal(t, first.SKU(), second.SKU())
}

func TestFaker_IntRange(t *testing.T) {
	f := New(42)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := f.IntRange(3, 7)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 7)
		seen[v] = true
	}

	// Both bounds are inclusive and reachable.
	assert.True(t, seen[3])
	assert.True(t, seen[7])

	assert.Equal(t, 5, f.IntRange(5, 5))
	assert.Equal(t, 5, f.IntRange(5, 2), "degenerate range collapses to min")
}

func TestFaker_Float64Range(t *testing.T) {
	f := New(42)

	for i := 0; i < 1000; i++ {
		v := f.Float64Range(0.5, 2.5)
		require.GreaterOrEqual(t, v, 0.5)
		require.Less(t, v, 2.5)
	}
}

func TestFaker_Chance(t *testing.T) {
	f := New(42)

	hits := 0
	for i := 0; i < 10000; i++ {
		if f.Chance(0.3) {
			hits++
		}
	}

	assert.InDelta(t, 3000, hits, 300)
	assert.False(t, f.Chance(0))
	assert.True(t, f.Chance(1))
}

func TestFaker_SKU_Format(t *testing.T) {
	f := New(42)

	sku := f.SKU()
	require.Len(t, sku, 13)
	assert.Regexp(t, `^SKU-\d{4}-[a-zA-Z]{4}$`, sku)
}

func TestPick(t *testing.T) {
	f := New(42)
	items := []string{"a", "b", "c"}

	seen := make(map[string]int)
	for i := 0; i < 300; i++ {
		seen[Pick(f, items)]++
	}

	for _, item := range items {
		assert.Positive(t, seen[item])
	}
}
