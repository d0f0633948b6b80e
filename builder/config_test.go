// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Equal(t, 1, cfg.idFn(0))
	assert.Equal(t, 8, cfg.idFn(7))
	assert.Nil(t, cfg.rng)
	assert.Equal(t, DefaultEdgeWeight, cfg.weight())
}

func TestOptions_LastWins(t *testing.T) {
	cfg := newBuilderConfig(WithConstantWeight(4), WithConstantWeight(9))
	assert.Equal(t, int64(9), cfg.weight())

	cfg = newBuilderConfig(WithIDScheme(func(i int) int { return 10 - i }))
	assert.Equal(t, 10, cfg.idFn(0))
}

func TestOptions_SeedReproducible(t *testing.T) {
	a := newBuilderConfig(WithSeed(5), WithUniformWeight(1, 1000))
	b := newBuilderConfig(WithRand(rand.New(rand.NewSource(5))), WithUniformWeight(1, 1000))
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.weight(), b.weight())
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithWeightFn(nil) })
	assert.Panics(t, func() { ConstantWeightFn(-1) })
	assert.Panics(t, func() { UniformWeightFn(5, 4) })
	assert.Panics(t, func() { UniformWeightFn(-1, 4) })
}

func TestUniformWeightFn_Range(t *testing.T) {
	fn := UniformWeightFn(3, 6)
	assert.Equal(t, int64(3), fn(nil))

	rng := rand.New(rand.NewSource(1))
	seen := make(map[int64]bool)
	for i := 0; i < 200; i++ {
		w := fn(rng)
		assert.GreaterOrEqual(t, w, int64(3))
		assert.LessOrEqual(t, w, int64(6))
		seen[w] = true
	}
	assert.Len(t, seen, 4, "both bounds are inclusive")
}

func TestShift_ComposesDisjointRanges(t *testing.T) {
	g, err := BuildGraph(6, nil, Path(3), Shift(3, Path(3)))
	assert.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 0, 0, 1, 1, 1}, g.Components())
}
