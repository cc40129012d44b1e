package sampler_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgrowth/sampler"
)

func TestSampleWithoutReplacement_FullPopulation(t *testing.T) {
	rng := sampler.NewRand(7)
	weights := []float64{1, 5, 2, 9, 3}

	got, err := sampler.SampleWithoutReplacement(rng, weights, len(weights))
	require.NoError(t, err)
	sort.Ints(got)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got, "every index exactly once")
}

func TestSampleWithoutReplacement_Errors(t *testing.T) {
	rng := sampler.NewRand(1)

	tests := []struct {
		name    string
		weights []float64
		k       int
		wantErr error
	}{
		{"k exceeds population", []float64{1, 1}, 3, sampler.ErrInsufficientPopulation},
		{"empty population", nil, 1, sampler.ErrInsufficientPopulation},
		{"negative k", []float64{1}, -1, sampler.ErrInvalidParameter},
		{"negative weight", []float64{1, -2}, 1, sampler.ErrInvalidParameter},
		{"nan weight", []float64{math.NaN()}, 1, sampler.ErrInvalidParameter},
		{"all zero", []float64{0, 0, 0}, 1, sampler.ErrDegenerateWeights},
		{"too few positive", []float64{0, 3, 0}, 2, sampler.ErrDegenerateWeights},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sampler.SampleWithoutReplacement(rng, tc.weights, tc.k)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSampleWithoutReplacement_ZeroK(t *testing.T) {
	got, err := sampler.SampleWithoutReplacement(sampler.NewRand(1), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSampleWithoutReplacement_SkipsZeroWeights(t *testing.T) {
	rng := sampler.NewRand(3)
	for i := 0; i < 200; i++ {
		got, err := sampler.SampleWithoutReplacement(rng, []float64{0, 2, 0, 1}, 2)
		require.NoError(t, err)
		sort.Ints(got)
		require.Equal(t, []int{1, 3}, got)
	}
}

func TestSampleWithReplacement_Frequencies(t *testing.T) {
	rng := sampler.NewRand(42)
	weights := []float64{1, 2, 7}
	const draws = 30000

	counts := make([]int, len(weights))
	for i := 0; i < draws; i++ {
		idx, err := sampler.SampleWithReplacement(rng, weights)
		require.NoError(t, err)
		counts[idx]++
	}
	for i, w := range weights {
		assert.InDelta(t, w/10, float64(counts[i])/draws, 0.02, "index %d", i)
	}
}

func TestSampleWithReplacement_Degenerate(t *testing.T) {
	rng := sampler.NewRand(1)
	_, err := sampler.SampleWithReplacement(rng, []float64{0, 0})
	require.ErrorIs(t, err, sampler.ErrDegenerateWeights)

	_, err = sampler.SampleWithReplacement(rng, nil)
	require.ErrorIs(t, err, sampler.ErrDegenerateWeights)
}

func TestUniform(t *testing.T) {
	rng := sampler.NewRand(9)
	got, err := sampler.Uniform(rng, 6, 6)
	require.NoError(t, err)
	sort.Ints(got)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, got)

	_, err = sampler.Uniform(rng, 2, 3)
	require.ErrorIs(t, err, sampler.ErrInsufficientPopulation)

	_, err = sampler.Uniform(rng, -1, 0)
	require.ErrorIs(t, err, sampler.ErrInvalidParameter)
}

func TestBernoulli(t *testing.T) {
	rng := sampler.NewRand(5)
	for i := 0; i < 500; i++ {
		ok, err := sampler.Bernoulli(rng, 0)
		require.NoError(t, err)
		require.False(t, ok)

		ok, err = sampler.Bernoulli(rng, 1)
		require.NoError(t, err)
		require.True(t, ok)
	}

	for _, p := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := sampler.Bernoulli(rng, p)
		require.ErrorIs(t, err, sampler.ErrInvalidParameter, "p=%v", p)
	}
}

func TestDegreeWeights(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 4}, sampler.DegreeWeights([]int{0, 1, 3}))
	assert.Empty(t, sampler.DegreeWeights(nil))
}

func TestNewRand_Deterministic(t *testing.T) {
	a, b := sampler.NewRand(11), sampler.NewRand(11)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}
