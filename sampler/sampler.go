package sampler

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Sentinel errors.
var (
	// ErrInvalidParameter indicates a parameter outside its documented domain.
	ErrInvalidParameter = errors.New("sampler: invalid parameter")

	// ErrInsufficientPopulation indicates more distinct draws than items.
	ErrInsufficientPopulation = errors.New("sampler: insufficient population")

	// ErrDegenerateWeights indicates an empty or all-zero weight vector.
	ErrDegenerateWeights = errors.New("sampler: degenerate weights")
)

// Smoothing is added to every degree so isolated nodes stay selectable.
const Smoothing = 1.0

// NewRand returns a PCG-backed generator seeded deterministically from seed.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// DegreeWeights builds the smoothed weight vector degree+Smoothing.
// The vector is fresh on every call and must not be reused across mutations.
func DegreeWeights(degrees []int) []float64 {
	w := make([]float64, len(degrees))
	for i, d := range degrees {
		w[i] = float64(d) + Smoothing
	}

	return w
}

// SampleWithoutReplacement returns k distinct indices into weights. Each
// draw picks an index with probability proportional to its weight among the
// indices not yet chosen.
//
// Errors:
//   - ErrInvalidParameter: k < 0 or a weight is negative, NaN or infinite.
//   - ErrInsufficientPopulation: k > len(weights).
//   - ErrDegenerateWeights: fewer than k indices carry positive weight.
//
// Complexity: O(N + k·log N).
func SampleWithoutReplacement(rng *rand.Rand, weights []float64, k int) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("SampleWithoutReplacement: k=%d: %w", k, ErrInvalidParameter)
	}
	if k > len(weights) {
		return nil, fmt.Errorf("SampleWithoutReplacement: k=%d > population=%d: %w",
			k, len(weights), ErrInsufficientPopulation)
	}
	positive, err := validate(weights)
	if err != nil {
		return nil, err
	}
	if k == 0 {
		return []int{}, nil
	}
	if positive < k {
		return nil, fmt.Errorf("SampleWithoutReplacement: %d positive weights for k=%d: %w",
			positive, k, ErrDegenerateWeights)
	}

	w := sampleuv.NewWeighted(weights, rng)
	out := make([]int, 0, k)
	for len(out) < k {
		idx, ok := w.Take()
		if !ok {
			return nil, fmt.Errorf("SampleWithoutReplacement: depleted after %d draws: %w",
				len(out), ErrDegenerateWeights)
		}
		out = append(out, idx)
	}

	return out, nil
}

// SampleWithReplacement returns one index with probability proportional to
// its weight. The weight vector is not modified.
//
// Errors:
//   - ErrInvalidParameter: a weight is negative, NaN or infinite.
//   - ErrDegenerateWeights: weights is empty or sums to zero.
func SampleWithReplacement(rng *rand.Rand, weights []float64) (int, error) {
	positive, err := validate(weights)
	if err != nil {
		return 0, err
	}
	if positive == 0 {
		return 0, fmt.Errorf("SampleWithReplacement: %w", ErrDegenerateWeights)
	}
	idx, ok := sampleuv.NewWeighted(weights, rng).Take()
	if !ok {
		return 0, fmt.Errorf("SampleWithReplacement: %w", ErrDegenerateWeights)
	}

	return idx, nil
}

// Uniform returns k distinct indices drawn uniformly from [0,n).
func Uniform(rng *rand.Rand, n, k int) ([]int, error) {
	if n < 0 || k < 0 {
		return nil, fmt.Errorf("Uniform: n=%d k=%d: %w", n, k, ErrInvalidParameter)
	}
	if k > n {
		return nil, fmt.Errorf("Uniform: k=%d > population=%d: %w", k, n, ErrInsufficientPopulation)
	}
	out := make([]int, k)
	sampleuv.WithoutReplacement(out, n, rng)

	return out, nil
}

// Bernoulli returns true with probability p. p=0 never succeeds, p=1 always does.
func Bernoulli(rng *rand.Rand, p float64) (bool, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return false, fmt.Errorf("Bernoulli: p=%g not in [0,1]: %w", p, ErrInvalidParameter)
	}
	b := distuv.Bernoulli{P: p, Src: rng}

	return b.Rand() == 1, nil
}

// validate rejects negative or non-finite weights and counts positive ones.
func validate(weights []float64) (positive int, err error) {
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return 0, fmt.Errorf("weight[%d]=%g: %w", i, w, ErrInvalidParameter)
		}
		if w > 0 {
			positive++
		}
	}

	return positive, nil
}
