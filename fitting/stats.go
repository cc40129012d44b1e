package fitting

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DegreeSource is the read-only view the statistics need; *core.Graph
// satisfies it.
type DegreeSource interface {
	DegreeSnapshot() ([]int64, []int)
	NeighborAverageDegree(id int64) (float64, error)
}

// Series is a set of (X[i], Y[i]) points, X sorted descending.
type Series struct {
	X []float64
	Y []float64
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.X) }

// DegreeDistribution returns, for every degree k present, the fraction of
// nodes having degree k. An empty graph yields an empty series.
func DegreeDistribution(g DegreeSource) Series {
	_, degrees := g.DegreeSnapshot()
	n := len(degrees)
	if n == 0 {
		return Series{}
	}

	counts := make(map[int]int)
	for _, d := range degrees {
		counts[d]++
	}
	ks := descendingKeys(counts)

	s := Series{X: make([]float64, len(ks)), Y: make([]float64, len(ks))}
	for i, k := range ks {
		s.X[i] = float64(k)
		s.Y[i] = float64(counts[k]) / float64(n)
	}

	return s
}

// DegreeCorrelation returns, for every degree k present, the mean over nodes
// of degree k of their neighbors' average degree. Isolated nodes contribute
// a neighbor average of 0 at k = 0.
func DegreeCorrelation(g DegreeSource) (Series, error) {
	ids, degrees := g.DegreeSnapshot()

	byDegree := make(map[int][]float64)
	for i, id := range ids {
		knn, err := g.NeighborAverageDegree(id)
		if err != nil {
			return Series{}, fmt.Errorf("DegreeCorrelation: node %d: %w", id, err)
		}
		byDegree[degrees[i]] = append(byDegree[degrees[i]], knn)
	}
	ks := descendingKeys(byDegree)

	s := Series{X: make([]float64, len(ks)), Y: make([]float64, len(ks))}
	for i, k := range ks {
		s.X[i] = float64(k)
		s.Y[i] = stat.Mean(byDegree[k], nil)
	}

	return s, nil
}

// FitDegreeDistribution fits a power law to DegreeDistribution(g).
func FitDegreeDistribution(g DegreeSource) (PowerLaw, Series, error) {
	s := DegreeDistribution(g)
	law, err := Fit(s.X, s.Y)
	if err != nil {
		return PowerLaw{}, s, fmt.Errorf("FitDegreeDistribution: %w", err)
	}

	return law, s, nil
}

// FitDegreeCorrelation fits a power law to DegreeCorrelation(g).
func FitDegreeCorrelation(g DegreeSource) (PowerLaw, Series, error) {
	s, err := DegreeCorrelation(g)
	if err != nil {
		return PowerLaw{}, s, err
	}
	law, err := Fit(s.X, s.Y)
	if err != nil {
		return PowerLaw{}, s, fmt.Errorf("FitDegreeCorrelation: %w", err)
	}

	return law, s, nil
}

func descendingKeys[V any](m map[int]V) []int {
	ks := make([]int, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ks)))

	return ks
}
