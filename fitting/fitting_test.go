package fitting_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgrowth/builder"
	"github.com/katalvlaran/netgrowth/core"
	"github.com/katalvlaran/netgrowth/fitting"
)

func powerSeries(a, b float64, n int) (x, y []float64) {
	for i := 1; i <= n; i++ {
		x = append(x, float64(i))
		y = append(y, b*math.Pow(float64(i), a))
	}
	return x, y
}

func TestFit_RecoversExactLaw(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
	}{
		{"decaying", -1.5, 2.0},
		{"growing", 0.5, 3.0},
		{"flat", 0, 1.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := powerSeries(tc.a, tc.b, 50)
			law, err := fitting.Fit(x, y)
			require.NoError(t, err)
			assert.InDelta(t, tc.a, law.A, 0.01*math.Max(1, math.Abs(tc.a)))
			assert.InDelta(t, tc.b, law.B, 0.01*tc.b)
			assert.Less(t, law.SSE, 1e-6)
		})
	}
}

func TestFit_NoisyData(t *testing.T) {
	x, y := powerSeries(-2, 5, 40)
	for i := range y {
		// deterministic ±3% wobble
		if i%2 == 0 {
			y[i] *= 1.03
		} else {
			y[i] *= 0.97
		}
	}
	law, err := fitting.Fit(x, y)
	require.NoError(t, err)
	assert.InDelta(t, -2, law.A, 0.15)
	assert.InDelta(t, 5, law.B, 0.4)
}

func TestFit_DropsNonPositiveX(t *testing.T) {
	x, y := powerSeries(-1, 4, 20)
	x = append([]float64{0, -3}, x...)
	y = append([]float64{100, 7}, y...)

	law, err := fitting.Fit(x, y)
	require.NoError(t, err)
	assert.InDelta(t, -1, law.A, 0.01)
	assert.InDelta(t, 4, law.B, 0.04)
}

func TestFit_ZeroYStillFits(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{1, 0.5, 0, 0.25}
	law, err := fitting.Fit(x, y)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(law.A))
	assert.False(t, math.IsNaN(law.B))
}

func TestFit_Errors(t *testing.T) {
	_, err := fitting.Fit([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, fitting.ErrLengthMismatch)

	_, err = fitting.Fit(nil, nil)
	assert.ErrorIs(t, err, fitting.ErrTooFewPoints)

	_, err = fitting.Fit([]float64{3}, []float64{1})
	assert.ErrorIs(t, err, fitting.ErrTooFewPoints)

	_, err = fitting.Fit([]float64{0, -1, -2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, fitting.ErrTooFewPoints)
}

func TestPowerLaw_Eval(t *testing.T) {
	law := fitting.PowerLaw{A: -2, B: 8}
	assert.InDelta(t, 2.0, law.Eval(2), 1e-12)
	assert.InDelta(t, 8.0, law.Eval(1), 1e-12)
}

// star 0-{1,2,3} plus 1-2, and isolated 4.
func statsGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewEmptyGraph(5)
	for _, e := range [][2]int64{{0, 1}, {0, 2}, {0, 3}, {1, 2}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestDegreeDistribution(t *testing.T) {
	s := fitting.DegreeDistribution(statsGraph(t))
	assert.Equal(t, []float64{3, 2, 1, 0}, s.X)
	assert.InDeltaSlice(t, []float64{0.2, 0.4, 0.2, 0.2}, s.Y, 1e-12)
	assert.Equal(t, 4, s.Len())

	assert.Zero(t, fitting.DegreeDistribution(core.NewGraph()).Len())
}

func TestDegreeCorrelation(t *testing.T) {
	s, err := fitting.DegreeCorrelation(statsGraph(t))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 1, 0}, s.X)
	assert.InDeltaSlice(t, []float64{5.0 / 3.0, 2.5, 3, 0}, s.Y, 1e-12)
}

func TestFitDegreeStatistics_OnGrownGraph(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(11)},
		builder.NoPreferentialAttachment(1500, 2),
	)
	require.NoError(t, err)

	law, s, err := fitting.FitDegreeDistribution(g)
	require.NoError(t, err)
	assert.Greater(t, s.Len(), 2)
	assert.Less(t, law.A, 0.0, "degree fractions fall with k")

	_, cs, err := fitting.FitDegreeCorrelation(g)
	require.NoError(t, err)
	assert.Equal(t, s.X, cs.X)
}

func TestFitDegreeDistribution_TooFewDegrees(t *testing.T) {
	// every node has degree 1: a single usable point
	g := core.NewEmptyGraph(2)
	require.NoError(t, g.AddEdge(0, 1))
	_, _, err := fitting.FitDegreeDistribution(g)
	assert.ErrorIs(t, err, fitting.ErrTooFewPoints)
}

func TestPlot(t *testing.T) {
	x, y := powerSeries(-1.5, 2, 30)
	law, err := fitting.Fit(x, y)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"dist.png", "dist.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, fitting.Plot(path, x, y, law, fitting.PlotOptions{Title: "degree distribution", XLabel: "k", YLabel: "P(k)"}))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestPlot_Errors(t *testing.T) {
	dir := t.TempDir()
	err := fitting.Plot(filepath.Join(dir, "a.png"), []float64{1}, nil, fitting.PowerLaw{}, fitting.PlotOptions{})
	assert.ErrorIs(t, err, fitting.ErrLengthMismatch)

	err = fitting.Plot(filepath.Join(dir, "b.png"), []float64{0, -1}, []float64{1, 1}, fitting.PowerLaw{}, fitting.PlotOptions{})
	assert.ErrorIs(t, err, fitting.ErrTooFewPoints)
}
