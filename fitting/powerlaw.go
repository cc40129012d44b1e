package fitting

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors.
var (
	// ErrLengthMismatch indicates x and y differ in length.
	ErrLengthMismatch = errors.New("fitting: x and y lengths differ")

	// ErrTooFewPoints indicates fewer than two usable (x>0) points.
	ErrTooFewPoints = errors.New("fitting: too few points")

	// ErrFitFailed indicates the optimizer produced no finite solution.
	ErrFitFailed = errors.New("fitting: optimization failed")
)

// minPoints is the smallest sample a two-parameter fit accepts.
const minPoints = 2

// PowerLaw holds the fitted parameters of y = B·x^A and the residual sum of
// squares at the solution.
type PowerLaw struct {
	A   float64
	B   float64
	SSE float64
}

// Eval returns B·x^A.
func (p PowerLaw) Eval(x float64) float64 {
	return p.B * math.Pow(x, p.A)
}

// Gamma returns -A, the exponent in the P(k) ~ k^-gamma convention.
func (p PowerLaw) Gamma() float64 {
	return -p.A
}

// String formats the law the way reports print it.
func (p PowerLaw) String() string {
	return fmt.Sprintf("a : %g,   b : %g,   gamma : %g", p.A, p.B, p.Gamma())
}

// Fit fits y = b·xᵃ to the points (x[i], y[i]) by nonlinear least squares.
//
// Points with x ≤ 0 or a non-finite coordinate are dropped. The starting
// point comes from regressing ln y on ln x over points with y > 0; BFGS with
// an analytic gradient then minimizes Σ(b·xᵃ − y)². If the optimizer stops
// with an error, the better of its last iterate and the starting point is
// returned, as long as it is finite.
func Fit(x, y []float64) (PowerLaw, error) {
	if len(x) != len(y) {
		return PowerLaw{}, fmt.Errorf("Fit: len(x)=%d len(y)=%d: %w", len(x), len(y), ErrLengthMismatch)
	}
	xs, ys := usable(x, y)
	if len(xs) < minPoints {
		return PowerLaw{}, fmt.Errorf("Fit: %d usable point(s): %w", len(xs), ErrTooFewPoints)
	}

	init := initialGuess(xs, ys)
	sse := func(p []float64) float64 {
		var s float64
		for i := range xs {
			r := p[1]*math.Pow(xs[i], p[0]) - ys[i]
			s += r * r
		}
		return s
	}
	grad := func(g, p []float64) {
		g[0], g[1] = 0, 0
		for i := range xs {
			xa := math.Pow(xs[i], p[0])
			r := p[1]*xa - ys[i]
			g[0] += 2 * r * p[1] * xa * math.Log(xs[i])
			g[1] += 2 * r * xa
		}
	}

	best := PowerLaw{A: init[0], B: init[1], SSE: sse(init)}
	res, err := optimize.Minimize(optimize.Problem{Func: sse, Grad: grad}, init, nil, &optimize.BFGS{})
	if res != nil && finite(res.X) && !math.IsNaN(res.F) && (res.F <= best.SSE || math.IsNaN(best.SSE)) {
		best = PowerLaw{A: res.X[0], B: res.X[1], SSE: res.F}
	}
	if !finite([]float64{best.A, best.B, best.SSE}) {
		if err == nil {
			err = errors.New("non-finite solution")
		}
		return PowerLaw{}, fmt.Errorf("Fit: %v: %w", err, ErrFitFailed)
	}

	return best, nil
}

// usable keeps points with x > 0 and finite coordinates.
func usable(x, y []float64) (xs, ys []float64) {
	for i := range x {
		if x[i] > 0 && !math.IsInf(x[i], 0) && !math.IsNaN(y[i]) && !math.IsInf(y[i], 0) {
			xs = append(xs, x[i])
			ys = append(ys, y[i])
		}
	}

	return xs, ys
}

// initialGuess regresses ln y on ln x. Without two distinct positive points
// it falls back to a flat line through the mean.
func initialGuess(xs, ys []float64) []float64 {
	var lx, ly []float64
	for i := range xs {
		if ys[i] > 0 {
			lx = append(lx, math.Log(xs[i]))
			ly = append(ly, math.Log(ys[i]))
		}
	}
	if len(lx) >= minPoints && floats.Max(lx) > floats.Min(lx) {
		alpha, beta := stat.LinearRegression(lx, ly, nil, false)
		return []float64{beta, math.Exp(alpha)}
	}

	return []float64{0, stat.Mean(ys, nil)}
}

func finite(v []float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}

	return true
}
