package fitting

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotOptions tunes Plot output. Zero values pick the defaults below.
type PlotOptions struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

const (
	defaultPlotSize = 5 * vg.Inch
	fitCurvePoints  = 64
)

// Plot writes a log–log scatter of (x, y) with law drawn over the same x
// range. The format follows the file extension of path (png, svg, pdf…).
// Points with x ≤ 0 or y ≤ 0 cannot sit on log axes and are left out.
func Plot(path string, x, y []float64, law PowerLaw, opts PlotOptions) error {
	if len(x) != len(y) {
		return fmt.Errorf("Plot: len(x)=%d len(y)=%d: %w", len(x), len(y), ErrLengthMismatch)
	}
	var pts plotter.XYs
	for i := range x {
		if x[i] > 0 && y[i] > 0 {
			pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
		}
	}
	if len(pts) == 0 {
		return fmt.Errorf("Plot: no positive points: %w", ErrTooFewPoints)
	}

	p := plot.New()
	p.Title.Text = plotTitle(opts.Title, law)
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.X.Scale, p.Y.Scale = plot.LogScale{}, plot.LogScale{}
	p.X.Tick.Marker, p.Y.Tick.Marker = plot.LogTicks{Prec: -1}, plot.LogTicks{Prec: -1}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("Plot: scatter: %w", err)
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(sc)
	p.Legend.Add("data", sc)

	if curve := fitCurve(pts, law); len(curve) > 1 {
		ln, err := plotter.NewLine(curve)
		if err != nil {
			return fmt.Errorf("Plot: fit line: %w", err)
		}
		ln.LineStyle.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
		ln.LineStyle.Width = vg.Points(1.5)
		p.Add(ln)
		p.Legend.Add(law.String(), ln)
	}

	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = defaultPlotSize
	}
	if h <= 0 {
		h = defaultPlotSize
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("Plot: save %q: %w", path, err)
	}

	return nil
}

// plotTitle shows the fitted exponent both as a and as gamma = -a, the
// usual scale-free exponent of P(k) ~ k^-gamma.
func plotTitle(title string, law PowerLaw) string {
	fit := fmt.Sprintf("a = %.4f, gamma = %.4f", law.A, law.Gamma())
	if title == "" {
		return fit
	}

	return title + "  (" + fit + ")"
}

// fitCurve samples law at log-spaced x across the data range, keeping only
// positive finite values.
func fitCurve(pts plotter.XYs, law PowerLaw) plotter.XYs {
	xs := make([]float64, len(pts))
	for i := range pts {
		xs[i] = pts[i].X
	}
	lo, hi := floats.Min(xs), floats.Max(xs)
	if lo == hi {
		return nil
	}

	grid := floats.LogSpan(make([]float64, fitCurvePoints), lo, hi)
	var curve plotter.XYs
	for _, gx := range grid {
		gy := law.Eval(gx)
		if gy > 0 && !math.IsInf(gy, 0) && !math.IsNaN(gy) {
			curve = append(curve, plotter.XY{X: gx, Y: gy})
		}
	}

	return curve
}
