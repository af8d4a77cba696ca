// Package chart draws edge profiles and fitted models with gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var (
	// ErrNoSeries is returned when there is nothing finite to draw.
	ErrNoSeries = errors.New("chart: no series to draw")

	// ErrLength is returned when a series has len(X) != len(Y).
	ErrLength = errors.New("chart: series X and Y lengths differ")
)

// Series is one labelled curve. Non-finite samples (NaN padding) are skipped.
type Series struct {
	Label  string
	X, Y   []float64
	Dashed bool
}

// Options control the figure.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns a 10x5 inch figure with profile axis labels.
func DefaultOptions() Options {
	return Options{
		Title:  "Edge profiles",
		XLabel: "x",
		YLabel: "height",
		Width:  10 * vg.Inch,
		Height: 5 * vg.Inch,
	}
}

// Render builds the plot without writing it.
func Render(series []Series, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	drawn := 0
	for i, s := range series {
		if len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("%w: series %q: %d vs %d", ErrLength, s.Label, len(s.X), len(s.Y))
		}
		pts := finitePoints(s.X, s.Y)
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("chart: series %q: %w", s.Label, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		if s.Dashed {
			line.Dashes = plotutil.Dashes(1)
		}
		p.Add(line)
		if s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
		drawn++
	}
	if drawn == 0 {
		return nil, ErrNoSeries
	}
	p.Legend.Top = true

	return p, nil
}

// Profiles renders series and saves the figure to path. The image format
// follows the extension (.png, .svg, .pdf, .jpg, ...).
func Profiles(path string, series []Series, opts Options) error {
	p, err := Render(series, opts)
	if err != nil {
		return err
	}
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		d := DefaultOptions()
		w, h = d.Width, d.Height
	}
	if err = p.Save(w, h, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}

	return nil
}

func finitePoints(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(x))
	for i := range x {
		if isFinite(x[i]) && isFinite(y[i]) {
			pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
		}
	}

	return pts
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
