// SPDX-License-Identifier: MIT
// Package viz: heatmap rendering.
//
// Contract:
//   - DensityMap validates options, then grid/density shapes, then the
//     overlay, before touching the filesystem.
//   - The density matrix is read through the plotter.GridXYZ adapter below;
//     row i maps to YS()[i], column j to XS()[j], matching grid.Evaluate.

package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/gmix/grid"
)

// heatData adapts a grid plus its density matrix onto plotter.GridXYZ.
type heatData struct {
	xs, ys []float64
	dens   *mat.Dense
}

func (h heatData) Dims() (c, r int)   { return len(h.xs), len(h.ys) }
func (h heatData) X(c int) float64    { return h.xs[c] }
func (h heatData) Y(r int) float64    { return h.ys[r] }
func (h heatData) Z(c, r int) float64 { return h.dens.At(r, c) }

// DensityMap draws dens as a heatmap over g's window, overlays the rows of
// points (may be nil for no overlay), and saves the figure to path. The
// image format follows the file extension.
//
// Errors:
//   - ErrBadOption         — any option outside its documented domain.
//   - ErrNilGrid           — g is nil.
//   - ErrNilDensity        — dens is nil.
//   - ErrShapeMismatch     — dens is not g.Rows×g.Cols.
//   - ErrDimensionMismatch — points present but not two-column.
//   - ErrBadPath           — empty path.
//
// Rendering or I/O failures from the plot stack are returned wrapped.
// Complexity: O(Rows·Cols + n) plus image encoding.
func DensityMap(g *grid.Grid, dens *mat.Dense, points *mat.Dense, path string, opts *Options) error {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return err
	}
	if g == nil {
		return fmt.Errorf("DensityMap: %w", ErrNilGrid)
	}
	if dens == nil {
		return fmt.Errorf("DensityMap: %w", ErrNilDensity)
	}
	rows, cols := dens.Dims()
	if rows != g.Rows || cols != g.Cols {
		return fmt.Errorf("DensityMap: density %dx%d for a %dx%d grid: %w",
			rows, cols, g.Rows, g.Cols, ErrShapeMismatch)
	}
	if points != nil {
		if _, pc := points.Dims(); pc != 2 {
			return fmt.Errorf("DensityMap: points have %d columns: %w", pc, ErrDimensionMismatch)
		}
	}
	if path == "" {
		return fmt.Errorf("DensityMap: %w", ErrBadPath)
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	heat := plotter.NewHeatMap(
		heatData{xs: g.XS(), ys: g.YS(), dens: dens},
		palette.Heat(o.PaletteColors, 1),
	)
	p.Add(heat)

	if points != nil {
		n, _ := points.Dims()
		xys := make(plotter.XYs, n)
		for i := 0; i < n; i++ {
			row := points.RawRowView(i)
			xys[i].X, xys[i].Y = row[0], row[1]
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("DensityMap: scatter: %w", err)
		}
		scatter.GlyphStyle.Radius = vg.Points(o.PointRadius)
		scatter.GlyphStyle.Color = color.RGBA{A: 255}
		p.Add(scatter)
	}

	if err := p.Save(vg.Points(o.Width), vg.Points(o.Height), path); err != nil {
		return fmt.Errorf("DensityMap: save %q: %w", path, err)
	}

	return nil
}

// wrapOption annotates ErrBadOption with the offending field name.
func wrapOption(field string) error {
	return fmt.Errorf("options.%s out of domain: %w", field, ErrBadOption)
}
