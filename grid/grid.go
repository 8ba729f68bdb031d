// SPDX-License-Identifier: MIT
// Package grid: construction and evaluation.
//
// Contract:
//   - New validates extents and resolution; a constructed Grid is immutable.
//   - Axis nodes are evenly spaced and include both endpoints (linspace).
//   - Evaluate never inspects f's output: NaN/Inf densities are the
//     caller's responsibility (a valid model never produces them).

package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gmix/mixture"
)

// planeDim is the only dimensionality a Grid can rasterize.
const planeDim = 2

// Grid is a Cols×Rows mesh of evaluation nodes over the window
// [XMin,XMax]×[YMin,YMax]. Construct via New or FromData; the zero value
// is not usable. Fields are exported for inspection, not mutation.
type Grid struct {
	XMin, XMax float64
	YMin, YMax float64
	Cols, Rows int
}

// New returns a grid over the given window with cols×rows nodes.
//
// Errors: ErrBadExtent (max ≤ min or non-finite bound), ErrBadSteps
// (cols or rows < 2).
func New(xmin, xmax, ymin, ymax float64, cols, rows int) (*Grid, error) {
	for _, v := range [...]float64{xmin, xmax, ymin, ymax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("New: bound %v: %w", v, ErrBadExtent)
		}
	}
	if xmax <= xmin || ymax <= ymin {
		return nil, fmt.Errorf("New: window [%v,%v]x[%v,%v]: %w", xmin, xmax, ymin, ymax, ErrBadExtent)
	}
	if cols < 2 || rows < 2 {
		return nil, fmt.Errorf("New: %dx%d nodes: %w", cols, rows, ErrBadSteps)
	}

	return &Grid{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax, Cols: cols, Rows: rows}, nil
}

// FromData returns a grid spanning the bounding box of a 2-D dataset,
// widened by margin on every side — the usual way to frame a density plot
// around the points it was fitted to.
//
// Errors: ErrEmptyData, ErrDimensionMismatch, ErrBadMargin, plus New's.
// Complexity: O(n).
func FromData(data *mat.Dense, margin float64, cols, rows int) (*Grid, error) {
	if data == nil {
		return nil, fmt.Errorf("FromData: data is nil: %w", ErrEmptyData)
	}
	n, d := data.Dims()
	if n == 0 {
		return nil, fmt.Errorf("FromData: data has no rows: %w", ErrEmptyData)
	}
	if d != planeDim {
		return nil, fmt.Errorf("FromData: data has %d columns: %w", d, ErrDimensionMismatch)
	}
	if margin < 0 || math.IsNaN(margin) || math.IsInf(margin, 0) {
		return nil, fmt.Errorf("FromData: margin=%v: %w", margin, ErrBadMargin)
	}

	xmin, xmax := data.At(0, 0), data.At(0, 0)
	ymin, ymax := data.At(0, 1), data.At(0, 1)
	for i := 1; i < n; i++ {
		row := data.RawRowView(i)
		xmin = math.Min(xmin, row[0])
		xmax = math.Max(xmax, row[0])
		ymin = math.Min(ymin, row[1])
		ymax = math.Max(ymax, row[1])
	}

	return New(xmin-margin, xmax+margin, ymin-margin, ymax+margin, cols, rows)
}

// XS returns the Cols x-axis node coordinates, ascending, endpoints included.
func (g *Grid) XS() []float64 {
	return floats.Span(make([]float64, g.Cols), g.XMin, g.XMax)
}

// YS returns the Rows y-axis node coordinates, ascending, endpoints included.
func (g *Grid) YS() []float64 {
	return floats.Span(make([]float64, g.Rows), g.YMin, g.YMax)
}

// At returns the coordinates of node (i, j): row i on the y-axis, column j
// on the x-axis. Returns ErrOutOfRange for indices outside the mesh.
func (g *Grid) At(i, j int) (x, y float64, err error) {
	if i < 0 || i >= g.Rows || j < 0 || j >= g.Cols {
		return 0, 0, fmt.Errorf("At(%d,%d) on %dx%d grid: %w", i, j, g.Rows, g.Cols, ErrOutOfRange)
	}

	x = g.XMin + (g.XMax-g.XMin)*float64(j)/float64(g.Cols-1)
	y = g.YMin + (g.YMax-g.YMin)*float64(i)/float64(g.Rows-1)

	return x, y, nil
}

// Evaluate applies f at every node and returns the Rows×Cols result matrix;
// element (i, j) is f at (XS()[j], YS()[i]).
//
// Errors: ErrNilFunc.
// Complexity: O(Rows·Cols) calls of f.
func (g *Grid) Evaluate(f func(x, y float64) float64) (*mat.Dense, error) {
	if f == nil {
		return nil, fmt.Errorf("Evaluate: %w", ErrNilFunc)
	}

	xs, ys := g.XS(), g.YS()
	out := mat.NewDense(g.Rows, g.Cols, nil)
	for i, y := range ys {
		row := out.RawRowView(i)
		for j, x := range xs {
			row[j] = f(x, y)
		}
	}

	return out, nil
}

// EvaluateProb rasterizes a fitted 2-D mixture's density over the grid —
// the tutorial's "prob on a mesh" step.
//
// Errors: ErrNilModel, ErrDimensionMismatch for non-2-D models.
func (g *Grid) EvaluateProb(m *mixture.GaussianMixture) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("EvaluateProb: %w", ErrNilModel)
	}
	if m.Dim() != planeDim {
		return nil, fmt.Errorf("EvaluateProb: model dim %d: %w", m.Dim(), ErrDimensionMismatch)
	}

	point := make([]float64, planeDim)

	return g.Evaluate(func(x, y float64) float64 {
		point[0], point[1] = x, y
		p, err := m.Prob(point)
		if err != nil {
			// Dim was validated above; Prob cannot fail here.
			panic(fmt.Sprintf("grid: unreachable Prob failure: %v", err))
		}

		return p
	})
}
