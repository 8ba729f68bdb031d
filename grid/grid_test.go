package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gmix/dist"
	"github.com/katalvlaran/gmix/grid"
	"github.com/katalvlaran/gmix/mixture"
)

// TestNew_Validation covers extent and resolution errors.
func TestNew_Validation(t *testing.T) {
	_, err := grid.New(1, 1, 0, 1, 10, 10)
	assert.ErrorIs(t, err, grid.ErrBadExtent, "xmax == xmin")

	_, err = grid.New(0, 1, 2, 1, 10, 10)
	assert.ErrorIs(t, err, grid.ErrBadExtent, "ymax < ymin")

	_, err = grid.New(0, math.Inf(1), 0, 1, 10, 10)
	assert.ErrorIs(t, err, grid.ErrBadExtent, "infinite bound")

	_, err = grid.New(0, 1, 0, 1, 1, 10)
	assert.ErrorIs(t, err, grid.ErrBadSteps, "cols < 2")
}

// TestAxes_Linspace verifies endpoint inclusion and even spacing.
func TestAxes_Linspace(t *testing.T) {
	g, err := grid.New(-1, 1, 0, 4, 5, 3)
	require.NoError(t, err)

	xs := g.XS()
	require.Len(t, xs, 5)
	assert.InDelta(t, -1.0, xs[0], 1e-12, "x start")
	assert.InDelta(t, 0.0, xs[2], 1e-12, "x middle")
	assert.InDelta(t, 1.0, xs[4], 1e-12, "x end")

	ys := g.YS()
	require.Len(t, ys, 3)
	assert.Equal(t, []float64{0, 2, 4}, ys, "y axis nodes")
}

// TestAt_MatchesAxes checks node lookup against the axis slices and the
// out-of-range guard.
func TestAt_MatchesAxes(t *testing.T) {
	g, err := grid.New(-2, 2, -1, 1, 9, 5)
	require.NoError(t, err)

	xs, ys := g.XS(), g.YS()
	for i := 0; i < g.Rows; i += 2 {
		for j := 0; j < g.Cols; j += 3 {
			x, y, aErr := g.At(i, j)
			require.NoError(t, aErr)
			assert.InDelta(t, xs[j], x, 1e-12, "x at node (%d,%d)", i, j)
			assert.InDelta(t, ys[i], y, 1e-12, "y at node (%d,%d)", i, j)
		}
	}

	_, _, err = g.At(5, 0)
	assert.ErrorIs(t, err, grid.ErrOutOfRange, "row past the mesh")
	_, _, err = g.At(0, -1)
	assert.ErrorIs(t, err, grid.ErrOutOfRange, "negative column")
}

// TestFromData_BoundingBox verifies the data window plus margin.
func TestFromData_BoundingBox(t *testing.T) {
	data := mat.NewDense(3, 2, []float64{
		-1, 5,
		2, -3,
		0, 0,
	})

	g, err := grid.FromData(data, 0.5, 10, 10)
	require.NoError(t, err)
	assert.InDelta(t, -1.5, g.XMin, 1e-12)
	assert.InDelta(t, 2.5, g.XMax, 1e-12)
	assert.InDelta(t, -3.5, g.YMin, 1e-12)
	assert.InDelta(t, 5.5, g.YMax, 1e-12)

	_, err = grid.FromData(nil, 0.5, 10, 10)
	assert.ErrorIs(t, err, grid.ErrEmptyData, "nil data")
	_, err = grid.FromData(mat.NewDense(2, 3, nil), 0.5, 10, 10)
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch, "3-D data")
	_, err = grid.FromData(data, -1, 10, 10)
	assert.ErrorIs(t, err, grid.ErrBadMargin, "negative margin")
}

// TestEvaluate_Function rasterizes a known function and spot-checks nodes.
func TestEvaluate_Function(t *testing.T) {
	g, err := grid.New(0, 2, 0, 2, 3, 3)
	require.NoError(t, err)

	_, err = g.Evaluate(nil)
	assert.ErrorIs(t, err, grid.ErrNilFunc, "nil density function")

	dens, err := g.Evaluate(func(x, y float64) float64 { return x + 10*y })
	require.NoError(t, err)

	rows, cols := dens.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
	assert.InDelta(t, 0.0, dens.At(0, 0), 1e-12, "(x=0, y=0)")
	assert.InDelta(t, 2.0, dens.At(0, 2), 1e-12, "(x=2, y=0)")
	assert.InDelta(t, 20.0, dens.At(2, 0), 1e-12, "(x=0, y=2)")
	assert.InDelta(t, 11.0, dens.At(1, 1), 1e-12, "(x=1, y=1)")
}

// TestEvaluateProb_Mixture rasterizes a known mixture and checks the grid
// agrees with direct Prob queries; the mode node must dominate.
func TestEvaluateProb_Mixture(t *testing.T) {
	c, err := dist.NewDiagNormal([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	m, err := mixture.NewFromComponents([]float64{1}, []dist.DiagNormal{c})
	require.NoError(t, err)

	g, err := grid.New(-2, 2, -2, 2, 5, 5)
	require.NoError(t, err)

	dens, err := g.EvaluateProb(m)
	require.NoError(t, err)

	want, err := m.Prob([]float64{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, want, dens.At(2, 2), 1e-12, "center node equals direct query")

	// The origin is the unique mode of this density.
	rows, cols := dens.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if i != 2 || j != 2 {
				assert.Less(t, dens.At(i, j), dens.At(2, 2), "node (%d,%d) below the mode", i, j)
			}
		}
	}

	_, err = g.EvaluateProb(nil)
	assert.ErrorIs(t, err, grid.ErrNilModel, "nil model")

	m1, err := mixture.New(1, 3)
	require.NoError(t, err)
	_, err = g.EvaluateProb(m1)
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch, "3-D model on a planar grid")
}
