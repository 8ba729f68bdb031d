// SPDX-License-Identifier: MIT
// Package viz: rendering configuration.

package viz

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultTitle is the figure title when none is supplied.
	DefaultTitle = "mixture density"

	// DefaultPaletteColors is the number of discrete heat colors.
	DefaultPaletteColors = 64

	// DefaultPointRadius is the overlay marker radius in printer points.
	DefaultPointRadius = 1.5

	// DefaultWidth and DefaultHeight size the figure in printer points
	// (72 points = 1 inch).
	DefaultWidth  = 400
	DefaultHeight = 400
)

// Options configures DensityMap.
//
// Fields:
//   - Title         — figure title.
//   - PaletteColors — number of discrete colors in the heat palette (≥ 2).
//   - PointRadius   — overlay marker radius in printer points (> 0);
//     ignored when no points are supplied.
//   - Width, Height — figure size in printer points (> 0).
type Options struct {
	Title         string
	PaletteColors int
	PointRadius   float64
	Width, Height float64
}

// DefaultOptions returns Options populated with the package defaults.
func DefaultOptions() Options {
	return Options{
		Title:         DefaultTitle,
		PaletteColors: DefaultPaletteColors,
		PointRadius:   DefaultPointRadius,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
	}
}

// validate checks every option domain; returns ErrBadOption on the first
// violation.
func (o *Options) validate() error {
	if o.PaletteColors < 2 {
		return wrapOption("PaletteColors")
	}
	if o.PointRadius <= 0 {
		return wrapOption("PointRadius")
	}
	if o.Width <= 0 || o.Height <= 0 {
		return wrapOption("Width/Height")
	}

	return nil
}
