// SPDX-License-Identifier: MIT
// Package viz: sentinel error set.

package viz

import "errors"

var (
	// ErrNilGrid indicates a nil evaluation grid.
	ErrNilGrid = errors.New("viz: grid is nil")

	// ErrNilDensity indicates a nil density matrix.
	ErrNilDensity = errors.New("viz: density matrix is nil")

	// ErrShapeMismatch indicates a density matrix whose shape differs from
	// the grid's Rows×Cols resolution.
	ErrShapeMismatch = errors.New("viz: density shape does not match grid resolution")

	// ErrDimensionMismatch indicates an overlay point matrix without
	// exactly two columns.
	ErrDimensionMismatch = errors.New("viz: overlay points must be two-dimensional")

	// ErrBadPath indicates an empty output path.
	ErrBadPath = errors.New("viz: output path is empty")

	// ErrBadOption signals an out-of-domain option value (non-positive
	// figure size, palette below two colors, negative point radius).
	ErrBadOption = errors.New("viz: invalid option value")
)
