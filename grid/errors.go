// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.

package grid

import "errors"

var (
	// ErrBadExtent indicates a degenerate window: max ≤ min on either axis,
	// or a non-finite bound.
	ErrBadExtent = errors.New("grid: extent max must exceed min and be finite")

	// ErrBadSteps indicates a resolution below 2 nodes per axis; with one
	// node an axis has no extent to span.
	ErrBadSteps = errors.New("grid: cols and rows must be at least 2")

	// ErrBadMargin indicates a negative or non-finite margin in FromData.
	ErrBadMargin = errors.New("grid: margin must be non-negative and finite")

	// ErrEmptyData indicates nil data or zero rows passed to FromData.
	ErrEmptyData = errors.New("grid: data must contain at least one sample")

	// ErrDimensionMismatch indicates non-2-D input where the plane is
	// required: FromData data columns, or a mixture model's dimension.
	ErrDimensionMismatch = errors.New("grid: two dimensions required")

	// ErrOutOfRange indicates a node index outside [0,Rows)×[0,Cols).
	ErrOutOfRange = errors.New("grid: node index out of range")

	// ErrNilFunc indicates a nil density function passed to Evaluate.
	ErrNilFunc = errors.New("grid: density function is nil")

	// ErrNilModel indicates a nil model passed to EvaluateProb.
	ErrNilModel = errors.New("grid: model is nil")
)
