// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set.

package dataset

import "errors"

var (
	// ErrBadCount is returned when fewer than one point is requested.
	ErrBadCount = errors.New("dataset: point count must be at least 1")

	// ErrNoCenters is returned by Blobs when the centers matrix is nil or
	// has no rows or no columns.
	ErrNoCenters = errors.New("dataset: centers must contain at least one row and one column")

	// ErrBadSpread is returned by Blobs for a non-positive or non-finite
	// standard deviation.
	ErrBadSpread = errors.New("dataset: stddev must be positive and finite")

	// ErrBadNoise is returned by Moons for a negative or non-finite noise
	// level. Zero noise is legal and yields points exactly on the arcs.
	ErrBadNoise = errors.New("dataset: noise must be non-negative and finite")

	// ErrNilRand is returned when no random source is supplied. Generators
	// sample; there is no global RNG fallback.
	ErrNilRand = errors.New("dataset: rand source is nil")
)
