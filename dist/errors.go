// SPDX-License-Identifier: MIT
// Package dist: sentinel error set.
// All public constructors and queries return these sentinels (possibly
// wrapped with fmt.Errorf("...: %w", ErrX)); tests match with errors.Is.
// No function in this package panics on user input.

package dist

import "errors"

var (
	// ErrBadSigma is returned when a scale parameter is zero, negative,
	// or otherwise outside the open interval (0, +Inf).
	ErrBadSigma = errors.New("dist: sigma must be positive and finite")

	// ErrEmptyDim is returned when a multivariate distribution is
	// constructed with an empty mean vector.
	ErrEmptyDim = errors.New("dist: dimension must be at least 1")

	// ErrDimensionMismatch indicates incompatible vector lengths, either
	// between mu and sigma at construction or between the distribution
	// and a query point.
	ErrDimensionMismatch = errors.New("dist: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf parameter where finite values are
	// required by the numeric policy.
	ErrNaNInf = errors.New("dist: NaN or Inf encountered")

	// ErrNilRand is returned by sampling methods when no random source
	// is supplied. Sampling requires an explicit *rand.Rand; there is no
	// global fallback.
	ErrNilRand = errors.New("dist: rand source is nil")
)
