// SPDX-License-Identifier: MIT
// Package mixture: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// mixture package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user input;
// panics are reserved for programmer errors in private helpers.

package mixture

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mixture: ..." for consistency. Wrap with
// fmt.Errorf("ctx: %w", ErrX) when context is essential — callers still
// match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/empty data -> dimension mismatch -> too few samples -> bad options.

var (
	// ErrEmptyData indicates a nil data matrix or one with zero rows.
	ErrEmptyData = errors.New("mixture: data must contain at least one sample")

	// ErrTooFewSamples indicates fewer samples than mixture components;
	// every component needs at least one point to claim.
	ErrTooFewSamples = errors.New("mixture: fewer samples than components")

	// ErrDimensionMismatch indicates incompatible dimensions between the
	// model and its input (data columns, query point length, component dim).
	ErrDimensionMismatch = errors.New("mixture: dimension mismatch")

	// ErrBadComponents signals an invalid component specification:
	// k < 1, dim < 1, or weights off the probability simplex.
	ErrBadComponents = errors.New("mixture: invalid component specification")

	// ErrBadOption signals an out-of-domain option value (non-positive
	// learn rate, batch size < 1, negative tolerance, ...).
	ErrBadOption = errors.New("mixture: invalid option value")

	// ErrNaNInf signals a NaN or ±Inf value in training data where finite
	// values are required.
	ErrNaNInf = errors.New("mixture: NaN or Inf encountered in data")

	// ErrNilRand is returned by Sample when no random source is supplied.
	ErrNilRand = errors.New("mixture: rand source is nil")
)
