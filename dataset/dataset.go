// SPDX-License-Identifier: MIT
// Package dataset: Blobs and Moons generators.
//
// Contract:
//   - n ≥ 1 (else ErrBadCount).
//   - rng must be non-nil (else ErrNilRand); all draws come from it.
//   - Deterministic assignment order: point i belongs to center i mod k
//     (Blobs) or moon i mod 2 (Moons), so fixed seeds reproduce datasets.
//   - Returns only sentinel errors; never panics at runtime.

package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// moonYShift drops the inner moon so the two arcs interleave, matching the
// scikit-learn make_moons layout.
const moonYShift = 0.5

// Blobs samples n points from isotropic Gaussian clusters.
//
// centers is a k×d matrix, one cluster center per row; point i is drawn
// around center i mod k with per-coordinate standard deviation stddev.
// The result is an n×d matrix, one point per row.
//
// Errors: ErrBadCount, ErrNoCenters, ErrBadSpread, ErrNilRand.
// Complexity: O(n·d).
func Blobs(n int, centers *mat.Dense, stddev float64, rng *rand.Rand) (*mat.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("Blobs: n=%d: %w", n, ErrBadCount)
	}
	if centers == nil {
		return nil, fmt.Errorf("Blobs: centers is nil: %w", ErrNoCenters)
	}
	k, d := centers.Dims()
	if k == 0 || d == 0 {
		return nil, fmt.Errorf("Blobs: centers is %dx%d: %w", k, d, ErrNoCenters)
	}
	if stddev <= 0 || math.IsNaN(stddev) || math.IsInf(stddev, 0) {
		return nil, fmt.Errorf("Blobs: stddev=%v: %w", stddev, ErrBadSpread)
	}
	if rng == nil {
		return nil, fmt.Errorf("Blobs: %w", ErrNilRand)
	}

	out := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		c := centers.RawRowView(i % k)
		row := out.RawRowView(i)
		for j := 0; j < d; j++ {
			row[j] = c[j] + stddev*rng.NormFloat64()
		}
	}

	return out, nil
}

// Moons samples n points from two interleaved half-circles in the plane:
// the outer moon is the upper unit half-circle, the inner moon is its mirror
// shifted right by 1 and down by 0.5. Gaussian noise of the given level is
// added to both coordinates. The result is an n×2 matrix.
//
// Errors: ErrBadCount, ErrBadNoise, ErrNilRand.
// Complexity: O(n).
func Moons(n int, noise float64, rng *rand.Rand) (*mat.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("Moons: n=%d: %w", n, ErrBadCount)
	}
	if noise < 0 || math.IsNaN(noise) || math.IsInf(noise, 0) {
		return nil, fmt.Errorf("Moons: noise=%v: %w", noise, ErrBadNoise)
	}
	if rng == nil {
		return nil, fmt.Errorf("Moons: %w", ErrNilRand)
	}

	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		theta := rng.Float64() * math.Pi
		x := math.Cos(theta)
		y := math.Sin(theta)
		if i%2 == 1 { // inner moon
			x = 1 - x
			y = moonYShift - y
		}
		row := out.RawRowView(i)
		row[0] = x + noise*rng.NormFloat64()
		row[1] = y + noise*rng.NormFloat64()
	}

	return out, nil
}
