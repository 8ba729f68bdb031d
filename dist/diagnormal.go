// SPDX-License-Identifier: MIT
// Package dist: diagonal-covariance multivariate Normal.
//
// Contract:
//   - NewDiagNormal deep-copies its inputs; the returned value shares no
//     storage with the caller.
//   - LogProb validates only the query dimension (ErrDimensionMismatch);
//     parameter validity is established at construction.
//   - Sample requires a non-nil *rand.Rand and allocates one output slice.

package dist

import (
	"fmt"
	"math"
	"math/rand"
)

// DiagNormal is a d-dimensional Gaussian with independent coordinates:
// mean vector Mu and per-coordinate standard deviations Sigma.
// Off-diagonal covariance is identically zero.
type DiagNormal struct {
	Mu    []float64
	Sigma []float64
}

// NewDiagNormal returns a DiagNormal over copies of mu and sigma.
//
// Errors:
//   - ErrEmptyDim           — len(mu) == 0.
//   - ErrDimensionMismatch  — len(mu) != len(sigma).
//   - ErrNaNInf             — any non-finite entry.
//   - ErrBadSigma           — any sigma entry ≤ 0.
func NewDiagNormal(mu, sigma []float64) (DiagNormal, error) {
	if len(mu) == 0 {
		return DiagNormal{}, fmt.Errorf("NewDiagNormal: %w", ErrEmptyDim)
	}
	if len(mu) != len(sigma) {
		return DiagNormal{}, fmt.Errorf("NewDiagNormal: len(mu)=%d len(sigma)=%d: %w",
			len(mu), len(sigma), ErrDimensionMismatch)
	}
	for i := range mu {
		if !isFinite(mu[i]) || !isFinite(sigma[i]) {
			return DiagNormal{}, fmt.Errorf("NewDiagNormal: coordinate %d: %w", i, ErrNaNInf)
		}
		if sigma[i] <= 0 {
			return DiagNormal{}, fmt.Errorf("NewDiagNormal: sigma[%d]=%v: %w", i, sigma[i], ErrBadSigma)
		}
	}

	d := DiagNormal{
		Mu:    make([]float64, len(mu)),
		Sigma: make([]float64, len(sigma)),
	}
	copy(d.Mu, mu)
	copy(d.Sigma, sigma)

	return d, nil
}

// Dim returns the dimensionality of the distribution.
func (d DiagNormal) Dim() int { return len(d.Mu) }

// LogProb returns the natural log of the density at x.
// Returns ErrDimensionMismatch when len(x) != Dim().
// Complexity: O(d).
func (d DiagNormal) LogProb(x []float64) (float64, error) {
	if len(x) != len(d.Mu) {
		return 0, fmt.Errorf("DiagNormal.LogProb: len(x)=%d dim=%d: %w",
			len(x), len(d.Mu), ErrDimensionMismatch)
	}

	lp := 0.0
	for i := range x {
		z := (x[i] - d.Mu[i]) / d.Sigma[i]
		lp += -0.5*(z*z+logTwoPi) - math.Log(d.Sigma[i])
	}

	return lp, nil
}

// Prob returns the density at x. Equivalent to exp of LogProb.
func (d DiagNormal) Prob(x []float64) (float64, error) {
	lp, err := d.LogProb(x)
	if err != nil {
		return 0, err
	}

	return math.Exp(lp), nil
}

// Sample draws one point using the supplied random source.
// Returns ErrNilRand when rng is nil.
// Complexity: O(d).
func (d DiagNormal) Sample(rng *rand.Rand) ([]float64, error) {
	if rng == nil {
		return nil, fmt.Errorf("DiagNormal.Sample: %w", ErrNilRand)
	}

	out := make([]float64, len(d.Mu))
	for i := range out {
		out[i] = d.Mu[i] + d.Sigma[i]*rng.NormFloat64()
	}

	return out, nil
}

// Clone returns a deep copy of the distribution.
func (d DiagNormal) Clone() DiagNormal {
	c := DiagNormal{
		Mu:    make([]float64, len(d.Mu)),
		Sigma: make([]float64, len(d.Sigma)),
	}
	copy(c.Mu, d.Mu)
	copy(c.Sigma, d.Sigma)

	return c
}
