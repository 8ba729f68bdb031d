// SPDX-License-Identifier: MIT
// Package dist: univariate Normal distribution.
//
// Contract:
//   - NewNormal validates sigma > 0 and finiteness of both parameters.
//   - LogProb/Prob assume a valid receiver; they never allocate.
//   - Sample requires a non-nil *rand.Rand (explicit RNG injection).

package dist

import (
	"fmt"
	"math"
	"math/rand"
)

// log(2π), precomputed once for the Gaussian normalizer.
const logTwoPi = 1.8378770664093454836

// Normal is a univariate Gaussian with mean Mu and standard deviation Sigma.
// The zero value is not usable; construct via NewNormal or set Sigma > 0.
type Normal struct {
	Mu    float64
	Sigma float64
}

// NewNormal returns a Normal with the given mean and standard deviation.
// Returns ErrNaNInf for non-finite parameters and ErrBadSigma for sigma ≤ 0.
func NewNormal(mu, sigma float64) (Normal, error) {
	if !isFinite(mu) || !isFinite(sigma) {
		return Normal{}, fmt.Errorf("NewNormal(mu=%v, sigma=%v): %w", mu, sigma, ErrNaNInf)
	}
	if sigma <= 0 {
		return Normal{}, fmt.Errorf("NewNormal(sigma=%v): %w", sigma, ErrBadSigma)
	}

	return Normal{Mu: mu, Sigma: sigma}, nil
}

// LogProb returns the natural log of the density at x.
// Complexity: O(1).
func (n Normal) LogProb(x float64) float64 {
	z := (x - n.Mu) / n.Sigma

	return -0.5*(z*z+logTwoPi) - math.Log(n.Sigma)
}

// Prob returns the density at x. Equivalent to exp(LogProb(x)).
func (n Normal) Prob(x float64) float64 {
	return math.Exp(n.LogProb(x))
}

// Sample draws one value using the supplied random source.
// Returns ErrNilRand when rng is nil.
func (n Normal) Sample(rng *rand.Rand) (float64, error) {
	if rng == nil {
		return 0, fmt.Errorf("Normal.Sample: %w", ErrNilRand)
	}

	return n.Mu + n.Sigma*rng.NormFloat64(), nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
