// SPDX-License-Identifier: MIT
// Package mixture: Fit entry point, data validation, and mean seeding.
//
// Contract:
//   - Fit validates options, then data shape, then data finiteness, in that
//     order (cheapest first), before any model mutation.
//   - On any error the model is left exactly as it was.
//   - All randomness (seeding, shuffling) flows from a private RNG built
//     from Options.Seed; a fixed seed reproduces the fit bit-for-bit.

package mixture

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Fit estimates the mixture parameters from data (rows = samples,
// columns = coordinates) using the solver selected in opts.
// A nil opts uses DefaultOptions().
//
// Errors:
//   - ErrBadOption           — any option outside its documented domain.
//   - ErrEmptyData           — nil data or zero rows.
//   - ErrDimensionMismatch   — column count != Dim().
//   - ErrTooFewSamples       — fewer rows than components.
//   - ErrNaNInf              — non-finite value anywhere in data.
//
// Complexity: O(iterations·n·K·d) time; O(n·K) memory (EM responsibilities)
// or O(K·d) memory (SGD accumulators).
func (m *GaussianMixture) Fit(data *mat.Dense, opts *Options) error {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return err
	}

	n, err := m.checkData(data)
	if err != nil {
		return err
	}
	if n < m.k {
		return fmt.Errorf("Fit: %d samples for %d components: %w", n, m.k, ErrTooFewSamples)
	}
	for i := 0; i < n; i++ {
		row := data.RawRowView(i)
		for d := range row {
			if math.IsNaN(row[d]) || math.IsInf(row[d], 0) {
				return fmt.Errorf("Fit: data[%d][%d]=%v: %w", i, d, row[d], ErrNaNInf)
			}
		}
	}

	rng := rand.New(rand.NewSource(o.Seed))
	if o.Init != InitKeep {
		m.seed(data, n, &o, rng)
	}

	switch o.Solver {
	case SolverSGD:
		return m.fitSGD(data, n, &o, rng)
	default:
		return m.fitEM(data, n, &o)
	}
}

// seed resets weights to uniform, sets every component's scales to the
// per-column sample standard deviation (floored by MinSigma), and places
// the means according to o.Init.
func (m *GaussianMixture) seed(data *mat.Dense, n int, o *Options, rng *rand.Rand) {
	// Column spread as the initial scale for every component: wide enough
	// to give each component nonzero responsibility everywhere.
	colSigma := make([]float64, m.dim)
	col := make([]float64, n)
	for d := 0; d < m.dim; d++ {
		mat.Col(col, d, data)
		colSigma[d] = math.Max(stat.StdDev(col, nil), o.MinSigma)
	}

	var centers []int
	switch o.Init {
	case InitRandomPoints:
		centers = rng.Perm(n)[:m.k]
	default: // InitKMeansPlusPlus
		centers = kmeansPlusPlus(data, n, m.k, rng)
	}

	for j := 0; j < m.k; j++ {
		m.weights[j] = 1.0 / float64(m.k)
		copy(m.comps[j].Mu, data.RawRowView(centers[j]))
		copy(m.comps[j].Sigma, colSigma)
	}
}

// kmeansPlusPlus picks k row indices: the first uniformly, each next with
// probability proportional to the squared distance from the nearest chosen
// center (Arthur & Vassilvitskii seeding, without the Lloyd refinement).
// Complexity: O(k·n·d).
func kmeansPlusPlus(data *mat.Dense, n, k int, rng *rand.Rand) []int {
	centers := make([]int, 0, k)
	centers = append(centers, rng.Intn(n))

	// d2[i] tracks the squared distance from row i to its nearest center.
	d2 := make([]float64, n)
	for i := range d2 {
		d2[i] = sqDist(data.RawRowView(i), data.RawRowView(centers[0]))
	}

	for len(centers) < k {
		total := floats.Sum(d2)
		var next int
		if total <= 0 {
			// All remaining points coincide with a center; take a random
			// not-yet-chosen index so the k seeds stay distinct. n ≥ k is
			// guaranteed by Fit, so an unused index always exists.
			used := make(map[int]bool, len(centers))
			for _, c := range centers {
				used[c] = true
			}
			for _, i := range rng.Perm(n) {
				if !used[i] {
					next = i
					break
				}
			}
		} else {
			u := rng.Float64() * total
			acc := 0.0
			next = n - 1
			for i, v := range d2 {
				acc += v
				if u < acc {
					next = i
					break
				}
			}
		}
		centers = append(centers, next)

		c := data.RawRowView(next)
		for i := range d2 {
			if v := sqDist(data.RawRowView(i), c); v < d2[i] {
				d2[i] = v
			}
		}
	}

	return centers
}

// sqDist returns the squared Euclidean distance between equal-length vectors.
func sqDist(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		diff := a[i] - b[i]
		s += diff * diff
	}

	return s
}

// meanLL returns the mean per-sample log-likelihood on pre-validated data.
func (m *GaussianMixture) meanLL(data *mat.Dense, n int) float64 {
	total := 0.0
	lw := make([]float64, m.k)
	for i := 0; i < n; i++ {
		m.componentLogJoint(data.RawRowView(i), lw)
		total += floats.LogSumExp(lw)
	}

	return total / float64(n)
}
