// SPDX-License-Identifier: MIT
// Package mixture: expectation-maximization solver.
//
// Algorithm Outline:
//  1. E-step: for each sample i and component j compute the responsibility
//     γ_ij = w_j·N(x_i; μ_j, σ_j) / Σ_l w_l·N(x_i; μ_l, σ_l),
//     in log space (LogSumExp) so distant points do not underflow.
//  2. M-step (closed form):
//     N_j   = Σ_i γ_ij
//     w_j   = N_j / n
//     μ_jd  = Σ_i γ_ij·x_id / N_j
//     σ_jd  = max( sqrt(Σ_i γ_ij·(x_id − μ_jd)² / N_j), MinSigma )
//  3. Stop when the mean per-sample log-likelihood moves by ≤ Tol between
//     consecutive iterations, or after MaxIter iterations.
//
// Each EM iteration never decreases the likelihood; the MinSigma floor is
// the only deviation from the textbook update and exists to block the
// single-point variance-collapse degeneracy.
//
// Complexity: O(MaxIter·n·K·d) time, O(n·K) memory for responsibilities.

package mixture

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// respFloor guards the M-step against empty components: a component whose
// total responsibility falls below this keeps its previous mean and scale
// for the iteration instead of dividing by ~0. Its weight is still
// re-estimated — responsibilities sum to 1 per sample, so Σ_j N_j = n and
// the weight vector stays on the simplex only if every entry is updated.
const respFloor = 1e-12

func (m *GaussianMixture) fitEM(data *mat.Dense, n int, o *Options) error {
	gamma := mat.NewDense(n, m.k, nil)
	lw := make([]float64, m.k)
	prev := math.Inf(-1)

	for iter := 1; iter <= o.MaxIter; iter++ {
		// E-step.
		total := 0.0
		for i := 0; i < n; i++ {
			m.componentLogJoint(data.RawRowView(i), lw)
			ll := floats.LogSumExp(lw)
			total += ll
			for j := 0; j < m.k; j++ {
				gamma.Set(i, j, math.Exp(lw[j]-ll))
			}
		}
		mean := total / float64(n)

		// M-step.
		for j := 0; j < m.k; j++ {
			nj := 0.0
			for i := 0; i < n; i++ {
				nj += gamma.At(i, j)
			}
			m.weights[j] = nj / float64(n)
			if nj < respFloor {
				// Dead component: freeze μ/σ, weight above is ~0.
				continue
			}

			mu := m.comps[j].Mu
			for d := range mu {
				mu[d] = 0
			}
			for i := 0; i < n; i++ {
				g := gamma.At(i, j)
				row := data.RawRowView(i)
				for d := range mu {
					mu[d] += g * row[d]
				}
			}
			for d := range mu {
				mu[d] /= nj
			}

			sigma := m.comps[j].Sigma
			for d := range sigma {
				sigma[d] = 0
			}
			for i := 0; i < n; i++ {
				g := gamma.At(i, j)
				row := data.RawRowView(i)
				for d := range sigma {
					diff := row[d] - mu[d]
					sigma[d] += g * diff * diff
				}
			}
			for d := range sigma {
				sigma[d] = math.Max(math.Sqrt(sigma[d]/nj), o.MinSigma)
			}
		}

		if o.OnIteration != nil {
			o.OnIteration(iter, mean)
		}
		if math.Abs(mean-prev) <= o.Tol {
			break
		}
		prev = mean
	}

	return nil
}
