// SPDX-License-Identifier: MIT
// Package mixture: minibatch stochastic-gradient solver.
//
// The model is reparameterized so that every gradient step stays valid:
//   - scales:  σ = softplus(ρ) = log(1 + e^ρ)  (always positive)
//   - weights: w = softmax(θ)                  (always on the simplex)
//
// The objective is the mean log-likelihood of the minibatch,
//
//	L(B) = (1/|B|) Σ_{i∈B} log Σ_j w_j·N(x_i; μ_j, σ_j),
//
// and the gradients reduce to responsibility-weighted moment residuals:
//
//	∂L/∂μ_jd = (1/|B|) Σ_i γ_ij·(x_id − μ_jd)/σ_jd²
//	∂L/∂σ_jd = (1/|B|) Σ_i γ_ij·((x_id − μ_jd)²/σ_jd³ − 1/σ_jd)
//	∂L/∂θ_j  = (1/|B|) Σ_i (γ_ij − w_j)
//
// with ∂σ/∂ρ = sigmoid(ρ) chained onto the σ gradient. Updates are plain
// gradient ascent: param += LearnRate·grad. Epoch order is reshuffled from
// the fit RNG, so a fixed Seed reproduces the whole trajectory.
//
// Complexity: O(Epochs·n·K·d) time, O(K·d) memory for accumulators.

package mixture

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func (m *GaussianMixture) fitSGD(data *mat.Dense, n int, o *Options, rng *rand.Rand) error {
	k, dim := m.k, m.dim
	batch := o.BatchSize
	if batch > n {
		batch = n
	}
	rhoFloor := invSoftplus(o.MinSigma)

	// Unconstrained parameters, initialized from the current model.
	mu := make([][]float64, k)
	rho := make([][]float64, k)
	theta := make([]float64, k)
	for j := 0; j < k; j++ {
		mu[j] = make([]float64, dim)
		rho[j] = make([]float64, dim)
		copy(mu[j], m.comps[j].Mu)
		for d := 0; d < dim; d++ {
			rho[j][d] = invSoftplus(m.comps[j].Sigma[d])
		}
		theta[j] = math.Log(math.Max(m.weights[j], respFloor))
	}

	// Gradient accumulators and per-point scratch.
	gMu := make([][]float64, k)
	gRho := make([][]float64, k)
	gTheta := make([]float64, k)
	for j := range gMu {
		gMu[j] = make([]float64, dim)
		gRho[j] = make([]float64, dim)
	}
	w := make([]float64, k)
	logW := make([]float64, k)
	sigma := make([][]float64, k)
	for j := range sigma {
		sigma[j] = make([]float64, dim)
	}
	lw := make([]float64, k)

	for epoch := 1; epoch <= o.Epochs; epoch++ {
		perm := rng.Perm(n)

		for start := 0; start < n; start += batch {
			end := start + batch
			if end > n {
				end = n
			}
			size := float64(end - start)

			// Materialize constrained views once per step.
			copy(logW, theta)
			lse := floats.LogSumExp(logW)
			for j := 0; j < k; j++ {
				logW[j] -= lse
				w[j] = math.Exp(logW[j])
				for d := 0; d < dim; d++ {
					sigma[j][d] = math.Max(softplus(rho[j][d]), o.MinSigma)
				}
			}

			for j := 0; j < k; j++ {
				gTheta[j] = 0
				for d := 0; d < dim; d++ {
					gMu[j][d] = 0
					gRho[j][d] = 0
				}
			}

			for _, idx := range perm[start:end] {
				x := data.RawRowView(idx)

				for j := 0; j < k; j++ {
					lp := 0.0
					for d := 0; d < dim; d++ {
						z := (x[d] - mu[j][d]) / sigma[j][d]
						lp += -0.5*(z*z+logTwoPi) - math.Log(sigma[j][d])
					}
					lw[j] = logW[j] + lp
				}
				ll := floats.LogSumExp(lw)

				for j := 0; j < k; j++ {
					g := math.Exp(lw[j] - ll)
					gTheta[j] += g - w[j]
					for d := 0; d < dim; d++ {
						s := sigma[j][d]
						diff := x[d] - mu[j][d]
						gMu[j][d] += g * diff / (s * s)
						gRho[j][d] += g * (diff*diff/(s*s*s) - 1/s) * sigmoid(rho[j][d])
					}
				}
			}

			// Ascent step on the batch-mean gradient.
			for j := 0; j < k; j++ {
				theta[j] += o.LearnRate * gTheta[j] / size
				for d := 0; d < dim; d++ {
					mu[j][d] += o.LearnRate * gMu[j][d] / size
					rho[j][d] += o.LearnRate * gRho[j][d] / size
					if rho[j][d] < rhoFloor {
						rho[j][d] = rhoFloor
					}
				}
			}
		}

		m.materialize(mu, rho, theta, o.MinSigma)
		if o.OnIteration != nil {
			o.OnIteration(epoch, m.meanLL(data, n))
		}
	}

	m.materialize(mu, rho, theta, o.MinSigma)

	return nil
}

// materialize writes the unconstrained SGD parameters back into the model's
// constrained form (softmax weights, softplus scales with floor).
func (m *GaussianMixture) materialize(mu, rho [][]float64, theta []float64, minSigma float64) {
	lse := floats.LogSumExp(theta)
	for j := 0; j < m.k; j++ {
		m.weights[j] = math.Exp(theta[j] - lse)
		copy(m.comps[j].Mu, mu[j])
		for d := 0; d < m.dim; d++ {
			m.comps[j].Sigma[d] = math.Max(softplus(rho[j][d]), minSigma)
		}
	}
}

// softplus returns log(1+e^x), switching to the identity for large x where
// the exponential would overflow (the two agree to double precision there).
func softplus(x float64) float64 {
	if x > 30 {
		return x
	}

	return math.Log1p(math.Exp(x))
}

// invSoftplus returns the ρ with softplus(ρ) = y, for y > 0.
func invSoftplus(y float64) float64 {
	if y > 30 {
		return y
	}

	return math.Log(math.Expm1(y))
}

// sigmoid returns 1/(1+e^−x), the derivative of softplus.
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
