// SPDX-License-Identifier: MIT
// Package mixture: the GaussianMixture model type and its query surface.
//
// Contract:
//   - New always yields a usable model (uniform weights, zero means, unit
//     scales); queries never require a prior Fit.
//   - Query methods validate only the input dimension; parameter validity
//     is an invariant maintained by constructors and solvers.
//   - Accessors return copies; callers cannot corrupt model state.

package mixture

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gmix/dist"
)

// weightSumTol bounds the acceptable |Σw − 1| at construction.
const weightSumTol = 1e-9

// GaussianMixture is a K-component Gaussian mixture with diagonal
// covariances in dim dimensions. Construct via New or NewFromComponents;
// the zero value is not usable.
//
// Invariants (maintained by every constructor and solver):
//   - len(weights) == len(comps) == k ≥ 1
//   - weights are non-negative and sum to 1 within 1e-9
//   - every component has dimension dim ≥ 1 and strictly positive scales
type GaussianMixture struct {
	k, dim  int
	weights []float64
	comps   []dist.DiagNormal
}

// New returns a k-component mixture in dim dimensions with uniform weights,
// zero means, and unit scales. Fit replaces these placeholder parameters
// (unless Options.Init == InitKeep).
//
// Errors: ErrBadComponents for k < 1 or dim < 1.
func New(k, dim int) (*GaussianMixture, error) {
	if k < 1 {
		return nil, fmt.Errorf("New: k=%d: %w", k, ErrBadComponents)
	}
	if dim < 1 {
		return nil, fmt.Errorf("New: dim=%d: %w", dim, ErrBadComponents)
	}

	m := &GaussianMixture{
		k:       k,
		dim:     dim,
		weights: make([]float64, k),
		comps:   make([]dist.DiagNormal, k),
	}
	for j := 0; j < k; j++ {
		m.weights[j] = 1.0 / float64(k)
		mu := make([]float64, dim)
		sigma := make([]float64, dim)
		for d := 0; d < dim; d++ {
			sigma[d] = 1
		}
		m.comps[j] = dist.DiagNormal{Mu: mu, Sigma: sigma}
	}

	return m, nil
}

// NewFromComponents returns a mixture over copies of the given weights and
// components. Use together with Options.Init=InitKeep to warm-start Fit.
//
// Errors:
//   - ErrBadComponents      — empty component list, len(weights) != len(comps),
//     negative weight, or Σw off 1 by more than 1e-9.
//   - ErrDimensionMismatch  — components of differing dimension.
func NewFromComponents(weights []float64, comps []dist.DiagNormal) (*GaussianMixture, error) {
	if len(comps) == 0 || len(weights) != len(comps) {
		return nil, fmt.Errorf("NewFromComponents: %d weights, %d components: %w",
			len(weights), len(comps), ErrBadComponents)
	}

	dim := comps[0].Dim()
	if dim < 1 {
		return nil, fmt.Errorf("NewFromComponents: component 0 is empty: %w", ErrBadComponents)
	}

	sum := 0.0
	for j, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("NewFromComponents: weights[%d]=%v: %w", j, w, ErrBadComponents)
		}
		sum += w
		if comps[j].Dim() != dim {
			return nil, fmt.Errorf("NewFromComponents: component %d has dim %d, want %d: %w",
				j, comps[j].Dim(), dim, ErrDimensionMismatch)
		}
	}
	if math.Abs(sum-1) > weightSumTol {
		return nil, fmt.Errorf("NewFromComponents: weights sum to %v: %w", sum, ErrBadComponents)
	}

	m := &GaussianMixture{
		k:       len(comps),
		dim:     dim,
		weights: make([]float64, len(weights)),
		comps:   make([]dist.DiagNormal, len(comps)),
	}
	copy(m.weights, weights)
	for j := range comps {
		// Revalidate scales through the dist constructor: direct struct
		// literals may carry zero or negative sigmas.
		c, err := dist.NewDiagNormal(comps[j].Mu, comps[j].Sigma)
		if err != nil {
			return nil, fmt.Errorf("NewFromComponents: component %d: %w", j, err)
		}
		m.comps[j] = c
	}

	return m, nil
}

// K returns the number of mixture components.
func (m *GaussianMixture) K() int { return m.k }

// Dim returns the dimensionality of the model.
func (m *GaussianMixture) Dim() int { return m.dim }

// Weights returns a copy of the mixing weights.
func (m *GaussianMixture) Weights() []float64 {
	w := make([]float64, m.k)
	copy(w, m.weights)

	return w
}

// Components returns deep copies of the component distributions.
func (m *GaussianMixture) Components() []dist.DiagNormal {
	out := make([]dist.DiagNormal, m.k)
	for j := range m.comps {
		out[j] = m.comps[j].Clone()
	}

	return out
}

// LogProb returns the natural log of the mixture density at x:
// log Σ_k w_k·N(x; μ_k, σ_k), computed with LogSumExp for stability.
// Returns ErrDimensionMismatch when len(x) != Dim().
// Complexity: O(K·d).
func (m *GaussianMixture) LogProb(x []float64) (float64, error) {
	if len(x) != m.dim {
		return 0, fmt.Errorf("LogProb: len(x)=%d dim=%d: %w", len(x), m.dim, ErrDimensionMismatch)
	}

	lw := make([]float64, m.k)
	m.componentLogJoint(x, lw)

	return floats.LogSumExp(lw), nil
}

// Prob returns the mixture density at x. Equivalent to exp of LogProb.
func (m *GaussianMixture) Prob(x []float64) (float64, error) {
	lp, err := m.LogProb(x)
	if err != nil {
		return 0, err
	}

	return math.Exp(lp), nil
}

// PredictProba returns the posterior responsibility of each component for x:
// γ_k = w_k·N(x;μ_k,σ_k) / p(x). The result sums to 1.
// Complexity: O(K·d).
func (m *GaussianMixture) PredictProba(x []float64) ([]float64, error) {
	if len(x) != m.dim {
		return nil, fmt.Errorf("PredictProba: len(x)=%d dim=%d: %w", len(x), m.dim, ErrDimensionMismatch)
	}

	lw := make([]float64, m.k)
	m.componentLogJoint(x, lw)
	total := floats.LogSumExp(lw)
	for j := range lw {
		lw[j] = math.Exp(lw[j] - total)
	}

	return lw, nil
}

// Predict returns the index of the component most responsible for x.
func (m *GaussianMixture) Predict(x []float64) (int, error) {
	gamma, err := m.PredictProba(x)
	if err != nil {
		return 0, err
	}

	return floats.MaxIdx(gamma), nil
}

// Sample draws one point by ancestral sampling: pick a component by weight,
// then draw from it. Returns ErrNilRand when rng is nil.
func (m *GaussianMixture) Sample(rng *rand.Rand) ([]float64, error) {
	if rng == nil {
		return nil, fmt.Errorf("Sample: %w", ErrNilRand)
	}

	// Inverse-CDF over the (normalized) weights; the final component
	// absorbs any rounding slack.
	u := rng.Float64()
	j := m.k - 1
	acc := 0.0
	for i := 0; i < m.k-1; i++ {
		acc += m.weights[i]
		if u < acc {
			j = i
			break
		}
	}

	return m.comps[j].Sample(rng)
}

// Score returns the mean per-sample log-likelihood of data under the model.
// Errors mirror Fit's data validation (ErrEmptyData, ErrDimensionMismatch).
// Complexity: O(n·K·d).
func (m *GaussianMixture) Score(data *mat.Dense) (float64, error) {
	rows, err := m.checkData(data)
	if err != nil {
		return 0, err
	}

	total := 0.0
	lw := make([]float64, m.k)
	for i := 0; i < rows; i++ {
		m.componentLogJoint(data.RawRowView(i), lw)
		total += floats.LogSumExp(lw)
	}

	return total / float64(rows), nil
}

// AIC returns the Akaike information criterion of the model on data:
// 2·p − 2·logL, lower is better. p counts free parameters:
// (K−1) weights + K·d means + K·d scales.
func (m *GaussianMixture) AIC(data *mat.Dense) (float64, error) {
	logL, _, err := m.totalLogLikelihood(data)
	if err != nil {
		return 0, err
	}

	return 2*float64(m.freeParams()) - 2*logL, nil
}

// BIC returns the Bayesian information criterion: p·ln(n) − 2·logL,
// lower is better.
func (m *GaussianMixture) BIC(data *mat.Dense) (float64, error) {
	logL, n, err := m.totalLogLikelihood(data)
	if err != nil {
		return 0, err
	}

	return float64(m.freeParams())*math.Log(float64(n)) - 2*logL, nil
}

// componentLogJoint fills lw[j] = log w_j + log N(x; μ_j, σ_j).
// Inlined Gaussian log-density: the dims were validated by the caller and
// component parameters are invariant-valid, so no error path is needed.
func (m *GaussianMixture) componentLogJoint(x []float64, lw []float64) {
	for j := 0; j < m.k; j++ {
		c := &m.comps[j]
		lp := 0.0
		for d := 0; d < m.dim; d++ {
			z := (x[d] - c.Mu[d]) / c.Sigma[d]
			lp += -0.5*(z*z+logTwoPi) - math.Log(c.Sigma[d])
		}
		lw[j] = math.Log(m.weights[j]) + lp
	}
}

// totalLogLikelihood returns (Σ_i log p(x_i), n) for information criteria.
func (m *GaussianMixture) totalLogLikelihood(data *mat.Dense) (float64, int, error) {
	rows, err := m.checkData(data)
	if err != nil {
		return 0, 0, err
	}

	total := 0.0
	lw := make([]float64, m.k)
	for i := 0; i < rows; i++ {
		m.componentLogJoint(data.RawRowView(i), lw)
		total += floats.LogSumExp(lw)
	}

	return total, rows, nil
}

// freeParams counts independently adjustable parameters.
func (m *GaussianMixture) freeParams() int {
	return (m.k - 1) + 2*m.k*m.dim
}

// checkData validates shape only (nil/empty and column count) and returns
// the row count. Finiteness is checked separately by Fit, which is the only
// entry point that consumes values destructively.
func (m *GaussianMixture) checkData(data *mat.Dense) (int, error) {
	if data == nil {
		return 0, fmt.Errorf("data is nil: %w", ErrEmptyData)
	}
	rows, cols := data.Dims()
	if rows == 0 {
		return 0, fmt.Errorf("data has no rows: %w", ErrEmptyData)
	}
	if cols != m.dim {
		return 0, fmt.Errorf("data has %d columns, model dim is %d: %w", cols, m.dim, ErrDimensionMismatch)
	}

	return rows, nil
}

// logTwoPi = log(2π), shared by the inlined Gaussian log-density.
const logTwoPi = 1.8378770664093454836

// wrapOption annotates ErrBadOption with the offending field name.
func wrapOption(field string, err error) error {
	return fmt.Errorf("options.%s out of domain: %w", field, err)
}
