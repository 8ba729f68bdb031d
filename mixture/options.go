// SPDX-License-Identifier: MIT
// Package mixture: fitting configuration.
// This file defines:
//   - Solver / InitMethod enums,
//   - documented defaults (constants, single source of truth),
//   - Options with DefaultOptions(),
//   - validate() enforcing option domains before any allocation.
//
// Design goals:
//   - Deterministic behavior: no global state; all randomness flows from Seed.
//   - No dead switches: each field impacts behavior and is covered by tests.
//   - Fail fast: Fit validates options before touching the data.

package mixture

// Solver selects the estimation algorithm used by Fit.
//
//   - SolverEM  — expectation-maximization. Deterministic given Seed,
//     closed-form M-step, converges on mean log-likelihood delta ≤ Tol.
//     The right default for small-to-medium in-memory datasets.
//
//   - SolverSGD — minibatch stochastic gradient ascent on the mixture
//     log-likelihood. Scales are kept positive through a softplus
//     reparameterization and weights on the simplex through softmax
//     logits, so every gradient step lands on a valid model. Tuned by
//     LearnRate, Epochs and BatchSize. Useful when data arrives in
//     batches or EM's full-dataset passes are too expensive.
type Solver int

const (
	// SolverEM runs expectation-maximization (default).
	SolverEM Solver = iota

	// SolverSGD runs minibatch gradient ascent with reparameterized scales
	// and weights.
	SolverSGD
)

// InitMethod selects how component means are seeded before fitting.
type InitMethod int

const (
	// InitKMeansPlusPlus seeds means with k-means++ spreading (default):
	// the first mean is a uniformly random data point, each next mean is a
	// data point drawn with probability proportional to its squared
	// distance from the nearest already-chosen mean.
	InitKMeansPlusPlus InitMethod = iota

	// InitRandomPoints seeds means with k distinct uniformly random data
	// points.
	InitRandomPoints

	// InitKeep leaves the model's current parameters untouched and starts
	// fitting from them. Use to warm-start from a previous Fit or from
	// NewFromComponents.
	InitKeep
)

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultMaxIter caps EM iterations.
	DefaultMaxIter = 200

	// DefaultTol is the EM convergence threshold on the change of the mean
	// per-sample log-likelihood between consecutive iterations.
	DefaultTol = 1e-6

	// DefaultMinSigma floors every component scale. Prevents a component
	// from collapsing onto a single point and driving the likelihood to
	// +Inf (the classic GMM degeneracy).
	DefaultMinSigma = 1e-3

	// DefaultLearnRate is the SGD step size.
	DefaultLearnRate = 0.05

	// DefaultEpochs is the number of full passes SGD makes over the data.
	DefaultEpochs = 100

	// DefaultBatchSize is the SGD minibatch size. The final batch of an
	// epoch may be smaller.
	DefaultBatchSize = 64

	// DefaultSeed feeds the fit's private RNG (initialization and batch
	// shuffling). Fixed seed ⇒ reproducible fit.
	DefaultSeed = 1
)

// Options configures Fit.
//
// Fields:
//   - Solver      — SolverEM or SolverSGD.
//   - Init        — mean initialization strategy; InitKeep warm-starts.
//   - Seed        — RNG seed; all stochastic choices derive from it.
//   - MaxIter     — EM only: maximum iterations (≥ 1).
//   - Tol         — EM only: convergence threshold (≥ 0).
//   - MinSigma    — scale floor applied by both solvers (> 0).
//   - LearnRate   — SGD only: step size (> 0).
//   - Epochs      — SGD only: number of passes over the data (≥ 1).
//   - BatchSize   — SGD only: minibatch size (≥ 1); clipped to n.
//   - OnIteration — optional hook called after each EM iteration or SGD
//     epoch with (iteration, mean log-likelihood). Nil disables tracing.
type Options struct {
	Solver      Solver
	Init        InitMethod
	Seed        int64
	MaxIter     int
	Tol         float64
	MinSigma    float64
	LearnRate   float64
	Epochs      int
	BatchSize   int
	OnIteration func(iter int, score float64)
}

// DefaultOptions returns Options populated with the package defaults:
// EM solver, k-means++ init, and the Default* constants above.
func DefaultOptions() Options {
	return Options{
		Solver:    SolverEM,
		Init:      InitKMeansPlusPlus,
		Seed:      DefaultSeed,
		MaxIter:   DefaultMaxIter,
		Tol:       DefaultTol,
		MinSigma:  DefaultMinSigma,
		LearnRate: DefaultLearnRate,
		Epochs:    DefaultEpochs,
		BatchSize: DefaultBatchSize,
	}
}

// validate checks every option domain and returns ErrBadOption (wrapped with
// the offending field) on the first violation. Solver-specific fields are
// validated only for the selected solver.
func (o *Options) validate() error {
	if o.Solver != SolverEM && o.Solver != SolverSGD {
		return wrapOption("Solver", ErrBadOption)
	}
	if o.Init != InitKMeansPlusPlus && o.Init != InitRandomPoints && o.Init != InitKeep {
		return wrapOption("Init", ErrBadOption)
	}
	if o.MinSigma <= 0 {
		return wrapOption("MinSigma", ErrBadOption)
	}
	switch o.Solver {
	case SolverEM:
		if o.MaxIter < 1 {
			return wrapOption("MaxIter", ErrBadOption)
		}
		if o.Tol < 0 {
			return wrapOption("Tol", ErrBadOption)
		}
	case SolverSGD:
		if o.LearnRate <= 0 {
			return wrapOption("LearnRate", ErrBadOption)
		}
		if o.Epochs < 1 {
			return wrapOption("Epochs", ErrBadOption)
		}
		if o.BatchSize < 1 {
			return wrapOption("BatchSize", ErrBadOption)
		}
	}

	return nil
}
