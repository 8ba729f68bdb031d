// Package mixture implements Gaussian mixture models over diagonal-covariance
// components: construction, fitting, density queries, soft/hard assignment,
// and ancestral sampling.
//
// 🚀 What is a Gaussian mixture?
//
//	A weighted sum of K Gaussian "bumps". Each component k carries a mean
//	vector μ_k, per-coordinate scales σ_k, and a mixing weight w_k on the
//	probability simplex. The model density at a point x is
//
//	  p(x) = Σ_k  w_k · N(x; μ_k, diag(σ_k²))
//
//	Mixtures are the workhorse of density estimation and soft clustering:
//	anomaly scoring, color-model segmentation, speaker verification,
//	and generally "my data has a few fuzzy clusters" situations.
//
// ✨ Key features:
//   - two fitting engines behind one Fit surface (choose via Options.Solver):
//     SolverEM  — deterministic expectation-maximization (default)
//     SolverSGD — minibatch gradient ascent on the log-likelihood with
//     softplus-constrained scales and softmax-constrained weights,
//     tuned by LearnRate / Epochs / BatchSize
//   - k-means++ or random-point initialization (Options.Init)
//   - log-space E-step (LogSumExp) — no underflow for distant points
//   - variance floor (Options.MinSigma) — components cannot collapse to NaN
//   - per-iteration hook (Options.OnIteration) for convergence tracing
//   - deterministic for a fixed Options.Seed
//
// ⚙️ Usage:
//
//	m, err := mixture.New(3, 2)         // 3 components in the plane
//	opts := mixture.DefaultOptions()
//	opts.Solver = mixture.SolverSGD
//	opts.LearnRate, opts.Epochs, opts.BatchSize = 0.05, 200, 128
//	err = m.Fit(data, &opts)            // data: *mat.Dense, rows = points
//	p, err := m.Prob([]float64{1, -2})  // pointwise density
//
// Performance:
//
//	E-step / one SGD epoch: O(n·K·d) time, O(n·K) memory for responsibilities
//	Queries (LogProb/Prob/Predict): O(K·d) per point
//
// Errors are package sentinels (ErrEmptyData, ErrTooFewSamples,
// ErrDimensionMismatch, ErrBadComponents, ErrBadOption, ErrNaNInf);
// match with errors.Is. See errors.go.
package mixture
