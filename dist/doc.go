// Package dist provides the elementary distribution primitives that the
// rest of gmix composes into mixture models: a univariate Normal and a
// diagonal-covariance multivariate Normal (DiagNormal).
//
// What & Why:
//
//	Mixture models only ever need two things from a component distribution:
//	a log-density at a point and a way to draw samples. Both types here keep
//	exactly that surface — LogProb/Prob/Sample — as small value types with
//	exported parameter fields, validated once at construction.
//
// Numeric policy:
//
//	Constructors reject non-finite parameters (NaN/±Inf) and non-positive
//	scales with sentinel errors; density evaluation itself never validates,
//	so the hot path stays branch-light. All log-densities are computed in
//	natural log space and are exact up to floating-point rounding.
//
// Complexity:
//
//	Normal.LogProb     — O(1)
//	DiagNormal.LogProb — O(d) for dimension d
//	DiagNormal.Sample  — O(d)
//
// Errors:
//
//	ErrBadSigma, ErrEmptyDim, ErrDimensionMismatch, ErrNaNInf, ErrNilRand —
//	see errors.go for the full sentinel set.
package dist
