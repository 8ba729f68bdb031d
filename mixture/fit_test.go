package mixture_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gmix/dist"
	"github.com/katalvlaran/gmix/mixture"
)

// blobs2D builds n points split evenly between Gaussian clusters at the
// given centers, all with the given stddev, from a fixed seed.
func blobs2D(t *testing.T, n int, centers [][2]float64, stddev float64, seed int64) *mat.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		c := centers[i%len(centers)]
		data.Set(i, 0, c[0]+stddev*rng.NormFloat64())
		data.Set(i, 1, c[1]+stddev*rng.NormFloat64())
	}

	return data
}

// sortedMeansX returns the fitted component means ordered by x-coordinate,
// so recovered centers can be compared to true centers irrespective of
// component labeling.
func sortedMeansX(m *mixture.GaussianMixture) [][]float64 {
	comps := m.Components()
	means := make([][]float64, len(comps))
	for j := range comps {
		means[j] = comps[j].Mu
	}
	sort.Slice(means, func(a, b int) bool { return means[a][0] < means[b][0] })

	return means
}

// TestFit_Validation covers the full pre-flight error surface, in the
// documented priority order.
func TestFit_Validation(t *testing.T) {
	m, err := mixture.New(2, 2)
	require.NoError(t, err)

	opts := mixture.DefaultOptions()
	opts.MaxIter = 0
	err = m.Fit(mat.NewDense(5, 2, nil), &opts)
	assert.ErrorIs(t, err, mixture.ErrBadOption, "MaxIter=0")

	opts = mixture.DefaultOptions()
	opts.Solver = mixture.SolverSGD
	opts.LearnRate = 0
	err = m.Fit(mat.NewDense(5, 2, nil), &opts)
	assert.ErrorIs(t, err, mixture.ErrBadOption, "LearnRate=0 under SGD")

	opts = mixture.DefaultOptions()
	opts.MinSigma = 0
	err = m.Fit(mat.NewDense(5, 2, nil), &opts)
	assert.ErrorIs(t, err, mixture.ErrBadOption, "MinSigma=0")

	err = m.Fit(nil, nil)
	assert.ErrorIs(t, err, mixture.ErrEmptyData, "nil data")

	err = m.Fit(mat.NewDense(5, 3, nil), nil)
	assert.ErrorIs(t, err, mixture.ErrDimensionMismatch, "3 columns for a 2-D model")

	err = m.Fit(mat.NewDense(1, 2, nil), nil)
	assert.ErrorIs(t, err, mixture.ErrTooFewSamples, "1 sample for 2 components")

	bad := mat.NewDense(3, 2, []float64{0, 0, 1, math.NaN(), 2, 2})
	err = m.Fit(bad, nil)
	assert.ErrorIs(t, err, mixture.ErrNaNInf, "NaN in data")
}

// TestFitEM_RecoversBlobs fits three well-separated clusters and checks
// the recovered means, weights, and scales.
func TestFitEM_RecoversBlobs(t *testing.T) {
	centers := [][2]float64{{-5, 0}, {0, 4}, {5, 0}}
	data := blobs2D(t, 600, centers, 0.6, 42)

	m, err := mixture.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, m.Fit(data, nil))

	means := sortedMeansX(m)
	assert.InDelta(t, -5.0, means[0][0], 0.3, "left cluster x")
	assert.InDelta(t, 0.0, means[0][1], 0.3, "left cluster y")
	assert.InDelta(t, 0.0, means[1][0], 0.3, "middle cluster x")
	assert.InDelta(t, 4.0, means[1][1], 0.3, "middle cluster y")
	assert.InDelta(t, 5.0, means[2][0], 0.3, "right cluster x")

	for j, w := range m.Weights() {
		assert.InDelta(t, 1.0/3.0, w, 0.05, "weight of component %d", j)
	}
	for _, c := range m.Components() {
		for d, s := range c.Sigma {
			assert.InDelta(t, 0.6, s, 0.2, "recovered scale, coordinate %d", d)
		}
	}
}

// TestFitEM_Deterministic verifies that a fixed Seed reproduces the fit.
func TestFitEM_Deterministic(t *testing.T) {
	data := blobs2D(t, 200, [][2]float64{{-3, 0}, {3, 0}}, 0.5, 7)

	fit := func() []float64 {
		m, err := mixture.New(2, 2)
		require.NoError(t, err)
		opts := mixture.DefaultOptions()
		opts.Seed = 99
		require.NoError(t, m.Fit(data, &opts))
		means := sortedMeansX(m)

		return append(append([]float64{}, means[0]...), means[1]...)
	}

	assert.Equal(t, fit(), fit(), "identical seeds must yield identical fits")
}

// TestFitEM_MonotoneLikelihood checks the EM guarantee through the
// OnIteration hook: the mean log-likelihood never decreases.
func TestFitEM_MonotoneLikelihood(t *testing.T) {
	data := blobs2D(t, 300, [][2]float64{{-4, 0}, {4, 0}}, 0.8, 13)

	var trace []float64
	m, err := mixture.New(2, 2)
	require.NoError(t, err)
	opts := mixture.DefaultOptions()
	opts.OnIteration = func(_ int, score float64) { trace = append(trace, score) }
	require.NoError(t, m.Fit(data, &opts))

	require.GreaterOrEqual(t, len(trace), 2, "hook must fire every iteration")
	for i := 1; i < len(trace); i++ {
		assert.GreaterOrEqual(t, trace[i], trace[i-1]-1e-9,
			"EM log-likelihood must not decrease (iteration %d)", i)
	}
}

// TestFitSGD_Deterministic verifies that a fixed Seed reproduces the SGD
// fit — initialization and every epoch's shuffle flow from the same RNG.
func TestFitSGD_Deterministic(t *testing.T) {
	data := blobs2D(t, 200, [][2]float64{{-3, 0}, {3, 0}}, 0.5, 7)

	fit := func() []float64 {
		m, err := mixture.New(2, 2)
		require.NoError(t, err)
		opts := mixture.DefaultOptions()
		opts.Solver = mixture.SolverSGD
		opts.Epochs = 40
		opts.Seed = 99
		require.NoError(t, m.Fit(data, &opts))

		out := append([]float64{}, m.Weights()...)
		for _, mu := range sortedMeansX(m) {
			out = append(out, mu...)
		}

		return out
	}

	assert.Equal(t, fit(), fit(), "identical seeds must yield identical SGD fits")
}

// TestFitEM_DeadComponentKeepsSimplex warm-starts one component so far
// from the data that its responsibilities underflow to zero, then checks
// the weight vector stays on the simplex and the surviving component
// absorbs all the mass.
func TestFitEM_DeadComponentKeepsSimplex(t *testing.T) {
	data := blobs2D(t, 100, [][2]float64{{0, 0}}, 0.3, 19)

	near, err := dist.NewDiagNormal([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	far, err := dist.NewDiagNormal([]float64{1000, 1000}, []float64{1, 1})
	require.NoError(t, err)
	m, err := mixture.NewFromComponents([]float64{0.5, 0.5}, []dist.DiagNormal{near, far})
	require.NoError(t, err)

	opts := mixture.DefaultOptions()
	opts.Init = mixture.InitKeep
	opts.MaxIter = 5
	require.NoError(t, m.Fit(data, &opts))

	w := m.Weights()
	assert.InDelta(t, 1.0, floats.Sum(w), 1e-9, "weights stay on the simplex")
	assert.InDelta(t, 1.0, w[0], 1e-9, "live component absorbs all mass")
	assert.InDelta(t, 0.0, w[1], 1e-9, "dead component's weight is re-estimated, not stale")

	// With the dead component weightless, the mixture density must equal
	// the live component's density alone — i.e. it stays normalized.
	p, err := m.Prob([]float64{0, 0})
	require.NoError(t, err)
	want, err := m.Components()[0].Prob([]float64{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, want, p, 1e-12, "density reduces to the live component")
}

// TestFit_DuplicatePointSeeding fits three components to data holding only
// two distinct locations, forcing the seeding path where every remaining
// point coincides with a chosen center.
func TestFit_DuplicatePointSeeding(t *testing.T) {
	raw := make([]float64, 0, 60)
	for i := 0; i < 15; i++ {
		raw = append(raw, -2, 0, 2, 0)
	}
	data := mat.NewDense(30, 2, raw)

	m, err := mixture.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, m.Fit(data, nil))

	assert.InDelta(t, 1.0, floats.Sum(m.Weights()), 1e-9, "weights on the simplex")
	for j, c := range m.Components() {
		for d, s := range c.Sigma {
			assert.False(t, math.IsNaN(s), "component %d sigma[%d] is NaN", j, d)
			assert.Greater(t, s, 0.0, "component %d sigma[%d] positive", j, d)
		}
	}
}

// TestFitEM_ImprovesScore compares the placeholder model's score with the
// fitted model's score on the same data.
func TestFitEM_ImprovesScore(t *testing.T) {
	data := blobs2D(t, 300, [][2]float64{{-4, -4}, {4, 4}}, 0.5, 21)

	m, err := mixture.New(2, 2)
	require.NoError(t, err)
	before, err := m.Score(data)
	require.NoError(t, err)

	require.NoError(t, m.Fit(data, nil))
	after, err := m.Score(data)
	require.NoError(t, err)

	assert.Greater(t, after, before, "fitting must improve the data likelihood")
}

// TestFitEM_VarianceFloor fits duplicated points (zero true variance) and
// checks no scale collapses below MinSigma and nothing goes NaN.
func TestFitEM_VarianceFloor(t *testing.T) {
	raw := make([]float64, 0, 40)
	for i := 0; i < 10; i++ {
		raw = append(raw, -1, 0, 1, 0)
	}
	data := mat.NewDense(20, 2, raw)

	m, err := mixture.New(2, 2)
	require.NoError(t, err)
	opts := mixture.DefaultOptions()
	opts.MinSigma = 0.01
	require.NoError(t, m.Fit(data, &opts))

	for _, c := range m.Components() {
		for d, s := range c.Sigma {
			assert.GreaterOrEqual(t, s, 0.01, "scale floored, coordinate %d", d)
			assert.False(t, math.IsNaN(s), "no NaN scales")
		}
	}
	w := m.Weights()
	assert.InDelta(t, 1.0, floats.Sum(w), 1e-9, "weights still on the simplex")
}

// TestFitSGD_RecoversBlobs runs the gradient solver with the tutorial's
// knobs (learn rate, epochs, batch size) on two separated clusters.
func TestFitSGD_RecoversBlobs(t *testing.T) {
	centers := [][2]float64{{-4, 0}, {4, 0}}
	data := blobs2D(t, 400, centers, 0.5, 5)

	m, err := mixture.New(2, 2)
	require.NoError(t, err)
	opts := mixture.DefaultOptions()
	opts.Solver = mixture.SolverSGD
	opts.LearnRate = 0.1
	opts.Epochs = 200
	opts.BatchSize = 64
	require.NoError(t, m.Fit(data, &opts))

	means := sortedMeansX(m)
	assert.InDelta(t, -4.0, means[0][0], 0.5, "left cluster x")
	assert.InDelta(t, 4.0, means[1][0], 0.5, "right cluster x")
	for j, w := range m.Weights() {
		assert.InDelta(t, 0.5, w, 0.1, "weight of component %d", j)
	}
}

// TestFitSGD_ImprovesScore verifies the gradient solver moves the
// likelihood in the right direction even with few epochs.
func TestFitSGD_ImprovesScore(t *testing.T) {
	data := blobs2D(t, 200, [][2]float64{{-3, 2}, {3, -2}}, 0.5, 31)

	m, err := mixture.New(2, 2)
	require.NoError(t, err)
	before, err := m.Score(data)
	require.NoError(t, err)

	opts := mixture.DefaultOptions()
	opts.Solver = mixture.SolverSGD
	opts.Epochs = 30
	require.NoError(t, m.Fit(data, &opts))

	after, err := m.Score(data)
	require.NoError(t, err)
	assert.Greater(t, after, before, "SGD must improve the data likelihood")
}

// TestFit_InitKeep warm-starts from explicit components and checks the
// solver refines rather than re-seeds them.
func TestFit_InitKeep(t *testing.T) {
	data := blobs2D(t, 200, [][2]float64{{-3, 0}, {3, 0}}, 0.4, 17)

	// Deliberately offset, asymmetric starting means; wide scales.
	c0, err := dist.NewDiagNormal([]float64{-1, 0}, []float64{2, 2})
	require.NoError(t, err)
	c1, err := dist.NewDiagNormal([]float64{1, 0}, []float64{2, 2})
	require.NoError(t, err)
	m, err := mixture.NewFromComponents([]float64{0.5, 0.5}, []dist.DiagNormal{c0, c1})
	require.NoError(t, err)

	opts := mixture.DefaultOptions()
	opts.Init = mixture.InitKeep
	opts.MaxIter = 100
	require.NoError(t, m.Fit(data, &opts))

	means := sortedMeansX(m)
	assert.InDelta(t, -3.0, means[0][0], 0.5, "left mean refined from warm start")
	assert.InDelta(t, 3.0, means[1][0], 0.5, "right mean refined from warm start")
}

// TestFit_InitRandomPoints checks the alternative seeding path converges
// on easy data too.
func TestFit_InitRandomPoints(t *testing.T) {
	data := blobs2D(t, 300, [][2]float64{{-5, 0}, {5, 0}}, 0.5, 23)

	m, err := mixture.New(2, 2)
	require.NoError(t, err)
	opts := mixture.DefaultOptions()
	opts.Init = mixture.InitRandomPoints
	require.NoError(t, m.Fit(data, &opts))

	means := sortedMeansX(m)
	assert.InDelta(t, -5.0, means[0][0], 0.4)
	assert.InDelta(t, 5.0, means[1][0], 0.4)
}
