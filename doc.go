// Package gmix is your in-memory playground for building, fitting, and
// visualizing Gaussian mixture densities — from elementary distributions
// to full density maps.
//
// 🚀 What is gmix?
//
//	A small, deterministic library that brings together:
//		• Elementary distributions: univariate & diagonal multivariate normals
//		• Mixture models: construction, EM and SGD fitting, density queries
//		• Synthetic datasets: Gaussian blobs & interleaved moons
//		• Evaluation grids: rasterize any density over a rectangle
//		• Visualization: heatmap + scatter PNG rendering
//
// ✨ Why choose gmix?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – explicit RNG injection, fixed seeds reproduce fits
//   - Pure Go on gonum – no cgo, no tensor framework required
//   - Extensible – iteration hooks on Fit for custom convergence logic
//
// Under the hood, everything is organized under five subpackages:
//
//	dist/    — Normal and DiagNormal distribution primitives
//	mixture/ — GaussianMixture: Fit (EM / SGD), Prob, Predict, Sample
//	dataset/ — synthetic 2-D data generators (Blobs, Moons)
//	grid/    — rectangular evaluation grids for density rasterization
//	viz/     — density heatmaps with data overlays, saved as PNG
//
// Quick sketch of the tutorial flow:
//
//	data  := dataset.Blobs(…)        // three fuzzy clusters in the plane
//	model := mixture.New(3, 2)       // three 2-D components
//	model.Fit(data, opts)            // EM by default, SGD if you insist
//	g     := grid.New(…)             // a 100×100 window over the data
//	dens  := g.EvaluateProb(model)   // pointwise mixture density
//	viz.DensityMap(g, dens, data, …) // density.png
//
// Dive into examples/ for full narrated scenarios, and each package's
// doc.go for contracts, complexity notes and error semantics.
//
//	go get github.com/katalvlaran/gmix
package gmix
