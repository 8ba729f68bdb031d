// Package grid defines rectangular evaluation grids for rasterizing
// two-dimensional density functions — the bridge between a fitted model
// and its heatmap.
//
// What & Why:
//
//	Visualizing a density means evaluating it at every node of a regular
//	mesh over a window of the plane. Grid captures the window (extents)
//	and the resolution (Cols×Rows nodes, endpoints included), hands out
//	the axis coordinates, and evaluates any func(x, y) float64 — or a
//	mixture model directly — into a dense matrix ready for plotting.
//
// Conventions:
//
//	The density matrix is Rows×Cols with row i ↔ YS()[i] and column j ↔
//	XS()[j]; element (i, j) is the density at (XS()[j], YS()[i]). Both
//	axes run in increasing coordinate order.
//
// Complexity:
//
//	New / FromData — O(1) / O(n)
//	Evaluate       — O(Rows·Cols) calls of f
package grid
