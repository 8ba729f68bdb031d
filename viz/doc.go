// Package viz renders fitted densities as heatmap images — the last step
// of the tutorial flow, after grid evaluation.
//
// What & Why:
//
//	A density matrix is just numbers; the payoff of fitting a mixture is
//	*seeing* the bumps land on the data. DensityMap draws the matrix as a
//	heatmap over the grid's window, optionally overlays the training
//	points as a scatter, and saves the figure to disk. Rendering is
//	delegated wholesale to gonum.org/v1/plot; this package only adapts
//	gmix types onto plot's interfaces and validates shapes up front.
//
// The output format follows the file extension (.png, .svg, .pdf, ...),
// as supported by plot.Plot.Save.
package viz
