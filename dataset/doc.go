// Package dataset generates small synthetic datasets for demonstrating and
// testing density models: Gaussian blobs and interleaved half-moons.
//
// What & Why:
//
//	Every tutorial needs data with a known ground truth. Blobs produces the
//	classic "a few fuzzy clusters" cloud that a Gaussian mixture recovers
//	exactly; Moons produces the classic shape a Gaussian mixture *cannot*
//	represent well, useful for showing model limits. Both are modeled after
//	the scikit-learn generators of the same names.
//
// Determinism:
//
//	Generators take an explicit *rand.Rand and assign points to clusters /
//	moons in a fixed round-robin order, so a fixed seed reproduces the
//	dataset exactly, row for row.
//
// Complexity: O(n·d) time and memory for n points in d dimensions.
package dataset
