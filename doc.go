// Package asterinv recovers asteroid shapes and spin states from disk-integrated
// photometry — the classical lightcurve-inversion problem.
//
// 🚀 What is asterinv?
//
//	A deterministic, single-threaded numeric library that brings together:
//		• Geometry & ephemeris: Kepler solving, spin-frame transforms, viewing geometry
//		• Forward model: facet meshes + Lommel-Seeliger/Lambert brightness synthesis
//		• Convex inversion: facet-area optimization (Kaasalainen–Torppa style)
//		• Evolutionary inversion: free-vertex genetic refinement for non-convex bodies
//		• Sparse photometry: phase-curve calibration + combined dense/sparse objectives
//		• Hybrid pipeline: convex first, evolutionary only when the residual demands it
//		• Uncertainty: bootstrap resampling and χ²-landscape period errors
//
// ✨ Why choose asterinv?
//
//   - Deterministic – every stochastic stage takes an explicit seed
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure numerics – no I/O beyond a minimal OBJ-style mesh exchange format
//   - Composable – each stage is a root-level package usable on its own
//
// Under the hood, everything is organized under eight subpackages:
//
//	geom/        — orbital elements, spin states, frames, viewing geometry
//	mesh/        — triangular meshes, builders, face properties, OBJ exchange
//	photom/      — scattering law and lightcurve synthesis
//	convex/      — convex shape optimizer + period/pole grid searches
//	evolve/      — evolutionary (genetic) shape optimizer
//	sparse/      — sparse-photometry calibration and combined inversion
//	hybrid/      — convex→evolutionary orchestration
//	uncertainty/ — bootstrap and landscape-based error estimation
//
// Brightness everywhere in the core is a relative linear flux; magnitudes only
// appear at the observation boundary (photom and sparse conversion helpers).
//
//	go get github.com/katalvlaran/asterinv
package asterinv
