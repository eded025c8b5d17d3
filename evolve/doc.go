// Package evolve implements a genetic solver for non-convex asteroid shapes
// in the SAGE tradition: individuals are free-vertex triangle meshes sharing
// one fixed topology, evolved against lightcurve data at a fixed spin state.
//
// 🚀 What the solver does:
//
//	population of vertex sets → tournament selection → blend/uniform
//	crossover → Gaussian/radial/local mutation → elitist replacement,
//	with the mutation amplitude decaying geometrically per generation.
//
// ✨ Design notes:
//   - The spin state is fixed during evolution. Free-vertex meshes and spin
//     parameters do not co-optimize well; recover spin first (package convex)
//     and evolve only the geometry.
//   - Fitness is the same per-curve scale-fitted chi-squared used by the
//     convex stage, plus an edge-length regularizer that keeps triangles
//     from collapsing. Meshes with a degenerate facet score a huge finite
//     penalty and are never selected.
//   - All randomness flows from a single caller-provided seed through
//     deterministic substreams: the same seed reproduces the same result
//     bit for bit.
//
// No logging, no panics; option mistakes return sentinel errors.
package evolve
