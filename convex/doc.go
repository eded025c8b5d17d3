// Package convex implements convex lightcurve inversion in the
// Kaasalainen–Torppa tradition: the body is parameterized by its facet areas
// (the discrete Gaussian image), which are optimized against one or more
// dense lightcurves, with the rotation period and pole direction recovered by
// grid searches when the caller does not fix them.
//
// 🚀 Pipeline stages (Run):
//
//	Init(sphere) → PeriodSearch → PoleSearch → PeriodRefine → ShapeOptimize
//
// Fixed-spin mode (RunFixedSpin / OptimizeShape) lands directly on
// ShapeOptimize.
//
// Design notes:
//   - Facet areas are optimized in log-space, which guarantees positivity
//     without inequality constraints, using a quasi-Newton L-BFGS minimizer
//     (gonum.org/v1/gonum/optimize) with finite-difference gradients.
//   - Each lightcurve gets a closed-form multiplicative scale factor — dense
//     photometry is relative, so only the waveform shape is fitted.
//   - Degenerate models (zero brightness at every epoch) are penalized with a
//     large finite value, never raised: gradient-based iterates must always
//     receive a well-defined objective.
//   - After area optimization, vertex radial distances are reconstructed as
//     the cube root of mean adjacent-facet area over overall mean area. This
//     approximates classical Gaussian-image inversion for convex bodies; it
//     is an approximation, not an exact Minkowski reconstruction.
//   - The period-before-pole ordering is a heuristic tie-break; correlated
//     period/pole minima and the (λ+180°, −β) mirror pole remain inherent
//     degeneracies of the physics.
package convex
