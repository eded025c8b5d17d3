// Package uncertainty quantifies how well a recovered model is actually
// constrained, via bootstrap resampling and chi-squared landscape analysis.
//
// 🚀 The estimator repeats the shape fit on perturbed replicas of the data:
// each trial resamples every lightcurve's points with replacement, adds
// Gaussian noise scaled to the curve's mean brightness, and re-optimizes the
// shape. The scatter of the per-trial solutions is the uncertainty:
//   - per-vertex position variance and RMS displacement map for the shape;
//   - pole and period sample statistics when the spin is re-searched per
//     trial (EstimateWithPoleSearch); at fixed spin the spin scatter is
//     zero by construction and the landscape criterion takes over.
//
// ✨ Period uncertainty additionally uses the Δχ²=1 width of the period
// landscape (the classical single-parameter confidence criterion), with a
// half-width-at-half-maximum fallback for shallow valleys and a grid-step
// floor so a one-point valley never reports zero uncertainty.
//
// All randomness is seeded; identical inputs reproduce identical estimates.
package uncertainty
