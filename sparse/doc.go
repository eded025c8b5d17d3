// Package sparse handles survey photometry: a few hundred isolated
// absolute-calibrated magnitudes spread over years (Gaia DR3, ZTF,
// Pan-STARRS style cadence) instead of dense nightly lightcurves.
//
// 🚀 What the package provides:
//   - phase-curve models (two-parameter H,G and three-parameter H,G1,G2)
//     and magnitude reduction that strips distance modulus and phase trend;
//   - conversion of a sparse Dataset into the photom.Lightcurve form shared
//     with the dense solvers, with inverse-variance weights propagated from
//     magnitude errors into flux space;
//   - a sparse chi-squared with one global scale (sparse photometry is
//     absolutely calibrated, so a per-point or per-night scale would erase
//     the signal) and a combined dense+sparse objective;
//   - phase dispersion minimization (PDM) period search, which needs no
//     shape model at all, plus a pole grid and a sparse-only inversion
//     pipeline: PDM → pole grid → shape fit.
//
// ✨ Conventions: magnitudes are apparent unless named reduced, phase angles
// are radians, distances AU. Sentinel errors only; no logging.
package sparse
