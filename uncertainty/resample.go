// SPDX-License-Identifier: MIT
// Package uncertainty: bootstrap replica construction.

package uncertainty

import (
	"math/rand"

	"github.com/katalvlaran/asterinv/photom"
)

// defaultRNGSeed backs the seed==0 policy shared across the solver packages.
const defaultRNGSeed int64 = 1

func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// resample draws Len points with replacement from lc, keeping draw order.
func resample(lc *photom.Lightcurve, rng *rand.Rand) *photom.Lightcurve {
	n := lc.Len()
	indices := make([]int, n)
	for i := range indices {
		indices[i] = rng.Intn(n)
	}
	return lc.Select(indices)
}

// addNoise perturbs brightness in place with Gaussian noise scaled to the
// curve's mean brightness. Callers pass freshly resampled copies only.
func addNoise(lc *photom.Lightcurve, sigmaFrac float64, rng *rand.Rand) {
	scale := sigmaFrac * lc.MeanBrightness()
	for j := range lc.Brightness {
		lc.Brightness[j] += rng.NormFloat64() * scale
	}
}

// replicate builds one full bootstrap replica of the dataset.
func replicate(lcs []*photom.Lightcurve, sigmaFrac float64, rng *rand.Rand) []*photom.Lightcurve {
	out := make([]*photom.Lightcurve, len(lcs))
	for i, lc := range lcs {
		r := resample(lc, rng)
		addNoise(r, sigmaFrac, rng)
		out[i] = r
	}
	return out
}
