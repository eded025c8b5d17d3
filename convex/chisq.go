// SPDX-License-Identifier: MIT
// Package convex: the weighted chi-squared objective shared by the shape
// optimizer and both grid searches.

package convex

import (
	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
	"github.com/katalvlaran/asterinv/photom"
)

// scaleEps guards the closed-form scale denominator against an all-zero model.
const scaleEps = 1e-30

// ChiSquared evaluates the goodness of fit of mesh m under spin against the
// given lightcurves.
//
// Per curve, the optimal multiplicative scale c = Σw·obs·mod / (Σw·mod²+ε)
// is applied in closed form before accumulating Σw·(obs − c·mod)². A curve
// whose model is zero at every epoch contributes DegeneratePenalty instead.
// The accumulated misfit is normalized by the total point count across all
// curves, then the (unnormalized) area regularizer
// regWeight·Σ(aᵢ−ā)²/(ā²+ε) is added.
//
// dirs may carry body-frame directions precomputed for this exact spin
// (photom.PrecomputeBodyDirs); pass nil to compute them on the fly.
//
// Contracts:
//   - m.Areas and m.Normals are consistent with the facet parameterization.
//   - len(dirs) == len(lcs) when dirs != nil.
//
// Complexity: O(Σ Lenᵢ · F) with F facets.
func ChiSquared(m *mesh.Mesh, spin geom.SpinState, lcs []*photom.Lightcurve, mix, regWeight float64, dirs []photom.BodyDirs) float64 {
	chi2 := 0.0
	nTotal := 0

	for i, lc := range lcs {
		var bd photom.BodyDirs
		if dirs != nil {
			bd = dirs[i]
		} else {
			bd = lc.BodyDirections(spin)
		}
		model := photom.LightcurveDirect(m, bd.Sun, bd.Obs, mix)

		allZero := true
		for _, v := range model {
			if v != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			chi2 += DegeneratePenalty
			nTotal += lc.Len()
			continue
		}

		num, den := 0.0, 0.0
		for j, v := range model {
			num += lc.Weights[j] * lc.Brightness[j] * v
			den += lc.Weights[j] * v * v
		}
		c := num / (den + scaleEps)

		for j, v := range model {
			r := lc.Brightness[j] - c*v
			chi2 += lc.Weights[j] * r * r
		}
		nTotal += lc.Len()
	}

	if nTotal > 0 {
		chi2 /= float64(nTotal)
	}
	if regWeight > 0 {
		chi2 += regWeight * areaRegularizer(m.Areas)
	}
	return chi2
}

// areaRegularizer measures relative spread of facet areas around their mean.
// Keeps the Gaussian-image solution close to a round body unless the data
// insists otherwise.
func areaRegularizer(areas []float64) float64 {
	if len(areas) == 0 {
		return 0
	}
	mean := 0.0
	for _, a := range areas {
		mean += a
	}
	mean /= float64(len(areas))

	sum := 0.0
	for _, a := range areas {
		d := a - mean
		sum += d * d
	}
	return sum / (mean*mean + scaleEps)
}
