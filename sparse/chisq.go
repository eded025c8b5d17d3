// SPDX-License-Identifier: MIT
// Package sparse: sparse and combined objectives.

package sparse

import (
	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
	"github.com/katalvlaran/asterinv/photom"
)

// degeneratePenalty matches the dense solvers: an all-dark model draws a
// large finite misfit.
const degeneratePenalty = 1e10

// ChiSquared scores the mesh against sparse observations with one global
// scale factor fitted in closed form. Sparse photometry is absolutely
// calibrated after reduction, so unlike the dense case there is no per-night
// freedom; the single scale only absorbs the unknown albedo-size product.
//
// Returns the unnormalized chi-squared and the point count; callers divide.
// dirs may carry precomputed body-frame directions for spin; pass nil to
// compute here.
func ChiSquared(m *mesh.Mesh, spin geom.SpinState, lc *photom.Lightcurve, mix float64, dirs *photom.BodyDirs) (float64, int) {
	n := lc.Len()
	if n == 0 {
		return 0, 0
	}
	var bd photom.BodyDirs
	if dirs != nil {
		bd = *dirs
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
		return degeneratePenalty, n
	}

	num, den := 0.0, 0.0
	for j, v := range model {
		num += lc.Weights[j] * lc.Brightness[j] * v
		den += lc.Weights[j] * v * v
	}
	c := num / (den + phaseEps)

	chi2 := 0.0
	for j, v := range model {
		r := lc.Brightness[j] - c*v
		chi2 += lc.Weights[j] * r * r
	}
	return chi2, n
}

// CombinedChiSquared blends dense and sparse misfits:
//
//	total = chi2_dense + lambdaSparse·chi2_sparse + regularizer
//
// where each population is normalized by its own point count first, so
// lambdaSparse weighs information content rather than raw point counts.
// sparseLC may be nil or empty; the objective then degrades gracefully to
// the dense-only form (and vice versa).
func CombinedChiSquared(m *mesh.Mesh, spin geom.SpinState, dense []*photom.Lightcurve, sparseLC *photom.Lightcurve, mix, lambdaSparse, regWeight float64, denseDirs []photom.BodyDirs, sparseDirs *photom.BodyDirs) float64 {
	chi2Dense := 0.0
	nDense := 0
	for i, lc := range dense {
		var bd photom.BodyDirs
		if denseDirs != nil {
			bd = denseDirs[i]
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
			chi2Dense += degeneratePenalty
			continue
		}

		num, den := 0.0, 0.0
		for j, v := range model {
			num += lc.Weights[j] * lc.Brightness[j] * v
			den += lc.Weights[j] * v * v
		}
		c := num / (den + phaseEps)
		for j, v := range model {
			r := lc.Brightness[j] - c*v
			chi2Dense += lc.Weights[j] * r * r
		}
		nDense += lc.Len()
	}
	if nDense > 0 {
		chi2Dense /= float64(nDense)
	}

	chi2Sparse := 0.0
	if sparseLC != nil && sparseLC.Len() > 0 {
		s, n := ChiSquared(m, spin, sparseLC, mix, sparseDirs)
		chi2Sparse = s / float64(n)
	}

	reg := 0.0
	if regWeight > 0 {
		reg = regWeight * areaSpread(m.Areas)
	}
	return chi2Dense + lambdaSparse*chi2Sparse + reg
}

// areaSpread is the relative variance of facet areas around their mean, the
// same smoothness prior the dense convex stage uses.
func areaSpread(areas []float64) float64 {
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
	return sum / (mean*mean + phaseEps)
}
