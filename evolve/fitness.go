// SPDX-License-Identifier: MIT
// Package evolve: fitness evaluation for free-vertex individuals.

package evolve

import (
	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
	"github.com/katalvlaran/asterinv/photom"
)

const fitnessEps = 1e-30

// degenerateCurvePenalty matches the convex stage: a curve whose model is
// zero everywhere contributes this instead of a fitted residual.
const degenerateCurvePenalty = 1e10

// EvaluateFitness scores one vertex set over the shared topology: the
// per-curve scale-fitted chi-squared (normalized by total point count) plus
// the edge-length regularizer. A vertex set producing any zero-area facet
// returns TopologyPenalty immediately.
//
// dirs must be body-frame directions precomputed for spin
// (photom.PrecomputeBodyDirs); pass nil to compute per call.
//
// Complexity: O(Σ Lenᵢ · F + F).
func EvaluateFitness(vertices []geom.Vec3, faces [][3]int, spin geom.SpinState, lcs []*photom.Lightcurve, mix, regWeight float64, dirs []photom.BodyDirs) float64 {
	normals, areas := mesh.FaceProperties(vertices, faces)
	for _, a := range areas {
		if a <= 0 {
			return TopologyPenalty
		}
	}
	m := &mesh.Mesh{Vertices: vertices, Faces: faces, Normals: normals, Areas: areas}

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
			chi2 += degenerateCurvePenalty
			continue
		}

		num, den := 0.0, 0.0
		for j, v := range model {
			num += lc.Weights[j] * lc.Brightness[j] * v
			den += lc.Weights[j] * v * v
		}
		c := num / (den + fitnessEps)
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
		chi2 += regWeight * edgeRegularizer(vertices, faces)
	}
	return chi2
}

// edgeRegularizer measures relative spread of per-face edge lengths around
// their mean. Shared edges count once per adjacent face, weighting interior
// edges double; acceptable for a smoothness prior.
func edgeRegularizer(vertices []geom.Vec3, faces [][3]int) float64 {
	n := len(faces) * 3
	if n == 0 {
		return 0
	}
	lengths := make([]float64, 0, n)
	mean := 0.0
	for _, f := range faces {
		for e := 0; e < 3; e++ {
			l := vertices[f[e]].Sub(vertices[f[(e+1)%3]]).Norm()
			lengths = append(lengths, l)
			mean += l
		}
	}
	mean /= float64(n)

	sum := 0.0
	for _, l := range lengths {
		d := l - mean
		sum += d * d
	}
	return sum / (mean*mean + fitnessEps)
}
