// SPDX-License-Identifier: MIT
// Package convex: facet-area shape optimization.

package convex

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
	"github.com/katalvlaran/asterinv/photom"
)

// OptimizeShape fits the facet areas of initial to the lightcurves at a fixed
// spin state and returns the reconstructed mesh, its final chi-squared, and
// the ordered objective history.
//
// Areas are optimized as log-areas, keeping every facet area strictly
// positive without constraints. Facet normals stay fixed at those of the
// seed: the optimization moves the discrete Gaussian image weights only.
// After convergence, vertex positions are rebuilt by scaling each seed vertex
// radially by cbrt(mean adjacent area / overall mean area).
//
// Contracts:
//   - initial must pass Validate; it is never mutated.
//   - len(lcs) >= 1, each with consistent per-epoch slices.
//
// Complexity: O(maxIter · Σ Lenᵢ · F) plus the L-BFGS bookkeeping.
func OptimizeShape(initial *mesh.Mesh, spin geom.SpinState, lcs []*photom.Lightcurve, mix, regWeight float64, maxIter int) (*mesh.Mesh, float64, []float64, error) {
	if len(lcs) == 0 {
		return nil, 0, nil, ErrNoLightcurves
	}
	if err := initial.Validate(); err != nil {
		return nil, 0, nil, err
	}
	if maxIter <= 0 {
		maxIter = DefaultOptions().MaxIter
	}

	dirs := photom.PrecomputeBodyDirs(spin, lcs)
	work := initial.Clone()

	x0 := make([]float64, len(initial.Areas))
	for i, a := range initial.Areas {
		x0[i] = math.Log(a + scaleEps)
	}

	var history []float64
	problem := optimize.Problem{
		Func: func(logAreas []float64) float64 {
			for i, la := range logAreas {
				work.Areas[i] = math.Exp(la)
			}
			chi2 := ChiSquared(work, spin, lcs, mix, regWeight, dirs)
			history = append(history, chi2)
			return chi2
		},
	}
	settings := &optimize.Settings{
		MajorIterations: maxIter,
		Converger:       &optimize.FunctionConverge{Absolute: 1e-12, Iterations: 20},
	}

	res, err := optimize.Minimize(problem, x0, settings, &optimize.LBFGS{})
	if res == nil {
		return nil, 0, nil, err
	}
	// Linesearch stalls on the flat degenerate plateau surface as a non-nil
	// err with a usable result; the best point found is still the answer.

	areas := make([]float64, len(res.X))
	for i, la := range res.X {
		areas[i] = math.Exp(la)
	}

	out := reconstructVertices(initial, areas)
	chi2 := ChiSquared(out, spin, lcs, mix, regWeight, dirs)
	return out, chi2, history, nil
}

// reconstructVertices builds the output mesh: seed topology and normals, the
// optimized areas, and seed vertices scaled radially by the cube root of
// mean-adjacent-area over global mean area.
func reconstructVertices(seed *mesh.Mesh, areas []float64) *mesh.Mesh {
	out := seed.Clone()
	out.Areas = areas

	meanArea := 0.0
	for _, a := range areas {
		meanArea += a
	}
	meanArea /= float64(len(areas))

	adj := seed.VertexFaceIndex()
	for vi := range out.Vertices {
		faces := adj[vi]
		if len(faces) == 0 {
			continue
		}
		local := 0.0
		for _, fi := range faces {
			local += areas[fi]
		}
		local /= float64(len(faces))

		ratio := local / (meanArea + scaleEps)
		if ratio < scaleEps {
			ratio = scaleEps
		}
		out.Vertices[vi] = seed.Vertices[vi].Scale(math.Cbrt(ratio))
	}
	return out
}
