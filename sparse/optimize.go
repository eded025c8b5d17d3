// SPDX-License-Identifier: MIT
// Package sparse: combined shape optimization.

package sparse

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
	"github.com/katalvlaran/asterinv/photom"
)

// OptimizeCombined fits facet areas of initial against the combined
// dense+sparse objective at a fixed spin. Either population may be absent,
// but not both. Log-area parameterization and L-BFGS as in the dense convex
// stage; the seed vertices and normals are kept — this optimizer refines the
// Gaussian image weights only, for callers that want the objective history
// against mixed data without a vertex rebuild.
//
// Returns the optimized mesh, the final combined objective, and its history.
func OptimizeCombined(initial *mesh.Mesh, spin geom.SpinState, dense []*photom.Lightcurve, sparseLC *photom.Lightcurve, mix, lambdaSparse, regWeight float64, maxIter int) (*mesh.Mesh, float64, []float64, error) {
	hasSparse := sparseLC != nil && sparseLC.Len() > 0
	if len(dense) == 0 && !hasSparse {
		return nil, 0, nil, ErrEmptyDataset
	}
	if err := initial.Validate(); err != nil {
		return nil, 0, nil, err
	}
	if maxIter <= 0 {
		maxIter = DefaultOptions().MaxIter
	}

	denseDirs := photom.PrecomputeBodyDirs(spin, dense)
	var sparseDirs *photom.BodyDirs
	if hasSparse {
		bd := sparseLC.BodyDirections(spin)
		sparseDirs = &bd
	}

	work := initial.Clone()
	x0 := make([]float64, len(initial.Areas))
	for i, a := range initial.Areas {
		x0[i] = math.Log(a + phaseEps)
	}

	var history []float64
	problem := optimize.Problem{
		Func: func(logAreas []float64) float64 {
			for i, la := range logAreas {
				work.Areas[i] = math.Exp(la)
			}
			total := CombinedChiSquared(work, spin, dense, sparseLC, mix, lambdaSparse, regWeight, denseDirs, sparseDirs)
			history = append(history, total)
			return total
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

	out := initial.Clone()
	out.Areas = make([]float64, len(res.X))
	for i, la := range res.X {
		out.Areas[i] = math.Exp(la)
	}
	return out, res.F, history, nil
}
