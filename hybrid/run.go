// SPDX-License-Identifier: MIT
// Package hybrid: the two-stage pipeline.

package hybrid

import (
	"github.com/katalvlaran/asterinv/convex"
	"github.com/katalvlaran/asterinv/evolve"
	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/photom"
)

// Run executes the full pipeline over an unknown spin: convex inversion with
// period and pole searches over [pMin, pMax] hours, then — only if the
// convex residual exceeds Chi2Threshold — evolutionary refinement seeded
// with the convex solution at the fixed Stage 1 spin.
//
// Errors are those of the underlying stages (convex.ErrNoLightcurves,
// convex.ErrPeriodRange, evolve.ErrBadOption, ...).
func Run(lcs []*photom.Lightcurve, pMin, pMax float64, opts Options) (Result, error) {
	convexRes, err := convex.Run(lcs, pMin, pMax, opts.Convex)
	if err != nil {
		return Result{}, err
	}
	return refine(lcs, convexRes, opts)
}

// RunWithSpin executes the pipeline at a caller-fixed spin state, skipping
// the period and pole searches entirely.
func RunWithSpin(lcs []*photom.Lightcurve, spin geom.SpinState, opts Options) (Result, error) {
	convexRes, err := convex.RunFixedSpin(lcs, spin, opts.Convex)
	if err != nil {
		return Result{}, err
	}
	return refine(lcs, convexRes, opts)
}

// refine applies the adaptive switch and, when engaged, the GA stage.
func refine(lcs []*photom.Lightcurve, convexRes convex.Result, opts Options) (Result, error) {
	out := Result{
		Mesh:         convexRes.Mesh,
		Spin:         convexRes.Spin,
		Chi2Convex:   convexRes.Chi2,
		Chi2Final:    convexRes.Chi2,
		Stage:        StageConvex,
		ConvexResult: convexRes,
	}
	if convexRes.Chi2 <= opts.Chi2Threshold {
		return out, nil
	}

	gaRes, err := evolve.Run(lcs, convexRes.Spin, opts.GA, convexRes.Mesh)
	if err != nil {
		return Result{}, err
	}
	out.UsedGA = true
	out.GAResult = &gaRes

	// Keep whichever stage fits better. The GA objective adds its own
	// regularizer, so a seeded population can still finish marginally above
	// the convex residual; the comparison guards against that.
	if gaRes.Fitness < convexRes.Chi2 {
		out.Mesh = gaRes.Mesh
		out.Chi2Final = gaRes.Fitness
		out.Stage = StageGA
	}
	return out, nil
}
