// SPDX-License-Identifier: MIT
// Package convex: staged inversion entry points.

package convex

import (
	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
	"github.com/katalvlaran/asterinv/photom"
)

// Run performs the full staged convex inversion over an unknown spin state:
//
//  1. coarse period scan over [pMin, pMax],
//  2. pole grid search at the best coarse period,
//  3. fine period re-scan in a ±2-grid-step window around the coarse best,
//  4. final shape optimization at the refined spin.
//
// The phase reference epoch JD0 is pinned to the first epoch of the first
// lightcurve; Phi0 stays zero (absolute rotational phase is unobservable from
// relative photometry).
//
// Contracts:
//   - len(lcs) >= 1, each curve non-empty.
//   - 0 < pMin < pMax in hours.
func Run(lcs []*photom.Lightcurve, pMin, pMax float64, opts Options) (Result, error) {
	if len(lcs) == 0 || lcs[0].Len() == 0 {
		return Result{}, ErrNoLightcurves
	}
	if pMin <= 0 || pMin >= pMax {
		return Result{}, ErrPeriodRange
	}
	o := opts.normalized()

	seed, err := mesh.NewIcosphere(o.Subdivisions)
	if err != nil {
		return Result{}, err
	}
	base := geom.SpinState{JD0: lcs[0].JD[0]}

	// Stage 1: coarse period scan at an arbitrary pole.
	coarse, landscape, err := PeriodSearch(seed, base, lcs, pMin, pMax, o.NPeriods, o.Mix, o.RegWeight, o.SearchIter)
	if err != nil {
		return Result{}, err
	}
	base.PeriodHours = coarse

	// Stage 2: pole grid at the coarse period.
	lam, bet, _, err := PoleSearch(seed, base, lcs, o.NLambda, o.NBeta, o.Mix, o.RegWeight, o.RefineIter)
	if err != nil {
		return Result{}, err
	}
	base.LambdaDeg = lam
	base.BetaDeg = bet

	// Stage 3: fine period re-scan around the coarse minimum, now with the
	// fitted pole. Window spans two coarse grid steps either side.
	dp := (pMax - pMin) / float64(o.NPeriods) * 2.0
	fineMin, fineMax := coarse-dp, coarse+dp
	if fineMin <= 0 {
		fineMin = coarse / 2.0
	}
	fine, _, err := PeriodSearch(seed, base, lcs, fineMin, fineMax, 50, o.Mix, o.RegWeight, o.RefineIter)
	if err != nil {
		return Result{}, err
	}
	base.PeriodHours = fine

	// Stage 4: full-budget shape fit at the refined spin.
	shape, chi2, history, err := OptimizeShape(seed, base, lcs, o.Mix, o.RegWeight, o.MaxIter)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Mesh:            shape,
		Spin:            base,
		Chi2:            chi2,
		History:         history,
		PeriodLandscape: landscape,
	}, nil
}

// RunFixedSpin fits the shape only, for a caller-supplied spin state. Used
// when the period and pole are already known (radar, occultations, a prior
// inversion) and by downstream refinement stages.
func RunFixedSpin(lcs []*photom.Lightcurve, spin geom.SpinState, opts Options) (Result, error) {
	if len(lcs) == 0 {
		return Result{}, ErrNoLightcurves
	}
	o := opts.normalized()

	seed, err := mesh.NewIcosphere(o.Subdivisions)
	if err != nil {
		return Result{}, err
	}
	shape, chi2, history, err := OptimizeShape(seed, spin, lcs, o.Mix, o.RegWeight, o.MaxIter)
	if err != nil {
		return Result{}, err
	}
	return Result{Mesh: shape, Spin: spin, Chi2: chi2, History: history}, nil
}
