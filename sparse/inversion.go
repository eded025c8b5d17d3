// SPDX-License-Identifier: MIT
// Package sparse: pole search and the sparse-only inversion pipeline.

package sparse

import (
	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
	"github.com/katalvlaran/asterinv/photom"
)

// PoleSearch scans an nLambda x nBeta pole grid at a fixed period, fitting a
// cheap sparse-only shape at each cell. Longitudes cover [0°, 360°)
// endpoint-exclusive; latitudes are bin centers avoiding the exact poles.
// The chi-squared recorded per cell is the normalized combined objective of
// that cell's fit.
func PoleSearch(lc *photom.Lightcurve, periodHours float64, nLambda, nBeta, subdivisions int, mix, regWeight float64, maxIter int) (float64, float64, []PoleCell, error) {
	if lc == nil || lc.Len() == 0 {
		return 0, 0, nil, ErrEmptyDataset
	}
	if nLambda < 1 || nBeta < 1 {
		return 0, 0, nil, ErrGridSize
	}
	seed, err := mesh.NewIcosphere(subdivisions)
	if err != nil {
		return 0, 0, nil, err
	}

	grid := make([]PoleCell, 0, nLambda*nBeta)
	bestLam, bestBet, bestChi2 := 0.0, 0.0, 0.0
	first := true

	for li := 0; li < nLambda; li++ {
		lam := 360.0 * float64(li) / float64(nLambda)
		for bi := 0; bi < nBeta; bi++ {
			bet := -90.0 + (2.0*float64(bi)+1.0)*90.0/float64(nBeta)

			spin := geom.SpinState{
				LambdaDeg:   lam,
				BetaDeg:     bet,
				PeriodHours: periodHours,
				JD0:         lc.JD[0],
			}
			_, chi2, _, err := OptimizeCombined(seed, spin, nil, lc, mix, 1.0, regWeight, maxIter)
			if err != nil {
				return 0, 0, nil, err
			}
			grid = append(grid, PoleCell{Lambda: lam, Beta: bet, Chi2: chi2})
			if first || chi2 < bestChi2 {
				bestLam, bestBet, bestChi2 = lam, bet, chi2
				first = false
			}
		}
	}
	return bestLam, bestBet, grid, nil
}

// RunInversion recovers spin and shape from sparse photometry alone:
//
//  1. PDM period scan over [pMin, pMax] — shape-free, so cheap enough for a
//     dense scan;
//  2. pole grid search at the PDM period;
//  3. full-budget sparse shape fit at the recovered spin.
//
// The reported Chi2 is the per-point sparse chi-squared of the final mesh.
// The mirror pole (λ+180°, −β) remains unresolved, as with any photometric
// inversion.
func RunInversion(lc *photom.Lightcurve, pMin, pMax float64, opts Options) (Result, error) {
	if lc == nil || lc.Len() == 0 {
		return Result{}, ErrEmptyDataset
	}
	if pMin <= 0 || pMin >= pMax {
		return Result{}, ErrPeriodRange
	}
	o := opts.normalized()

	period, pdm, err := PeriodSearchPDM(lc.JD, MagnitudesOf(lc), pMin, pMax, o.NPeriods, o.NBins)
	if err != nil {
		return Result{}, err
	}

	lam, bet, grid, err := PoleSearch(lc, period, o.NLambda, o.NBeta, o.Subdivisions, o.Mix, o.RegWeight, o.RefineIter)
	if err != nil {
		return Result{}, err
	}
	spin := geom.SpinState{LambdaDeg: lam, BetaDeg: bet, PeriodHours: period, JD0: lc.JD[0]}

	seed, err := mesh.NewIcosphere(o.Subdivisions)
	if err != nil {
		return Result{}, err
	}
	shape, _, _, err := OptimizeCombined(seed, spin, nil, lc, o.Mix, o.LambdaSparse, o.RegWeight, o.MaxIter)
	if err != nil {
		return Result{}, err
	}

	chi2, n := ChiSquared(shape, spin, lc, o.Mix, nil)
	return Result{
		Mesh:         shape,
		Spin:         spin,
		Chi2:         chi2 / float64(n),
		PDMLandscape: pdm,
		PoleGrid:     grid,
	}, nil
}
