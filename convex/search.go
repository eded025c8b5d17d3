// SPDX-License-Identifier: MIT
// Package convex: period and pole grid searches.

package convex

import (
	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
	"github.com/katalvlaran/asterinv/photom"
)

// PeriodSearch scans nPeriods trial periods evenly spaced over
// [pMin, pMax] hours, running a cheap shape fit at each, and returns the best
// period together with the full landscape. All trials share base's pole and
// phase reference; only PeriodHours varies.
//
// The landscape is returned in scan order so callers can inspect secondary
// minima (period aliasing is common with sparse rotational coverage).
//
// Complexity: O(nPeriods) shape fits of optIter iterations each.
func PeriodSearch(initial *mesh.Mesh, base geom.SpinState, lcs []*photom.Lightcurve, pMin, pMax float64, nPeriods int, mix, regWeight float64, optIter int) (float64, []PeriodCell, error) {
	if len(lcs) == 0 {
		return 0, nil, ErrNoLightcurves
	}
	if pMin <= 0 || pMin >= pMax || nPeriods < 1 {
		return 0, nil, ErrPeriodRange
	}

	landscape := make([]PeriodCell, nPeriods)
	bestPeriod, bestChi2 := pMin, 0.0

	for i := 0; i < nPeriods; i++ {
		p := pMin
		if nPeriods > 1 {
			p = pMin + (pMax-pMin)*float64(i)/float64(nPeriods-1)
		}
		spin := base
		spin.PeriodHours = p

		_, chi2, _, err := OptimizeShape(initial, spin, lcs, mix, regWeight, optIter)
		if err != nil {
			return 0, nil, err
		}
		landscape[i] = PeriodCell{Period: p, Chi2: chi2}
		if i == 0 || chi2 < bestChi2 {
			bestPeriod, bestChi2 = p, chi2
		}
	}
	return bestPeriod, landscape, nil
}

// PoleSearch scans an nLambda x nBeta grid of pole directions at a fixed
// period, running a cheap shape fit at each, and returns the best pole
// (degrees) with the full grid.
//
// Longitudes cover [0°, 360°) endpoint-exclusive; latitudes are bin centers
// of an even split of [-90°, 90°], deliberately avoiding the exact poles
// where the longitude becomes meaningless. The (λ+180°, −β) mirror pole fits
// dense photometry equally well; the grid returns whichever cell scores
// first.
func PoleSearch(initial *mesh.Mesh, base geom.SpinState, lcs []*photom.Lightcurve, nLambda, nBeta int, mix, regWeight float64, optIter int) (float64, float64, []PoleCell, error) {
	if len(lcs) == 0 {
		return 0, 0, nil, ErrNoLightcurves
	}
	if nLambda < 1 || nBeta < 1 {
		return 0, 0, nil, ErrGridSize
	}

	grid := make([]PoleCell, 0, nLambda*nBeta)
	bestLam, bestBet, bestChi2 := 0.0, 0.0, 0.0
	first := true

	for li := 0; li < nLambda; li++ {
		lam := 360.0 * float64(li) / float64(nLambda)
		for bi := 0; bi < nBeta; bi++ {
			bet := -90.0 + (2.0*float64(bi)+1.0)*90.0/float64(nBeta)

			spin := base
			spin.LambdaDeg = lam
			spin.BetaDeg = bet

			_, chi2, _, err := OptimizeShape(initial, spin, lcs, mix, regWeight, optIter)
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
