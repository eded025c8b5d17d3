// SPDX-License-Identifier: MIT
// Package sparse: phase dispersion minimization period search.

package sparse

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// PeriodSearchPDM scans trial periods with the phase dispersion statistic
// (Stellingwerf 1978): for each period the magnitudes are folded to
// rotational phase and split into nBins equal phase bins; the statistic
//
//	Θ(P) = s²_pooled / s²_overall
//
// compares pooled intra-bin variance against the total variance. A true
// period folds the data coherently, so intra-bin scatter collapses and Θ
// drops well below 1. No shape model is involved, which is what makes PDM
// the right first stage for sparse data.
//
// Bins holding fewer than two points are excluded from the pooled variance.
// Returns the best period and the full landscape in scan order.
//
// Complexity: O(nPeriods · N).
func PeriodSearchPDM(jd, mags []float64, pMin, pMax float64, nPeriods, nBins int) (float64, []PDMCell, error) {
	n := len(jd)
	if n == 0 || len(mags) != n {
		return 0, nil, ErrEmptyDataset
	}
	if pMin <= 0 || pMin >= pMax || nPeriods < 1 {
		return 0, nil, ErrPeriodRange
	}
	if nBins < 1 {
		return 0, nil, ErrGridSize
	}

	overall := stat.Variance(mags, nil)
	jd0 := jd[0]

	binned := make([][]float64, nBins)
	landscape := make([]PDMCell, nPeriods)
	bestPeriod, bestTheta := pMin, math.Inf(1)

	for i := 0; i < nPeriods; i++ {
		p := pMin
		if nPeriods > 1 {
			p = pMin + (pMax-pMin)*float64(i)/float64(nPeriods-1)
		}
		periodDays := p / 24.0

		for b := range binned {
			binned[b] = binned[b][:0]
		}
		for j, t := range jd {
			phase := math.Mod((t-jd0)/periodDays, 1.0)
			if phase < 0 {
				phase += 1.0
			}
			b := int(phase * float64(nBins))
			if b >= nBins {
				b = nBins - 1
			}
			binned[b] = append(binned[b], mags[j])
		}

		num, dof := 0.0, 0
		for _, bin := range binned {
			if len(bin) < 2 {
				continue
			}
			num += float64(len(bin)-1) * stat.Variance(bin, nil)
			dof += len(bin) - 1
		}

		theta := 1.0
		if dof > 0 && overall > phaseEps {
			theta = (num / float64(dof)) / overall
		}
		landscape[i] = PDMCell{Period: p, Theta: theta}
		if theta < bestTheta {
			bestPeriod, bestTheta = p, theta
		}
	}
	return bestPeriod, landscape, nil
}
