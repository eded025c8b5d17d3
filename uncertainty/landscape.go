// SPDX-License-Identifier: MIT
// Package uncertainty: chi-squared landscape width criterion.

package uncertainty

import "github.com/katalvlaran/asterinv/convex"

// PeriodSigmaFromLandscape estimates a 1-sigma period uncertainty from a
// chi-squared-vs-period scan using the Δχ² ≤ 1 single-parameter criterion:
// half the width of the interval where the landscape stays within 1 of its
// minimum.
//
// Degenerate landscapes degrade in order:
//  1. fewer than two points satisfy Δχ² ≤ 1 → retry with the threshold
//     lifted to the smallest Δχ² plus 1 (catches offset floors);
//  2. still fewer than two → half width at half maximum of the valley;
//  3. still fewer than two → one grid step, so the report is never zero.
//
// Returns 0 only for landscapes with fewer than two cells.
func PeriodSigmaFromLandscape(landscape []convex.PeriodCell) float64 {
	if len(landscape) < 2 {
		return 0
	}

	best := landscape[0].Chi2
	worst := landscape[0].Chi2
	for _, cell := range landscape {
		if cell.Chi2 < best {
			best = cell.Chi2
		}
		if cell.Chi2 > worst {
			worst = cell.Chi2
		}
	}

	if s, ok := widthWithin(landscape, best+1.0); ok {
		return s
	}
	// All deltas exceed 1: lift the threshold to the smallest delta plus 1.
	minDelta := landscape[0].Chi2 - best
	for _, cell := range landscape {
		if d := cell.Chi2 - best; d < minDelta {
			minDelta = d
		}
	}
	if s, ok := widthWithin(landscape, best+minDelta+1.0); ok {
		return s
	}
	// Half width at half maximum of the valley.
	if s, ok := widthWithin(landscape, best+(worst-best)/2.0); ok {
		return s
	}
	// Grid-step floor.
	return (landscape[len(landscape)-1].Period - landscape[0].Period) / float64(len(landscape))
}

// widthWithin returns half the period span of cells at or below the
// threshold, and whether at least two cells qualified.
func widthWithin(landscape []convex.PeriodCell, threshold float64) (float64, bool) {
	count := 0
	var lo, hi float64
	for _, cell := range landscape {
		if cell.Chi2 > threshold {
			continue
		}
		if count == 0 {
			lo, hi = cell.Period, cell.Period
		} else {
			if cell.Period < lo {
				lo = cell.Period
			}
			if cell.Period > hi {
				hi = cell.Period
			}
		}
		count++
	}
	if count < 2 {
		return 0, false
	}
	return (hi - lo) / 2.0, true
}
