// SPDX-License-Identifier: MIT
// Package convex: sentinel error set and result containers.
// Algorithms return ONLY these sentinels for caller mistakes; numerical edge
// cases inside optimizer loops are penalized, not raised.

package convex

import (
	"errors"

	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
)

var (
	// ErrNoLightcurves indicates an empty lightcurve set where at least one
	// dense curve is required.
	ErrNoLightcurves = errors.New("convex: no lightcurves supplied")

	// ErrPeriodRange indicates an empty or inverted period search range
	// (requires pMin < pMax and at least one trial period).
	ErrPeriodRange = errors.New("convex: invalid period search range")

	// ErrGridSize indicates a pole grid with fewer than one cell per axis.
	ErrGridSize = errors.New("convex: pole grid sizes must be >= 1")
)

// DegeneratePenalty is the large finite chi-squared substituted for a
// lightcurve whose model brightness is zero at every epoch. Finite so that
// quasi-Newton iterates keep a usable gradient away from the degenerate
// region.
const DegeneratePenalty = 1e10

// PeriodCell is one sample of the chi-squared-vs-period landscape.
type PeriodCell struct {
	Period float64 // trial sidereal period (hours)
	Chi2   float64
}

// PoleCell is one sample of the pole grid search.
type PoleCell struct {
	Lambda float64 // pole ecliptic longitude (degrees)
	Beta   float64 // pole ecliptic latitude (degrees)
	Chi2   float64
}

// Result is the outcome of a convex inversion. Returned by value and never
// mutated after construction.
type Result struct {
	// Mesh is the recovered shape (vertices reconstructed from areas).
	Mesh *mesh.Mesh
	// Spin is the recovered (or caller-fixed) spin state.
	Spin geom.SpinState
	// Chi2 is the final normalized chi-squared.
	Chi2 float64
	// History is the ordered sequence of objective values seen during the
	// final shape optimization.
	History []float64
	// PeriodLandscape holds the coarse period search landscape when a period
	// search was run; nil in fixed-spin mode. Consumed by the uncertainty
	// estimator.
	PeriodLandscape []PeriodCell
}
