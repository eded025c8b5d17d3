// SPDX-License-Identifier: MIT
// Package sparse: data containers and the sentinel error set.

package sparse

import (
	"errors"

	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
)

var (
	// ErrEmptyDataset indicates a Dataset with no observations where at
	// least one is required.
	ErrEmptyDataset = errors.New("sparse: dataset contains no observations")

	// ErrPeriodRange indicates an empty or inverted period search range.
	ErrPeriodRange = errors.New("sparse: invalid period search range")

	// ErrGridSize indicates a pole grid or PDM binning with fewer than one
	// cell per axis.
	ErrGridSize = errors.New("sparse: grid sizes must be >= 1")
)

// Observation is a single calibrated survey measurement.
type Observation struct {
	// JD is the observation epoch (Julian Date).
	JD float64
	// Mag is the observed apparent magnitude.
	Mag float64
	// MagErr is the 1-sigma magnitude uncertainty.
	MagErr float64
	// Filter identifies the photometric band ("G", "V", ...).
	Filter string
	// PhaseAngle is the Sun-target-observer angle (radians).
	PhaseAngle float64
	// RHelio and RGeo are heliocentric and observer distances (AU).
	RHelio float64
	RGeo   float64
}

// Dataset is a collection of sparse observations, possibly spanning several
// filters and apparitions.
type Dataset struct {
	Observations []Observation
	// Source names the survey, e.g. "GaiaDR3", "ZTF", "PanSTARRS".
	Source string
	// TargetID identifies the asteroid.
	TargetID string
}

// Len returns the number of observations.
func (d *Dataset) Len() int { return len(d.Observations) }

// PDMCell is one sample of the phase-dispersion landscape.
type PDMCell struct {
	Period float64 // trial period (hours)
	Theta  float64 // dispersion statistic, lower is better
}

// PoleCell is one sample of the sparse pole grid search.
type PoleCell struct {
	Lambda float64
	Beta   float64
	Chi2   float64
}

// Result is the outcome of a sparse-only inversion.
type Result struct {
	Mesh *mesh.Mesh
	Spin geom.SpinState
	// Chi2 is the final sparse chi-squared per point.
	Chi2 float64
	// PDMLandscape is the period dispersion scan, in scan order.
	PDMLandscape []PDMCell
	// PoleGrid is the pole search landscape.
	PoleGrid []PoleCell
}
