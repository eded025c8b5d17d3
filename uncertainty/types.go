// SPDX-License-Identifier: MIT
// Package uncertainty: configuration, result container, sentinels.

package uncertainty

import (
	"errors"

	"github.com/katalvlaran/asterinv/convex"
)

var (
	// ErrNoLightcurves indicates an empty lightcurve set.
	ErrNoLightcurves = errors.New("uncertainty: no lightcurves supplied")

	// ErrBadOption indicates an Options field outside its valid range.
	ErrBadOption = errors.New("uncertainty: option out of range")
)

// Options configures the bootstrap estimator.
type Options struct {
	// NBootstrap is the number of bootstrap trials.
	NBootstrap int
	// Subdivisions selects the icosphere seed level of the per-trial fits.
	Subdivisions int
	// Mix and RegWeight parameterize the per-trial shape objective.
	Mix       float64
	RegWeight float64
	// MaxIter bounds each per-trial shape fit.
	MaxIter int
	// PMin and PMax enable the period landscape scan when 0 < PMin < PMax;
	// leave both zero to skip it.
	PMin, PMax float64
	// NPeriods is the landscape resolution.
	NPeriods int
	// NoiseSigma is the per-trial Gaussian noise level as a fraction of each
	// curve's mean brightness.
	NoiseSigma float64
	// PoleNLambda and PoleNBeta set the coarse per-trial pole grid of
	// EstimateWithPoleSearch.
	PoleNLambda int
	PoleNBeta   int
	// Seed drives all randomness; 0 selects the fixed default seed.
	Seed int64
}

// DefaultOptions returns the reference configuration: 100 trials over a
// level-1 icosphere with 0.5% noise.
func DefaultOptions() Options {
	return Options{
		NBootstrap:   100,
		Subdivisions: 1,
		Mix:          0.1,
		RegWeight:    0.01,
		MaxIter:      100,
		NPeriods:     50,
		NoiseSigma:   0.005,
		PoleNLambda:  6,
		PoleNBeta:    3,
		Seed:         42,
	}
}

func (o Options) validate() error {
	if o.NBootstrap < 1 || o.Subdivisions < 0 || o.MaxIter < 1 {
		return ErrBadOption
	}
	if o.NoiseSigma < 0 {
		return ErrBadOption
	}
	return nil
}

// PoleSample is one bootstrap pole solution (degrees).
type PoleSample struct {
	Lambda float64
	Beta   float64
}

// Result holds bootstrap statistics for spin and shape.
type Result struct {
	// Pole statistics over the bootstrap samples (degrees).
	PoleLambdaMean float64
	PoleBetaMean   float64
	PoleLambdaStd  float64
	PoleBetaStd    float64
	PoleSamples    []PoleSample

	// Period statistics (hours). PeriodStd is the larger of the bootstrap
	// scatter and the landscape Δχ²=1 width when a landscape was computed.
	PeriodMean    float64
	PeriodStd     float64
	PeriodSamples []float64

	// Per-vertex squared displacement from the mean bootstrap shape, and its
	// square root (an RMS displacement map over the seed topology).
	VertexVariance []float64
	VertexStd      []float64

	// PeriodLandscape is the chi-squared scan used for the landscape
	// criterion; nil when the scan was skipped.
	PeriodLandscape []convex.PeriodCell
}
