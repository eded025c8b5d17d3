// SPDX-License-Identifier: MIT
// Package sparse: conversion of survey observations into the shared
// lightcurve form.

package sparse

import (
	"math"

	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/photom"
)

// lnTenOverPointFour converts magnitude error to relative flux error:
// σ_flux/flux ≈ (ln 10 / 2.5)·σ_mag.
const lnTenOverPointFour = 0.9210340371976184

// ToLightcurve packs the whole sparse dataset into one photom.Lightcurve:
//
//   - brightness = 10^(−0.4·mag) · (r·Δ)², i.e. linear flux reduced to unit
//     distances using geometry derived from the orbital elements;
//   - weights = 1/σ_flux² with σ_flux propagated from the magnitude error;
//   - Sun/observer ecliptic directions from the orbit and the circular
//     observer approximation.
//
// The spin state affects none of these outputs; per-epoch body-frame
// directions are derived later by whichever solver consumes the curve.
//
// Complexity: O(Len) Kepler solves.
func ToLightcurve(d *Dataset, el geom.OrbitalElements) (*photom.Lightcurve, error) {
	n := d.Len()
	if n == 0 {
		return nil, ErrEmptyDataset
	}

	lc := &photom.Lightcurve{
		JD:         make([]float64, n),
		Brightness: make([]float64, n),
		Weights:    make([]float64, n),
		SunEcl:     make([]geom.Vec3, n),
		ObsEcl:     make([]geom.Vec3, n),
	}

	for i, o := range d.Observations {
		lc.JD[i] = o.JD

		rAst := geom.OrbitalPosition(el, o.JD)
		rObs := geom.EarthPosition(o.JD)

		rHelio := rAst.Norm()
		obsVec := rObs.Sub(rAst)
		rGeo := obsVec.Norm()

		lc.SunEcl[i] = rAst.Neg().Unit()
		lc.ObsEcl[i] = obsVec.Unit()

		flux := math.Pow(10.0, -0.4*o.Mag)
		reduced := flux * (rHelio * rGeo) * (rHelio * rGeo)
		lc.Brightness[i] = reduced

		sigma := reduced * lnTenOverPointFour * o.MagErr
		lc.Weights[i] = 1.0 / (sigma*sigma + phaseEps)
	}
	return lc, nil
}

// MagnitudesOf converts a packed sparse lightcurve back to magnitudes for
// shape-free period statistics (PDM).
func MagnitudesOf(lc *photom.Lightcurve) []float64 {
	out := make([]float64, lc.Len())
	for i, b := range lc.Brightness {
		out[i] = photom.FluxToMag(b)
	}
	return out
}
