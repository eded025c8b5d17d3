package photom

import "github.com/katalvlaran/asterinv/geom"

// Lightcurve is one dense photometric time series with its viewing geometry.
// Owned by the caller; no optimizer mutates it (bootstrap makes copies).
type Lightcurve struct {
	// JD holds observation epochs (Julian Dates), in observation order.
	JD []float64
	// Brightness holds relative linear flux per epoch.
	Brightness []float64
	// Weights holds inverse-variance weights per epoch.
	Weights []float64
	// SunEcl and ObsEcl hold unit Sun/observer directions per epoch in the
	// ecliptic frame.
	SunEcl []geom.Vec3
	ObsEcl []geom.Vec3
}

// Len returns the number of observation points.
func (lc *Lightcurve) Len() int { return len(lc.JD) }

// BodyDirs holds per-epoch Sun/observer unit directions rotated into the
// body frame for a fixed spin state. Precomputing these once per spin trial
// is what keeps shape-optimization inner loops cheap.
type BodyDirs struct {
	Sun []geom.Vec3
	Obs []geom.Vec3
}

// BodyDirections rotates the lightcurve's ecliptic directions into the body
// frame for the given spin state, epoch by epoch.
//
// Complexity: O(Len).
func (lc *Lightcurve) BodyDirections(spin geom.SpinState) BodyDirs {
	n := lc.Len()
	bd := BodyDirs{Sun: make([]geom.Vec3, n), Obs: make([]geom.Vec3, n)}
	for j := 0; j < n; j++ {
		r := geom.EclipticToBodyMatrix(spin, lc.JD[j])
		bd.Sun[j] = r.MulVec(lc.SunEcl[j])
		bd.Obs[j] = r.MulVec(lc.ObsEcl[j])
	}
	return bd
}

// PrecomputeBodyDirs computes BodyDirections for every lightcurve in lcs.
func PrecomputeBodyDirs(spin geom.SpinState, lcs []*Lightcurve) []BodyDirs {
	out := make([]BodyDirs, len(lcs))
	for i, lc := range lcs {
		out[i] = lc.BodyDirections(spin)
	}
	return out
}

// Clone returns an independent deep copy of the lightcurve.
func (lc *Lightcurve) Clone() *Lightcurve {
	out := &Lightcurve{
		JD:         make([]float64, len(lc.JD)),
		Brightness: make([]float64, len(lc.Brightness)),
		Weights:    make([]float64, len(lc.Weights)),
		SunEcl:     make([]geom.Vec3, len(lc.SunEcl)),
		ObsEcl:     make([]geom.Vec3, len(lc.ObsEcl)),
	}
	copy(out.JD, lc.JD)
	copy(out.Brightness, lc.Brightness)
	copy(out.Weights, lc.Weights)
	copy(out.SunEcl, lc.SunEcl)
	copy(out.ObsEcl, lc.ObsEcl)
	return out
}

// Select returns a new lightcurve containing the points at the given indices
// (repeats allowed), in the given order. Used by bootstrap resampling.
func (lc *Lightcurve) Select(indices []int) *Lightcurve {
	out := &Lightcurve{
		JD:         make([]float64, len(indices)),
		Brightness: make([]float64, len(indices)),
		Weights:    make([]float64, len(indices)),
		SunEcl:     make([]geom.Vec3, len(indices)),
		ObsEcl:     make([]geom.Vec3, len(indices)),
	}
	for i, idx := range indices {
		out.JD[i] = lc.JD[idx]
		out.Brightness[i] = lc.Brightness[idx]
		out.Weights[i] = lc.Weights[idx]
		out.SunEcl[i] = lc.SunEcl[idx]
		out.ObsEcl[i] = lc.ObsEcl[idx]
	}
	return out
}

// MeanBrightness returns the mean observed flux, 0 for an empty curve.
func (lc *Lightcurve) MeanBrightness() float64 {
	if len(lc.Brightness) == 0 {
		return 0
	}
	total := 0.0
	for _, b := range lc.Brightness {
		total += b
	}
	return total / float64(len(lc.Brightness))
}
