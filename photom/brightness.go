package photom

import (
	"math"

	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
)

// DefaultMix is the default Lambert mixing parameter used across the
// pipeline: a mostly Lommel-Seeliger surface with a small Lambert admixture,
// appropriate for low-albedo regolith.
const DefaultMix = 0.1

// Facet scattering value for incidence cosine muS and emission cosine muO,
// both already known positive.
func scatter(muS, muO, mix float64) float64 {
	ls := muS * muO / (muS + muO)
	lam := muS * muO
	return (1-mix)*ls + mix*lam
}

// Brightness computes the relative disk-integrated brightness of the mesh
// for unit Sun and observer directions in the body frame.
//
// Per facet: incidence cosine = normal·sunDir, emission cosine =
// normal·obsDir; the facet contributes area·scatter only when both cosines
// are positive. Returns exactly 0 when no facet is lit and visible at once.
//
// Complexity: O(NumFaces).
func Brightness(m *mesh.Mesh, sunDir, obsDir geom.Vec3, mix float64) float64 {
	total := 0.0
	for i, n := range m.Normals {
		muS := n.Dot(sunDir)
		if muS <= 0 {
			continue
		}
		muO := n.Dot(obsDir)
		if muO <= 0 {
			continue
		}
		total += m.Areas[i] * scatter(muS, muO, mix)
	}
	return total
}

// LightcurveDirect evaluates Brightness independently for each row of the
// parallel sunDirs/obsDirs arrays. Rows are independent; order does not
// matter.
func LightcurveDirect(m *mesh.Mesh, sunDirs, obsDirs []geom.Vec3, mix float64) []float64 {
	out := make([]float64, len(sunDirs))
	for i := range sunDirs {
		out[i] = Brightness(m, sunDirs[i], obsDirs[i], mix)
	}
	return out
}

// RotationLightcurve samples one full rotation of the body at nPoints even
// phase steps, for fixed Sun/observer directions in the ecliptic frame.
// Returns the rotational phases (radians) and the brightness at each phase.
func RotationLightcurve(m *mesh.Mesh, spin geom.SpinState, sunEcl, obsEcl geom.Vec3, nPoints int, mix float64) (phases, brightness []float64) {
	phases = make([]float64, nPoints)
	brightness = make([]float64, nPoints)
	sun := sunEcl.Unit()
	obs := obsEcl.Unit()
	periodDays := spin.PeriodHours / 24.0

	for i := 0; i < nPoints; i++ {
		phase := 2 * math.Pi * float64(i) / float64(nPoints)
		jd := spin.JD0 + phase/(2*math.Pi)*periodDays
		r := geom.EclipticToBodyMatrix(spin, jd)
		phases[i] = phase
		brightness[i] = Brightness(m, r.MulVec(sun), r.MulVec(obs), mix)
	}
	return phases, brightness
}

// FluxToMag converts relative linear flux to a relative magnitude. Fluxes at
// or below zero are floored to keep the logarithm finite.
func FluxToMag(flux float64) float64 {
	return -2.5 * math.Log10(math.Max(flux, 1e-30))
}

// MagToFlux converts a magnitude to relative linear flux (arbitrary
// zero-point).
func MagToFlux(mag float64) float64 {
	return math.Pow(10.0, -0.4*mag)
}
