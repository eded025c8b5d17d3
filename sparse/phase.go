// SPDX-License-Identifier: MIT
// Package sparse: phase-curve models and magnitude reduction.
//
// Both models predict the reduced magnitude V(1,1,α): apparent magnitude
// with the distance modulus already removed. Basis functions follow the
// two-parameter H,G convention (Bowell et al. 1989) and the three-parameter
// H,G1,G2 extension (Muinonen et al. 2010) in their exponential forms.

package sparse

import "math"

const phaseEps = 1e-30

// phi1 and phi2 are the H,G opposition-surge basis functions of tan(α/2);
// the half angle is clamped just short of 90° so the tangent stays finite.
func phi1(alpha float64) float64 {
	half := clampHalf(alpha / 2.0)
	return math.Exp(-3.33 * math.Pow(math.Tan(half), 0.63))
}

func phi2(alpha float64) float64 {
	half := clampHalf(alpha / 2.0)
	return math.Exp(-1.87 * math.Pow(math.Tan(half), 1.22))
}

// phi3 is the linear large-angle basis of the three-parameter model.
func phi3(alpha float64) float64 {
	return 1.0 - alpha/math.Pi
}

func clampHalf(half float64) float64 {
	if half < 0 {
		return 0
	}
	if max := math.Pi/2 - 1e-10; half > max {
		return max
	}
	return half
}

// HGMagnitude predicts the reduced magnitude of the two-parameter model:
//
//	V(α) = H − 2.5·log10(G·φ1(α) + (1−G)·φ2(α))
//
// alpha in radians; the log argument is floored to stay finite at extreme
// phase angles.
func HGMagnitude(alpha, h, g float64) float64 {
	combined := g*phi1(alpha) + (1.0-g)*phi2(alpha)
	return h - 2.5*math.Log10(math.Max(combined, phaseEps))
}

// HG1G2Magnitude predicts the reduced magnitude of the three-parameter model:
//
//	V(α) = H − 2.5·log10(G1·φ1(α) + G2·φ2(α) + (1−G1−G2)·φ3(α))
func HG1G2Magnitude(alpha, h, g1, g2 float64) float64 {
	combined := g1*phi1(alpha) + g2*phi2(alpha) + (1.0-g1-g2)*phi3(alpha)
	return h - 2.5*math.Log10(math.Max(combined, phaseEps))
}

// ReducedMagnitudesHG strips the distance modulus and the H,G phase trend
// from every observation, leaving only the rotational variation:
//
//	m_red = m_obs − 5·log10(r·Δ) − (V_HG(α, H=0, G))
//
// The H=0 evaluation isolates the phase correction −2.5·log10(phase term).
func ReducedMagnitudesHG(d *Dataset, g float64) ([]float64, error) {
	if d.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	out := make([]float64, d.Len())
	for i, o := range d.Observations {
		out[i] = o.Mag - distanceModulus(o) - HGMagnitude(o.PhaseAngle, 0, g)
	}
	return out, nil
}

// ReducedMagnitudesHG1G2 is the three-parameter variant of
// ReducedMagnitudesHG.
func ReducedMagnitudesHG1G2(d *Dataset, g1, g2 float64) ([]float64, error) {
	if d.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	out := make([]float64, d.Len())
	for i, o := range d.Observations {
		out[i] = o.Mag - distanceModulus(o) - HG1G2Magnitude(o.PhaseAngle, 0, g1, g2)
	}
	return out, nil
}

func distanceModulus(o Observation) float64 {
	return 5.0 * math.Log10(math.Max(o.RHelio*o.RGeo, phaseEps))
}
