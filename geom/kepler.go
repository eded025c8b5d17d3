package geom

import "math"

// keplerTol is the absolute convergence tolerance of the Newton iteration.
const keplerTol = 1e-12

// keplerMaxIter caps the Newton iteration. Convergence is quadratic for
// 0 ≤ e < 1, so the cap is never reached on sane inputs.
const keplerMaxIter = 50

// SolveKepler solves Kepler's equation M = E − e·sin(E) for the eccentric
// anomaly E via Newton–Raphson iteration, starting from E₀ = M.
//
// Contracts:
//   - 0 ≤ e < 1 (elliptic orbit); the iteration converges for that range.
//   - Never fails: the fixed iteration cap bounds the cost, early exit on
//     |ΔE| < 1e-12.
//
// Complexity: O(iterations), typically 3–5 for small e.
func SolveKepler(meanAnomaly, eccentricity float64) float64 {
	e := meanAnomaly
	for i := 0; i < keplerMaxIter; i++ {
		dE := (meanAnomaly - e + eccentricity*math.Sin(e)) / (1.0 - eccentricity*math.Cos(e))
		e += dE
		if math.Abs(dE) < keplerTol {
			break
		}
	}
	return e
}

// SolveKeplerAll solves Kepler's equation for every mean anomaly in ms,
// returning a freshly allocated slice of eccentric anomalies.
func SolveKeplerAll(ms []float64, eccentricity float64) []float64 {
	out := make([]float64, len(ms))
	for i, m := range ms {
		out[i] = SolveKepler(m, eccentricity)
	}
	return out
}
