package geom

// GMSun is the gravitational parameter of the Sun in AU³/day².
const GMSun = 2.9591220828559093e-4

// OrbitalElements holds osculating Keplerian orbital elements of the target
// body. Supplied once per target by the caller; read-only everywhere.
type OrbitalElements struct {
	// A is the semi-major axis (AU).
	A float64
	// E is the eccentricity, 0 ≤ E < 1.
	E float64
	// Incl is the inclination (radians).
	Incl float64
	// Node is the longitude of the ascending node (radians).
	Node float64
	// Peri is the argument of perihelion (radians).
	Peri float64
	// M0 is the mean anomaly at Epoch (radians).
	M0 float64
	// Epoch is the reference epoch (Julian Date).
	Epoch float64
}

// SpinState describes the rotation state of the body. Immutable value:
// produced by a solver stage (grid search) or supplied by the caller, and
// consumed read-only by every downstream stage.
type SpinState struct {
	// LambdaDeg is the pole ecliptic longitude (degrees).
	LambdaDeg float64
	// BetaDeg is the pole ecliptic latitude (degrees).
	BetaDeg float64
	// PeriodHours is the sidereal rotation period (hours).
	PeriodHours float64
	// JD0 is the reference epoch (Julian Date).
	JD0 float64
	// Phi0 is the rotational phase at JD0 (radians).
	Phi0 float64
}

// Geometry holds derived viewing geometry for a set of epochs, as produced by
// ComputeGeometry. All slices share the epoch ordering of the input.
type Geometry struct {
	// SunBody holds unit Sun directions in the body frame.
	SunBody []Vec3
	// ObsBody holds unit observer directions in the body frame.
	ObsBody []Vec3
	// PhaseAngle is the Sun–target–observer angle (radians).
	PhaseAngle []float64
	// AspectAngle is the angle between observer direction and spin axis (radians).
	AspectAngle []float64
	// RHelio is the heliocentric distance (AU).
	RHelio []float64
	// RGeo is the observer-to-target distance (AU).
	RGeo []float64
}
