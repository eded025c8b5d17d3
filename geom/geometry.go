package geom

import "math"

// OrbitalPosition converts Keplerian elements to a heliocentric ecliptic
// Cartesian position at the given epoch (Julian Date, AU).
//
// Steps: mean motion from GMSun, mean anomaly propagation, Kepler solve,
// true anomaly via the half-angle form, then rotation from the orbital plane
// into the ecliptic frame through the three orbital angles.
func OrbitalPosition(el OrbitalElements, jd float64) Vec3 {
	n := math.Sqrt(GMSun / (el.A * el.A * el.A)) // mean motion (rad/day)
	m := el.M0 + n*(jd-el.Epoch)
	ecc := SolveKepler(m, el.E)

	// True anomaly.
	nu := 2.0 * math.Atan2(
		math.Sqrt(1+el.E)*math.Sin(ecc/2),
		math.Sqrt(1-el.E)*math.Cos(ecc/2),
	)

	// Heliocentric distance and in-plane position.
	r := el.A * (1 - el.E*math.Cos(ecc))
	xOrb := r * math.Cos(nu)
	yOrb := r * math.Sin(nu)

	cosO, sinO := math.Cos(el.Node), math.Sin(el.Node)
	cosI, sinI := math.Cos(el.Incl), math.Sin(el.Incl)
	cosW, sinW := math.Cos(el.Peri), math.Sin(el.Peri)

	// P/Q vectors of the combined rotation to the ecliptic frame.
	px := cosO*cosW - sinO*sinW*cosI
	py := sinO*cosW + cosO*sinW*cosI
	pz := sinW * sinI

	qx := -cosO*sinW - sinO*cosW*cosI
	qy := -sinO*sinW + cosO*cosW*cosI
	qz := cosW * sinI

	return Vec3{
		X: px*xOrb + qx*yOrb,
		Y: py*xOrb + qy*yOrb,
		Z: pz*xOrb + qz*yOrb,
	}
}

// EarthPosition approximates the heliocentric ecliptic position of an
// observer on a circular 1 AU orbit at the given epoch. Used whenever the
// caller does not supply explicit observer positions.
func EarthPosition(jd float64) Vec3 {
	t := (jd - 2451545.0) / 365.25
	l := math.Mod(math.Pi/180.0*(100.46+360.0*t), 2*math.Pi)
	return Vec3{X: math.Cos(l), Y: math.Sin(l), Z: 0}
}

// SpinAxis returns the spin-axis unit vector in ecliptic coordinates for a
// pole at the given ecliptic longitude/latitude (degrees).
func SpinAxis(lambdaDeg, betaDeg float64) Vec3 {
	lam := lambdaDeg * math.Pi / 180.0
	bet := betaDeg * math.Pi / 180.0
	return Vec3{
		X: math.Cos(bet) * math.Cos(lam),
		Y: math.Cos(bet) * math.Sin(lam),
		Z: math.Sin(bet),
	}
}

// RotationPhase returns the rotational phase (radians) of the body at jd:
// Phi0 plus elapsed time over the sidereal period, unreduced.
func RotationPhase(spin SpinState, jd float64) float64 {
	periodDays := spin.PeriodHours / 24.0
	return spin.Phi0 + 2.0*math.Pi/periodDays*(jd-spin.JD0)
}

// EclipticToBodyMatrix composes the rotation from the ecliptic frame into the
// body frame at the given epoch:
//
//	R = Rz(φ) · Ry(π/2 − β) · Rz(−λ)
//
// i.e. de-rotation by pole longitude, tilt from the ecliptic pole to the
// body's polar axis, then rotation about the spin axis by the instantaneous
// phase. This is the single place spin kinematics is encoded.
func EclipticToBodyMatrix(spin SpinState, jd float64) Mat3 {
	lam := spin.LambdaDeg * math.Pi / 180.0
	bet := spin.BetaDeg * math.Pi / 180.0
	phi := RotationPhase(spin, jd)
	return RotZ(phi).Mul(RotY(math.Pi/2 - bet)).Mul(RotZ(-lam))
}

// ComputeGeometry derives the full viewing geometry for every epoch: Sun and
// observer unit directions in the body frame, phase and aspect angles, and
// heliocentric/observer distances.
//
// Observer positions are approximated on a circular 1 AU orbit when obsPos is
// nil; otherwise obsPos must hold one heliocentric ecliptic position per epoch.
// Inverse-cosine arguments are clamped to [-1, 1] before evaluation.
//
// Complexity: O(len(epochs)).
func ComputeGeometry(el OrbitalElements, spin SpinState, epochs []float64, obsPos []Vec3) Geometry {
	n := len(epochs)
	g := Geometry{
		SunBody:     make([]Vec3, n),
		ObsBody:     make([]Vec3, n),
		PhaseAngle:  make([]float64, n),
		AspectAngle: make([]float64, n),
		RHelio:      make([]float64, n),
		RGeo:        make([]float64, n),
	}
	zSpin := SpinAxis(spin.LambdaDeg, spin.BetaDeg)

	for j, jd := range epochs {
		rAst := OrbitalPosition(el, jd)
		var rObs Vec3
		if obsPos != nil {
			rObs = obsPos[j]
		} else {
			rObs = EarthPosition(jd)
		}

		g.RHelio[j] = rAst.Norm()
		sunEcl := rAst.Neg().Unit()

		obsVec := rObs.Sub(rAst)
		g.RGeo[j] = obsVec.Norm()
		obsEcl := obsVec.Unit()

		g.PhaseAngle[j] = math.Acos(Clamp(sunEcl.Dot(obsEcl), -1, 1))
		g.AspectAngle[j] = math.Acos(Clamp(obsEcl.Dot(zSpin), -1, 1))

		r := EclipticToBodyMatrix(spin, jd)
		g.SunBody[j] = r.MulVec(sunEcl)
		g.ObsBody[j] = r.MulVec(obsEcl)
	}

	return g
}
