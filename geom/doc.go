// Package geom provides the geometric and ephemeris foundation of asterinv:
// Keplerian orbit propagation, spin-frame kinematics, and viewing-geometry
// derivation for photometric epochs.
//
// Conventions:
//   - All epochs are Julian Dates (days).
//   - Orbital angles (inclination, node, perihelion argument, mean anomaly)
//     are radians; pole longitude/latitude are ecliptic degrees; rotation
//     periods are hours. These match the observational literature the rest
//     of the pipeline is calibrated against.
//   - Positions are heliocentric ecliptic Cartesian coordinates in AU.
//
// Every operation in this package is a pure numeric transform: out-of-range
// trigonometric domains caused by floating-point round-off are clamped, never
// surfaced as errors, so downstream optimizer loops stay exception-free.
//
// EclipticToBodyMatrix is the single place that encodes spin kinematics;
// every other package rotates vectors through it rather than re-deriving the
// composition.
package geom
