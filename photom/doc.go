// Package photom implements the forward brightness model: given a facet mesh
// and Sun/observer directions in the body frame, it predicts the relative
// disk-integrated brightness of the body.
//
// The facet scattering law is a linear blend of a Lommel-Seeliger-like term
// cosI·cosE/(cosI+cosE) and a Lambert term cosI·cosE, controlled by a single
// mixing parameter (0 = pure Lommel-Seeliger, 1 = pure Lambert). A facet
// contributes only when both the incidence and the emission cosine are
// positive — the self-shadowing rule of the quasi-convex model; no ray
// casting is performed.
//
// Brightness is a relative, unnormalized linear flux. Conversion to
// magnitudes (−2.5·log10) happens only at the observation boundary via
// FluxToMag/MagToFlux — never inside optimizer objectives.
//
// Brightness returns exactly 0 when no facet is simultaneously lit and
// visible; every optimizer guards that degenerate case with a large penalty
// before dividing.
package photom
