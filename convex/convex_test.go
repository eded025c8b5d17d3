package convex_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/asterinv/convex"
	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
	"github.com/katalvlaran/asterinv/photom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticCurve builds a noise-free lightcurve of mesh m under spin, with
// fixed ecliptic Sun/observer directions and n epochs over spanDays.
func syntheticCurve(m *mesh.Mesh, spin geom.SpinState, sun, obs geom.Vec3, n int, spanDays float64) *photom.Lightcurve {
	lc := &photom.Lightcurve{
		JD:      make([]float64, n),
		Weights: make([]float64, n),
		SunEcl:  make([]geom.Vec3, n),
		ObsEcl:  make([]geom.Vec3, n),
	}
	for j := 0; j < n; j++ {
		lc.JD[j] = spin.JD0 + spanDays*float64(j)/float64(n)
		lc.Weights[j] = 1
		lc.SunEcl[j] = sun.Unit()
		lc.ObsEcl[j] = obs.Unit()
	}
	bd := lc.BodyDirections(spin)
	lc.Brightness = photom.LightcurveDirect(m, bd.Sun, bd.Obs, photom.DefaultMix)
	return lc
}

// equatorView is the shared truth geometry: pole at the ecliptic north pole,
// Sun and observer in the ecliptic plane.
var equatorView = geom.SpinState{LambdaDeg: 0, BetaDeg: 90, PeriodHours: 6.0, JD0: 2451545.0}

// TestChiSquared_TruthIsZero: the generating mesh fits its own noise-free
// data perfectly once the regularizer is off.
func TestChiSquared_TruthIsZero(t *testing.T) {
	ell, err := mesh.NewEllipsoid(2, 1, 1, 1)
	require.NoError(t, err)
	lc := syntheticCurve(ell, equatorView, geom.Vec3{X: 1}, geom.Vec3{X: 1}, 40, 0.5)

	chi2 := convex.ChiSquared(ell, equatorView, []*photom.Lightcurve{lc}, photom.DefaultMix, 0, nil)
	assert.InDelta(t, 0.0, chi2, 1e-18)
}

// TestChiSquared_ScaleFreedom: the closed-form per-curve scale absorbs any
// positive multiplicative calibration of the observations.
func TestChiSquared_ScaleFreedom(t *testing.T) {
	ell, err := mesh.NewEllipsoid(2, 1, 1, 1)
	require.NoError(t, err)
	lc := syntheticCurve(ell, equatorView, geom.Vec3{X: 1}, geom.Vec3{X: 1}, 40, 0.5)
	for j := range lc.Brightness {
		lc.Brightness[j] *= 3.7
	}

	chi2 := convex.ChiSquared(ell, equatorView, []*photom.Lightcurve{lc}, photom.DefaultMix, 0, nil)
	assert.InDelta(t, 0.0, chi2, 1e-15)
}

// TestChiSquared_DegeneratePenalty: a model dark at every epoch draws the
// large finite penalty instead of a divide-by-zero scale.
func TestChiSquared_DegeneratePenalty(t *testing.T) {
	vertices := []geom.Vec3{{}, {X: 1}, {Y: 1}}
	faces := [][3]int{{0, 1, 2}}
	normals, areas := mesh.FaceProperties(vertices, faces)
	facet := &mesh.Mesh{Vertices: vertices, Faces: faces, Normals: normals, Areas: areas}

	lc := &photom.Lightcurve{
		JD:         []float64{2451545.0, 2451545.1},
		Brightness: []float64{1, 1},
		Weights:    []float64{1, 1},
		SunEcl:     []geom.Vec3{{Z: -1}, {Z: -1}},
		ObsEcl:     []geom.Vec3{{Z: -1}, {Z: -1}},
	}
	chi2 := convex.ChiSquared(facet, equatorView, []*photom.Lightcurve{lc}, photom.DefaultMix, 0, nil)
	assert.Greater(t, chi2, 1e6)
	assert.False(t, math.IsInf(chi2, 0))
}

// TestOptimizeShape_ImprovesEllipsoidFit: starting from a sphere, the
// log-area fit against ellipsoid data must lower the objective and return a
// valid, strictly positive-area mesh.
func TestOptimizeShape_ImprovesEllipsoidFit(t *testing.T) {
	truth, err := mesh.NewEllipsoid(1.6, 1, 0.9, 1)
	require.NoError(t, err)
	lc := syntheticCurve(truth, equatorView, geom.Vec3{X: 1}, geom.Vec3{X: 1}, 60, 0.5)
	lcs := []*photom.Lightcurve{lc}

	seed, err := mesh.NewIcosphere(1)
	require.NoError(t, err)
	before := convex.ChiSquared(seed, equatorView, lcs, photom.DefaultMix, 0.001, nil)

	got, chi2, history, err := convex.OptimizeShape(seed, equatorView, lcs, photom.DefaultMix, 0.001, 80)
	require.NoError(t, err)
	require.NoError(t, got.Validate())
	require.NotEmpty(t, history)

	assert.Less(t, chi2, before, "optimization must improve the fit")
	assert.InDelta(t, before, history[0], before*1e-9, "history starts at the seed objective")
	for _, a := range got.Areas {
		assert.Greater(t, a, 0.0, "log-area parameterization keeps areas positive")
	}
	// Seed untouched.
	assert.InDelta(t, 1.0, seed.Vertices[0].Norm(), 1e-12)
}

// TestOptimizeShape_EllipsoidRoundTrip: curves synthesized from a mild
// ellipsoid must be fit back to a small residual. The data term is checked
// with the regularizer off so the threshold bounds the fit alone.
func TestOptimizeShape_EllipsoidRoundTrip(t *testing.T) {
	truth, err := mesh.NewEllipsoid(1.6, 1, 0.9, 1)
	require.NoError(t, err)
	lc := syntheticCurve(truth, equatorView, geom.Vec3{X: 1}, geom.Vec3{X: 1}, 60, 0.5)
	lcs := []*photom.Lightcurve{lc}

	seed, err := mesh.NewIcosphere(1)
	require.NoError(t, err)

	got, _, _, err := convex.OptimizeShape(seed, equatorView, lcs, photom.DefaultMix, 1e-4, 150)
	require.NoError(t, err)
	require.NoError(t, got.Validate())

	residual := convex.ChiSquared(got, equatorView, lcs, photom.DefaultMix, 0, nil)
	assert.Less(t, residual, 0.01, "round-trip residual")
}

// TestPeriodSearch_RecoversPeriod: the scan must land within one grid step
// of the generating 6 h period.
func TestPeriodSearch_RecoversPeriod(t *testing.T) {
	truth, err := mesh.NewEllipsoid(2, 1, 1, 1)
	require.NoError(t, err)
	lc := syntheticCurve(truth, equatorView, geom.Vec3{X: 1}, geom.Vec3{X: 1}, 80, 0.5)

	seed, err := mesh.NewIcosphere(1)
	require.NoError(t, err)
	base := geom.SpinState{LambdaDeg: 0, BetaDeg: 90, JD0: equatorView.JD0}

	best, landscape, err := convex.PeriodSearch(seed, base, []*photom.Lightcurve{lc}, 4, 8, 9, photom.DefaultMix, 0.001, 10)
	require.NoError(t, err)
	require.Len(t, landscape, 9)

	step := (8.0 - 4.0) / 8.0
	assert.InDelta(t, 6.0, best, step+1e-9)
}

// TestPoleSearch_RecoversPole: on the reference 12x6 grid, the best cell must
// be within 30 degrees of either the generating pole or its mirror
// (lambda+180, -beta).
func TestPoleSearch_RecoversPole(t *testing.T) {
	truthSpin := geom.SpinState{LambdaDeg: 30, BetaDeg: 60, PeriodHours: 6.0, JD0: 2451545.0}
	truth, err := mesh.NewEllipsoid(2, 1, 1, 1)
	require.NoError(t, err)
	lc := syntheticCurve(truth, truthSpin, geom.Vec3{X: 1}, geom.Vec3{X: 0.9, Y: 0.3, Z: 0.2}, 80, 0.5)

	seed, err := mesh.NewIcosphere(1)
	require.NoError(t, err)
	base := geom.SpinState{PeriodHours: 6.0, JD0: truthSpin.JD0}

	lam, bet, grid, err := convex.PoleSearch(seed, base, []*photom.Lightcurve{lc}, 12, 6, photom.DefaultMix, 0.001, 10)
	require.NoError(t, err)
	require.Len(t, grid, 72)

	direct := poleSeparationDeg(lam, bet, 30, 60)
	mirror := poleSeparationDeg(lam, bet, 210, -60)
	assert.Less(t, math.Min(direct, mirror), 30.0, "pole must resolve up to the mirror ambiguity")
}

// TestRun_Staged exercises the full pipeline on a small budget.
func TestRun_Staged(t *testing.T) {
	truth, err := mesh.NewEllipsoid(2, 1, 1, 1)
	require.NoError(t, err)
	lc := syntheticCurve(truth, equatorView, geom.Vec3{X: 1}, geom.Vec3{X: 1}, 60, 0.5)

	opts := convex.Options{
		Mix: photom.DefaultMix, RegWeight: 0.001, MaxIter: 30,
		Subdivisions: 1, NPeriods: 5, NLambda: 4, NBeta: 2,
		SearchIter: 5, RefineIter: 5,
	}
	res, err := convex.Run([]*photom.Lightcurve{lc}, 5, 7, opts)
	require.NoError(t, err)
	require.NoError(t, res.Mesh.Validate())
	require.Len(t, res.PeriodLandscape, 5)

	assert.False(t, math.IsNaN(res.Chi2))
	assert.Greater(t, res.Spin.PeriodHours, 4.0)
	assert.Less(t, res.Spin.PeriodHours, 8.0)
	assert.Equal(t, lc.JD[0], res.Spin.JD0)
}

// TestRunFixedSpin skips the searches and still returns a usable fit.
func TestRunFixedSpin(t *testing.T) {
	truth, err := mesh.NewEllipsoid(1.5, 1, 1, 1)
	require.NoError(t, err)
	lc := syntheticCurve(truth, equatorView, geom.Vec3{X: 1}, geom.Vec3{X: 1}, 40, 0.5)

	opts := convex.Options{Mix: photom.DefaultMix, RegWeight: 0.001, MaxIter: 40, Subdivisions: 1}
	res, err := convex.RunFixedSpin([]*photom.Lightcurve{lc}, equatorView, opts)
	require.NoError(t, err)
	require.NoError(t, res.Mesh.Validate())
	assert.Equal(t, equatorView, res.Spin)
	assert.Nil(t, res.PeriodLandscape)
}

// TestSentinels covers caller-mistake errors.
func TestSentinels(t *testing.T) {
	seed, err := mesh.NewIcosphere(0)
	require.NoError(t, err)
	spin := equatorView
	lc := syntheticCurve(seed, spin, geom.Vec3{X: 1}, geom.Vec3{X: 1}, 4, 0.5)
	lcs := []*photom.Lightcurve{lc}

	_, _, _, err = convex.OptimizeShape(seed, spin, nil, photom.DefaultMix, 0, 10)
	assert.ErrorIs(t, err, convex.ErrNoLightcurves)

	_, _, err = convex.PeriodSearch(seed, spin, lcs, 8, 4, 5, photom.DefaultMix, 0, 10)
	assert.ErrorIs(t, err, convex.ErrPeriodRange)
	_, _, err = convex.PeriodSearch(seed, spin, lcs, 4, 8, 0, photom.DefaultMix, 0, 10)
	assert.ErrorIs(t, err, convex.ErrPeriodRange)

	_, _, _, err = convex.PoleSearch(seed, spin, lcs, 0, 4, photom.DefaultMix, 0, 10)
	assert.ErrorIs(t, err, convex.ErrGridSize)

	_, err = convex.Run(lcs, -1, 8, convex.Options{})
	assert.ErrorIs(t, err, convex.ErrPeriodRange)
	_, err = convex.Run(nil, 4, 8, convex.Options{})
	assert.ErrorIs(t, err, convex.ErrNoLightcurves)
}

// poleSeparationDeg returns the angular distance between two poles given in
// ecliptic longitude/latitude degrees.
func poleSeparationDeg(lam1, bet1, lam2, bet2 float64) float64 {
	toVec := func(lam, bet float64) geom.Vec3 {
		l, b := lam*math.Pi/180, bet*math.Pi/180
		return geom.Vec3{X: math.Cos(b) * math.Cos(l), Y: math.Cos(b) * math.Sin(l), Z: math.Sin(b)}
	}
	d := geom.Clamp(toVec(lam1, bet1).Dot(toVec(lam2, bet2)), -1, 1)
	return math.Acos(d) * 180 / math.Pi
}
