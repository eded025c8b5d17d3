package sparse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
	"github.com/katalvlaran/asterinv/photom"
	"github.com/katalvlaran/asterinv/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHGMagnitude_Opposition: both basis functions are 1 at zero phase, so
// V(0) = H for any slope, and brightness fades with growing phase angle.
func TestHGMagnitude_Opposition(t *testing.T) {
	assert.InDelta(t, 15.0, sparse.HGMagnitude(0, 15.0, 0.15), 1e-12)
	assert.InDelta(t, 15.0, sparse.HG1G2Magnitude(0, 15.0, 0.3, 0.4), 1e-12)

	prev := sparse.HGMagnitude(0, 15.0, 0.15)
	for _, alphaDeg := range []float64{5, 15, 30, 60, 90} {
		v := sparse.HGMagnitude(alphaDeg*math.Pi/180, 15.0, 0.15)
		assert.Greater(t, v, prev, "magnitude must grow (fade) with phase angle")
		prev = v
	}
}

// TestReducedMagnitudes_InvertsForwardModel: observations built from the
// model itself reduce back to the flat absolute magnitude.
func TestReducedMagnitudes_InvertsForwardModel(t *testing.T) {
	const h, g = 14.2, 0.15
	d := &sparse.Dataset{Source: "GaiaDR3", TargetID: "synthetic"}
	for i := 0; i < 10; i++ {
		alpha := float64(i+1) * 2 * math.Pi / 180
		rh, rg := 2.2+0.01*float64(i), 1.4+0.02*float64(i)
		d.Observations = append(d.Observations, sparse.Observation{
			JD:         2459000.0 + float64(i),
			Mag:        sparse.HGMagnitude(alpha, h, g) + 5*math.Log10(rh*rg),
			MagErr:     0.01,
			Filter:     "G",
			PhaseAngle: alpha,
			RHelio:     rh,
			RGeo:       rg,
		})
	}

	reduced, err := sparse.ReducedMagnitudesHG(d, g)
	require.NoError(t, err)
	for _, m := range reduced {
		assert.InDelta(t, h, m, 1e-10)
	}

	_, err = sparse.ReducedMagnitudesHG(&sparse.Dataset{}, g)
	assert.ErrorIs(t, err, sparse.ErrEmptyDataset)
}

// TestToLightcurve: unit directions, positive weights, and the flux mapping
// being monotone in magnitude.
func TestToLightcurve(t *testing.T) {
	el := geom.OrbitalElements{A: 2.5, E: 0.1, M0: 0.3, Epoch: 2459000.0}
	d := &sparse.Dataset{
		Observations: []sparse.Observation{
			{JD: 2459000.0, Mag: 15.0, MagErr: 0.01},
			{JD: 2459010.0, Mag: 15.5, MagErr: 0.02},
		},
	}

	lc, err := sparse.ToLightcurve(d, el)
	require.NoError(t, err)
	require.Equal(t, 2, lc.Len())

	for j := 0; j < lc.Len(); j++ {
		assert.InDelta(t, 1.0, lc.SunEcl[j].Norm(), 1e-12)
		assert.InDelta(t, 1.0, lc.ObsEcl[j].Norm(), 1e-12)
		assert.Greater(t, lc.Weights[j], 0.0)
		assert.Greater(t, lc.Brightness[j], 0.0)
	}

	_, err = sparse.ToLightcurve(&sparse.Dataset{}, el)
	assert.ErrorIs(t, err, sparse.ErrEmptyDataset)
}

// TestPeriodSearchPDM_RecoversPeriod on a pure sinusoid with quasi-random
// epoch sampling over ten days.
func TestPeriodSearchPDM_RecoversPeriod(t *testing.T) {
	const truePeriod = 6.0 // hours
	n := 150
	jd := make([]float64, n)
	mags := make([]float64, n)
	for j := 0; j < n; j++ {
		jd[j] = 2459000.0 + 10.0*math.Mod(float64(j)*0.6180339887, 1.0)
		phase := 2 * math.Pi * (jd[j] - jd[0]) / (truePeriod / 24.0)
		mags[j] = 15.0 + 0.2*math.Sin(phase)
	}

	best, landscape, err := sparse.PeriodSearchPDM(jd, mags, 5.5, 6.5, 200, 10)
	require.NoError(t, err)
	require.Len(t, landscape, 200)
	assert.InDelta(t, truePeriod, best, 0.02)

	// The minimum must be a real dip, not a flat landscape.
	worst := 0.0
	for _, cell := range landscape {
		if cell.Theta > worst {
			worst = cell.Theta
		}
	}
	var bestTheta float64 = math.Inf(1)
	for _, cell := range landscape {
		if cell.Theta < bestTheta {
			bestTheta = cell.Theta
		}
	}
	assert.Less(t, bestTheta, 0.5*worst)
}

// TestPeriodSearchPDM_Sentinels covers input validation.
func TestPeriodSearchPDM_Sentinels(t *testing.T) {
	_, _, err := sparse.PeriodSearchPDM(nil, nil, 5, 6, 10, 10)
	assert.ErrorIs(t, err, sparse.ErrEmptyDataset)
	_, _, err = sparse.PeriodSearchPDM([]float64{1}, []float64{1}, 6, 5, 10, 10)
	assert.ErrorIs(t, err, sparse.ErrPeriodRange)
	_, _, err = sparse.PeriodSearchPDM([]float64{1}, []float64{1}, 5, 6, 10, 0)
	assert.ErrorIs(t, err, sparse.ErrGridSize)
}

// spinTruth is the shared synthetic spin state.
var spinTruth = geom.SpinState{LambdaDeg: 45, BetaDeg: 30, PeriodHours: 6.0, JD0: 2459000.0}

// sparseCurveOf samples isolated epochs of m under spinTruth.
func sparseCurveOf(t *testing.T, m *mesh.Mesh, n int) *photom.Lightcurve {
	t.Helper()
	lc := &photom.Lightcurve{
		JD:      make([]float64, n),
		Weights: make([]float64, n),
		SunEcl:  make([]geom.Vec3, n),
		ObsEcl:  make([]geom.Vec3, n),
	}
	for j := 0; j < n; j++ {
		lc.JD[j] = spinTruth.JD0 + 5.0*math.Mod(float64(j)*0.6180339887, 1.0)
		lc.Weights[j] = 1
		lc.SunEcl[j] = geom.Vec3{X: 1}
		lc.ObsEcl[j] = geom.Vec3{X: 0.95, Y: 0.2, Z: 0.1}.Unit()
	}
	bd := lc.BodyDirections(spinTruth)
	lc.Brightness = photom.LightcurveDirect(m, bd.Sun, bd.Obs, photom.DefaultMix)
	return lc
}

// TestChiSquared_GlobalScale: the generating mesh fits its own data exactly,
// including under a global calibration factor.
func TestChiSquared_GlobalScale(t *testing.T) {
	truth, err := mesh.NewEllipsoid(2, 1, 0.8, 1)
	require.NoError(t, err)
	lc := sparseCurveOf(t, truth, 60)

	chi2, n := sparse.ChiSquared(truth, spinTruth, lc, photom.DefaultMix, nil)
	require.Equal(t, 60, n)
	assert.InDelta(t, 0.0, chi2/float64(n), 1e-15)

	for j := range lc.Brightness {
		lc.Brightness[j] *= 0.42
	}
	chi2, _ = sparse.ChiSquared(truth, spinTruth, lc, photom.DefaultMix, nil)
	assert.InDelta(t, 0.0, chi2/60.0, 1e-15)
}

// TestCombinedChiSquared_Fallbacks: each population degrades gracefully when
// the other is absent, and lambdaSparse scales only the sparse term.
func TestCombinedChiSquared_Fallbacks(t *testing.T) {
	truth, err := mesh.NewEllipsoid(2, 1, 0.8, 1)
	require.NoError(t, err)
	sphere, err := mesh.NewIcosphere(1)
	require.NoError(t, err)
	lc := sparseCurveOf(t, truth, 40)

	sparseOnly := sparse.CombinedChiSquared(sphere, spinTruth, nil, lc, photom.DefaultMix, 1.0, 0, nil, nil)
	scaled := sparse.CombinedChiSquared(sphere, spinTruth, nil, lc, photom.DefaultMix, 2.0, 0, nil, nil)
	assert.InDelta(t, 2.0*sparseOnly, scaled, math.Abs(scaled)*1e-12)

	denseOnly := sparse.CombinedChiSquared(sphere, spinTruth, []*photom.Lightcurve{lc}, nil, photom.DefaultMix, 1.0, 0, nil, nil)
	assert.Greater(t, denseOnly, 0.0)
}

// TestOptimizeCombined_Improves: the fit lowers the objective and rejects an
// all-empty input set.
func TestOptimizeCombined_Improves(t *testing.T) {
	truth, err := mesh.NewEllipsoid(2, 1, 0.8, 1)
	require.NoError(t, err)
	lc := sparseCurveOf(t, truth, 60)

	seed, err := mesh.NewIcosphere(1)
	require.NoError(t, err)
	before := sparse.CombinedChiSquared(seed, spinTruth, nil, lc, photom.DefaultMix, 1.0, 0.001, nil, nil)

	got, after, history, err := sparse.OptimizeCombined(seed, spinTruth, nil, lc, photom.DefaultMix, 1.0, 0.001, 40)
	require.NoError(t, err)
	require.NotEmpty(t, history)
	require.NoError(t, got.Validate())
	assert.Less(t, after, before)

	_, _, _, err = sparse.OptimizeCombined(seed, spinTruth, nil, nil, photom.DefaultMix, 1.0, 0.001, 10)
	assert.ErrorIs(t, err, sparse.ErrEmptyDataset)
}

// TestRunInversion_SmallBudget runs the full PDM → pole → shape pipeline on
// a reduced grid and checks period recovery plus result integrity.
func TestRunInversion_SmallBudget(t *testing.T) {
	truth, err := mesh.NewEllipsoid(2, 1, 0.8, 1)
	require.NoError(t, err)
	lc := sparseCurveOf(t, truth, 120)

	opts := sparse.Options{
		Mix: photom.DefaultMix, RegWeight: 0.001, LambdaSparse: 1.0,
		MaxIter: 20, Subdivisions: 1, NPeriods: 60, NBins: 8,
		NLambda: 4, NBeta: 2, RefineIter: 5,
	}
	res, err := sparse.RunInversion(lc, 5.5, 6.5, opts)
	require.NoError(t, err)
	require.NoError(t, res.Mesh.Validate())
	require.Len(t, res.PDMLandscape, 60)
	require.Len(t, res.PoleGrid, 8)

	assert.InDelta(t, 6.0, res.Spin.PeriodHours, 0.05)
	assert.False(t, math.IsNaN(res.Chi2))
	assert.Equal(t, lc.JD[0], res.Spin.JD0)
}

// TestRunInversion_Sentinels covers input validation.
func TestRunInversion_Sentinels(t *testing.T) {
	_, err := sparse.RunInversion(nil, 5, 6, sparse.Options{})
	assert.ErrorIs(t, err, sparse.ErrEmptyDataset)

	sphere, err2 := mesh.NewIcosphere(0)
	require.NoError(t, err2)
	lc := sparseCurveOf(t, sphere, 10)
	_, err = sparse.RunInversion(lc, 6, 5, sparse.Options{})
	assert.ErrorIs(t, err, sparse.ErrPeriodRange)
}
