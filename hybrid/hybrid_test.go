package hybrid_test

import (
	"testing"

	"github.com/katalvlaran/asterinv/convex"
	"github.com/katalvlaran/asterinv/evolve"
	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/hybrid"
	"github.com/katalvlaran/asterinv/mesh"
	"github.com/katalvlaran/asterinv/photom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownSpin = geom.SpinState{LambdaDeg: 0, BetaDeg: 90, PeriodHours: 6.0, JD0: 2451545.0}

func curveOf(t *testing.T, m *mesh.Mesh, n int) *photom.Lightcurve {
	t.Helper()
	lc := &photom.Lightcurve{
		JD:      make([]float64, n),
		Weights: make([]float64, n),
		SunEcl:  make([]geom.Vec3, n),
		ObsEcl:  make([]geom.Vec3, n),
	}
	for j := 0; j < n; j++ {
		lc.JD[j] = knownSpin.JD0 + 0.5*float64(j)/float64(n)
		lc.Weights[j] = 1
		lc.SunEcl[j] = geom.Vec3{X: 1}
		lc.ObsEcl[j] = geom.Vec3{X: 1}
	}
	bd := lc.BodyDirections(knownSpin)
	lc.Brightness = photom.LightcurveDirect(m, bd.Sun, bd.Obs, photom.DefaultMix)
	return lc
}

func smallOptions() hybrid.Options {
	opts := hybrid.DefaultOptions()
	opts.Convex = convex.Options{
		Mix: photom.DefaultMix, RegWeight: 0.001, MaxIter: 40,
		Subdivisions: 1, NPeriods: 5, NLambda: 4, NBeta: 2,
		SearchIter: 5, RefineIter: 5,
	}
	ga := evolve.DefaultOptions()
	ga.PopulationSize = 10
	ga.Generations = 5
	ga.TournamentSize = 3
	opts.GA = ga
	return opts
}

// TestRunWithSpin_ConvexSufficient: a permissive threshold keeps the
// pipeline in Stage 1.
func TestRunWithSpin_ConvexSufficient(t *testing.T) {
	truth, err := mesh.NewEllipsoid(1.5, 1, 1, 1)
	require.NoError(t, err)
	lc := curveOf(t, truth, 40)

	opts := smallOptions()
	opts.Chi2Threshold = 1e9

	res, err := hybrid.RunWithSpin([]*photom.Lightcurve{lc}, knownSpin, opts)
	require.NoError(t, err)

	assert.False(t, res.UsedGA)
	assert.Equal(t, hybrid.StageConvex, res.Stage)
	assert.Nil(t, res.GAResult)
	assert.Equal(t, res.Chi2Convex, res.Chi2Final)
	assert.Equal(t, knownSpin, res.Spin)
	require.NoError(t, res.Mesh.Validate())
}

// TestRunWithSpin_EngagesGA: an impossible threshold forces Stage 2; the
// final residual must never exceed the convex one (seeded elitist GA).
func TestRunWithSpin_EngagesGA(t *testing.T) {
	truth, err := mesh.NewDumbbell(2.0, 0.8, 1)
	require.NoError(t, err)
	lc := curveOf(t, truth, 40)

	opts := smallOptions()
	opts.Chi2Threshold = -1

	res, err := hybrid.RunWithSpin([]*photom.Lightcurve{lc}, knownSpin, opts)
	require.NoError(t, err)

	assert.True(t, res.UsedGA)
	require.NotNil(t, res.GAResult)
	assert.LessOrEqual(t, res.Chi2Final, res.Chi2Convex, "pipeline must never end worse than Stage 1")

	switch res.Stage {
	case hybrid.StageGA:
		assert.Equal(t, res.GAResult.Mesh, res.Mesh)
		assert.Equal(t, res.GAResult.Fitness, res.Chi2Final)
	case hybrid.StageConvex:
		assert.Equal(t, res.ConvexResult.Mesh, res.Mesh)
	default:
		t.Fatalf("unexpected stage %q", res.Stage)
	}
}

// TestRun_FullPipeline exercises spin search plus the adaptive switch.
func TestRun_FullPipeline(t *testing.T) {
	truth, err := mesh.NewEllipsoid(2, 1, 1, 1)
	require.NoError(t, err)
	lc := curveOf(t, truth, 60)

	opts := smallOptions()
	opts.Chi2Threshold = 1e9

	res, err := hybrid.Run([]*photom.Lightcurve{lc}, 5, 7, opts)
	require.NoError(t, err)
	require.NoError(t, res.Mesh.Validate())
	assert.Equal(t, hybrid.StageConvex, res.Stage)
	assert.NotEmpty(t, res.ConvexResult.PeriodLandscape)
}

// TestRun_PropagatesStageErrors surfaces convex sentinels unchanged.
func TestRun_PropagatesStageErrors(t *testing.T) {
	sphere, err := mesh.NewIcosphere(0)
	require.NoError(t, err)
	lc := curveOf(t, sphere, 5)

	_, err = hybrid.Run([]*photom.Lightcurve{lc}, 7, 5, smallOptions())
	assert.ErrorIs(t, err, convex.ErrPeriodRange)

	_, err = hybrid.RunWithSpin(nil, knownSpin, smallOptions())
	assert.ErrorIs(t, err, convex.ErrNoLightcurves)
}
