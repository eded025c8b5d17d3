// SPDX-License-Identifier: MIT
// Package uncertainty: bootstrap estimators.

package uncertainty

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/asterinv/convex"
	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
	"github.com/katalvlaran/asterinv/photom"
)

// Estimate runs the bootstrap at a fixed spin state: each trial refits the
// shape on a resampled, noise-perturbed replica of the data. Spin samples
// all equal the input spin (their scatter is zero by construction); period
// uncertainty comes from the landscape criterion when PMin/PMax enable the
// scan, which runs once on the unperturbed data.
//
// Complexity: O(NBootstrap · shape fit) plus one optional period scan.
func Estimate(lcs []*photom.Lightcurve, spin geom.SpinState, opts Options) (Result, error) {
	if len(lcs) == 0 {
		return Result{}, ErrNoLightcurves
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	seed, err := mesh.NewIcosphere(opts.Subdivisions)
	if err != nil {
		return Result{}, err
	}
	rng := rngFromSeed(opts.Seed)

	var landscape []convex.PeriodCell
	if opts.PMin > 0 && opts.PMin < opts.PMax {
		_, landscape, err = convex.PeriodSearch(seed, spin, lcs, opts.PMin, opts.PMax,
			opts.NPeriods, opts.Mix, opts.RegWeight, opts.MaxIter/2)
		if err != nil {
			return Result{}, err
		}
	}

	poles := make([]PoleSample, opts.NBootstrap)
	periods := make([]float64, opts.NBootstrap)
	shapes := make([][]geom.Vec3, opts.NBootstrap)

	for i := 0; i < opts.NBootstrap; i++ {
		replica := replicate(lcs, opts.NoiseSigma, rng)

		fitted, _, _, err := convex.OptimizeShape(seed, spin, replica, opts.Mix, opts.RegWeight, opts.MaxIter)
		if err != nil {
			return Result{}, err
		}
		poles[i] = PoleSample{Lambda: spin.LambdaDeg, Beta: spin.BetaDeg}
		periods[i] = spin.PeriodHours
		shapes[i] = fitted.Vertices
	}

	res := summarize(poles, periods, shapes)
	res.PeriodLandscape = landscape
	if landscape != nil {
		if s := PeriodSigmaFromLandscape(landscape); s > res.PeriodStd {
			res.PeriodStd = s
		}
	}
	return res, nil
}

// EstimateWithPoleSearch additionally re-runs a coarse pole grid per trial,
// so the pole samples carry real scatter. The period stays fixed; combine
// with a landscape-enabled Estimate call for full spin uncertainty.
func EstimateWithPoleSearch(lcs []*photom.Lightcurve, spin geom.SpinState, opts Options) (Result, error) {
	if len(lcs) == 0 {
		return Result{}, ErrNoLightcurves
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if opts.PoleNLambda < 1 || opts.PoleNBeta < 1 {
		return Result{}, ErrBadOption
	}

	seed, err := mesh.NewIcosphere(opts.Subdivisions)
	if err != nil {
		return Result{}, err
	}
	rng := rngFromSeed(opts.Seed)

	poles := make([]PoleSample, opts.NBootstrap)
	periods := make([]float64, opts.NBootstrap)
	shapes := make([][]geom.Vec3, opts.NBootstrap)

	for i := 0; i < opts.NBootstrap; i++ {
		replica := replicate(lcs, opts.NoiseSigma, rng)

		lam, bet, _, err := convex.PoleSearch(seed, spin, replica,
			opts.PoleNLambda, opts.PoleNBeta, opts.Mix, opts.RegWeight, opts.MaxIter/2)
		if err != nil {
			return Result{}, err
		}
		trial := spin
		trial.LambdaDeg = lam
		trial.BetaDeg = bet

		fitted, _, _, err := convex.OptimizeShape(seed, trial, replica, opts.Mix, opts.RegWeight, opts.MaxIter)
		if err != nil {
			return Result{}, err
		}
		poles[i] = PoleSample{Lambda: lam, Beta: bet}
		periods[i] = spin.PeriodHours
		shapes[i] = fitted.Vertices
	}

	return summarize(poles, periods, shapes), nil
}

// summarize reduces per-trial samples to the reported statistics.
func summarize(poles []PoleSample, periods []float64, shapes [][]geom.Vec3) Result {
	n := len(poles)
	lams := make([]float64, n)
	bets := make([]float64, n)
	for i, p := range poles {
		lams[i] = p.Lambda
		bets[i] = p.Beta
	}

	nVerts := len(shapes[0])
	meanShape := make([]geom.Vec3, nVerts)
	for _, s := range shapes {
		for v, p := range s {
			meanShape[v] = meanShape[v].Add(p)
		}
	}
	for v := range meanShape {
		meanShape[v] = meanShape[v].Scale(1 / float64(n))
	}

	variance := make([]float64, nVerts)
	stdMap := make([]float64, nVerts)
	for _, s := range shapes {
		for v, p := range s {
			d := p.Sub(meanShape[v])
			variance[v] += d.Dot(d)
		}
	}
	for v := range variance {
		variance[v] /= float64(n)
		stdMap[v] = math.Sqrt(variance[v])
	}

	return Result{
		PoleLambdaMean: stat.Mean(lams, nil),
		PoleBetaMean:   stat.Mean(bets, nil),
		PoleLambdaStd:  sampleStd(lams),
		PoleBetaStd:    sampleStd(bets),
		PoleSamples:    poles,
		PeriodMean:     stat.Mean(periods, nil),
		PeriodStd:      sampleStd(periods),
		PeriodSamples:  periods,
		VertexVariance: variance,
		VertexStd:      stdMap,
	}
}

// sampleStd guards the n==1 case where the corrected estimator is undefined.
func sampleStd(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}
