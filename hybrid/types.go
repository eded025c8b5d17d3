// SPDX-License-Identifier: MIT
// Package hybrid: configuration and result containers.

package hybrid

import (
	"github.com/katalvlaran/asterinv/convex"
	"github.com/katalvlaran/asterinv/evolve"
	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
)

// Stage labels for Result.Stage.
const (
	StageConvex = "convex"
	StageGA     = "ga"
)

// Options configures both stages and the adaptive switch between them.
type Options struct {
	// Convex configures Stage 1.
	Convex convex.Options
	// GA configures Stage 2.
	GA evolve.Options
	// Chi2Threshold is the convex residual above which the evolutionary
	// stage is engaged.
	Chi2Threshold float64
}

// DefaultOptions composes both stages' defaults with the reference switch
// threshold of 0.05.
func DefaultOptions() Options {
	return Options{
		Convex:        convex.DefaultOptions(),
		GA:            evolve.DefaultOptions(),
		Chi2Threshold: 0.05,
	}
}

// Result is the pipeline outcome with full per-stage diagnostics.
type Result struct {
	// Mesh and Spin describe the winning solution.
	Mesh *mesh.Mesh
	Spin geom.SpinState
	// Chi2Convex is the Stage 1 residual; Chi2Final the winning residual.
	Chi2Convex float64
	Chi2Final  float64
	// UsedGA reports whether Stage 2 ran at all; Stage names the winner
	// (StageConvex or StageGA).
	UsedGA bool
	Stage  string
	// ConvexResult always holds the Stage 1 outcome. GAResult is nil when
	// Stage 2 was skipped.
	ConvexResult convex.Result
	GAResult     *evolve.Result
}
