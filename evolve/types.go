// SPDX-License-Identifier: MIT
// Package evolve: sentinel errors, individuals, and result containers.

package evolve

import (
	"errors"

	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
)

var (
	// ErrNoLightcurves indicates an empty lightcurve set.
	ErrNoLightcurves = errors.New("evolve: no lightcurves supplied")

	// ErrBadOption indicates an Options field outside its valid range after
	// normalization (e.g. TournamentSize larger than the population).
	ErrBadOption = errors.New("evolve: option out of range")
)

// TopologyPenalty is the fitness assigned to an individual whose mesh has a
// degenerate (zero-area) facet. Larger than any lightcurve misfit, finite so
// sorting stays total.
const TopologyPenalty = 1e20

// Individual is one population member: a full vertex set over the shared
// face topology, with its cached fitness.
type Individual struct {
	Vertices []geom.Vec3
	Fitness  float64
}

// clone returns a deep copy; evolution never aliases vertex storage between
// individuals.
func (ind Individual) clone() Individual {
	v := make([]geom.Vec3, len(ind.Vertices))
	copy(v, ind.Vertices)
	return Individual{Vertices: v, Fitness: ind.Fitness}
}

// Result is the outcome of a genetic run.
type Result struct {
	// Mesh is the best individual rebuilt as a full mesh (normals and areas
	// recomputed from its evolved vertices).
	Mesh *mesh.Mesh
	// Spin echoes the fixed spin state the population was evaluated under.
	Spin geom.SpinState
	// Fitness is the best individual's final fitness.
	Fitness float64
	// FitnessHistory holds the best fitness per generation, starting with the
	// initial population (index 0). Non-increasing under elitism.
	FitnessHistory []float64
}
