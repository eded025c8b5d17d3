// SPDX-License-Identifier: MIT
// Package evolve: generational loop.

package evolve

import (
	"sort"

	"github.com/katalvlaran/asterinv/geom"
	"github.com/katalvlaran/asterinv/mesh"
	"github.com/katalvlaran/asterinv/photom"
)

// Run evolves a population of free-vertex meshes against the lightcurves at
// the fixed spin state and returns the best individual as a full mesh.
//
// seed supplies the shared topology and the starting vertex set; pass nil
// for a level-2 icosphere. Individual 0 starts as an exact copy of the seed,
// the rest as Gaussian perturbations of it; per-individual init uses
// independent derived RNG streams.
//
// Contracts:
//   - len(lcs) >= 1.
//   - opts ranges valid (see Options); otherwise ErrBadOption.
//   - Deterministic: identical inputs and Seed reproduce identical output.
//
// Complexity: O(Generations · PopulationSize · Σ Lenᵢ · F).
func Run(lcs []*photom.Lightcurve, spin geom.SpinState, opts Options, seed *mesh.Mesh) (Result, error) {
	if len(lcs) == 0 {
		return Result{}, ErrNoLightcurves
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	if seed == nil {
		sphere, err := mesh.NewIcosphere(2)
		if err != nil {
			return Result{}, err
		}
		seed = sphere
	} else if err := seed.Validate(); err != nil {
		return Result{}, err
	}

	faces := make([][3]int, len(seed.Faces))
	copy(faces, seed.Faces)
	base := make([]geom.Vec3, len(seed.Vertices))
	copy(base, seed.Vertices)

	dirs := photom.PrecomputeBodyDirs(spin, lcs)
	rng := rngFromSeed(opts.Seed)

	// Mutation amplitude is calibrated to the seed's largest vertex radius so
	// options transfer between differently sized bodies.
	scale := 0.0
	for _, v := range base {
		if n := v.Norm(); n > scale {
			scale = n
		}
	}
	sigma := opts.MutationSigma * scale

	population := make([]Individual, opts.PopulationSize)
	for i := range population {
		var verts []geom.Vec3
		if i == 0 {
			verts = make([]geom.Vec3, len(base))
			copy(verts, base)
		} else {
			verts = mutateGaussian(base, sigma, deriveRNG(rng, uint64(i)))
		}
		population[i] = Individual{
			Vertices: verts,
			Fitness:  EvaluateFitness(verts, faces, spin, lcs, opts.Mix, opts.RegWeight, dirs),
		}
	}
	sortByFitness(population)

	nElite := int(float64(opts.PopulationSize) * opts.EliteFraction)
	if nElite < 1 {
		nElite = 1
	}
	history := make([]float64, 0, opts.Generations+1)
	history = append(history, population[0].Fitness)

	for gen := 0; gen < opts.Generations; gen++ {
		next := make([]Individual, 0, opts.PopulationSize)
		for i := 0; i < nElite && i < opts.PopulationSize; i++ {
			next = append(next, population[i].clone())
		}

		for len(next) < opts.PopulationSize {
			pa := population[tournamentSelect(population, opts.TournamentSize, rng)]
			pb := population[tournamentSelect(population, opts.TournamentSize, rng)]

			var child []geom.Vec3
			if rng.Float64() < opts.CrossoverRate {
				child = crossover(pa.Vertices, pb.Vertices, rng)
			} else {
				child = make([]geom.Vec3, len(pa.Vertices))
				copy(child, pa.Vertices)
			}
			if rng.Float64() < opts.MutationRate {
				child = mutate(child, sigma, rng)
			}

			next = append(next, Individual{
				Vertices: child,
				Fitness:  EvaluateFitness(child, faces, spin, lcs, opts.Mix, opts.RegWeight, dirs),
			})
		}

		sortByFitness(next)
		population = next
		sigma *= opts.SigmaDecay
		history = append(history, population[0].Fitness)
	}

	best := population[0]
	normals, areas := mesh.FaceProperties(best.Vertices, faces)
	out := &mesh.Mesh{Vertices: best.Vertices, Faces: faces, Normals: normals, Areas: areas}

	return Result{
		Mesh:           out,
		Spin:           spin,
		Fitness:        best.Fitness,
		FitnessHistory: history,
	}, nil
}

// sortByFitness orders ascending (best first), stably so equal-fitness ties
// keep insertion order and determinism.
func sortByFitness(pop []Individual) {
	sort.SliceStable(pop, func(i, j int) bool { return pop[i].Fitness < pop[j].Fitness })
}
