// SPDX-License-Identifier: MIT
// Package evolve: variation and selection operators. All operators are pure
// with respect to their inputs: parents are never mutated in place.

package evolve

import (
	"math/rand"

	"github.com/katalvlaran/asterinv/geom"
)

// localFraction is the share of vertices perturbed by the local mutation.
const localFraction = 0.2

// mutateGaussian perturbs every vertex by isotropic Gaussian noise of the
// given amplitude. Topology is untouched.
func mutateGaussian(vertices []geom.Vec3, sigma float64, rng *rand.Rand) []geom.Vec3 {
	out := make([]geom.Vec3, len(vertices))
	for i, v := range vertices {
		out[i] = geom.Vec3{
			X: v.X + rng.NormFloat64()*sigma,
			Y: v.Y + rng.NormFloat64()*sigma,
			Z: v.Z + rng.NormFloat64()*sigma,
		}
	}
	return out
}

// mutateRadial perturbs each vertex along its direction from the vertex
// centroid: a physically motivated inflate/deflate move.
func mutateRadial(vertices []geom.Vec3, sigma float64, rng *rand.Rand) []geom.Vec3 {
	var centroid geom.Vec3
	for _, v := range vertices {
		centroid = centroid.Add(v)
	}
	centroid = centroid.Scale(1 / float64(len(vertices)))

	out := make([]geom.Vec3, len(vertices))
	for i, v := range vertices {
		dir := v.Sub(centroid)
		n := dir.Norm()
		if n < fitnessEps {
			out[i] = v
			continue
		}
		out[i] = v.Add(dir.Scale(rng.NormFloat64() * sigma / n))
	}
	return out
}

// mutateLocal perturbs a random subset of vertices (localFraction of them,
// at least one), for fine-scale surface features.
func mutateLocal(vertices []geom.Vec3, sigma float64, rng *rand.Rand) []geom.Vec3 {
	out := make([]geom.Vec3, len(vertices))
	copy(out, vertices)

	k := int(float64(len(vertices)) * localFraction)
	if k < 1 {
		k = 1
	}
	for _, idx := range rng.Perm(len(vertices))[:k] {
		out[idx] = geom.Vec3{
			X: out[idx].X + rng.NormFloat64()*sigma,
			Y: out[idx].Y + rng.NormFloat64()*sigma,
			Z: out[idx].Z + rng.NormFloat64()*sigma,
		}
	}
	return out
}

// mutate applies one operator chosen with fixed odds: 40% Gaussian, 30%
// radial, 30% local.
func mutate(vertices []geom.Vec3, sigma float64, rng *rand.Rand) []geom.Vec3 {
	switch r := rng.Float64(); {
	case r < 0.4:
		return mutateGaussian(vertices, sigma, rng)
	case r < 0.7:
		return mutateRadial(vertices, sigma, rng)
	default:
		return mutateLocal(vertices, sigma, rng)
	}
}

// crossoverBlend interpolates each vertex between the parents with an
// independent uniform weight (BLX-style blend).
func crossoverBlend(a, b []geom.Vec3, rng *rand.Rand) []geom.Vec3 {
	out := make([]geom.Vec3, len(a))
	for i := range a {
		t := rng.Float64()
		out[i] = a[i].Scale(1 - t).Add(b[i].Scale(t))
	}
	return out
}

// crossoverUniform takes each vertex wholesale from either parent with equal
// probability.
func crossoverUniform(a, b []geom.Vec3, rng *rand.Rand) []geom.Vec3 {
	out := make([]geom.Vec3, len(a))
	for i := range a {
		if rng.Float64() > 0.5 {
			out[i] = b[i]
		} else {
			out[i] = a[i]
		}
	}
	return out
}

// crossover picks blend or uniform recombination with equal probability.
func crossover(a, b []geom.Vec3, rng *rand.Rand) []geom.Vec3 {
	if rng.Float64() < 0.5 {
		return crossoverBlend(a, b, rng)
	}
	return crossoverUniform(a, b, rng)
}

// tournamentSelect returns the index of the fittest among k distinct
// individuals drawn without replacement.
func tournamentSelect(population []Individual, k int, rng *rand.Rand) int {
	best := -1
	for _, idx := range rng.Perm(len(population))[:k] {
		if best < 0 || population[idx].Fitness < population[best].Fitness {
			best = idx
		}
	}
	return best
}
