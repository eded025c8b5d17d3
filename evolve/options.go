package evolve

// Options configures the genetic solver. Construct via DefaultOptions and
// override selectively; Run validates ranges and returns ErrBadOption for
// impossible combinations.
type Options struct {
	// PopulationSize is the number of individuals kept per generation.
	PopulationSize int
	// Generations is the number of evolution steps after the initial
	// population.
	Generations int
	// TournamentSize is how many distinct individuals enter each selection
	// tournament. Must not exceed PopulationSize.
	TournamentSize int
	// EliteFraction is the share of top individuals copied unchanged into the
	// next generation (at least one survives regardless).
	EliteFraction float64
	// MutationRate is the per-child probability of applying a mutation.
	MutationRate float64
	// MutationSigma is the initial mutation amplitude as a fraction of the
	// seed mesh scale (largest vertex radius).
	MutationSigma float64
	// SigmaDecay multiplies the mutation amplitude once per generation.
	SigmaDecay float64
	// CrossoverRate is the per-child probability of recombining two parents;
	// otherwise the child starts as a copy of the first parent.
	CrossoverRate float64
	// BlendAlpha reserved blend-shape parameter of the BLX crossover.
	BlendAlpha float64
	// Mix is the Lommel-Seeliger/Lambert blend of the brightness model.
	Mix float64
	// RegWeight scales the edge-length regularizer in the fitness.
	RegWeight float64
	// Seed drives all randomness; 0 selects the fixed default seed.
	Seed int64
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		PopulationSize: 50,
		Generations:    500,
		TournamentSize: 5,
		EliteFraction:  0.1,
		MutationRate:   0.8,
		MutationSigma:  0.05,
		SigmaDecay:     0.998,
		CrossoverRate:  0.5,
		BlendAlpha:     0.5,
		Mix:            0.1,
		RegWeight:      0.001,
		Seed:           42,
	}
}

// validate rejects combinations the loop cannot run with.
func (o Options) validate() error {
	if o.PopulationSize < 1 || o.Generations < 0 {
		return ErrBadOption
	}
	if o.TournamentSize < 1 || o.TournamentSize > o.PopulationSize {
		return ErrBadOption
	}
	if o.EliteFraction < 0 || o.EliteFraction > 1 {
		return ErrBadOption
	}
	if o.MutationSigma < 0 || o.SigmaDecay <= 0 {
		return ErrBadOption
	}
	return nil
}
