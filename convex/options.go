package convex

// Options configures the staged convex inversion. Zero values are replaced
// by the package defaults in Run; construct via DefaultOptions and override
// selectively.
type Options struct {
	// Mix is the Lommel-Seeliger/Lambert blend parameter (0 = pure
	// Lommel-Seeliger, 1 = pure Lambert).
	Mix float64
	// RegWeight scales the facet-area smoothness regularizer.
	RegWeight float64
	// MaxIter bounds the final shape optimization (L-BFGS major iterations).
	MaxIter int
	// Subdivisions selects the icosphere refinement level of the seed shape.
	Subdivisions int
	// NPeriods is the number of trial periods in the coarse period scan.
	NPeriods int
	// NLambda and NBeta set the pole grid resolution (longitudes x latitudes).
	NLambda int
	NBeta   int
	// SearchIter bounds the cheap shape fits inside the coarse period scan.
	SearchIter int
	// RefineIter bounds the shape fits inside pole search and period
	// refinement.
	RefineIter int
}

// DefaultOptions returns the reference configuration: a level-2 icosphere
// seed, a 100-step period scan with 30-iteration trial fits, a 12x6 pole
// grid, and a 200-iteration final fit.
func DefaultOptions() Options {
	return Options{
		Mix:          0.1,
		RegWeight:    0.01,
		MaxIter:      200,
		Subdivisions: 2,
		NPeriods:     100,
		NLambda:      12,
		NBeta:        6,
		SearchIter:   30,
		RefineIter:   50,
	}
}

// normalized fills unset fields with defaults so Run tolerates partially
// populated Options.
func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Mix == 0 && o.RegWeight == 0 && o.MaxIter == 0 {
		// Entirely zero-valued options mean "use defaults".
		return d
	}
	if o.MaxIter <= 0 {
		o.MaxIter = d.MaxIter
	}
	if o.Subdivisions <= 0 {
		o.Subdivisions = d.Subdivisions
	}
	if o.NPeriods <= 0 {
		o.NPeriods = d.NPeriods
	}
	if o.NLambda <= 0 {
		o.NLambda = d.NLambda
	}
	if o.NBeta <= 0 {
		o.NBeta = d.NBeta
	}
	if o.SearchIter <= 0 {
		o.SearchIter = d.SearchIter
	}
	if o.RefineIter <= 0 {
		o.RefineIter = d.RefineIter
	}
	return o
}
