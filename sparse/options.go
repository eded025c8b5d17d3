package sparse

// Options configures the sparse-only inversion pipeline.
type Options struct {
	// Mix is the Lommel-Seeliger/Lambert blend parameter.
	Mix float64
	// RegWeight scales the facet-area smoothness regularizer.
	RegWeight float64
	// LambdaSparse weighs the sparse term of the combined objective.
	LambdaSparse float64
	// MaxIter bounds the final shape fit.
	MaxIter int
	// Subdivisions selects the icosphere seed level.
	Subdivisions int
	// NPeriods and NBins control the PDM period scan.
	NPeriods int
	NBins    int
	// NLambda and NBeta set the pole grid resolution.
	NLambda int
	NBeta   int
	// RefineIter bounds the shape fits inside the pole grid.
	RefineIter int
}

// DefaultOptions returns the reference configuration: a dense 500-step PDM
// scan with 10 phase bins, a 24x18 pole grid over a level-1 icosphere, and a
// 100-iteration final fit.
func DefaultOptions() Options {
	return Options{
		Mix:          0.1,
		RegWeight:    0.01,
		LambdaSparse: 1.0,
		MaxIter:      100,
		Subdivisions: 1,
		NPeriods:     500,
		NBins:        10,
		NLambda:      24,
		NBeta:        18,
		RefineIter:   50,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o == (Options{}) {
		return d
	}
	if o.LambdaSparse <= 0 {
		o.LambdaSparse = d.LambdaSparse
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
	if o.NBins <= 0 {
		o.NBins = d.NBins
	}
	if o.NLambda <= 0 {
		o.NLambda = d.NLambda
	}
	if o.NBeta <= 0 {
		o.NBeta = d.NBeta
	}
	if o.RefineIter <= 0 {
		o.RefineIter = d.RefineIter
	}
	return o
}
