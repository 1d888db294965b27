package genetics

// MutationRates are the per-genome probabilities of mutate's coin
// flips and of breed's crossover-vs-clone choice, plus the parameters
// of the operators themselves. Genomes carry their own copy so a
// future extension (e.g. self-adaptive rates) has somewhere to live,
// but today every genome in a population is seeded from the same
// neat.Options.
type MutationRates struct {
	Crossover   float64
	Weight      float64
	WeightStep  float64
	Link        float64
	Node        float64
	Disable     float64
}

// DefaultMutationRates returns the NEAT-standard rates named in the
// specification: crossover 0.75, weight/link/node mutation 0.05 each,
// weight step 0.05, disable-on-cross 0.8.
func DefaultMutationRates() MutationRates {
	return MutationRates{
		Crossover:  0.75,
		Weight:     0.05,
		WeightStep: 0.05,
		Link:       0.05,
		Node:       0.05,
		Disable:    0.8,
	}
}

// MutationRatesFromOptions builds MutationRates from the six rate
// fields of a neat.Options, passed individually, so the evolution
// driver's config feeds directly into every genome it creates.
func MutationRatesFromOptions(crossover, weight, weightStep, link, node, disable float64) MutationRates {
	return MutationRates{
		Crossover:  crossover,
		Weight:     weight,
		WeightStep: weightStep,
		Link:       link,
		Node:       node,
		Disable:    disable,
	}
}
