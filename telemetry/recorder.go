package telemetry

import "github.com/nijotz/rise/neat/genetics"

// Generation is one recorded snapshot of a population at a generation
// transition: fitness across every genome handed to the Creator, and
// how many species the classifier produced.
type Generation struct {
	Index        int
	SpeciesCount int
	Fitness      Floats
	Complexity   Floats
}

// Recorder accumulates one Generation per call to Record, intended to
// be wired to rise.World.OnGeneration.
type Recorder struct {
	Generations []Generation
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a Generation built from genomes (fitness already
// assigned) and speciesCount, matching the signature of
// rise.World.OnGeneration.
func (r *Recorder) Record(genomes []*genetics.Genome, speciesCount int) {
	fitness := make(Floats, len(genomes))
	complexity := make(Floats, len(genomes))
	for i, g := range genomes {
		fitness[i] = g.Fitness
		complexity[i] = float64(g.Network().Complexity())
	}
	r.Generations = append(r.Generations, Generation{
		Index:        len(r.Generations),
		SpeciesCount: speciesCount,
		Fitness:      fitness,
		Complexity:   complexity,
	})
}

// BestFitness returns, per recorded generation, the maximum fitness
// seen (fitness is "closer to origin is better", i.e. less negative is
// better, so this is the max, not the min).
func (r *Recorder) BestFitness() Floats {
	best := make(Floats, len(r.Generations))
	for i, g := range r.Generations {
		best[i] = g.Fitness.Max()
	}
	return best
}
