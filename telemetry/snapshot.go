package telemetry

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sbinet/npyio/npz"
	"gonum.org/v1/gonum/mat"

	"github.com/nijotz/rise/neat/genetics"
)

// Snapshot packages a recorder's history plus the current best genome
// for archival. Unlike Recorder, which is accumulated incrementally by
// the tick loop's OnGeneration hook, a Snapshot is built once, on
// demand, when a host wants to write it out.
type Snapshot struct {
	recorder *Recorder
	best     *genetics.Genome
}

// NewSnapshot captures recorder's current history and best, the
// highest-fitness genome of the most recent generation.
func NewSnapshot(recorder *Recorder, best *genetics.Genome) *Snapshot {
	return &Snapshot{recorder: recorder, best: best}
}

// WriteNPZ archives the generation-by-generation (mean, variance) of
// fitness and complexity, plus the flattened connection-weight vector
// of the best genome, as a NumPy .npz archive, for offline analysis
// with a plotting or notebook tool outside the engine.
func (s *Snapshot) WriteNPZ(w io.Writer) error {
	n := len(s.recorder.Generations)
	fitness := mat.NewDense(n, 2, nil)
	complexity := mat.NewDense(n, 2, nil)
	for i, gen := range s.recorder.Generations {
		fitness.SetRow(i, gen.Fitness.MeanVariance())
		complexity.SetRow(i, gen.Complexity.MeanVariance())
	}

	out := npz.NewWriter(w)
	if err := out.Write("generations_fitness", fitness); err != nil {
		return errors.Wrap(err, "failed to write fitness statistics")
	}
	if err := out.Write("generations_complexity", complexity); err != nil {
		return errors.Wrap(err, "failed to write complexity statistics")
	}

	if s.best != nil {
		weights := make([]float64, len(s.best.Genes))
		for i, gene := range s.best.Genes {
			weights[i] = gene.Weight
		}
		if err := out.Write("best_genome_weights", weights); err != nil {
			return errors.Wrap(err, "failed to write best genome weights")
		}
	}

	return out.Close()
}
