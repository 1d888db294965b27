// Package genetics implements the NEAT genotype: connection genes,
// the innovation registry that numbers them, genomes built from them,
// species that cluster compatible genomes, and the Creator that drives
// one generation's classify/cull/reproduce cycle.
package genetics

import "fmt"

// Gene is an immutable connection record: a directed link between two
// neuron ids, its weight, whether it is currently expressed in the
// phenotype, and the innovation number that identifies when this
// structural mutation first arose. Genes are never mutated in place —
// every Genome operation that changes a gene produces a replacement
// value and appends or swaps it into the Genome's gene list.
type Gene struct {
	Into          int
	Out           int
	Weight        float64
	Enabled       bool
	InnovationNum int64
}

// NewGene constructs an enabled Gene with the given innovation number.
func NewGene(into, out int, weight float64, innovation int64) Gene {
	return Gene{Into: into, Out: out, Weight: weight, Enabled: true, InnovationNum: innovation}
}

func (g Gene) String() string {
	enabled := ""
	if !g.Enabled {
		enabled = " DISABLED"
	}
	return fmt.Sprintf("[%d -> %d w=%.3f inn=%d%s]", g.Into, g.Out, g.Weight, g.InnovationNum, enabled)
}
