package genetics

import (
	"math/rand"
	"sort"

	"github.com/nijotz/rise/neat/network"
)

// Genome is the genotype: an ordered-by-innovation-number list of
// genes plus bookkeeping. It owns a Network (the phenotype) that is
// rebuilt — never incrementally patched — whenever the gene list
// changes, whether by mutation, crossover, or cloning. Rebuilding is
// the simplest correct rule and its cost is bounded by population size
// and culling; incremental patching was judged not worth the
// complexity (see DESIGN.md).
type Genome struct {
	Genes         []Gene
	Fitness       float64
	NumInputs     int
	NumOutputs    int
	MutationRates MutationRates

	network *network.Network
}

// NewGenome constructs a Genome from explicit genes — used by tests and
// by any caller that wants deterministic, non-random seed genomes. Genes
// need not arrive sorted; NewGenome sorts a copy by innovation number so
// every later operation (distance, crossover) can rely on ascending order.
func NewGenome(genes []Gene, numInputs, numOutputs int) *Genome {
	g := &Genome{
		Genes:         append([]Gene(nil), genes...),
		NumInputs:     numInputs,
		NumOutputs:    numOutputs,
		MutationRates: DefaultMutationRates(),
	}
	sort.SliceStable(g.Genes, func(i, j int) bool { return g.Genes[i].InnovationNum < g.Genes[j].InnovationNum })
	g.rebuildNetwork()
	return g
}

// Random seeds an initial genome with a handful of random connections
// between a handful of random neuron ids, the same loose bootstrap the
// original implementation used to seed generation zero: topology and
// weights are refined by mutation and selection from there, not by a
// principled initial wiring.
func Random(numInputs, numOutputs int, registry *InnovationRegistry) *Genome {
	numGenes := 1 + rand.Intn(4)   // [1,5)
	numNeurons := 1 + rand.Intn(6) // [1,7)
	genes := make([]Gene, 0, numGenes)
	for i := 0; i < numGenes; i++ {
		genes = append(genes, NewGene(
			rand.Intn(numNeurons),
			rand.Intn(numNeurons),
			rand.Float64()*2-1,
			registry.Next(),
		))
	}
	return NewGenome(genes, numInputs, numOutputs)
}

// Network returns the genome's current phenotype. It is always
// consistent with Genes: any operation that changes Genes rebuilds it
// before returning control to the caller.
func (g *Genome) Network() *network.Network {
	return g.network
}

// Clone duplicates a genome's genes and rebuilds a fresh network from
// the duplicate. The clone shares no mutable structure with the
// original: mutating the clone never touches the original's genes or network.
func (g *Genome) Clone() *Genome {
	clone := &Genome{
		Genes:         append([]Gene(nil), g.Genes...),
		Fitness:       g.Fitness,
		NumInputs:     g.NumInputs,
		NumOutputs:    g.NumOutputs,
		MutationRates: g.MutationRates,
	}
	clone.rebuildNetwork()
	return clone
}

// rebuildNetwork materializes the Network from the genome's current
// enabled genes, in gene order, per the construction contract in the
// specification: disabled genes are never materialized, and every
// neuron referenced as a source or destination exists in the network
// even if it otherwise has no incoming connections.
func (g *Genome) rebuildNetwork() {
	links := make([]network.Link, 0, len(g.Genes))
	for _, gene := range g.Genes {
		if !gene.Enabled {
			continue
		}
		links = append(links, network.Link{Into: gene.Into, Out: gene.Out, Weight: gene.Weight})
	}
	g.network = network.New(links, g.NumInputs, g.NumOutputs)
}

// maxNeuronID returns the greatest neuron id currently materialized in
// the genome's network — used by mutateNode as the id its two new
// genes route through; that id is reused as-is, not advanced past
// (see the node-id collision caveat in DESIGN.md).
func (g *Genome) maxNeuronID() int {
	max := -1
	for id := range g.network.Neurons() {
		if id > max {
			max = id
		}
	}
	return max
}
