package genetics

import "math/rand"

// Cross produces a child genome from two parents, ordered so that A is
// the fitter (ties broken by caller order: the receiver wins ties).
// Child genes are built by walking A's genes in order: each starts as
// a copy of A's gene; if B has a gene at the same innovation number,
// the copy is replaced by B's gene with 50/50 probability. The result
// is forced enabled, then — only if either parent's gene at that
// innovation was disabled — disabled again with probability
// MutationRates.Disable. The child inherits A's input/output arity and
// mutation rates; its network is rebuilt from the new gene list and
// its fitness starts at zero.
func (a *Genome) Cross(b *Genome) *Genome {
	parentA, parentB := a, b
	if b.Fitness > a.Fitness {
		parentA, parentB = b, a
	}

	byInnovation := make(map[int64]Gene, len(parentB.Genes))
	for _, gene := range parentB.Genes {
		byInnovation[gene.InnovationNum] = gene
	}

	childGenes := make([]Gene, 0, len(parentA.Genes))
	for _, geneA := range parentA.Genes {
		child := geneA
		if geneB, ok := byInnovation[geneA.InnovationNum]; ok {
			if rand.Float64() < 0.5 {
				child = geneB
			}
			child.Enabled = true
			if !geneA.Enabled || !geneB.Enabled {
				if rand.Float64() < parentA.MutationRates.Disable {
					child.Enabled = false
				}
			}
		} else {
			child.Enabled = true
			if !geneA.Enabled && rand.Float64() < parentA.MutationRates.Disable {
				child.Enabled = false
			}
		}
		childGenes = append(childGenes, child)
	}

	child := NewGenome(childGenes, parentA.NumInputs, parentA.NumOutputs)
	child.MutationRates = parentA.MutationRates
	return child
}

// Breed returns a single offspring of a and b: with probability
// MutationRates.Crossover the child is Cross(a, b); otherwise it is a
// clone of a. Either way the child is then mutated before being
// returned. (An earlier revision of the source this engine is modeled
// on computed the crossed child and discarded it in favor of always
// cloning — the later, intended semantics kept here is: cross with
// probability Crossover, else clone, then always mutate.)
func (a *Genome) Breed(b *Genome, registry *InnovationRegistry) *Genome {
	var child *Genome
	if rand.Float64() < a.MutationRates.Crossover {
		child = a.Cross(b)
	} else {
		child = a.Clone()
	}
	child.Mutate(registry)
	return child
}
