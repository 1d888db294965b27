package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutateWeightChangesOnlyOneGeneValue(t *testing.T) {
	g := NewGenome(feedforwardGenes(), 2, 1)
	before := append([]Gene(nil), g.Genes...)
	g.MutationRates.Weight = 1
	g.MutationRates.Link = 0
	g.MutationRates.Node = 0
	registry := NewInnovationRegistry()

	g.Mutate(registry)

	changed := 0
	for i := range g.Genes {
		if g.Genes[i].Weight != before[i].Weight {
			changed++
		}
	}
	assert.Equal(t, 1, changed)
}

func TestMutateLinkAddsAtMostOneGeneWhenForced(t *testing.T) {
	g := NewGenome(feedforwardGenes(), 2, 1)
	g.MutationRates.Weight = 0
	g.MutationRates.Link = 1
	g.MutationRates.Node = 0
	registry := NewInnovationRegistry()
	registry.Seed(10)

	before := len(g.Genes)
	g.Mutate(registry)

	assert.True(t, len(g.Genes) == before || len(g.Genes) == before+1)
	assert.NotNil(t, g.Network())
}

func TestMutateNodeSplitsAGene(t *testing.T) {
	g := NewGenome(feedforwardGenes(), 2, 1)
	g.MutationRates.Weight = 0
	g.MutationRates.Link = 0
	g.MutationRates.Node = 1
	registry := NewInnovationRegistry()

	g.Mutate(registry)

	assert.Len(t, g.Genes, 5)
	disabledCount := 0
	for _, gene := range g.Genes {
		if !gene.Enabled {
			disabledCount++
		}
	}
	assert.Equal(t, 1, disabledCount)
	assert.NotNil(t, g.Network())
}

func TestMutateNodeNoopOnEmptyGenome(t *testing.T) {
	g := NewGenome(nil, 2, 1)
	g.MutationRates.Node = 1
	g.MutationRates.Weight = 0
	g.MutationRates.Link = 0
	registry := NewInnovationRegistry()
	assert.NotPanics(t, func() { g.Mutate(registry) })
	assert.Empty(t, g.Genes)
}

func TestMaxNeuronID(t *testing.T) {
	g := NewGenome(feedforwardGenes(), 2, 1)
	assert.Equal(t, 3, g.maxNeuronID())
}
