package genetics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCreator() *Creator {
	return NewCreator(NewInnovationRegistry(), 1, 1, 1, 1.0, 0.5)
}

// S6 — running one generation over a population with uniform negative
// fitness (the typical case for a -distance fitness function) returns a
// population of the same size, with no species left empty.
func TestNextGenerationPreservesPopulationSize(t *testing.T) {
	c := newTestCreator()
	genomes := make([]*Genome, 0, 10)
	for i := 0; i < 10; i++ {
		g := NewGenome(feedforwardGenes(), 2, 1)
		g.Fitness = -3.0
		genomes = append(genomes, g)
	}

	next := c.NextGeneration(genomes)

	assert.Len(t, next, len(genomes))
	for _, s := range c.Species {
		assert.NotEmpty(t, s.Genomes)
	}
}

func TestNextGenerationSpeciatesDisjointGenomes(t *testing.T) {
	c := newTestCreator()
	compatible := NewGenome(feedforwardGenes(), 2, 1)
	compatible.Fitness = -1

	disjoint := NewGenome([]Gene{
		NewGene(0, 2, 1, 501),
		NewGene(1, 2, 1, 502),
	}, 2, 1)
	disjoint.Fitness = -1

	genomes := []*Genome{compatible, compatible.Clone(), disjoint, disjoint.Clone()}
	for _, g := range genomes {
		g.Fitness = -1
	}

	next := c.NextGeneration(genomes)

	require.Len(t, next, len(genomes))
	assert.True(t, len(c.Species) >= 2)
}

func TestNextGenerationOnEmptyPopulation(t *testing.T) {
	c := newTestCreator()
	next := c.NextGeneration(nil)
	assert.Empty(t, next)
}

func TestRouletteWeightsHandlesAllEqualNegativeShares(t *testing.T) {
	weights := rouletteWeights([]float64{-1, -1, -1})
	for _, w := range weights {
		assert.True(t, w > 0)
	}
}

func TestRouletteWeightsFallsBackOnNaN(t *testing.T) {
	weights := rouletteWeights([]float64{math.NaN(), math.NaN()})
	for _, w := range weights {
		assert.Equal(t, 1.0, w)
	}
}
