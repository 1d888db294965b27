package genetics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifferenceOfIdenticalGenomesIsZero(t *testing.T) {
	g1 := NewGenome(feedforwardGenes(), 2, 1)
	g2 := g1.Clone()
	assert.Equal(t, 0.0, Difference(g1, g2))
}

// S4 — a species is compatible with a clone of its representative.
func TestSpeciesCompatibleWithClone(t *testing.T) {
	g1 := NewGenome(feedforwardGenes(), 2, 1)
	s := NewSpecies(g1, 1, 1, 1, 1.0, 0.5)
	assert.True(t, s.Compatible(g1.Clone()))
}

// S4 — a species is incompatible with a genome whose innovations are
// entirely disjoint from its own.
func TestSpeciesIncompatibleWithDisjointInnovations(t *testing.T) {
	g1 := NewGenome([]Gene{
		NewGene(0, 2, 1, 1),
		NewGene(1, 2, 1, 2),
	}, 2, 1)
	g2 := NewGenome([]Gene{
		NewGene(0, 2, 1, 101),
		NewGene(1, 2, 1, 102),
	}, 2, 1)
	s := NewSpecies(g1, 1, 1, 1, 1.0, 0.5)
	assert.False(t, s.Compatible(g2))
}

func TestDifferenceWithNoMatchingInnovationsIsNaN(t *testing.T) {
	g1 := NewGenome([]Gene{NewGene(0, 2, 1, 1)}, 2, 1)
	g2 := NewGenome([]Gene{NewGene(0, 2, 1, 2)}, 2, 1)
	d := weightedDifference(g1, g2, 1, 1, 1)
	assert.True(t, math.IsNaN(d))
}

func TestCullKeepsTopHalfByFitness(t *testing.T) {
	g1 := NewGenome(feedforwardGenes(), 2, 1)
	g1.Fitness = -1
	g2 := g1.Clone()
	g2.Fitness = -2
	g3 := g1.Clone()
	g3.Fitness = -3
	g4 := g1.Clone()
	g4.Fitness = -4

	s := NewSpecies(g1, 1, 1, 1, 1.0, 0.5)
	s.Genomes = []*Genome{g1, g2, g3, g4}
	s.Cull()

	assert.Len(t, s.Genomes, 2)
	assert.Equal(t, -1.0, s.Genomes[0].Fitness)
	assert.Equal(t, -2.0, s.Genomes[1].Fitness)
}

func TestCullTreatsNaNFitnessAsLeast(t *testing.T) {
	g1 := NewGenome(feedforwardGenes(), 2, 1)
	g1.Fitness = -5
	g2 := g1.Clone()
	g2.Fitness = math.NaN()

	s := NewSpecies(g1, 1, 1, 1, 1.0, 0.5)
	s.Genomes = []*Genome{g2, g1}
	s.Cull()

	assert.Len(t, s.Genomes, 1)
	assert.Equal(t, -5.0, s.Genomes[0].Fitness)
}

func TestCalcAverageFitness(t *testing.T) {
	g1 := NewGenome(feedforwardGenes(), 2, 1)
	g1.Fitness = -2
	g2 := g1.Clone()
	g2.Fitness = -4

	s := NewSpecies(g1, 1, 1, 1, 1.0, 0.5)
	s.Genomes = []*Genome{g1, g2}
	s.CalcAverageFitness()

	assert.Equal(t, -3.0, s.AvgFitness)
}

func TestBreedChildProducesNonEmptyGenome(t *testing.T) {
	registry := NewInnovationRegistry()
	g1 := NewGenome(feedforwardGenes(), 2, 1)
	s := NewSpecies(g1, 1, 1, 1, 1.0, 0.5)
	child := s.BreedChild(registry)
	assert.NotEmpty(t, child.Genes)
}
