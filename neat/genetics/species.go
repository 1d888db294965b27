package genetics

import (
	"math"
	"math/rand"
	"sort"
)

// Species is a cluster of genomes within CompatibilityThreshold
// genetic distance of a shared representative. Reproduction happens
// within a species so that compatible genomes mate.
type Species struct {
	Representative *Genome
	Genomes        []*Genome
	AvgFitness     float64

	excessCoeff     float64
	disjointCoeff   float64
	weightDiffCoeff float64
	threshold       float64
	cullPercentage  float64
}

// NewSpecies starts a new species with genome as both its sole member
// and its representative (a snapshot clone, so later mutation of the
// member doesn't silently change the representative out from under
// compatibility checks).
func NewSpecies(genome *Genome, excessCoeff, disjointCoeff, weightDiffCoeff, threshold, cullPercentage float64) *Species {
	return &Species{
		Representative:  genome.Clone(),
		Genomes:         []*Genome{genome},
		excessCoeff:     excessCoeff,
		disjointCoeff:   disjointCoeff,
		weightDiffCoeff: weightDiffCoeff,
		threshold:       threshold,
		cullPercentage:  cullPercentage,
	}
}

// distanceTerms walks two genomes' gene lists in parallel by index —
// both are ordered by innovation number by construction (see
// NewGenome) — and returns the raw excess count, disjoint count, and
// mean weight difference among matching genes. Every access is
// bounds-checked, so once either list is exhausted the remainder of
// the other is correctly classified as excess regardless of which
// side it's on (the tail-only case the original implementation's
// unconditional indexing got wrong).
func distanceTerms(g1, g2 *Genome) (excess, disjoint int, weightDiff float64) {
	var weightDiffs []float64
	i, j := 0, 0
	for i < len(g1.Genes) && j < len(g2.Genes) {
		a, b := g1.Genes[i], g2.Genes[j]
		switch {
		case a.InnovationNum == b.InnovationNum:
			weightDiffs = append(weightDiffs, math.Abs(a.Weight-b.Weight))
			i++
			j++
		case a.InnovationNum > b.InnovationNum:
			if j == len(g2.Genes)-1 {
				excess++
			} else {
				disjoint++
			}
			j++
		default: // b.InnovationNum > a.InnovationNum
			if i == len(g1.Genes)-1 {
				excess++
			} else {
				disjoint++
			}
			i++
		}
	}
	excess += (len(g1.Genes) - i) + (len(g2.Genes) - j)

	if len(weightDiffs) == 0 {
		return excess, disjoint, math.NaN()
	}
	sum := 0.0
	for _, d := range weightDiffs {
		sum += d
	}
	return excess, disjoint, sum / float64(len(weightDiffs))
}

// Difference gives a measure of genetic distance between two genomes:
// the unit-coefficient linear combination of percent-excess,
// percent-disjoint and mean weight difference. Two identical gene
// lists are distance zero; a matching-innovation-free pair is NaN
// (see Compatible). This is the package-level form of the
// specification's Species::difference external interface, with the
// coefficients fixed at 1.0; Species.Compatible applies whatever
// coefficients the species was configured with.
func Difference(g1, g2 *Genome) float64 {
	return weightedDifference(g1, g2, 1, 1, 1)
}

func weightedDifference(g1, g2 *Genome, excessCoeff, disjointCoeff, weightDiffCoeff float64) float64 {
	excess, disjoint, weightDiff := distanceTerms(g1, g2)

	n := float64(len(g1.Genes))
	if len(g2.Genes) > len(g1.Genes) {
		n = float64(len(g2.Genes))
	}
	if n == 0 {
		return 0
	}
	return excessCoeff*float64(excess)/n + disjointCoeff*float64(disjoint)/n + weightDiffCoeff*weightDiff
}

// Compatible reports whether genome is within this species' threshold
// of its representative. A NaN distance (no matching innovations
// between the two genomes at all) fails the `< threshold` test and is
// therefore treated as incompatible — accepted behavior per the
// specification: genomes with nothing in common are, by definition,
// very different.
func (s *Species) Compatible(genome *Genome) bool {
	d := weightedDifference(s.Representative, genome, s.excessCoeff, s.disjointCoeff, s.weightDiffCoeff)
	return d < s.threshold
}

// AddGenome adds genome to this species' member list.
func (s *Species) AddGenome(genome *Genome) {
	s.Genomes = append(s.Genomes, genome)
}

// CalcAverageFitness recomputes AvgFitness as the mean fitness of current members.
func (s *Species) CalcAverageFitness() {
	if len(s.Genomes) == 0 {
		s.AvgFitness = 0
		return
	}
	sum := 0.0
	for _, g := range s.Genomes {
		sum += g.Fitness
	}
	s.AvgFitness = sum / float64(len(s.Genomes))
}

// Cull sorts members by descending fitness and keeps the top half,
// truncating at floor(len(members) * cullPercentage). NaN fitness
// sorts as least (see DESIGN.md), so a genome with NaN fitness is the
// first to go.
func (s *Species) Cull() {
	sort.SliceStable(s.Genomes, func(i, j int) bool {
		return fitnessLess(s.Genomes[j].Fitness, s.Genomes[i].Fitness)
	})
	keep := int(float64(len(s.Genomes)) * s.cullPercentage)
	s.Genomes = s.Genomes[:keep]
}

// fitnessLess is a total order over float64 fitness values that treats
// NaN as the least value, so Cull's sort never panics or produces an
// unstable order when a fitness is NaN.
func fitnessLess(a, b float64) bool {
	if math.IsNaN(a) {
		return !math.IsNaN(b)
	}
	if math.IsNaN(b) {
		return false
	}
	return a < b
}

// AssignRepresentative elects a uniformly random member as the new
// representative, snapshotted by Clone so future mutation of that
// member doesn't change the species' notion of its representative.
func (s *Species) AssignRepresentative() {
	s.Representative = s.Genomes[rand.Intn(len(s.Genomes))].Clone()
}

// BreedChild picks two uniformly random members (which may be the same
// genome) and breeds them.
func (s *Species) BreedChild(registry *InnovationRegistry) *Genome {
	a := s.Genomes[rand.Intn(len(s.Genomes))]
	b := s.Genomes[rand.Intn(len(s.Genomes))]
	return a.Breed(b, registry)
}
