// Package rise implements the Actor/World tick loop: per-tick physics
// integration driven by each actor's genome network, and the generation
// transition that replaces the population via neat/genetics.Creator.
package rise

import (
	"math"

	"github.com/nijotz/rise/neat"
	"github.com/nijotz/rise/neat/genetics"
)

// Sensor/output arity every actor's genome must match: position,
// velocity, acceleration (x,y each) plus a bias input, feeding a
// two-output jerk vector.
const (
	NumSensors = 7
	NumOutputs = 2
)

// spawnX, spawnY is where every freshly constructed actor starts.
const (
	spawnX = 320.0
	spawnY = 240.0
)

// Actor is a point in 2D with velocity and acceleration, driven each
// tick by the network of the genome it owns.
type Actor struct {
	Position     [2]float64
	Velocity     [2]float64
	Acceleration [2]float64

	genome *genetics.Genome
}

// NewActor returns an Actor at the spawn point, at rest, wrapping genome.
func NewActor(genome *genetics.Genome) *Actor {
	return &Actor{
		Position: [2]float64{spawnX, spawnY},
		genome:   genome,
	}
}

// Genome exposes the actor's owned genome, read-only by convention —
// callers must not mutate its genes directly while the actor is live.
func (a *Actor) Genome() *genetics.Genome {
	return a.genome
}

// Push adds an instantaneous force to the actor's acceleration. This
// mirrors the original engine's click-to-perturb interaction: it only
// touches acceleration, the same state Update's integration step reads,
// so a headless caller can jostle an actor without a GUI event loop.
func (a *Actor) Push(force [2]float64) {
	a.Acceleration[0] += force[0]
	a.Acceleration[1] += force[1]
}

// Update assembles sensor inputs from current position/velocity/
// acceleration plus a bias term, evaluates the actor's network,
// interprets the first two outputs as a jerk vector, and integrates
// acceleration, velocity and position forward by dt.
func (a *Actor) Update(dt float64) {
	inputs := []float64{
		a.Position[0], a.Position[1],
		a.Velocity[0], a.Velocity[1],
		a.Acceleration[0], a.Acceleration[1],
		1.0,
	}
	outputs := a.genome.Network().Evaluate(inputs)
	jerk := [2]float64{outputs[0], outputs[1]}

	a.Acceleration[0] += jerk[0] * dt
	a.Acceleration[1] += jerk[1] * dt
	a.Velocity[0] += a.Acceleration[0] * dt
	a.Velocity[1] += a.Acceleration[1] * dt
	a.Position[0] += a.Velocity[0] * dt
	a.Position[1] += a.Velocity[1] * dt
}

// distanceToOrigin is the simulation's fitness function: closer to
// (0,0) is better. Fitness is otherwise opaque to the engine — it only
// needs a total order, which float64 comparisons already give it apart
// from NaN (see neat/genetics.fitnessLess for the NaN-as-least policy
// the species cull relies on).
func distanceToOrigin(a *Actor) float64 {
	return -math.Hypot(a.Position[0], a.Position[1])
}

// World owns the actor population, the Creator that evolves it, and
// the countdown to the next generation transition.
type World struct {
	Actors []*Actor

	// OnGeneration, if set, is called with the pre-transition genomes
	// (fitness already assigned) and the species count right after a
	// generation transition is decided but before the new actor
	// population replaces the old. A host can use this hook to record
	// telemetry without the tick loop itself depending on how that
	// telemetry is stored or exported.
	OnGeneration func(genomes []*genetics.Genome, speciesCount int)

	creator        *genetics.Creator
	options        *neat.Options
	generationTick int
}

// NewWorld builds a world of opts.PopulationSize actors around random
// genomes sized for NumSensors inputs and NumOutputs outputs, and a
// Creator configured from opts' speciation coefficients.
func NewWorld(opts *neat.Options) *World {
	registry := genetics.NewInnovationRegistry()
	creator := genetics.NewCreator(registry, opts.ExcessCoeff, opts.DisjointCoeff, opts.WeightDiffCoeff, opts.CompatibilityThreshold, opts.CullPercentage)

	actors := make([]*Actor, 0, opts.PopulationSize)
	for i := 0; i < opts.PopulationSize; i++ {
		genome := genetics.Random(NumSensors, NumOutputs, registry)
		genome.MutationRates = genetics.MutationRatesFromOptions(
			opts.CrossoverRate, opts.WeightMutationRate, opts.WeightStep,
			opts.LinkMutationRate, opts.NodeMutationRate, opts.DisableRate,
		)
		actors = append(actors, NewActor(genome))
	}

	return &World{
		Actors:         actors,
		creator:        creator,
		options:        opts,
		generationTick: opts.TicksPerGeneration(),
	}
}

// Update decrements the generation countdown; when it reaches zero, the
// current actor genomes (with fitness assigned from their position) are
// handed to the Creator, the returned genomes become a freshly
// constructed actor population, and the countdown resets. Either way,
// every actor then advances by one physics step. Generation transitions
// happen atomically between ticks: the full population is replaced
// before any actor in the new generation is updated.
func (w *World) Update() {
	w.generationTick--
	if w.generationTick <= 0 {
		w.generationTick = w.options.TicksPerGeneration()

		genomes := make([]*genetics.Genome, len(w.Actors))
		for i, actor := range w.Actors {
			actor.genome.Fitness = distanceToOrigin(actor)
			genomes[i] = actor.genome
		}

		next := w.creator.NextGeneration(genomes)
		if w.OnGeneration != nil {
			w.OnGeneration(genomes, len(w.creator.Species))
		}

		actors := make([]*Actor, 0, len(next))
		for _, genome := range next {
			actors = append(actors, NewActor(genome))
		}
		w.Actors = actors
	}

	dt := w.options.SecondsPerTick()
	for _, actor := range w.Actors {
		actor.Update(dt)
	}
}
