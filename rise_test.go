package rise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nijotz/rise/neat"
	"github.com/nijotz/rise/neat/genetics"
)

func flatGenome() *genetics.Genome {
	genes := []genetics.Gene{
		genetics.NewGene(0, NumSensors, 1, 1),
		genetics.NewGene(NumSensors, NumSensors+1, 1, 2),
	}
	return genetics.NewGenome(genes, NumSensors, NumOutputs)
}

func TestNewActorStartsAtSpawnPointAtRest(t *testing.T) {
	a := NewActor(flatGenome())
	assert.Equal(t, [2]float64{spawnX, spawnY}, a.Position)
	assert.Equal(t, [2]float64{0, 0}, a.Velocity)
	assert.Equal(t, [2]float64{0, 0}, a.Acceleration)
}

func TestActorUpdateIntegratesPhysics(t *testing.T) {
	a := NewActor(flatGenome())
	before := a.Position
	a.Update(1.0 / 25.0)
	assert.NotEqual(t, before, a.Position)
}

func TestActorPushOnlyTouchesAcceleration(t *testing.T) {
	a := NewActor(flatGenome())
	beforePos, beforeVel := a.Position, a.Velocity
	a.Push([2]float64{3, -2})
	assert.Equal(t, [2]float64{3, -2}, a.Acceleration)
	assert.Equal(t, beforePos, a.Position)
	assert.Equal(t, beforeVel, a.Velocity)
}

func TestDistanceToOriginIsNonPositive(t *testing.T) {
	a := NewActor(flatGenome())
	a.Position = [2]float64{3, 4}
	assert.Equal(t, -5.0, distanceToOrigin(a))
}

func TestWorldUpdateAdvancesPhysicsEveryTick(t *testing.T) {
	opts := testOptions()
	w := NewWorld(opts)
	require.Len(t, w.Actors, opts.PopulationSize)

	// Generation-zero genomes from genetics.Random only link neuron ids
	// below NumSensors, so their outputs (and jerk) are zero; a push
	// gives the actor motion for the physics step to integrate.
	w.Actors[0].Push([2]float64{1, 1})
	before := w.Actors[0].Position
	w.Update()
	assert.NotEqual(t, before, w.Actors[0].Position)
}

func TestWorldUpdateTransitionsGenerationAtCountdownZero(t *testing.T) {
	opts := testOptions()
	opts.PopulationSize = 6
	opts.SecondsPerGeneration = opts.SecondsPerTick() // TicksPerGeneration == 1
	w := NewWorld(opts)

	oldActors := w.Actors
	w.Update()

	require.Len(t, w.Actors, len(oldActors))
	// Every new actor starts at the spawn point at rest and then takes
	// exactly one physics step, so its position is spawn + velocity*dt.
	dt := opts.SecondsPerTick()
	for _, actor := range w.Actors {
		assert.Equal(t, [2]float64{spawnX + actor.Velocity[0]*dt, spawnY + actor.Velocity[1]*dt}, actor.Position)
	}
}

func testOptions() *neat.Options {
	opts := neat.DefaultOptions()
	opts.PopulationSize = 10
	return opts
}
