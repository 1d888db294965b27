// Command rise runs the NEAT tick loop headlessly: no viewer, no event
// loop, just generations of actors chasing the origin, with the start
// and end of the run reported via the logger and the recorded history
// archived as an NPZ snapshot once the run finishes.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/nijotz/rise"
	"github.com/nijotz/rise/neat"
	"github.com/nijotz/rise/neat/genetics"
	"github.com/nijotz/rise/telemetry"
)

func main() {
	var configPath = flag.String("config", "", "Path to a YAML options file. If omitted, defaults are used.")
	var ticksTotal = flag.Int("ticks", 25*10*50, "Total number of physics ticks to run.")
	var outPath = flag.String("out", "./out/rise.npz", "Path to write the NPZ telemetry snapshot to.")
	var logLevel = flag.String("log-level", "", "Overrides the log level set in the options file.")

	flag.Parse()

	opts, err := loadOptions(*configPath)
	if err != nil {
		log.Fatal("failed to load options: ", err)
	}
	if *logLevel != "" {
		if err := neat.InitLogger(*logLevel); err != nil {
			log.Fatal("failed to initialize logger: ", err)
		}
	}

	ctx := neat.NewContext(context.Background(), opts)
	logOptions(ctx)

	world := rise.NewWorld(opts)
	recorder := telemetry.NewRecorder()
	world.OnGeneration = recorder.Record

	neat.InfoLog("starting tick loop")
	for tick := 0; tick < *ticksTotal; tick++ {
		world.Update()
	}
	neat.InfoLog("tick loop finished")

	if err := writeSnapshot(*outPath, world, recorder); err != nil {
		log.Fatal("failed to write telemetry snapshot: ", err)
	}
}

// loadOptions loads Options from path, or returns defaults when path is
// empty — a headless run shouldn't require a config file to exist.
func loadOptions(path string) (*neat.Options, error) {
	if path == "" {
		opts := neat.DefaultOptions()
		if err := neat.InitLogger(opts.LogLevel); err != nil {
			return nil, err
		}
		return opts, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return neat.LoadYAMLOptions(f)
}

func writeSnapshot(path string, world *rise.World, recorder *telemetry.Recorder) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	snapshot := telemetry.NewSnapshot(recorder, bestOf(world))
	return snapshot.WriteNPZ(f)
}

// logOptions pulls the active Options back out of ctx and logs them at
// debug level, the way a larger driver would thread config through a
// deeper call chain that doesn't want every function to take an
// explicit *neat.Options parameter.
func logOptions(ctx context.Context) {
	opts, ok := neat.FromContext(ctx)
	if !ok {
		return
	}
	neat.DebugLog(opts.String())
}

// bestOf returns the current highest-fitness actor's genome, or nil if
// the world has no actors left. The pick compares each genome's stored
// Fitness, not a live re-evaluation: after a generation transition the
// actors hold unscored offspring, whose Fitness is 0 for a crossed
// child and the parent's value for a cloned one.
func bestOf(world *rise.World) *genetics.Genome {
	var best *genetics.Genome
	for _, actor := range world.Actors {
		g := actor.Genome()
		if best == nil || g.Fitness > best.Fitness {
			best = g
		}
	}
	return best
}
