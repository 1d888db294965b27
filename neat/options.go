package neat

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Options holds every tunable constant of the simulation: tick rate,
// generation length, mutation rates, and speciation coefficients. All
// probabilities are expected in [0,1]; Validate checks this.
//
// Field names mirror the constants named in the specification so a
// loaded config file reads the same as the code that consumes it.
type Options struct {
	// Ticks is the number of physics ticks per simulated second.
	Ticks int `yaml:"ticks"`
	// SecondsPerGeneration is how many simulated seconds elapse before
	// the evolver replaces the actor population.
	SecondsPerGeneration float64 `yaml:"seconds_per_generation"`

	// PopulationSize is the number of actors (and genomes) the world
	// maintains across generations.
	PopulationSize int `yaml:"population_size"`

	// CrossoverRate is the probability that breed produces a crossed
	// child instead of a clone of the receiving parent; either way the
	// child is then mutated.
	CrossoverRate float64 `yaml:"crossover_rate"`
	// WeightMutationRate is the probability mutate perturbs a gene's weight.
	WeightMutationRate float64 `yaml:"weight_mutation_rate"`
	// WeightStep bounds the proportional weight perturbation.
	WeightStep float64 `yaml:"weight_step"`
	// LinkMutationRate is the probability mutate adds a new connection.
	LinkMutationRate float64 `yaml:"link_mutation_rate"`
	// NodeMutationRate is the probability mutate splits an existing connection.
	NodeMutationRate float64 `yaml:"node_mutation_rate"`
	// DisableRate is the probability a crossed gene inherited as disabled
	// in either parent is disabled in the child.
	DisableRate float64 `yaml:"disable_rate"`

	// ExcessCoeff, DisjointCoeff and WeightDiffCoeff weight the three
	// terms of genetic distance.
	ExcessCoeff     float64 `yaml:"excess_coeff"`
	DisjointCoeff   float64 `yaml:"disjoint_coeff"`
	WeightDiffCoeff float64 `yaml:"weight_diff_coeff"`
	// CompatibilityThreshold is the distance below which two genomes
	// are considered members of the same species.
	CompatibilityThreshold float64 `yaml:"compatibility_threshold"`

	// CullPercentage is the fraction of a species' members kept (from
	// the top of the fitness ranking) every generation; the rest are removed.
	CullPercentage float64 `yaml:"cull_percentage"`

	// LogLevel configures the package-level logger; see InitLogger.
	LogLevel string `yaml:"log_level"`
}

// DefaultOptions returns the constants named in the specification:
// TICKS=25, SPG=10, the NEAT-standard mutation rates, and unit
// speciation coefficients.
func DefaultOptions() *Options {
	return &Options{
		Ticks:                  25,
		SecondsPerGeneration:   10,
		PopulationSize:         100,
		CrossoverRate:          0.75,
		WeightMutationRate:     0.05,
		WeightStep:             0.05,
		LinkMutationRate:       0.05,
		NodeMutationRate:       0.05,
		DisableRate:            0.8,
		ExcessCoeff:            1.0,
		DisjointCoeff:          1.0,
		WeightDiffCoeff:        1.0,
		CompatibilityThreshold: 1.0,
		CullPercentage:         0.5,
		LogLevel:               "info",
	}
}

// TicksPerGeneration returns TPG = SPG * TICKS, rounded to the nearest tick.
func (o *Options) TicksPerGeneration() int {
	return int(o.SecondsPerGeneration*float64(o.Ticks) + 0.5)
}

// SecondsPerTick returns SPT = 1/TICKS.
func (o *Options) SecondsPerTick() float64 {
	return 1.0 / float64(o.Ticks)
}

// Validate range-checks every probability into [0,1] and requires
// ticks, seconds_per_generation and population_size to be positive,
// returning an error naming the first violating field it finds. The
// weight step, speciation coefficients and compatibility threshold are
// not checked.
func (o *Options) Validate() error {
	probs := map[string]float64{
		"crossover_rate":       o.CrossoverRate,
		"weight_mutation_rate": o.WeightMutationRate,
		"link_mutation_rate":   o.LinkMutationRate,
		"node_mutation_rate":   o.NodeMutationRate,
		"disable_rate":         o.DisableRate,
		"cull_percentage":      o.CullPercentage,
	}
	for name, v := range probs {
		if v < 0 || v > 1 {
			return errors.Errorf("option %s must be within [0,1], got %v", name, v)
		}
	}
	if o.Ticks <= 0 {
		return errors.Errorf("option ticks must be positive, got %d", o.Ticks)
	}
	if o.SecondsPerGeneration <= 0 {
		return errors.Errorf("option seconds_per_generation must be positive, got %v", o.SecondsPerGeneration)
	}
	if o.PopulationSize <= 0 {
		return errors.Errorf("option population_size must be positive, got %d", o.PopulationSize)
	}
	return nil
}

// LoadYAMLOptions loads Options encoded as YAML, initializes the
// package logger from the decoded LogLevel, and validates the result.
func LoadYAMLOptions(r io.Reader) (*Options, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read options")
	}
	opts := DefaultOptions()
	if err := yaml.Unmarshal(content, opts); err != nil {
		return nil, errors.Wrap(err, "failed to decode options from YAML")
	}
	if err := InitLogger(opts.LogLevel); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	return opts, nil
}

// LoadOptionsText loads Options from the simple "key value" plain-text
// format the original codebase used for its .neat config files. Values
// are coerced with github.com/spf13/cast so either "0.05" or "5e-2" style
// text works, matching the loose parsing of the teacher's equivalent reader.
func LoadOptionsText(r io.Reader) (*Options, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read options")
	}
	o := DefaultOptions()
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("malformed option line: %q", line)
		}
		name, value := fields[0], fields[1]
		switch name {
		case "ticks":
			o.Ticks = cast.ToInt(value)
		case "seconds_per_generation":
			o.SecondsPerGeneration = cast.ToFloat64(value)
		case "population_size":
			o.PopulationSize = cast.ToInt(value)
		case "crossover_rate":
			o.CrossoverRate = cast.ToFloat64(value)
		case "weight_mutation_rate":
			o.WeightMutationRate = cast.ToFloat64(value)
		case "weight_step":
			o.WeightStep = cast.ToFloat64(value)
		case "link_mutation_rate":
			o.LinkMutationRate = cast.ToFloat64(value)
		case "node_mutation_rate":
			o.NodeMutationRate = cast.ToFloat64(value)
		case "disable_rate":
			o.DisableRate = cast.ToFloat64(value)
		case "excess_coeff":
			o.ExcessCoeff = cast.ToFloat64(value)
		case "disjoint_coeff":
			o.DisjointCoeff = cast.ToFloat64(value)
		case "weight_diff_coeff":
			o.WeightDiffCoeff = cast.ToFloat64(value)
		case "compatibility_threshold":
			o.CompatibilityThreshold = cast.ToFloat64(value)
		case "cull_percentage":
			o.CullPercentage = cast.ToFloat64(value)
		case "log_level":
			o.LogLevel = value
		default:
			return nil, errors.Errorf("unknown option parameter: %s", name)
		}
	}
	if err := InitLogger(o.LogLevel); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	if err := o.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	return o, nil
}

// String renders the options for debug logging.
func (o *Options) String() string {
	return fmt.Sprintf("Options{ticks=%d spg=%.1f pop=%d crossover=%.2f weight=%.2f link=%.2f node=%.2f}",
		o.Ticks, o.SecondsPerGeneration, o.PopulationSize, o.CrossoverRate,
		o.WeightMutationRate, o.LinkMutationRate, o.NodeMutationRate)
}
