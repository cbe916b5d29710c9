package cityfile

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"tsptour/tsp"
)

// fileConfig mirrors the YAML option names of the solver contract.
// bnb_time_limit is given in (possibly fractional) seconds.
type fileConfig struct {
	Algorithm      string  `mapstructure:"algorithm"`
	Metric         string  `mapstructure:"metric"`
	Start          int     `mapstructure:"start"`
	PopulationSize int     `mapstructure:"population_size"`
	Generations    int     `mapstructure:"generations"`
	MutationProb   float64 `mapstructure:"mutation_prob"`
	TournamentSize int     `mapstructure:"tournament_size"`
	Elitism        bool    `mapstructure:"elitism"`
	Seed           int64   `mapstructure:"seed"`
	BnbTimeLimit   float64 `mapstructure:"bnb_time_limit"`
}

// LoadConfig reads a YAML config file over tsp.DefaultConfig: keys
// present in the file override the defaults, absent keys keep them, and
// unknown keys are an error (never silently dropped). Range validation
// stays with the core — this loader only shapes the values.
func LoadConfig(path string) (tsp.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return tsp.Config{}, fmt.Errorf("cityfile: read %s: %w", path, err)
	}

	var fields map[string]interface{}
	if err = yaml.Unmarshal(raw, &fields); err != nil {
		return tsp.Config{}, fmt.Errorf("cityfile: parse %s: %w", path, err)
	}

	// Prefill from defaults; Decode only touches keys present in the map.
	defaults := tsp.DefaultConfig()
	fc := fileConfig{
		Algorithm:      string(defaults.Algorithm),
		Metric:         string(defaults.Metric),
		Start:          defaults.Start,
		PopulationSize: defaults.PopulationSize,
		Generations:    defaults.Generations,
		MutationProb:   defaults.MutationProb,
		TournamentSize: defaults.TournamentSize,
		Elitism:        defaults.Elitism,
		Seed:           defaults.Seed,
		BnbTimeLimit:   defaults.TimeLimit.Seconds(),
	}

	decoderConfig := mapstructure.DecoderConfig{ErrorUnused: true, Result: &fc}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return tsp.Config{}, fmt.Errorf("cityfile: config decoder: %w", err)
	}
	if err = decoder.Decode(fields); err != nil {
		return tsp.Config{}, fmt.Errorf("cityfile: config %s: %w", path, err)
	}

	return tsp.Config{
		Algorithm:      tsp.Algorithm(fc.Algorithm),
		Metric:         tsp.MetricName(fc.Metric),
		Start:          fc.Start,
		TimeLimit:      time.Duration(fc.BnbTimeLimit * float64(time.Second)),
		PopulationSize: fc.PopulationSize,
		Generations:    fc.Generations,
		MutationProb:   fc.MutationProb,
		TournamentSize: fc.TournamentSize,
		Elitism:        fc.Elitism,
		Seed:           fc.Seed,
	}, nil
}
