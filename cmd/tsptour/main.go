// Command tsptour solves a Travelling Salesman instance from a cities
// JSON file using either the exact Branch-and-Bound search or the
// Genetic Algorithm, prints the resulting route, and optionally exports
// the solution as JSON.
//
// Usage:
//
//	tsptour -input cities.json -algorithm branch_and_bound -bnb-time-limit 30
//	tsptour -input cities.json -algorithm genetic -population-size 200 -seed 42
//	tsptour -input cities.json -config solver.yaml -output solution.json
//
// Flags override values from the optional -config YAML file; both
// override the built-in defaults.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/google/uuid"

	"tsptour/cityfile"
	"tsptour/tsp"
)

func main() {
	defaults := tsp.DefaultConfig()

	var (
		input      = flag.String("input", "", "path to cities JSON file (required)")
		configPath = flag.String("config", "", "path to YAML solver config")
		output     = flag.String("output", "", "path to save the solution JSON")

		algorithm  = flag.String("algorithm", string(defaults.Algorithm), "branch_and_bound or genetic")
		metric     = flag.String("metric", string(defaults.Metric), "euclidean or haversine")
		start      = flag.Int("start", defaults.Start, "starting point index")
		popSize    = flag.Int("population-size", defaults.PopulationSize, "genetic population size")
		gens       = flag.Int("generations", defaults.Generations, "genetic generation count")
		mutProb    = flag.Float64("mutation-prob", defaults.MutationProb, "mutation probability in [0,1]")
		tournament = flag.Int("tournament-size", defaults.TournamentSize, "tournament selection size")
		noElitism  = flag.Bool("no-elitism", false, "disable elitism")
		seed       = flag.Int64("seed", 0, "random seed (0 = fixed default stream)")
		timeLimit  = flag.Float64("bnb-time-limit", defaults.TimeLimit.Seconds(), "branch-and-bound budget, seconds")
	)
	flag.Parse()

	var logger log.Logger
	{
		logger = log.NewLogfmtLogger(os.Stderr)
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	}
	runID := uuid.NewString()
	logger = log.With(logger, "run_id", runID)

	if *input == "" {
		logger.Log("err", "missing required -input flag")
		flag.Usage()
		os.Exit(2)
	}

	cfg := defaults
	if *configPath != "" {
		fileCfg, err := cityfile.LoadConfig(*configPath)
		if err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
		cfg = fileCfg
		logger.Log("msg", "config loaded", "path", *configPath)
	}

	// Flags the user actually set override the file config.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["algorithm"] {
		cfg.Algorithm = tsp.Algorithm(*algorithm)
	}
	if set["metric"] {
		cfg.Metric = tsp.MetricName(*metric)
	}
	if set["start"] {
		cfg.Start = *start
	}
	if set["population-size"] {
		cfg.PopulationSize = *popSize
	}
	if set["generations"] {
		cfg.Generations = *gens
	}
	if set["mutation-prob"] {
		cfg.MutationProb = *mutProb
	}
	if set["tournament-size"] {
		cfg.TournamentSize = *tournament
	}
	if set["no-elitism"] {
		cfg.Elitism = !*noElitism
	}
	if set["seed"] {
		cfg.Seed = *seed
	}
	if set["bnb-time-limit"] {
		cfg.TimeLimit = time.Duration(*timeLimit * float64(time.Second))
	}

	points, err := cityfile.Load(*input)
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	logger.Log("msg", "cities loaded", "path", *input, "count", len(points))

	res, err := tsp.Solve(points, cfg)
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}

	switch cfg.Algorithm {
	case tsp.BranchAndBound:
		logger.Log(
			"algorithm", cfg.Algorithm,
			"total_distance", res.TotalDistance,
			"elapsed", res.Elapsed,
			"proven_optimal", res.Meta.ProvenOptimal,
			"nodes_explored", res.Meta.NodesExplored,
		)
	case tsp.Genetic:
		logger.Log(
			"algorithm", cfg.Algorithm,
			"total_distance", res.TotalDistance,
			"elapsed", res.Elapsed,
			"best_generation", res.Meta.BestGeneration,
			"final_mean", res.Meta.FinalMean,
			"final_stddev", res.Meta.FinalStdDev,
		)
	}

	fmt.Println("Route order:")
	for i, p := range res.Tour {
		fmt.Printf("%d. %s\n", i+1, p.Name)
	}

	if *output != "" {
		if err := cityfile.SaveSolution(*output, res, runID); err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
		logger.Log("msg", "solution saved", "path", *output)
	}
}
