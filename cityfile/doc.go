// Package cityfile is the I/O glue around the solver core: loading city
// coordinates from JSON, exporting solved tours back to JSON, and
// reading solver configuration from YAML.
//
// City file format:
//
//	{"cities": [{"name": "Moscow", "x": 37.62, "y": 55.75}, …]}
//
// Config files are YAML with the option names of the solver contract
// (algorithm, population_size, generations, mutation_prob,
// tournament_size, elitism, bnb_time_limit in seconds, metric, start,
// seed). Unknown keys are rejected rather than ignored, so typos fail
// loudly. Values not present keep their defaults.
//
// The core never sees any of this: it consumes in-memory points and a
// typed Config, exactly as the tsp package declares them.
package cityfile
