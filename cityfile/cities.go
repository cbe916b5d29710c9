package cityfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"tsptour/distmat"
	"tsptour/tsp"
)

// ErrNoCities is returned by Load when the file contains an empty set.
var ErrNoCities = errors.New("cityfile: no cities in file")

// ErrDuplicateName is returned by Load when two cities share a name.
var ErrDuplicateName = errors.New("cityfile: duplicate city name")

// cityRecord mirrors one entry of the cities JSON file.
type cityRecord struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// cityDocument mirrors the whole cities JSON file.
type cityDocument struct {
	Cities []cityRecord `json:"cities"`
}

// Load reads a cities JSON file into a point slice, preserving file
// order. Names must be unique and non-empty; the set must be non-empty.
func Load(path string) ([]distmat.Point, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cityfile: read %s: %w", path, err)
	}

	var doc cityDocument
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("cityfile: parse %s: %w", path, err)
	}
	if len(doc.Cities) == 0 {
		return nil, ErrNoCities
	}

	var (
		points = make([]distmat.Point, len(doc.Cities))
		seen   = make(map[string]struct{}, len(doc.Cities))
		i      int
		c      cityRecord
	)
	for i, c = range doc.Cities {
		if c.Name == "" {
			return nil, fmt.Errorf("cityfile: city #%d has no name", i)
		}
		if _, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, c.Name)
		}
		seen[c.Name] = struct{}{}
		points[i] = distmat.Point{Name: c.Name, X: c.X, Y: c.Y}
	}

	return points, nil
}

// solutionDocument is the exported solution layout.
type solutionDocument struct {
	RunID          string       `json:"run_id,omitempty"`
	TotalDistance  float64      `json:"total_distance"`
	ElapsedSeconds float64      `json:"elapsed_seconds"`
	Route          []cityRecord `json:"route"`
}

// SaveSolution writes a solved tour to a JSON file. runID may be empty.
func SaveSolution(path string, res tsp.Result, runID string) error {
	doc := solutionDocument{
		RunID:          runID,
		TotalDistance:  res.TotalDistance,
		ElapsedSeconds: res.Elapsed.Seconds(),
		Route:          make([]cityRecord, len(res.Tour)),
	}
	var (
		i int
		p distmat.Point
	)
	for i, p = range res.Tour {
		doc.Route[i] = cityRecord{Name: p.Name, X: p.X, Y: p.Y}
	}

	raw, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("cityfile: encode solution: %w", err)
	}
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("cityfile: write %s: %w", path, err)
	}

	return nil
}
