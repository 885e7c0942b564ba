package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"restaurant-mapper/models"
)

// YAMLWriter writes a snapshot of the type and rating-band indexes.
type YAMLWriter struct {
	path  string
	runID string
	bands []string
	now   func() time.Time
}

type indexEntry struct {
	PlaceID string  `yaml:"place_id"`
	Name    string  `yaml:"name"`
	Rating  float64 `yaml:"rating"`
	Lat     float64 `yaml:"lat"`
	Lng     float64 `yaml:"lng"`
}

type bucket struct {
	Key         string       `yaml:"key"`
	Restaurants []indexEntry `yaml:"restaurants"`
}

type indexSnapshot struct {
	RunID       string    `yaml:"run_id"`
	GeneratedAt time.Time `yaml:"generated_at"`
	ByType      []bucket  `yaml:"by_type"`
	ByRating    []bucket  `yaml:"by_rating"`
}

// NewYAMLWriter returns a writer for path. Rating buckets are emitted in
// bandOrder; any other band keys follow alphabetically.
func NewYAMLWriter(path, runID string, bandOrder []string) *YAMLWriter {
	return &YAMLWriter{path: path, runID: runID, bands: bandOrder, now: time.Now}
}

// WriteIndexes replaces the file at the writer's path with a snapshot of ix.
func (y *YAMLWriter) WriteIndexes(ix *models.Indexes) error {
	snap := indexSnapshot{
		RunID:       y.runID,
		GeneratedAt: y.now().UTC(),
		ByType:      buckets(ix.ByType, sortedKeys(ix.ByType)),
		ByRating:    buckets(ix.ByRating, orderedKeys(ix.ByRating, y.bands)),
	}

	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("yaml: marshal indexes: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(y.path), 0755); err != nil {
		return fmt.Errorf("yaml: create output dir: %w", err)
	}
	if err := os.WriteFile(y.path, data, 0644); err != nil {
		return fmt.Errorf("yaml: write %q: %w", y.path, err)
	}
	return nil
}

func buckets(m map[string][]*models.Restaurant, keys []string) []bucket {
	out := make([]bucket, 0, len(keys))
	for _, k := range keys {
		b := bucket{Key: k, Restaurants: make([]indexEntry, 0, len(m[k]))}
		for _, r := range m[k] {
			b.Restaurants = append(b.Restaurants, indexEntry{
				PlaceID: r.PlaceID,
				Name:    r.Name,
				Rating:  r.Rating,
				Lat:     r.Location.Lat,
				Lng:     r.Location.Lng,
			})
		}
		out = append(out, b)
	}
	return out
}

func sortedKeys(m map[string][]*models.Restaurant) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func orderedKeys(m map[string][]*models.Restaurant, order []string) []string {
	keys := make([]string, 0, len(m))
	seen := make(map[string]struct{}, len(order))
	for _, k := range order {
		seen[k] = struct{}{}
		if _, ok := m[k]; ok {
			keys = append(keys, k)
		}
	}
	var rest []string
	for k := range m {
		if _, ok := seen[k]; !ok {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
