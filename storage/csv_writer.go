package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"restaurant-mapper/models"
)

// CSVWriter writes one row per restaurant, for the map renderer to pick up.
type CSVWriter struct {
	runID  string
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path, runID string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	// Write header
	if err := w.Write([]string{
		"run_id", "place_id", "name", "cuisine", "types", "rating", "rating_band",
		"lat", "lng", "address", "url", "operational", "open_now", "status",
	}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{runID: runID, file: f, writer: w}, nil
}

// WriteRestaurants appends one row per restaurant. bandOf supplies the rating band column.
func (c *CSVWriter) WriteRestaurants(restaurants []*models.Restaurant, bandOf func(*models.Restaurant) string) error {
	for _, r := range restaurants {
		row := []string{
			c.runID,
			r.PlaceID,
			r.Name,
			r.Cuisine,
			strings.Join(r.Types, "|"),
			strconv.FormatFloat(r.Rating, 'f', -1, 64),
			bandOf(r),
			strconv.FormatFloat(r.Location.Lat, 'f', -1, 64),
			strconv.FormatFloat(r.Location.Lng, 'f', -1, 64),
			r.Address,
			r.URL,
			strconv.FormatBool(r.Operational),
			strconv.FormatBool(r.Hours.OpenNow),
			r.CurrentStatus,
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
