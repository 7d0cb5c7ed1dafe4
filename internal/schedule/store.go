package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/utm-transit/campuskit/internal/model"
)

// jsonIndent matches the dataset's on-disk layout.
const jsonIndent = "    "

// Load reads and decodes schedule.json from the given path.
func Load(path string) (*model.Schedule, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided dataset path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}

	var sched model.Schedule
	if err := json.Unmarshal(data, &sched); err != nil {
		return nil, fmt.Errorf("failed to parse schedule file %s: %w", path, err)
	}

	return &sched, nil
}

// Save writes the schedule back to the given path in the dataset's
// 4-space-indented layout, with non-ASCII text preserved as-is.
func Save(path string, sched *model.Schedule) error {
	if err := writeJSON(path, sched); err != nil {
		return fmt.Errorf("failed to write schedule file: %w", err)
	}
	return nil
}

// LoadGeometries reads route_geometries.json, a map from route label to
// polyline geometry.
func LoadGeometries(path string) (map[string]*model.RouteGeometry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided dataset path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read geometry file: %w", err)
	}

	var geoms map[string]*model.RouteGeometry
	if err := json.Unmarshal(data, &geoms); err != nil {
		return nil, fmt.Errorf("failed to parse geometry file %s: %w", path, err)
	}

	return geoms, nil
}

// SaveGeometries writes the geometry map back to the given path. Keys
// are emitted in sorted order.
func SaveGeometries(path string, geoms map[string]*model.RouteGeometry) error {
	if err := writeJSON(path, geoms); err != nil {
		return fmt.Errorf("failed to write geometry file: %w", err)
	}
	return nil
}

// writeJSON encodes v with the dataset layout and replaces the file at
// path. The document is encoded fully in memory first so a marshal
// error cannot truncate the existing file.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0600)
}
