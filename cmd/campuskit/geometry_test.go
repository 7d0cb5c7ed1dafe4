package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/utm-transit/campuskit/internal/model"
	"github.com/utm-transit/campuskit/internal/schedule"
)

func writeGeometryFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "route_geometries.json")
	geoms := map[string]*model.RouteGeometry{
		"Route E(N24) : To K9/10": {
			Type:        "LineString",
			Coordinates: [][]float64{{103.63, 1.55}, {103.64, 1.56}},
		},
	}
	if err := schedule.SaveGeometries(path, geoms); err != nil {
		t.Fatalf("failed to write geometries: %v", err)
	}
	return path
}

func TestGeometryReverseCommand(t *testing.T) {
	t.Parallel()

	t.Run("reverses and rewrites the file", func(t *testing.T) {
		t.Parallel()

		path := writeGeometryFile(t)
		out, err := runCommand(t, "geometry", "reverse",
			"--file", path, "--route", "Route E(N24) : To K9/10")
		if err != nil {
			t.Fatalf("Execute() error = %v, want nil", err)
		}
		if !strings.Contains(out, "Reversed coordinates") {
			t.Errorf("output %q does not confirm the reversal", out)
		}

		geoms, err := schedule.LoadGeometries(path)
		if err != nil {
			t.Fatalf("failed to reload geometries: %v", err)
		}
		coords := geoms["Route E(N24) : To K9/10"].Coordinates
		if coords[0][0] != 103.64 {
			t.Errorf("first longitude = %v, want reversed order", coords[0][0])
		}
	})

	t.Run("unknown route errors with available keys", func(t *testing.T) {
		t.Parallel()

		path := writeGeometryFile(t)
		_, err := runCommand(t, "geometry", "reverse", "--file", path, "--route", "Route Z")
		if err == nil {
			t.Fatal("Execute() error = nil, want error for unknown route")
		}
		if !strings.Contains(err.Error(), "Route E(N24) : To K9/10") {
			t.Errorf("error %q does not list the available route", err)
		}
	})

	t.Run("route flag is required", func(t *testing.T) {
		t.Parallel()

		if _, err := runCommand(t, "geometry", "reverse", "--file", writeGeometryFile(t)); err == nil {
			t.Error("Execute() error = nil, want error for missing --route")
		}
	})
}

// Config discovery reads the working directory, so this test uses
// t.Chdir and cannot run in parallel.
func TestGeometryConfigFileOverride(t *testing.T) {
	path := writeGeometryFile(t)

	cwd := t.TempDir()
	content := "geometries: \"" + path + "\"\n"
	if err := os.WriteFile(filepath.Join(cwd, ".campuskit"), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Chdir(cwd)

	if _, err := runCommand(t, "geometry", "reverse", "--route", "Route E(N24) : To K9/10"); err != nil {
		t.Fatalf("Execute() error = %v, want the configured dataset to be used", err)
	}

	geoms, err := schedule.LoadGeometries(path)
	if err != nil {
		t.Fatalf("failed to reload geometries: %v", err)
	}
	if coords := geoms["Route E(N24) : To K9/10"].Coordinates; coords[0][0] != 103.64 {
		t.Errorf("first longitude = %v, want the configured file reversed", coords[0][0])
	}
}
