package schedule

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/utm-transit/campuskit/internal/model"
)

func TestReverseGeometry(t *testing.T) {
	t.Parallel()

	t.Run("reverses coordinate order in place", func(t *testing.T) {
		t.Parallel()

		geoms := map[string]*model.RouteGeometry{
			"Route E(N24) : To K9/10": {
				Type:        "LineString",
				Coordinates: [][]float64{{103.63, 1.55}, {103.64, 1.56}, {103.65, 1.57}},
			},
		}

		if err := ReverseGeometry(geoms, "Route E(N24) : To K9/10"); err != nil {
			t.Fatalf("ReverseGeometry() error = %v, want nil", err)
		}

		got := geoms["Route E(N24) : To K9/10"].Coordinates
		want := [][]float64{{103.65, 1.57}, {103.64, 1.56}, {103.63, 1.55}}
		if !slices.EqualFunc(got, want, slices.Equal) {
			t.Errorf("coordinates = %v, want %v", got, want)
		}

		// Reversing twice restores the drawing order.
		if err := ReverseGeometry(geoms, "Route E(N24) : To K9/10"); err != nil {
			t.Fatalf("ReverseGeometry() error = %v, want nil", err)
		}
		if got := geoms["Route E(N24) : To K9/10"].Coordinates[0][0]; got != 103.63 {
			t.Errorf("first longitude after double reverse = %v, want 103.63", got)
		}
	})

	t.Run("unknown route lists available keys", func(t *testing.T) {
		t.Parallel()

		geoms := map[string]*model.RouteGeometry{
			"Route A": {Type: "LineString"},
			"Route B": {Type: "LineString"},
		}

		err := ReverseGeometry(geoms, "Route Z")
		if !errors.Is(err, ErrRouteNotFound) {
			t.Fatalf("ReverseGeometry() error = %v, want ErrRouteNotFound", err)
		}
		for _, key := range []string{"Route A", "Route B"} {
			if !strings.Contains(err.Error(), key) {
				t.Errorf("error %q does not list available key %q", err, key)
			}
		}
	})
}

func TestGeometryKeys(t *testing.T) {
	t.Parallel()

	geoms := map[string]*model.RouteGeometry{
		"Route C": {},
		"Route A": {},
		"Route B": {},
	}

	want := []string{"Route A", "Route B", "Route C"}
	if got := GeometryKeys(geoms); !slices.Equal(got, want) {
		t.Errorf("GeometryKeys() = %v, want %v", got, want)
	}
}
