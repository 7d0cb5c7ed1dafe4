package schedule

import (
	"fmt"
	"slices"

	"github.com/utm-transit/campuskit/internal/model"
)

// ReverseGeometry reverses the coordinate order of the named route
// geometry in place. Unknown route keys return ErrRouteNotFound wrapped
// with the sorted list of available keys so the caller can show what
// the file actually holds.
func ReverseGeometry(geoms map[string]*model.RouteGeometry, route string) error {
	geom, ok := geoms[route]
	if !ok {
		return fmt.Errorf("%w: %q (available: %v)", ErrRouteNotFound, route, GeometryKeys(geoms))
	}

	slices.Reverse(geom.Coordinates)
	return nil
}

// GeometryKeys returns the route labels in the geometry map, sorted.
func GeometryKeys(geoms map[string]*model.RouteGeometry) []string {
	keys := make([]string, 0, len(geoms))
	for k := range geoms {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
