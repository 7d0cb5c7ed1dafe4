package schedule

import "errors"

var (
	// ErrRouteNotFound is returned when a named route geometry does not
	// exist in the geometry file.
	ErrRouteNotFound = errors.New("route geometry not found")
)
