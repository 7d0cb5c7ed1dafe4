package geo

import "errors"

// Boundary loading errors. These are wrapped with file context by
// LoadBoundary; use errors.Is to test for them.
var (
	// ErrNoFeatures is returned when the GeoJSON file contains no features.
	ErrNoFeatures = errors.New("boundary file contains no features")

	// ErrNotPolygon is returned when the first feature's geometry is not
	// a Polygon or MultiPolygon.
	ErrNotPolygon = errors.New("boundary feature is not a polygon")

	// ErrTooFewVertices is returned when the outer ring has fewer than
	// three vertices and therefore encloses no area.
	ErrTooFewVertices = errors.New("boundary ring has fewer than 3 vertices")
)
