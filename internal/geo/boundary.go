package geo

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Boundary is a campus boundary polygon loaded from a GeoJSON file.
// Only the outer ring of the first polygon feature is used; holes and
// additional features are ignored.
type Boundary struct {
	// Ring is the outer ring as ordered (lon, lat) points. The ring is
	// treated as implicitly closed: the last point connects to the first.
	Ring orb.Ring

	// Source is the path the boundary was loaded from.
	Source string
}

// LoadBoundary reads a GeoJSON FeatureCollection (or single Feature) and
// extracts the first polygon feature's outer ring. It returns an error
// when the file is missing, is not valid GeoJSON, or holds no usable
// polygon; the caller is expected to abort before any network call.
func LoadBoundary(path string) (*Boundary, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided boundary path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read boundary file: %w", err)
	}

	ring, err := parseOuterRing(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse boundary file %s: %w", path, err)
	}

	return &Boundary{Ring: ring, Source: path}, nil
}

// parseOuterRing extracts the first feature's outer ring from GeoJSON
// bytes. A bare Feature document is accepted as well as a collection.
func parseOuterRing(data []byte) (orb.Ring, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	var geom orb.Geometry
	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		if len(fc.Features) == 0 {
			return nil, ErrNoFeatures
		}
		geom = fc.Features[0].Geometry
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		geom = f.Geometry
	default:
		return nil, fmt.Errorf("%w: document type %q", ErrNotPolygon, probe.Type)
	}

	var poly orb.Polygon
	switch g := geom.(type) {
	case orb.Polygon:
		poly = g
	case orb.MultiPolygon:
		if len(g) == 0 {
			return nil, ErrNotPolygon
		}
		poly = g[0]
	default:
		return nil, fmt.Errorf("%w: got %s", ErrNotPolygon, geom.GeoJSONType())
	}

	if len(poly) == 0 || len(poly[0]) < 3 {
		return nil, ErrTooFewVertices
	}

	return poly[0], nil
}

// PaddedBound returns the ring's axis-aligned bounding box expanded by
// padding degrees on every side. The padding keeps boundary-adjacent
// elements from being clipped out of the Overpass query.
func PaddedBound(ring orb.Ring, padding float64) orb.Bound {
	b := ring.Bound()
	return orb.Bound{
		Min: orb.Point{b.Min[0] - padding, b.Min[1] - padding},
		Max: orb.Point{b.Max[0] + padding, b.Max[1] + padding},
	}
}
