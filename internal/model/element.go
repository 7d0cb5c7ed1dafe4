package model

import "github.com/paulmach/orb"

// Element kind values as reported by the Overpass API.
const (
	ElementNode     = "node"
	ElementWay      = "way"
	ElementRelation = "relation"
)

// Center holds the precomputed centroid of a way or relation.
// Overpass fills this in when the query requests "out center".
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Element represents one raw geographic object returned by the Overpass API.
// Nodes carry their coordinate directly; ways and relations carry a centroid
// in Center. Coordinates use pointers so that an element with no resolvable
// position can be told apart from one at latitude/longitude zero.
type Element struct {
	// Type is the element kind: "node", "way" or "relation".
	Type string `json:"type"`

	// ID is the numeric OSM identifier. IDs are only unique per kind,
	// so downstream identifiers combine Type and ID.
	ID int64 `json:"id"`

	// Lat and Lon are set for nodes only.
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`

	// Center is set for ways and relations when the query requests
	// centroid resolution.
	Center *Center `json:"center,omitempty"`

	// Tags holds the element's free-form key/value metadata.
	Tags Tags `json:"tags,omitempty"`
}

// Coordinate resolves the element's position as an (lon, lat) point.
// The second return value is false when the element has no direct
// coordinate and no precomputed center; such elements are skipped by
// the geometric filter.
func (e Element) Coordinate() (orb.Point, bool) {
	if e.Lat != nil && e.Lon != nil {
		return orb.Point{*e.Lon, *e.Lat}, true
	}
	if e.Center != nil {
		return orb.Point{e.Center.Lon, e.Center.Lat}, true
	}
	return orb.Point{}, false
}

// Tags is the free-form key/value metadata attached to an element.
//
// Lookups go through Value/Is/In so that an absent tag never matches a
// rule the way an empty string would.
type Tags map[string]string

// Value returns the tag value and whether the tag is present.
func (t Tags) Value(key string) (string, bool) {
	v, ok := t[key]
	return v, ok
}

// Has reports whether the tag is present, regardless of its value.
func (t Tags) Has(key string) bool {
	_, ok := t[key]
	return ok
}

// Is reports whether the tag is present and equals value.
func (t Tags) Is(key, value string) bool {
	v, ok := t[key]
	return ok && v == value
}

// In reports whether the tag is present and equals one of values.
func (t Tags) In(key string, values ...string) bool {
	v, ok := t[key]
	if !ok {
		return false
	}
	for _, candidate := range values {
		if v == candidate {
			return true
		}
	}
	return false
}

// DisplayName returns the element's name, preferring the "name" tag and
// falling back to "name:en". Returns an empty string for unnamed elements.
func (t Tags) DisplayName() string {
	if v, ok := t["name"]; ok && v != "" {
		return v
	}
	return t["name:en"]
}
