package model

import (
	"fmt"
	"math"
)

// Category labels a POI with one value from the fixed taxonomy.
// The categorizer guarantees every POI carries one of the constants below.
type Category string

// The category taxonomy. Order here is documentation only; the
// categorizer's rule table defines the matching precedence.
const (
	CategoryResidential    Category = "residential"
	CategoryAcademic       Category = "academic"
	CategoryLibrary        Category = "library"
	CategoryDining         Category = "dining"
	CategoryShopping       Category = "shopping"
	CategorySports         Category = "sports"
	CategoryReligious      Category = "religious"
	CategoryHealthcare     Category = "healthcare"
	CategoryBanking        Category = "banking"
	CategoryTransit        Category = "transit"
	CategoryAdministrative Category = "administrative"
	CategoryParking        Category = "parking"
	CategoryBuilding       Category = "building"
	CategoryOther          Category = "other"
)

// POI is a categorized point of interest derived from an Element that
// passed the boundary filter.
type POI struct {
	// ID is the composite identifier "<kind>_<id>", e.g. "way_123456".
	ID string `json:"id"`

	// OSMID and OSMType preserve the source element identity.
	OSMID   int64  `json:"osmId"`
	OSMType string `json:"osmType"`

	// Name is the display name, or "Unnamed <category>" when the source
	// element carried no name tag.
	Name string `json:"name"`

	// Category is one of the taxonomy values.
	Category Category `json:"category"`

	// Lat and Lon are rounded to 6 decimal places (about 0.1 m).
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	// Pass-through tags, copied from the source element only when present.
	Amenity  string `json:"amenity,omitempty"`
	Building string `json:"building,omitempty"`
	Cuisine  string `json:"cuisine,omitempty"`
	Shop     string `json:"shop,omitempty"`
	Leisure  string `json:"leisure,omitempty"`

	// Keywords are the lowercase search tokens derived from Name.
	// Empty (but present) for synthesized "Unnamed" names.
	Keywords []string `json:"keywords"`
}

// CompositeID builds the "<kind>_<id>" identifier for an element.
func CompositeID(kind string, id int64) string {
	return fmt.Sprintf("%s_%d", kind, id)
}

// Round6 rounds a coordinate to 6 decimal places.
func Round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
