package poi

import (
	"github.com/paulmach/orb"
	"github.com/utm-transit/campuskit/internal/geo"
	"github.com/utm-transit/campuskit/internal/model"
)

// Process filters raw elements against the boundary ring and
// categorizes the survivors.
//
// Elements without a resolvable coordinate are skipped and tallied
// separately. After categorization two kinds of noise are pruned:
// unnamed parking lots, and unnamed "other" elements that carry no
// building tag. Every other unnamed element is kept under a
// synthesized "Unnamed <category>" name.
//
// Process is pure with respect to its inputs: running it twice over
// the same elements and ring yields identical results.
func (c *Categorizer) Process(elements []model.Element, ring orb.Ring) ([]model.POI, model.FilterStats) {
	pois := make([]model.POI, 0, len(elements))
	var stats model.FilterStats

	for _, e := range elements {
		stats.Total++

		pt, ok := e.Coordinate()
		if !ok {
			stats.NoCoordinate++
			continue
		}

		if !geo.Contains(ring, pt) {
			stats.Outside++
			continue
		}
		stats.Inside++

		name := e.Tags.DisplayName()
		category := c.Categorize(e.Tags, name)

		// Unnamed parking lots are noise; so are unnamed "other"
		// elements that are not even buildings.
		if category == model.CategoryParking && name == "" {
			continue
		}
		if category == model.CategoryOther && name == "" && !e.Tags.Has("building") {
			continue
		}

		if name == "" {
			name = UnnamedPrefix + " " + string(category)
		}

		p := model.POI{
			ID:       model.CompositeID(e.Type, e.ID),
			OSMID:    e.ID,
			OSMType:  e.Type,
			Name:     name,
			Category: category,
			Lat:      model.Round6(pt[1]),
			Lon:      model.Round6(pt[0]),
			Keywords: Keywords(name),
		}

		// Pass-through tags, copied only when present and non-empty.
		if v, ok := e.Tags.Value("amenity"); ok && v != "" {
			p.Amenity = v
		}
		if v, ok := e.Tags.Value("building"); ok && v != "" {
			p.Building = v
		}
		if v, ok := e.Tags.Value("cuisine"); ok && v != "" {
			p.Cuisine = v
		}
		if v, ok := e.Tags.Value("shop"); ok && v != "" {
			p.Shop = v
		}
		if v, ok := e.Tags.Value("leisure"); ok && v != "" {
			p.Leisure = v
		}

		pois = append(pois, p)
	}

	return pois, stats
}
