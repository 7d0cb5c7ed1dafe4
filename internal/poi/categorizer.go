package poi

import (
	"maps"
	"slices"
	"strings"

	"github.com/utm-transit/campuskit/internal/model"
)

// Rule pairs a category with its match predicate. Rules are evaluated
// in order and the first match wins; the ordering is the taxonomy's
// precedence contract, not an implementation detail.
type Rule struct {
	// Category is the label assigned when Match returns true.
	Category model.Category

	// Match reports whether an element with the given tags and
	// lowercased display name belongs to Category.
	Match func(tags model.Tags, nameLower string) bool
}

// Categorizer classifies elements into the fixed category taxonomy.
// It is a pure classifier: Categorize depends only on its arguments and
// the rule table built at construction time.
type Categorizer struct {
	// fragments holds the per-category name fragment lists, defaults
	// plus any configured extras.
	fragments map[model.Category][]string

	// rules is the ordered rule table.
	rules []Rule
}

// Option configures a Categorizer.
type Option func(*Categorizer)

// WithExtraFragments appends name fragments to the given categories'
// default lists. Keys are category labels; unknown labels are ignored
// rather than creating categories outside the taxonomy.
func WithExtraFragments(extra map[string][]string) Option {
	return func(c *Categorizer) {
		for label, frags := range extra {
			category := model.Category(label)
			if _, ok := c.fragments[category]; !ok {
				continue
			}
			for _, f := range frags {
				c.fragments[category] = append(c.fragments[category], strings.ToLower(f))
			}
		}
	}
}

// New creates a Categorizer with the default taxonomy and any options
// applied.
func New(opts ...Option) *Categorizer {
	c := &Categorizer{
		fragments: make(map[model.Category][]string, len(defaultFragments)),
	}
	for category, frags := range defaultFragments {
		c.fragments[category] = slices.Clone(frags)
	}

	for _, opt := range opts {
		opt(c)
	}

	c.rules = c.buildRules()

	return c
}

// nameContains reports whether the lowercased name contains any of the
// category's fragments.
func (c *Categorizer) nameContains(category model.Category, nameLower string) bool {
	for _, fragment := range c.fragments[category] {
		if strings.Contains(nameLower, fragment) {
			return true
		}
	}
	return false
}

// buildRules assembles the ordered rule table. Precedence, top to
// bottom: residential, academic, library, dining, shopping, sports,
// religious, healthcare, banking, transit, administrative, parking,
// building, with "other" as the fallback in Categorize.
func (c *Categorizer) buildRules() []Rule {
	return []Rule{
		{model.CategoryResidential, func(tags model.Tags, nameLower string) bool {
			return tags.In("building", residentialBuildings...) ||
				c.nameContains(model.CategoryResidential, nameLower)
		}},
		{model.CategoryAcademic, func(tags model.Tags, nameLower string) bool {
			return tags.In("building", academicBuildings...) ||
				tags.In("amenity", academicAmenities...) ||
				c.nameContains(model.CategoryAcademic, nameLower)
		}},
		{model.CategoryLibrary, func(tags model.Tags, nameLower string) bool {
			return tags.Is("amenity", "library") ||
				c.nameContains(model.CategoryLibrary, nameLower)
		}},
		{model.CategoryDining, func(tags model.Tags, nameLower string) bool {
			return tags.In("amenity", diningAmenities...) ||
				c.nameContains(model.CategoryDining, nameLower)
		}},
		{model.CategoryShopping, func(tags model.Tags, nameLower string) bool {
			return tags.In("shop", shoppingShops...) ||
				c.nameContains(model.CategoryShopping, nameLower)
		}},
		{model.CategorySports, func(tags model.Tags, nameLower string) bool {
			return tags.In("leisure", sportsLeisure...) ||
				c.nameContains(model.CategorySports, nameLower)
		}},
		{model.CategoryReligious, func(tags model.Tags, nameLower string) bool {
			return tags.Is("amenity", "place_of_worship") ||
				c.nameContains(model.CategoryReligious, nameLower)
		}},
		{model.CategoryHealthcare, func(tags model.Tags, nameLower string) bool {
			return tags.In("amenity", healthcareAmenities...) ||
				c.nameContains(model.CategoryHealthcare, nameLower)
		}},
		{model.CategoryBanking, func(tags model.Tags, nameLower string) bool {
			return tags.In("amenity", bankingAmenities...) ||
				c.nameContains(model.CategoryBanking, nameLower)
		}},
		{model.CategoryTransit, func(tags model.Tags, _ string) bool {
			return tags.Is("highway", "bus_stop") || tags.Has("public_transport")
		}},
		{model.CategoryAdministrative, func(tags model.Tags, nameLower string) bool {
			return tags.Has("office") ||
				c.nameContains(model.CategoryAdministrative, nameLower)
		}},
		{model.CategoryParking, func(tags model.Tags, _ string) bool {
			return tags.Is("amenity", "parking")
		}},
		{model.CategoryBuilding, func(tags model.Tags, _ string) bool {
			return tags.Has("building")
		}},
	}
}

// Categorize returns the category for an element's tags and display
// name. Name matching is case-insensitive. Falls back to "other" when
// no rule matches.
func (c *Categorizer) Categorize(tags model.Tags, name string) model.Category {
	nameLower := strings.ToLower(name)
	for _, rule := range c.rules {
		if rule.Match(tags, nameLower) {
			return rule.Category
		}
	}
	return model.CategoryOther
}

// Fragments returns a copy of the effective fragment lists, primarily
// for tests and diagnostics.
func (c *Categorizer) Fragments() map[model.Category][]string {
	out := make(map[model.Category][]string, len(c.fragments))
	maps.Copy(out, c.fragments)
	return out
}
