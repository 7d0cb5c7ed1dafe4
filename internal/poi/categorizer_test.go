package poi

import (
	"testing"

	"github.com/utm-transit/campuskit/internal/model"
)

// TestCategorize tests tag- and name-based classification across the
// taxonomy.
func TestCategorize(t *testing.T) {
	t.Parallel()

	c := New()

	testCases := []struct {
		name     string
		tags     model.Tags
		poiName  string
		expected model.Category
	}{
		// Tag-driven matches.
		{"dormitory building", model.Tags{"building": "dormitory"}, "", model.CategoryResidential},
		{"university building", model.Tags{"building": "university"}, "", model.CategoryAcademic},
		{"library amenity", model.Tags{"amenity": "library"}, "", model.CategoryLibrary},
		{"cafe amenity", model.Tags{"amenity": "cafe"}, "", model.CategoryDining},
		{"convenience shop", model.Tags{"shop": "convenience"}, "", model.CategoryShopping},
		{"sports centre", model.Tags{"leisure": "sports_centre"}, "", model.CategorySports},
		{"place of worship", model.Tags{"amenity": "place_of_worship"}, "", model.CategoryReligious},
		{"clinic amenity", model.Tags{"amenity": "clinic"}, "", model.CategoryHealthcare},
		{"atm amenity", model.Tags{"amenity": "atm"}, "", model.CategoryBanking},
		{"bus stop", model.Tags{"highway": "bus_stop"}, "", model.CategoryTransit},
		{"public transport platform", model.Tags{"public_transport": "platform"}, "", model.CategoryTransit},
		{"office tag", model.Tags{"office": "educational_institution"}, "", model.CategoryAdministrative},
		{"parking amenity", model.Tags{"amenity": "parking"}, "", model.CategoryParking},
		{"generic building", model.Tags{"building": "yes"}, "", model.CategoryBuilding},
		{"nothing matches", model.Tags{"tourism": "information"}, "", model.CategoryOther},
		{"no tags at all", model.Tags{}, "", model.CategoryOther},

		// Name-driven matches.
		{"kolej name", model.Tags{}, "Kolej Tun Fatimah", model.CategoryResidential},
		{"fakulti name", model.Tags{}, "Fakulti Komputeran", model.CategoryAcademic},
		{"perpustakaan name", model.Tags{}, "Perpustakaan Raja Zarith Sofiah", model.CategoryLibrary},
		{"arked name", model.Tags{}, "Arked Meranti", model.CategoryDining},
		{"speedmart name", model.Tags{}, "99 Speedmart", model.CategoryShopping},
		{"padang name", model.Tags{}, "Padang Ragbi UTM", model.CategorySports},
		{"masjid name", model.Tags{}, "Masjid Sultan Ismail", model.CategoryReligious},
		{"klinik name", model.Tags{}, "Klinik Kesihatan UTM", model.CategoryHealthcare},
		{"bank name", model.Tags{}, "Maybank UTM Branch", model.CategoryBanking},
		{"pejabat name", model.Tags{}, "Pejabat Harta Bina", model.CategoryAdministrative},

		// An absent tag must not match as an empty value.
		{"empty amenity value ignored by equality rules", model.Tags{"amenity": ""}, "", model.CategoryOther},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := c.Categorize(tc.tags, tc.poiName); got != tc.expected {
				t.Errorf("Categorize(%v, %q) = %q, expected %q", tc.tags, tc.poiName, got, tc.expected)
			}
		})
	}
}

// TestCategorizePrecedence pins the rule ordering: earlier rules win
// when an element matches several.
func TestCategorizePrecedence(t *testing.T) {
	t.Parallel()

	c := New()

	testCases := []struct {
		name     string
		tags     model.Tags
		poiName  string
		expected model.Category
	}{
		// Dining precedes shopping.
		{"cafe and supermarket", model.Tags{"amenity": "cafe", "shop": "supermarket"}, "", model.CategoryDining},
		// Residential precedes academic.
		{"dormitory with faculty name", model.Tags{"building": "dormitory"}, "Fakulti Lama", model.CategoryResidential},
		// Academic building precedes the generic building rule.
		{"school building", model.Tags{"building": "school"}, "", model.CategoryAcademic},
		// A named parking lot is still parking, not administrative,
		// unless the name itself matches an earlier rule.
		{"parking with plain name", model.Tags{"amenity": "parking"}, "Petak P1", model.CategoryParking},
		// Transit precedes administrative.
		{"bus stop with office tag", model.Tags{"highway": "bus_stop", "office": "yes"}, "", model.CategoryTransit},
		// Religious name beats banking tag order? No: healthcare rule
		// sits between them; masjid fragment wins over amenity=bank
		// because religious precedes banking.
		{"masjid with bank amenity", model.Tags{"amenity": "bank"}, "Surau Al-Hidayah", model.CategoryReligious},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := c.Categorize(tc.tags, tc.poiName); got != tc.expected {
				t.Errorf("Categorize(%v, %q) = %q, expected %q", tc.tags, tc.poiName, got, tc.expected)
			}
		})
	}
}

// TestCategorizeCaseInsensitive tests that name fragments match without
// regard to case.
func TestCategorizeCaseInsensitive(t *testing.T) {
	t.Parallel()

	c := New()

	upper := c.Categorize(model.Tags{}, "KOLEJ TUAH")
	lower := c.Categorize(model.Tags{}, "kolej tuah")

	if upper != lower {
		t.Errorf("case changed the verdict: %q vs %q", upper, lower)
	}
	if upper != model.CategoryResidential {
		t.Errorf("expected residential, got %q", upper)
	}
}

// TestWithExtraFragments tests configured fragment extensions.
func TestWithExtraFragments(t *testing.T) {
	t.Parallel()

	c := New(WithExtraFragments(map[string][]string{
		"dining":   {"Warung"},
		"invented": {"ignored"},
	}))

	if got := c.Categorize(model.Tags{}, "Warung Pak Ali"); got != model.CategoryDining {
		t.Errorf("expected configured fragment to classify as dining, got %q", got)
	}

	// Unknown category labels must not enter the taxonomy.
	if _, ok := c.Fragments()["invented"]; ok {
		t.Error("expected unknown category label to be ignored")
	}

	// Defaults still apply.
	if got := c.Categorize(model.Tags{}, "Arked Angkasa"); got != model.CategoryDining {
		t.Errorf("expected default fragments to survive, got %q", got)
	}
}
