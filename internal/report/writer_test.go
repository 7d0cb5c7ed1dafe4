package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/utm-transit/campuskit/internal/model"
)

// testDocument builds a small document with non-ASCII content and a
// spread of categories.
func testDocument() *model.Document {
	pois := []model.POI{
		{ID: "node_1", OSMID: 1, OSMType: "node", Name: "Kolej Tun Dr. Ismail", Category: model.CategoryResidential, Lat: 1.5601, Lon: 103.6402, Keywords: []string{"kolej", "tun", "dr", "ismail", "ktdi"}},
		{ID: "node_2", OSMID: 2, OSMType: "node", Name: "Café Señor", Category: model.CategoryDining, Lat: 1.5612, Lon: 103.6413, Keywords: []string{"café", "señor", "cs"}},
		{ID: "way_3", OSMID: 3, OSMType: "way", Name: "Arked Meranti", Category: model.CategoryDining, Lat: 1.5623, Lon: 103.6424, Keywords: []string{"arked", "meranti", "am"}},
		{ID: "way_4", OSMID: 4, OSMType: "way", Name: "Unnamed building", Category: model.CategoryBuilding, Lat: 1.5634, Lon: 103.6435, Keywords: []string{}},
	}

	return &model.Document{
		Metadata: model.Metadata{
			Source:         model.DocumentSource,
			ExtractedAt:    "2026-08-31 10:30:00",
			TotalPOIs:      len(pois),
			Campus:         "Universiti Teknologi Malaysia (UTM) Johor Bahru",
			BoundarySource: "campus_boundary.geojson",
		},
		Categories: model.CategoryCounts(pois),
		Locations:  pois,
	}
}

// TestJSONWriter tests document serialization.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("round trips through encoding/json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewJSONWriter(&buf).Write(testDocument())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
		}

		var decoded model.Document
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if decoded.Metadata.TotalPOIs != 4 {
			t.Errorf("unexpected total %d", decoded.Metadata.TotalPOIs)
		}
		if decoded.Categories[model.CategoryDining] != 2 {
			t.Errorf("unexpected dining count %d", decoded.Categories[model.CategoryDining])
		}
	})

	t.Run("preserves non-ASCII unescaped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(testDocument()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "Café Señor") {
			t.Error("expected non-ASCII name to appear unescaped")
		}
		if strings.Contains(out, `\u00e9`) {
			t.Error("expected no unicode escapes in output")
		}
	})

	t.Run("uses two-space indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(testDocument()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"metadata\"") {
			t.Error("expected 2-space indented top-level keys")
		}
	})
}

// TestSimpleWriter tests the console summary.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewSimpleWriter(&buf).Write(testDocument()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Total POIs: 4") {
		t.Error("expected total POI count")
	}

	// Categories sorted by descending count: dining (2) first.
	diningIdx := strings.Index(out, "dining")
	buildingIdx := strings.Index(out, "building")
	if diningIdx == -1 || buildingIdx == -1 || diningIdx > buildingIdx {
		t.Error("expected dining to be listed before building")
	}

	// Spotlight sections include samples.
	if !strings.Contains(out, "RESIDENTIAL:") {
		t.Error("expected residential spotlight section")
	}
	if !strings.Contains(out, "Kolej Tun Dr. Ismail") {
		t.Error("expected residential sample")
	}
	// Non-spotlight categories get no sample section.
	if strings.Contains(out, "BUILDING:") {
		t.Error("did not expect building spotlight section")
	}
}

// TestSimpleWriterSampleCap tests the 3-sample cap per category.
func TestSimpleWriterSampleCap(t *testing.T) {
	t.Parallel()

	pois := make([]model.POI, 0, 5)
	for i := range 5 {
		pois = append(pois, model.POI{
			ID:       model.CompositeID(model.ElementNode, int64(i)),
			Name:     "Kolej " + strings.Repeat("I", i+1),
			Category: model.CategoryResidential,
			Keywords: []string{},
		})
	}
	doc := &model.Document{
		Metadata:   model.Metadata{TotalPOIs: len(pois)},
		Categories: model.CategoryCounts(pois),
		Locations:  pois,
	}

	var buf bytes.Buffer
	if _, err := NewSimpleWriter(&buf).Write(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := strings.Count(buf.String(), "  - "); got != 3 {
		t.Errorf("expected 3 samples, got %d", got)
	}
}

// TestMarkdownWriter tests the Markdown summary.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(testDocument()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "# Campus POI Extraction") {
		t.Error("expected top-level heading")
	}
	if !strings.Contains(out, "## Categories") {
		t.Error("expected categories section")
	}
	if !strings.Contains(out, "dining") {
		t.Error("expected category rows")
	}
	if !strings.Contains(out, "## Dining") {
		t.Error("expected dining spotlight heading")
	}
	if !strings.Contains(out, "Arked Meranti") {
		t.Error("expected dining sample")
	}
}
