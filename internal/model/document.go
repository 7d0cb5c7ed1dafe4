package model

import (
	"path/filepath"
	"time"

	"github.com/paulmach/orb"
)

// ExtractedAtFormat is the human-readable timestamp format used in the
// output document's metadata.
const ExtractedAtFormat = "2006-01-02 15:04:05"

// DocumentSource is the provenance label recorded in every output document.
const DocumentSource = "OpenStreetMap via Overpass API"

// Metadata describes the provenance of an extraction run.
type Metadata struct {
	Source         string `json:"source"`
	ExtractedAt    string `json:"extracted_at"`
	TotalPOIs      int    `json:"total_pois"`
	Campus         string `json:"campus"`
	BoundarySource string `json:"boundary_source"`
}

// Document is the POI output document written to disk. It is constructed
// once per run and never mutated afterward.
type Document struct {
	Metadata   Metadata         `json:"metadata"`
	Categories map[Category]int `json:"categories"`
	Locations  []POI            `json:"locations"`
}

// FilterStats counts how elements fared against the boundary filter.
type FilterStats struct {
	// Total is the number of raw elements processed.
	Total int

	// Inside is the number of elements whose coordinate fell inside the
	// boundary polygon (before category-based pruning).
	Inside int

	// Outside is the number of elements filtered out by the polygon test.
	Outside int

	// NoCoordinate is the number of elements skipped because neither a
	// direct coordinate nor a precomputed center was available.
	NoCoordinate int
}

// Extraction accumulates the state of one extraction run as it moves
// through the pipeline. Each step fills in the fields it is responsible
// for and later steps read them.
type Extraction struct {
	// Campus is the human-readable campus label for the metadata block.
	Campus string

	// BoundarySource is the path of the boundary file the ring came from.
	BoundarySource string

	// Ring is the campus boundary polygon's outer ring.
	Ring orb.Ring

	// Bound is the padded bounding box used for the Overpass query.
	Bound orb.Bound

	// Elements holds the raw elements returned by the fetcher.
	Elements []Element

	// POIs holds the categorized survivors of the boundary filter.
	POIs []POI

	// Stats holds the boundary filter tallies.
	Stats FilterStats

	// Document is the final output document, set by the report step.
	Document *Document

	// StartedAt records when the run began.
	StartedAt time.Time
}

// NewExtraction creates an extraction state for the given campus label.
func NewExtraction(campus string) *Extraction {
	return &Extraction{
		Campus:    campus,
		StartedAt: time.Now(),
	}
}

// CategoryCounts tallies POIs per category.
func CategoryCounts(pois []POI) map[Category]int {
	counts := make(map[Category]int)
	for _, p := range pois {
		counts[p.Category]++
	}
	return counts
}

// NewDocument builds the output document for an extraction at the given
// timestamp. The boundary source is reduced to its base name so the
// document does not leak local directory layout.
func NewDocument(ext *Extraction, now time.Time) *Document {
	return &Document{
		Metadata: Metadata{
			Source:         DocumentSource,
			ExtractedAt:    now.Format(ExtractedAtFormat),
			TotalPOIs:      len(ext.POIs),
			Campus:         ext.Campus,
			BoundarySource: filepath.Base(ext.BoundarySource),
		},
		Categories: CategoryCounts(ext.POIs),
		Locations:  ext.POIs,
	}
}
