package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/utm-transit/campuskit/internal/model"
)

// SimpleWriter outputs a human-readable console summary: the category
// breakdown sorted by frequency and sample POIs for the spotlight
// categories, to aid manual verification of a fresh extraction.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given
// writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the summary.
func (w *SimpleWriter) Write(doc *model.Document) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Campus POI extraction: %s\n", doc.Metadata.Campus)
	fmt.Fprintf(&sb, "Extracted at %s from %s\n", doc.Metadata.ExtractedAt, doc.Metadata.Source)
	fmt.Fprintf(&sb, "Boundary: %s\n", doc.Metadata.BoundarySource)
	fmt.Fprintf(&sb, "Total POIs: %d\n\n", doc.Metadata.TotalPOIs)

	sb.WriteString("POIs by category:\n")
	for _, cc := range sortedCounts(doc) {
		fmt.Fprintf(&sb, "  %-15s %d\n", cc.category, cc.count)
	}

	for _, category := range SpotlightCategories {
		samples := samplesFor(doc, category)
		if len(samples) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n%s:\n", strings.ToUpper(string(category)))
		for _, p := range samples {
			fmt.Fprintf(&sb, "  - %s (%g, %g)\n", p.Name, p.Lat, p.Lon)
		}
	}

	return io.WriteString(w.output, sb.String())
}
