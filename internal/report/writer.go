package report

import (
	"io"
	"sort"

	"github.com/utm-transit/campuskit/internal/model"
)

// Writer outputs a POI document in some format. Implementations write
// to whatever destination they were constructed with, so the same API
// serves files, stdout and test buffers.
type Writer interface {
	// Write outputs the document. Returns the number of bytes written
	// and any error encountered.
	Write(doc *model.Document) (int, error)
}

// SpotlightCategories are the categories whose sample POIs are worth a
// human glance after a run: the ones riders actually search for.
var SpotlightCategories = []model.Category{
	model.CategoryResidential,
	model.CategoryAcademic,
	model.CategoryDining,
	model.CategoryShopping,
	model.CategoryReligious,
}

// MaxSamplesPerCategory caps the spotlight samples shown per category.
const MaxSamplesPerCategory = 3

// baseWriter provides the shared output destination for writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// categoryCount pairs a category with its tally for sorted breakdowns.
type categoryCount struct {
	category model.Category
	count    int
}

// sortedCounts returns the document's category tallies ordered by
// descending count, ties broken alphabetically so output is stable.
func sortedCounts(doc *model.Document) []categoryCount {
	counts := make([]categoryCount, 0, len(doc.Categories))
	for category, count := range doc.Categories {
		counts = append(counts, categoryCount{category, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].category < counts[j].category
	})
	return counts
}

// samplesFor returns up to MaxSamplesPerCategory POIs of one category,
// in document order.
func samplesFor(doc *model.Document, category model.Category) []model.POI {
	var samples []model.POI
	for _, p := range doc.Locations {
		if p.Category != category {
			continue
		}
		samples = append(samples, p)
		if len(samples) == MaxSamplesPerCategory {
			break
		}
	}
	return samples
}
