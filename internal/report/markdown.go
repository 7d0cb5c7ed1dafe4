package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/utm-transit/campuskit/internal/model"
)

// MarkdownWriter outputs the extraction summary as GitHub Flavored
// Markdown, suitable for checking into the dataset repository next to
// the JSON document.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(doc *model.Document) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Campus POI Extraction")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Campus", doc.Metadata.Campus},
			{"Source", doc.Metadata.Source},
			{"Boundary", "`" + doc.Metadata.BoundarySource + "`"},
			{"Extracted at", doc.Metadata.ExtractedAt},
			{"Total POIs", strconv.Itoa(doc.Metadata.TotalPOIs)},
		},
	})
	md.PlainText("")

	md.H2("Categories")
	md.PlainText("")
	rows := make([][]string, 0, len(doc.Categories))
	for _, cc := range sortedCounts(doc) {
		rows = append(rows, []string{string(cc.category), strconv.Itoa(cc.count)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Category", "Count"},
		Rows:   rows,
	})

	for _, category := range SpotlightCategories {
		samples := samplesFor(doc, category)
		if len(samples) == 0 {
			continue
		}
		md.PlainText("")
		md.H2(titleCase(category))
		items := make([]string, 0, len(samples))
		for _, p := range samples {
			items = append(items, fmt.Sprintf("%s (%g, %g)", p.Name, p.Lat, p.Lon))
		}
		md.BulletList(items...)
	}

	return len(md.String()), md.Build()
}

// titleCase upper-cases the first letter of a category for headings.
func titleCase(category model.Category) string {
	s := string(category)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
