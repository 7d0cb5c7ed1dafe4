package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/utm-transit/campuskit/internal/model"
)

// JSONWriter outputs the document as UTF-8 JSON with 2-space indent.
// HTML escaping is disabled so names like "Arked <Baru>" and non-ASCII
// text land in the file exactly as tagged in OSM.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the document in JSON format.
func (w *JSONWriter) Write(doc *model.Document) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}
