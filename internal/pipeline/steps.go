package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/utm-transit/campuskit/internal/geo"
	"github.com/utm-transit/campuskit/internal/model"
	"github.com/utm-transit/campuskit/internal/overpass"
	"github.com/utm-transit/campuskit/internal/poi"
	"github.com/utm-transit/campuskit/internal/report"
)

// ErrNoElements is returned by the fetch step when Overpass answers
// with an empty element set. An empty set means there is nothing to
// filter or write, so the run aborts rather than producing an empty
// document.
var ErrNoElements = errors.New("no elements retrieved from Overpass")

// BoundaryStep loads the campus boundary polygon and computes the
// padded bounding box for the fetch step. A missing or malformed
// boundary file fails the run before any network traffic.
type BoundaryStep struct {
	path    string
	padding float64
	logger  *slog.Logger
}

// NewBoundaryStep creates a boundary loading step.
func NewBoundaryStep(path string, padding float64, logger *slog.Logger) *BoundaryStep {
	return &BoundaryStep{path: path, padding: padding, logger: logger}
}

// Name returns the step name.
func (s *BoundaryStep) Name() string {
	return "load_boundary"
}

// Do loads the boundary and fills in the extraction's ring and bound.
func (s *BoundaryStep) Do(_ context.Context, ext *model.Extraction) error {
	boundary, err := geo.LoadBoundary(s.path)
	if err != nil {
		return err
	}

	ext.Ring = boundary.Ring
	ext.Bound = geo.PaddedBound(boundary.Ring, s.padding)
	ext.BoundarySource = boundary.Source

	s.logger.Debug("boundary loaded",
		"vertices", len(boundary.Ring),
		"bbox", overpass.FormatBBox(ext.Bound),
	)

	return nil
}

// FetchStep retrieves raw elements from the Overpass API for the
// padded bounding box.
type FetchStep struct {
	client *overpass.Client
	logger *slog.Logger
}

// NewFetchStep creates a fetch step using the given client.
func NewFetchStep(client *overpass.Client, logger *slog.Logger) *FetchStep {
	return &FetchStep{client: client, logger: logger}
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch_elements"
}

// Do fetches elements. A transport fault, a non-200 status or an empty
// element set each abort the run; there is exactly one request and no
// retry.
func (s *FetchStep) Do(ctx context.Context, ext *model.Extraction) error {
	elements, err := s.client.Fetch(ctx, ext.Bound)
	if err != nil {
		return err
	}
	if len(elements) == 0 {
		return ErrNoElements
	}

	ext.Elements = elements
	s.logger.Debug("elements fetched", "count", len(elements))

	return nil
}

// FilterStep runs the boundary filter and categorizer over the raw
// elements.
type FilterStep struct {
	categorizer *poi.Categorizer
	logger      *slog.Logger
}

// NewFilterStep creates a filter step using the given categorizer.
func NewFilterStep(categorizer *poi.Categorizer, logger *slog.Logger) *FilterStep {
	return &FilterStep{categorizer: categorizer, logger: logger}
}

// Name returns the step name.
func (s *FilterStep) Name() string {
	return "filter_categorize"
}

// Do filters and categorizes the fetched elements.
func (s *FilterStep) Do(_ context.Context, ext *model.Extraction) error {
	pois, stats := s.categorizer.Process(ext.Elements, ext.Ring)

	ext.POIs = pois
	ext.Stats = stats

	s.logger.Debug("elements filtered",
		"total", stats.Total,
		"inside", stats.Inside,
		"outside", stats.Outside,
		"noCoordinate", stats.NoCoordinate,
		"kept", len(pois),
	)

	return nil
}

// WriteStep builds the output document and writes it to disk, creating
// parent directories as needed. It is the pipeline's only side effect
// on disk, and it only runs when every prior step succeeded.
type WriteStep struct {
	path   string
	now    func() time.Time
	logger *slog.Logger
}

// NewWriteStep creates a document writing step.
func NewWriteStep(path string, logger *slog.Logger) *WriteStep {
	return &WriteStep{path: path, now: time.Now, logger: logger}
}

// Name returns the step name.
func (s *WriteStep) Name() string {
	return "write_document"
}

// Do builds the document and writes it as indented UTF-8 JSON.
func (s *WriteStep) Do(_ context.Context, ext *model.Extraction) error {
	ext.Document = model.NewDocument(ext, s.now())

	dir := filepath.Dir(s.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(s.path) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Close error surfaces via the explicit Close below

	if _, err := report.NewJSONWriter(f).Write(ext.Document); err != nil {
		return fmt.Errorf("failed to write output document: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}

	s.logger.Debug("document written", "path", s.path, "pois", len(ext.POIs))

	return nil
}

// ExtractionParams collects the inputs needed to assemble the default
// extraction pipeline.
type ExtractionParams struct {
	// BoundaryPath is the campus boundary GeoJSON file.
	BoundaryPath string

	// OutputPath is where the POI document is written.
	OutputPath string

	// Padding expands the query bounding box, in degrees.
	Padding float64
}

// Extraction assembles the standard four-stage pipeline: boundary,
// fetch, filter, write.
func Extraction(client *overpass.Client, categorizer *poi.Categorizer, params ExtractionParams, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewBoundaryStep(params.BoundaryPath, params.Padding, p.logger),
		NewFetchStep(client, p.logger),
		NewFilterStep(categorizer, p.logger),
		NewWriteStep(params.OutputPath, p.logger),
	)

	return p
}
