// Package pipeline orchestrates the POI extraction stages: boundary
// loading, Overpass fetch, geometric filtering with categorization,
// and document writing. Steps run strictly in sequence; the first
// failure aborts the run so no partial output is ever written.
package pipeline
