// Package report serializes POI extraction results: the on-disk JSON
// document, the human-readable console summary, and an optional
// Markdown summary.
package report
