// Package schedule maintains the flat-file bus schedule dataset. It
// loads schedule.json and route_geometries.json, applies in-memory
// transformations such as departure-time deduplication and the Friday
// prayer-window split, validates referential structure, and writes
// documents back with the dataset's 4-space JSON layout.
package schedule
