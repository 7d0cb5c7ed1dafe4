// Package main provides the entry point for the campuskit CLI.
//
// campuskit maintains the campus bus-schedule dataset: it extracts
// points of interest around the campus from OpenStreetMap and keeps
// the flat-file schedule and route-geometry documents consistent.
//
// Usage:
//
//	campuskit extract
//	campuskit schedule dedupe
//	campuskit schedule validate
//	campuskit schedule friday apply
//	campuskit geometry reverse --route <key>
//
// See --help for all available options.
package main

// main is the entry point for campuskit.
func main() {
	Execute()
}
