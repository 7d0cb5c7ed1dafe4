// Package overpass fetches raw points of interest from the OpenStreetMap
// Overpass API. It builds one composite bounding-box query covering the
// tag families the campus dataset cares about and decodes the response
// into model.Element values with way/relation centroids pre-resolved.
package overpass
