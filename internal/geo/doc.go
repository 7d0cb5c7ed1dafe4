// Package geo loads the campus boundary polygon from GeoJSON and
// provides the point-in-polygon containment test used by the POI filter.
package geo
