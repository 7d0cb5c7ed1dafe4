// Package model defines the data structures shared across campuskit:
// raw OpenStreetMap elements, categorized points of interest, the POI
// output document, and the bus-schedule dataset types.
package model
