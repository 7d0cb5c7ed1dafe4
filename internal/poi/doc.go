// Package poi turns raw OpenStreetMap elements into categorized campus
// points of interest: it filters elements against the campus boundary,
// classifies survivors with an ordered rule table, prunes noise, and
// derives search keywords from display names.
package poi
