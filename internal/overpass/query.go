package overpass

import (
	"fmt"
	"strings"
	"time"

	"github.com/paulmach/orb"
)

// selectors are the Overpass QL element selectors included in the
// composite query. Each is expanded with the same bounding box. The
// set mirrors what the campus dataset categorizes: buildings, campus
// amenities, shops, leisure, offices, bus stops and transit, tourism
// and healthcare.
var selectors = []string{
	`way["building"]`,
	`relation["building"]`,
	`node["amenity"]`,
	`way["amenity"]`,
	`node["shop"]`,
	`way["shop"]`,
	`node["leisure"]`,
	`way["leisure"]`,
	`node["office"]`,
	`way["office"]`,
	`node["highway"="bus_stop"]`,
	`node["public_transport"]`,
	`node["tourism"]`,
	`way["tourism"]`,
	`node["healthcare"]`,
	`way["healthcare"]`,
}

// FormatBBox renders a bound in Overpass order: south,west,north,east.
func FormatBBox(b orb.Bound) string {
	return fmt.Sprintf("%g,%g,%g,%g", b.Min[1], b.Min[0], b.Max[1], b.Max[0])
}

// BuildQuery assembles the composite Overpass QL query for a bounding
// box. The server-side timeout matches the client timeout so both ends
// give up together. "out center tags" makes Overpass resolve way and
// relation centroids, so the filter never has to walk member geometry.
func BuildQuery(b orb.Bound, timeout time.Duration) string {
	bbox := FormatBBox(b)

	var sb strings.Builder
	fmt.Fprintf(&sb, "[out:json][timeout:%d];\n(\n", int(timeout.Seconds()))
	for _, sel := range selectors {
		fmt.Fprintf(&sb, "  %s(%s);\n", sel, bbox)
	}
	sb.WriteString(");\nout center tags;\n")

	return sb.String()
}
