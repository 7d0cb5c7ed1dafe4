package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// Contains reports whether the point lies inside the ring using the
// even-odd (ray casting) rule: a horizontal ray from the point crosses
// the boundary an odd number of times exactly when the point is inside.
//
// An edge can only be crossed when the point's latitude lies strictly
// above the edge's lower endpoint and at or below its upper endpoint;
// the asymmetric bounds prevent double-counting a vertex shared by two
// edges. Horizontal edges are skipped outright, since a horizontal ray
// at a distinct latitude can never cross them. Points on the boundary
// follow whichever verdict the parity rule produces; the convention is
// deterministic but edges are not uniformly inside or outside.
//
// This is O(n) per point, which is ample for a few thousand elements
// against one campus ring.
func Contains(ring orb.Ring, pt orb.Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}

	x, y := pt[0], pt[1]
	inside := false

	p1 := ring[0]
	for i := 1; i <= n; i++ {
		p2 := ring[i%n]
		if p1[1] != p2[1] &&
			y > math.Min(p1[1], p2[1]) && y <= math.Max(p1[1], p2[1]) &&
			x <= math.Max(p1[0], p2[0]) {
			// x-intercept of the edge at the test latitude. For a
			// vertical edge this degenerates to the shared longitude.
			xinters := (y-p1[1])*(p2[0]-p1[0])/(p2[1]-p1[1]) + p1[0]
			if p1[0] == p2[0] || x <= xinters {
				inside = !inside
			}
		}
		p1 = p2
	}

	return inside
}
