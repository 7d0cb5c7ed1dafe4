package geo

import (
	"testing"

	"github.com/paulmach/orb"
)

// square is a 10x10 test ring. With the even-odd convention used here
// (upper bound inclusive, lower bound exclusive) the corner adjacent to
// the maximum x/y vertex tests inside and the remaining corners outside.
var square = orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

// TestContainsSquare tests containment against a known convex square,
// including the deterministic boundary verdicts.
func TestContainsSquare(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		point    orb.Point
		expected bool
	}{
		{"center", orb.Point{5, 5}, true},
		{"far outside", orb.Point{15, 5}, false},
		{"far outside negative", orb.Point{-3, -3}, false},
		{"just inside min corner", orb.Point{0.001, 0.001}, true},
		{"just outside max corner", orb.Point{10.001, 10.001}, false},

		// Boundary verdicts: deterministic under the even-odd rule.
		{"corner min-min", orb.Point{0, 0}, false},
		{"corner max-min", orb.Point{10, 0}, false},
		{"corner min-max", orb.Point{0, 10}, false},
		{"corner max-max", orb.Point{10, 10}, true},
		{"top edge midpoint", orb.Point{5, 10}, true},
		{"bottom edge midpoint", orb.Point{5, 0}, false},
		{"left edge midpoint", orb.Point{0, 5}, false},
		{"right edge midpoint", orb.Point{10, 5}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Contains(square, tc.point); got != tc.expected {
				t.Errorf("Contains(square, %v) = %v, expected %v", tc.point, got, tc.expected)
			}
		})
	}
}

// TestContainsConcave tests that a notch in a concave ring is correctly
// treated as outside.
func TestContainsConcave(t *testing.T) {
	t.Parallel()

	// Square with a triangular notch cut into the top edge down to (2,2).
	notched := orb.Ring{{0, 0}, {4, 0}, {4, 4}, {2, 2}, {0, 4}}

	if Contains(notched, orb.Point{2, 3}) {
		t.Error("expected point in the notch to be outside")
	}
	if !Contains(notched, orb.Point{1, 3}) {
		t.Error("expected point in the left lobe to be inside")
	}
	if !Contains(notched, orb.Point{2, 1}) {
		t.Error("expected point below the notch to be inside")
	}
}

// TestContainsHorizontalEdge tests points at the exact latitude of a
// horizontal edge. Horizontal edges are skipped entirely, so the verdict
// must come from the remaining edges with no dependence on evaluation
// order.
func TestContainsHorizontalEdge(t *testing.T) {
	t.Parallel()

	// Staircase: a 10-wide column for y in [0,10] joined to a 10-wide
	// shelf for y in [5,10], with a horizontal edge at y=5, x in [10,20].
	staircase := orb.Ring{{0, 0}, {10, 0}, {10, 5}, {20, 5}, {20, 10}, {0, 10}}

	testCases := []struct {
		name     string
		point    orb.Point
		expected bool
	}{
		{"interior at edge latitude", orb.Point{5, 5}, true},
		{"on the horizontal edge", orb.Point{15, 5}, false},
		{"above the horizontal edge", orb.Point{15, 7}, true},
		{"below the horizontal edge", orb.Point{15, 3}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Contains(staircase, tc.point); got != tc.expected {
				t.Errorf("Contains(staircase, %v) = %v, expected %v", tc.point, got, tc.expected)
			}
		})
	}
}

// TestContainsCampusCoordinates tests containment with realistic
// campus-scale coordinates.
func TestContainsCampusCoordinates(t *testing.T) {
	t.Parallel()

	campus := orb.Ring{
		{103.63, 1.55},
		{103.65, 1.55},
		{103.65, 1.57},
		{103.63, 1.57},
	}

	if !Contains(campus, orb.Point{103.640, 1.560}) {
		t.Error("expected campus center point to be inside")
	}
	if Contains(campus, orb.Point{103.70, 1.560}) {
		t.Error("expected point east of campus to be outside")
	}
}

// TestContainsDegenerateRing tests that rings with fewer than three
// vertices contain nothing.
func TestContainsDegenerateRing(t *testing.T) {
	t.Parallel()

	if Contains(orb.Ring{{0, 0}, {10, 10}}, orb.Point{5, 5}) {
		t.Error("expected two-vertex ring to contain nothing")
	}
	if Contains(orb.Ring{}, orb.Point{0, 0}) {
		t.Error("expected empty ring to contain nothing")
	}
}
