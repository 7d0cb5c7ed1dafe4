package schedule

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/utm-transit/campuskit/internal/model"
)

// timePattern matches zero-padded "HH:MM" departure times.
var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// Issue is one structural problem found by Validate.
type Issue struct {
	// Message is the human-readable description of the problem.
	Message string
}

func (i Issue) String() string {
	return i.Message
}

// Validate checks the schedule's referential structure without
// modifying it: duplicate stop definitions, trip sequences referencing
// unknown stops, malformed departure times, and unsorted time lists.
// It returns the issues in discovery order; an empty slice means the
// schedule is structurally sound.
func Validate(sched *model.Schedule) []Issue {
	var issues []Issue
	add := func(format string, args ...any) {
		issues = append(issues, Issue{Message: fmt.Sprintf(format, args...)})
	}

	stops := make(map[string]struct{}, len(sched.Stops))
	for _, s := range sched.Stops {
		if _, ok := stops[s.ID]; ok {
			add("duplicate stop ID definition: %s", s.ID)
		}
		stops[s.ID] = struct{}{}
	}

	for _, route := range sched.Routes {
		for _, service := range route.Services {
			for _, trip := range service.Trips {
				for _, stopID := range trip.StopsSequence {
					if _, ok := stops[stopID]; !ok {
						add("route %q trip %q: stop ID %q not found in stops list",
							route.Name, trip.Headsign, stopID)
					}
				}

				for _, t := range trip.Times {
					if !timePattern.MatchString(t) {
						add("route %q trip %q: invalid time format %q",
							route.Name, trip.Headsign, t)
					}
				}

				if !slices.IsSorted(trip.Times) {
					add("route %q trip %q: times are not sorted chronologically",
						route.Name, trip.Headsign)
				}
			}
		}
	}

	return issues
}
