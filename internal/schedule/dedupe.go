package schedule

import "github.com/utm-transit/campuskit/internal/model"

// Change records one trip whose departure times were deduplicated.
type Change struct {
	// Route is the route name the trip belongs to.
	Route string

	// Headsign identifies the trip within its service.
	Headsign string

	// Removed is how many duplicate times were dropped.
	Removed int
}

// Dedupe removes duplicate departure times from every trip in the
// schedule, keeping the first occurrence of each time in its original
// position. It mutates the schedule and returns one change record per
// modified trip, in schedule order.
func Dedupe(sched *model.Schedule) []Change {
	var changes []Change

	for _, route := range sched.Routes {
		for _, service := range route.Services {
			for _, trip := range service.Trips {
				deduped := dedupeTimes(trip.Times)
				if len(deduped) == len(trip.Times) {
					continue
				}

				changes = append(changes, Change{
					Route:    route.Name,
					Headsign: trip.Headsign,
					Removed:  len(trip.Times) - len(deduped),
				})
				trip.Times = deduped
			}
		}
	}

	return changes
}

// dedupeTimes returns times with duplicates removed, preserving first
// occurrence order.
func dedupeTimes(times []string) []string {
	seen := make(map[string]struct{}, len(times))
	deduped := make([]string, 0, len(times))
	for _, t := range times {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		deduped = append(deduped, t)
	}
	return deduped
}
