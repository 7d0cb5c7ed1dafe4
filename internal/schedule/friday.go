package schedule

import "github.com/utm-transit/campuskit/internal/model"

// Prayer window boundaries. Departures with
// windowStart <= time < windowEnd do not run on Fridays.
const (
	windowStart = "12:40"
	windowEnd   = "14:00"
)

// FridayResult summarizes an ApplyFriday or UndoFriday run.
type FridayResult struct {
	// Split is how many WEEKDAY services had Friday split out
	// (ApplyFriday) or how many regained their friday day (UndoFriday).
	Split int

	// Filtered is how many trip time lists lost departures to the
	// prayer window (ApplyFriday only).
	Filtered int

	// Removed is how many FRIDAY services were deleted (UndoFriday only).
	Removed int
}

// ApplyFriday splits the friday day out of every WEEKDAY service into a
// dedicated FRIDAY service and removes departures inside the prayer
// window from all FRIDAY services, pre-existing ones included. The
// FRIDAY copy starts as a deep clone of the WEEKDAY service so the
// weekday timetable is never affected by the window filter. Running it
// twice is a no-op: the WEEKDAY services no longer carry friday, and
// already-filtered time lists pass through the window filter unchanged.
func ApplyFriday(sched *model.Schedule) FridayResult {
	var res FridayResult

	for _, route := range sched.Routes {
		var added []*model.Service

		for _, service := range route.Services {
			if service.ServiceID != model.ServiceWeekday || !service.HasDay(model.DayFriday) {
				continue
			}

			days := make([]string, 0, len(service.Days)-1)
			for _, d := range service.Days {
				if d != model.DayFriday {
					days = append(days, d)
				}
			}
			service.Days = days

			friday := service.Clone()
			friday.ServiceID = model.ServiceFriday
			friday.Days = []string{model.DayFriday}
			added = append(added, friday)
			res.Split++
		}

		route.Services = append(route.Services, added...)

		for _, service := range route.Services {
			if service.ServiceID != model.ServiceFriday {
				continue
			}
			for _, trip := range service.Trips {
				filtered := filterWindow(trip.Times)
				if len(filtered) != len(trip.Times) {
					trip.Times = filtered
					res.Filtered++
				}
			}
		}
	}

	return res
}

// UndoFriday reverses ApplyFriday: the friday day is appended back to
// WEEKDAY day lists that lost it and FRIDAY services are deleted.
// Departures dropped by the window filter are not restored; re-running
// ApplyFriday rebuilds FRIDAY services from the weekday timetable.
func UndoFriday(sched *model.Schedule) FridayResult {
	var res FridayResult

	for _, route := range sched.Routes {
		var hasFriday bool
		for _, service := range route.Services {
			if service.ServiceID == model.ServiceFriday {
				hasFriday = true
			}
			if service.ServiceID == model.ServiceWeekday && !service.HasDay(model.DayFriday) {
				service.Days = append(service.Days, model.DayFriday)
				res.Split++
			}
		}

		if hasFriday {
			kept := make([]*model.Service, 0, len(route.Services))
			for _, service := range route.Services {
				if service.ServiceID != model.ServiceFriday {
					kept = append(kept, service)
				}
			}
			route.Services = kept
			res.Removed++
		}
	}

	return res
}

// filterWindow drops times inside the prayer window. Zero-padded HH:MM
// strings order lexicographically, so plain string comparison is exact.
func filterWindow(times []string) []string {
	kept := make([]string, 0, len(times))
	for _, t := range times {
		if t < windowStart || t >= windowEnd {
			kept = append(kept, t)
		}
	}
	return kept
}
