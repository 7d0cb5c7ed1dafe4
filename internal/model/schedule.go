package model

import "slices"

// Service identifiers and day names used by the schedule dataset.
const (
	ServiceWeekday = "WEEKDAY"
	ServiceFriday  = "FRIDAY"
	ServiceWeekend = "WEEKEND"

	DayFriday = "friday"
)

// Schedule is the bus-schedule dataset stored in schedule.json.
type Schedule struct {
	Stops  []Stop   `json:"stops"`
	Routes []*Route `json:"routes"`
}

// Stop is one bus stop definition. Trip stop sequences reference stops
// by ID.
type Stop struct {
	ID   string  `json:"id"`
	Name string  `json:"name,omitempty"`
	Lat  float64 `json:"lat,omitempty"`
	Lon  float64 `json:"lon,omitempty"`
}

// Route is one bus route with its per-day-group services.
type Route struct {
	Name     string     `json:"name"`
	Services []*Service `json:"services"`
}

// Service groups the trips that run on a set of days, identified by a
// service ID such as "WEEKDAY" or "FRIDAY".
type Service struct {
	ServiceID string   `json:"service_id"`
	Days      []string `json:"days"`
	Trips     []*Trip  `json:"trips"`
}

// Clone returns a deep copy of the service.
func (s *Service) Clone() *Service {
	c := &Service{
		ServiceID: s.ServiceID,
		Days:      slices.Clone(s.Days),
		Trips:     make([]*Trip, 0, len(s.Trips)),
	}
	for _, t := range s.Trips {
		c.Trips = append(c.Trips, &Trip{
			Headsign:      t.Headsign,
			StopsSequence: slices.Clone(t.StopsSequence),
			Times:         slices.Clone(t.Times),
		})
	}
	return c
}

// HasDay reports whether the service runs on the given day.
func (s *Service) HasDay(day string) bool {
	return slices.Contains(s.Days, day)
}

// Trip is one direction of travel with its ordered stop sequence and the
// list of departure times in zero-padded "HH:MM" form.
type Trip struct {
	Headsign      string   `json:"headsign"`
	StopsSequence []string `json:"stops_sequence"`
	Times         []string `json:"times"`
}

// RouteGeometry is one route's polyline from route_geometries.json.
// Coordinates are [longitude, latitude] pairs in drawing order.
type RouteGeometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}
