// README: Zone and route reference data definitions.
package catalog

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrZoneNotFound  = errors.New("zone not found")
	ErrRouteNotFound = errors.New("route not found")
)

// ServiceType is a tier of vehicle/booking exclusivity.
type ServiceType string

const (
	ServicePrivate ServiceType = "private"
	ServiceShared  ServiceType = "shared"
	ServicePremium ServiceType = "premium"
)

// ParseServiceType validates a raw service-type string from a request.
func ParseServiceType(s string) (ServiceType, error) {
	switch ServiceType(s) {
	case ServicePrivate, ServiceShared, ServicePremium:
		return ServiceType(s), nil
	}
	return "", fmt.Errorf("unknown service type %q", s)
}

type ZoneCategory string

const (
	ZoneAirport ZoneCategory = "airport"
	ZoneResort  ZoneCategory = "resort"
	ZoneCity    ZoneCategory = "city"
)

// Zone is a named geographic area used as a routing endpoint.
type Zone struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Lat       float64      `json:"lat"`
	Lng       float64      `json:"lng"`
	RadiusKm  float64      `json:"radius_km"`
	Category  ZoneCategory `json:"category"`
	Amenities []string     `json:"amenities,omitempty"`
}

// ServiceFlags marks which service tiers a route can be booked with.
type ServiceFlags struct {
	Private    bool `json:"private"`
	Shared     bool `json:"shared"`
	Premium    bool `json:"premium"`
	Accessible bool `json:"accessible"`
}

// Eligible reports whether the given tier is bookable on this route.
func (f ServiceFlags) Eligible(s ServiceType) bool {
	switch s {
	case ServicePrivate:
		return f.Private
	case ServiceShared:
		return f.Shared
	case ServicePremium:
		return f.Premium
	}
	return false
}

// OperatingHours restricts bookings to a daily window on given weekdays.
// Start and End are inclusive "HH:MM" times in the route's local time.
type OperatingHours struct {
	Start string         `json:"start"`
	End   string         `json:"end"`
	Days  []time.Weekday `json:"days"`
}

// OperatesOn reports whether the weekday is in the operating set.
func (h OperatingHours) OperatesOn(d time.Weekday) bool {
	for _, day := range h.Days {
		if day == d {
			return true
		}
	}
	return false
}

// MonthDayWindow is a recurring yearly window, inclusive on both ends.
// Start and End are "MM-DD". A window may wrap the year end (e.g. 11-01
// through 03-31).
type MonthDayWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether the date's month-day falls inside the window.
func (w MonthDayWindow) Contains(t time.Time) bool {
	md := t.Format("01-02")
	if w.Start <= w.End {
		return md >= w.Start && md <= w.End
	}
	// wrapping window
	return md >= w.Start || md <= w.End
}

// Route is a directed connection between two zones with its own
// operating rules.
type Route struct {
	ID          string          `json:"id"`
	FromZone    string          `json:"from_zone"`
	ToZone      string          `json:"to_zone"`
	DistanceKm  float64         `json:"distance_km"`
	DurationMin int             `json:"duration_min"`
	Active      bool            `json:"active"`
	Services    ServiceFlags    `json:"services"`
	Amenities   []string        `json:"amenities,omitempty"`
	Hours       OperatingHours  `json:"hours"`
	Season      *MonthDayWindow `json:"season,omitempty"`
	Peak        *MonthDayWindow `json:"peak,omitempty"`
}

// MinutesOfDay parses an "HH:MM" string into minutes since midnight.
func MinutesOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// WeekdaysAll covers every day of the week; routes that run daily use it.
var WeekdaysAll = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// Weekdays covers Monday through Friday.
var Weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
}
