package catalog

import (
	"errors"
	"testing"
	"time"
)

func TestMonthDayWindow_Contains(t *testing.T) {
	tests := []struct {
		name   string
		window MonthDayWindow
		date   time.Time
		want   bool
	}{
		{"inside plain window", MonthDayWindow{"06-01", "09-30"}, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC), true},
		{"start boundary", MonthDayWindow{"06-01", "09-30"}, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{"end boundary", MonthDayWindow{"06-01", "09-30"}, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), true},
		{"before window", MonthDayWindow{"06-01", "09-30"}, time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC), false},
		{"after window", MonthDayWindow{"06-01", "09-30"}, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), false},
		{"wrapping window december", MonthDayWindow{"11-01", "03-31"}, time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC), true},
		{"wrapping window february", MonthDayWindow{"11-01", "03-31"}, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), true},
		{"wrapping window gap", MonthDayWindow{"11-01", "03-31"}, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.Contains(tt.date); got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.date.Format("01-02"), got, tt.want)
			}
		})
	}
}

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"05:29", 329, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"7:5", 0, true},
		{"noon", 0, true},
	}
	for _, tt := range tests {
		got, err := MinutesOfDay(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("MinutesOfDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("MinutesOfDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseServiceType(t *testing.T) {
	for _, valid := range []string{"private", "shared", "premium"} {
		if _, err := ParseServiceType(valid); err != nil {
			t.Errorf("ParseServiceType(%q) error = %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "luxury", "Private"} {
		if _, err := ParseServiceType(invalid); err == nil {
			t.Errorf("ParseServiceType(%q) should fail", invalid)
		}
	}
}

func TestServiceFlags_Eligible(t *testing.T) {
	f := ServiceFlags{Private: true, Premium: true}
	if !f.Eligible(ServicePrivate) || !f.Eligible(ServicePremium) {
		t.Error("expected private and premium to be eligible")
	}
	if f.Eligible(ServiceShared) {
		t.Error("shared should not be eligible")
	}
	if f.Eligible(ServiceType("luxury")) {
		t.Error("unknown tiers are never eligible")
	}
}

func TestOperatingHours_OperatesOn(t *testing.T) {
	h := OperatingHours{Start: "06:00", End: "20:00", Days: Weekdays}
	if !h.OperatesOn(time.Monday) || !h.OperatesOn(time.Friday) {
		t.Error("weekday route should operate Monday and Friday")
	}
	if h.OperatesOn(time.Saturday) || h.OperatesOn(time.Sunday) {
		t.Error("weekday route should rest on the weekend")
	}
}

func TestCatalog_Lookups(t *testing.T) {
	c := New(SeedZones(), SeedRoutes())

	z, err := c.Zone("denarau")
	if err != nil {
		t.Fatalf("Zone() error = %v", err)
	}
	if z.Name != "Denarau Island" {
		t.Errorf("Zone name = %q", z.Name)
	}
	if _, err := c.Zone("atlantis"); !errors.Is(err, ErrZoneNotFound) {
		t.Errorf("Zone() error = %v, want ErrZoneNotFound", err)
	}

	r, err := c.Route("nadi-airport-denarau")
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}
	if r.FromZone != "nadi-airport" || r.ToZone != "denarau" {
		t.Errorf("Route endpoints = %s -> %s", r.FromZone, r.ToZone)
	}
	if _, err := c.Route("nowhere"); !errors.Is(err, ErrRouteNotFound) {
		t.Errorf("Route() error = %v, want ErrRouteNotFound", err)
	}

	if got := len(c.Zones()); got != len(SeedZones()) {
		t.Errorf("Zones() len = %d, want %d", got, len(SeedZones()))
	}
	if got := len(c.Routes()); got != len(SeedRoutes()) {
		t.Errorf("Routes() len = %d, want %d", got, len(SeedRoutes()))
	}
}
