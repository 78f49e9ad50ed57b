package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"greentours/internal/config"
	"greentours/internal/modules/catalog"
	"greentours/internal/modules/holiday"
	"greentours/internal/modules/pricing"
)

func newTestService(intervalMin int) *Service {
	cat := catalog.New(catalog.SeedZones(), catalog.SeedRoutes())
	cal := holiday.NewCalendar(holiday.Seed())
	p := pricing.NewService(cat, pricing.SeedRules(), cal, nil, config.QuoteConfig{ValidFor: 24 * time.Hour})
	return NewService(cat, p, intervalMin)
}

func TestService_Slots_AllDayRoute(t *testing.T) {
	s := newTestService(60)
	// 00:00..23:59 hourly -> 24 departures, 00:00 through 23:00.
	day, err := s.Slots(context.Background(), "nadi-airport-denarau", catalog.ServicePrivate, "2026-03-10")
	if err != nil {
		t.Fatalf("Slots() error = %v", err)
	}
	if !day.Available {
		t.Error("expected the day to be available")
	}
	if len(day.Slots) != 24 {
		t.Fatalf("slot count = %d, want 24", len(day.Slots))
	}
	if day.Slots[0].Time != "00:00" || day.Slots[23].Time != "23:00" {
		t.Errorf("slot range = %s..%s", day.Slots[0].Time, day.Slots[23].Time)
	}

	// Slot pricing follows the after-hours window: 00:00 is surcharged,
	// midday is the bare base fare.
	if got := day.Slots[0].Price.Amount; got != 11000 {
		t.Errorf("00:00 price = %d, want 11000", got)
	}
	if got := day.Slots[12].Price.Amount; got != 8500 {
		t.Errorf("12:00 price = %d, want 8500", got)
	}

	for _, slot := range day.Slots {
		if !slot.Available {
			t.Errorf("slot %s not available", slot.Time)
		}
		if slot.Capacity != 7 || slot.Remaining != 7 {
			t.Errorf("slot %s capacity/remaining = %d/%d, want 7/7", slot.Time, slot.Capacity, slot.Remaining)
		}
	}
}

func TestService_Slots_WeekdayRestriction(t *testing.T) {
	s := newTestService(60)
	// nadi-airport-suva runs Monday through Friday; 2026-03-14 is a Saturday.
	day, err := s.Slots(context.Background(), "nadi-airport-suva", catalog.ServicePrivate, "2026-03-14")
	if err != nil {
		t.Fatalf("Slots() error = %v", err)
	}
	if day.Available || len(day.Slots) != 0 {
		t.Errorf("Saturday should yield no slots, got available=%v slots=%d", day.Available, len(day.Slots))
	}

	// The Monday before is a working day.
	day, err = s.Slots(context.Background(), "nadi-airport-suva", catalog.ServicePrivate, "2026-03-09")
	if err != nil {
		t.Fatalf("Slots() error = %v", err)
	}
	if !day.Available {
		t.Error("Monday should be available")
	}
	// 06:00..20:00 hourly -> 15 departures.
	if len(day.Slots) != 15 {
		t.Errorf("slot count = %d, want 15", len(day.Slots))
	}
}

func TestService_Slots_SeasonalWindow(t *testing.T) {
	s := newTestService(60)
	// denarau-coral-coast only runs 05-01 through 10-31.
	day, err := s.Slots(context.Background(), "denarau-coral-coast", catalog.ServicePrivate, "2026-03-10")
	if err != nil {
		t.Fatalf("Slots() error = %v", err)
	}
	if day.Available || len(day.Slots) != 0 {
		t.Error("out-of-season date should yield no slots")
	}

	day, err = s.Slots(context.Background(), "denarau-coral-coast", catalog.ServicePrivate, "2026-07-15")
	if err != nil {
		t.Fatalf("Slots() error = %v", err)
	}
	// 07:00..19:00 hourly -> 13 departures.
	if !day.Available || len(day.Slots) != 13 {
		t.Errorf("in-season day = available %v with %d slots, want 13", day.Available, len(day.Slots))
	}
}

func TestService_Slots_Interval(t *testing.T) {
	s := newTestService(30)
	// nadi-airport-lautoka 05:00..23:00 every 30 min -> 37 departures.
	day, err := s.Slots(context.Background(), "nadi-airport-lautoka", catalog.ServicePrivate, "2026-03-10")
	if err != nil {
		t.Fatalf("Slots() error = %v", err)
	}
	if len(day.Slots) != 37 {
		t.Errorf("slot count = %d, want 37", len(day.Slots))
	}
	if day.Slots[1].Time != "05:30" {
		t.Errorf("second slot = %s, want 05:30", day.Slots[1].Time)
	}
}

func TestService_Slots_Errors(t *testing.T) {
	s := newTestService(60)
	ctx := context.Background()

	if _, err := s.Slots(ctx, "nowhere", catalog.ServicePrivate, "2026-03-10"); !errors.Is(err, catalog.ErrRouteNotFound) {
		t.Errorf("unknown route error = %v", err)
	}
	if _, err := s.Slots(ctx, "nadi-airport-coral-coast", catalog.ServiceShared, "2026-03-10"); !errors.Is(err, pricing.ErrServiceUnavailable) {
		t.Errorf("ineligible service error = %v", err)
	}
	if _, err := s.Slots(ctx, "suva-pacific-harbour", catalog.ServicePrivate, "2026-03-10"); !errors.Is(err, catalog.ErrRouteNotFound) {
		t.Errorf("inactive route error = %v", err)
	}
	if _, err := s.Slots(ctx, "nadi-airport-momi-bay", catalog.ServicePremium, "2026-03-10"); !errors.Is(err, pricing.ErrNoPricing) {
		t.Errorf("unpriced pair error = %v", err)
	}
	if _, err := s.Slots(ctx, "nadi-airport-denarau", catalog.ServicePrivate, "next tuesday"); !errors.Is(err, pricing.ErrInvalidDate) {
		t.Errorf("bad date error = %v", err)
	}
}

func TestService_IsServiceAvailable(t *testing.T) {
	s := newTestService(60)
	ctx := context.Background()

	tests := []struct {
		name    string
		routeID string
		svc     catalog.ServiceType
		date    string
		hhmm    string
		want    bool
	}{
		{"inside operating hours", "nadi-airport-lautoka", catalog.ServicePrivate, "2026-03-10", "12:00", true},
		{"start boundary", "nadi-airport-lautoka", catalog.ServicePrivate, "2026-03-10", "05:00", true},
		{"end boundary", "nadi-airport-lautoka", catalog.ServicePrivate, "2026-03-10", "23:00", true},
		{"before opening", "nadi-airport-lautoka", catalog.ServicePrivate, "2026-03-10", "04:59", false},
		{"after closing", "nadi-airport-lautoka", catalog.ServicePrivate, "2026-03-10", "23:01", false},
		{"weekday-only route on Saturday", "nadi-airport-suva", catalog.ServicePrivate, "2026-03-14", "12:00", false},
		{"seasonal route out of season", "denarau-coral-coast", catalog.ServicePrivate, "2026-03-10", "12:00", false},
		{"seasonal route in season", "denarau-coral-coast", catalog.ServicePrivate, "2026-07-15", "12:00", true},
		{"ineligible service", "nadi-airport-suva", catalog.ServiceShared, "2026-03-09", "12:00", false},
		{"inactive route", "suva-pacific-harbour", catalog.ServicePrivate, "2026-03-10", "12:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.IsServiceAvailable(ctx, tt.routeID, tt.svc, tt.date, tt.hhmm)
			if err != nil {
				t.Fatalf("IsServiceAvailable() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsServiceAvailable() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := s.IsServiceAvailable(ctx, "nadi-airport-lautoka", catalog.ServicePrivate, "2026-03-10", "noon"); !errors.Is(err, pricing.ErrInvalidTime) {
		t.Errorf("bad time error = %v", err)
	}
}
