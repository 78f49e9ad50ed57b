// README: Availability resolver; enumerates bookable slots from operating hours.
package availability

import (
	"context"
	"fmt"
	"time"

	"greentours/internal/modules/catalog"
	"greentours/internal/modules/pricing"
)

// Service resolves day availability against the catalog's operating rules.
// It holds no booking state; every answer is recomputed per request.
type Service struct {
	catalog     *catalog.Catalog
	pricing     *pricing.Service
	intervalMin int
}

func NewService(cat *catalog.Catalog, pricingSvc *pricing.Service, intervalMin int) *Service {
	if intervalMin <= 0 {
		intervalMin = 60
	}
	return &Service{catalog: cat, pricing: pricingSvc, intervalMin: intervalMin}
}

// Slots enumerates the day's departure slots for a route/service pair.
// A route that does not operate on the date (weekday or season) yields
// Available=false with an empty slot list.
func (s *Service) Slots(ctx context.Context, routeID string, svc catalog.ServiceType, dateStr string) (*Day, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, pricing.ErrInvalidDate
	}
	route, err := s.catalog.Route(routeID)
	if err != nil {
		return nil, err
	}
	if !route.Active {
		return nil, catalog.ErrRouteNotFound
	}
	if !route.Services.Eligible(svc) {
		return nil, pricing.ErrServiceUnavailable
	}
	rule, err := s.pricing.Rule(routeID, svc)
	if err != nil {
		return nil, err
	}

	day := &Day{RouteID: routeID, Service: string(svc), Date: dateStr, Slots: []Slot{}}
	if !route.Hours.OperatesOn(date.Weekday()) {
		return day, nil
	}
	if route.Season != nil && !route.Season.Contains(date) {
		return day, nil
	}

	start, err := catalog.MinutesOfDay(route.Hours.Start)
	if err != nil {
		return nil, pricing.ErrInvalidTime
	}
	end, err := catalog.MinutesOfDay(route.Hours.End)
	if err != nil {
		return nil, pricing.ErrInvalidTime
	}

	for m := start; m <= end; m += s.intervalMin {
		hhmm := fmt.Sprintf("%02d:%02d", m/60, m%60)
		price, err := s.pricing.PriceAt(ctx, routeID, svc, date, hhmm)
		if err != nil {
			return nil, err
		}
		day.Slots = append(day.Slots, Slot{
			Time:      hhmm,
			Available: true,
			Price:     price,
			Capacity:  rule.MaxPassengers,
			Remaining: rule.MaxPassengers,
		})
	}
	day.Available = len(day.Slots) > 0
	return day, nil
}

// IsServiceAvailable answers whether one specific departure time is
// bookable, without generating the full slot list.
func (s *Service) IsServiceAvailable(_ context.Context, routeID string, svc catalog.ServiceType, dateStr, hhmm string) (bool, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return false, pricing.ErrInvalidDate
	}
	minutes, err := catalog.MinutesOfDay(hhmm)
	if err != nil {
		return false, pricing.ErrInvalidTime
	}
	route, err := s.catalog.Route(routeID)
	if err != nil {
		return false, err
	}
	if !route.Active || !route.Services.Eligible(svc) {
		return false, nil
	}
	if !route.Hours.OperatesOn(date.Weekday()) {
		return false, nil
	}
	if route.Season != nil && !route.Season.Contains(date) {
		return false, nil
	}
	start, err := catalog.MinutesOfDay(route.Hours.Start)
	if err != nil {
		return false, pricing.ErrInvalidTime
	}
	end, err := catalog.MinutesOfDay(route.Hours.End)
	if err != nil {
		return false, pricing.ErrInvalidTime
	}
	return minutes >= start && minutes <= end, nil
}
