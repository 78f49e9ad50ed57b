// README: Catalog search; conjunctive filtering over routes, rules, and availability.
package search

import (
	"context"
	"time"

	"greentours/internal/modules/availability"
	"greentours/internal/modules/catalog"
	"greentours/internal/modules/pricing"
	"greentours/internal/types"
)

// Filters are all optional; absent fields impose no constraint. Filtering
// is conjunctive across every provided field.
type Filters struct {
	FromZone   string
	ToZone     string
	Date       string // YYYY-MM-DD
	Time       string // HH:MM, only meaningful with Date
	Passengers int
	Children   int
	Infants    int
	Service    catalog.ServiceType
	Amenities  []string
	MaxPrice   int64 // minor units in Currency
	Currency   string
}

// Result is one bookable (route, service) pair that passed every filter.
type Result struct {
	RouteID     string      `json:"route_id"`
	FromZone    string      `json:"from_zone"`
	FromName    string      `json:"from_name"`
	ToZone      string      `json:"to_zone"`
	ToName      string      `json:"to_name"`
	Service     string      `json:"service"`
	Price       types.Money `json:"price"`
	DistanceKm  float64     `json:"distance_km"`
	DurationMin int         `json:"duration_min"`
	Amenities   []string    `json:"amenities,omitempty"`
}

type Service struct {
	catalog      *catalog.Catalog
	pricing      *pricing.Service
	availability *availability.Service
}

func NewService(cat *catalog.Catalog, pricingSvc *pricing.Service, availSvc *availability.Service) *Service {
	return &Service{catalog: cat, pricing: pricingSvc, availability: availSvc}
}

// Search returns every (route, service) pair satisfying all provided
// filters. Children and infant counts ride along for pricing context but
// do not constrain capacity; only the adult passenger figure does.
func (s *Service) Search(ctx context.Context, f Filters) ([]Result, error) {
	currency := f.Currency
	if currency == "" {
		currency = "FJD"
	}
	if !pricing.SupportedCurrency(currency) {
		return nil, pricing.ErrUnsupportedCurrency
	}

	var date time.Time
	if f.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", f.Date)
		if err != nil {
			return nil, pricing.ErrInvalidDate
		}
	}

	results := []Result{}
	for _, route := range s.catalog.Routes() {
		if !route.Active {
			continue
		}
		if f.FromZone != "" && route.FromZone != f.FromZone {
			continue
		}
		if f.ToZone != "" && route.ToZone != f.ToZone {
			continue
		}
		if !containsAll(route.Amenities, f.Amenities) {
			continue
		}
		for _, svc := range candidateServices(route, f.Service) {
			rule, err := s.pricing.Rule(route.ID, svc)
			if err != nil {
				continue // eligible but unpriced pairs never match
			}
			if f.Passengers > 0 && (f.Passengers < rule.MinPassengers || f.Passengers > rule.MaxPassengers) {
				continue
			}

			price := types.Money{Amount: rule.BasePrice, Currency: "FJD"}
			if f.Date != "" {
				if f.Time != "" {
					ok, err := s.availability.IsServiceAvailable(ctx, route.ID, svc, f.Date, f.Time)
					if err != nil {
						return nil, err
					}
					if !ok {
						continue
					}
					price, err = s.pricing.PriceAt(ctx, route.ID, svc, date, f.Time)
					if err != nil {
						return nil, err
					}
				} else {
					if !route.Hours.OperatesOn(date.Weekday()) {
						continue
					}
					if route.Season != nil && !route.Season.Contains(date) {
						continue
					}
				}
			}

			price, err = pricing.Convert(price, currency)
			if err != nil {
				return nil, err
			}
			if f.MaxPrice > 0 && price.Amount > f.MaxPrice {
				continue
			}

			fromName, toName := route.FromZone, route.ToZone
			if z, err := s.catalog.Zone(route.FromZone); err == nil {
				fromName = z.Name
			}
			if z, err := s.catalog.Zone(route.ToZone); err == nil {
				toName = z.Name
			}
			results = append(results, Result{
				RouteID:     route.ID,
				FromZone:    route.FromZone,
				FromName:    fromName,
				ToZone:      route.ToZone,
				ToName:      toName,
				Service:     string(svc),
				Price:       price,
				DistanceKm:  route.DistanceKm,
				DurationMin: route.DurationMin,
				Amenities:   route.Amenities,
			})
		}
	}
	return results, nil
}

func candidateServices(route catalog.Route, requested catalog.ServiceType) []catalog.ServiceType {
	all := []catalog.ServiceType{catalog.ServicePrivate, catalog.ServiceShared, catalog.ServicePremium}
	var out []catalog.ServiceType
	for _, svc := range all {
		if requested != "" && svc != requested {
			continue
		}
		if route.Services.Eligible(svc) {
			out = append(out, svc)
		}
	}
	return out
}

// containsAll reports whether have is a superset of want.
func containsAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
