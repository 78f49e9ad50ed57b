// README: Quote calculator; pure computation over immutable configuration.
package pricing

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"greentours/internal/config"
	"greentours/internal/modules/catalog"
	"greentours/internal/modules/holiday"
	"greentours/internal/types"
)

const baseCurrency = "FJD"

// currencyRates are static FJD conversion rates for quote display. Real
// settlement happens in the hosted checkout, which applies its own rates.
var currencyRates = map[string]float64{
	"FJD": 1.0,
	"USD": 0.44,
	"AUD": 0.67,
	"NZD": 0.72,
}

// After-hours window, inclusive on both ends: 22:00 through 05:29.
const (
	afterHoursFrom = 22 * 60
	afterHoursTo   = 5*60 + 29
)

type ruleKey struct {
	routeID string
	service catalog.ServiceType
}

// Service computes quotes. All lookups go against indexes built once at
// startup; Calculate itself performs no I/O beyond the optional quote cache.
type Service struct {
	catalog  *catalog.Catalog
	rules    map[ruleKey]Rule
	calendar *holiday.Calendar
	cache    *QuoteCache
	cfg      config.QuoteConfig
}

// NewService indexes the rule table. cache may be nil; quotes are then not
// re-fetchable by id.
func NewService(cat *catalog.Catalog, rules []Rule, cal *holiday.Calendar, cache *QuoteCache, cfg config.QuoteConfig) *Service {
	idx := make(map[ruleKey]Rule, len(rules))
	for _, r := range rules {
		idx[ruleKey{r.RouteID, r.Service}] = r
	}
	return &Service{catalog: cat, rules: idx, calendar: cal, cache: cache, cfg: cfg}
}

// Rule returns the pricing rule for a (route, service) pair.
func (s *Service) Rule(routeID string, svc catalog.ServiceType) (Rule, error) {
	r, ok := s.rules[ruleKey{routeID, svc}]
	if !ok {
		return Rule{}, ErrNoPricing
	}
	return r, nil
}

// Calculate produces an itemized quote for the request, or a typed error
// describing why no quote is possible.
func (s *Service) Calculate(ctx context.Context, req QuoteRequest) (*Quote, error) {
	q, err := s.compute(req)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		// Best effort: a cache failure never fails the quote.
		_ = s.cache.Put(ctx, q, s.cfg.ValidFor)
	}
	return q, nil
}

func (s *Service) compute(req QuoteRequest) (*Quote, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	minutes, err := catalog.MinutesOfDay(req.Time)
	if err != nil {
		return nil, ErrInvalidTime
	}

	route, err := s.catalog.Route(req.RouteID)
	if err != nil {
		return nil, err
	}
	if !route.Active {
		// Inactive routes are indistinguishable from absent ones.
		return nil, catalog.ErrRouteNotFound
	}
	if !route.Services.Eligible(req.Service) {
		return nil, ErrServiceUnavailable
	}
	rule, err := s.Rule(req.RouteID, req.Service)
	if err != nil {
		return nil, err
	}
	if req.Passengers < rule.MinPassengers || req.Passengers > rule.MaxPassengers {
		return nil, ErrCapacityExceeded
	}
	if req.Luggage > rule.MaxLuggage {
		return nil, ErrCapacityExceeded
	}

	currency := req.Currency
	if currency == "" {
		currency = baseCurrency
	}
	if _, ok := currencyRates[currency]; !ok {
		return nil, ErrUnsupportedCurrency
	}

	base := types.Money{Amount: rule.BasePrice, Currency: baseCurrency}
	subtotal := base.Amount
	var lines []Line

	addLine := func(label string, amount int64) {
		lines = append(lines, Line{Label: label, Amount: types.Money{Amount: amount, Currency: baseCurrency}})
		subtotal += amount
	}

	if minutes >= afterHoursFrom || minutes <= afterHoursTo {
		addLine("After-hours surcharge (22:00 to 05:29)", rule.AfterHoursSurcharge)
	}

	if h, ok := s.calendar.Lookup(date); ok {
		amount := h.Surcharge
		if amount == 0 {
			amount = rule.HolidaySurcharge
		}
		addLine(fmt.Sprintf("Public holiday surcharge (%s)", h.Name), amount)
	} else if req.HolidayOverride {
		addLine("Public holiday surcharge", rule.HolidaySurcharge)
	}

	if req.ChildSeats > 0 {
		addLine(fmt.Sprintf("Child seats x%d", req.ChildSeats),
			rule.ChildSeatSurcharge*int64(req.ChildSeats))
	}
	if extra := req.Luggage - rule.LuggageIncluded; extra > 0 {
		addLine(fmt.Sprintf("Extra luggage x%d", extra),
			rule.ExtraLuggageSurcharge*int64(extra))
	}

	// Peak multiplier applies to base plus surcharges; the group discount
	// comes after so peak premiums are never double-discounted.
	if route.Peak != nil && rule.PeakMultiplier > 1 && route.Peak.Contains(date) {
		delta := types.RoundHalfUp(float64(subtotal)*rule.PeakMultiplier) - subtotal
		addLine(fmt.Sprintf("Peak season (x%.2f)", rule.PeakMultiplier), delta)
	}

	if gd := rule.GroupDiscount; gd != nil && req.Passengers >= gd.MinPassengers {
		discount := types.RoundHalfUp(float64(subtotal) * gd.Percent / 100)
		addLine(fmt.Sprintf("Group discount (%.0f%%)", gd.Percent), -discount)
	}

	// Convert per component so the lines always sum to the total in the
	// quoted currency.
	rate := currencyRates[currency]
	if currency != baseCurrency {
		base = types.Money{Amount: types.RoundHalfUp(float64(base.Amount) * rate), Currency: currency}
		for i := range lines {
			lines[i].Amount = types.Money{
				Amount:   types.RoundHalfUp(float64(lines[i].Amount.Amount) * rate),
				Currency: currency,
			}
		}
	}
	total := base
	for _, l := range lines {
		total = total.Add(l.Amount)
	}

	q := &Quote{
		ID:         newID(),
		RouteID:    req.RouteID,
		Service:    req.Service,
		Base:       base,
		Lines:      lines,
		Total:      total,
		Currency:   currency,
		ValidUntil: time.Now().UTC().Add(s.cfg.ValidFor),
	}
	q.Breakdown = breakdown(q)
	return q, nil
}

// PriceAt computes the total price for a bare booking (minimum party, no
// extras) at the given slot time, in FJD. Availability and search use it
// to price slots without minting cacheable quotes.
func (s *Service) PriceAt(_ context.Context, routeID string, svc catalog.ServiceType, date time.Time, hhmm string) (types.Money, error) {
	rule, err := s.Rule(routeID, svc)
	if err != nil {
		return types.Money{}, err
	}
	q, err := s.compute(QuoteRequest{
		RouteID:    routeID,
		Service:    svc,
		Passengers: rule.MinPassengers,
		Date:       date.Format("2006-01-02"),
		Time:       hhmm,
	})
	if err != nil {
		return types.Money{}, err
	}
	return q.Total, nil
}

// Cached re-fetches a previously calculated quote by id.
func (s *Service) Cached(ctx context.Context, id string) (*Quote, error) {
	if s.cache == nil {
		return nil, ErrQuoteNotFound
	}
	return s.cache.Get(ctx, id)
}

// Convert applies the static rate table to a FJD amount.
func Convert(m types.Money, currency string) (types.Money, error) {
	rate, ok := currencyRates[currency]
	if !ok {
		return types.Money{}, ErrUnsupportedCurrency
	}
	if currency == m.Currency {
		return m, nil
	}
	return types.Money{Amount: types.RoundHalfUp(float64(m.Amount) * rate), Currency: currency}, nil
}

// SupportedCurrency reports whether the code is in the rate table.
func SupportedCurrency(code string) bool {
	_, ok := currencyRates[code]
	return ok
}

func breakdown(q *Quote) []string {
	out := make([]string, 0, len(q.Lines)+2)
	out = append(out, fmt.Sprintf("Base fare: %s", q.Base))
	for _, l := range q.Lines {
		prefix := "+"
		if l.Amount.Amount < 0 {
			prefix = "" // the amount renders its own sign
		}
		out = append(out, fmt.Sprintf("%s: %s%s", l.Label, prefix, l.Amount))
	}
	out = append(out, fmt.Sprintf("Total: %s", q.Total))
	return out
}

func newID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
