// README: Pricing rule table and quote definitions.
package pricing

import (
	"errors"
	"time"

	"greentours/internal/modules/catalog"
	"greentours/internal/types"
)

var (
	ErrServiceUnavailable  = errors.New("service not available on this route")
	ErrNoPricing           = errors.New("no pricing configured for route and service")
	ErrCapacityExceeded    = errors.New("party size outside vehicle capacity")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidTime         = errors.New("invalid time")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrQuoteNotFound       = errors.New("quote not found or expired")
)

// GroupDiscount reduces the subtotal once the party reaches MinPassengers.
type GroupDiscount struct {
	MinPassengers int     `json:"min_passengers"`
	Percent       float64 `json:"percent"`
}

// Rule is the price configuration for one (route, service) pair. All
// amounts are FJD minor units.
type Rule struct {
	RouteID               string              `json:"route_id"`
	Service               catalog.ServiceType `json:"service"`
	BasePrice             int64               `json:"base_price"`
	AfterHoursSurcharge   int64               `json:"after_hours_surcharge"`
	HolidaySurcharge      int64               `json:"holiday_surcharge"` // fallback when the calendar entry carries no amount
	ChildSeatSurcharge    int64               `json:"child_seat_surcharge"`
	ExtraLuggageSurcharge int64               `json:"extra_luggage_surcharge"`
	LuggageIncluded       int                 `json:"luggage_included"`
	MinPassengers         int                 `json:"min_passengers"`
	MaxPassengers         int                 `json:"max_passengers"`
	MaxLuggage            int                 `json:"max_luggage"`
	GroupDiscount         *GroupDiscount      `json:"group_discount,omitempty"`
	// PeakMultiplier applies inside the route's peak window; values <= 1
	// disable it.
	PeakMultiplier float64 `json:"peak_multiplier,omitempty"`
}

// QuoteRequest is the party composition and timing for one calculation.
// Counts follow the data model: Passengers is the adult figure checked
// against capacity; Children and Infants ride on top of it, and infants
// never consume a seat allowance unless a child seat is requested.
type QuoteRequest struct {
	RouteID         string
	Service         catalog.ServiceType
	Passengers      int
	Children        int
	Infants         int
	Luggage         int
	ChildSeats      int
	Date            string // YYYY-MM-DD
	Time            string // HH:MM, local to the route
	HolidayOverride bool
	Currency        string // FJD|USD|AUD|NZD; empty means FJD
}

// Line is one itemized surcharge or discount. Discount amounts are negative.
type Line struct {
	Label  string      `json:"label"`
	Amount types.Money `json:"amount"`
}

// Quote is a computed, time-limited price breakdown. It is created fresh
// on every calculation and never mutated.
type Quote struct {
	ID         string              `json:"id"`
	RouteID    string              `json:"route_id"`
	Service    catalog.ServiceType `json:"service"`
	Base       types.Money         `json:"base"`
	Lines      []Line              `json:"lines"`
	Total      types.Money         `json:"total"`
	Currency   string              `json:"currency"`
	Breakdown  []string            `json:"breakdown"`
	ValidUntil time.Time           `json:"valid_until"`
}
