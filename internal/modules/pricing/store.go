// README: Pricing rule store backed by PostgreSQL; loaded once at startup.
package pricing

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"greentours/internal/modules/catalog"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Load(ctx context.Context) ([]Rule, error) {
	rows, err := s.db.Query(ctx, `
		SELECT route_id, service, base_price, after_hours_surcharge,
		       holiday_surcharge, child_seat_surcharge, extra_luggage_surcharge,
		       luggage_included, min_passengers, max_passengers, max_luggage,
		       group_min_passengers, group_discount_percent, peak_multiplier
		FROM pricing_rules
		ORDER BY route_id, service`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []Rule
	for rows.Next() {
		var r Rule
		var service string
		var groupMin *int
		var groupPct, peakMult *float64
		err := rows.Scan(
			&r.RouteID, &service, &r.BasePrice, &r.AfterHoursSurcharge,
			&r.HolidaySurcharge, &r.ChildSeatSurcharge, &r.ExtraLuggageSurcharge,
			&r.LuggageIncluded, &r.MinPassengers, &r.MaxPassengers, &r.MaxLuggage,
			&groupMin, &groupPct, &peakMult,
		)
		if err != nil {
			return nil, err
		}
		r.Service = catalog.ServiceType(service)
		if groupMin != nil && groupPct != nil {
			r.GroupDiscount = &GroupDiscount{MinPassengers: *groupMin, Percent: *groupPct}
		}
		if peakMult != nil {
			r.PeakMultiplier = *peakMult
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}
