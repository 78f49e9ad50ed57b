// README: Catalog store backed by PostgreSQL; loaded once at startup.
package catalog

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Load reads the full zone and route tables. The result feeds New; nothing
// is re-read after startup.
func (s *Store) Load(ctx context.Context) ([]Zone, []Route, error) {
	zones, err := s.loadZones(ctx)
	if err != nil {
		return nil, nil, err
	}
	routes, err := s.loadRoutes(ctx)
	if err != nil {
		return nil, nil, err
	}
	return zones, routes, nil
}

func (s *Store) loadZones(ctx context.Context) ([]Zone, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, lat, lng, radius_km, category, amenities
		FROM zones
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []Zone
	for rows.Next() {
		var z Zone
		var category, amenities string
		if err := rows.Scan(&z.ID, &z.Name, &z.Lat, &z.Lng, &z.RadiusKm, &category, &amenities); err != nil {
			return nil, err
		}
		z.Category = ZoneCategory(category)
		z.Amenities = splitCSV(amenities)
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

func (s *Store) loadRoutes(ctx context.Context) ([]Route, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, from_zone, to_zone, distance_km, duration_min, active,
		       svc_private, svc_shared, svc_premium, svc_accessible,
		       amenities, hours_start, hours_end, days,
		       season_start, season_end, peak_start, peak_end
		FROM routes
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []Route
	for rows.Next() {
		var r Route
		var amenities, days string
		var seasonStart, seasonEnd, peakStart, peakEnd *string
		err := rows.Scan(
			&r.ID, &r.FromZone, &r.ToZone, &r.DistanceKm, &r.DurationMin, &r.Active,
			&r.Services.Private, &r.Services.Shared, &r.Services.Premium, &r.Services.Accessible,
			&amenities, &r.Hours.Start, &r.Hours.End, &days,
			&seasonStart, &seasonEnd, &peakStart, &peakEnd,
		)
		if err != nil {
			return nil, err
		}
		r.Amenities = splitCSV(amenities)
		r.Hours.Days = parseDays(days)
		if seasonStart != nil && seasonEnd != nil {
			r.Season = &MonthDayWindow{Start: *seasonStart, End: *seasonEnd}
		}
		if peakStart != nil && peakEnd != nil {
			r.Peak = &MonthDayWindow{Start: *peakStart, End: *peakEnd}
		}
		routes = append(routes, r)
	}
	return routes, rows.Err()
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseDays decodes a CSV of weekday numbers (0=Sunday .. 6=Saturday).
func parseDays(s string) []time.Weekday {
	var days []time.Weekday
	for _, p := range splitCSV(s) {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 6 {
			continue
		}
		days = append(days, time.Weekday(n))
	}
	return days
}
