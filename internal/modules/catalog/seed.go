// README: Built-in Fiji zone/route dataset used when no database is configured.
package catalog

// SeedZones returns the static zone table for the Fiji operation.
func SeedZones() []Zone {
	return []Zone{
		{ID: "nadi-airport", Name: "Nadi International Airport", Lat: -17.7554, Lng: 177.4434, RadiusKm: 3, Category: ZoneAirport, Amenities: []string{"meet_and_greet", "flight_tracking"}},
		{ID: "denarau", Name: "Denarau Island", Lat: -17.7726, Lng: 177.3762, RadiusKm: 4, Category: ZoneResort, Amenities: []string{"marina", "golf"}},
		{ID: "coral-coast", Name: "Coral Coast", Lat: -18.1674, Lng: 177.5357, RadiusKm: 25, Category: ZoneResort, Amenities: []string{"beach"}},
		{ID: "natadola", Name: "Natadola Bay", Lat: -18.0924, Lng: 177.3222, RadiusKm: 6, Category: ZoneResort, Amenities: []string{"beach", "golf"}},
		{ID: "momi-bay", Name: "Momi Bay", Lat: -17.9114, Lng: 177.2648, RadiusKm: 5, Category: ZoneResort, Amenities: []string{"beach"}},
		{ID: "pacific-harbour", Name: "Pacific Harbour", Lat: -18.2547, Lng: 178.0706, RadiusKm: 8, Category: ZoneResort, Amenities: []string{"adventure"}},
		{ID: "lautoka", Name: "Lautoka City", Lat: -17.6169, Lng: 177.4508, RadiusKm: 6, Category: ZoneCity, Amenities: []string{"port"}},
		{ID: "suva", Name: "Suva City", Lat: -18.1416, Lng: 178.4419, RadiusKm: 10, Category: ZoneCity, Amenities: []string{"port"}},
	}
}

// SeedRoutes returns the static route table. Operating hours are local Fiji
// times; the quote core treats request times as already local (no timezone
// conversion).
func SeedRoutes() []Route {
	return []Route{
		{
			ID: "nadi-airport-denarau", FromZone: "nadi-airport", ToZone: "denarau",
			DistanceKm: 9, DurationMin: 15, Active: true,
			Services:  ServiceFlags{Private: true, Shared: true, Premium: true, Accessible: true},
			Amenities: []string{"meet_and_greet", "bottled_water", "wifi"},
			Hours:     OperatingHours{Start: "00:00", End: "23:59", Days: WeekdaysAll},
		},
		{
			ID: "nadi-airport-lautoka", FromZone: "nadi-airport", ToZone: "lautoka",
			DistanceKm: 24, DurationMin: 30, Active: true,
			Services:  ServiceFlags{Private: true, Shared: true},
			Amenities: []string{"meet_and_greet"},
			Hours:     OperatingHours{Start: "05:00", End: "23:00", Days: WeekdaysAll},
		},
		{
			ID: "nadi-airport-natadola", FromZone: "nadi-airport", ToZone: "natadola",
			DistanceKm: 45, DurationMin: 50, Active: true,
			Services:  ServiceFlags{Private: true, Shared: true, Premium: true},
			Amenities: []string{"meet_and_greet", "bottled_water"},
			Hours:     OperatingHours{Start: "05:00", End: "22:00", Days: WeekdaysAll},
		},
		{
			ID: "nadi-airport-momi-bay", FromZone: "nadi-airport", ToZone: "momi-bay",
			DistanceKm: 38, DurationMin: 45, Active: true,
			Services:  ServiceFlags{Private: true, Premium: true},
			Amenities: []string{"meet_and_greet", "bottled_water"},
			Hours:     OperatingHours{Start: "06:00", End: "22:00", Days: WeekdaysAll},
		},
		{
			ID: "nadi-airport-coral-coast", FromZone: "nadi-airport", ToZone: "coral-coast",
			DistanceKm: 75, DurationMin: 80, Active: true,
			Services:  ServiceFlags{Private: true, Premium: true, Accessible: true},
			Amenities: []string{"meet_and_greet", "bottled_water", "wifi"},
			Hours:     OperatingHours{Start: "05:00", End: "22:00", Days: WeekdaysAll},
			Peak:      &MonthDayWindow{Start: "06-01", End: "09-30"},
		},
		{
			ID: "nadi-airport-pacific-harbour", FromZone: "nadi-airport", ToZone: "pacific-harbour",
			DistanceKm: 145, DurationMin: 150, Active: true,
			Services:  ServiceFlags{Private: true, Premium: true},
			Amenities: []string{"meet_and_greet", "bottled_water"},
			Hours:     OperatingHours{Start: "06:00", End: "18:00", Days: WeekdaysAll},
		},
		{
			ID: "nadi-airport-suva", FromZone: "nadi-airport", ToZone: "suva",
			DistanceKm: 192, DurationMin: 210, Active: true,
			Services:  ServiceFlags{Private: true},
			Amenities: []string{"meet_and_greet", "bottled_water"},
			Hours:     OperatingHours{Start: "06:00", End: "20:00", Days: Weekdays},
		},
		{
			ID: "denarau-coral-coast", FromZone: "denarau", ToZone: "coral-coast",
			DistanceKm: 82, DurationMin: 90, Active: true,
			Services:  ServiceFlags{Private: true},
			Amenities: []string{"bottled_water"},
			Hours:     OperatingHours{Start: "07:00", End: "19:00", Days: WeekdaysAll},
			// Dry-season scenic coastal run only.
			Season: &MonthDayWindow{Start: "05-01", End: "10-31"},
		},
		{
			// Retained for historical bookings; not currently operated.
			ID: "suva-pacific-harbour", FromZone: "suva", ToZone: "pacific-harbour",
			DistanceKm: 49, DurationMin: 55, Active: false,
			Services: ServiceFlags{Private: true},
			Hours:    OperatingHours{Start: "06:00", End: "20:00", Days: WeekdaysAll},
		},
	}
}
