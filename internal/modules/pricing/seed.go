// README: Built-in pricing rule table used when no database is configured.
package pricing

import "greentours/internal/modules/catalog"

// SeedRules returns the static rule table. Amounts are FJD minor units.
func SeedRules() []Rule {
	return []Rule{
		{
			RouteID: "nadi-airport-denarau", Service: catalog.ServicePrivate,
			BasePrice: 8500, AfterHoursSurcharge: 2500, HolidaySurcharge: 2000,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 2,
			MinPassengers: 1, MaxPassengers: 7, MaxLuggage: 10,
			GroupDiscount: &GroupDiscount{MinPassengers: 5, Percent: 10},
		},
		{
			RouteID: "nadi-airport-denarau", Service: catalog.ServiceShared,
			BasePrice: 3500, AfterHoursSurcharge: 1500, HolidaySurcharge: 1000,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 1,
			MinPassengers: 1, MaxPassengers: 12, MaxLuggage: 12,
		},
		{
			RouteID: "nadi-airport-denarau", Service: catalog.ServicePremium,
			BasePrice: 16000, AfterHoursSurcharge: 3000, HolidaySurcharge: 2500,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 4,
			MinPassengers: 1, MaxPassengers: 4, MaxLuggage: 6,
		},
		{
			RouteID: "nadi-airport-lautoka", Service: catalog.ServicePrivate,
			BasePrice: 9500, AfterHoursSurcharge: 2500, HolidaySurcharge: 2000,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 2,
			MinPassengers: 1, MaxPassengers: 7, MaxLuggage: 10,
			GroupDiscount: &GroupDiscount{MinPassengers: 5, Percent: 10},
		},
		{
			RouteID: "nadi-airport-lautoka", Service: catalog.ServiceShared,
			BasePrice: 4000, AfterHoursSurcharge: 1500, HolidaySurcharge: 1000,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 1,
			MinPassengers: 1, MaxPassengers: 12, MaxLuggage: 12,
		},
		{
			RouteID: "nadi-airport-natadola", Service: catalog.ServicePrivate,
			BasePrice: 14000, AfterHoursSurcharge: 3000, HolidaySurcharge: 2000,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 3,
			MinPassengers: 1, MaxPassengers: 7, MaxLuggage: 10,
			GroupDiscount: &GroupDiscount{MinPassengers: 5, Percent: 10},
		},
		{
			RouteID: "nadi-airport-natadola", Service: catalog.ServiceShared,
			BasePrice: 5500, AfterHoursSurcharge: 2000, HolidaySurcharge: 1500,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 1,
			MinPassengers: 1, MaxPassengers: 12, MaxLuggage: 12,
		},
		{
			RouteID: "nadi-airport-natadola", Service: catalog.ServicePremium,
			BasePrice: 26000, AfterHoursSurcharge: 4000, HolidaySurcharge: 3000,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 4,
			MinPassengers: 1, MaxPassengers: 4, MaxLuggage: 6,
		},
		{
			RouteID: "nadi-airport-momi-bay", Service: catalog.ServicePrivate,
			BasePrice: 12500, AfterHoursSurcharge: 3000, HolidaySurcharge: 2000,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 3,
			MinPassengers: 1, MaxPassengers: 7, MaxLuggage: 10,
		},
		// nadi-airport-momi-bay premium is eligible but awaiting a signed
		// rate card; quoting it returns ErrNoPricing until the rule lands.
		{
			RouteID: "nadi-airport-coral-coast", Service: catalog.ServicePrivate,
			BasePrice: 21000, AfterHoursSurcharge: 4000, HolidaySurcharge: 2500,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 3,
			MinPassengers: 1, MaxPassengers: 7, MaxLuggage: 12,
			GroupDiscount:  &GroupDiscount{MinPassengers: 6, Percent: 8},
			PeakMultiplier: 1.25,
		},
		{
			RouteID: "nadi-airport-coral-coast", Service: catalog.ServicePremium,
			BasePrice: 38000, AfterHoursSurcharge: 5000, HolidaySurcharge: 3500,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 4,
			MinPassengers: 1, MaxPassengers: 4, MaxLuggage: 8,
			PeakMultiplier: 1.25,
		},
		{
			RouteID: "nadi-airport-pacific-harbour", Service: catalog.ServicePrivate,
			BasePrice: 32000, AfterHoursSurcharge: 5000, HolidaySurcharge: 3000,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 3,
			MinPassengers: 1, MaxPassengers: 7, MaxLuggage: 12,
			GroupDiscount: &GroupDiscount{MinPassengers: 5, Percent: 10},
		},
		{
			RouteID: "nadi-airport-pacific-harbour", Service: catalog.ServicePremium,
			BasePrice: 52000, AfterHoursSurcharge: 6000, HolidaySurcharge: 4000,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 4,
			MinPassengers: 1, MaxPassengers: 4, MaxLuggage: 8,
		},
		{
			RouteID: "nadi-airport-suva", Service: catalog.ServicePrivate,
			BasePrice: 39000, AfterHoursSurcharge: 6000, HolidaySurcharge: 3500,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 3,
			MinPassengers: 1, MaxPassengers: 7, MaxLuggage: 12,
			GroupDiscount: &GroupDiscount{MinPassengers: 5, Percent: 10},
		},
		{
			RouteID: "denarau-coral-coast", Service: catalog.ServicePrivate,
			BasePrice: 23000, AfterHoursSurcharge: 4000, HolidaySurcharge: 2500,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 3,
			MinPassengers: 1, MaxPassengers: 7, MaxLuggage: 12,
		},
		{
			RouteID: "suva-pacific-harbour", Service: catalog.ServicePrivate,
			BasePrice: 11000, AfterHoursSurcharge: 2500, HolidaySurcharge: 2000,
			ChildSeatSurcharge: 1000, ExtraLuggageSurcharge: 500, LuggageIncluded: 2,
			MinPassengers: 1, MaxPassengers: 7, MaxLuggage: 10,
		},
	}
}
