// README: Internal admin views: overview counts, route travel-estimate
// checks, and zone place coverage.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greentours/internal/maps"
	"greentours/internal/modules/catalog"
	"greentours/internal/modules/holiday"
	"greentours/internal/modules/pricing"
)

type AdminHandler struct {
	catalog  *catalog.Catalog
	rules    []pricing.Rule
	holidays []holiday.Holiday
	routes   *maps.RouteService
	places   *maps.PlacesService
}

// NewAdminHandler wires the admin views. routes and places may be nil when
// no Maps API key is configured.
func NewAdminHandler(cat *catalog.Catalog, rules []pricing.Rule, holidays []holiday.Holiday, routeSvc *maps.RouteService, placesSvc *maps.PlacesService) *AdminHandler {
	return &AdminHandler{catalog: cat, rules: rules, holidays: holidays, routes: routeSvc, places: placesSvc}
}

func (h *AdminHandler) Overview(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"zones":    len(h.catalog.Zones()),
		"routes":   len(h.catalog.Routes()),
		"rules":    len(h.rules),
		"holidays": len(h.holidays),
	})
}

// TravelEstimate compares the configured route distance and duration with
// a live driving estimate.
func (h *AdminHandler) TravelEstimate(c *gin.Context) {
	if h.routes == nil {
		writeError(c, http.StatusServiceUnavailable, "maps integration is not configured")
		return
	}
	route, err := h.catalog.Route(c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	from, err := h.catalog.Zone(route.FromZone)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	to, err := h.catalog.Zone(route.ToZone)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	duration, meters, err := h.routes.GetTravelEstimate(c.Request.Context(), from.Lat, from.Lng, to.Lat, to.Lng)
	if err != nil {
		writeError(c, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"route_id":                route.ID,
		"configured_distance_km":  route.DistanceKm,
		"configured_duration_min": route.DurationMin,
		"estimated_distance_km":   float64(meters) / 1000,
		"estimated_duration_min":  int(duration.Minutes()),
	})
}

// ZonePlaces lists resorts/hotels the Places API finds inside a zone's
// radius, to review what a pickup zone actually covers.
func (h *AdminHandler) ZonePlaces(c *gin.Context) {
	if h.places == nil {
		writeError(c, http.StatusServiceUnavailable, "maps integration is not configured")
		return
	}
	zone, err := h.catalog.Zone(c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	query := c.DefaultQuery("q", "resort")

	places, err := h.places.SearchNearZone(c.Request.Context(), zone.Lat, zone.Lng, zone.RadiusKm, query)
	if err != nil {
		writeError(c, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"zone_id": zone.ID, "places": places})
}
