// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greentours/internal/ai"
	"greentours/internal/http/handlers"
	"greentours/internal/http/middleware"
	"greentours/internal/infra"
	"greentours/internal/maps"
	"greentours/internal/modules/aiusage"
	"greentours/internal/modules/availability"
	"greentours/internal/modules/catalog"
	"greentours/internal/modules/holiday"
	"greentours/internal/modules/pricing"
	"greentours/internal/modules/search"
)

type ServerDeps struct {
	Catalog      *catalog.Catalog
	Pricing      *pricing.Service
	Availability *availability.Service
	Search       *search.Service
	Rules        []pricing.Rule
	Holidays     []holiday.Holiday

	// Optional integrations; nil disables the corresponding surface.
	Assistant ai.LLMProvider
	Usage     *aiusage.Service
	Routes    *maps.RouteService
	Places    *maps.PlacesService
	Verifier  infra.TokenVerifier

	CORSOrigin string
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging(), middleware.CORS(s.deps.CORSOrigin))

	quote := handlers.NewQuoteHandler(s.deps.Pricing)
	avail := handlers.NewAvailabilityHandler(s.deps.Availability)
	searchH := handlers.NewSearchHandler(s.deps.Search)
	cat := handlers.NewCatalogHandler(s.deps.Catalog)
	assistant := handlers.NewAssistantHandler(s.deps.Assistant, s.deps.Catalog, s.deps.Pricing, s.deps.Usage)
	admin := handlers.NewAdminHandler(s.deps.Catalog, s.deps.Rules, s.deps.Holidays, s.deps.Routes, s.deps.Places)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/quotes", quote.Create)
	api.GET("/quotes/:id", quote.Get)
	api.GET("/availability", avail.Day)
	api.GET("/search", searchH.Search)
	api.GET("/catalog/zones", cat.Zones)
	api.GET("/catalog/routes", cat.Routes)
	api.POST("/assistant/message", assistant.Message)

	adminGroup := api.Group("/admin")
	if s.deps.Verifier != nil {
		adminGroup.Use(middleware.Auth(s.deps.Verifier), middleware.RequireRole("admin"))
	} else {
		// No verifier configured: admin surface stays closed, not open.
		adminGroup.Use(func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "admin auth is not configured"})
		})
	}
	adminGroup.GET("/overview", admin.Overview)
	adminGroup.GET("/routes/:id/travel-estimate", admin.TravelEstimate)
	adminGroup.GET("/zones/:id/places", admin.ZonePlaces)

	return r
}
