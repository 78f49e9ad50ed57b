// README: Availability handlers for day slots and single-time checks.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greentours/internal/modules/availability"
	"greentours/internal/modules/catalog"
)

type AvailabilityHandler struct {
	availability *availability.Service
}

func NewAvailabilityHandler(svc *availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{availability: svc}
}

// Day answers either a full day of slots, or — when a time query parameter
// is supplied — whether that specific departure is bookable.
func (h *AvailabilityHandler) Day(c *gin.Context) {
	routeID := c.Query("routeId")
	date := c.Query("date")
	if routeID == "" || date == "" {
		writeError(c, http.StatusBadRequest, "routeId and date are required")
		return
	}
	svc, err := catalog.ParseServiceType(c.Query("serviceType"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	if hhmm := c.Query("time"); hhmm != "" {
		ok, err := h.availability.IsServiceAvailable(c.Request.Context(), routeID, svc, date, hhmm)
		if err != nil {
			writeDomainError(c, err)
			return
		}
		writeJSON(c, http.StatusOK, gin.H{
			"route_id":  routeID,
			"service":   svc,
			"date":      date,
			"time":      hhmm,
			"available": ok,
		})
		return
	}

	day, err := h.availability.Slots(c.Request.Context(), routeID, svc, date)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, day)
}
