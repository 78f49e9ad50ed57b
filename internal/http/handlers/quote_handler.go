// README: Quote handlers for calculation and re-fetch by id.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greentours/internal/modules/catalog"
	"greentours/internal/modules/pricing"
)

type QuoteHandler struct {
	pricing *pricing.Service
}

func NewQuoteHandler(svc *pricing.Service) *QuoteHandler {
	return &QuoteHandler{pricing: svc}
}

type quoteReq struct {
	RouteID     string `json:"routeId"`
	ServiceType string `json:"serviceType"`
	Passengers  int    `json:"passengers"`
	Children    int    `json:"children"`
	Infants     int    `json:"infants"`
	Luggage     int    `json:"luggage"`
	ChildSeats  int    `json:"childSeats"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	IsHoliday   bool   `json:"isHoliday"`
	Currency    string `json:"currency"`
}

// Create calculates a quote. Structural validation lives here; business
// rules (capacity, eligibility) are re-validated by the core.
func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.RouteID == "" || req.Date == "" || req.Time == "" {
		writeError(c, http.StatusBadRequest, "missing fields")
		return
	}
	svc, err := catalog.ParseServiceType(req.ServiceType)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Passengers < 1 || req.Passengers > 8 {
		writeError(c, http.StatusBadRequest, "passengers must be between 1 and 8")
		return
	}
	if req.Children < 0 || req.Infants < 0 || req.Luggage < 0 || req.ChildSeats < 0 {
		writeError(c, http.StatusBadRequest, "counts must not be negative")
		return
	}
	if req.Currency != "" && !pricing.SupportedCurrency(req.Currency) {
		writeError(c, http.StatusBadRequest, "unsupported currency")
		return
	}

	quote, err := h.pricing.Calculate(c.Request.Context(), pricing.QuoteRequest{
		RouteID:         req.RouteID,
		Service:         svc,
		Passengers:      req.Passengers,
		Children:        req.Children,
		Infants:         req.Infants,
		Luggage:         req.Luggage,
		ChildSeats:      req.ChildSeats,
		Date:            req.Date,
		Time:            req.Time,
		HolidayOverride: req.IsHoliday,
		Currency:        req.Currency,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, quote)
}

// Get re-fetches a cached quote by id until its validity expires.
func (h *QuoteHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing quote id")
		return
	}
	quote, err := h.pricing.Cached(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, quote)
}
