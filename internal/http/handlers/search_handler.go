// README: Transfer search handler; query-string filters, conjunctive matching.
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"greentours/internal/modules/catalog"
	"greentours/internal/modules/search"
	"greentours/internal/types"
)

type SearchHandler struct {
	search *search.Service
}

func NewSearchHandler(svc *search.Service) *SearchHandler {
	return &SearchHandler{search: svc}
}

func (h *SearchHandler) Search(c *gin.Context) {
	var f search.Filters
	f.FromZone = c.Query("from")
	f.ToZone = c.Query("to")
	f.Date = c.Query("date")
	f.Time = c.Query("time")
	f.Currency = c.Query("currency")

	if s := c.Query("serviceType"); s != "" {
		svc, err := catalog.ParseServiceType(s)
		if err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		f.Service = svc
	}
	if a := c.Query("amenities"); a != "" {
		f.Amenities = strings.Split(a, ",")
	}

	var err error
	if f.Passengers, err = intQuery(c, "passengers"); err != nil {
		writeError(c, http.StatusBadRequest, "invalid passengers")
		return
	}
	if f.Children, err = intQuery(c, "children"); err != nil {
		writeError(c, http.StatusBadRequest, "invalid children")
		return
	}
	if f.Infants, err = intQuery(c, "infants"); err != nil {
		writeError(c, http.StatusBadRequest, "invalid infants")
		return
	}

	if mp := c.Query("maxPrice"); mp != "" {
		v, err := strconv.ParseFloat(mp, 64)
		if err != nil || v < 0 {
			writeError(c, http.StatusBadRequest, "invalid maxPrice")
			return
		}
		f.MaxPrice = types.RoundHalfUp(v * 100)
	}

	results, err := h.search.Search(c.Request.Context(), f)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"results": results, "count": len(results)})
}

func intQuery(c *gin.Context, key string) (int, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
