// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greentours/internal/modules/catalog"
	"greentours/internal/modules/pricing"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeDomainError maps the core's typed failures onto HTTP statuses.
func writeDomainError(c *gin.Context, err error) {
	switch err {
	case catalog.ErrRouteNotFound, catalog.ErrZoneNotFound, pricing.ErrNoPricing, pricing.ErrQuoteNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	case pricing.ErrServiceUnavailable:
		writeError(c, http.StatusConflict, err.Error())
	case pricing.ErrCapacityExceeded:
		writeError(c, http.StatusUnprocessableEntity, err.Error())
	case pricing.ErrInvalidDate, pricing.ErrInvalidTime, pricing.ErrUnsupportedCurrency:
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
