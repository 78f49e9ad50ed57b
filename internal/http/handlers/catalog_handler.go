// README: Catalog reference-data handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greentours/internal/modules/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) Zones(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"zones": h.catalog.Zones()})
}

func (h *CatalogHandler) Routes(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"routes": h.catalog.Routes()})
}
