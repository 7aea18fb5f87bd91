package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rockstar_services/internal/domain/catalog"
)

// CatalogHandler exposes the static form catalogs so clients render the same
// option sets the server validates against.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) GetCatalogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"steps":            catalog.FormSteps,
		"interiorRooms":    catalog.InteriorRooms,
		"interiorOptions":  catalog.InteriorOptions,
		"exteriorElements": catalog.ExteriorElements,
		"handymanServices": catalog.HandymanServices,
		"paintBrands":      catalog.PaintBrands,
		"paintFinishes":    catalog.PaintFinishes,
		"usStates":         catalog.USStates,
	})
}
