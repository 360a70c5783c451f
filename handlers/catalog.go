package handlers

import (
	"net/http"

	"yourclean/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the public add-on catalog.
type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
	Logger     *zap.Logger
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{CatalogSvc: svc, Logger: logger}
}

// GetServices handles GET /api/services.
func (h *CatalogHandler) GetServices(c *gin.Context) {
	services, err := h.CatalogSvc.ActiveServices(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetServices: failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}
