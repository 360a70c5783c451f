package handlers

import (
	"net/http"

	"yourclean/services/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler serves the public marketing content.
type ContentHandler struct {
	ContentSvc content.ContentService
	Logger     *zap.Logger
}

// NewContentHandler constructs a ContentHandler.
func NewContentHandler(svc content.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{ContentSvc: svc, Logger: logger}
}

// GetReviews handles GET /api/reviews.
func (h *ContentHandler) GetReviews(c *gin.Context) {
	reviews, err := h.ContentSvc.Reviews(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetReviews: failed to fetch reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetAdvantages handles GET /api/advantages.
func (h *ContentHandler) GetAdvantages(c *gin.Context) {
	advantages, err := h.ContentSvc.Advantages(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetAdvantages: failed to fetch advantages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch advantages"})
		return
	}
	c.JSON(http.StatusOK, advantages)
}

// GetGallery handles GET /api/gallery.
func (h *ContentHandler) GetGallery(c *gin.Context) {
	items, err := h.ContentSvc.Gallery(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetGallery: failed to fetch gallery", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch gallery"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetCompanyInfo handles GET /api/company-info.
func (h *ContentHandler) GetCompanyInfo(c *gin.Context) {
	info, err := h.ContentSvc.CompanyInfo(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetCompanyInfo: failed to fetch company info", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch company info"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// GetCleaningServices handles GET /api/cleaning-services.
func (h *ContentHandler) GetCleaningServices(c *gin.Context) {
	cards, err := h.ContentSvc.LevelDescriptions(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetCleaningServices: failed to fetch level descriptions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cleaning services"})
		return
	}
	c.JSON(http.StatusOK, cards)
}
