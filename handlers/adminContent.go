package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"yourclean/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListReviews handles GET /api/admin/reviews.
func (h *AdminHandler) ListReviews(c *gin.Context) {
	reviews, err := h.ContentRepo.ListReviews(c.Request.Context(), false, 0)
	if err != nil {
		h.Logger.Error("ListReviews: failed to fetch reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview handles POST /api/admin/reviews.
func (h *AdminHandler) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review", "message": err.Error()})
		return
	}
	if review.Rating < 1 || review.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	id, err := h.ContentRepo.CreateReview(c.Request.Context(), review)
	if err != nil {
		h.Logger.Error("CreateReview: failed to create review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateReview handles PUT /api/admin/reviews/:id.
func (h *AdminHandler) UpdateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review", "message": err.Error()})
		return
	}
	review.ID = c.Param("id")

	if err := h.ContentRepo.UpdateReview(c.Request.Context(), review); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReview handles DELETE /api/admin/reviews/:id.
func (h *AdminHandler) DeleteReview(c *gin.Context) {
	if err := h.ContentRepo.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAdvantages handles GET /api/admin/advantages.
func (h *AdminHandler) ListAdvantages(c *gin.Context) {
	advantages, err := h.ContentRepo.ListAdvantages(c.Request.Context(), false)
	if err != nil {
		h.Logger.Error("ListAdvantages: failed to fetch advantages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch advantages"})
		return
	}
	c.JSON(http.StatusOK, advantages)
}

// CreateAdvantage handles POST /api/admin/advantages.
func (h *AdminHandler) CreateAdvantage(c *gin.Context) {
	var adv models.Advantage
	if err := c.ShouldBindJSON(&adv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid advantage", "message": err.Error()})
		return
	}

	id, err := h.ContentRepo.CreateAdvantage(c.Request.Context(), adv)
	if err != nil {
		h.Logger.Error("CreateAdvantage: failed to create advantage", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create advantage"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateAdvantage handles PUT /api/admin/advantages/:id.
func (h *AdminHandler) UpdateAdvantage(c *gin.Context) {
	var adv models.Advantage
	if err := c.ShouldBindJSON(&adv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid advantage", "message": err.Error()})
		return
	}
	adv.ID = c.Param("id")

	if err := h.ContentRepo.UpdateAdvantage(c.Request.Context(), adv); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "advantage not found"})
		return
	}
	c.JSON(http.StatusOK, adv)
}

// DeleteAdvantage handles DELETE /api/admin/advantages/:id.
func (h *AdminHandler) DeleteAdvantage(c *gin.Context) {
	if err := h.ContentRepo.DeleteAdvantage(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "advantage not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListGallery handles GET /api/admin/gallery.
func (h *AdminHandler) ListGallery(c *gin.Context) {
	items, err := h.ContentRepo.ListGallery(c.Request.Context(), false)
	if err != nil {
		h.Logger.Error("ListGallery: failed to fetch gallery", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch gallery"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateGalleryItem handles POST /api/admin/gallery.
func (h *AdminHandler) CreateGalleryItem(c *gin.Context) {
	var item models.GalleryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gallery item", "message": err.Error()})
		return
	}
	if item.BeforeImage == "" || item.AfterImage == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "before and after images are required"})
		return
	}

	id, err := h.ContentRepo.CreateGalleryItem(c.Request.Context(), item)
	if err != nil {
		h.Logger.Error("CreateGalleryItem: failed to create gallery item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create gallery item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateGalleryItem handles PUT /api/admin/gallery/:id.
func (h *AdminHandler) UpdateGalleryItem(c *gin.Context) {
	var item models.GalleryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gallery item", "message": err.Error()})
		return
	}
	item.ID = c.Param("id")

	if err := h.ContentRepo.UpdateGalleryItem(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "gallery item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteGalleryItem handles DELETE /api/admin/gallery/:id. Uploaded media is
// removed from storage after the document; a storage failure only logs, the
// item is already gone.
func (h *AdminHandler) DeleteGalleryItem(c *gin.Context) {
	id := c.Param("id")

	var item *models.GalleryItem
	if items, err := h.ContentRepo.ListGallery(c.Request.Context(), false); err == nil {
		for i := range items {
			if items[i].ID == id {
				item = &items[i]
				break
			}
		}
	}

	if err := h.ContentRepo.DeleteGalleryItem(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "gallery item not found"})
		return
	}

	if h.Storage != nil && item != nil {
		for _, publicID := range []string{item.BeforePublicID, item.AfterPublicID} {
			if publicID == "" {
				continue
			}
			if err := h.Storage.DeleteFile(c.Request.Context(), publicID); err != nil {
				h.Logger.Warn("DeleteGalleryItem: failed to remove media",
					zap.String("publicId", publicID), zap.Error(err))
			}
		}
	}
	c.Status(http.StatusNoContent)
}

// UploadGalleryImage handles POST /api/admin/gallery/upload. The image is
// staged to a temp file and pushed to Cloudinary; the response carries the
// delivery URL to store on a gallery item.
func (h *AdminHandler) UploadGalleryImage(c *gin.Context) {
	if h.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media storage not configured"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		h.Logger.Error("UploadGalleryImage: failed to stage file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, "gallery")
	if err != nil {
		h.Logger.Error("UploadGalleryImage: upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	url, err := h.Storage.ImageURL(publicID)
	if err != nil {
		h.Logger.Error("UploadGalleryImage: failed to build URL",
			zap.String("publicId", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve image URL"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"public_id": publicID, "url": url})
}

// GetCompanyInfo handles GET /api/admin/company-info.
func (h *AdminHandler) GetCompanyInfo(c *gin.Context) {
	info, err := h.ContentRepo.GetCompanyInfo(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetCompanyInfo: failed to fetch company info", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch company info"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// UpdateCompanyInfo handles PUT /api/admin/company-info.
func (h *AdminHandler) UpdateCompanyInfo(c *gin.Context) {
	var info models.CompanyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company info", "message": err.Error()})
		return
	}

	if err := h.ContentRepo.UpdateCompanyInfo(c.Request.Context(), info); err != nil {
		h.Logger.Error("UpdateCompanyInfo: failed to update company info", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update company info"})
		return
	}
	c.JSON(http.StatusOK, info)
}
