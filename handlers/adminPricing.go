package handlers

import (
	"net/http"

	"yourclean/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListPriceBands handles GET /api/admin/prices.
func (h *AdminHandler) ListPriceBands(c *gin.Context) {
	bands, err := h.PricingRepo.ListBands(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListPriceBands: failed to fetch bands", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch price bands"})
		return
	}
	c.JSON(http.StatusOK, bands)
}

// CreatePriceBand handles POST /api/admin/prices.
func (h *AdminHandler) CreatePriceBand(c *gin.Context) {
	var band models.PriceBand
	if err := c.ShouldBindJSON(&band); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price band", "message": err.Error()})
		return
	}
	if !models.ValidLevel(band.Level) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown cleaning level"})
		return
	}
	if band.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price cannot be negative"})
		return
	}

	id, err := h.PricingRepo.CreateBand(c.Request.Context(), band)
	if err != nil {
		h.Logger.Error("CreatePriceBand: failed to create band", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create price band"})
		return
	}
	h.invalidateQuoteConfig(c)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdatePriceBand handles PUT /api/admin/prices/:id.
func (h *AdminHandler) UpdatePriceBand(c *gin.Context) {
	var band models.PriceBand
	if err := c.ShouldBindJSON(&band); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price band", "message": err.Error()})
		return
	}
	band.ID = c.Param("id")
	if !models.ValidLevel(band.Level) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown cleaning level"})
		return
	}

	if err := h.PricingRepo.UpdateBand(c.Request.Context(), band); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "price band not found"})
		return
	}
	h.invalidateQuoteConfig(c)
	c.JSON(http.StatusOK, band)
}

// DeletePriceBand handles DELETE /api/admin/prices/:id.
func (h *AdminHandler) DeletePriceBand(c *gin.Context) {
	if err := h.PricingRepo.DeleteBand(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "price band not found"})
		return
	}
	h.invalidateQuoteConfig(c)
	c.Status(http.StatusNoContent)
}

// GetRates handles GET /api/admin/rates.
func (h *AdminHandler) GetRates(c *gin.Context) {
	rates, err := h.PricingRepo.GetRates(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetRates: failed to fetch rates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch rates"})
		return
	}
	c.JSON(http.StatusOK, rates)
}

// UpdateRates handles PUT /api/admin/rates.
func (h *AdminHandler) UpdateRates(c *gin.Context) {
	var rates models.RateSettings
	if err := c.ShouldBindJSON(&rates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rates", "message": err.Error()})
		return
	}
	if rates.PricePerRoom.IsNegative() || rates.PricePerBathroom.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rates cannot be negative"})
		return
	}

	if err := h.PricingRepo.UpdateRates(c.Request.Context(), rates); err != nil {
		h.Logger.Error("UpdateRates: failed to update rates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update rates"})
		return
	}
	h.invalidateQuoteConfig(c)
	c.JSON(http.StatusOK, rates)
}

// ListExtraServices handles GET /api/admin/extra-services.
func (h *AdminHandler) ListExtraServices(c *gin.Context) {
	extras, err := h.CatalogRepo.ListExtras(c.Request.Context(), false)
	if err != nil {
		h.Logger.Error("ListExtraServices: failed to fetch extras", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch extra services"})
		return
	}
	c.JSON(http.StatusOK, extras)
}

// CreateExtraService handles POST /api/admin/extra-services.
func (h *AdminHandler) CreateExtraService(c *gin.Context) {
	var svc models.ExtraService
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid extra service", "message": err.Error()})
		return
	}
	if svc.PriceType != models.PriceTypeFixed && svc.PriceType != models.PriceTypePerM2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price_type must be fixed or per_m2"})
		return
	}

	id, err := h.CatalogRepo.CreateExtra(c.Request.Context(), svc)
	if err != nil {
		h.Logger.Error("CreateExtraService: failed to create extra", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create extra service"})
		return
	}
	h.invalidateQuoteConfig(c)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateExtraService handles PUT /api/admin/extra-services/:id.
func (h *AdminHandler) UpdateExtraService(c *gin.Context) {
	var svc models.ExtraService
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid extra service", "message": err.Error()})
		return
	}
	svc.ID = c.Param("id")

	if err := h.CatalogRepo.UpdateExtra(c.Request.Context(), svc); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "extra service not found"})
		return
	}
	h.invalidateQuoteConfig(c)
	c.JSON(http.StatusOK, svc)
}

// DeleteExtraService handles DELETE /api/admin/extra-services/:id.
func (h *AdminHandler) DeleteExtraService(c *gin.Context) {
	if err := h.CatalogRepo.DeleteExtra(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "extra service not found"})
		return
	}
	h.invalidateQuoteConfig(c)
	c.Status(http.StatusNoContent)
}

// ListDryCleaningItems handles GET /api/admin/dry-cleaning.
func (h *AdminHandler) ListDryCleaningItems(c *gin.Context) {
	items, err := h.CatalogRepo.ListDryItems(c.Request.Context(), false)
	if err != nil {
		h.Logger.Error("ListDryCleaningItems: failed to fetch items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dry cleaning items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateDryCleaningItem handles POST /api/admin/dry-cleaning.
func (h *AdminHandler) CreateDryCleaningItem(c *gin.Context) {
	var item models.DryCleaningItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dry cleaning item", "message": err.Error()})
		return
	}
	if item.Unit != models.UnitItem && item.Unit != models.UnitM2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit must be item or m2"})
		return
	}

	id, err := h.CatalogRepo.CreateDryItem(c.Request.Context(), item)
	if err != nil {
		h.Logger.Error("CreateDryCleaningItem: failed to create item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create dry cleaning item"})
		return
	}
	h.invalidateQuoteConfig(c)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateDryCleaningItem handles PUT /api/admin/dry-cleaning/:id.
func (h *AdminHandler) UpdateDryCleaningItem(c *gin.Context) {
	var item models.DryCleaningItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dry cleaning item", "message": err.Error()})
		return
	}
	item.ID = c.Param("id")

	if err := h.CatalogRepo.UpdateDryItem(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dry cleaning item not found"})
		return
	}
	h.invalidateQuoteConfig(c)
	c.JSON(http.StatusOK, item)
}

// DeleteDryCleaningItem handles DELETE /api/admin/dry-cleaning/:id.
func (h *AdminHandler) DeleteDryCleaningItem(c *gin.Context) {
	if err := h.CatalogRepo.DeleteDryItem(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dry cleaning item not found"})
		return
	}
	h.invalidateQuoteConfig(c)
	c.Status(http.StatusNoContent)
}

// ListDiscounts handles GET /api/admin/discounts.
func (h *AdminHandler) ListDiscounts(c *gin.Context) {
	discounts, err := h.DiscountRepo.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListDiscounts: failed to fetch discounts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch discounts"})
		return
	}
	c.JSON(http.StatusOK, discounts)
}

// CreateDiscount handles POST /api/admin/discounts.
func (h *AdminHandler) CreateDiscount(c *gin.Context) {
	var discount models.DateDiscount
	if err := c.ShouldBindJSON(&discount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discount", "message": err.Error()})
		return
	}
	if discount.Percent < 0 || discount.Percent > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "percent must be between 0 and 100"})
		return
	}

	id, err := h.DiscountRepo.Create(c.Request.Context(), discount)
	if err != nil {
		h.Logger.Error("CreateDiscount: failed to create discount", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create discount"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateDiscount handles PUT /api/admin/discounts/:id.
func (h *AdminHandler) UpdateDiscount(c *gin.Context) {
	var discount models.DateDiscount
	if err := c.ShouldBindJSON(&discount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discount", "message": err.Error()})
		return
	}
	discount.ID = c.Param("id")
	if discount.Percent < 0 || discount.Percent > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "percent must be between 0 and 100"})
		return
	}

	if err := h.DiscountRepo.Update(c.Request.Context(), discount); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "discount not found"})
		return
	}
	c.JSON(http.StatusOK, discount)
}

// DeleteDiscount handles DELETE /api/admin/discounts/:id.
func (h *AdminHandler) DeleteDiscount(c *gin.Context) {
	if err := h.DiscountRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "discount not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPromoTexts handles GET /api/admin/promo.
func (h *AdminHandler) ListPromoTexts(c *gin.Context) {
	promos, err := h.ContentRepo.ListPromoTexts(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListPromoTexts: failed to fetch promos", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch promo texts"})
		return
	}
	c.JSON(http.StatusOK, promos)
}

// CreatePromoText handles POST /api/admin/promo.
func (h *AdminHandler) CreatePromoText(c *gin.Context) {
	var promo models.PromoText
	if err := c.ShouldBindJSON(&promo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid promo text", "message": err.Error()})
		return
	}

	id, err := h.ContentRepo.CreatePromoText(c.Request.Context(), promo)
	if err != nil {
		h.Logger.Error("CreatePromoText: failed to create promo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create promo text"})
		return
	}
	h.invalidateQuoteConfig(c)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdatePromoText handles PUT /api/admin/promo/:id.
func (h *AdminHandler) UpdatePromoText(c *gin.Context) {
	var promo models.PromoText
	if err := c.ShouldBindJSON(&promo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid promo text", "message": err.Error()})
		return
	}
	promo.ID = c.Param("id")

	if err := h.ContentRepo.UpdatePromoText(c.Request.Context(), promo); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "promo text not found"})
		return
	}
	h.invalidateQuoteConfig(c)
	c.JSON(http.StatusOK, promo)
}

// DeletePromoText handles DELETE /api/admin/promo/:id.
func (h *AdminHandler) DeletePromoText(c *gin.Context) {
	if err := h.ContentRepo.DeletePromoText(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "promo text not found"})
		return
	}
	h.invalidateQuoteConfig(c)
	c.Status(http.StatusNoContent)
}
