package handlers

import (
	"errors"
	"net/http"
	"time"

	"yourclean/config"
	catalogRepo "yourclean/database/repository/catalog"
	contentRepo "yourclean/database/repository/content"
	discountRepo "yourclean/database/repository/discount"
	orderSvc "yourclean/services/order"
	"yourclean/services/pricing"
	"yourclean/services/storage"
	"yourclean/utils"

	pricingRepo "yourclean/database/repository/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AdminHandler serves the admin panel API: content management, price-table
// management and order handling.
type AdminHandler struct {
	PricingRepo  pricingRepo.PricingRepository
	CatalogRepo  catalogRepo.CatalogRepository
	ContentRepo  contentRepo.ContentRepository
	DiscountRepo discountRepo.DiscountRepository
	OrderSvc     orderSvc.OrderService
	QuoteSvc     *pricing.DefaultQuoteService
	Storage      storage.StorageService
	Logger       *zap.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(
	pricingR pricingRepo.PricingRepository,
	catalogR catalogRepo.CatalogRepository,
	contentR contentRepo.ContentRepository,
	discountR discountRepo.DiscountRepository,
	orders orderSvc.OrderService,
	quotes *pricing.DefaultQuoteService,
	storageSvc storage.StorageService,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		PricingRepo:  pricingR,
		CatalogRepo:  catalogR,
		ContentRepo:  contentR,
		DiscountRepo: discountR,
		OrderSvc:     orders,
		QuoteSvc:     quotes,
		Storage:      storageSvc,
		Logger:       logger,
	}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		h.Logger.Error("Login: admin credentials not configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin access not configured"})
		return
	}
	if body.Email != cfg.AdminEmail ||
		bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(body.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminToken(body.Email, adminTokenTTL)
	if err != nil {
		h.Logger.Error("Login: failed to sign token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expires_in": int(adminTokenTTL.Seconds())})
}

// ListOrders handles GET /api/admin/orders.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.OrderSvc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		var invalidErr *orderSvc.InvalidOrderError
		if errors.As(err, &invalidErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalidErr.Message})
			return
		}
		h.Logger.Error("ListOrders: failed to fetch orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PATCH /api/admin/orders/:id/status.
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	updated, err := h.OrderSvc.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		var invalidErr *orderSvc.InvalidOrderError
		if errors.As(err, &invalidErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalidErr.Message})
			return
		}
		h.Logger.Error("UpdateOrderStatus: failed to update order",
			zap.String("orderId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// invalidateQuoteConfig drops the cached pricing snapshot after admin edits.
func (h *AdminHandler) invalidateQuoteConfig(c *gin.Context) {
	if h.QuoteSvc != nil {
		h.QuoteSvc.InvalidateSnapshot(c.Request.Context())
	}
}
