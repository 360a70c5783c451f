package routes

import (
	"net/http"
	"time"

	"yourclean/handlers"
	"yourclean/middleware"
	"yourclean/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the endpoints consumed by the website.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/calculate", hb.QuoteHandler.CalculatePrice)
		api.GET("/services", hb.CatalogHandler.GetServices)
		api.GET("/cleaning-services", hb.ContentHandler.GetCleaningServices)
		api.GET("/reviews", hb.ContentHandler.GetReviews)
		api.GET("/advantages", hb.ContentHandler.GetAdvantages)
		api.GET("/gallery", hb.ContentHandler.GetGallery)
		api.GET("/company-info", hb.ContentHandler.GetCompanyInfo)
		api.GET("/calendar-discounts", hb.DiscountHandler.GetCalendarDiscounts)
		api.POST("/orders", hb.OrderHandler.CreateOrder)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterAdminRoutes sets up endpoints for the admin panel. Login is the
// only unauthenticated endpoint in the group.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminHandler.Login)

		adminGroup.Use(middleware.AdminAuthMiddleware())

		adminGroup.GET("/prices", hb.AdminHandler.ListPriceBands)
		adminGroup.POST("/prices", hb.AdminHandler.CreatePriceBand)
		adminGroup.PUT("/prices/:id", hb.AdminHandler.UpdatePriceBand)
		adminGroup.DELETE("/prices/:id", hb.AdminHandler.DeletePriceBand)

		adminGroup.GET("/rates", hb.AdminHandler.GetRates)
		adminGroup.PUT("/rates", hb.AdminHandler.UpdateRates)

		adminGroup.GET("/extra-services", hb.AdminHandler.ListExtraServices)
		adminGroup.POST("/extra-services", hb.AdminHandler.CreateExtraService)
		adminGroup.PUT("/extra-services/:id", hb.AdminHandler.UpdateExtraService)
		adminGroup.DELETE("/extra-services/:id", hb.AdminHandler.DeleteExtraService)

		adminGroup.GET("/dry-cleaning", hb.AdminHandler.ListDryCleaningItems)
		adminGroup.POST("/dry-cleaning", hb.AdminHandler.CreateDryCleaningItem)
		adminGroup.PUT("/dry-cleaning/:id", hb.AdminHandler.UpdateDryCleaningItem)
		adminGroup.DELETE("/dry-cleaning/:id", hb.AdminHandler.DeleteDryCleaningItem)

		adminGroup.GET("/discounts", hb.AdminHandler.ListDiscounts)
		adminGroup.POST("/discounts", hb.AdminHandler.CreateDiscount)
		adminGroup.PUT("/discounts/:id", hb.AdminHandler.UpdateDiscount)
		adminGroup.DELETE("/discounts/:id", hb.AdminHandler.DeleteDiscount)

		adminGroup.GET("/promo", hb.AdminHandler.ListPromoTexts)
		adminGroup.POST("/promo", hb.AdminHandler.CreatePromoText)
		adminGroup.PUT("/promo/:id", hb.AdminHandler.UpdatePromoText)
		adminGroup.DELETE("/promo/:id", hb.AdminHandler.DeletePromoText)

		adminGroup.GET("/reviews", hb.AdminHandler.ListReviews)
		adminGroup.POST("/reviews", hb.AdminHandler.CreateReview)
		adminGroup.PUT("/reviews/:id", hb.AdminHandler.UpdateReview)
		adminGroup.DELETE("/reviews/:id", hb.AdminHandler.DeleteReview)

		adminGroup.GET("/advantages", hb.AdminHandler.ListAdvantages)
		adminGroup.POST("/advantages", hb.AdminHandler.CreateAdvantage)
		adminGroup.PUT("/advantages/:id", hb.AdminHandler.UpdateAdvantage)
		adminGroup.DELETE("/advantages/:id", hb.AdminHandler.DeleteAdvantage)

		adminGroup.GET("/gallery", hb.AdminHandler.ListGallery)
		adminGroup.POST("/gallery", hb.AdminHandler.CreateGalleryItem)
		adminGroup.POST("/gallery/upload", hb.AdminHandler.UploadGalleryImage)
		adminGroup.PUT("/gallery/:id", hb.AdminHandler.UpdateGalleryItem)
		adminGroup.DELETE("/gallery/:id", hb.AdminHandler.DeleteGalleryItem)

		adminGroup.GET("/company-info", hb.AdminHandler.GetCompanyInfo)
		adminGroup.PUT("/company-info", hb.AdminHandler.UpdateCompanyInfo)

		adminGroup.GET("/orders", hb.AdminHandler.ListOrders)
		adminGroup.PATCH("/orders/:id/status", hb.AdminHandler.UpdateOrderStatus)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterAdminRoutes(r, hb)
}
