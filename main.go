package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yourclean/config"
	"yourclean/cron"
	"yourclean/database"
	catalogRepoPkg "yourclean/database/repository/catalog"
	contentRepoPkg "yourclean/database/repository/content"
	discountRepoPkg "yourclean/database/repository/discount"
	orderRepoPkg "yourclean/database/repository/order"
	pricingRepoPkg "yourclean/database/repository/pricing"
	"yourclean/handlers"
	"yourclean/middleware"
	"yourclean/routes"
	"yourclean/services/catalog"
	"yourclean/services/content"
	"yourclean/services/discount"
	"yourclean/services/notification"
	"yourclean/services/order"
	"yourclean/services/pricing"
	"yourclean/services/storage"
	"yourclean/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	var storageService storage.StorageService
	if svc, err := utils.Cloudinary(); err != nil {
		logger.Sugar().Warnf("main: cloudinary storage unavailable, uploads disabled: %v", err)
	} else {
		storageService = svc
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	pricingRepo := pricingRepoPkg.NewMongoPricingRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	contentRepo := contentRepoPkg.NewMongoContentRepo()
	discountRepo := discountRepoPkg.NewMongoDiscountRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()

	// services.
	quoteService := &pricing.DefaultQuoteService{
		PricingRepo: pricingRepo,
		CatalogRepo: catalogRepo,
		ContentRepo: contentRepo,
		Cache:       utils.GetCacheClient(),
		Logger:      logger,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo: catalogRepo,
	}
	contentService := &content.DefaultContentService{
		Repo:        contentRepo,
		PricingRepo: pricingRepo,
	}
	calendarService := &discount.DefaultCalendarService{
		Repo:       discountRepo,
		WindowDays: config.AppConfig.DiscountWindowDays,
		Logger:     logger,
	}

	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	orderService := &order.DefaultOrderService{
		Repo:        orderRepo,
		ContentRepo: contentRepo,
		Calendar:    calendarService,
		Queue:       queueClient,
		Logger:      logger,
	}

	notificationService := &notification.FCMNotificationService{
		Client:      utils.FCMClient,
		StaffTokens: config.AppConfig.StaffDeviceTokens,
		Logger:      logger,
	}
	cron.InitOrderNotifyWorker(notificationService)

	// handlers.
	handlerBundle := &handlers.HandlerBundle{
		QuoteHandler:    handlers.NewQuoteHandler(quoteService, logger),
		CatalogHandler:  handlers.NewCatalogHandler(catalogService, logger),
		ContentHandler:  handlers.NewContentHandler(contentService, logger),
		DiscountHandler: handlers.NewDiscountHandler(calendarService, logger),
		OrderHandler:    handlers.NewOrderHandler(orderService, logger),
		AdminHandler: handlers.NewAdminHandler(
			pricingRepo, catalogRepo, contentRepo, discountRepo,
			orderService, quoteService, storageService, logger,
		),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	queueClient.Close()

	logger.Sugar().Info("main: server stopped gracefully")
}
