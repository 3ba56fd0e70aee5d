package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayplan/config"
	"wayplan/handlers"
	"wayplan/middleware"
	"wayplan/routes"
	"wayplan/services/delivery"
	"wayplan/services/itinerary"
	"wayplan/services/payment"
	"wayplan/services/places"
	"wayplan/services/textgen"
	"wayplan/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitPlanCache()
	utils.StartHealthMonitor([]*redis.Client{utils.GetPlanCacheClient()})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// Collaborators. Missing credentials degrade to local fallbacks rather
	// than refuse to start.
	seeded := places.NewSeededPlaceSearch()
	var placeSearch places.PlaceSearch = seeded
	if config.AppConfig.GoogleAPIKey != "" {
		placeSearch = places.NewGooglePlaceSearch(config.AppConfig.GoogleAPIKey, logger)
	} else {
		logger.Sugar().Warn("main: no Google API key configured, serving seeded place pools")
	}

	var textGen textgen.TextGenerator
	if config.AppConfig.GeminiAPIKey != "" {
		gen, err := textgen.NewGeminiGenerator(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Warnf("main: gemini unavailable, using templated text: %v", err)
		} else {
			textGen = gen
		}
	} else {
		logger.Sugar().Warn("main: no Gemini API key configured, using templated text")
	}

	// Services.
	planCache := itinerary.NewRedisPlanCache(
		utils.GetPlanCacheClient(),
		time.Duration(config.AppConfig.PlanCacheTTLMin)*time.Minute,
	)
	itinerarySvc := &itinerary.DefaultItineraryService{
		Places:        placeSearch,
		Fallback:      seeded,
		TextGen:       textGen,
		Cache:         planCache,
		Logger:        logger,
		DefaultBudget: config.AppConfig.DefaultBudget,
		Tolerance:     config.AppConfig.BudgetTolerance,
		Strict:        config.AppConfig.StrictCollaborators,
	}
	checkoutSvc := payment.NewStripeCheckoutService(logger)

	// Delivery worker and queue.
	queueClient := delivery.NewQueueClient()
	defer queueClient.Close()
	sender, err := delivery.NewSESEmailSender(
		context.Background(),
		config.AppConfig.AWSRegion,
		config.AppConfig.EmailFrom,
	)
	if err != nil {
		logger.Sugar().Warnf("main: email delivery disabled: %v", err)
	} else {
		delivery.StartDeliveryWorker(sender, logger)
	}

	// Handlers.
	itineraryHandler := handlers.NewItineraryHandler(itinerarySvc, logger)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutSvc, logger)
	emailHandler := handlers.NewEmailHandler(queueClient, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		BuildItinerary: itineraryHandler.BuildItinerary,
		CreateCheckout: checkoutHandler.CreateCheckout,
		SendItinerary:  emailHandler.SendItinerary,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	logger.Sugar().Info("main: server stopped gracefully")
}
