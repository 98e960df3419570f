// File: shootflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shootflow/config"
	"shootflow/cron"
	"shootflow/database"
	rescheduleRepo "shootflow/database/repository/reschedule"
	shootRepo "shootflow/database/repository/shoot"
	"shootflow/handlers"
	"shootflow/middleware"
	"shootflow/routes"
	"shootflow/services/board"
	"shootflow/services/gateway"
	"shootflow/services/payment"
	"shootflow/services/scheduling"
	"shootflow/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	shoots := shootRepo.NewMongoShootRepo()
	reschedules := rescheduleRepo.NewMongoRescheduleRepo()

	// services.
	gw := gateway.NewHTTPGateway(logger)

	boardService := board.NewDefaultBoardService(
		shoots, gw, utils.GetCacheClient(), utils.GetSessionCacheClient(), logger)

	schedulingService := &scheduling.DefaultReschedulingService{
		ShootRepo:   shoots,
		RequestRepo: reschedules,
		Gateway:     gw,
		Logger:      logger,
	}

	paymentService := &payment.DefaultPaymentService{
		ShootRepo: shoots,
		Gateway:   gw,
		Logger:    logger,
	}
	if provider := payment.NewStripeCheckoutProvider(); provider != nil {
		paymentService.Checkout = provider
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Shoot:      handlers.NewShootHandler(boardService),
		Reschedule: handlers.NewRescheduleHandler(schedulingService),
		Payment:    handlers.NewPaymentHandler(paymentService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background poll-sync worker.
	cron.InitSyncWorker(boardService)

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
