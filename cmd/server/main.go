package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/payment-fee-estimator/internal/config"
	"github.com/anyulbade/payment-fee-estimator/internal/database"
	"github.com/anyulbade/payment-fee-estimator/internal/fees"
	"github.com/anyulbade/payment-fee-estimator/internal/handler"
	"github.com/anyulbade/payment-fee-estimator/internal/middleware"
	"github.com/anyulbade/payment-fee-estimator/internal/repository"
	"github.com/anyulbade/payment-fee-estimator/internal/service"
	"github.com/anyulbade/payment-fee-estimator/internal/telemetry"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		if err := database.SeedData(context.Background(), pool); err != nil {
			log.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := telemetry.NewMetrics(registry)

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(pool)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(telemetry.Handler(registry)))

	handler.SetupSwagger(router)
	setupAPIRoutes(router, pool, metrics, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, pool *pgxpool.Pool, metrics *telemetry.Metrics, cfg *config.Config) {
	pmRepo := repository.NewPaymentMethodRepository(pool)

	estimator := fees.NewEstimator(fees.StaticCountries, fees.DefaultSchedule)
	feeService := service.NewFeeService(pmRepo, estimator, metrics, cfg.BatchConcurrency)
	pmService := service.NewPaymentMethodService(pmRepo)

	feeHandler := handler.NewFeeHandler(feeService)
	pmHandler := handler.NewPaymentMethodHandler(pmService)

	api := router.Group("/api/v1")
	{
		api.POST("/fees/estimate", feeHandler.Estimate)
		api.POST("/fees/estimate/batch", feeHandler.EstimateBatch)
		api.GET("/payment-methods", pmHandler.List)
		api.POST("/payment-methods", pmHandler.Create)
		api.GET("/payment-methods/:id", pmHandler.Get)
		api.GET("/payment-methods/:id/fees", feeHandler.EstimateStored)
	}
}
