package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restropos/internal/api"
	"restropos/internal/config"
	"restropos/internal/database"
	"restropos/internal/engine"
	"restropos/internal/models"
	"restropos/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Server.MetricsPort = *metricsPort
	}

	// Initialize database
	if err := database.InitDB(cfg.Database.Driver, cfg.Database.Source); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	db := database.GetDB()
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	database.SeedDefaultData(db, defaultSettings(cfg))
	database.SeedAdminUser(db, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)

	// Wire the engine and the API server
	settingsSvc := settings.NewService(db)
	eng := engine.New(db, settingsSvc)
	server := api.NewServer(db, eng, settingsSvc, cfg.Auth.JWTSecret)

	// Start metrics server
	go startMetricsServer(cfg.Server.MetricsPort)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on port %d", cfg.Server.Port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

func defaultSettings(cfg *config.Config) models.Settings {
	defaults := settings.Defaults()
	if cfg.Restaurant.Name != "" {
		defaults.RestaurantName = cfg.Restaurant.Name
	}
	if cfg.Restaurant.TaxRatePercent > 0 {
		defaults.TaxRatePercent = cfg.Restaurant.TaxRatePercent
	}
	if cfg.Restaurant.Currency != "" {
		defaults.Currency = cfg.Restaurant.Currency
	}
	if cfg.Restaurant.Address != "" {
		defaults.Address = cfg.Restaurant.Address
	}
	if cfg.Restaurant.Phone != "" {
		defaults.Phone = cfg.Restaurant.Phone
	}
	if cfg.Restaurant.Email != "" {
		defaults.Email = cfg.Restaurant.Email
	}
	return defaults
}

func startMetricsServer(port int) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
