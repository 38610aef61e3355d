package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"stoik.com/phishscan/internal/client"
	"stoik.com/phishscan/internal/config"
	"stoik.com/phishscan/internal/core/port"
	"stoik.com/phishscan/internal/core/service"
	"stoik.com/phishscan/internal/handler"
	"stoik.com/phishscan/internal/infrastructure/amqp"
	"stoik.com/phishscan/internal/parser"
	"stoik.com/phishscan/internal/server"
	"stoik.com/phishscan/internal/storage"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})

	validate := validator.New()
	cfg, err := config.Load(validate)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	ctx := context.Background()

	// Brand catalogue, from the database when one is configured
	var brandStorage port.BrandStorage
	if cfg.DatabaseEnabled() {
		db, err := storage.NewPostgresDB(ctx, cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		brandStorage = storage.NewBrandsStorage(db)
	}
	brands, err := service.LoadBrands(ctx, brandStorage)
	if err != nil {
		log.Fatalf("Failed to load brands: %v", err)
	}

	mlClient, err := client.NewMLClient(ctx, cfg.ML())
	if err != nil {
		log.Fatalf("Failed to create ML client: %v", err)
	}

	// Asynchronous analysis is only offered when a broker is configured
	var notifier port.NotifierClient
	var broker server.BrokerHealth
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("Failed to create AMQP client: %v", err)
		}
		defer amqpClient.Close()

		topologyManager := amqp.NewTopologyManager(amqpClient)
		if err := topologyManager.Setup(); err != nil {
			log.Fatalf("Failed to setup AMQP topology: %v", err)
		}
		notifier = client.NewAMQPNotifier(amqp.NewPublisher(amqpClient))
		broker = amqpClient
	}

	analysisService := service.NewAnalysisService(
		mlClient,
		validate,
		service.NewEvaluators(service.DefaultPolicy(), brands, nil)...,
	)
	analysisHandler := handler.NewAnalysisHTTPHandler(analysisService, parser.NewEMLParser(), notifier, validate)
	httpServer := server.NewHTTPServer(analysisHandler, broker)

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	// Start HTTP server in a goroutine
	go func() {
		if err := httpServer.Start(serverCtx, cfg.HTTPAddr); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	log.WithFields(log.Fields{
		"addr":      cfg.HTTPAddr,
		"mlBackend": cfg.MLBackend,
		"brands":    len(brands),
		"async":     notifier != nil,
	}).Info("Analyzer service started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down analyzer service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
