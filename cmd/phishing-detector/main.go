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
	"stoik.com/phishscan/internal/core/domain"
	"stoik.com/phishscan/internal/core/port"
	"stoik.com/phishscan/internal/core/service"
	"stoik.com/phishscan/internal/handler"
	"stoik.com/phishscan/internal/infrastructure/amqp"
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

	if cfg.AMQPURL == "" {
		log.Fatal("AMQP_URL is required for the phishing detector")
	}

	ctx := context.Background()

	var brandStorage port.BrandStorage
	if cfg.DatabaseEnabled() {
		db, err := storage.NewPostgresDB(ctx, cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
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

	// Create AMQP client
	amqpClient, err := amqp.NewClient(cfg.AMQPURL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()
	notifier := client.NewAMQPNotifier(amqp.NewPublisher(amqpClient))

	// Set up topology (exchanges, queues, bindings)
	topologyManager := amqp.NewTopologyManager(amqpClient)
	if err := topologyManager.Setup(); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}

	analysisService := service.NewAnalysisService(
		mlClient,
		validate,
		service.NewEvaluators(service.DefaultPolicy(), brands, nil)...,
	)
	messageHandler := handler.NewAMQPConsumer(
		analysisService,
		notifier,
		validate,
		cfg.Workers,
		cfg.QueueSize,
	)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	messageHandler.Start(workerCtx)

	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	defer consumeCancel()

	consumer := amqp.NewConsumer(amqpClient, messageHandler, cfg.Workers)
	if err := consumer.Consume(consumeCtx, domain.PhishingAnalysisQueue); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	log.Info("Phishing detection service started successfully")
	log.Infof("Consuming messages from queue: %s", domain.PhishingAnalysisQueue)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down phishing detection service...")

	// Stop taking deliveries first, then let the workers drain what they hold
	consumeCancel()
	<-consumer.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	messageHandler.Stop(shutdownCtx)
}
