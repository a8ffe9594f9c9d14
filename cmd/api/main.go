// PulseWatch API
//
// REST API for a behavioral health monitoring pipeline.
//
//	@title			PulseWatch API
//	@version		1.0
//	@description	Sensor ingestion, daily aggregation, personal baselines, risk classification, and alerting.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management and alert snooze endpoints
//
//	@tag.name			jobs
//	@tag.description	Scheduler-triggered pipeline runs
//
//	@tag.name			summaries
//	@tag.description	Daily summary and baseline read endpoints
//
//	@tag.name			insights
//	@tag.description	LLM-backed wellbeing insights
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/pulsewatch/pulsewatch/internal/api"
	"github.com/pulsewatch/pulsewatch/internal/api/handler"
	"github.com/pulsewatch/pulsewatch/internal/config"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"github.com/pulsewatch/pulsewatch/internal/llm"
	"github.com/pulsewatch/pulsewatch/internal/notify"
	"github.com/pulsewatch/pulsewatch/internal/repository"
	"github.com/pulsewatch/pulsewatch/internal/seed"
	"github.com/pulsewatch/pulsewatch/internal/sensor"
	"github.com/pulsewatch/pulsewatch/internal/service"
	"github.com/pulsewatch/pulsewatch/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (noop when no collector is configured)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "pulsewatch-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Sample{},
		&domain.MoodEntry{},
		&domain.DailySummary{},
		&domain.BaselineProfile{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sampleRepo := repository.NewSampleRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)
	baselineRepo := repository.NewBaselineRepository(db)

	// Sensor source and alert dispatcher
	sensors := sensor.NewSimulatedClient()
	var dispatcher notify.Dispatcher
	if cfg.NotifyWebhookURL != "" {
		dispatcher = notify.NewWebhookDispatcher(cfg.NotifyWebhookURL)
	} else {
		log.Println("NOTIFY_WEBHOOK_URL not configured, alerts will be logged only")
		dispatcher = notify.NewLogDispatcher()
	}

	// Initialize services
	userService := service.NewUserService(userRepo)
	notificationService := service.NewNotificationService(userRepo, dispatcher)
	ingestionService := service.NewIngestionService(sensors, sampleRepo, userRepo, cfg.IngestWorkers)
	aggregationService := service.NewAggregationService(
		sampleRepo, moodRepo, summaryRepo, baselineRepo, userRepo, notificationService, cfg.IngestWorkers,
	)
	baselineService := service.NewBaselineService(sampleRepo, baselineRepo, userRepo)
	summaryService := service.NewSummaryService(summaryRepo, baselineRepo, userRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(openaiClient, summaryRepo, baselineRepo, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	jobHandler := handler.NewJobHandler(ingestionService, aggregationService, baselineService)
	summaryHandler := handler.NewSummaryHandler(summaryService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Setup router
	router := api.NewRouter(userHandler, jobHandler, summaryHandler, insightsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
