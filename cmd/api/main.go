// Med Reminder API
//
// REST API for tracking medicine courses, dose schedules and adherence.
//
//	@title			Med Reminder API
//	@version		1.0
//	@description	Manage person profiles, medicine courses with generated dose schedules, take/skip tracking and adherence reporting.
//
//	@BasePath	/v1
//
//	@tag.name			profiles
//	@tag.description	Person profile management endpoints
//
//	@tag.name			medicines
//	@tag.description	Medicine course endpoints
//
//	@tag.name			schedules
//	@tag.description	Dose schedule endpoints
//
//	@tag.name			adherence
//	@tag.description	Adherence analytics endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/dstasiak/med-reminder/internal/api"
	"github.com/dstasiak/med-reminder/internal/api/handler"
	"github.com/dstasiak/med-reminder/internal/config"
	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/dstasiak/med-reminder/internal/llm"
	"github.com/dstasiak/med-reminder/internal/notify"
	"github.com/dstasiak/med-reminder/internal/poller"
	"github.com/dstasiak/med-reminder/internal/report"
	"github.com/dstasiak/med-reminder/internal/repository"
	"github.com/dstasiak/med-reminder/internal/schedule"
	"github.com/dstasiak/med-reminder/internal/seed"
	"github.com/dstasiak/med-reminder/internal/service"
	"github.com/dstasiak/med-reminder/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when no OTLP endpoint is configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "med-reminder-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.Profile{}, &domain.Medicine{}, &domain.Schedule{}); err != nil {
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
	profileRepo := repository.NewProfileRepository(db)
	medicineRepo := repository.NewMedicineRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	// Reminder delivery: Telegram when configured, local log otherwise
	var sender notify.Sender
	telegramSender, err := notify.NewTelegramSender(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram sender: %v", err)
	}
	if telegramSender != nil {
		sender = telegramSender
		log.Println("Telegram reminder delivery enabled")
	} else {
		sender = notify.NewLogSender()
		log.Println("Telegram not configured, reminders will be logged")
	}

	notifier := notify.NewTimerNotifier(sender)
	defer notifier.Shutdown()

	// Initialize services
	generator := schedule.NewGenerator(schedule.BoundaryTruncate)
	profileService := service.NewProfileService(profileRepo, medicineRepo, scheduleRepo, notifier)
	medicineService := service.NewMedicineService(medicineRepo, profileRepo, scheduleRepo, generator, notifier)
	doseService := service.NewDoseService(scheduleRepo, profileRepo, notifier)
	adherenceService := service.NewAdherenceService(scheduleRepo, profileRepo)

	// Initialize OpenAI client (may be nil if not configured)
	var insightsLLM llm.InsightsLLM
	if client := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel); client != nil {
		insightsLLM = client
	} else {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}

	insightsService := service.NewInsightsService(adherenceService, insightsLLM, profileRepo, medicineRepo, scheduleRepo)
	exporter := report.NewExporter(profileRepo, medicineRepo, scheduleRepo, adherenceService)

	// Start the due-dose poller
	dueChecker := poller.NewDueChecker(doseService, medicineRepo, sender, cfg.PollInterval)
	if err := dueChecker.Start(ctx); err != nil {
		log.Fatalf("Failed to start due checker: %v", err)
	}
	defer dueChecker.Stop()

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(profileService)
	medicineHandler := handler.NewMedicineHandler(medicineService)
	scheduleHandler := handler.NewScheduleHandler(doseService)
	insightsHandler := handler.NewInsightsHandler(adherenceService, insightsService, exporter)

	// Setup router
	router := api.NewRouter(profileHandler, medicineHandler, scheduleHandler, insightsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
