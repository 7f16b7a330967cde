package bootstrap

import (
	"log"

	"portfolio-pulse-be/internal/config"
	"portfolio-pulse-be/internal/controller"
	"portfolio-pulse-be/internal/pkg/logger"
	"portfolio-pulse-be/internal/repository/implementation"
	"portfolio-pulse-be/internal/service"
	"portfolio-pulse-be/pkg/llm/factory"

	pktNats "portfolio-pulse-be/pkg/nats"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	TelemetryController controller.ITelemetryController
	AdminController     controller.IAdminController
	ChatController      controller.IChatController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Repositories
	eventRepo := implementation.NewEventRepository(db)
	messageRepo := implementation.NewChatMessageRepository(db)
	contactRepo := implementation.NewContactSubmissionRepository(db)

	// 3. Event Bus (optional; ingestion works without it)
	var publisher service.EventPublisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			publisher = natsPub
		}
	}

	// 4. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.GeminiAPIKey,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 5. Services
	telemetryService := service.NewTelemetryService(eventRepo, messageRepo, publisher, sysLogger)
	dashboardService := service.NewDashboardService(eventRepo, messageRepo, contactRepo)
	notificationService := service.NewNotificationService(eventRepo, messageRepo, contactRepo)
	chatService := service.NewChatService(llmProvider, cfg.Ai.MaxTokens, sysLogger)

	// 6. Controllers
	return &Container{
		TelemetryController: controller.NewTelemetryController(telemetryService),
		AdminController:     controller.NewAdminController(dashboardService, notificationService),
		ChatController:      controller.NewChatController(chatService),

		Logger: sysLogger,
	}
}
