package bootstrap

import (
	"log"

	"marketing-agent-be/internal/config"
	"marketing-agent-be/internal/controller"
	"marketing-agent-be/internal/pkg/logger"
	"marketing-agent-be/internal/repository/implementation"
	"marketing-agent-be/internal/repository/memory"
	"marketing-agent-be/internal/service"
	"marketing-agent-be/pkg/embedding"
	"marketing-agent-be/pkg/llm/factory"
	"marketing-agent-be/pkg/rag/retriever"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AgentController   controller.IAgentController
	SessionController controller.ISessionController

	// Exposed for the seed command
	TemplateService service.ITemplateService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Embedding provider per config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Keys.OpenAI, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	}

	// LLM provider per config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Repositories
	templateRepo := implementation.NewTemplateRepository(db)
	sessionRepo := memory.NewSessionRepository()

	// Services
	templateService := service.NewTemplateService(templateRepo, embeddingProvider, cfg.Templates.Dir, sysLogger)
	ragRetriever := retriever.NewRetriever(embeddingProvider, templateRepo, sysLogger)
	agentService := service.NewAgentService()
	draftService := service.NewDraftService(templateService, ragRetriever, llmProvider, sysLogger)
	sessionService := service.NewSessionService(sessionRepo, agentService, draftService)
	exportService := service.NewExportService(sessionRepo, sysLogger)

	return &Container{
		AgentController:   controller.NewAgentController(agentService),
		SessionController: controller.NewSessionController(sessionService, exportService),
		TemplateService:   templateService,
	}
}
