package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"k8s.io/klog/v2"

	"github.com/nyayaai/backend/config"
	"github.com/nyayaai/backend/internal/handler"
	"github.com/nyayaai/backend/internal/pkg/database"
	"github.com/nyayaai/backend/internal/repository"
	"github.com/nyayaai/backend/internal/router"
	"github.com/nyayaai/backend/internal/service"
	"github.com/nyayaai/backend/internal/service/enhance"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.GetConfig()

	if cfg.Database.Type == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.DSN), 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
	}

	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	tplRepo := repository.NewTemplateRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	chatRepo := repository.NewChatRepository(db)
	storyRepo := repository.NewStoryRepository(db)
	consultRepo := repository.NewConsultationRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)

	tplService := service.NewTemplateService(tplRepo)
	if err := tplService.Seed(); err != nil {
		log.Fatalf("Failed to seed templates: %v", err)
	}

	gen := buildGenerator(cfg)
	enhanceService := buildEnhanceService(cfg, gen)

	docService := service.NewDocumentService(docRepo, tplService)
	chatService := service.NewChatService(chatRepo, gen)
	storyService := service.NewStoryService(storyRepo)
	consultService := service.NewConsultationService(consultRepo)
	bookmarkService := service.NewBookmarkService(bookmarkRepo)

	tplHandler := handler.NewTemplateHandler(tplService)
	docHandler := handler.NewDocumentHandler(docService)
	enhanceHandler := handler.NewEnhanceHandler(enhanceService)
	chatHandler := handler.NewChatHandler(chatService)
	storyHandler := handler.NewStoryHandler(storyService)
	consultHandler := handler.NewConsultationHandler(consultService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)

	r := router.Setup(cfg, tplHandler, docHandler, enhanceHandler, chatHandler,
		storyHandler, consultHandler, bookmarkHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildGenerator constructs the configured AI provider, or nil when none is
// usable. The rule engine is not a Generator; it only serves enhancement.
func buildGenerator(cfg *config.Config) enhance.Generator {
	switch cfg.LLM.Provider {
	case "openai":
		if cfg.LLM.APIKey == "" {
			klog.V(2).Info("OPENAI_API_KEY not set, AI features disabled")
			return nil
		}
		gen, err := enhance.NewOpenAIProvider(cfg.LLM.APIKey, cfg.LLM.APIURL, cfg.LLM.Model, cfg.LLM.MaxTokens)
		if err != nil {
			klog.Errorf("openai provider init failed, AI features disabled: %v", err)
			return nil
		}
		return gen
	case "compat":
		if cfg.LLM.APIKey == "" {
			klog.V(2).Info("OPENAI_API_KEY not set, AI features disabled")
			return nil
		}
		return enhance.NewCompatProvider(cfg.LLM.APIKey, cfg.LLM.APIURL, cfg.LLM.Model, cfg.LLM.MaxTokens)
	default:
		return nil
	}
}

// buildEnhanceService honors the configured provider strictly. The rule
// engine serves only `rules` deployments; an AI deployment whose provider
// could not be constructed keeps reporting unavailable instead of silently
// degrading to rule output.
func buildEnhanceService(cfg *config.Config, gen enhance.Generator) *enhance.Service {
	if cfg.LLM.Provider == "rules" {
		return enhance.NewRuleService()
	}
	return enhance.NewService(gen, cfg.LLM.Timeout, cfg.LLM.MaxRetries)
}
