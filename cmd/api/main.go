package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/recruiter-analyzer/internal/config"
	"alfredoptarigan/recruiter-analyzer/internal/server"
	"alfredoptarigan/recruiter-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// One model client for the whole process. Without a key the server still
	// starts and answers every generate call with a configuration error.
	var geminiService services.GeminiService
	if cfg.HasCredential() {
		svc, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.BaseURL)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		geminiService = svc
		log.Printf("✅ Gemini AI initialized (model %s)\n", cfg.Gemini.Model)
	} else {
		log.Println("⚠️  GEMINI_API_KEY is not set; /api/generate will fail until it is configured")
	}

	dispatcher := services.NewDispatcher(geminiService, services.WithStrictSchema(cfg.Gemini.StrictSchema))
	parser := services.NewDocumentParserService()
	log.Println("✅ Services initialized successfully")

	app := server.New(cfg, dispatcher, parser)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
