// Package main is the entry point for the Doc2Deck API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/doc2deck/internal/config"
	"github.com/Shimizu-Technology/doc2deck/internal/database"
	"github.com/Shimizu-Technology/doc2deck/internal/handlers"
	"github.com/Shimizu-Technology/doc2deck/internal/router"
	"github.com/Shimizu-Technology/doc2deck/internal/services/ai"
	"github.com/Shimizu-Technology/doc2deck/internal/services/deck"
	"github.com/Shimizu-Technology/doc2deck/internal/services/retention"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 Doc2Deck API %s starting...", Version)

	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	log.Printf("📋 Config loaded: port=%s, gin_mode=%s, rate_limit=%d/h", cfg.Port, cfg.GinMode, cfg.RateLimit)

	gin.SetMode(cfg.GinMode)

	// Step 2: Connect to Database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("✅ Database connected")

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	// Step 3: Create Services
	writer := ai.New(cfg.OpenRouterAPIKey, cfg.OpenRouterModel, cfg.AITimeout)
	aiMode := "heuristic"
	if cfg.OpenRouterAPIKey != "" {
		aiMode = "openrouter"
		log.Printf("🤖 AI notes enabled (model %s, heuristic fallback)", cfg.OpenRouterModel)
	} else {
		log.Println("⚠️  No OPENROUTER_API_KEY set; notes and feedback use heuristics only")
	}

	decks := deck.New(cfg.DeckDir)

	var sweeper *retention.Sweeper
	if cfg.UploadRetention > 0 {
		sweeper = retention.NewSweeper(cfg.UploadDir, cfg.UploadRetention)
		if err := sweeper.Start(); err != nil {
			log.Fatalf("❌ Failed to start upload cleanup: %v", err)
		}
	}

	// Step 4: Setup HTTP Router
	h := handlers.NewHandler(db, writer, decks, handlers.Options{
		UploadDir:    cfg.UploadDir,
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     cfg.TokenTTL,
		SecureCookie: cfg.GinMode == gin.ReleaseMode,
		AIMode:       aiMode,
	})
	r := router.Setup(h, db, cfg.RateLimit, cfg.AllowedOrigins)

	// Step 5: Start the HTTP Server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  60 * time.Second, // 50MB uploads on slow links
		WriteTimeout: 90 * time.Second, // Covers the AI timeout plus rendering
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		log.Printf("📖 Health check: http://localhost:%s/api/v1/health", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 6: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	if sweeper != nil {
		sweeper.Stop()
		log.Println("⏳ Upload cleanup stopped")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
}
