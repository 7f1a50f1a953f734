package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spoonful-labs/recipeshare/config"
	"github.com/spoonful-labs/recipeshare/internal/database"
	"github.com/spoonful-labs/recipeshare/internal/server"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Apply pending schema migrations before serving
	if err := database.RunMigrations(cfg.URL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	srv := server.NewServer(db)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		addr := cfg.ServerHost + ":" + cfg.ServerPort
		log.Printf("Starting server on %s...", addr)
		errChan <- srv.Start(addr)
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
