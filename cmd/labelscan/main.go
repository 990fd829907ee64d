package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/foodlens/labelscan/internal/config"
	"github.com/foodlens/labelscan/internal/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg := config.Load()
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	Execute(cfg)
}
