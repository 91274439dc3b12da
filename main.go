package main

import (
	"log"

	"mathquest_backend/internal/app"
	"mathquest_backend/internal/config"
	"mathquest_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
