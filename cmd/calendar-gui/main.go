package main

import (
	"log"

	"calendar-gui/internal/app"
	"calendar-gui/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger := cfg.NewLogger()

	application := app.NewApplication(cfg, appLogger)
	if err := application.Run(); err != nil {
		appLogger.Error("main", err, nil)
		log.Fatalf("Application execution failed: %v", err)
	}

	appLogger.Info("main", "application terminated", nil)
}
