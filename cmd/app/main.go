package main

import (
	"log"

	"CardCheckout/config"
	"CardCheckout/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	if err := app.Run(cfg); err != nil {
		log.Fatalf("App error: %s", err)
	}
}
