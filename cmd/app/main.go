package main

import (
	"flag"
	"log"
	"os"

	"MarketPulse/internal/di"
	"MarketPulse/pkg/config"

	"github.com/joho/godotenv"
)

func main() {
	// Local .env is optional; env vars win over YAML either way
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s news=%s primary=%v", cfg.Environment, cfg.News.Source, cfg.HasCredential())

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
