package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// API identity reported by the root endpoint and swagger docs.
const (
	APIName    = "Tech Events API"
	APIVersion = "1.0.0"
)

// Config holds all configuration for the application
type Config struct {
	MongoURL     string
	DatabaseName string
	Environment  string
	Host         string
	Port         string
	CORSOrigins  []string
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file when not in production; in
// production only system environment variables are consulted.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env might not exist and we rely on system
	// environment variables, so a load failure is only a warning.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:  env,
		MongoURL:     os.Getenv("MONGODB_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		Host:         os.Getenv("HOST"),
		Port:         os.Getenv("PORT"),
		CORSOrigins:  splitOrigins(os.Getenv("CORS_ORIGINS")),
	}

	// Defaults carry no credentials; anything secret must come from the
	// environment.
	if cfg.MongoURL == "" {
		cfg.MongoURL = "mongodb://localhost:27017"
	}
	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "tech_events_db"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
