package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	BackendBaseURL string
	Port           string
	IsProduction   bool
	BackendTimeout time.Duration
	SessionFile    string
	RateLimit      string
	CORSOrigins    []string
	PosthogAPIKey  string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("EGABANK_API_URL", "http://localhost:8080/api")
	viper.SetDefault("PORT", "4200")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BACKEND_TIMEOUT", "30s")
	viper.SetDefault("SESSION_FILE", ".egabank_session.json")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:4200")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.BackendBaseURL = viper.GetString("EGABANK_API_URL")
	if cfg.BackendBaseURL == "" {
		log.Println("Warning: EGABANK_API_URL not set. Defaulting to http://localhost:8080/api.")
		cfg.BackendBaseURL = "http://localhost:8080/api"
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "4200"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	timeoutStr := viper.GetString("BACKEND_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for BACKEND_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.BackendTimeout = timeout

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.SessionFile = viper.GetString("SESSION_FILE")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSOrigins = viper.GetStringSlice("CORS_ORIGINS")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
