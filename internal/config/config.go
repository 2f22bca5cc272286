package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	// HTTP server
	Port        string
	FrontendURL string

	// Database
	DatabaseURL string

	// Sessions
	JWTSecret       string
	SessionDuration time.Duration

	// OAuth provider
	GoogleClientID     string
	GoogleClientSecret string
	OAuthRedirectURL   string

	// Text-generation API
	AIAPIKey  string
	AIBaseURL string
	AIModel   string

	// Display currency used in insight transcripts
	Currency string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "/"),

		DatabaseURL: getEnv("DB_CONNECTION_STRING", ""),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		SessionDuration: getEnvDuration("SESSION_DURATION", 720*time.Hour),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		OAuthRedirectURL:   getEnv("OAUTH_REDIRECT_URL", "http://localhost:8080/api/auth/callback"),

		AIAPIKey:  getEnv("AI_API_KEY", ""),
		AIBaseURL: getEnv("AI_BASE_URL", "https://api.openai.com/v1"),
		AIModel:   getEnv("AI_MODEL", "gpt-4o-mini"),

		Currency: getEnv("CURRENCY", "USD"),
	}
}

// Validate fails fast on anything the server cannot run without.
func (c *Config) Validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DB_CONNECTION_STRING")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.GoogleClientID == "" {
		missing = append(missing, "GOOGLE_CLIENT_ID")
	}
	if c.GoogleClientSecret == "" {
		missing = append(missing, "GOOGLE_CLIENT_SECRET")
	}
	if c.AIAPIKey == "" {
		missing = append(missing, "AI_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
