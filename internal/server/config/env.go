package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration values from environment variables onto the
// provided Config. An optional .env file in the working directory is loaded
// first; variables already present in the environment win over the file.
//
// Recognized variables:
//
//	PORT                 HTTP port (bound as ":" + PORT)
//	DATABASE_URL         PostgreSQL DSN
//	JWT_SECRET           HMAC signing secret
//	JWT_EXPIRES_IN       token lifetime as a Go duration string, e.g. "24h"
//	GIN_MODE             gin mode (debug, release, test)
//	CORS_ALLOWED_ORIGINS comma-separated origin list
//	LOG_LEVEL            debug, info, warn, error
func parseEnv(config *Config) {
	// Missing .env is fine, real deployments use actual environment variables.
	_ = godotenv.Load()

	if v := os.Getenv("PORT"); v != "" {
		config.EndpointAddrHTTP = ":" + v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		config.GinMode = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		config.CORSAllowedOrigins = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
}
