package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset or
// empty variables leave the current value untouched.
//
// Recognized variables:
//
//	ADDRESS               HTTP bind address
//	DATABASE_DSN          PostgreSQL DSN
//	JWT_SECRET            JWT HMAC secret key
//	TOKEN_VALIDITY        token lifetime as a Go duration ("24h")
//	ENVIRONMENT           "development" or "production"
//	CORS_ALLOWED_ORIGINS  comma-separated origin list
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		config.Environment = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		config.CORSAllowedOrigins = splitOrigins(v)
	}
}
