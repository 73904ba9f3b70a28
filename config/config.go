package config

import (
	"time"

	"noteful/utils"
)

type ServerConfig struct {
	Port           string
	LogLevel       string
	MaxRequestSize int64
}

type AuthConfig struct {
	JWTSecret string
	JWTExpiry time.Duration
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:           utils.GetEnvAsString("PORT", "8080"),
		LogLevel:       utils.GetEnvAsString("LOG_LEVEL", "info"),
		MaxRequestSize: int64(utils.GetEnvAsInt("MAX_REQUEST_SIZE", 1<<20)),
	}
}

func LoadAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret: utils.GetEnvAsString("JWT_SECRET_KEY", ""),
		JWTExpiry: utils.GetEnvAsDuration("JWT_EXPIRY", 15*time.Minute),
	}
}
