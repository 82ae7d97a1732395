package config

import (
	"os"
	"time"
)

// BackendConfig holds configuration for the storefront backend
type BackendConfig struct {
	Name        string
	BaseURL     string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port    string
	Backend BackendConfig
}

// LoadConfig loads the gateway configuration from the environment
func LoadConfig() *GatewayConfig {
	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Backend: BackendConfig{
			Name:        "storefront",
			BaseURL:     getEnv("STOREFRONT_URL", "http://localhost:8080"),
			Timeout:     30 * time.Second,
			HealthCheck: "/health",
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
