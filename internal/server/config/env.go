package config

import (
	"os"

	"github.com/dmitrijs2005/ideae/internal/flagx"
)

// envBindings maps environment variables onto string fields.
func envBindings(c *Config) map[string]*string {
	return map[string]*string{
		"HTTP_ADDR":      &c.EndpointAddrHTTP,
		"GRPC_ADDR":      &c.EndpointAddrGRPC,
		"DATABASE_DSN":   &c.DatabaseDSN,
		"JWT_SECRET":     &c.SecretKey,
		"LLM_API_KEY":    &c.LLMAPIKey,
		"LLM_BASE_URL":   &c.LLMBaseURL,
		"LLM_MODEL":      &c.LLMModel,
		"BLOCKLIST_PATH": &c.BlockListPath,
		"LOG_LEVEL":      &c.LogLevel,
	}
}

// parseEnv overlays non-empty environment variables.
func parseEnv(config *Config) {
	for key, dst := range envBindings(config) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	if v, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		if origins := flagx.SplitList(v); len(origins) > 0 {
			config.CORSOrigins = origins
		}
	}
}
