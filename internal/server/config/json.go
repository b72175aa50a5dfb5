package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/ideae/internal/flagx"
	"github.com/dmitrijs2005/ideae/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "24h" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrHTTP            string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	LLMAPIKey                   string         `json:"llm_api_key"`
	LLMBaseURL                  string         `json:"llm_base_url"`
	LLMModel                    string         `json:"llm_model"`
	LLMTimeout                  timex.Duration `json:"llm_timeout"`
	BlockListPath               string         `json:"blocklist_path"`
	CORSOrigins                 []string       `json:"cors_origins"`
	LogLevel                    string         `json:"log_level"`
	S3RootUser                  string         `json:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
}

// parseJson overlays values from the file named by -c / -config. Fields
// missing from the file keep their current values. An unreadable or invalid
// file panics: the process cannot start with a half-applied configuration.
func parseJson(config *Config) {
	path := flagx.JSONConfigPath()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	setString(&config.LLMAPIKey, c.LLMAPIKey)
	setString(&config.LLMBaseURL, c.LLMBaseURL)
	setString(&config.LLMModel, c.LLMModel)
	if c.LLMTimeout.Duration > 0 {
		config.LLMTimeout = c.LLMTimeout.Duration
	}
	setString(&config.BlockListPath, c.BlockListPath)
	if len(c.CORSOrigins) > 0 {
		config.CORSOrigins = c.CORSOrigins
	}
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
