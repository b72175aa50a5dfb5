package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/ideae/internal/flagx"
)

var serverFlags = []string{
	"-a", "-x", "-d", "-s", "-t", "-k", "-l", "-m", "-w", "-f", "-o", "-v",
	"-u", "-p", "-b", "-g", "-e",
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-x string   gRPC health bind address (e.g. ":50051")
//	-d string   PostgreSQL DSN, or memory://
//	-s string   session token HMAC secret
//	-t int      session token validity, minutes
//	-k string   LLM API key
//	-l string   LLM base URL
//	-m string   LLM model
//	-w int      LLM request timeout, seconds
//	-f string   disallow-list file
//	-o string   comma separated CORS origins
//	-v string   log level
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "x", config.EndpointAddrGRPC, "gRPC health address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenMinutes := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "session token validity (in minutes)")
	fs.StringVar(&config.LLMAPIKey, "k", config.LLMAPIKey, "LLM API key")
	fs.StringVar(&config.LLMBaseURL, "l", config.LLMBaseURL, "LLM base URL")
	fs.StringVar(&config.LLMModel, "m", config.LLMModel, "LLM model")
	llmSeconds := fs.Int("w", int(config.LLMTimeout.Seconds()), "LLM timeout (in seconds)")
	fs.StringVar(&config.BlockListPath, "f", config.BlockListPath, "disallow-list file")
	origins := fs.String("o", strings.Join(config.CORSOrigins, ","), "CORS origins, comma separated")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*tokenMinutes) * time.Minute
	config.LLMTimeout = time.Duration(*llmSeconds) * time.Second
	config.CORSOrigins = flagx.SplitList(*origins)
}
