// Package server wires configuration, storage and services together and runs
// the HTTP API and the gRPC health endpoint until shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/ideae/internal/logging"
	"github.com/dmitrijs2005/ideae/internal/server/config"
	"github.com/dmitrijs2005/ideae/internal/server/creative"
	"github.com/dmitrijs2005/ideae/internal/server/httpapi"
	"github.com/dmitrijs2005/ideae/internal/server/llm"
	"github.com/dmitrijs2005/ideae/internal/server/moderation"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/ideae/internal/server/services"
	"github.com/dmitrijs2005/ideae/internal/server/storage"

	gs "github.com/dmitrijs2005/ideae/internal/server/grpc"
)

var logOutput io.Writer = os.Stdout

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	http   *httpapi.Server
	grpc   *gs.GRPCServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := logging.NewJSONLogger(logOutput, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	filter, err := moderation.LoadFilter(c.BlockListPath)
	if err != nil {
		return nil, fmt.Errorf("block list error: %w", err)
	}

	var generator llm.Generator = llm.Unconfigured{}
	if c.LLMAPIKey != "" {
		client, err := llm.NewClient(llm.Config{
			APIKey:  c.LLMAPIKey,
			Model:   c.LLMModel,
			BaseURL: c.LLMBaseURL,
			Timeout: c.LLMTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("llm client init error: %w", err)
		}
		generator = client
	} else {
		logger.Warn(ctx, "LLM API key is not set, generation requests will fail")
	}

	repos, err := repomanager.New(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	media := storage.NewMediaPresigner(storage.Config{
		Region:       c.S3Region,
		AccessKey:    c.S3RootUser,
		SecretKey:    c.S3RootPassword,
		Bucket:       c.S3Bucket,
		BaseEndpoint: c.S3BaseEndpoint,
	})

	svc := httpapi.Services{
		Users:     services.NewUserService(repos.Users(), []byte(c.SecretKey), c.AccessTokenValidityDuration, logger),
		Creative:  services.NewCreativeService(creative.DefaultInstructions(), filter, generator, repos.Suggestions(), logger),
		Favorites: services.NewFavoriteService(repos.Favorites()),
		Ideas:     services.NewIdeaService(repos.Ideas(), media),
	}

	logger.Info(ctx, "App initialized", "block_list_terms", filter.Len(), "llm_model", c.LLMModel)

	return &App{
		config: c,
		logger: logger,
		repos:  repos,
		http:   httpapi.NewServer(c.EndpointAddrHTTP, logger, svc, c.CORSOrigins, repos.Ping),
		grpc:   gs.NewGRPCServer(c.EndpointAddrGRPC, logger, repos.Ping),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run blocks until ctx is cancelled, a signal arrives or a server fails.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	start := func(name string, run func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := run(ctx); err != nil {
				app.logger.Error(ctx, "server failed", "server", name, "error", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("%s server: %w", name, err)
				}
				mu.Unlock()
				cancelFunc()
			}
		}()
	}

	start("http", app.http.Run)
	start("grpc", app.grpc.Run)

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "store close failed", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
	return firstErr
}
