// Package httpapi exposes the services over HTTP/JSON using echo.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/ideae/internal/logging"
	"github.com/dmitrijs2005/ideae/internal/server/services"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	shutdownTimeout = 10 * time.Second
	bodyLimit       = "1M"
	rootMessage     = "Ideæ API - Creative Assistant"
)

// Services bundles the business services served by the API.
type Services struct {
	Users     *services.UserService
	Creative  *services.CreativeService
	Favorites *services.FavoriteService
	Ideas     *services.IdeaService
}

// Server is the HTTP API server.
type Server struct {
	address string
	echo    *echo.Echo
	logger  logging.Logger
	svc     Services
	ping    func(context.Context) error
}

// NewServer builds the router. ping, when set, backs the health endpoint.
func NewServer(address string, l logging.Logger, svc Services, corsOrigins []string, ping func(context.Context) error) *Server {
	s := &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		svc:     svc,
		ping:    ping,
	}
	s.setupEcho(corsOrigins)
	return s
}

func (s *Server) setupEcho(corsOrigins []string) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(s.accessLog)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(middleware.BodyLimit(bodyLimit))

	e.GET("/health", s.handleHealth)

	api := e.Group("/api")
	api.GET("/", s.handleRoot)

	// Public endpoints
	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)
	api.GET("/shared", s.handleListShared)
	api.GET("/shared/:shareId", s.handleGetShared)

	// Protected endpoints
	protected := api.Group("")
	protected.Use(s.authMiddleware)
	protected.GET("/auth/me", s.handleMe)
	protected.PUT("/settings/theme", s.handleUpdateTheme)

	protected.POST("/creative/generate", s.handleGenerate)
	protected.GET("/creative/history", s.handleHistory)

	protected.POST("/favorites", s.handleCreateFavorite)
	protected.GET("/favorites", s.handleListFavorites)
	protected.PUT("/favorites/:id", s.handleUpdateFavorite)
	protected.DELETE("/favorites/:id", s.handleDeleteFavorite)

	protected.POST("/ideas", s.handleCreateIdea)
	protected.GET("/ideas", s.handleListIdeas)
	protected.POST("/ideas/media", s.handlePresignMedia)
	protected.GET("/ideas/:id", s.handleGetIdea)
	protected.PUT("/ideas/:id", s.handleUpdateIdea)
	protected.DELETE("/ideas/:id", s.handleDeleteIdea)
	protected.POST("/ideas/:id/share", s.handleShareIdea)
	protected.DELETE("/ideas/:id/share", s.handleUnshareIdea)
	protected.GET("/ideas/:id/media", s.handleGetIdeaMedia)

	s.echo = e
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleHealth(c echo.Context) error {
	if s.ping != nil {
		if err := s.ping(c.Request().Context()); err != nil {
			s.logger.Warn(c.Request().Context(), "health check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": rootMessage})
}
