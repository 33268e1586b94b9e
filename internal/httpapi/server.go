// Package httpapi exposes the portal backend over HTTP: the assistant relay,
// the read-only fixture APIs both portals render from, and health endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"aura-portal/internal/usecase"
)

const serviceName = "aura-portal"

// genericAssistantError is the opaque message returned for every provider-side
// failure. Callers never see upstream detail.
const genericAssistantError = "assistant temporarily unavailable"

// ChatRelay is the assistant dependency of the server.
type ChatRelay interface {
	Relay(ctx context.Context, in usecase.RelayInput) (usecase.RelayOutput, error)
}

// Server wires the echo router around the relay service and fixture data.
type Server struct {
	echo *echo.Echo
	chat ChatRelay
	log  *zap.Logger
}

// Options tunes the HTTP surface.
type Options struct {
	CORSOrigin string
}

// New creates a Server with routes and middleware registered.
func New(chat ChatRelay, log *zap.Logger, opts Options) (*Server, error) {
	if chat == nil {
		return nil, errors.New("httpapi: chat relay must not be nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	origin := opts.CORSOrigin
	if origin == "" {
		origin = "*"
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{origin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(requestLogger(log))

	s := &Server{echo: e, chat: chat, log: log}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/", s.handleRoot)
	s.echo.GET("/health", s.handleHealth)

	api := s.echo.Group("/api")
	api.POST("/assistant/chat", s.handleChat)
	api.GET("/patients", s.handleListPatients)
	api.GET("/patients/:id", s.handleGetPatient)
	api.GET("/jobs", s.handleListJobs)
	api.GET("/jobs/:id", s.handleGetJob)
	api.GET("/candidates", s.handleListCandidates)
	api.GET("/interactions", s.handleInteractionLookup)
}

// Start begins serving and blocks until the listener fails or Shutdown runs.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			log.Info("request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("elapsed", time.Since(start)))
			return err
		}
	}
}
