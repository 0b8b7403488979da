// Package httpapi exposes the authentication and schedule operations over
// HTTP and translates domain errors to wire responses. No domain error
// escapes this layer unhandled.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/campushub/campushub/internal/logging"
	"github.com/campushub/campushub/internal/server/accounts"
	"github.com/campushub/campushub/internal/server/auth"
	"github.com/campushub/campushub/internal/server/events"
	"github.com/campushub/campushub/internal/server/models"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	addr     string
	logger   logging.Logger
	accounts *accounts.Service
	events   *events.Service
	issuer   *auth.Issuer
	engine   *gin.Engine
}

func NewServer(addr string, logger logging.Logger, accountService *accounts.Service, eventService *events.Service, issuer *auth.Issuer) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		addr:     addr,
		logger:   logger,
		accounts: accountService,
		events:   eventService,
		issuer:   issuer,
		engine:   engine,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.engine.POST("/signup", s.handleSignup)
	s.engine.POST("/login", s.handleLogin)

	api := s.engine.Group("/api", s.requireAuth())
	api.GET("/events", s.handleListEvents)
	api.POST("/events", s.requireRole(models.RoleAdmin), s.handleCreateEvent)
}

// Handler returns the underlying http.Handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
