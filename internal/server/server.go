package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"places-api/config"
	"places-api/internal/handler"
	"places-api/internal/middleware"
	"places-api/internal/ratelimit"
	"places-api/internal/transport/httpdto"
	"places-api/internal/validation"
	places_errors "places-api/pkg/errors"
	"places-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Place *handler.PlaceHandler
	User  *handler.UserHandler
	Auth  *handler.AuthHandler
}

// HealthFunc reports whether the store is reachable.
type HealthFunc func(ctx context.Context) error

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	validation.Register()

	engine := gin.New()
	engine.Use(gin.Recovery())
	// nil trusts no proxy, so ClientIP is the socket peer
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		if l != nil {
			l.Warnf("Invalid TRUSTED_PROXIES %v, trusting no proxy: %s", cfg.TrustedProxies, err)
		}
		_ = engine.SetTrustedProxies(nil)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.AppPort),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

// Engine exposes the gin engine, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// SetupRoutes wires middleware and routes. limiter may be nil to disable
// auth rate limiting; health may be nil when no store is attached.
func (s *Server) SetupRoutes(handlers *Handlers, limiter ratelimit.Limiter, health HealthFunc) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.MetricsMiddleware())
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewMessageResponse("pong"))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if health != nil {
			if err := health(c.Request.Context()); err != nil {
				_ = c.Error(places_errors.Wrap(err, "Store unavailable.", http.StatusServiceUnavailable))
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api")

	places := api.Group("/places")
	{
		places.GET("/user/:uid", handlers.Place.GetByUserID)
		places.GET("/:pid", handlers.Place.GetByID)
		places.POST("", handlers.Place.Create)
		places.PATCH("/:pid", handlers.Place.Update)
		places.DELETE("/:pid", handlers.Place.Delete)
	}

	users := api.Group("/users")
	{
		users.GET("", handlers.User.List)

		auth := users.Group("")
		if limiter != nil {
			auth.Use(middleware.AuthRateLimitMiddleware(limiter))
		}
		auth.POST("/signup", handlers.Auth.Signup)
		auth.POST("/login", handlers.Auth.Login)
	}

	s.engine.NoRoute(func(c *gin.Context) {
		_ = c.Error(places_errors.RouteNotFound())
	})
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-errCh:
		if s.logger != nil {
			s.logger.Errorf("Error in starting the server: %s", err)
		}
		return err
	case <-quit:
	}

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
