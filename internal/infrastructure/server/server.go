package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/cloudapi/internal/api/http"
	"github.com/GriffinCanCode/cloudapi/internal/api/middleware"
	"github.com/GriffinCanCode/cloudapi/internal/infrastructure/config"
	"github.com/GriffinCanCode/cloudapi/internal/infrastructure/logging"
	"github.com/GriffinCanCode/cloudapi/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/cloudapi/internal/infrastructure/tracing"
)

// Version is reported by /health and the catalogue. Overridden at build
// time with -ldflags "-X .../server.Version=...".
var Version = "1.0.0"

const readHeaderTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	handler http.Handler
	http    *http.Server
	logger  *logging.Logger
	tracer  *tracing.Tracer
	metrics *monitoring.Metrics
	config  *config.Config
}

// Option customizes a Server
type Option func(*Server)

// WithLogger replaces the logger built from configuration
func WithLogger(logger *logging.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	s := &Server{config: cfg}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		logger, err := logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
			Service:     cfg.Server.Name,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build logger: %w", err)
		}
		s.logger = logger
	}

	s.logger.Info("Initializing compute API",
		zap.String("service", cfg.Server.Name),
		zap.String("version", Version),
		zap.String("addr", cfg.Server.Addr()),
	)

	s.tracer = tracing.New(cfg.Server.Name, s.logger.Component("tracing").Logger)

	if !cfg.Logging.Development && gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Recovery(s.logger.Component("http").Logger))
	router.Use(tracing.HTTPMiddleware(s.tracer))

	var handlerMetrics *apihttp.HandlerMetrics
	if cfg.Metrics.Enabled {
		s.metrics = monitoring.NewMetrics()
		router.Use(monitoring.Middleware(s.metrics))
		handlerMetrics = apihttp.NewHandlerMetrics(s.metrics)
		s.logger.Info("Prometheus metrics enabled", zap.String("path", cfg.Metrics.Path))
	}

	if cfg.CORS.Enabled {
		corsCfg := middleware.DefaultCORSConfig()
		corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
		router.Use(middleware.CORS(corsCfg))
	}

	handlers := apihttp.NewHandlers(cfg.Server.Name, Version, handlerMetrics, s.logger.Component("http").Logger)
	handlers.Register(router)

	if s.metrics != nil {
		router.GET(cfg.Metrics.Path, gin.WrapH(s.metrics.Handler()))
	}

	s.router = router
	s.handler = router

	if cfg.Compression.Enabled {
		compress, err := middleware.Compression(cfg.Compression.MinSize)
		if err != nil {
			return nil, err
		}
		s.handler = compress(router)
	}

	s.http = &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          zap.NewStdLog(s.logger.Logger),
	}

	s.logger.Info("Server initialized successfully")

	return s, nil
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Logger returns the server logger
func (s *Server) Logger() *logging.Logger {
	return s.logger
}

// Metrics returns the metrics collector, nil when disabled
func (s *Server) Metrics() *monitoring.Metrics {
	return s.metrics
}

// Run listens on the configured address and serves until Shutdown.
func (s *Server) Run() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ln)
}

// Serve serves on an existing listener until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("Starting HTTP server", zap.String("addr", ln.Addr().String()))

	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests,
// bounded by the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	timeout := s.config.Server.ShutdownTimeout.Std()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Graceful shutdown failed", zap.Error(err))
		err = fmt.Errorf("failed to shut down http server: %w", err)
	}

	s.tracer.Close()
	_ = s.logger.Sync()

	return err
}
