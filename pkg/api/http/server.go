package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikhil-lohar/firstapp/pkg/adapters/metrics/prometheus"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Greeter produces the response bodies for the application routes
type Greeter interface {
	Greeting() string
	Health() string
	CurrentTime() string
}

// Server represents the HTTP API server
type Server struct {
	router   *gin.Engine
	server   *http.Server
	listener net.Listener
	greeter  Greeter
	logger   *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Addr    string
	Greeter Greeter
	Logger  *zap.Logger

	// Metrics and Gatherer are optional; /metrics is only mounted when Gatherer is set
	Metrics  *prometheus.Collector
	Gatherer promclient.Gatherer
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	// Paths match exactly; "/health-check/" is a 404, not a redirect
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))
	if cfg.Metrics != nil {
		router.Use(requestMetrics(cfg.Metrics))
	}

	s := &Server{
		router:  router,
		greeter: cfg.Greeter,
		logger:  logger,
	}

	s.setupRoutes(cfg.Gatherer)

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes(gatherer promclient.Gatherer) {
	routes := map[string]gin.HandlerFunc{
		"/":             s.handleGreeting,
		"/health-check": s.handleHealthCheck,
		"/get-time":     s.handleGetTime,
	}
	for path, handler := range routes {
		s.router.GET(path, handler)
		s.router.HEAD(path, handler)
	}

	if gatherer != nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds the TCP listener. Requests are not accepted until Serve is called.
func (s *Server) Listen() error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind HTTP listener on %s: %w", s.server.Addr, err)
	}
	s.listener = listener

	s.logger.Info("HTTP listener bound", zap.String("addr", listener.Addr().String()))
	return nil
}

// Addr returns the bound listener address, or nil before Listen
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Port returns the bound TCP port, or 0 before Listen
func (s *Server) Port() int {
	addr, ok := s.Addr().(*net.TCPAddr)
	if !ok {
		return 0
	}
	return addr.Port
}

// Serve accepts connections until Shutdown is called
func (s *Server) Serve() error {
	if s.listener == nil {
		return errors.New("HTTP server is not listening")
	}

	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
