package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikhil-lohar/firstapp/internal/application/greeter"
	"github.com/nikhil-lohar/firstapp/internal/config"
	"github.com/nikhil-lohar/firstapp/pkg/adapters/metrics/prometheus"
	"github.com/nikhil-lohar/firstapp/pkg/api/grpc"
	"github.com/nikhil-lohar/firstapp/pkg/api/http"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting greeting server",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	// Metrics registry with the standard process collectors
	registry := promclient.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsCollector := prometheus.NewCollector(registry)
	metricsCollector.SetBuildInfo(Version)

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("failed to resolve time zone", zap.Error(err))
	}

	greeterSvc := greeter.NewService(
		greeter.WithLayout(cfg.Clock.Layout),
		greeter.WithLocation(loc),
	)

	httpServer := http.NewServer(&http.Config{
		Addr:     cfg.GetHTTPAddr(),
		Greeter:  greeterSvc,
		Logger:   logger,
		Metrics:  metricsCollector,
		Gatherer: registry,
	})

	// A bind failure is fatal
	if err := httpServer.Listen(); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}
	announce(os.Stdout, httpServer.Port())

	go func() {
		if err := httpServer.Serve(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	var grpcServer *grpc.Server
	if cfg.GRPC.Enabled {
		grpcServer, err = grpc.NewServer(&grpc.Config{
			Addr:   cfg.GetGRPCAddr(),
			Logger: logger,
		})
		if err != nil {
			logger.Fatal("failed to create gRPC server", zap.Error(err))
		}
		logger.Info("gRPC health endpoint bound", zap.String("addr", grpcServer.Addr().String()))

		go func() {
			if err := grpcServer.Start(); err != nil {
				logger.Fatal("gRPC server failed", zap.Error(err))
			}
		}()
	}

	logger.Info("greeting server started",
		zap.Int("http_port", httpServer.Port()),
		zap.Bool("grpc_enabled", cfg.GRPC.Enabled))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if grpcServer != nil {
		if err := grpcServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("gRPC server shutdown error", zap.Error(err))
		}
	}

	logger.Info("greeting server shut down complete")
}

// announce writes the startup line once the HTTP listener is bound
func announce(w io.Writer, port int) {
	fmt.Fprintf(w, "Server is running on http://localhost:%d\n", port)
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
