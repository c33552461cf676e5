package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/tcehjaava/tmdb-mcp-server/configs"
	"github.com/tcehjaava/tmdb-mcp-server/internal/adapter/inbound/mcpserver"
	"github.com/tcehjaava/tmdb-mcp-server/internal/adapter/outbound/tmdb"
	"github.com/tcehjaava/tmdb-mcp-server/internal/adapter/outbound/toolregistry"
	"github.com/tcehjaava/tmdb-mcp-server/internal/catalog"
	"github.com/tcehjaava/tmdb-mcp-server/internal/usecase"
)

var transportFlag string

var rootCmd = &cobra.Command{
	Use:   "tmdb-mcp-server",
	Short: "MCP server exposing TMDB search and discovery tools",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	RunE:  runServe,
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the registered tool catalog",
	RunE:  runTools,
}

func init() {
	serveCmd.Flags().StringVar(&transportFlag, "transport", "", "Transport mode: stdio or http (overrides TMDB_TRANSPORT)")
	rootCmd.Version = mcpserver.Version
	rootCmd.AddCommand(serveCmd, toolsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// === Configuration ===
	cfg, err := configs.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if transportFlag != "" {
		cfg.Transport = transportFlag
	}

	// === Logging ===
	logLevel := cfg.ParsedLogLevel()
	var logger *slog.Logger

	if cfg.Transport == "stdio" {
		// In stdio mode stdout carries protocol frames only, so log to a
		// file instead.
		logFile, err := os.OpenFile("/tmp/tmdb-mcp-server.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
		} else {
			logger = slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: logLevel}))
		}
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	}

	slog.SetDefault(logger)
	logger.Info("Logger initialized.", slog.String("level", logLevel.String()), slog.String("transport", cfg.Transport))

	// === OpenTelemetry Initialization ===
	shutdownOtel, err := initOtelProvider(cfg)
	if err != nil {
		logger.Error("Failed to initialize OpenTelemetry.", slog.Any("error", err))
		return err
	}
	defer func() {
		if err := shutdownOtel(context.Background()); err != nil {
			logger.Error("Failed to shutdown OpenTelemetry TracerProvider.", slog.Any("error", err))
		}
	}()

	// === Dependency Injection ===
	httpClient := &http.Client{
		Timeout: cfg.HTTPClientTimeout,
	}

	tmdbClient, err := tmdb.NewClient(tmdb.Config{
		BaseURL:  cfg.APIBaseURL,
		APIKey:   cfg.APIKey,
		Language: cfg.Language,
	}, httpClient, logger)
	if err != nil {
		logger.Error("Failed to configure TMDB client.", slog.Any("error", err))
		return err
	}

	tools := catalog.Without(catalog.All(), cfg.DisabledTools)
	registry, err := toolregistry.New(tools, logger)
	if err != nil {
		logger.Error("Failed to build tool registry.", slog.Any("error", err))
		return err
	}

	srv, err := mcpserver.New(
		usecase.NewListToolsUseCase(registry, logger),
		usecase.NewDispatchToolUseCase(registry, tmdbClient, logger),
		logger,
	)
	if err != nil {
		logger.Error("Failed to build MCP server.", slog.Any("error", err))
		return err
	}

	// === Transport Mode Selection ===
	switch cfg.Transport {
	case "stdio":
		logger.Info("Starting in stdio mode.")
		if err := srv.ServeStdio(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Stdio server error.", slog.Any("error", err))
			return err
		}
		return nil

	case "http":
		httpServer := &http.Server{
			Addr:    cfg.ListenAddr,
			Handler: srv.Handler(),
		}
		go func() {
			logger.Info("HTTP server starting.", slog.String("address", cfg.ListenAddr))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("HTTP server failed to start.", slog.Any("error", err))
				stop()
			}
		}()

		// Wait for interrupt signal.
		<-ctx.Done()

		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server graceful shutdown failed.", slog.Any("error", err))
			return err
		}
		logger.Info("Server shut down gracefully.")
		return nil

	default:
		return fmt.Errorf("invalid transport mode %q (expected stdio or http)", cfg.Transport)
	}
}

func runTools(cmd *cobra.Command, args []string) error {
	cfg, err := configs.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	tools := catalog.Without(catalog.All(), cfg.DisabledTools)
	for _, tool := range tools {
		fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s\n", tool.Descriptor.Name, tool.Descriptor.Description)
	}
	return nil
}

// initOtelProvider initializes the OpenTelemetry SDK and sets up the OTLP
// trace exporter. It returns a shutdown function to be called on application
// exit.
func initOtelProvider(cfg *configs.Config) (func(context.Context) error, error) {
	ctx := context.Background()

	if cfg.OtelExporterOtlpEndpoint == "" {
		slog.Info("OTEL_EXPORTER_OTLP_ENDPOINT not set, OpenTelemetry tracing disabled.")
		return func(context.Context) error { return nil }, nil
	}

	slog.Info("Initializing OTLP exporter.", slog.String("endpoint", cfg.OtelExporterOtlpEndpoint))

	grpcOpts := []grpc.DialOption{}
	if cfg.OtelExporterOtlpInsecure {
		grpcOpts = append(grpcOpts, grpc.WithTransportCredentials(insecure.NewCredentials()))
		slog.Warn("Using insecure connection for OTLP exporter.")
	} else {
		grpcOpts = append(grpcOpts, grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{})))
	}

	conn, err := grpc.NewClient(cfg.OtelExporterOtlpEndpoint, grpcOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to OTLP endpoint: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(mcpserver.Name),
			semconv.ServiceVersionKey.String(mcpserver.Version),
		),
	)
	if err != nil {
		_ = traceExporter.Shutdown(ctx)
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(r),
	)
	otel.SetTracerProvider(tp)

	// W3C Trace Context and Baggage propagation.
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	slog.Info("OpenTelemetry TracerProvider configured.")

	return func(ctx context.Context) error {
		providerErr := tp.Shutdown(ctx)
		connErr := conn.Close()
		return errors.Join(providerErr, connErr)
	}, nil
}
