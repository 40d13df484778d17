package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/light-bringer/lingua-booking/internal/config"
	"github.com/light-bringer/lingua-booking/internal/pkg/logger"
	"github.com/light-bringer/lingua-booking/internal/services"
	"github.com/light-bringer/lingua-booking/internal/transport/grpc/pricing"
	httptransport "github.com/light-bringer/lingua-booking/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	// 1. Load configuration from .env and the environment
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.New(cfg.Environment)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	zl.Info("starting booking service",
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.String("grpc_port", cfg.GRPCPort),
		zap.String("http_port", cfg.HTTPPort),
		zap.String("school_timezone", cfg.SchoolLocation.String()),
		zap.Bool("auto_options", cfg.AutoOptions),
	)

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(cfg, zl)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Create gRPC server and register services
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(pricing.LoggingInterceptor(zl.Named("grpc"))))
	pricing.RegisterPricingServiceServer(grpcServer, serviceOpts.PricingHandler)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(pricing.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}

	errCh := make(chan error, 2)

	// 4. Start gRPC server in background
	go func() {
		zl.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	// 5. Start HTTP server in background
	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           httptransport.NewRouter(serviceOpts.HTTPHandler, zl.Named("http"), cfg.HTTPTimeout),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zl.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	// 6. Graceful shutdown handling
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var serveErr error
	select {
	case <-ctx.Done():
		zl.Info("shutting down gracefully")
	case serveErr = <-errCh:
		zl.Error("server stopped", zap.Error(serveErr))
	}

	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zl.Warn("HTTP server shutdown error", zap.Error(err))
	}

	grpcServer.GracefulStop()

	return serveErr
}
