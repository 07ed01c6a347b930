package grpc

import (
	"context"
	"time"

	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/pkg/logger"
	"rmu/credit_bank_service/storage"

	otgrpc "github.com/opentracing-contrib/go-grpc"
	"github.com/opentracing/opentracing-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// SetUpServer exposes the standard gRPC health service for the whole process
// and for cfg.ServiceName.
func SetUpServer(cfg config.Config, log logger.LoggerI) (*grpc.Server, *health.Server) {
	tracer := opentracing.GlobalTracer()

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(otgrpc.OpenTracingServerInterceptor(tracer)),
		grpc.StreamInterceptor(otgrpc.OpenTracingStreamServerInterceptor(tracer)),
	)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(cfg.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, hs)

	reflection.Register(grpcServer)

	log.Info("grpc health service registered", logger.String("service", cfg.ServiceName))
	return grpcServer, hs
}

// WatchDatabase flips service to NOT_SERVING while the database does not
// answer pings. It returns when ctx is done.
func WatchDatabase(ctx context.Context, hs *health.Server, service string, strg storage.StorageI, log logger.LoggerI, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	current := healthpb.HealthCheckResponse_SERVING
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		next := checkDatabase(ctx, strg, interval)
		if next == current {
			continue
		}

		current = next
		hs.SetServingStatus(service, current)
		log.Warn("database health changed", logger.String("status", current.String()))
	}
}

func checkDatabase(ctx context.Context, strg storage.StorageI, timeout time.Duration) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := strg.Ping(ctx); err != nil {
		return healthpb.HealthCheckResponse_NOT_SERVING
	}
	return healthpb.HealthCheckResponse_SERVING
}
