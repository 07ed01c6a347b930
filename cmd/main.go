package main

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"rmu/credit_bank_service/api"
	"rmu/credit_bank_service/api/handlers"
	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/grpc"
	"rmu/credit_bank_service/pkg/cron"
	initialsetup "rmu/credit_bank_service/pkg/initial_setup"
	"rmu/credit_bank_service/pkg/jaeger"
	"rmu/credit_bank_service/pkg/logger"
	psqlpool "rmu/credit_bank_service/pkg/pool"
	"rmu/credit_bank_service/storage"
	"rmu/credit_bank_service/storage/objectstore"
	"rmu/credit_bank_service/storage/postgres"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	loggerLevel := logger.LevelDebug

	switch cfg.Environment {
	case config.DebugMode:
		loggerLevel = logger.LevelDebug
		gin.SetMode(gin.DebugMode)
	case config.TestMode:
		loggerLevel = logger.LevelDebug
		gin.SetMode(gin.TestMode)
	default:
		loggerLevel = logger.LevelInfo
		gin.SetMode(gin.ReleaseMode)
	}

	log := logger.NewLogger(cfg.ServiceName, loggerLevel)
	defer logger.Cleanup(log)
	log.Info("Service env",
		logger.String("environment", cfg.Environment),
		logger.String("http", cfg.HTTPPort),
		logger.String("grpc", cfg.GRPCPort),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	closer, err := jaeger.InitTracer(cfg.ServiceName, cfg.JaegerHostPort)
	if err != nil {
		log.Panic("jaeger.InitTracer", logger.Error(err))
	}
	defer closer.Close()

	if cfg.MigrationsPath != "" {
		migrator, err := postgres.NewMigrator(cfg.MigrationsPath, psqlpool.DSN(cfg), log)
		if err != nil {
			log.Panic("postgres.NewMigrator", logger.Error(err))
		}
		if err = migrator.Up(); err != nil {
			log.Panic("migrator.Up", logger.Error(err))
		}
		_ = migrator.Close()
	}

	pgStore, err := postgres.NewPostgres(ctx, cfg, log)
	if err != nil {
		log.Panic("postgres.NewPostgres", logger.Error(err))
	}
	defer pgStore.CloseDB()

	if cfg.AdminEmail != "" {
		if _, _, err = initialsetup.CreateDefaultAdmin(ctx, pgStore.User(), log, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Panic("initialsetup.CreateDefaultAdmin", logger.Error(err))
		}
	}

	var files storage.FileStorageI
	if cfg.MinioAccessKeyID != "" {
		files, err = objectstore.New(ctx, cfg, log)
		if err != nil {
			log.Panic("objectstore.New", logger.Error(err))
		}
	} else {
		log.Warn("object storage disabled, cover uploads will fail")
	}

	scheduler := cron.New(log, pgStore)
	if err = scheduler.RunJobs(ctx, cfg.EnrollmentExpirySchedule); err != nil {
		log.Panic("scheduler.RunJobs", logger.Error(err))
	}
	defer scheduler.Stop()

	h := handlers.NewHandler(cfg, log, pgStore, files)
	srv := &http.Server{
		Addr:              cfg.HTTPPort,
		Handler:           api.SetUpRouter(h, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcServer, hs := grpc.SetUpServer(cfg, log)
	go grpc.WatchDatabase(ctx, hs, cfg.ServiceName, pgStore, log, 15*time.Second)

	lis, err := net.Listen("tcp", cfg.GRPCPort)
	if err != nil {
		log.Panic("net.Listen", logger.Error(err))
	}

	go func() {
		log.Info("GRPC: Server being started...", logger.String("port", cfg.GRPCPort))
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("grpcServer.Serve", logger.Error(err))
		}
	}()

	go func() {
		log.Info("HTTP: Server being started...", logger.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Panic("srv.ListenAndServe", logger.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("srv.Shutdown", logger.Error(err))
	}
	grpcServer.GracefulStop()
}
