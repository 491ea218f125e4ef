package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	reconcilerpb "github.com/simdocs-io/report-reconciler/gen/proto/reconciler/v1"
	"github.com/simdocs-io/report-reconciler/internal/auth"
	"github.com/simdocs-io/report-reconciler/internal/common"
	"github.com/simdocs-io/report-reconciler/internal/export"
	"github.com/simdocs-io/report-reconciler/internal/notify"
	"github.com/simdocs-io/report-reconciler/internal/reconcile"
	"github.com/simdocs-io/report-reconciler/internal/repository"
	"github.com/simdocs-io/report-reconciler/internal/server"
)

func main() {
	// Logger
	zlog, _ := zap.NewProduction()
	defer zlog.Sync()
	log := zlog.Sugar()

	// Env
	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Structured logger for the service graph
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// DB pool + ent client
	entc, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer repository.Close(entc, pool, logger)

	// Healthcheck DB on startup
	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		log.Fatalf("DB health failed: %v", err)
	}
	log.Infow("DB health OK")

	// Completion notifier: Pub/Sub when configured, logging fallback otherwise
	var notifier notify.CompletionNotifier
	if cfg.Notify.ProjectID != "" {
		ps, err := notify.NewPubSubNotifier(ctx, cfg.Notify, logger)
		if err != nil {
			log.Fatalf("pubsub notifier: %v", err)
		}
		defer ps.Stop()
		notifier = ps
	} else {
		notifier = &notify.LogNotifier{Logger: logger}
	}

	// Service graph
	docs := repository.NewDocumentRepository(entc, logger)
	unmatched := repository.NewUnmatchedRepository(entc, logger)
	svc := reconcile.NewService(docs, unmatched, notifier, cfg.Batch.ApplyTimeout, logger)
	exporter := export.NewService(unmatched, logger)

	// gRPC server with auth interceptor
	verifier := auth.NewVerifier(cfg.Auth)
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(auth.UnaryInterceptor(verifier, logger)),
	)
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	reconcilerpb.RegisterReconcilerServiceServer(grpcServer,
		server.NewReconcilerService(svc, exporter, cfg.Batch.MaxReports, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
}
