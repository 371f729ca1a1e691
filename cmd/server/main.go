// Command propledger-server starts the property ledger gRPC server.
package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/propledger/gen/go/propledger/v1"
	"github.com/and161185/propledger/internal/config"
	"github.com/and161185/propledger/internal/lifecycle"
	"github.com/and161185/propledger/internal/logger"
	"github.com/and161185/propledger/internal/media"
	"github.com/and161185/propledger/internal/metrics"
	"github.com/and161185/propledger/internal/migrate"
	"github.com/and161185/propledger/internal/notify"
	"github.com/and161185/propledger/internal/repository"
	"github.com/and161185/propledger/internal/repository/memory"
	"github.com/and161185/propledger/internal/repository/postgres"
	grpcserver "github.com/and161185/propledger/internal/server/grpc"
	"github.com/and161185/propledger/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, prepares storage and starts the gRPC and metrics listeners.
func main() {
	configFile := flag.String("config", "", "config file (config.yaml is searched when empty)")
	envPath := flag.String("env", ".", "directory with .env files")
	flag.Parse()

	cfg, err := config.Load(*configFile, *envPath)
	if err != nil {
		// logger is not configured yet
		l, _ := zap.NewProduction()
		l.Fatal("load config", zap.Error(err))
	}

	lg, err := logger.New(logger.Config{
		Debug:       cfg.Log.Debug,
		SentryDSN:   cfg.Log.SentryDSN,
		Environment: cfg.Log.Environment,
	})
	if err != nil {
		l, _ := zap.NewProduction()
		l.Fatal("build logger", zap.Error(err))
	}
	defer lg.Flush(2 * time.Second)
	log := lg.Logger

	log.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Server.Addr),
		zap.String("store", cfg.Database.Store),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Ownership store
	var repo repository.PropertyRepository
	switch cfg.Database.Store {
	case config.StorePostgres:
		if err := migrate.Up(ctx, cfg.Database.DSN); err != nil {
			log.Fatal("migrate up", zap.Error(err))
		}
		db, err := postgres.New(ctx, cfg.Database.DSN)
		if err != nil {
			log.Fatal("postgres pool", zap.Error(err))
		}
		defer db.Close()
		repo = postgres.NewPropertyRepo(db)
	default:
		log.Warn("using in-memory store; data is lost on restart")
		repo = memory.New()
	}

	// Media
	router := media.Router{Files: media.FileStore{Dir: cfg.Media.Dir, BaseURL: cfg.Media.BaseURL}}
	if cfg.Cloudflare.AccountID != "" && cfg.Cloudflare.APIToken != "" {
		cf, err := media.NewCloudflareClient(cfg.Cloudflare.APIToken)
		if err != nil {
			log.Fatal("cloudflare client", zap.Error(err))
		}
		router.Images = media.NewCloudflareImages(cf, cfg.Cloudflare.AccountID)
	}

	// Events
	var pub notify.Publisher = notify.Nop{}
	if cfg.NATS.URL != "" {
		js, err := notify.ConnectJetStream(ctx, notify.JetStreamConfig{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			ConnectionName: cfg.NATS.ConnectionName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
		}, log)
		if err != nil {
			log.Fatal("nats", zap.Error(err))
		}
		pub = js
	}
	defer pub.Close()

	m := metrics.New(prometheus.DefaultRegisterer)

	// Services
	props := service.NewPropertyService(service.Deps{
		Repo: repo,
		Machine: lifecycle.New(lifecycle.Config{
			Network:     cfg.Ledger.Network,
			FrontendURL: cfg.Ledger.FrontendURL,
		}),
		Media:        router,
		Publisher:    pub,
		Metrics:      m,
		Log:          log,
		MaxAttempts:  cfg.Ledger.MaxCommitAttempts,
		StoreTimeout: cfg.Database.StoreTimeout,
	})

	// gRPC server with interceptors
	app := grpcserver.New(props, []byte(cfg.Auth.JWTKey), log)
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(log),
			app.AuthUnary(),
			grpcserver.LoggingUnary(log),
		),
	}
	if !cfg.Server.Dev {
		creds, err := credentials.NewServerTLSFromFile(cfg.Server.TLSCert, cfg.Server.TLSKey)
		if err != nil {
			log.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	}
	s := grpc.NewServer(opts...)
	pb.RegisterPropertyServiceServer(s, app)

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if cfg.Server.Dev {
		reflection.Register(s)
	}

	// Metrics and local media
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/media/", http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.Media.Dir))))
	httpSrv := &http.Server{Addr: cfg.Server.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info("http listening", zap.String("addr", cfg.Server.MetricsAddr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server", zap.Error(err))
		}
	}()

	// Listen
	lis, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		log.Fatal("listen", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Server.Addr), zap.Bool("tls", !cfg.Server.Dev))
		errCh <- s.Serve(lis)
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		hs.Shutdown()
		shutCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		_ = httpSrv.Shutdown(shutCtx)

		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-shutCtx.Done():
			s.Stop()
		}
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
		lg.Flush(2 * time.Second)
		os.Exit(1)
	}

	log.Info("shutdown complete")
}
