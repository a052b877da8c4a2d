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

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"teacher-booking-api/internal/app"
	"teacher-booking-api/internal/auth"
	"teacher-booking-api/internal/booking"
	"teacher-booking-api/internal/config"
	"teacher-booking-api/internal/grpcweb"
	"teacher-booking-api/internal/handler"
	"teacher-booking-api/internal/memstore"
	"teacher-booking-api/internal/middleware"
	"teacher-booking-api/internal/rest"
	"teacher-booking-api/internal/store"
)

// backend is what the server needs from either storage implementation.
type backend interface {
	booking.Directory
	booking.Ledger
	handler.Accounts
	app.Seeder
}

type memBackend struct {
	*memstore.Directory
	*memstore.Ledger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := app.NewLogger(cfg.Environment)

	code := 0
	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		code = 1
	}
	_ = logger.Sync()
	os.Exit(code)
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	be, closeBackend, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeBackend()

	hasher := auth.Bcrypt{}
	if cfg.SeedDemo {
		if err := app.SeedDemo(ctx, be, hasher, logger); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	gate := auth.NewGate(issuer)
	svc := booking.NewService(be, be, logger)
	h := handler.New(svc, be, hasher, issuer, logger)
	rl := middleware.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	// grpc server
	srv := app.NewGRPCServer(h, gate, rl, logger)
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	errc := make(chan error, 3)
	go func() {
		logger.Info("grpc listening", zap.String("port", cfg.GRPCPort))
		errc <- srv.Serve(lis)
	}()

	// grpc-web bridge, forwards browser requests to grpc on localhost
	bridge, err := grpcweb.New("localhost:"+cfg.GRPCPort, logger)
	if err != nil {
		return fmt.Errorf("bridge: %w", err)
	}
	defer bridge.Close()

	webSrv := &http.Server{Addr: ":" + cfg.WebPort, Handler: bridge.Handler(), ReadHeaderTimeout: 10 * time.Second}
	restSrv := &http.Server{Addr: ":" + cfg.RESTPort, Handler: rest.New(h, gate, rl, logger).Handler(), ReadHeaderTimeout: 10 * time.Second}
	for name, s := range map[string]*http.Server{"grpc-web": webSrv, "rest": restSrv} {
		name, s := name, s
		go func() {
			logger.Info(name+" listening", zap.String("addr", s.Addr))
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errc <- fmt.Errorf("%s: %w", name, err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err = <-errc:
		logger.Error("listener failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	shutdownHTTP(shutdownCtx, logger, map[string]shutdowner{"grpc-web": webSrv, "rest": restSrv})
	srv.GracefulStop()
	return err
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// shutdownHTTP drains each server and logs the ones that did not stop cleanly.
func shutdownHTTP(ctx context.Context, logger *zap.Logger, servers map[string]shutdowner) {
	for name, s := range servers {
		if err := s.Shutdown(ctx); err != nil {
			logger.Warn(name+" shutdown", zap.Error(err))
		}
	}
}

// openBackend connects to PostgreSQL and migrates it when DATABASE_URL is
// set, and falls back to the in-memory stores otherwise.
func openBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (backend, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, using in-memory storage")
		return memBackend{memstore.NewDirectory(), memstore.NewLedger()}, func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}
	logger.Info("connected to postgres")

	mg, err := app.NewMigrator(pool, logger)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	defer mg.Close()
	if err := mg.Run(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return store.New(pool), pool.Close, nil
}
