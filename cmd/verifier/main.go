package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/gin-gonic/gin"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/metrics"
	btcdrpc "github.com/goodnatureofminers/blockinsight7000-verifier/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/service"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"github.com/rs/cors"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type config struct {
	Addr           string        `long:"addr" env:"VERIFIER_ADDR" description:"HTTP listen address" default:"127.0.0.1:8080"`
	GRPCAddr       string        `long:"grpc-addr" env:"VERIFIER_GRPC_ADDR" description:"gRPC listen address, empty disables gRPC"`
	Network        model.Network `long:"network" env:"VERIFIER_NETWORK" description:"network name" default:"mainnet"`
	RPCURL         string        `long:"rpc-url" env:"VERIFIER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCCookie      string        `long:"rpc-cookie" env:"VERIFIER_RPC_COOKIE" description:"Bitcoin RPC cookie file" default:"~/.bitcoin/.cookie"`
	RPCUser        string        `long:"rpc-user" env:"VERIFIER_RPC_USER" description:"Bitcoin RPC username, overrides the cookie"`
	RPCPassword    string        `long:"rpc-password" env:"VERIFIER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCTimeout     time.Duration `long:"rpc-timeout" env:"VERIFIER_RPC_TIMEOUT" description:"timeout of a single gettxout call" default:"3s"`
	RPCRate        int           `long:"rpc-rate" env:"VERIFIER_RPC_RATE" description:"max node requests per second, 0 is unlimited" default:"0"`
	InputTimeout   time.Duration `long:"input-timeout" env:"VERIFIER_INPUT_TIMEOUT" description:"script engine timeout per input" default:"5s"`
	ResolveWorkers int           `long:"resolve-workers" env:"VERIFIER_RESOLVE_WORKERS" description:"concurrent prevout lookups per request, each with its own node connection" default:"1"`
	ProbeAttempts  int           `long:"probe-attempts" env:"VERIFIER_PROBE_ATTEMPTS" description:"node readiness attempts before serving anyway, 0 skips the check" default:"10"`
	ProbeBackoff   time.Duration `long:"probe-backoff" env:"VERIFIER_PROBE_BACKOFF" description:"delay between node readiness attempts" default:"3s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("verifier failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(zap.String("network", string(cfg.Network)))

	// One client per resolve worker: a btcd HTTP POST client sends its requests one at a time.
	pool, shutdown, err := btcdrpc.Dial(func() (*rpcclient.ConnConfig, error) {
		return btcdrpc.NewConnConfig(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword, cfg.RPCCookie)
	}, cfg.ResolveWorkers)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer shutdown()
	rpc := btcdrpc.NewObservedClient(pool, metrics.NewRPCClient(cfg.Network))

	if cfg.ProbeAttempts > 0 {
		probe := bitcoin.NewNodeProbe(rpc, logger.Named("probe"), cfg.ProbeAttempts, cfg.ProbeBackoff)
		if err := waitForNode(ctx, probe, logger); err != nil {
			return err
		}
	}

	decoder, err := bitcoin.NewScriptDecoder(cfg.Network)
	if err != nil {
		return err
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPCRate > 0 {
		limiter = ratelimit.New(cfg.RPCRate)
	}
	resolver := bitcoin.NewResolver(rpc, decoder, limiter, cfg.RPCTimeout)

	verifier, err := service.NewVerifier(
		resolver,
		bitcoin.NewScriptEngine(),
		metrics.NewVerifier(cfg.Network),
		service.VerifierConfig{
			ResolveWorkers: cfg.ResolveWorkers,
			InputTimeout:   cfg.InputTimeout,
		},
		logger.Named("verifier"),
	)
	if err != nil {
		return err
	}

	if cfg.GRPCAddr != "" {
		if err := startGRPCServer(ctx, cfg.GRPCAddr, transport.NewVerifierHandler(resolver, verifier, logger), logger); err != nil {
			return err
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := transport.NewRouter(transport.NewHTTPHandler(resolver, verifier, logger.Named("http")))

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

type nodeWaiter interface {
	Wait(ctx context.Context) (int64, error)
}

// waitForNode blocks until the node answers or the probe gives up. An unreachable node does
// not stop the server: requests report it as unavailable until it comes up.
func waitForNode(ctx context.Context, probe nodeWaiter, logger *zap.Logger) error {
	height, err := probe.Wait(ctx)
	switch {
	case ctx.Err() != nil:
		return ctx.Err()
	case err != nil:
		logger.Warn("node not ready, serving anyway", zap.Error(err))
	default:
		logger.Info("node ready", zap.Int64("block_count", height))
	}
	return nil
}

func startGRPCServer(ctx context.Context, addr string, handler transport.VerifierServiceServer, logger *zap.Logger) error {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	transport.RegisterVerifierServiceServer(grpcServer, handler)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	go func() {
		logger.Info("Starting gRPC server", zap.String("addr", addr))
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server stopped", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()
	return nil
}
