// Command mempool-verifier verifies every mempool transaction without in-mempool parents
// and reports the first one that fails.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/metrics"
	btcdrpc "github.com/goodnatureofminers/blockinsight7000-verifier/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/service"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Network        model.Network `long:"network" env:"MEMPOOL_VERIFIER_NETWORK" description:"network name" default:"mainnet"`
	RPCURL         string        `long:"rpc-url" env:"MEMPOOL_VERIFIER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCCookie      string        `long:"rpc-cookie" env:"MEMPOOL_VERIFIER_RPC_COOKIE" description:"Bitcoin RPC cookie file" default:"~/.bitcoin/.cookie"`
	RPCUser        string        `long:"rpc-user" env:"MEMPOOL_VERIFIER_RPC_USER" description:"Bitcoin RPC username, overrides the cookie"`
	RPCPassword    string        `long:"rpc-password" env:"MEMPOOL_VERIFIER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCTimeout     time.Duration `long:"rpc-timeout" env:"MEMPOOL_VERIFIER_RPC_TIMEOUT" description:"timeout of a single gettxout call" default:"30s"`
	InputTimeout   time.Duration `long:"input-timeout" env:"MEMPOOL_VERIFIER_INPUT_TIMEOUT" description:"script engine timeout per input" default:"5s"`
	ResolveWorkers int           `long:"resolve-workers" env:"MEMPOOL_VERIFIER_RESOLVE_WORKERS" description:"concurrent prevout lookups per transaction" default:"1"`
	Workers        int           `long:"workers" env:"MEMPOOL_VERIFIER_WORKERS" description:"transactions verified concurrently; 1 keeps the first failure deterministic" default:"1"`
	Limit          int           `long:"limit" env:"MEMPOOL_VERIFIER_LIMIT" description:"only verify this many transactions when positive" default:"0"`
	Verbose        bool          `long:"verbose" env:"MEMPOOL_VERIFIER_VERBOSE" description:"log progress"`
}

func main() {
	os.Exit(mainWithCode())
}

func mainWithCode() int {
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

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return 0
		}
		logger.Error("failed to parse flags", zap.Error(err))
		return exitSetup
	}

	processed, err := run(ctx, cfg, logger)
	if err != nil {
		var sweepErr *sweepError
		if !errors.As(err, &sweepErr) {
			logger.Error("mempool verifier setup failed", zap.Error(err))
			return exitSetup
		}
		logger.Error("mempool verification stopped",
			zap.String("txid", sweepErr.txid),
			zap.Int("processed", processed),
			zap.Error(sweepErr.err),
		)
		if sweepErr.txid != "" {
			fmt.Printf("first failing txid: %s\n", sweepErr.txid)
		}
		return sweepErr.exitCode
	}

	logger.Info("all transactions passed", zap.Int("processed", processed))
	return 0
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (int, error) {
	pool, shutdown, err := btcdrpc.Dial(func() (*rpcclient.ConnConfig, error) {
		return btcdrpc.NewConnConfig(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword, cfg.RPCCookie)
	}, max(cfg.Workers, cfg.ResolveWorkers))
	if err != nil {
		return 0, fmt.Errorf("init rpc client: %w", err)
	}
	defer shutdown()
	rpc := btcdrpc.NewObservedClient(pool, metrics.NewRPCClient(cfg.Network))

	decoder, err := bitcoin.NewScriptDecoder(cfg.Network)
	if err != nil {
		return 0, err
	}
	verifier, err := service.NewVerifier(
		bitcoin.NewResolver(rpc, decoder, nil, cfg.RPCTimeout),
		bitcoin.NewScriptEngine(),
		metrics.NewVerifier(cfg.Network),
		service.VerifierConfig{
			ResolveWorkers: cfg.ResolveWorkers,
			InputTimeout:   cfg.InputTimeout,
		},
		logger.Named("verifier"),
	)
	if err != nil {
		return 0, err
	}

	s := &sweeper{
		source:   rpc,
		verifier: verifier,
		logger:   logger,
		workers:  cfg.Workers,
		limit:    cfg.Limit,
		verbose:  cfg.Verbose,
	}
	return s.run(ctx)
}
