package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-verifier/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	exitSetup   = 1
	exitFailure = 2
	exitInvalid = 3
)

type (
	mempoolSource interface {
		GetRawMempoolVerbose() (map[string]btcjson.GetRawMempoolVerboseResult, error)
		GetRawTransaction(txHash *chainhash.Hash) (*btcutil.Tx, error)
	}
	txVerifier interface {
		Verify(ctx context.Context, raw []byte) (*model.Report, error)
	}
)

// sweepError names the first transaction that stopped a sweep.
type sweepError struct {
	txid     string
	exitCode int
	err      error
}

func (e *sweepError) Error() string {
	return fmt.Sprintf("%s: %v", e.txid, e.err)
}

func (e *sweepError) Unwrap() error {
	return e.err
}

var errInvalidVerdict = errors.New("transaction failed verification")

type sweeper struct {
	source   mempoolSource
	verifier txVerifier
	logger   *zap.Logger
	workers  int
	limit    int
	verbose  bool
}

// topLevel returns mempool txids without in-mempool parents, sorted, cut to limit when positive.
func topLevel(mempool map[string]btcjson.GetRawMempoolVerboseResult, limit int) []string {
	txids := make([]string, 0, len(mempool))
	for txid, entry := range mempool {
		if len(entry.Depends) == 0 {
			txids = append(txids, txid)
		}
	}
	sort.Strings(txids)
	if limit > 0 && len(txids) > limit {
		txids = txids[:limit]
	}
	return txids
}

// run verifies every top-level mempool transaction and returns the number that passed.
// The first failure stops the sweep and is returned as a *sweepError.
func (s *sweeper) run(ctx context.Context) (int, error) {
	mempool, err := s.source.GetRawMempoolVerbose()
	if err != nil {
		return 0, &sweepError{exitCode: exitSetup, err: fmt.Errorf("getrawmempool: %w", err)}
	}
	txids := topLevel(mempool, s.limit)
	s.logger.Info("verifying top-level mempool transactions", zap.Int("count", len(txids)))

	var processed atomic.Int64
	err = workerpool.Process(ctx, max(s.workers, 1), txids, func(ctx context.Context, txid string) error {
		if err := s.verify(ctx, txid); err != nil {
			return err
		}
		if n := processed.Add(1); s.verbose && n%100 == 0 {
			s.logger.Info("progress", zap.Int64("processed", n), zap.Int("total", len(txids)))
		}
		return nil
	}, nil)
	if err != nil {
		var sweepErr *sweepError
		if errors.As(err, &sweepErr) {
			return int(processed.Load()), sweepErr
		}
		return int(processed.Load()), &sweepError{exitCode: exitFailure, err: err}
	}
	return int(processed.Load()), nil
}

func (s *sweeper) verify(ctx context.Context, txid string) error {
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return &sweepError{txid: txid, exitCode: exitFailure, err: err}
	}
	tx, err := s.source.GetRawTransaction(hash)
	if err != nil {
		return &sweepError{txid: txid, exitCode: exitFailure, err: fmt.Errorf("getrawtransaction: %w", err)}
	}

	var buf bytes.Buffer
	if err := tx.MsgTx().Serialize(&buf); err != nil {
		return &sweepError{txid: txid, exitCode: exitFailure, err: fmt.Errorf("serialize: %w", err)}
	}

	report, err := s.verifier.Verify(ctx, buf.Bytes())
	if err != nil {
		return &sweepError{txid: txid, exitCode: exitFailure, err: err}
	}
	if !report.Valid {
		failed := report.Failed()
		return &sweepError{
			txid:     txid,
			exitCode: exitInvalid,
			err:      fmt.Errorf("%w: input %d: %s", errInvalidVerdict, failed[0].Index, failed[0].Reason),
		}
	}
	return nil
}
