package rpcclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Client is the subset of *rpcclient.Client the verifier calls.
	Client interface {
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
		GetBlockCount() (int64, error)
		GetRawMempoolVerbose() (map[string]btcjson.GetRawMempoolVerboseResult, error)
		GetRawTransaction(txHash *chainhash.Hash) (*btcutil.Tx, error)
	}
)

type ObservedClient struct {
	client     Client
	rpcMetrics RPCMetrics
}

func NewObservedClient(client Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// GetTxOut issues gettxout and returns the result untouched, so the value keeps its decimal text.
// A JSON null result means the output is unknown or spent.
func (r *ObservedClient) GetTxOut(ctx context.Context, txid string, index uint32, includeMempool bool) (res json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_tx_out", err, started)
	}()

	params, err := marshalParams(txid, index, includeMempool)
	if err != nil {
		return nil, err
	}

	type result struct {
		raw json.RawMessage
		err error
	}
	done := make(chan result, 1)
	go func() {
		raw, err := r.client.RawRequest("gettxout", params)
		done <- result{raw: raw, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-done:
		return out.raw, out.err
	}
}

func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

func (r *ObservedClient) GetRawMempoolVerbose() (res map[string]btcjson.GetRawMempoolVerboseResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_mempool_verbose", err, started)
	}()
	return r.client.GetRawMempoolVerbose()
}

func (r *ObservedClient) GetRawTransaction(txHash *chainhash.Hash) (tx *btcutil.Tx, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_transaction", err, started)
	}()
	return r.client.GetRawTransaction(txHash)
}

func marshalParams(values ...any) ([]json.RawMessage, error) {
	params := make([]json.RawMessage, 0, len(values))
	for i, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal param %d: %w", i, err)
		}
		params = append(params, b)
	}
	return params, nil
}
