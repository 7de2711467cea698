package rpcclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
)

// ClientPool spreads calls round-robin over several node clients.
// A btcd client in HTTP POST mode sends its requests one at a time from a single queue,
// so concurrent lookups only overlap when each worker has a client of its own.
type ClientPool struct {
	clients []Client
	next    atomic.Uint64
}

// NewClientPool returns a pool over clients. At least one client is required.
func NewClientPool(clients ...Client) (*ClientPool, error) {
	if len(clients) == 0 {
		return nil, errors.New("client pool needs at least one client")
	}
	return &ClientPool{clients: clients}, nil
}

// Dial opens n btcd clients, each from its own config, and pools them.
// The returned func shuts every client down.
func Dial(newConfig func() (*rpcclient.ConnConfig, error), n int) (*ClientPool, func(), error) {
	if n < 1 {
		n = 1
	}
	opened := make([]*rpcclient.Client, 0, n)
	shutdown := func() {
		for _, c := range opened {
			c.Shutdown()
		}
		for _, c := range opened {
			c.WaitForShutdown()
		}
	}

	clients := make([]Client, 0, n)
	for i := 0; i < n; i++ {
		cfg, err := newConfig()
		if err != nil {
			shutdown()
			return nil, nil, fmt.Errorf("rpc config %d: %w", i, err)
		}
		c, err := rpcclient.New(cfg, nil)
		if err != nil {
			shutdown()
			return nil, nil, fmt.Errorf("rpc client %d: %w", i, err)
		}
		opened = append(opened, c)
		clients = append(clients, c)
	}

	pool, err := NewClientPool(clients...)
	if err != nil {
		shutdown()
		return nil, nil, err
	}
	return pool, shutdown, nil
}

// Size returns the number of pooled clients.
func (p *ClientPool) Size() int {
	return len(p.clients)
}

func (p *ClientPool) pick() Client {
	n := p.next.Add(1) - 1
	return p.clients[n%uint64(len(p.clients))]
}

func (p *ClientPool) RawRequest(method string, params []json.RawMessage) (json.RawMessage, error) {
	return p.pick().RawRequest(method, params)
}

func (p *ClientPool) GetBlockCount() (int64, error) {
	return p.pick().GetBlockCount()
}

func (p *ClientPool) GetRawMempoolVerbose() (map[string]btcjson.GetRawMempoolVerboseResult, error) {
	return p.pick().GetRawMempoolVerbose()
}

func (p *ClientPool) GetRawTransaction(txHash *chainhash.Hash) (*btcutil.Tx, error) {
	return p.pick().GetRawTransaction(txHash)
}
