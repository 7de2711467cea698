package bitcoin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-verifier/pkg/hexutil"
	"go.uber.org/ratelimit"
)

// DefaultResolveTimeout bounds a single gettxout round trip.
const DefaultResolveTimeout = 3 * time.Second

// txOutResult mirrors the gettxout result, keeping the value as decimal text.
type txOutResult struct {
	BestBlock     string                      `json:"bestblock"`
	Confirmations int64                       `json:"confirmations"`
	Value         json.Number                 `json:"value"`
	ScriptPubKey  *btcjson.ScriptPubKeyResult `json:"scriptPubKey"`
	Coinbase      bool                        `json:"coinbase"`
}

// Resolver looks up unspent outputs through the node's gettxout RPC.
type Resolver struct {
	client  TxOutClient
	decoder ScriptDecoder
	limiter ratelimit.Limiter
	timeout time.Duration
}

// NewResolver builds a Resolver. A nil limiter means unlimited; a non-positive timeout uses DefaultResolveTimeout.
func NewResolver(client TxOutClient, decoder ScriptDecoder, limiter ratelimit.Limiter, timeout time.Duration) *Resolver {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	if timeout <= 0 {
		timeout = DefaultResolveTimeout
	}
	return &Resolver{
		client:  client,
		decoder: decoder,
		limiter: limiter,
		timeout: timeout,
	}
}

// Resolve returns the unspent output at txid:index. It returns chain.ErrOutputNotFound when the
// output does not exist or is spent, and wraps chain.ErrResolverUnavailable on any other failure.
func (r *Resolver) Resolve(ctx context.Context, txid chainhash.Hash, index uint32, includeMempool bool) (*model.TxOut, error) {
	op := model.OutPoint{TxID: txid, Index: index}

	r.limiter.Take()
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.client.GetTxOut(ctx, hexutil.EncodeReversed(txid[:]), index, includeMempool)
	if err != nil {
		return nil, fmt.Errorf("%w: gettxout %s: %w", chain.ErrResolverUnavailable, op, err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("%w: %s", chain.ErrOutputNotFound, op)
	}

	var res txOutResult
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&res); err != nil {
		return nil, fmt.Errorf("%w: gettxout %s: malformed result: %v", chain.ErrResolverUnavailable, op, err)
	}
	if res.Value == "" || res.ScriptPubKey == nil {
		return nil, fmt.Errorf("%w: gettxout %s: result missing value or scriptPubKey", chain.ErrResolverUnavailable, op)
	}

	pkScript, err := hexutil.Decode(res.ScriptPubKey.Hex)
	if err != nil {
		return nil, fmt.Errorf("%w: gettxout %s: scriptPubKey: %v", chain.ErrResolverUnavailable, op, err)
	}

	scriptType, addresses := r.describe(res.ScriptPubKey, pkScript)
	return &model.TxOut{
		OutPoint:      op,
		PkScript:      pkScript,
		Value:         res.Value.String(),
		ScriptType:    scriptType,
		Addresses:     addresses,
		Confirmations: res.Confirmations,
		BestBlock:     res.BestBlock,
		Coinbase:      res.Coinbase,
		Raw:           append(json.RawMessage(nil), raw...),
	}, nil
}

func (r *Resolver) describe(spk *btcjson.ScriptPubKeyResult, pkScript []byte) (string, []string) {
	scriptType := spk.Type
	var addresses []string
	switch {
	case spk.Address != "":
		addresses = []string{spk.Address}
	case len(spk.Addresses) > 0:
		addresses = append([]string(nil), spk.Addresses...)
	}
	if r.decoder == nil || (scriptType != "" && addresses != nil) {
		return scriptType, addresses
	}

	class, decoded := r.decoder.Describe(pkScript)
	if scriptType == "" {
		scriptType = class
	}
	if addresses == nil {
		addresses = decoded
	}
	return scriptType, addresses
}
