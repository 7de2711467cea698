package bitcoin

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TxOutClient issues the node's gettxout call and returns its result verbatim.
	TxOutClient interface {
		GetTxOut(ctx context.Context, txid string, index uint32, includeMempool bool) (json.RawMessage, error)
	}
	// BlockCounter reports the node's current block count.
	BlockCounter interface {
		GetBlockCount() (int64, error)
	}
	// ScriptDecoder describes locking scripts.
	ScriptDecoder interface {
		Describe(pkScript []byte) (string, []string)
	}
)
