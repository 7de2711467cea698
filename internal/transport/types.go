// Package transport exposes the verifier over HTTP and gRPC.
package transport

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PrevoutResolver interface {
		Resolve(ctx context.Context, txid chainhash.Hash, index uint32, includeMempool bool) (*model.TxOut, error)
	}
	TransactionVerifier interface {
		Verify(ctx context.Context, raw []byte) (*model.Report, error)
	}
)
