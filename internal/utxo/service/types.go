package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PrevoutResolver interface {
		Resolve(ctx context.Context, txid chainhash.Hash, index uint32, includeMempool bool) (*model.TxOut, error)
	}
	ScriptEngine interface {
		DecodeTransaction(raw []byte) (chain.Transaction, error)
		NewOutput(pkScript []byte, value int64) (chain.SpentOutput, error)
		Verify(
			ctx context.Context,
			pkScript []byte,
			amount int64,
			tx chain.Transaction,
			spent []chain.SpentOutput,
			inputIndex uint32,
			flags txscript.ScriptFlags,
		) (model.Verdict, error)
	}
	VerifierMetrics interface {
		ObserveVerify(report *model.Report, err error, started time.Time)
		ObserveInput(verdict model.Verdict)
		ObserveResolve(err error, started time.Time)
	}
)
