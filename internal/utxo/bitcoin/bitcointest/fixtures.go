// Package bitcointest builds signed transactions for tests.
package bitcointest

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/model"
	"github.com/shopspring/decimal"
)

// ScriptKind selects the locking script of a fixture input.
type ScriptKind int

const (
	P2PKH ScriptKind = iota
	P2WPKH
)

// Input describes one previous output spent by a fixture transaction.
// KeySeed must be non-zero.
type Input struct {
	Kind    ScriptKind
	Value   int64
	KeySeed byte
}

// Prevout is a previous output spent by a fixture.
type Prevout struct {
	OutPoint wire.OutPoint
	PkScript []byte
	Value    int64
}

// Fixture is a signed transaction together with the outputs it spends.
type Fixture struct {
	Tx       *wire.MsgTx
	Raw      []byte
	Prevouts []Prevout
}

// Key returns a deterministic private key.
func Key(seed byte) *btcec.PrivateKey {
	key, _ := btcec.PrivKeyFromBytes(bytes.Repeat([]byte{seed}, 32))
	return key
}

// PkScript returns the locking script of kind paying to key.
func PkScript(kind ScriptKind, key *btcec.PrivateKey) []byte {
	hash := btcutil.Hash160(key.PubKey().SerializeCompressed())
	b := txscript.NewScriptBuilder()
	switch kind {
	case P2WPKH:
		b.AddOp(txscript.OP_0).AddData(hash)
	default:
		b.AddOp(txscript.OP_DUP).AddOp(txscript.OP_HASH160).AddData(hash).
			AddOp(txscript.OP_EQUALVERIFY).AddOp(txscript.OP_CHECKSIG)
	}
	script, _ := b.Script()
	return script
}

// Spend builds and signs a version 2 transaction spending one output per input.
func Spend(inputs ...Input) (*Fixture, error) {
	tx := wire.NewMsgTx(2)
	prevouts := make([]Prevout, len(inputs))
	fetcher := txscript.NewMultiPrevOutFetcher(nil)

	for i, in := range inputs {
		op := wire.OutPoint{Hash: chainhash.DoubleHashH([]byte{byte(i), in.KeySeed}), Index: uint32(i)}
		pkScript := PkScript(in.Kind, Key(in.KeySeed))
		tx.AddTxIn(wire.NewTxIn(&op, nil, nil))
		prevouts[i] = Prevout{OutPoint: op, PkScript: pkScript, Value: in.Value}
		fetcher.AddPrevOut(op, wire.NewTxOut(in.Value, pkScript))
	}
	tx.AddTxOut(wire.NewTxOut(1000, PkScript(P2WPKH, Key(0xee))))

	hashes := txscript.NewTxSigHashes(tx, fetcher)
	for i, in := range inputs {
		key := Key(in.KeySeed)
		switch in.Kind {
		case P2WPKH:
			witness, err := txscript.WitnessSignature(tx, hashes, i, in.Value, prevouts[i].PkScript, txscript.SigHashAll, key, true)
			if err != nil {
				return nil, fmt.Errorf("sign witness input %d: %w", i, err)
			}
			tx.TxIn[i].Witness = witness
		default:
			sigScript, err := txscript.SignatureScript(tx, i, prevouts[i].PkScript, txscript.SigHashAll, key, true)
			if err != nil {
				return nil, fmt.Errorf("sign input %d: %w", i, err)
			}
			tx.TxIn[i].SignatureScript = sigScript
		}
	}

	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	return &Fixture{Tx: tx, Raw: buf.Bytes(), Prevouts: prevouts}, nil
}

// TxOut renders a prevout the way the resolver reports it, with the value in BTC text.
func (p Prevout) TxOut() *model.TxOut {
	return &model.TxOut{
		OutPoint: model.OutPoint{TxID: p.OutPoint.Hash, Index: p.OutPoint.Index},
		PkScript: append([]byte(nil), p.PkScript...),
		Value:    decimal.New(p.Value, -8).StringFixed(8),
	}
}
