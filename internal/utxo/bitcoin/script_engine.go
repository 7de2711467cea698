package bitcoin

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/model"
)

// ScriptEngine verifies transaction inputs with the btcd script interpreter.
// It keeps no state between calls; no signature cache is shared across requests.
type ScriptEngine struct{}

// NewScriptEngine constructs a ScriptEngine.
func NewScriptEngine() *ScriptEngine {
	return &ScriptEngine{}
}

type transaction struct {
	msg *wire.MsgTx

	hashedFor []chain.SpentOutput
	fetcher   txscript.PrevOutputFetcher
	hashes    *txscript.TxSigHashes
}

func (t *transaction) TxID() string {
	return t.msg.TxHash().String()
}

func (t *transaction) OutPoints() []wire.OutPoint {
	ops := make([]wire.OutPoint, len(t.msg.TxIn))
	for i, in := range t.msg.TxIn {
		ops[i] = in.PreviousOutPoint
	}
	return ops
}

func (t *transaction) Release() {
	t.hashedFor = nil
	t.fetcher = nil
	t.hashes = nil
}

type spentOutput struct {
	pkScript []byte
	value    int64
}

func (o *spentOutput) PkScript() []byte { return o.pkScript }
func (o *spentOutput) Value() int64     { return o.value }
func (o *spentOutput) Release()         { o.pkScript = nil }

// DecodeTransaction parses a serialized transaction (legacy or segwit encoding).
func (e *ScriptEngine) DecodeTransaction(raw []byte) (chain.Transaction, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty transaction", chain.ErrTransactionMalformed)
	}

	msg := &wire.MsgTx{}
	r := bytes.NewReader(raw)
	if err := msg.Deserialize(r); err != nil {
		return nil, fmt.Errorf("%w: %v", chain.ErrTransactionMalformed, err)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", chain.ErrTransactionMalformed, r.Len())
	}
	if len(msg.TxIn) == 0 {
		return nil, fmt.Errorf("%w: transaction has no inputs", chain.ErrTransactionMalformed)
	}
	return &transaction{msg: msg}, nil
}

// NewOutput wraps a previous output for use as verification context.
func (e *ScriptEngine) NewOutput(pkScript []byte, value int64) (chain.SpentOutput, error) {
	if value < 0 {
		return nil, fmt.Errorf("%w: negative output value %d", chain.ErrAmountOutOfRange, value)
	}
	return &spentOutput{pkScript: append([]byte(nil), pkScript...), value: value}, nil
}

// Verify executes the unlocking data of input inputIndex against pkScript.
// The returned error is non-nil only when the engine could not produce a verdict.
func (e *ScriptEngine) Verify(
	ctx context.Context,
	pkScript []byte,
	amount int64,
	tx chain.Transaction,
	spent []chain.SpentOutput,
	inputIndex uint32,
	flags txscript.ScriptFlags,
) (model.Verdict, error) {
	t, ok := tx.(*transaction)
	if !ok {
		return model.Verdict{}, fmt.Errorf("%w: unsupported transaction handle %T", chain.ErrEngineUnavailable, tx)
	}
	if int(inputIndex) >= len(t.msg.TxIn) {
		return model.Verdict{
			Status: model.VerifyStatusInvalidInputIndex,
			Reason: fmt.Sprintf("input %d of %d", inputIndex, len(t.msg.TxIn)),
		}, nil
	}
	if len(spent) != len(t.msg.TxIn) {
		return model.Verdict{
			Status: model.VerifyStatusSpentOutputsMismatch,
			Reason: fmt.Sprintf("%d spent outputs for %d inputs", len(spent), len(t.msg.TxIn)),
		}, nil
	}

	fetcher, hashes := t.sigHashes(spent)
	msg := t.msg

	done := make(chan model.Verdict, 1)
	go func() {
		done <- execute(pkScript, amount, msg, int(inputIndex), flags, hashes, fetcher)
	}()

	select {
	case <-ctx.Done():
		return model.Verdict{}, fmt.Errorf("%w: input %d: %w", chain.ErrEngineUnavailable, inputIndex, ctx.Err())
	case verdict := <-done:
		return verdict, nil
	}
}

// sigHashes builds the prevout fetcher and sighash midstate once per spent set.
func (t *transaction) sigHashes(spent []chain.SpentOutput) (txscript.PrevOutputFetcher, *txscript.TxSigHashes) {
	if t.hashes != nil && len(spent) > 0 && len(t.hashedFor) == len(spent) && &t.hashedFor[0] == &spent[0] {
		return t.fetcher, t.hashes
	}

	fetcher := txscript.NewMultiPrevOutFetcher(nil)
	for i, out := range spent {
		fetcher.AddPrevOut(t.msg.TxIn[i].PreviousOutPoint, wire.NewTxOut(out.Value(), out.PkScript()))
	}
	t.hashedFor = spent
	t.fetcher = fetcher
	t.hashes = txscript.NewTxSigHashes(t.msg, fetcher)
	return t.fetcher, t.hashes
}

func execute(
	pkScript []byte,
	amount int64,
	msg *wire.MsgTx,
	idx int,
	flags txscript.ScriptFlags,
	hashes *txscript.TxSigHashes,
	fetcher txscript.PrevOutputFetcher,
) (verdict model.Verdict) {
	defer func() {
		if r := recover(); r != nil {
			verdict = model.Verdict{Status: model.VerifyStatusScriptInvalid, Reason: fmt.Sprintf("interpreter panic: %v", r)}
		}
	}()

	vm, err := txscript.NewEngine(pkScript, msg, idx, flags, nil, hashes, amount, fetcher)
	if err != nil {
		return scriptFailure(err)
	}
	if err := vm.Execute(); err != nil {
		return scriptFailure(err)
	}
	return model.Verdict{Valid: true, Status: model.VerifyStatusOK}
}

func scriptFailure(err error) model.Verdict {
	var scriptErr txscript.Error
	if errors.As(err, &scriptErr) {
		return model.Verdict{
			Status: model.VerifyStatusScriptInvalid,
			Reason: fmt.Sprintf("%s: %s", scriptErr.ErrorCode, scriptErr.Description),
		}
	}
	return model.Verdict{Status: model.VerifyStatusScriptInvalid, Reason: err.Error()}
}
