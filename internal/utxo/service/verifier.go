package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-verifier/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-verifier/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultInputTimeout = 5 * time.Second

// VerifierConfig tunes a Verifier. Zero values pick the defaults.
type VerifierConfig struct {
	// ResolveWorkers bounds concurrent prevout lookups; 1 resolves in input order.
	// Lookups only overlap if the resolver's node client can carry concurrent requests
	// (rpcclient.ClientPool with one client per worker).
	ResolveWorkers int
	// InputTimeout bounds the engine call for a single input.
	InputTimeout time.Duration
}

// Verifier checks every input of a raw transaction against the outputs it spends.
// A Verifier holds no per-request state and is safe for concurrent use.
type Verifier struct {
	resolver       PrevoutResolver
	engine         ScriptEngine
	metrics        VerifierMetrics
	logger         *zap.Logger
	resolveWorkers int
	inputTimeout   time.Duration
	flags          txscript.ScriptFlags
}

func NewVerifier(
	resolver PrevoutResolver,
	engine ScriptEngine,
	metrics VerifierMetrics,
	cfg VerifierConfig,
	logger *zap.Logger,
) (*Verifier, error) {
	if resolver == nil {
		return nil, errors.New("prevout resolver is required")
	}
	if engine == nil {
		return nil, errors.New("script engine is required")
	}
	if metrics == nil {
		return nil, errors.New("verifier metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResolveWorkers < 1 {
		cfg.ResolveWorkers = 1
	}
	if cfg.InputTimeout <= 0 {
		cfg.InputTimeout = defaultInputTimeout
	}

	return &Verifier{
		resolver:       resolver,
		engine:         engine,
		metrics:        metrics,
		logger:         logger,
		resolveWorkers: cfg.ResolveWorkers,
		inputTimeout:   cfg.InputTimeout,
		flags:          txscript.StandardVerifyFlags,
	}, nil
}

// prevOutSet owns the engine handles of one request.
type prevOutSet struct {
	tx    chain.Transaction
	spent []chain.SpentOutput
}

func (s *prevOutSet) release() {
	for _, out := range s.spent {
		out.Release()
	}
	s.spent = nil
	if s.tx != nil {
		s.tx.Release()
		s.tx = nil
	}
}

// Verify decodes raw, resolves every spent output through the node and runs the script
// engine for each input. Failing inputs are reported, not returned as errors; an error
// means no verdict could be reached and is always a *StageError.
func (v *Verifier) Verify(ctx context.Context, raw []byte) (report *model.Report, err error) {
	started := time.Now()
	defer func() {
		v.metrics.ObserveVerify(report, err, started)
	}()

	tx, err := v.engine.DecodeTransaction(raw)
	if err != nil {
		return nil, &StageError{Stage: StageDecode, Input: NoInput, Err: withKind(chain.ErrTransactionMalformed, err)}
	}
	set := &prevOutSet{tx: tx}
	defer set.release()

	logger := v.logger.With(zap.String("txid", tx.TxID()))
	ops := tx.OutPoints()

	txOuts, err := v.resolveAll(ctx, ops)
	if err != nil {
		logger.Debug("resolve prevouts failed", zap.Error(err))
		return nil, err
	}

	prevouts := make([]model.PrevOut, len(txOuts))
	set.spent = make([]chain.SpentOutput, 0, len(txOuts))
	for i, out := range txOuts {
		prevout, spent, err := v.convert(out)
		if err != nil {
			return nil, &StageError{Stage: StageConvert, Input: i, OutPoint: &out.OutPoint, Err: err}
		}
		prevouts[i] = prevout
		set.spent = append(set.spent, spent)
	}

	report = &model.Report{
		TxID:   tx.TxID(),
		Valid:  true,
		Inputs: make([]model.InputResult, len(prevouts)),
	}
	for i, prevout := range prevouts {
		verdict, err := v.verifyInput(ctx, set, i, prevout)
		if err != nil {
			return nil, &StageError{Stage: StageVerify, Input: i, OutPoint: &prevouts[i].OutPoint, Err: withKind(chain.ErrEngineUnavailable, err)}
		}
		v.metrics.ObserveInput(verdict)
		if !verdict.Valid {
			report.Valid = false
			logger.Debug("input failed verification",
				zap.Int("input", i),
				zap.Stringer("outpoint", prevout.OutPoint),
				zap.String("status", string(verdict.Status)),
				zap.String("reason", verdict.Reason),
			)
		}
		report.Inputs[i] = model.InputResult{Index: uint32(i), PrevOut: prevout, Verdict: verdict}
	}
	return report, nil
}

func (v *Verifier) resolveAll(ctx context.Context, ops []wire.OutPoint) ([]*model.TxOut, error) {
	if v.resolveWorkers == 1 {
		txOuts := make([]*model.TxOut, len(ops))
		for i := range ops {
			out, err := v.resolve(ctx, i, ops[i])
			if err != nil {
				return nil, err
			}
			txOuts[i] = out
		}
		return txOuts, nil
	}

	type indexed struct {
		index int
		op    wire.OutPoint
	}
	items := make([]indexed, len(ops))
	for i, op := range ops {
		items[i] = indexed{index: i, op: op}
	}
	txOuts, err := workerpool.Map(ctx, v.resolveWorkers, items, func(ctx context.Context, item indexed) (*model.TxOut, error) {
		return v.resolve(ctx, item.index, item.op)
	})
	if err != nil {
		var stageErr *StageError
		if errors.As(err, &stageErr) {
			return nil, stageErr
		}
		return nil, &StageError{Stage: StageResolve, Input: NoInput, Err: withKind(chain.ErrPrevoutUnresolved, err)}
	}
	return txOuts, nil
}

func (v *Verifier) resolve(ctx context.Context, input int, op wire.OutPoint) (*model.TxOut, error) {
	outPoint := model.OutPoint{TxID: op.Hash, Index: op.Index}

	started := time.Now()
	out, err := v.resolver.Resolve(ctx, op.Hash, op.Index, false)
	v.metrics.ObserveResolve(err, started)
	if err != nil {
		return nil, &StageError{
			Stage:    StageResolve,
			Input:    input,
			OutPoint: &outPoint,
			Err:      fmt.Errorf("%w: %w", chain.ErrPrevoutUnresolved, err),
		}
	}
	return out, nil
}

func (v *Verifier) convert(out *model.TxOut) (model.PrevOut, chain.SpentOutput, error) {
	sats, err := bitcoin.AmountToSatoshis(out.Value)
	if err != nil {
		return model.PrevOut{}, nil, err
	}
	amount, err := safe.Int64(sats)
	if err != nil {
		return model.PrevOut{}, nil, fmt.Errorf("%w: %v", chain.ErrAmountOutOfRange, err)
	}
	spent, err := v.engine.NewOutput(out.PkScript, amount)
	if err != nil {
		return model.PrevOut{}, nil, withKind(chain.ErrAmountOutOfRange, err)
	}

	return model.PrevOut{
		OutPoint:   out.OutPoint,
		PkScript:   out.PkScript,
		Value:      sats,
		ScriptType: out.ScriptType,
		Addresses:  out.Addresses,
	}, spent, nil
}

func (v *Verifier) verifyInput(ctx context.Context, set *prevOutSet, input int, prevout model.PrevOut) (model.Verdict, error) {
	ctx, cancel := context.WithTimeout(ctx, v.inputTimeout)
	defer cancel()

	index, err := safe.Uint32(input)
	if err != nil {
		return model.Verdict{}, err
	}
	amount := set.spent[input].Value()
	return v.engine.Verify(ctx, prevout.PkScript, amount, set.tx, set.spent, index, v.flags)
}
