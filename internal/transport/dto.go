package transport

import (
	"encoding/json"
	"errors"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/service"
	"github.com/goodnatureofminers/blockinsight7000-verifier/pkg/hexutil"
)

// GetTxOutRequest asks for one unspent output. TxID is in display order.
type GetTxOutRequest struct {
	TxID           string  `json:"txid" binding:"required,len=64,hexadecimal"`
	Vout           *uint32 `json:"vout" binding:"required"`
	IncludeMempool *bool   `json:"include_mempool"`
}

// GetTxOutResponse carries the node result verbatim; Result is null when the output is absent.
type GetTxOutResponse struct {
	Result json.RawMessage `json:"result"`
}

// VerifyRequest carries a hex-encoded raw transaction.
type VerifyRequest struct {
	TxHex string `json:"tx_hex" binding:"required"`
}

// Report is the wire form of model.Report.
type Report struct {
	TxID   string        `json:"txid"`
	Valid  bool          `json:"valid"`
	Inputs []InputReport `json:"inputs"`
}

type InputReport struct {
	Index        uint32   `json:"index"`
	OutPoint     string   `json:"outpoint"`
	ValueSat     uint64   `json:"value_sat"`
	Amount       string   `json:"amount"`
	ScriptPubKey string   `json:"script_pubkey"`
	ScriptType   string   `json:"script_type,omitempty"`
	Addresses    []string `json:"addresses,omitempty"`
	Valid        bool     `json:"valid"`
	Status       string   `json:"status"`
	Reason       string   `json:"reason,omitempty"`
}

// ErrorResponse describes a failed request. Stage, Input and OutPoint are set when known.
type ErrorResponse struct {
	Error    string `json:"error"`
	Stage    string `json:"stage,omitempty"`
	Input    *int   `json:"input,omitempty"`
	OutPoint string `json:"outpoint,omitempty"`
}

func newReport(r *model.Report) Report {
	inputs := make([]InputReport, len(r.Inputs))
	for i, in := range r.Inputs {
		inputs[i] = InputReport{
			Index:        in.Index,
			OutPoint:     in.PrevOut.OutPoint.String(),
			ValueSat:     in.PrevOut.Value,
			Amount:       btcutil.Amount(in.PrevOut.Value).String(),
			ScriptPubKey: hexutil.Encode(in.PrevOut.PkScript),
			ScriptType:   in.PrevOut.ScriptType,
			Addresses:    in.PrevOut.Addresses,
			Valid:        in.Valid,
			Status:       string(in.Status),
			Reason:       in.Reason,
		}
	}
	return Report{TxID: r.TxID, Valid: r.Valid, Inputs: inputs}
}

func newErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: err.Error()}

	var stageErr *service.StageError
	if !errors.As(err, &stageErr) {
		return resp
	}
	resp.Stage = string(stageErr.Stage)
	if stageErr.Input != service.NoInput {
		input := stageErr.Input
		resp.Input = &input
	}
	if stageErr.OutPoint != nil {
		resp.OutPoint = stageErr.OutPoint.String()
	}
	return resp
}
