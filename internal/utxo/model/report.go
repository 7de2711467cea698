package model

// VerifyStatus is the status code reported by the script engine for one input.
type VerifyStatus string

var (
	// VerifyStatusOK means the engine ran the scripts; see Valid for the verdict.
	VerifyStatusOK VerifyStatus = "ok"
	// VerifyStatusInvalidInputIndex means the input index is outside the transaction.
	VerifyStatusInvalidInputIndex VerifyStatus = "invalid_input_index"
	// VerifyStatusSpentOutputsMismatch means the spent outputs do not line up with the inputs.
	VerifyStatusSpentOutputsMismatch VerifyStatus = "spent_outputs_mismatch"
	// VerifyStatusScriptInvalid means script execution failed.
	VerifyStatusScriptInvalid VerifyStatus = "script_invalid"
)

// Verdict is the engine outcome for a single input.
type Verdict struct {
	Valid  bool
	Status VerifyStatus
	Reason string
}

// InputResult is the verification outcome of one transaction input.
type InputResult struct {
	Index   uint32
	PrevOut PrevOut
	Verdict
}

// Report aggregates per-input outcomes in input order.
type Report struct {
	TxID   string
	Valid  bool
	Inputs []InputResult
}

// Failed returns the results of inputs that did not verify.
func (r *Report) Failed() []InputResult {
	var failed []InputResult
	for _, in := range r.Inputs {
		if !in.Valid {
			failed = append(failed, in)
		}
	}
	return failed
}
