package service

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/model"
)

// Stage names the verification step a request failed in.
type Stage string

const (
	StageDecode  Stage = "decode"
	StageResolve Stage = "resolve"
	StageConvert Stage = "convert"
	StageVerify  Stage = "verify"
)

// NoInput marks a StageError that is not tied to a particular input.
const NoInput = -1

// StageError reports where a verification request was aborted.
type StageError struct {
	Stage    Stage
	Input    int
	OutPoint *model.OutPoint
	Err      error
}

func (e *StageError) Error() string {
	switch {
	case e.OutPoint != nil:
		return fmt.Sprintf("%s input %d (%s): %v", e.Stage, e.Input, e.OutPoint, e.Err)
	case e.Input != NoInput:
		return fmt.Sprintf("%s input %d: %v", e.Stage, e.Input, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// withKind makes sure err matches kind under errors.Is.
func withKind(kind, err error) error {
	if errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}
