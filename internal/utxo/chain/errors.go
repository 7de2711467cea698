package chain

import (
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-verifier/pkg/hexutil"
)

var (
	// ErrMalformedEncoding marks hex input that could not be decoded.
	ErrMalformedEncoding = hexutil.ErrMalformedEncoding
	// ErrTransactionMalformed marks raw bytes that do not decode into a transaction.
	ErrTransactionMalformed = errors.New("transaction malformed")
	// ErrPrevoutUnresolved marks a request aborted because an input's previous output could not be resolved.
	ErrPrevoutUnresolved = errors.New("prevout unresolved")
	// ErrAmountOutOfRange marks a decimal amount that does not convert to a satoshi count.
	ErrAmountOutOfRange = errors.New("amount out of range")
	// ErrOutputNotFound is returned by resolvers when the output does not exist or is already spent.
	ErrOutputNotFound = errors.New("output not found")
	// ErrResolverUnavailable marks transport, auth or protocol failures talking to the node.
	ErrResolverUnavailable = errors.New("resolver unavailable")
	// ErrEngineUnavailable marks a script engine call that did not complete.
	ErrEngineUnavailable = errors.New("script engine unavailable")
)
