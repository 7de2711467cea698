package transport

import (
	"errors"
	"net/http"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/chain"
	"google.golang.org/grpc/codes"
)

// httpStatus maps error kinds to response codes. Unavailability is checked first
// because an unresolved prevout may wrap a transport failure.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, chain.ErrResolverUnavailable), errors.Is(err, chain.ErrEngineUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, chain.ErrMalformedEncoding),
		errors.Is(err, chain.ErrTransactionMalformed),
		errors.Is(err, chain.ErrPrevoutUnresolved),
		errors.Is(err, chain.ErrAmountOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func grpcCode(err error) codes.Code {
	switch {
	case errors.Is(err, chain.ErrResolverUnavailable), errors.Is(err, chain.ErrEngineUnavailable):
		return codes.Unavailable
	case errors.Is(err, chain.ErrPrevoutUnresolved):
		return codes.FailedPrecondition
	case errors.Is(err, chain.ErrMalformedEncoding),
		errors.Is(err, chain.ErrTransactionMalformed),
		errors.Is(err, chain.ErrAmountOutOfRange):
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}
