// Package bitcoin implements Bitcoin-specific resolution, conversion and script verification.
package bitcoin

import (
	"fmt"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/chain"
	"github.com/shopspring/decimal"
)

// satoshiDecimals is the number of fractional BTC digits representable in satoshis.
const satoshiDecimals = 8

// AmountToSatoshis converts a decimal BTC amount, as text, into satoshis.
// An empty or sign-only integer part reads as "0". Digits beyond the eighth
// fractional place are truncated, never rounded.
func AmountToSatoshis(value string) (uint64, error) {
	intPart, fracPart, _ := strings.Cut(strings.TrimSpace(value), ".")
	switch intPart {
	case "", "+", "-":
		intPart = "0"
	}
	intPart = strings.TrimPrefix(intPart, "+")
	if strings.HasPrefix(intPart, "-") {
		return 0, fmt.Errorf("%w: negative amount %q", chain.ErrAmountOutOfRange, value)
	}
	s := intPart
	if fracPart != "" {
		s += "." + fracPart
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: parse amount %q: %v", chain.ErrAmountOutOfRange, value, err)
	}

	sats := amount.Shift(satoshiDecimals).Truncate(0).BigInt()
	if sats.Sign() < 0 || !sats.IsUint64() {
		return 0, fmt.Errorf("%w: amount %q exceeds satoshi range", chain.ErrAmountOutOfRange, value)
	}
	return sats.Uint64(), nil
}
