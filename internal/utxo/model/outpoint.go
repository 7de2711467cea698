// Package model defines domain models for transaction verification.
package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// OutPoint names a previously created output.
type OutPoint struct {
	TxID  chainhash.Hash
	Index uint32
}

// String renders the outpoint as display-order txid and index.
func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxID, o.Index)
}
