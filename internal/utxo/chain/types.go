// Package chain defines interfaces and errors shared between verification components.
package chain

import (
	"github.com/btcsuite/btcd/wire"
)

type (
	// Transaction is a decoded transaction owned by a script engine.
	// Release must be called once the verification request is done with it.
	Transaction interface {
		TxID() string
		OutPoints() []wire.OutPoint
		Release()
	}

	// SpentOutput is an engine-owned previous output (locking script and value).
	SpentOutput interface {
		PkScript() []byte
		Value() int64
		Release()
	}
)
