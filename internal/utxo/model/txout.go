package model

import "encoding/json"

// TxOut is an unspent output as reported by the node.
type TxOut struct {
	OutPoint      OutPoint
	PkScript      []byte
	Value         string // decimal BTC, exactly as sent by the node
	ScriptType    string
	Addresses     []string
	Confirmations int64
	BestBlock     string
	Coinbase      bool
	Raw           json.RawMessage
}

// PrevOut is a resolved previous output with its value in satoshis.
type PrevOut struct {
	OutPoint   OutPoint
	PkScript   []byte
	Value      uint64
	ScriptType string
	Addresses  []string
}
