// Package hexutil converts between hexadecimal text and raw bytes, including the
// reversed byte order bitcoin uses to display transaction identifiers.
package hexutil

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrMalformedEncoding is returned when text is not a valid even-length hex string.
var ErrMalformedEncoding = errors.New("malformed hex encoding")

// Decode parses hex digits (any case) into bytes. ASCII whitespace between digits is ignored.
func Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/2)
	hi := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSpace(c) {
			continue
		}
		v, ok := nibble(c)
		if !ok {
			return nil, fmt.Errorf("%w: non-hex character %q at offset %d", ErrMalformedEncoding, c, i)
		}
		if hi < 0 {
			hi = int(v)
			continue
		}
		out = append(out, byte(hi)<<4|v)
		hi = -1
	}
	if hi >= 0 {
		return nil, fmt.Errorf("%w: odd number of hex digits", ErrMalformedEncoding)
	}
	return out, nil
}

// Encode renders bytes as lowercase hex in forward order.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// EncodeReversed renders bytes as lowercase hex, last byte first.
func EncodeReversed(b []byte) string {
	reversed := make([]byte, len(b))
	for i, v := range b {
		reversed[len(b)-1-i] = v
	}
	return hex.EncodeToString(reversed)
}

func nibble(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
