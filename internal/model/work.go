// Package model holds the value types exchanged between the work source
// and the search workers.
package model

import "fmt"

const (
	// HeaderLen is the size of a serialized block header in bytes.
	HeaderLen = 80
	// HeaderPrefixLen is the portion of the header hashed once per work
	// unit; the nonce occupies the bytes [HeaderPrefixLen, HeaderLen).
	HeaderPrefixLen = 76
	// NonceLen is the size of the nonce field in bytes.
	NonceLen = HeaderLen - HeaderPrefixLen

	// NonceHexOffset is the character offset of the nonce field within
	// the hex-encoded header text.
	NonceHexOffset = HeaderPrefixLen * 2
	// NonceHexLen is the nonce field width in hex characters.
	NonceHexLen = NonceLen * 2

	// MaxSearchBound is the ceiling for any recalibrated nonce bound.
	// It leaves headroom below the 32-bit nonce space so the loop
	// counter cannot wrap.
	MaxSearchBound uint32 = 0xfffffffa
)

// WorkUnit is one header template and target received from the work
// source. It is consumed within a single search cycle and never mutated.
type WorkUnit struct {
	// Data is the hex-encoded header template in wire byte order,
	// including the reserved nonce field and any trailing padding.
	Data string
	// Target is the hex-encoded 256-bit threshold in reversed byte
	// order relative to big-endian display.
	Target string
}

// SpliceNonce replaces the nonce field of a hex-encoded header template
// with wireNonceHex and returns the resulting submission text. Every
// character outside the nonce field, including any padding beyond the
// header, is preserved as-is.
func SpliceNonce(data, wireNonceHex string) (string, error) {
	if len(wireNonceHex) != NonceHexLen {
		return "", fmt.Errorf("nonce hex length %d, want %d", len(wireNonceHex), NonceHexLen)
	}
	if len(data) < NonceHexOffset+NonceHexLen {
		return "", fmt.Errorf("header text length %d too short to hold a nonce at offset %d", len(data), NonceHexOffset)
	}
	return data[:NonceHexOffset] + wireNonceHex + data[NonceHexOffset+NonceHexLen:], nil
}
