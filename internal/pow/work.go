package pow

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/cpuminer7000/internal/byteorder"
	"github.com/goodnatureofminers/cpuminer7000/internal/model"
)

const targetLen = 32

// PreparedWork is a work unit normalized for hashing: the header prefix
// in the byte order the hash primitive expects and the target as a full
// 256-bit integer.
type PreparedWork struct {
	// Prefix is the first 76 bytes of the normalized header.
	Prefix []byte
	// Target is the threshold a digest value must be strictly below.
	Target *big.Int
}

// PrepareWork validates a work unit and converts it from wire byte order
// into hashing order. Odd-length or short hex fields are rejected rather
// than truncated.
func PrepareWork(w model.WorkUnit) (*PreparedWork, error) {
	raw, err := hex.DecodeString(w.Data)
	if err != nil {
		return nil, fmt.Errorf("decode header data: %w", err)
	}
	if len(raw) < model.HeaderLen {
		return nil, fmt.Errorf("header data is %d bytes, want at least %d", len(raw), model.HeaderLen)
	}
	normalized, err := byteorder.ReverseWordBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize header data: %w", err)
	}

	rawTarget, err := hex.DecodeString(w.Target)
	if err != nil {
		return nil, fmt.Errorf("decode target: %w", err)
	}
	if len(rawTarget) != targetLen {
		return nil, fmt.Errorf("target is %d bytes, want %d", len(rawTarget), targetLen)
	}
	target, err := digestValue(rawTarget)
	if err != nil {
		return nil, fmt.Errorf("normalize target: %w", err)
	}

	return &PreparedWork{
		Prefix: normalized[:model.HeaderPrefixLen],
		Target: target,
	}, nil
}

// digestValue interprets a 32-byte wire-order buffer as a 256-bit
// integer: word bytes swapped, word order reversed, then parsed
// big-endian.
func digestValue(buf []byte) (*big.Int, error) {
	swapped, err := byteorder.ReverseWordBytes(buf)
	if err != nil {
		return nil, err
	}
	reversed, err := byteorder.ReverseWordOrder(swapped)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(reversed), nil
}
