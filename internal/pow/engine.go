// Package pow implements the double-SHA-256 proof-of-work search: header
// normalization, prefix-reusable hashing and the bounded nonce scan.
package pow

import (
	"crypto/sha256"
	"encoding"
	"errors"
	"hash"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// PrefixHasher computes double-SHA-256 digests of a fixed prefix extended
// by a short suffix. The prefix is absorbed once at construction and its
// midstate restored per trial, so the invariant header bytes are hashed a
// single time per work unit rather than once per nonce.
type PrefixHasher struct {
	h         hash.Hash
	restore   encoding.BinaryUnmarshaler
	midstate  []byte
	digestBuf [sha256.Size]byte
}

// NewPrefixHasher primes a hasher with the given prefix.
func NewPrefixHasher(prefix []byte) (*PrefixHasher, error) {
	h := sha256.New()
	h.Write(prefix)

	snapshot, ok := h.(encoding.BinaryMarshaler)
	if !ok {
		return nil, errors.New("sha256 state is not serializable")
	}
	restore, ok := h.(encoding.BinaryUnmarshaler)
	if !ok {
		return nil, errors.New("sha256 state is not restorable")
	}
	midstate, err := snapshot.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return &PrefixHasher{h: h, restore: restore, midstate: midstate}, nil
}

// SumDouble returns SHA-256(SHA-256(prefix || suffix)). The returned
// slice is only valid until the next call.
func (p *PrefixHasher) SumDouble(suffix []byte) ([]byte, error) {
	if err := p.restore.UnmarshalBinary(p.midstate); err != nil {
		return nil, err
	}
	p.h.Write(suffix)
	first := p.h.Sum(p.digestBuf[:0])
	return chainhash.HashB(first), nil
}
