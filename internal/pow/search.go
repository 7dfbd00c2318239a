package pow

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/cpuminer7000/internal/model"
)

// filterThresholdBits bounds the targets for which the trailing-zero
// fast-reject filter is a true necessary condition. After the full byte
// reversal the digest's trailing four bytes become the value's top 32
// bits, so "trailing word is zero" is implied by value < target exactly
// when target fits in 224 bits.
const filterThresholdBits = 224

// Result is the outcome of one bounded nonce search.
type Result struct {
	// Attempts is the number of nonces hashed: found nonce + 1 on
	// success, the full bound on exhaustion.
	Attempts uint32
	// NonceBytes is the qualifying nonce in little-endian encoding.
	// Only set when Found.
	NonceBytes []byte
	// Value is the qualifying digest interpreted as a 256-bit integer.
	// Only set when Found.
	Value *big.Int
	// Found reports whether a qualifying nonce was discovered.
	Found bool
	// FalsePositives counts filter passes that failed the full
	// comparison.
	FalsePositives uint32
}

// Searcher scans nonce ranges for qualifying double-SHA-256 digests.
type Searcher struct {
	logger *zap.Logger
}

// NewSearcher constructs a Searcher.
func NewSearcher(logger *zap.Logger) *Searcher {
	return &Searcher{logger: logger}
}

// Search tries every nonce in [0, bound) against the prepared work unit
// and returns the first qualifying nonce or exhaustion. A zero bound
// performs no hashing and reports zero attempts.
func (s *Searcher) Search(work *PreparedWork, bound uint32) (Result, error) {
	hasher, err := NewPrefixHasher(work.Prefix)
	if err != nil {
		return Result{}, fmt.Errorf("prime header prefix: %w", err)
	}

	// The filter is a speed heuristic only; the reversed-integer
	// comparison below stays the source of truth.
	useFilter := work.Target.BitLen() <= filterThresholdBits

	var res Result
	var nonceBuf [model.NonceLen]byte
	for nonce := uint32(0); nonce < bound; nonce++ {
		binary.LittleEndian.PutUint32(nonceBuf[:], nonce)
		digest, err := hasher.SumDouble(nonceBuf[:])
		if err != nil {
			return Result{}, fmt.Errorf("hash nonce %d: %w", nonce, err)
		}

		if useFilter && !trailingWordZero(digest) {
			continue
		}

		value, err := digestValue(digest)
		if err != nil {
			return Result{}, fmt.Errorf("evaluate digest for nonce %d: %w", nonce, err)
		}
		if value.Cmp(work.Target) < 0 {
			res.Attempts = nonce + 1
			res.Found = true
			res.NonceBytes = append([]byte(nil), nonceBuf[:]...)
			res.Value = value
			s.logger.Info("proof-of-work found",
				zap.Uint32("nonce", nonce),
				zap.String("hash", fmt.Sprintf("%064x", value)))
			return res, nil
		}
		if useFilter {
			res.FalsePositives++
			s.logger.Info("proof-of-work false positive",
				zap.Uint32("nonce", nonce),
				zap.String("hash", fmt.Sprintf("%064x", value)))
		}
	}

	res.Attempts = bound
	return res, nil
}

func trailingWordZero(digest []byte) bool {
	n := len(digest)
	return digest[n-1]|digest[n-2]|digest[n-3]|digest[n-4] == 0
}
