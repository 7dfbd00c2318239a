// Package miner runs the work cycle of one search worker: fetch a work
// unit, scan a bounded nonce range, recalibrate the bound from the
// measured hash rate and submit any qualifying nonce.
package miner

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/cpuminer7000/internal/byteorder"
	"github.com/goodnatureofminers/cpuminer7000/internal/clock"
	"github.com/goodnatureofminers/cpuminer7000/internal/model"
	"github.com/goodnatureofminers/cpuminer7000/internal/pow"
	"github.com/goodnatureofminers/cpuminer7000/pkg/safe"
)

const (
	// DefaultStartBound is the nonce bound of the very first cycle,
	// before any hash-rate measurement exists.
	DefaultStartBound uint32 = 1_000_000
	// DefaultBackoff is the pause after a failed fetch.
	DefaultBackoff = 15 * time.Second
	// DefaultScanTime is the wall-clock duration each cycle is tuned
	// towards.
	DefaultScanTime = 30 * time.Second
)

// Config carries the per-worker tuning knobs.
type Config struct {
	// ScanTime is the wall-clock duration recalibration targets per
	// cycle.
	ScanTime time.Duration
	// Backoff is the pause after a failed or malformed fetch.
	Backoff time.Duration
	// StartBound is the nonce bound of the first cycle.
	StartBound uint32
	// HashMeter enables per-cycle hash rate logging.
	HashMeter bool
}

// Service is one independent search worker. It owns its work source
// connection and its evolving search bound; nothing in it is shared
// with other workers.
type Service struct {
	logger   *zap.Logger
	source   WorkSource
	searcher Searcher
	metrics  Metrics

	scanTime  time.Duration
	backoff   time.Duration
	hashMeter bool

	sleep func(context.Context, time.Duration) error
	now   func() time.Time

	bound uint32
}

// NewService builds a worker Service with its dependencies.
func NewService(
	source WorkSource,
	searcher Searcher,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	if source == nil {
		return nil, errors.New("work source is required")
	}
	if searcher == nil {
		return nil, errors.New("searcher is required")
	}
	if metrics == nil {
		return nil, errors.New("miner metrics is required")
	}
	if cfg.ScanTime <= 0 {
		cfg.ScanTime = DefaultScanTime
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = DefaultBackoff
	}
	if cfg.StartBound == 0 {
		cfg.StartBound = DefaultStartBound
	}
	if cfg.StartBound > model.MaxSearchBound {
		cfg.StartBound = model.MaxSearchBound
	}

	return &Service{
		logger:    logger,
		source:    source,
		searcher:  searcher,
		metrics:   metrics,
		scanTime:  cfg.ScanTime,
		backoff:   cfg.Backoff,
		hashMeter: cfg.HashMeter,
		sleep:     clock.SleepWithContext,
		now:       time.Now,
		bound:     cfg.StartBound,
	}, nil
}

// Run repeats work cycles until the context is canceled. A failed cycle
// is logged and followed by the configured backoff; the search bound
// carries over unchanged.
func (s *Service) Run(ctx context.Context) error {
	s.logger.Info("miner worker started", zap.Uint32("start_bound", s.bound))
	s.metrics.SetSearchBound(s.bound)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.runCycle(ctx); err != nil {
			s.logger.Warn("work cycle failed, backing off",
				zap.Error(err),
				zap.Duration("sleep", s.backoff))
			if sleepErr := s.sleep(ctx, s.backoff); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Service) runCycle(ctx context.Context) error {
	started := s.now()
	err := s.cycle(ctx)
	s.metrics.ObserveCycle(err, started)
	return err
}

// cycle performs one fetch-search-recalibrate-submit round. Only fetch
// and preparation failures propagate; submission problems are local to
// the round.
func (s *Service) cycle(_ context.Context) error {
	work, err := s.source.GetWork()
	if err != nil {
		return fmt.Errorf("fetch work: %w", err)
	}
	prepared, err := pow.PrepareWork(work)
	if err != nil {
		return fmt.Errorf("prepare work: %w", err)
	}

	searchStarted := s.now()
	result, err := s.searcher.Search(prepared, s.bound)
	if err != nil {
		return fmt.Errorf("search nonce range: %w", err)
	}

	elapsed, elapsedErr := clock.Elapsed(searchStarted, s.now)
	switch {
	case elapsedErr != nil:
		// A clamped clock would recalibrate to a nonsensical bound;
		// keep the previous one for the next cycle.
		s.logger.Warn("timing anomaly, keeping previous search bound",
			zap.Error(elapsedErr),
			zap.Uint32("bound", s.bound))
	default:
		s.metrics.ObserveSearch(result.Attempts, result.FalsePositives, elapsed)
		s.bound = nextBound(result.Attempts, s.scanTime, elapsed)
		s.metrics.SetSearchBound(s.bound)
		if s.hashMeter {
			s.logger.Info("hashmeter",
				zap.Uint32("hashes", result.Attempts),
				zap.Float64("khash_per_sec", float64(result.Attempts)/1000.0/elapsed.Seconds()))
		}
	}

	if result.Found {
		s.metrics.ObserveSolution()
		if err := s.submit(work, result); err != nil {
			s.logger.Error("solution submission failed", zap.Error(err))
		}
	}

	return nil
}

// submit re-encodes the found nonce to wire byte order, splices it into
// the original header text and sends it upstream. The acknowledgement is
// informational only.
func (s *Service) submit(work model.WorkUnit, result pow.Result) error {
	wireNonce, err := byteorder.ReverseWordBytes(result.NonceBytes)
	if err != nil {
		return fmt.Errorf("encode nonce: %w", err)
	}
	solution, err := model.SpliceNonce(work.Data, hex.EncodeToString(wireNonce))
	if err != nil {
		return fmt.Errorf("build submission: %w", err)
	}

	accepted, err := s.source.SubmitWork(solution)
	s.metrics.ObserveSubmission(accepted, err)
	if err != nil {
		return fmt.Errorf("submit work: %w", err)
	}

	s.logger.Info("upstream submission result", zap.Bool("accepted", accepted))
	return nil
}

// nextBound targets scanTime of wall-clock work for the next cycle given
// the measured attempts over elapsed, clamped to the nonce ceiling.
func nextBound(attempts uint32, scanTime, elapsed time.Duration) uint32 {
	raw := float64(attempts) * scanTime.Seconds() / elapsed.Seconds()
	if raw >= float64(model.MaxSearchBound) {
		return model.MaxSearchBound
	}
	if raw < 1 {
		// A zero bound would hash nothing next cycle and could never
		// recover, since recalibration scales the measured attempts.
		return 1
	}
	bound, err := safe.Uint32(uint64(raw))
	if err != nil {
		return model.MaxSearchBound
	}
	return bound
}
