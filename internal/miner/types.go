package miner

import (
	"time"

	"github.com/goodnatureofminers/cpuminer7000/internal/model"
	"github.com/goodnatureofminers/cpuminer7000/internal/pow"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// WorkSource supplies work units and accepts solved headers.
	WorkSource interface {
		GetWork() (model.WorkUnit, error)
		SubmitWork(solution string) (bool, error)
	}

	// Searcher scans a bounded nonce range against prepared work.
	Searcher interface {
		Search(work *pow.PreparedWork, bound uint32) (pow.Result, error)
	}

	// Metrics records the observable outcomes of one worker.
	Metrics interface {
		ObserveCycle(err error, started time.Time)
		ObserveSearch(attempts, falsePositives uint32, elapsed time.Duration)
		ObserveSolution()
		ObserveSubmission(accepted bool, err error)
		SetSearchBound(bound uint32)
	}
)
