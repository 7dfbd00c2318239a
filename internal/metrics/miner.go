package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	minerCyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cpuminer7000",
		Subsystem: "miner",
		Name:      "cycles_total",
		Help:      "Count of completed work cycles.",
	}, []string{"worker", "status"})

	minerCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cpuminer7000",
		Subsystem: "miner",
		Name:      "cycle_duration_seconds",
		Help:      "Duration of one fetch-search-submit round.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
	}, []string{"worker", "status"})

	minerSearchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cpuminer7000",
		Subsystem: "miner",
		Name:      "search_duration_seconds",
		Help:      "Duration of one bounded nonce search.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
	}, []string{"worker"})

	minerHashesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cpuminer7000",
		Subsystem: "miner",
		Name:      "hashes_total",
		Help:      "Count of nonce attempts hashed.",
	}, []string{"worker"})

	minerFalsePositivesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cpuminer7000",
		Subsystem: "miner",
		Name:      "false_positives_total",
		Help:      "Count of fast-reject filter passes that failed the full target comparison.",
	}, []string{"worker"})

	minerSolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cpuminer7000",
		Subsystem: "miner",
		Name:      "solutions_total",
		Help:      "Count of qualifying nonces found.",
	}, []string{"worker"})

	minerSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cpuminer7000",
		Subsystem: "miner",
		Name:      "submissions_total",
		Help:      "Count of solution submissions by upstream acknowledgement.",
	}, []string{"worker", "result"})

	minerSearchBound = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "cpuminer7000",
		Subsystem: "miner",
		Name:      "search_bound",
		Help:      "Current recalibrated nonce search bound.",
	}, []string{"worker"})
)

// Miner tracks metrics for one search worker.
type Miner struct {
	worker string
}

// NewMiner constructs a metrics collector for a worker.
func NewMiner(workerID int) *Miner {
	return &Miner{worker: strconv.Itoa(workerID)}
}

// ObserveCycle records one fetch-search-submit round outcome.
func (m Miner) ObserveCycle(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	minerCyclesTotal.WithLabelValues(m.worker, status).Inc()
	minerCycleDuration.WithLabelValues(m.worker, status).Observe(time.Since(started).Seconds())
}

// ObserveSearch records the attempts and false positives of one search.
func (m Miner) ObserveSearch(attempts, falsePositives uint32, elapsed time.Duration) {
	minerSearchDuration.WithLabelValues(m.worker).Observe(elapsed.Seconds())
	minerHashesTotal.WithLabelValues(m.worker).Add(float64(attempts))
	if falsePositives > 0 {
		minerFalsePositivesTotal.WithLabelValues(m.worker).Add(float64(falsePositives))
	}
}

// ObserveSolution records a qualifying nonce.
func (m Miner) ObserveSolution() {
	minerSolutionsTotal.WithLabelValues(m.worker).Inc()
}

// ObserveSubmission records the upstream acknowledgement of a submission.
func (m Miner) ObserveSubmission(accepted bool, err error) {
	result := "accepted"
	switch {
	case err != nil:
		result = "error"
	case !accepted:
		result = "rejected"
	}
	minerSubmissionsTotal.WithLabelValues(m.worker, result).Inc()
}

// SetSearchBound records the bound the next cycle will scan.
func (m Miner) SetSearchBound(bound uint32) {
	minerSearchBound.WithLabelValues(m.worker).Set(float64(bound))
}
