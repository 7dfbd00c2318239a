package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/cpuminer7000/internal/getwork"
	"github.com/goodnatureofminers/cpuminer7000/internal/metrics"
	"github.com/goodnatureofminers/cpuminer7000/internal/miner"
	"github.com/goodnatureofminers/cpuminer7000/internal/pow"
	"github.com/goodnatureofminers/cpuminer7000/pkg/workerpool"
)

type config struct {
	Host        string        `long:"host" env:"CPUMINER_HOST" description:"work source host" default:"127.0.0.1"`
	Port        uint16        `long:"port" env:"CPUMINER_PORT" description:"work source port" default:"8332"`
	RPCUser     string        `long:"rpc-user" env:"CPUMINER_RPC_USER" description:"work source RPC username" required:"true"`
	RPCPass     string        `long:"rpc-pass" env:"CPUMINER_RPC_PASS" description:"work source RPC password" required:"true"`
	Threads     int           `long:"threads" env:"CPUMINER_THREADS" description:"number of independent search workers" default:"1"`
	ScanTime    time.Duration `long:"scantime" env:"CPUMINER_SCANTIME" description:"wall-clock duration each search cycle is tuned towards" default:"30s"`
	HashMeter   bool          `long:"hashmeter" env:"CPUMINER_HASHMETER" description:"log per-cycle hashes and khash/s"`
	Backoff     time.Duration `long:"backoff" env:"CPUMINER_BACKOFF" description:"pause after a failed work fetch" default:"15s"`
	StartBound  uint32        `long:"start-bound" env:"CPUMINER_START_BOUND" description:"nonce bound of the first search cycle" default:"1000000"`
	RPCRPS      int           `long:"rpc-rps" env:"CPUMINER_RPC_RPS" description:"per-worker work fetch rate limit, requests per second" default:"10"`
	MetricsAddr string        `long:"metrics-addr" env:"CPUMINER_METRICS_ADDR" description:"optional Prometheus listen address"`
}

// workerStagger spaces out worker startup so a fresh miner does not
// stampede the work source with simultaneous fetches.
const workerStagger = 1 * time.Second

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.Threads < 1 {
		logger.Fatal("threads must be at least 1", zap.Int("threads", cfg.Threads))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("miner failed", zap.Error(err))
	}

	logger.Info("miner stopped",
		zap.String("host", cfg.Host),
		zap.Uint16("port", cfg.Port))
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		stopMetrics := serveMetrics(cfg.MetricsAddr, logger)
		defer stopMetrics()
	}

	logger.Info("miner starting",
		zap.String("host", cfg.Host),
		zap.Uint16("port", cfg.Port),
		zap.Int("threads", cfg.Threads))

	rpcMetrics := metrics.NewRPCClient()

	workerIDs := make([]int, cfg.Threads)
	for i := range workerIDs {
		workerIDs[i] = i
	}

	return workerpool.Run(ctx, workerIDs, workerStagger, func(ctx context.Context, id int) error {
		workerLogger := logger.With(zap.Int("worker", id))

		rpc, err := newRPCClient(cfg)
		if err != nil {
			return fmt.Errorf("init rpc client for worker %d: %w", id, err)
		}
		defer func() {
			rpc.Shutdown()
			rpc.WaitForShutdown()
		}()

		source := getwork.NewClient(rpc, rpcMetrics, cfg.RPCRPS)
		searcher := pow.NewSearcher(workerLogger.Named("search"))
		svc, err := miner.NewService(source, searcher, metrics.NewMiner(id), miner.Config{
			ScanTime:   cfg.ScanTime,
			Backoff:    cfg.Backoff,
			StartBound: cfg.StartBound,
			HashMeter:  cfg.HashMeter,
		}, workerLogger)
		if err != nil {
			return err
		}

		return svc.Run(ctx)
	})
}

func newRPCClient(cfg config) (*rpcclient.Client, error) {
	conn := &rpcclient.ConnConfig{
		Host:         net.JoinHostPort(cfg.Host, strconv.Itoa(int(cfg.Port))),
		User:         cfg.RPCUser,
		Pass:         cfg.RPCPass,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(conn, nil)
}

func serveMetrics(addr string, logger *zap.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics listener failed", zap.Error(err))
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}
