package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"binance-loader/internal/binance"
	"binance-loader/internal/config"
	"binance-loader/internal/logging"
	"binance-loader/internal/market"
	"binance-loader/internal/metrics"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	registry, err := logging.NewRegistry(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer registry.Sync()
	baseLog := registry.Named("baseloader")
	loaderLog := registry.Named("binanceloader")
	baseLog.Info("config loaded", zap.String("path", *configPath))

	m := metrics.NewNoop()
	if cfg.Metrics.Addr != "" {
		prom := metrics.NewPrometheus()
		m = prom.Metrics
		go serveMetrics(cfg.Metrics.Addr, prom, baseLog)
	}

	client := binance.New(cfg.REST.BaseURL, cfg.REST.Timeout.Std(), loaderLog)
	loader := market.NewLoader(client, m)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A failed fetch is logged and the process still exits normally.
	if err := run(ctx, cfg, loader); err != nil {
		loaderLog.Error("error occurred", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, loader *market.Loader) error {
	pairs, err := loader.Pairs(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Retrieved %d trading pairs.\n", len(pairs))

	end := time.Now()
	start := end.Add(-cfg.Fetch.Window.Std())
	candles, err := loader.HistoricalData(ctx, cfg.Fetch.Symbol, binance.Interval(cfg.Fetch.Interval), start.UnixMilli(), end.UnixMilli())
	if err != nil {
		return err
	}
	fmt.Printf("Retrieved %d data points for %s.\n", len(candles), cfg.Fetch.Symbol)
	return nil
}

func serveMetrics(addr string, prom *metrics.Prometheus, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", prom.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Warn("metrics listener stopped", zap.Error(err))
	}
}
