package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/esplora"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/keychain"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/walletdb/bolt"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/walletsync"
)

type config struct {
	EsploraURL  string        `long:"esplora-url" env:"WALLETSYNC_ESPLORA_URL" description:"Esplora API base URL" default:"https://blockstream.info/api"`
	Xpub        string        `long:"xpub" env:"WALLETSYNC_XPUB" description:"account extended public key" required:"true"`
	Network     string        `long:"network" env:"WALLETSYNC_NETWORK" description:"network name (mainnet, testnet, signet, regtest)" default:"mainnet"`
	DBPath      string        `long:"db-path" env:"WALLETSYNC_DB_PATH" description:"wallet database file" default:"wallet.db"`
	StopGap     int           `long:"stop-gap" env:"WALLETSYNC_STOP_GAP" description:"consecutive unused scripts that end discovery" default:"20"`
	Timeout     time.Duration `long:"timeout" env:"WALLETSYNC_TIMEOUT" description:"HTTP timeout for Esplora requests" default:"30s"`
	Proxy       string        `long:"proxy" env:"WALLETSYNC_PROXY" description:"proxy URL for Esplora requests"`
	Concurrency int           `long:"concurrency" env:"WALLETSYNC_CONCURRENCY" description:"script histories fetched in parallel" default:"4"`
	RPS         int           `long:"rps" env:"WALLETSYNC_RPS" description:"Esplora requests per second, 0 for unlimited" default:"0"`
	FeeTarget   uint16        `long:"fee-target" env:"WALLETSYNC_FEE_TARGET" description:"confirmation target in blocks for the fee estimate" default:"6"`
	MetricsAddr string        `long:"metrics-addr" env:"WALLETSYNC_METRICS_ADDR" description:"address for metrics server, empty to disable" default:":2112"`
}

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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("wallet sync failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	params, err := keychain.Params(cfg.Network)
	if err != nil {
		return err
	}
	deriver, err := keychain.NewDeriver(cfg.Xpub, params)
	if err != nil {
		return fmt.Errorf("init deriver: %w", err)
	}

	store, err := bolt.Open(cfg.DBPath, metrics.NewWalletDB(), logger)
	if err != nil {
		return fmt.Errorf("init wallet db: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close wallet db", zap.Error(err))
		}
	}()
	w := wallet.New(deriver, store, logger)

	client, err := esplora.NewClient(esplora.Config{
		BaseURL:           cfg.EsploraURL,
		Timeout:           cfg.Timeout,
		Proxy:             cfg.Proxy,
		RequestsPerSecond: cfg.RPS,
	}, metrics.NewEsploraClient(cfg.Network))
	if err != nil {
		return fmt.Errorf("init esplora client: %w", err)
	}
	retrier := esplora.NewRetrier(logger, metrics.NewRetrier(cfg.Network))

	blockchain, err := walletsync.New(client, retrier, walletsync.Config{
		StopGap:     cfg.StopGap,
		Concurrency: cfg.Concurrency,
	}, metrics.NewWalletSync(cfg.Network), logger)
	if err != nil {
		return err
	}

	if err := blockchain.Sync(ctx, w); err != nil {
		return err
	}

	height, err := blockchain.Height(ctx)
	if err != nil {
		return err
	}
	lastUsed, err := w.LastUsed()
	if err != nil {
		return err
	}
	confirmed, unconfirmed, err := w.Balance()
	if err != nil {
		return err
	}
	feeRate, err := blockchain.EstimateFee(ctx, cfg.FeeTarget)
	if err != nil {
		return err
	}

	fields := []zap.Field{
		zap.Uint32("tip_height", height),
		zap.Int64("confirmed_sat", confirmed),
		zap.Int64("unconfirmed_sat", unconfirmed),
		zap.Float64("fee_rate_sat_vb", feeRate),
	}
	for k, index := range lastUsed {
		fields = append(fields, zap.Uint32("last_used_"+k.String(), index))
	}
	logger.Info("wallet synced", fields...)
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
